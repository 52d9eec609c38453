package carecaca

import "golang.org/x/net/websocket"

// Conn is a player's connection to the server.
type Conn interface {
	Send(msg *Message) error
	RemoteAddr() string
}

type wsConn struct {
	ws *websocket.Conn
}

func NewWSConn(ws *websocket.Conn) Conn {
	return &wsConn{ws}
}

func (c *wsConn) Send(msg *Message) error {
	return websocket.JSON.Send(c.ws, msg)
}

func (c *wsConn) RemoteAddr() string {
	if req := c.ws.Request(); req != nil {
		return req.RemoteAddr
	}
	return c.ws.RemoteAddr().String()
}
