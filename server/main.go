package main

import (
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/neilgarb/carecaca"
	"github.com/neilgarb/carecaca/internal/config"
	"github.com/neilgarb/carecaca/internal/logging"
	"github.com/rs/zerolog/log"
	"golang.org/x/net/websocket"
)

const welcomeText = "Welcome. Please input your name. When you are ready to disconnect, type quit."

func main() {
	cfg, err := config.LoadApp()
	if err != nil {
		panic(err)
	}
	logging.Init(cfg.Log)

	seed := cfg.Server.DeckSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	r := newRouter(carecaca.NewManager(seed), cfg.Server.ClientDir)

	server := &http.Server{
		Addr:              cfg.Server.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}
	log.Info().Str("addr", cfg.Server.HTTPAddr).Msg("listening")
	log.Fatal().Err(server.ListenAndServe()).Msg("server stopped")
}

func newRouter(manager *carecaca.Manager, clientDir string) *httprouter.Router {
	r := httprouter.New()

	r.GET("/ws", websocketHandler(manager))
	r.GET("/healthz", func(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.ServeFiles("/client/*filepath", http.Dir(clientDir))

	return r
}

func websocketHandler(manager *carecaca.Manager) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		websocket.Handler(func(ws *websocket.Conn) {
			serveConn(manager, ws)
		}).ServeHTTP(w, r)
	}
}

func serveConn(manager *carecaca.Manager, ws *websocket.Conn) {
	conn := carecaca.NewWSConn(ws)
	logger := log.With().Str("remote", conn.RemoteAddr()).Logger()
	logger.Info().Msg("connected")

	defer func() {
		manager.LeaveGame(conn)
		ws.Close()
		logger.Info().Msg("disconnected")
	}()

	welcome := carecaca.MakeMessage("welcome", carecaca.WelcomeMessage{Text: welcomeText})
	if err := conn.Send(welcome); err != nil {
		return
	}

	for {
		var msg carecaca.Message
		if err := websocket.JSON.Receive(ws, &msg); err != nil {
			return
		}

		if msg.Type == "quit" {
			conn.Send(carecaca.MakeMessage("bye", nil))
			return
		}

		if err := manager.Handle(conn, &msg); err != nil {
			logger.Debug().Err(err).Str("type", msg.Type).Msg("request failed")
			errMsg := carecaca.MakeMessage("error", err.Error())
			if err := conn.Send(errMsg); err != nil {
				return
			}
		}
	}
}
