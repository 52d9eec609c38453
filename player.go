package carecaca

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

type Player struct {
	id   string
	conn Conn
	name string

	// Hand is hidden from the other players, FaceUp is public and FaceDown
	// is hidden from everyone, including the player.
	Hand     Hand
	FaceUp   Hand
	FaceDown Hand
}

func NewPlayer(conn Conn, name string) (*Player, error) {
	if conn == nil {
		return nil, errors.New("invalid connection")
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("please enter your name")
	}

	if len(name) > 20 {
		return nil, errors.New("your name can't be more than 20 characters")
	}

	return &Player{id: uuid.NewString(), conn: conn, name: name}, nil
}

func (p *Player) ID() string {
	return p.id
}

func (p *Player) Name() string {
	return p.name
}

func (p *Player) CardCount() int {
	return len(p.Hand) + len(p.FaceUp) + len(p.FaceDown)
}
