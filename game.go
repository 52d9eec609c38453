package carecaca

import (
	"errors"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
)

const (
	minPlayers = 2
	maxPlayers = 5

	// Each player gets this many face down, face up and hand cards.
	dealSize = 3
)

// Game is a table of players sharing one deck. It handles the lobby, the
// deal and drawing from the deck. Turn rules are left to the players.
type Game struct {
	code        string
	playerCount int
	rng         Source

	mu      sync.Mutex
	players []*Player
	started bool
	deck    *Deck
}

func NewGame(code string, playerCount int, rng Source) (*Game, error) {
	code = strings.TrimSpace(strings.ToUpper(code))
	if code == "" {
		return nil, errors.New("no game code provided")
	}

	if playerCount < minPlayers || playerCount > maxPlayers {
		return nil, errors.New("number of players should be between 2 and 5")
	}

	if rng == nil {
		return nil, errors.New("no random source provided")
	}

	return &Game{
		code:        code,
		playerCount: playerCount,
		rng:         rng,
	}, nil
}

func (g *Game) Code() string {
	return g.code
}

func (g *Game) PlayerCount() int {
	return g.playerCount
}

// CardsLeft is the number of cards still in the deck, 0 before the game
// starts.
func (g *Game) CardsLeft() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.deck == nil {
		return 0
	}
	return g.deck.CardsLeft()
}

func (g *Game) Join(conn Conn, name string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if conn == nil {
		return errors.New("invalid connection")
	}

	if g.started {
		return errors.New("this game has already started")
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return errors.New("please enter your name")
	}

	for _, p := range g.players {
		if p.conn == conn {
			return errors.New("you're already in this game")
		}
		if p.name == name {
			return errors.New("that name is already taken")
		}
	}

	if len(g.players) == g.playerCount {
		return errors.New("this game is full")
	}

	player, err := NewPlayer(conn, name)
	if err != nil {
		return err
	}
	g.players = append(g.players, player)

	log.Debug().Str("game", g.code).Str("player", player.id).
		Str("name", player.name).Msg("player joined")

	g.sendLobby()

	return nil
}

// MaybeLeave removes conn's player and reports whether it was in this game.
func (g *Game) MaybeLeave(conn Conn) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	var left *Player
	var newPlayers []*Player
	for _, p := range g.players {
		if conn == p.conn {
			left = p
			continue
		}
		newPlayers = append(newPlayers, p)
	}
	if left == nil {
		return false
	}
	g.players = newPlayers

	if g.started {
		for _, p := range g.players {
			g.send(p, MakeMessage("player_left", left.name))
		}
	} else {
		g.sendLobby()
	}

	return true
}

// Empty reports whether everyone has left.
func (g *Game) Empty() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	return len(g.players) == 0
}

func (g *Game) sendLobby() {
	playerNames := g.playerNames()
	for i, p := range g.players {
		g.send(p, MakeMessage("game_lobby", GameLobbyMessage{
			Code:        g.code,
			Host:        i == 0,
			CanStart:    g.playerCount == len(g.players),
			PlayerCount: g.playerCount,
			PlayerNames: playerNames,
		}))
	}
}

// MaybeStart starts the game if conn is in it and the table is full. The
// deck is shuffled and each player is dealt their face down, face up and
// hand cards.
func (g *Game) MaybeStart(conn Conn) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.playerIndex(conn) < 0 {
		return false, nil
	}

	if g.started {
		return false, errors.New("game has already started")
	}

	if len(g.players) != g.playerCount {
		return false, errors.New("game doesn't have enough players")
	}

	g.started = true

	playerNames := g.playerNames()
	for _, p := range g.players {
		g.send(p, MakeMessage("game_started", GameStartedMessage{
			PlayerID:    p.ID(),
			Name:        p.name,
			PlayerNames: playerNames,
		}))
	}

	g.deal()

	return true, nil
}

func (g *Game) deal() {
	g.deck = NewShuffledDeck(g.rng)

	for _, p := range g.players {
		p.FaceDown = append(p.FaceDown, g.deck.Deal(dealSize)...)
	}
	for _, p := range g.players {
		p.FaceUp = append(p.FaceUp, g.deck.Deal(dealSize)...)
	}
	for _, p := range g.players {
		p.Hand = append(p.Hand, g.deck.Deal(dealSize)...)
	}

	faceUp := make([][]Card, 0, len(g.players))
	faceDown := make([]int, 0, len(g.players))
	for _, p := range g.players {
		faceUp = append(faceUp, p.FaceUp)
		faceDown = append(faceDown, len(p.FaceDown))
	}

	for _, p := range g.players {
		g.send(p, MakeMessage("table_dealt", TableDealtMessage{
			PlayerCount: len(g.players),
			DeckSize:    g.deck.CardsLeft(),
			Hand:        p.Hand.Sorted(),
			FaceUp:      faceUp,
			FaceDown:    faceDown,
		}))
	}

	log.Info().Str("game", g.code).Int("players", len(g.players)).
		Int("deck_size", g.deck.CardsLeft()).Msg("table dealt")
}

// MaybeDraw moves the top card of the deck into conn's hand. An empty deck
// is reported to the player with a deck_empty message.
func (g *Game) MaybeDraw(conn Conn) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	idx := g.playerIndex(conn)
	if idx < 0 {
		return false, nil
	}

	if !g.started {
		return false, errors.New("game hasn't started yet")
	}

	p := g.players[idx]

	card, ok := g.deck.Draw()
	if !ok {
		g.send(p, MakeMessage("deck_empty", nil))
		return true, nil
	}
	p.Hand = append(p.Hand, card)

	g.send(p, MakeMessage("card_drawn", CardDrawnMessage{
		Card:     card,
		DeckSize: g.deck.CardsLeft(),
	}))
	for i, other := range g.players {
		if i == idx {
			continue
		}
		g.send(other, MakeMessage("player_drew", PlayerDrewMessage{
			Player:   idx,
			DeckSize: g.deck.CardsLeft(),
		}))
	}

	return true, nil
}

func (g *Game) MaybeSay(conn Conn, message string) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	idx := g.playerIndex(conn)
	if idx < 0 {
		return false, nil
	}

	message = strings.TrimSpace(message)
	if message == "" {
		return false, errors.New("nothing to say")
	}

	for i, p := range g.players {
		if i == idx {
			continue
		}
		g.send(p, MakeMessage("speech", SpeechMessage{
			Player:  idx,
			Message: message,
		}))
	}

	return true, nil
}

func (g *Game) playerIndex(conn Conn) int {
	for i, p := range g.players {
		if p.conn == conn {
			return i
		}
	}
	return -1
}

func (g *Game) playerNames() []string {
	var playerNames []string
	for _, p := range g.players {
		playerNames = append(playerNames, p.name)
	}
	return playerNames
}

func (g *Game) send(p *Player, msg *Message) {
	if err := p.conn.Send(msg); err != nil {
		log.Warn().Err(err).Str("game", g.code).Str("player", p.id).
			Str("type", msg.Type).Msg("send failed")
	}
}
