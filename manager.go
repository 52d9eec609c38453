package carecaca

import (
	"encoding/json"
	"errors"
	"math/rand"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
)

type Manager struct {
	gamesMu sync.Mutex
	games   map[string]*Game
	// seats maps each connection to the code of the one game it's in.
	seats map[Conn]string
	// rng is only used with gamesMu held.
	rng *rand.Rand
}

var (
	errAlreadySeated = errors.New("you're already in a game")
	errNotSeated     = errors.New("you're not in a game")
)

// NewManager returns a manager whose game codes and decks all derive from
// seed.
func NewManager(seed int64) *Manager {
	return &Manager{
		games: make(map[string]*Game),
		seats: make(map[Conn]string),
		rng:   rand.New(rand.NewSource(seed)),
	}
}

func (m *Manager) Handle(conn Conn, msg *Message) error {
	switch msg.Type {
	case "create_game":
		var data CreateGameMessage
		if err := json.Unmarshal(msg.Data, &data); err != nil {
			return err
		}
		return m.CreateGame(conn, data)
	case "join_game":
		var data JoinGameMessage
		if err := json.Unmarshal(msg.Data, &data); err != nil {
			return err
		}
		return m.JoinGame(conn, data)
	case "leave_game":
		return m.LeaveGame(conn)
	case "start_game":
		return m.StartGame(conn)
	case "draw":
		return m.Draw(conn)
	case "speech":
		var data SpeechMessage
		if err := json.Unmarshal(msg.Data, &data); err != nil {
			return err
		}
		return m.Speech(conn, data.Message)
	}
	return errors.New("unknown message type")
}

func (m *Manager) CreateGame(conn Conn, msg CreateGameMessage) error {
	m.gamesMu.Lock()
	defer m.gamesMu.Unlock()

	if _, ok := m.seats[conn]; ok {
		return errAlreadySeated
	}

	log.Info().Str("remote", conn.RemoteAddr()).Str("name", msg.Name).
		Int("player_count", msg.PlayerCount).Msg("create_game")

	var code string
	for {
		code = m.makeGameCode()
		if _, ok := m.games[code]; !ok {
			break
		}
	}

	// Each game gets its own generator so games can deal concurrently.
	game, err := NewGame(code, msg.PlayerCount, rand.New(rand.NewSource(m.rng.Int63())))
	if err != nil {
		return err
	}

	if err := game.Join(conn, msg.Name); err != nil {
		return err
	}
	m.games[code] = game
	m.seats[conn] = code

	return nil
}

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

func (m *Manager) makeGameCode() string {
	var code string
	for i := 0; i < 4; i++ {
		code += string(alphabet[m.rng.Intn(len(alphabet))])
	}
	return code
}

// Game looks a game up by its code.
func (m *Manager) Game(code string) (*Game, bool) {
	m.gamesMu.Lock()
	defer m.gamesMu.Unlock()

	g, ok := m.games[strings.TrimSpace(strings.ToUpper(code))]
	return g, ok
}

// seated returns conn's game. gamesMu must be held.
func (m *Manager) seated(conn Conn) (*Game, error) {
	code, ok := m.seats[conn]
	if !ok {
		return nil, errNotSeated
	}
	return m.games[code], nil
}

func (m *Manager) JoinGame(conn Conn, msg JoinGameMessage) error {
	code := strings.TrimSpace(strings.ToUpper(msg.Code))
	if code == "" {
		return errors.New("please enter a game code")
	}

	// The lock is held across Join so the game can't be removed by the last
	// player leaving while someone is joining it.
	m.gamesMu.Lock()
	defer m.gamesMu.Unlock()

	if _, ok := m.seats[conn]; ok {
		return errAlreadySeated
	}

	game, ok := m.games[code]
	if !ok {
		return errors.New("game not found")
	}

	log.Info().Str("remote", conn.RemoteAddr()).Str("game", code).
		Str("name", msg.Name).Msg("join_game")

	name := strings.TrimSpace(msg.Name)
	if name == "" {
		return errors.New("please enter your name")
	}

	if err := game.Join(conn, name); err != nil {
		return err
	}
	m.seats[conn] = code

	return nil
}

// LeaveGame takes conn out of its game, if any. Games are dropped once the
// last player leaves.
func (m *Manager) LeaveGame(conn Conn) error {
	m.gamesMu.Lock()
	defer m.gamesMu.Unlock()

	code, ok := m.seats[conn]
	if !ok {
		return nil
	}
	delete(m.seats, conn)

	g := m.games[code]
	g.MaybeLeave(conn)
	log.Info().Str("remote", conn.RemoteAddr()).Str("game", code).
		Msg("leave_game")

	if g.Empty() {
		delete(m.games, code)
		log.Debug().Str("game", code).Msg("game removed")
	}

	return nil
}

func (m *Manager) StartGame(conn Conn) error {
	m.gamesMu.Lock()
	defer m.gamesMu.Unlock()

	g, err := m.seated(conn)
	if err != nil {
		return err
	}

	if _, err := g.MaybeStart(conn); err != nil {
		return err
	}
	log.Info().Str("remote", conn.RemoteAddr()).Str("game", g.Code()).
		Msg("start_game")

	return nil
}

func (m *Manager) Draw(conn Conn) error {
	m.gamesMu.Lock()
	defer m.gamesMu.Unlock()

	g, err := m.seated(conn)
	if err != nil {
		return err
	}

	if _, err := g.MaybeDraw(conn); err != nil {
		return err
	}
	log.Debug().Str("remote", conn.RemoteAddr()).Str("game", g.Code()).
		Int("deck_size", g.CardsLeft()).Msg("draw")

	return nil
}

func (m *Manager) Speech(conn Conn, message string) error {
	if len(message) > 160 {
		return errors.New("message too long")
	}

	m.gamesMu.Lock()
	defer m.gamesMu.Unlock()

	g, err := m.seated(conn)
	if err != nil {
		return err
	}

	_, err = g.MaybeSay(conn, message)
	return err
}
