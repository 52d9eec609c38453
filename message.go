package carecaca

import "encoding/json"

type Message struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

type ErrorMessage string

type WelcomeMessage struct {
	Text string `json:"text"`
}

type CreateGameMessage struct {
	Name        string `json:"name"`
	PlayerCount int    `json:"player_count"`
}

type JoinGameMessage struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type GameLobbyMessage struct {
	Code        string   `json:"code"`
	Host        bool     `json:"host"`
	CanStart    bool     `json:"can_start"`
	PlayerCount int      `json:"player_count"`
	PlayerNames []string `json:"player_names"`
}

type GameStartedMessage struct {
	PlayerID    string   `json:"player_id"`
	Name        string   `json:"name"`
	PlayerNames []string `json:"player_names"`
}

type TableDealtMessage struct {
	PlayerCount int      `json:"player_count"`
	DeckSize    int      `json:"deck_size"`
	Hand        []Card   `json:"hand"`
	FaceUp      [][]Card `json:"face_up"`
	FaceDown    []int    `json:"face_down"`
}

type CardDrawnMessage struct {
	Card     Card `json:"card"`
	DeckSize int  `json:"deck_size"`
}

type PlayerDrewMessage struct {
	Player   int `json:"player"`
	DeckSize int `json:"deck_size"`
}

type SpeechMessage struct {
	Player  int    `json:"player"`
	Message string `json:"message"`
}

func MakeMessage(typ string, data interface{}) *Message {
	b, err := json.Marshal(data)
	if err != nil {
		panic(err)
	}

	return &Message{typ, b}
}
