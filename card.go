package carecaca

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrInvalidCard is returned when a card can't exist in a carecaca deck.
var ErrInvalidCard = errors.New("invalid card value")

type Suit int

const (
	SuitClubs    Suit = 0
	SuitDiamonds Suit = 1
	SuitHearts   Suit = 2
	SuitSpades   Suit = 3
)

func (s Suit) String() string {
	switch s {
	case SuitClubs:
		return "Clubs"
	case SuitDiamonds:
		return "Diamonds"
	case SuitHearts:
		return "Hearts"
	case SuitSpades:
		return "Spades"
	}
	return "Unknown"
}

func (s Suit) symbol() string {
	switch s {
	case SuitClubs:
		return "♣"
	case SuitDiamonds:
		return "♦"
	case SuitHearts:
		return "♥"
	case SuitSpades:
		return "♠"
	}
	return "?"
}

// Color is the colour of the suit. There is no other way to get one.
func (s Suit) Color() Color {
	switch s {
	case SuitDiamonds, SuitHearts:
		return ColorRed
	}
	return ColorBlack
}

func (s Suit) valid() bool {
	return s >= SuitClubs && s <= SuitSpades
}

// AllSuits returns the suits in the order decks are generated.
func AllSuits() []Suit {
	return []Suit{
		SuitClubs,
		SuitDiamonds,
		SuitHearts,
		SuitSpades,
	}
}

type Color int

const (
	ColorRed   Color = 0
	ColorBlack Color = 1
)

func (c Color) String() string {
	if c == ColorRed {
		return "Red"
	}
	return "Black"
}

// Card is a rank and a suit. The colour always follows the suit.
type Card struct {
	rank  Rank
	suit  Suit
	color Color
}

// NewCard returns ErrInvalidCard when a numeric rank is outside 2..10.
func NewCard(rank Rank, suit Suit) (Card, error) {
	if !rank.Valid() {
		return Card{}, fmt.Errorf("%w: %s", ErrInvalidCard, rank.describe())
	}
	if !suit.valid() {
		return Card{}, fmt.Errorf("%w: suit %d", ErrInvalidCard, int(suit))
	}
	return Card{rank: rank, suit: suit, color: suit.Color()}, nil
}

// mustCard is for cards built from known good input. A failure here is a bug.
func mustCard(rank Rank, suit Suit) Card {
	c, err := NewCard(rank, suit)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Card) Rank() Rank {
	return c.rank
}

func (c Card) Suit() Suit {
	return c.suit
}

func (c Card) Color() Color {
	return c.color
}

func (c Card) String() string {
	return c.rank.String() + c.suit.symbol()
}

// CompareCards orders by rank, then by suit and colour.
func CompareCards(a, b Card) int {
	if r := CompareRanks(a.rank, b.rank); r != 0 {
		return r
	}
	switch {
	case a.suit < b.suit:
		return -1
	case a.suit > b.suit:
		return 1
	case a.color < b.color:
		return -1
	case a.color > b.color:
		return 1
	}
	return 0
}

type jsonCard struct {
	Rank  string `json:"rank"`
	Value int    `json:"value,omitempty"`
	Suit  int    `json:"suit"`
	Color string `json:"color"`
}

func (c Card) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonCard{
		Rank:  c.rank.kind.String(),
		Value: c.rank.value,
		Suit:  int(c.suit),
		Color: c.color.String(),
	})
}

func (c *Card) UnmarshalJSON(b []byte) error {
	var raw jsonCard
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	kind, err := parseRankKind(raw.Rank)
	if err != nil {
		return err
	}

	card, err := NewCard(Rank{kind: kind, value: raw.Value}, Suit(raw.Suit))
	if err != nil {
		return err
	}

	*c = card
	return nil
}
