package carecaca

import (
	"fmt"
	"strconv"
)

type RankKind int

const (
	RankAce     RankKind = 0
	RankNumeric RankKind = 1
	RankJack    RankKind = 2
	RankQueen   RankKind = 3
	RankKing    RankKind = 4
	RankJoker   RankKind = 5
)

func (k RankKind) String() string {
	switch k {
	case RankAce:
		return "Ace"
	case RankNumeric:
		return "Numeric"
	case RankJack:
		return "Jack"
	case RankQueen:
		return "Queen"
	case RankKing:
		return "King"
	case RankJoker:
		return "Joker"
	}
	return "Unknown"
}

func parseRankKind(s string) (RankKind, error) {
	for k := RankAce; k <= RankJoker; k++ {
		if k.String() == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown rank %q", ErrInvalidCard, s)
}

// Rank is the game value of a card. Only numeric ranks carry a value, which
// must be between 2 and 10 for the rank to be usable in a card.
type Rank struct {
	kind  RankKind
	value int
}

func Ace() Rank   { return Rank{kind: RankAce} }
func Jack() Rank  { return Rank{kind: RankJack} }
func Queen() Rank { return Rank{kind: RankQueen} }
func King() Rank  { return Rank{kind: RankKing} }
func Joker() Rank { return Rank{kind: RankJoker} }

// Numeric doesn't check v. NewCard does.
func Numeric(v int) Rank {
	return Rank{kind: RankNumeric, value: v}
}

// AllRanks returns one rank per kind, in the order decks are generated. The
// numeric kind is represented by Numeric(2).
func AllRanks() []Rank {
	return []Rank{
		Ace(),
		Numeric(2),
		Jack(),
		Queen(),
		King(),
		Joker(),
	}
}

func (r Rank) Kind() RankKind {
	return r.kind
}

// Value is the numeric value, or 0 for every other kind.
func (r Rank) Value() int {
	return r.value
}

func (r Rank) Valid() bool {
	switch r.kind {
	case RankNumeric:
		return r.value >= 2 && r.value <= 10
	case RankAce, RankJack, RankQueen, RankKing, RankJoker:
		return r.value == 0
	}
	return false
}

// Strength maps a rank onto the integer used to order ranks:
// 2..10 for numerics, then Jack, Queen, King, Ace and Joker as 11..15.
func (r Rank) Strength() int {
	switch r.kind {
	case RankNumeric:
		return r.value
	case RankJack:
		return 11
	case RankQueen:
		return 12
	case RankKing:
		return 13
	case RankAce:
		return 14
	case RankJoker:
		return 15
	}
	return 0
}

// CompareRanks returns -1, 0 or 1 depending on whether a ranks below, equal
// to or above b.
func CompareRanks(a, b Rank) int {
	sa, sb := a.Strength(), b.Strength()
	switch {
	case sa < sb:
		return -1
	case sa > sb:
		return 1
	}
	// Only reachable with out of range numerics, e.g. Numeric(12) vs Queen.
	switch {
	case a.kind < b.kind:
		return -1
	case a.kind > b.kind:
		return 1
	}
	return 0
}

func (r Rank) Less(o Rank) bool {
	return CompareRanks(r, o) < 0
}

func (r Rank) String() string {
	switch r.kind {
	case RankAce:
		return "A"
	case RankNumeric:
		return strconv.Itoa(r.value)
	case RankJack:
		return "J"
	case RankQueen:
		return "Q"
	case RankKing:
		return "K"
	case RankJoker:
		return "Joker"
	}
	return "?"
}

func (r Rank) describe() string {
	if r.kind == RankNumeric {
		return fmt.Sprintf("numeric rank %d out of range", r.value)
	}
	return fmt.Sprintf("rank %s with value %d", r.kind, r.value)
}
