package carecaca

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandSorted(t *testing.T) {
	hand := Hand{
		mustCard(Joker(), SuitClubs),
		mustCard(Numeric(7), SuitHearts),
		mustCard(Ace(), SuitSpades),
		mustCard(Numeric(2), SuitDiamonds),
		mustCard(King(), SuitClubs),
	}

	assert.Equal(t, Hand{
		mustCard(Numeric(2), SuitDiamonds),
		mustCard(Numeric(7), SuitHearts),
		mustCard(King(), SuitClubs),
		mustCard(Ace(), SuitSpades),
		mustCard(Joker(), SuitClubs),
	}, hand.Sorted())

	// The original is untouched.
	assert.Equal(t, Joker(), hand[0].Rank())
}

func TestHandRemove(t *testing.T) {
	seven := mustCard(Numeric(7), SuitHearts)
	hand := Hand{mustCard(Ace(), SuitSpades), seven, mustCard(Queen(), SuitClubs)}

	assert.True(t, hand.Contains(seven))

	rest, ok := hand.Remove(seven)
	assert.True(t, ok)
	assert.Equal(t, Hand{mustCard(Ace(), SuitSpades), mustCard(Queen(), SuitClubs)}, rest)
	assert.False(t, rest.Contains(seven))
	assert.Len(t, hand, 3)

	same, ok := rest.Remove(seven)
	assert.False(t, ok)
	assert.Equal(t, rest, same)
}
