package carecaca

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuitColor(t *testing.T) {
	assert.Equal(t, ColorBlack, SuitClubs.Color())
	assert.Equal(t, ColorBlack, SuitSpades.Color())
	assert.Equal(t, ColorRed, SuitDiamonds.Color())
	assert.Equal(t, ColorRed, SuitHearts.Color())
}

func TestNewCardValidVariants(t *testing.T) {
	for _, r := range []Rank{Ace(), Jack(), Queen(), King(), Joker()} {
		for _, s := range AllSuits() {
			c, err := NewCard(r, s)
			require.NoError(t, err)
			assert.Equal(t, r, c.Rank())
			assert.Equal(t, s, c.Suit())
			assert.Equal(t, s.Color(), c.Color())
		}
	}
}

func TestNewCardNumeric(t *testing.T) {
	for v := 2; v <= 10; v++ {
		for _, s := range AllSuits() {
			c, err := NewCard(Numeric(v), s)
			require.NoError(t, err)
			assert.Equal(t, v, c.Rank().Value())
			assert.Equal(t, s.Color(), c.Color())
		}
	}
}

func TestNewCardInvalidNumeric(t *testing.T) {
	for v := -300; v <= 300; v++ {
		if v >= 2 && v <= 10 {
			continue
		}
		for _, s := range AllSuits() {
			_, err := NewCard(Numeric(v), s)
			assert.True(t, errors.Is(err, ErrInvalidCard), "value %d", v)
		}
	}
}

func TestNewCardInvalidSuit(t *testing.T) {
	_, err := NewCard(Ace(), Suit(7))
	assert.True(t, errors.Is(err, ErrInvalidCard))
}

func TestCardEquality(t *testing.T) {
	a := mustCard(Numeric(7), SuitHearts)
	b := mustCard(Numeric(7), SuitHearts)
	c := mustCard(Numeric(7), SuitDiamonds)

	assert.True(t, a == b)
	assert.False(t, a == c)
	assert.Equal(t, 0, CompareCards(a, b))
}

func TestCompareCards(t *testing.T) {
	testCases := []struct {
		a, b Card
		want int
	}{
		{mustCard(Numeric(2), SuitSpades), mustCard(Numeric(3), SuitClubs), -1},
		{mustCard(Ace(), SuitClubs), mustCard(King(), SuitSpades), 1},
		{mustCard(Joker(), SuitClubs), mustCard(Ace(), SuitSpades), 1},
		{mustCard(Queen(), SuitClubs), mustCard(Queen(), SuitHearts), -1},
		{mustCard(Queen(), SuitSpades), mustCard(Queen(), SuitHearts), 1},
	}

	for _, testCase := range testCases {
		t.Run(testCase.a.String()+"/"+testCase.b.String(), func(t *testing.T) {
			assert.Equal(t, testCase.want, CompareCards(testCase.a, testCase.b))
			assert.Equal(t, -testCase.want, CompareCards(testCase.b, testCase.a))
		})
	}
}

func TestCardJSON(t *testing.T) {
	c := mustCard(Numeric(10), SuitHearts)

	b, err := json.Marshal(c)
	require.NoError(t, err)
	assert.JSONEq(t, `{"rank":"Numeric","value":10,"suit":2,"color":"Red"}`, string(b))

	var back Card
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, c, back)

	b, err = json.Marshal(mustCard(Joker(), SuitSpades))
	require.NoError(t, err)
	assert.JSONEq(t, `{"rank":"Joker","suit":3,"color":"Black"}`, string(b))
}

func TestCardUnmarshalInvalid(t *testing.T) {
	for _, raw := range []string{
		`{"rank":"Numeric","value":11,"suit":0}`,
		`{"rank":"Numeric","suit":0}`,
		`{"rank":"Knight","suit":0}`,
		`{"rank":"King","value":3,"suit":0}`,
		`{"rank":"King","suit":12}`,
	} {
		var c Card
		err := json.Unmarshal([]byte(raw), &c)
		assert.True(t, errors.Is(err, ErrInvalidCard), raw)
	}
}

func TestCardString(t *testing.T) {
	assert.Equal(t, "10♥", mustCard(Numeric(10), SuitHearts).String())
	assert.Equal(t, "A♠", mustCard(Ace(), SuitSpades).String())
}

func TestMustCardPanics(t *testing.T) {
	assert.Panics(t, func() { mustCard(Numeric(1), SuitClubs) })
}
