package carecaca

import "sort"

// Hand is one of a player's groups of cards: the hand itself, the face up
// cards or the face down cards.
type Hand []Card

// Sorted returns a copy ordered from the lowest card to the highest.
func (h Hand) Sorted() Hand {
	res := make(Hand, len(h))
	copy(res, h)
	sort.SliceStable(res, func(i, j int) bool {
		return CompareCards(res[i], res[j]) < 0
	})
	return res
}

func (h Hand) Contains(c Card) bool {
	for _, hc := range h {
		if hc == c {
			return true
		}
	}
	return false
}

// Remove drops the first copy of c.
func (h Hand) Remove(c Card) (Hand, bool) {
	for i, hc := range h {
		if hc != c {
			continue
		}
		res := make(Hand, 0, len(h)-1)
		res = append(res, h[:i]...)
		return append(res, h[i+1:]...), true
	}
	return h, false
}
