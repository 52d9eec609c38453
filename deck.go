package carecaca

// Source is the randomness a deck is shuffled with. *rand.Rand satisfies it,
// so tests can pass a seeded generator.
type Source interface {
	Shuffle(n int, swap func(i, j int))
}

// Deck is a 54 card deck: the standard 52 plus one red and one black Joker.
// The end of the slice is the top of the deck.
//
// A deck does no locking. Whoever deals from it owns it.
type Deck struct {
	cards []Card
}

// NewDeck returns a deck in the same order every time.
func NewDeck() *Deck {
	cards := make([]Card, 0, 54)
	for _, r := range AllRanks() {
		for _, s := range AllSuits() {
			switch r.Kind() {
			case RankNumeric:
				for v := 2; v <= 10; v++ {
					cards = append(cards, mustCard(Numeric(v), s))
				}
			case RankJoker:
				// One Joker per colour, not per suit.
				if hasJoker(cards, s.Color()) {
					continue
				}
				cards = append(cards, mustCard(r, s))
			default:
				cards = append(cards, mustCard(r, s))
			}
		}
	}
	return &Deck{cards}
}

func hasJoker(cards []Card, c Color) bool {
	for _, card := range cards {
		if card.rank.kind == RankJoker && card.color == c {
			return true
		}
	}
	return false
}

func NewShuffledDeck(rng Source) *Deck {
	d := NewDeck()
	d.Shuffle(rng)
	return d
}

// Shuffle reorders the deck in place.
func (d *Deck) Shuffle(rng Source) {
	rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Draw takes the top card. ok is false once the deck is empty.
func (d *Deck) Draw() (card Card, ok bool) {
	if len(d.cards) == 0 {
		return Card{}, false
	}
	card = d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return card, true
}

// Deal draws up to n cards, fewer if the deck runs out.
func (d *Deck) Deal(n int) []Card {
	var res []Card
	for i := 0; i < n; i++ {
		c, ok := d.Draw()
		if !ok {
			break
		}
		res = append(res, c)
	}
	return res
}

func (d *Deck) CardsLeft() int {
	return len(d.cards)
}
