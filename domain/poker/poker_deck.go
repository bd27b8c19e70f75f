package poker

import (
	"math/rand"

	"github.com/luca-patrignani/hand-ranker/domain/deck"
)

// DeckSize is the number of cards in a full deck.
const DeckSize = 52

// PokerDeck is an ordered pile of cards dealt from the front. A fresh deck
// holds each suit×rank combination exactly once; cards only ever leave it
// through Deal, so no card can be dealt twice.
//
// A PokerDeck is not safe for concurrent use.
type PokerDeck struct {
	cards []Card
	rng   *rand.Rand
}

// NewPokerDeck creates a full 52-card deck and shuffles it with rng.
func NewPokerDeck(rng *rand.Rand) *PokerDeck {
	d := NewOrderedPokerDeck(rng)
	d.Shuffle()
	return d
}

// NewOrderedPokerDeck creates a full 52-card deck in construction order
// (Hearts, Diamonds, Clubs, Spades; Two through Ace within each suit).
// rng is kept for later calls to Shuffle.
func NewOrderedPokerDeck(rng *rand.Rand) *PokerDeck {
	cards := make([]Card, 0, DeckSize)
	for _, s := range AllSuits {
		for _, r := range AllRanks {
			cards = append(cards, NewCard(s, r))
		}
	}
	return &PokerDeck{
		cards: cards,
		rng:   rng,
	}
}

// Shuffle permutes the remaining cards uniformly at random.
func (d *PokerDeck) Shuffle() {
	deck.Permute(d.rng, d.cards)
}

// Deal removes and returns the front card of the deck. It returns
// ErrEmptyDeck when no cards remain.
func (d *PokerDeck) Deal() (Card, error) {
	if len(d.cards) == 0 {
		return Card{}, ErrEmptyDeck
	}
	card := d.cards[0]
	d.cards = d.cards[1:]
	return card, nil
}

// Remaining returns the number of cards left to deal.
func (d *PokerDeck) Remaining() int {
	return len(d.cards)
}

// Cards returns a copy of the remaining cards, front first.
func (d *PokerDeck) Cards() []Card {
	return append([]Card(nil), d.cards...)
}
