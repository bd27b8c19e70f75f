package poker

import (
	"fmt"
	"strings"
)

// Player is a named seat at the table holding up to handSize cards.
type Player struct {
	Name     string
	hand     []Card
	handSize int
}

// NewPlayer creates a player with an empty hand that can hold handSize cards.
func NewPlayer(name string, handSize int) *Player {
	return &Player{
		Name:     name,
		hand:     make([]Card, 0, handSize),
		handSize: handSize,
	}
}

// AddCard puts card in the player's hand. It fails with ErrHandFull, leaving
// the hand untouched, when the hand already holds handSize cards.
func (p *Player) AddCard(card Card) error {
	if p.full() {
		return fmt.Errorf("player %s already has %d cards: %w", p.Name, p.handSize, ErrHandFull)
	}
	p.hand = append(p.hand, card)
	return nil
}

// ClearHand empties the hand for a new round.
func (p *Player) ClearHand() {
	p.hand = p.hand[:0]
}

// Hand returns a copy of the cards held, in the order they were dealt.
func (p *Player) Hand() []Card {
	return append([]Card(nil), p.hand...)
}

// HandSize returns the maximum number of cards the player can hold.
func (p *Player) HandSize() int {
	return p.handSize
}

// HandRank classifies the current hand.
func (p *Player) HandRank() HandRank {
	return Classify(p.hand)
}

func (p *Player) full() bool {
	return len(p.hand) >= p.handSize
}

func (p *Player) String() string {
	cards := make([]string, len(p.hand))
	for i, c := range p.hand {
		cards[i] = c.String()
	}
	return fmt.Sprintf("%s holds: %s", p.Name, strings.Join(cards, ", "))
}
