package poker

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/google/uuid"
)

// Game is the representation of a table: the registered players and the
// deck they are dealt from. The deck belongs to the game alone; every dealt
// card moves into exactly one player's hand.
//
// A Game is not safe for concurrent use.
type Game struct {
	Players  []*Player
	Deck     *PokerDeck
	HandSize int
	RoundID  string // identifier for the current round
	rng      *rand.Rand
}

// NewGame creates an empty table with a freshly shuffled deck. rng drives
// every shuffle of the game.
func NewGame(rng *rand.Rand) *Game {
	return &Game{
		Deck:     NewPokerDeck(rng),
		HandSize: DefaultHandSize,
		RoundID:  uuid.New().String(),
		rng:      rng,
	}
}

// AddPlayer seats a new player with an empty hand. Names need not be unique.
func (g *Game) AddPlayer(name string) *Player {
	p := NewPlayer(name, g.HandSize)
	g.Players = append(g.Players, p)
	return p
}

// Deal gives every player HandSize cards, in registration order, completing
// one player's hand before moving to the next.
//
// Deal checks the whole table before taking any card: it fails with
// ErrHandFull when a hand has no room for HandSize more cards and with
// ErrEmptyDeck when the deck cannot cover every player. On error no card is
// dealt.
func (g *Game) Deal() error {
	for _, p := range g.Players {
		if len(p.hand)+g.HandSize > p.handSize {
			return fmt.Errorf("dealing to %s: %w", p.Name, ErrHandFull)
		}
	}
	if need := len(g.Players) * g.HandSize; need > g.Deck.Remaining() {
		return fmt.Errorf("dealing %d cards from %d: %w", need, g.Deck.Remaining(), ErrEmptyDeck)
	}

	for _, p := range g.Players {
		for i := 0; i < g.HandSize; i++ {
			card, err := g.Deck.Deal()
			if err != nil {
				return fmt.Errorf("dealing to %s: %w", p.Name, err)
			}
			if err := p.AddCard(card); err != nil {
				return err
			}
		}
	}
	return nil
}

// NewRound clears every hand, replaces the deck with a freshly shuffled one
// and assigns a new round ID.
func (g *Game) NewRound() {
	for _, p := range g.Players {
		p.ClearHand()
	}
	g.Deck = NewPokerDeck(g.rng)
	g.RoundID = uuid.New().String()
}

// Winner returns the player holding the strongest HandRank. Ties are not
// broken: among equal ranks the first registered player wins.
func (g *Game) Winner() (*Player, error) {
	idx, err := g.winnerIndex()
	if err != nil {
		return nil, err
	}
	return g.Players[idx], nil
}

// DescribeWinner returns the winner line, "<Name> wins with a hand of <HandRank>!".
func (g *Game) DescribeWinner() (string, error) {
	w, err := g.Winner()
	if err != nil {
		return "", err
	}
	return announce(w.Name, w.HandRank()), nil
}

// Showdown reveals every hand and the winner of the current round.
func (g *Game) Showdown() (Showdown, error) {
	idx, err := g.winnerIndex()
	if err != nil {
		return Showdown{}, err
	}
	hands := make([]PlayerHand, len(g.Players))
	for i, p := range g.Players {
		hands[i] = PlayerHand{
			Name: p.Name,
			Hand: p.Hand(),
			Rank: p.HandRank(),
		}
	}
	return Showdown{
		RoundID: g.RoundID,
		Hands:   hands,
		Winner:  idx,
	}, nil
}

func (g *Game) winnerIndex() (int, error) {
	if len(g.Players) == 0 {
		return 0, ErrNoPlayers
	}
	type scored struct {
		idx  int
		rank HandRank
	}
	scoredPlayers := make([]scored, len(g.Players))
	for i, p := range g.Players {
		scoredPlayers[i] = scored{idx: i, rank: p.HandRank()}
	}

	// stable, so equal ranks keep registration order
	sort.SliceStable(scoredPlayers, func(i, j int) bool {
		return scoredPlayers[i].rank > scoredPlayers[j].rank
	})
	return scoredPlayers[0].idx, nil
}
