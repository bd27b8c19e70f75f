package poker

import (
	"testing"

	"github.com/luca-patrignani/hand-ranker/domain/deck"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	return NewGame(deck.NewSeededRand([]byte(t.Name())))
}

func give(t *testing.T, p *Player, cards ...Card) {
	t.Helper()
	for _, c := range cards {
		require.NoError(t, p.AddCard(c))
	}
}

func TestAddPlayerAllowsDuplicates(t *testing.T) {
	g := newTestGame(t)
	a := g.AddPlayer("Alice")
	b := g.AddPlayer("Alice")
	require.Len(t, g.Players, 2)
	assert.NotSame(t, a, b)
	assert.Empty(t, a.Hand())
	assert.Equal(t, DefaultHandSize, a.HandSize())
}

func TestDealOrder(t *testing.T) {
	g := newTestGame(t)
	g.Deck = NewOrderedPokerDeck(g.rng)
	alice := g.AddPlayer("Alice")
	bob := g.AddPlayer("Bob")

	require.NoError(t, g.Deal())
	assert.Equal(t, []Card{NewCard(Heart, Two), NewCard(Heart, Three)}, alice.Hand())
	assert.Equal(t, []Card{NewCard(Heart, Four), NewCard(Heart, Five)}, bob.Hand())
	assert.Equal(t, DeckSize-4, g.Deck.Remaining())
}

func TestDealTwiceFailsWithoutTouchingDeck(t *testing.T) {
	g := newTestGame(t)
	g.AddPlayer("Alice")
	g.AddPlayer("Bob")
	require.NoError(t, g.Deal())

	err := g.Deal()
	assert.ErrorIs(t, err, ErrHandFull)
	assert.Equal(t, DeckSize-4, g.Deck.Remaining())
	for _, p := range g.Players {
		assert.Len(t, p.Hand(), DefaultHandSize)
	}
}

func TestDealNoDuplicateCards(t *testing.T) {
	g := newTestGame(t)
	for i := 0; i < DeckSize/DefaultHandSize; i++ {
		g.AddPlayer("player")
	}
	require.NoError(t, g.Deal())
	assert.Equal(t, 0, g.Deck.Remaining())

	seen := make(map[Card]bool)
	for _, p := range g.Players {
		for _, c := range p.Hand() {
			require.False(t, seen[c], "card %s dealt twice", c)
			seen[c] = true
		}
	}
	assert.Len(t, seen, DeckSize)
}

func TestDealPastEmptyDeck(t *testing.T) {
	g := newTestGame(t)
	for i := 0; i < DeckSize/DefaultHandSize+1; i++ {
		g.AddPlayer("player")
	}
	assert.ErrorIs(t, g.Deal(), ErrEmptyDeck)
	assert.Equal(t, DeckSize, g.Deck.Remaining())
	for _, p := range g.Players {
		assert.Empty(t, p.Hand())
	}
}

func TestDealPartialHandFailsWithoutTouchingDeck(t *testing.T) {
	g := newTestGame(t)
	g.AddPlayer("Alice")
	bob := g.AddPlayer("Bob")
	require.NoError(t, bob.AddCard(NewCard(Spade, Ace)))

	assert.ErrorIs(t, g.Deal(), ErrHandFull)
	assert.Equal(t, DeckSize, g.Deck.Remaining())
	assert.Empty(t, g.Players[0].Hand())
	assert.Len(t, bob.Hand(), 1)
}

func TestWinnerFirstAmongEqualRanks(t *testing.T) {
	g := newTestGame(t)
	give(t, g.AddPlayer("Alice"), NewCard(Club, Two), NewCard(Diamond, Five))
	bob := g.AddPlayer("Bob")
	give(t, bob, NewCard(Club, Nine), NewCard(Diamond, Nine))
	give(t, g.AddPlayer("Carol"), NewCard(Heart, Four), NewCard(Spade, Four))

	w, err := g.Winner()
	require.NoError(t, err)
	assert.Same(t, bob, w)

	line, err := g.DescribeWinner()
	require.NoError(t, err)
	assert.Equal(t, "Bob wins with a hand of OnePair!", line)
}

func TestWinnerStrongestRank(t *testing.T) {
	g := newTestGame(t)
	give(t, g.AddPlayer("Alice"), NewCard(Club, Nine), NewCard(Diamond, Nine))
	give(t, g.AddPlayer("Bob"), NewCard(Heart, Ten), NewCard(Heart, Ace))
	carol := g.AddPlayer("Carol")
	give(t, carol, NewCard(Spade, Ten), NewCard(Spade, Jack))

	w, err := g.Winner()
	require.NoError(t, err)
	assert.Same(t, carol, w)
}

func TestWinnerNoPlayers(t *testing.T) {
	g := newTestGame(t)
	_, err := g.Winner()
	assert.ErrorIs(t, err, ErrNoPlayers)
	_, err = g.DescribeWinner()
	assert.ErrorIs(t, err, ErrNoPlayers)
	_, err = g.Showdown()
	assert.ErrorIs(t, err, ErrNoPlayers)
}

func TestShowdown(t *testing.T) {
	g := newTestGame(t)
	give(t, g.AddPlayer("Alice"), NewCard(Club, Two), NewCard(Diamond, Five))
	give(t, g.AddPlayer("Bob"), NewCard(Club, Nine), NewCard(Diamond, Nine))

	s, err := g.Showdown()
	require.NoError(t, err)
	assert.Equal(t, g.RoundID, s.RoundID)
	require.Len(t, s.Hands, 2)
	assert.Equal(t, HighCard, s.Hands[0].Rank)
	assert.Equal(t, OnePair, s.Hands[1].Rank)
	assert.Equal(t, 1, s.Winner)
	w, ok := s.WinnerHand()
	require.True(t, ok)
	assert.Equal(t, "Bob", w.Name)
	assert.Equal(t, "Bob wins with a hand of OnePair!", s.Announcement())
}

func TestEmptyShowdownHasNoWinner(t *testing.T) {
	var s Showdown
	_, ok := s.WinnerHand()
	assert.False(t, ok)
	assert.Empty(t, s.Announcement())

	s = Showdown{Hands: []PlayerHand{{Name: "Alice"}}, Winner: 3}
	_, ok = s.WinnerHand()
	assert.False(t, ok)
	assert.Empty(t, s.Announcement())
}

func TestNewRound(t *testing.T) {
	g := newTestGame(t)
	g.AddPlayer("Alice")
	g.AddPlayer("Bob")
	require.NoError(t, g.Deal())
	previous := g.RoundID

	g.NewRound()
	assert.NotEqual(t, previous, g.RoundID)
	assert.Equal(t, DeckSize, g.Deck.Remaining())
	for _, p := range g.Players {
		assert.Empty(t, p.Hand())
	}
	require.NoError(t, g.Deal())
}

func TestSeededGamesDealTheSameHands(t *testing.T) {
	deal := func() [][]Card {
		g := NewGame(deck.NewSeededRand([]byte("same table")))
		g.AddPlayer("Alice")
		g.AddPlayer("Bob")
		require.NoError(t, g.Deal())
		return [][]Card{g.Players[0].Hand(), g.Players[1].Hand()}
	}
	assert.Equal(t, deal(), deal())
}
