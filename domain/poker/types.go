package poker

import "errors"

var (
	// ErrEmptyDeck is returned when dealing from a deck with no cards left.
	ErrEmptyDeck = errors.New("no cards left in the deck")
	// ErrHandFull is returned when a card is added to a hand that already
	// holds the configured number of cards.
	ErrHandFull = errors.New("hand is full")
	// ErrNoPlayers is returned when a winner is requested from an empty table.
	ErrNoPlayers = errors.New("no players at the table")
)

// DefaultHandSize is the number of cards each player is dealt.
const DefaultHandSize = 2

// HandRank is the poker category of a hand. Values are ordered by strength,
// so HandRank values compare directly.
type HandRank uint8

// Hand categories, weakest first.
const (
	HighCard HandRank = iota // no other category matches
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush // ace-high straight flush
)

var handRankNames = [...]string{
	HighCard:      "HighCard",
	OnePair:       "OnePair",
	TwoPair:       "TwoPair",
	ThreeOfAKind:  "ThreeOfAKind",
	Straight:      "Straight",
	Flush:         "Flush",
	FullHouse:     "FullHouse",
	FourOfAKind:   "FourOfAKind",
	StraightFlush: "StraightFlush",
	RoyalFlush:    "RoyalFlush",
}

// String returns the category name, e.g. "OnePair".
func (h HandRank) String() string {
	if int(h) < len(handRankNames) {
		return handRankNames[h]
	}
	return "Unknown"
}

// MarshalText encodes the category by name so ledger entries stay readable.
func (h HandRank) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

// PlayerHand is a player's hand as revealed at showdown.
type PlayerHand struct {
	Name string   `json:"name"`
	Hand []Card   `json:"hand"`
	Rank HandRank `json:"rank"`
}

// Showdown is the outcome of one round: every hand in registration order and
// the single winner.
type Showdown struct {
	RoundID string       `json:"round_id"`
	Hands   []PlayerHand `json:"hands"`
	Winner  int          `json:"winner"` // index into Hands
}

// WinnerHand returns the winning entry of the showdown. ok is false when
// Winner does not index Hands, as for the zero Showdown.
func (s Showdown) WinnerHand() (hand PlayerHand, ok bool) {
	if s.Winner < 0 || s.Winner >= len(s.Hands) {
		return PlayerHand{}, false
	}
	return s.Hands[s.Winner], true
}

// Announcement returns the winner line, "<Name> wins with a hand of <HandRank>!",
// or an empty string when the showdown has no winner.
func (s Showdown) Announcement() string {
	w, ok := s.WinnerHand()
	if !ok {
		return ""
	}
	return announce(w.Name, w.Rank)
}

func announce(name string, rank HandRank) string {
	return name + " wins with a hand of " + rank.String() + "!"
}
