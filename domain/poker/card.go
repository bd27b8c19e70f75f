package poker

import (
	"strconv"

	"github.com/pterm/pterm"
)

// Suit is one of the four card groups.
type Suit uint8

// Suits in deck construction order.
const (
	Heart   Suit = iota // ♥ (red)
	Diamond             // ♦ (red)
	Club                // ♣ (black)
	Spade               // ♠ (black)
)

// Rank is a card's face value. The numeric value of a Rank is its poker
// value: 2-10 for numerals, Jack=11, Queen=12, King=13, Ace=14.
// Ace is always high.
type Rank uint8

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// AllSuits and AllRanks list the enums in the order a fresh deck is built.
var (
	AllSuits = []Suit{Heart, Diamond, Club, Spade}
	AllRanks = []Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}
)

// String returns the plural suit name, e.g. "Hearts".
func (s Suit) String() string {
	switch s {
	case Heart:
		return "Hearts"
	case Diamond:
		return "Diamonds"
	case Club:
		return "Clubs"
	case Spade:
		return "Spades"
	default:
		return "?"
	}
}

// Symbol returns the suit glyph (♥, ♦, ♣, ♠).
func (s Suit) Symbol() string {
	switch s {
	case Heart:
		return "♥"
	case Diamond:
		return "♦"
	case Club:
		return "♣"
	case Spade:
		return "♠"
	default:
		return "?"
	}
}

// Red reports whether the suit is printed in red.
func (s Suit) Red() bool {
	return s == Heart || s == Diamond
}

// String returns the rank name: the number for numerals, the face name
// otherwise.
func (r Rank) String() string {
	switch r {
	case Jack:
		return "Jack"
	case Queen:
		return "Queen"
	case King:
		return "King"
	case Ace:
		return "Ace"
	default:
		return strconv.Itoa(int(r))
	}
}

// Short returns the one or two character rank label used in compact card
// notation (2-10, J, Q, K, A).
func (r Rank) Short() string {
	switch r {
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		return strconv.Itoa(int(r))
	}
}

// Card represents a playing card with suit and rank. Cards are values: two
// cards are equal when suit and rank match.
type Card struct {
	suit Suit
	rank Rank
}

// NewCard creates a Card. Suit and rank are closed enums so there is nothing
// to validate.
func NewCard(suit Suit, rank Rank) Card {
	return Card{
		suit: suit,
		rank: rank,
	}
}

// Suit returns the suit of the Card.
func (c Card) Suit() Suit {
	return c.suit
}

// Rank returns the rank of the Card.
func (c Card) Rank() Rank {
	return c.rank
}

// Value returns the numeric poker value of the card, 2 through 14.
func (c Card) Value() int {
	return int(c.rank)
}

// String returns the compact form of the card, e.g. "A♥" or "10♠".
func (c Card) String() string {
	return c.rank.Short() + c.suit.Symbol()
}

// Pretty returns the compact form with the suit coloured for the terminal.
func (c Card) Pretty() string {
	suit := c.suit.Symbol()
	if c.suit.Red() {
		suit = pterm.LightRed(suit)
	}
	return c.rank.Short() + suit
}

// Name returns the long form of the card, e.g. "Ace of Hearts".
func (c Card) Name() string {
	return c.rank.String() + " of " + c.suit.String()
}

// MarshalText encodes the card in its compact form.
func (c Card) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}
