// Package poker implements the domain logic for a small fixed-hand poker
// game: cards, a 52-card deck, hand classification, players and the table
// that deals to them and picks a winner.
//
// # Core Types
//
// Card: An immutable playing card with suit and rank. Ace is always high.
//
// PokerDeck: The 52 cards of a game, shuffled with an injected generator and
// dealt from the front without replacement.
//
// Player: A named seat holding up to two cards.
//
// Game: The players and the deck of one table. It deals two cards to each
// player in turn and selects the player with the strongest hand.
//
// # Hand Evaluation
//
// Classify maps any number of cards to a HandRank, from HighCard up to
// RoyalFlush. Only the category is compared: two hands of the same
// category are a tie, and Game.Winner then picks the first registered
// player among them.
package poker
