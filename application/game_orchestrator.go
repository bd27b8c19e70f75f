package application

import (
	"fmt"
	"log/slog"
	"math/rand"
	"strconv"

	"github.com/luca-patrignani/hand-ranker/domain/poker"
	"github.com/luca-patrignani/hand-ranker/ledger"
)

// GameOrchestrator plays rounds at one table and records every showdown in
// the round history.
type GameOrchestrator struct {
	game    *poker.Game
	history *ledger.Blockchain
	logger  *slog.Logger
	played  int
}

// NewGameOrchestrator seats the named players at a new table whose shuffles
// are driven by rng.
func NewGameOrchestrator(rng *rand.Rand, logger *slog.Logger, names ...string) *GameOrchestrator {
	game := poker.NewGame(rng)
	for _, name := range names {
		game.AddPlayer(name)
	}
	return &GameOrchestrator{
		game:    game,
		history: ledger.NewBlockchain(),
		logger:  logger,
	}
}

// PlayRound starts a fresh round, deals every player their cards, and
// returns and records the showdown.
func (o *GameOrchestrator) PlayRound() (poker.Showdown, error) {
	if o.played > 0 {
		o.game.NewRound()
	}
	o.played++
	log := o.logger.With("round", o.game.RoundID)

	if err := o.game.Deal(); err != nil {
		return poker.Showdown{}, fmt.Errorf("deal failed: %w", err)
	}
	log.Debug("cards dealt", "players", len(o.game.Players), "deck_remaining", o.game.Deck.Remaining())

	showdown, err := o.game.Showdown()
	if err != nil {
		return poker.Showdown{}, err
	}
	winner, _ := showdown.WinnerHand()
	log.Info("showdown", "winner", winner.Name, "rank", winner.Rank.String())

	err = o.history.Append(showdown, map[string]string{
		"round":   strconv.Itoa(o.played),
		"players": strconv.Itoa(len(showdown.Hands)),
	})
	if err != nil {
		return poker.Showdown{}, fmt.Errorf("recording round: %w", err)
	}
	return showdown, nil
}

// Game exposes the table being played.
func (o *GameOrchestrator) Game() *poker.Game {
	return o.game
}

// History returns the ledger of played rounds.
func (o *GameOrchestrator) History() *ledger.Blockchain {
	return o.history
}
