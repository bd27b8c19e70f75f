package main

import (
	"fmt"
	"log/slog"
	"math/rand"
	"os"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/luca-patrignani/hand-ranker/application"
	"github.com/luca-patrignani/hand-ranker/domain/deck"
)

func main() {
	if len(os.Args) != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s\nconfigure with POKER_PLAYERS, POKER_SEED, POKER_ROUNDS and POKER_LOG_LEVEL\n", os.Args[0])
		os.Exit(1)
	}

	cfg, err := loadConfig()
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	pterm.DefaultLogger.Level = cfg.LogLevel

	// Create a new slog handler with the default PTerm logger
	handler := pterm.NewSlogHandler(&pterm.DefaultLogger)
	logger := slog.New(handler)

	pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("H", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("and ", pterm.FgDarkGray.ToStyle()),
		putils.LettersFromStringWithStyle("R", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("anker", pterm.FgDarkGray.ToStyle()),
	).Render()

	var rng *rand.Rand
	if cfg.Seed != "" {
		logger.Debug("using seeded shuffles", "seed", cfg.Seed)
		rng = deck.NewSeededRand([]byte(cfg.Seed))
	} else {
		rng = deck.NewRand()
	}

	orchestrator := application.NewGameOrchestrator(rng, logger, cfg.Players...)
	for i := 0; i < cfg.Rounds; i++ {
		showdown, err := orchestrator.PlayRound()
		if err != nil {
			logger.Error("round failed", "error", err)
			os.Exit(1)
		}
		printShowdown(showdown)
	}

	if err := orchestrator.History().Verify(); err != nil {
		logger.Error("round history is corrupted", "error", err)
		os.Exit(1)
	}
	logger.Debug("round history verified", "blocks", orchestrator.History().Len())
}
