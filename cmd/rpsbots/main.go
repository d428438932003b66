package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/veylence/rpsbots/internal/config"
	"github.com/veylence/rpsbots/internal/rating"
	"github.com/veylence/rpsbots/internal/report"
	"github.com/veylence/rpsbots/internal/strategy"
	"github.com/veylence/rpsbots/internal/tournament"
	"github.com/veylence/rpsbots/internal/tui"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to a YAML config file")
		rounds     = flag.Int("rounds", 0, "rounds per game")
		games      = flag.Int("games", 0, "games per match")
		training   = flag.Bool("training", true, "carry training state across games")
		parallel   = flag.Bool("parallel", false, "play participant-disjoint matches concurrently")
		plain      = flag.Bool("plain", false, "plain text output instead of the TUI")
		players    = flag.String("players", "", "comma separated roster (default: every offline strategy)")
		results    = flag.String("results", "", "write final standings to this YAML file")
		verbose    = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Flags given on the command line win over the config file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "rounds":
			cfg.Rounds = *rounds
		case "games":
			cfg.Games = *games
		case "training":
			cfg.Training = *training
		case "parallel":
			cfg.Parallel = *parallel
		case "plain":
			cfg.Plain = *plain
		case "players":
			cfg.Players = strings.Split(*players, ",")
		case "results":
			cfg.Results = *results
		}
	})

	logger := logrus.New()
	logger.SetLevel(logrus.WarnLevel)
	if *verbose {
		logger.SetLevel(logrus.DebugLevel)
	}
	if !cfg.Plain {
		// Keep stderr quiet while the alternate screen is up.
		logger.SetOutput(io.Discard)
	}

	opts := []tournament.Option{tournament.WithLogger(logger)}
	if cfg.Parallel {
		opts = append(opts, tournament.WithParallelMatches())
	}

	var feed *tui.Feed
	if cfg.Plain {
		opts = append(opts, tournament.WithReporter(report.NewConsole(os.Stdout)))
	} else {
		feed = tui.NewFeed()
		opts = append(opts, tournament.WithReporter(feed))
	}

	mgr := tournament.New(rating.NewSystem(cfg.Rating), opts...)

	for _, name := range cfg.Players {
		name = strings.TrimSpace(name)
		factory, ok := strategy.Lookup(name)
		if !ok {
			fmt.Printf("Error building roster: unknown strategy %q (have: %s)\n",
				name, strings.Join(strategy.Names(), ", "))
			os.Exit(1)
		}
		if name == "gemini" && cfg.GeminiAPIKey == "" {
			// Without the key every gemini game would forfeit; refuse early.
			fmt.Printf("Error building roster: GEMINI_API_KEY environment variable is not set\n")
			os.Exit(1)
		}
		if err := mgr.Register(name, factory); err != nil {
			fmt.Printf("Error registering %s: %v\n", name, err)
			os.Exit(1)
		}
	}

	var standings []tournament.Standing
	if cfg.Plain {
		if err := mgr.Run(cfg.Rounds, cfg.Games, cfg.Training); err != nil {
			fmt.Printf("Error running tournament: %v\n", err)
			os.Exit(1)
		}
		standings = mgr.Standings()
	} else {
		standings, err = tui.Run(mgr, feed, cfg.Rounds, cfg.Games, cfg.Training)
		if err != nil {
			fmt.Printf("Error running tournament: %v\n", err)
			os.Exit(1)
		}
	}

	if cfg.Results != "" && standings != nil {
		if err := report.WriteResults(cfg.Results, standings); err != nil {
			fmt.Printf("Error writing results: %v\n", err)
			os.Exit(1)
		}
	}
}
