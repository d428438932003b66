package main

import (
	"fmt"
	"log"
	"os"

	"github.com/veylence/rpsbots/internal/config"
	"github.com/veylence/rpsbots/internal/rating"
	"github.com/veylence/rpsbots/internal/report"
	"github.com/veylence/rpsbots/internal/strategy"
	"github.com/veylence/rpsbots/internal/tournament"
)

const (
	simRounds = 25
	simGames  = 4
)

func main() {
	cfg := config.Default()

	mgr := tournament.New(rating.NewSystem(cfg.Rating),
		tournament.WithReporter(report.NewConsole(os.Stdout)))

	// 1. Register the full offline roster
	fmt.Println("--- Step 1: Building the roster ---")
	for _, name := range cfg.Players {
		factory, ok := strategy.Lookup(name)
		if !ok {
			log.Fatalf("Unknown strategy: %s", name)
		}
		if err := mgr.Register(name, factory); err != nil {
			log.Fatalf("Failed to register %s: %v", name, err)
		}
		fmt.Printf("Registered %s\n", name)
	}
	fmt.Println()

	// 2. Play a full tournament with training enabled
	fmt.Println("--- Step 2: Playing with training enabled ---")
	if err := mgr.Run(simRounds, simGames, true); err != nil {
		log.Fatalf("Tournament failed: %v", err)
	}
	fmt.Println()

	// 3. Play again without training; ratings carry over between runs
	fmt.Println("--- Step 3: Replaying without training ---")
	if err := mgr.Run(simRounds, simGames, false); err != nil {
		log.Fatalf("Tournament failed: %v", err)
	}
}
