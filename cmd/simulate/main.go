package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/hankhsu1996/blackjack-basic-strategy/internal/config"
	"github.com/hankhsu1996/blackjack-basic-strategy/internal/simulator"
)

type CLI struct {
	Strategy string `arg:"" help:"Strategy document (HCL)" type:"existingfile"`
	Hands    int64  `default:"100000000" help:"Target number of hands to simulate"`
	Blocks   int    `default:"8" help:"Number of lane blocks"`
	Lanes    int    `default:"32" help:"Lanes per block"`
	Seed     int64  `default:"0" help:"RNG seed (0 for time-based)"`
	Verbose  bool   `short:"v" help:"Verbose logging"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli)

	if cli.Seed == 0 {
		cli.Seed = time.Now().UnixNano()
	}

	var logger *log.Logger
	if cli.Verbose {
		logger = log.NewWithOptions(os.Stderr, log.Options{Level: log.DebugLevel})
	} else {
		logger = log.NewWithOptions(os.Stderr, log.Options{Level: log.WarnLevel})
	}

	rules, tables, report, err := config.Load(cli.Strategy)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading strategy: %v\n", err)
		ctx.Exit(1)
	}

	fmt.Printf("Rules: %s\n", rules)
	fmt.Printf("Loaded rows: %d hard, %d soft, %d pairs (%d skipped)\n",
		report.HardRows, report.SoftRows, report.PairRows, report.Skipped)
	fmt.Printf("Simulating %d hands across %d lanes (seed: %d)\n",
		cli.Hands, cli.Blocks*cli.Lanes, cli.Seed)

	sim := simulator.New(simulator.Config{
		Rules:         rules,
		Tables:        tables,
		Hands:         cli.Hands,
		Blocks:        cli.Blocks,
		LanesPerBlock: cli.Lanes,
		Seed:          cli.Seed,
		Logger:        logger,
	})
	res, err := sim.Run(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Simulation failed: %v\n", err)
		ctx.Exit(1)
	}

	rate := float64(res.Hands) / res.Elapsed.Seconds() / 1e6
	fmt.Printf("\nSimulated %d hands in %s (%.1fM hands/sec)\n",
		res.Hands, res.Elapsed.Round(time.Millisecond), rate)
	fmt.Printf("Total return: %.2f units\n", res.TotalReturn)
	fmt.Printf("House edge: %.4f%% +/- %.4f%%\n",
		res.HouseEdge(), res.ConfidenceHalfWidth())

	ctx.Exit(0)
}
