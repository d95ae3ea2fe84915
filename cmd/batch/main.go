package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/hankhsu1996/blackjack-basic-strategy/internal/batch"
)

type CLI struct {
	Dir     string `arg:"" help:"Directory of strategy documents (*.hcl)" type:"existingdir"`
	Output  string `short:"o" help:"Results file (default <dir>/mc_house_edge.json)"`
	Hands   int64  `default:"1000000000" help:"Hands per config"`
	Blocks  int    `default:"8" help:"Number of lane blocks"`
	Lanes   int    `default:"32" help:"Lanes per block"`
	Seed    int64  `default:"0" help:"RNG seed (0 for time-based)"`
	Resume  bool   `help:"Skip configs already present in the results file"`
	Verbose bool   `short:"v" help:"Verbose logging"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli)

	if cli.Seed == 0 {
		cli.Seed = time.Now().UnixNano()
	}

	level := log.InfoLevel
	if cli.Verbose {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{Level: level})

	runner := batch.New(batch.Config{
		Dir:           cli.Dir,
		OutputFile:    cli.Output,
		Hands:         cli.Hands,
		Blocks:        cli.Blocks,
		LanesPerBlock: cli.Lanes,
		Seed:          cli.Seed,
		Resume:        cli.Resume,
		Logger:        logger,
	})

	start := time.Now()
	summary, err := runner.Run(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Batch failed: %v\n", err)
		ctx.Exit(1)
	}

	fmt.Printf("Completed %d configs in %s (%d skipped, %d failed)\n",
		summary.Completed, time.Since(start).Round(time.Second),
		summary.Skipped, summary.Failed)
	ctx.Exit(0)
}
