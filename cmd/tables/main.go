package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/hankhsu1996/blackjack-basic-strategy/internal/config"
	"github.com/hankhsu1996/blackjack-basic-strategy/internal/render"
)

type CLI struct {
	Strategy string `arg:"" help:"Strategy document (HCL)" type:"existingfile"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli)

	rules, tables, report, err := config.Load(cli.Strategy)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading strategy: %v\n", err)
		ctx.Exit(1)
	}

	fmt.Println(render.Tables(rules, tables))
	if report.Skipped > 0 {
		fmt.Fprintf(os.Stderr, "Warning: %d malformed rows skipped\n", report.Skipped)
	}
	ctx.Exit(0)
}
