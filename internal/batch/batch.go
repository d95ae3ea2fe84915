// Package batch runs the house-edge simulation for every strategy document
// in a directory and maintains a results file for downstream tooling. The
// results file is rewritten atomically after every config so an interrupted
// batch can be resumed without losing completed work.
package batch

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/hankhsu1996/blackjack-basic-strategy/internal/config"
	"github.com/hankhsu1996/blackjack-basic-strategy/internal/fileutil"
	"github.com/hankhsu1996/blackjack-basic-strategy/internal/simulator"
)

// ResultsFileName is the default output file, written next to the strategy
// documents.
const ResultsFileName = "mc_house_edge.json"

// Config holds configuration for a batch run.
type Config struct {
	Dir        string // directory of *.hcl strategy documents
	OutputFile string // defaults to Dir/mc_house_edge.json

	Hands         int64
	Blocks        int
	LanesPerBlock int
	Seed          int64

	// Resume keeps entries already present in the output file and skips
	// their configs instead of re-simulating them.
	Resume bool

	Logger *log.Logger
}

// Entry is the recorded outcome for one strategy document.
type Entry struct {
	HouseEdge           float64 `json:"house_edge"`
	ConfidenceHalfWidth float64 `json:"ci"`
	Hands               int64   `json:"hands"`
	ElapsedSeconds      float64 `json:"elapsed_seconds"`
}

// Results is the on-disk shape of the results file.
type Results struct {
	RunID   string           `json:"run_id"`
	Configs map[string]Entry `json:"configs"`
}

// Summary reports what a batch run did.
type Summary struct {
	Completed int
	Skipped   int
	Failed    int
}

// Runner executes batch simulations.
type Runner struct {
	config Config
}

// New creates a batch runner.
func New(cfg Config) *Runner {
	if cfg.OutputFile == "" {
		cfg.OutputFile = filepath.Join(cfg.Dir, ResultsFileName)
	}
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}
	return &Runner{config: cfg}
}

// Run simulates every strategy document in the directory. Documents that
// fail to load are logged and counted, not fatal: one bad file must not
// sink a multi-hour batch.
func (r *Runner) Run(ctx context.Context) (*Summary, error) {
	cfg := r.config

	docs, err := filepath.Glob(filepath.Join(cfg.Dir, "*.hcl"))
	if err != nil {
		return nil, fmt.Errorf("batch: list strategy documents: %w", err)
	}
	if len(docs) == 0 {
		return nil, fmt.Errorf("batch: no strategy documents in %s", cfg.Dir)
	}

	results := Results{
		RunID:   uuid.NewString(),
		Configs: make(map[string]Entry),
	}
	if cfg.Resume {
		if prev, err := loadResults(cfg.OutputFile); err == nil {
			results.Configs = prev.Configs
			cfg.Logger.Info("resuming batch", "existing", len(prev.Configs))
		}
	}

	var summary Summary
	for _, doc := range docs {
		key := strings.TrimSuffix(filepath.Base(doc), ".hcl")
		if _, done := results.Configs[key]; done {
			summary.Skipped++
			continue
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		rules, tables, report, err := config.Load(doc)
		if err != nil {
			cfg.Logger.Error("skipping strategy document", "file", doc, "error", err)
			summary.Failed++
			continue
		}
		cfg.Logger.Info("simulating",
			"config", key,
			"rules", rules.String(),
			"rows", report.HardRows+report.SoftRows+report.PairRows)

		sim := simulator.New(simulator.Config{
			Rules:         rules,
			Tables:        tables,
			Hands:         cfg.Hands,
			Blocks:        cfg.Blocks,
			LanesPerBlock: cfg.LanesPerBlock,
			Seed:          cfg.Seed,
			Logger:        cfg.Logger,
		})
		res, err := sim.Run(ctx)
		if err != nil {
			return nil, fmt.Errorf("batch: %s: %w", key, err)
		}

		results.Configs[key] = Entry{
			HouseEdge:           res.HouseEdge(),
			ConfidenceHalfWidth: res.ConfidenceHalfWidth(),
			Hands:               res.Hands,
			ElapsedSeconds:      res.Elapsed.Seconds(),
		}
		summary.Completed++

		// Persist after every config in case the batch is interrupted.
		if err := writeResults(cfg.OutputFile, results); err != nil {
			return nil, fmt.Errorf("batch: %w", err)
		}
	}

	return &summary, nil
}

func loadResults(path string) (Results, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Results{}, err
	}
	var res Results
	if err := json.Unmarshal(data, &res); err != nil {
		return Results{}, fmt.Errorf("parse %s: %w", path, err)
	}
	if res.Configs == nil {
		res.Configs = make(map[string]Entry)
	}
	return res, nil
}

func writeResults(path string, res Results) error {
	data, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return fmt.Errorf("encode results: %w", err)
	}
	return fileutil.WriteFileAtomic(path, append(data, '\n'), 0o644)
}
