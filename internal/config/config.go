// Package config loads the strategy document: game rules plus the three
// action tables consumed by the simulator. Documents are HCL, with one
// labeled block per table row:
//
//	config {
//	  deck_count  = 6
//	  penetration = 0.75
//	}
//
//	hard "16" { actions = ["S", "S", "S", "S", "S", "H", "H", "H", "H", "H"] }
//	soft "A,7" { actions = ["Ds", "Ds", "Ds", "Ds", "Ds", "S", "S", "H", "H", "H"] }
//	pairs "8,8" { actions = ["P", "P", "P", "P", "P", "P", "P", "P", "P", "P"] }
//
// A missing or structurally malformed document is fatal. Individual rows
// with bad labels or too few action codes are skipped, leaving the table
// defaults in place; the load report carries per-table row counts so the
// caller can sanity-check coverage.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/hankhsu1996/blackjack-basic-strategy/internal/cards"
	"github.com/hankhsu1996/blackjack-basic-strategy/internal/strategy"
)

// Rules holds the scalar game-rule parameters. Immutable after load.
type Rules struct {
	DeckCount        int     // 0 selects infinite-deck mode
	DealerHitsSoft17 bool    // H17 when true, S17 when false
	BlackjackPayout  float64 // 1.5 for 3:2, 1.2 for 6:5
	DealerPeeks      bool    // payout bookkeeping only, see simulator docs
	MaxSplitHands    int     // hand cap for the split resolver
	ResplitAces      bool    // RSA
	Penetration      float64 // fraction of the shoe dealt before reshuffle
}

// DefaultRules returns the conventional 6-deck S17 DAS game.
func DefaultRules() Rules {
	return Rules{
		DeckCount:        6,
		DealerHitsSoft17: false,
		BlackjackPayout:  1.5,
		DealerPeeks:      true,
		MaxSplitHands:    4,
		ResplitAces:      false,
		Penetration:      0.75,
	}
}

// ContinuousShuffle reports whether the shoe must be reshuffled before
// every round.
func (r Rules) ContinuousShuffle() bool {
	return r.DeckCount > 0 && r.Penetration <= 0
}

// Validate checks the rule invariants. Called once at load time; the
// simulator assumes a validated Rules value.
func (r Rules) Validate() error {
	if r.DeckCount < 0 {
		return fmt.Errorf("deck_count must be >= 0, got %d", r.DeckCount)
	}
	if r.DeckCount > 0 && r.Penetration > 1 {
		return fmt.Errorf("penetration must be within [0, 1], got %g", r.Penetration)
	}
	if r.MaxSplitHands < 2 {
		return fmt.Errorf("max_split_hands must be >= 2, got %d", r.MaxSplitHands)
	}
	if r.BlackjackPayout <= 0 {
		return fmt.Errorf("blackjack_payout must be positive, got %g", r.BlackjackPayout)
	}
	return nil
}

// String summarises the rule set, e.g. "6 Deck, S17, NRSA, BJ 3:2, pen 75%".
func (r Rules) String() string {
	var b strings.Builder
	if r.DeckCount == 0 {
		b.WriteString("Infinite Deck")
	} else {
		fmt.Fprintf(&b, "%d Deck", r.DeckCount)
	}
	if r.DealerHitsSoft17 {
		b.WriteString(", H17")
	} else {
		b.WriteString(", S17")
	}
	if r.ResplitAces {
		b.WriteString(", RSA")
	} else {
		b.WriteString(", NRSA")
	}
	if r.BlackjackPayout == 1.5 {
		b.WriteString(", BJ 3:2")
	} else {
		fmt.Fprintf(&b, ", BJ pays %g", r.BlackjackPayout)
	}
	switch {
	case r.DeckCount == 0:
	case r.ContinuousShuffle():
		b.WriteString(", continuous shuffle")
	default:
		fmt.Fprintf(&b, ", pen %d%%", int(r.Penetration*100))
	}
	return b.String()
}

// LoadReport counts the strategy rows accepted from the document.
type LoadReport struct {
	HardRows int
	SoftRows int
	PairRows int
	Skipped  int
}

// document is the HCL shape of a strategy file.
type document struct {
	Config *rulesBlock `hcl:"config,block"`
	Hard   []rowBlock  `hcl:"hard,block"`
	Soft   []rowBlock  `hcl:"soft,block"`
	Pairs  []rowBlock  `hcl:"pairs,block"`
}

type rulesBlock struct {
	DeckCount        *int     `hcl:"deck_count,optional"`
	DealerHitsSoft17 *bool    `hcl:"dealer_hits_soft_17,optional"`
	BlackjackPayout  *float64 `hcl:"blackjack_payout,optional"`
	DealerPeeks      *bool    `hcl:"dealer_peeks,optional"`
	MaxSplitHands    *int     `hcl:"max_split_hands,optional"`
	ResplitAces      *bool    `hcl:"resplit_aces,optional"`
	Penetration      *float64 `hcl:"penetration,optional"`
}

type rowBlock struct {
	Label   string   `hcl:"label,label"`
	Actions []string `hcl:"actions"`
}

// Load reads and decodes a strategy document. Structural errors are
// returned; malformed rows are skipped and tallied in the report.
func Load(filename string) (Rules, *strategy.Tables, LoadReport, error) {
	if _, err := os.Stat(filename); err != nil {
		return Rules{}, nil, LoadReport{}, fmt.Errorf("strategy file: %w", err)
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return Rules{}, nil, LoadReport{}, fmt.Errorf("failed to parse %s: %s", filename, diags.Error())
	}

	var doc document
	if diags := gohcl.DecodeBody(file.Body, nil, &doc); diags.HasErrors() {
		return Rules{}, nil, LoadReport{}, fmt.Errorf("failed to decode %s: %s", filename, diags.Error())
	}

	rules := DefaultRules()
	if doc.Config != nil {
		applyRules(&rules, doc.Config)
	}
	if err := rules.Validate(); err != nil {
		return Rules{}, nil, LoadReport{}, fmt.Errorf("invalid config in %s: %w", filename, err)
	}

	tables := strategy.NewTables()
	var report LoadReport

	for _, row := range doc.Hard {
		total, err := parseHardLabel(row.Label)
		if err != nil || len(row.Actions) < strategy.Upcards {
			report.Skipped++
			continue
		}
		for col, code := range row.Actions[:strategy.Upcards] {
			tables.SetHard(total, cards.Rank(col+2), strategy.ParseAction(code))
		}
		report.HardRows++
	}

	for _, row := range doc.Soft {
		total, err := parseSoftLabel(row.Label)
		if err != nil || len(row.Actions) < strategy.Upcards {
			report.Skipped++
			continue
		}
		for col, code := range row.Actions[:strategy.Upcards] {
			tables.SetSoft(total, cards.Rank(col+2), strategy.ParseAction(code))
		}
		report.SoftRows++
	}

	for _, row := range doc.Pairs {
		rank, err := parsePairLabel(row.Label)
		if err != nil || len(row.Actions) < strategy.Upcards {
			report.Skipped++
			continue
		}
		for col, code := range row.Actions[:strategy.Upcards] {
			tables.SetPair(rank, cards.Rank(col+2), strategy.ParseAction(code))
		}
		report.PairRows++
	}

	return rules, tables, report, nil
}

func applyRules(r *Rules, b *rulesBlock) {
	if b.DeckCount != nil {
		r.DeckCount = *b.DeckCount
	}
	if b.DealerHitsSoft17 != nil {
		r.DealerHitsSoft17 = *b.DealerHitsSoft17
	}
	if b.BlackjackPayout != nil {
		r.BlackjackPayout = *b.BlackjackPayout
	}
	if b.DealerPeeks != nil {
		r.DealerPeeks = *b.DealerPeeks
	}
	if b.MaxSplitHands != nil {
		r.MaxSplitHands = *b.MaxSplitHands
	}
	if b.ResplitAces != nil {
		r.ResplitAces = *b.ResplitAces
	}
	if b.Penetration != nil {
		r.Penetration = *b.Penetration
	}
}

// parseHardLabel accepts a hard total "4" through "21".
func parseHardLabel(label string) (int, error) {
	total, err := strconv.Atoi(label)
	if err != nil {
		return 0, fmt.Errorf("hard label %q: %w", label, err)
	}
	if total < 4 || total > 21 {
		return 0, fmt.Errorf("hard label %q out of range", label)
	}
	return total, nil
}

// parseSoftLabel accepts "A,2" through "A,10", "A,A", or a bare soft total
// "12" through "21".
func parseSoftLabel(label string) (int, error) {
	if rest, ok := strings.CutPrefix(label, "A,"); ok {
		if rest == "A" {
			return 12, nil
		}
		n, err := strconv.Atoi(rest)
		if err != nil || n < 2 || n > 10 {
			return 0, fmt.Errorf("soft label %q invalid", label)
		}
		return 11 + n, nil
	}
	total, err := strconv.Atoi(label)
	if err != nil || total < 12 || total > 21 {
		return 0, fmt.Errorf("soft label %q invalid", label)
	}
	return total, nil
}

// parsePairLabel accepts "2,2" through "10,10" and "A,A".
func parsePairLabel(label string) (cards.Rank, error) {
	parts := strings.Split(label, ",")
	if len(parts) != 2 || parts[0] != parts[1] {
		return 0, fmt.Errorf("pair label %q invalid", label)
	}
	if parts[0] == "A" {
		return cards.Ace, nil
	}
	n, err := strconv.Atoi(parts[0])
	if err != nil || n < 2 || n > 10 {
		return 0, fmt.Errorf("pair label %q invalid", label)
	}
	return cards.Rank(n), nil
}
