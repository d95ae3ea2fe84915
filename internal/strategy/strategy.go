// Package strategy holds the read-only action tables that drive player
// decisions. Tables are built once at load time and shared by value across
// all simulation lanes; nothing in this package mutates them afterwards.
package strategy

import (
	"fmt"

	"github.com/hankhsu1996/blackjack-basic-strategy/internal/cards"
)

// Action is a strategy-table cell.
type Action uint8

const (
	Stand Action = iota
	Hit
	DoubleElseHit   // double on two cards, otherwise hit
	DoubleElseStand // double on two cards, otherwise stand
	Split
)

// String returns the conventional strategy-chart code for the action.
func (a Action) String() string {
	switch a {
	case Stand:
		return "S"
	case Hit:
		return "H"
	case DoubleElseHit:
		return "Dh"
	case DoubleElseStand:
		return "Ds"
	case Split:
		return "P"
	default:
		return "?"
	}
}

// ParseAction maps a strategy-document action code to an Action. Both the
// short chart codes and the long names are accepted; Split-else-Hit folds
// into Split since the fallback is already implied upstream by DAS rules.
// Unrecognized codes default to Hit per the lenient-parsing policy.
func ParseAction(code string) Action {
	switch code {
	case "S", "Stand":
		return Stand
	case "H", "Hit":
		return Hit
	case "D", "Dh", "Double-else-Hit":
		return DoubleElseHit
	case "Ds", "Double-else-Stand":
		return DoubleElseStand
	case "P", "Split", "Ph", "Split-else-Hit":
		return Split
	default:
		return Hit
	}
}

// Grid dimensions. Columns are dealer upcards 2 through Ace. Hard rows are
// totals 4-21, soft rows soft totals 12-21, pair rows ranks 2-11 (Ace=11).
const (
	Upcards  = 10
	HardRows = 18
	SoftRows = 10
	PairRows = 10

	hardBase = 4
	softBase = 12
	pairBase = 2
)

// Tables is the full set of strategy grids.
type Tables struct {
	Hard  [HardRows][Upcards]Action
	Soft  [SoftRows][Upcards]Action
	Pairs [PairRows][Upcards]Action
}

// NewTables returns tables filled with the default fallback: Hit everywhere
// except hard totals of 17 and above, which default to Stand.
func NewTables() *Tables {
	t := &Tables{}
	for row := range t.Hard {
		for col := range t.Hard[row] {
			if row+hardBase >= 17 {
				t.Hard[row][col] = Stand
			} else {
				t.Hard[row][col] = Hit
			}
		}
	}
	for row := range t.Soft {
		for col := range t.Soft[row] {
			t.Soft[row][col] = Hit
		}
	}
	for row := range t.Pairs {
		for col := range t.Pairs[row] {
			t.Pairs[row][col] = Hit
		}
	}
	return t
}

// upcardCol maps a dealer upcard rank to its grid column.
func upcardCol(up cards.Rank) int {
	if up < cards.Two || up > cards.Ace {
		panic(fmt.Sprintf("strategy: invalid dealer upcard %d", up))
	}
	return int(up) - 2
}

// SetHard sets the cell for a hard total (4-21).
func (t *Tables) SetHard(total int, up cards.Rank, a Action) {
	t.Hard[clampHardRow(total)][upcardCol(up)] = a
}

// SetSoft sets the cell for a soft total (12-21).
func (t *Tables) SetSoft(total int, up cards.Rank, a Action) {
	t.Soft[total-softBase][upcardCol(up)] = a
}

// SetPair sets the cell for a pair of the given rank.
func (t *Tables) SetPair(rank cards.Rank, up cards.Rank, a Action) {
	t.Pairs[int(rank)-pairBase][upcardCol(up)] = a
}

func clampHardRow(total int) int {
	if total < hardBase {
		total = hardBase
	}
	if total > 21 {
		total = 21
	}
	return total - hardBase
}

// Decide returns the table action for a hand against a dealer upcard.
// Pair-splitting is consulted first when canSplit is set and wins outright
// if the pairs grid says Split. Otherwise the soft grid covers soft totals
// 12-21 and the hard grid everything else, with out-of-range totals clamped
// to the edge rows. Decide is a pure function of its inputs and the loaded
// tables.
func (t *Tables) Decide(h *cards.Hand, up cards.Rank, canSplit bool) Action {
	if canSplit && h.Pair() {
		if t.Pairs[int(h.Card(0))-pairBase][upcardCol(up)] == Split {
			return Split
		}
	}

	total, soft := h.Value()
	if soft && total >= softBase && total <= 21 {
		return t.Soft[total-softBase][upcardCol(up)]
	}
	return t.Hard[clampHardRow(total)][upcardCol(up)]
}
