package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hankhsu1996/blackjack-basic-strategy/internal/cards"
)

func TestDefaultTables(t *testing.T) {
	tbl := NewTables()

	h16 := cards.NewHand(cards.Ten, cards.Six)
	assert.Equal(t, Hit, tbl.Decide(&h16, cards.Ten, false))

	h17 := cards.NewHand(cards.Ten, cards.Seven)
	assert.Equal(t, Stand, tbl.Decide(&h17, cards.Ten, false))

	h20 := cards.NewHand(cards.Ten, cards.Ten)
	assert.Equal(t, Stand, tbl.Decide(&h20, cards.Ace, false))

	soft18 := cards.NewHand(cards.Ace, cards.Seven)
	assert.Equal(t, Hit, tbl.Decide(&soft18, cards.Six, false))
}

func TestPairLookupTakesPriority(t *testing.T) {
	tbl := NewTables()
	tbl.SetPair(cards.Eight, cards.Six, Split)
	tbl.SetHard(16, cards.Six, Stand)

	pair := cards.NewHand(cards.Eight, cards.Eight)
	assert.Equal(t, Split, tbl.Decide(&pair, cards.Six, true))

	// With splitting unavailable the hard-total cell applies instead.
	assert.Equal(t, Stand, tbl.Decide(&pair, cards.Six, false))

	// A pair whose cell is not Split falls through to the total lookup.
	tbl.SetPair(cards.Ten, cards.Six, Stand)
	tens := cards.NewHand(cards.Ten, cards.Ten)
	assert.Equal(t, Stand, tbl.Decide(&tens, cards.Six, true))
}

func TestSoftLookup(t *testing.T) {
	tbl := NewTables()
	tbl.SetSoft(18, cards.Three, DoubleElseStand)

	soft18 := cards.NewHand(cards.Ace, cards.Seven)
	assert.Equal(t, DoubleElseStand, tbl.Decide(&soft18, cards.Three, false))

	// A,3,4 is also soft 18 and hits the same row.
	soft18b := cards.NewHand(cards.Ace, cards.Three, cards.Four)
	assert.Equal(t, DoubleElseStand, tbl.Decide(&soft18b, cards.Three, false))

	// A,9,8 is hard 18: the ace has demoted, soft grid does not apply.
	hard18 := cards.NewHand(cards.Ace, cards.Nine, cards.Eight)
	tbl.SetHard(18, cards.Three, Stand)
	assert.Equal(t, Stand, tbl.Decide(&hard18, cards.Three, false))
}

func TestHardRowClamping(t *testing.T) {
	tbl := NewTables()
	tbl.SetHard(4, cards.Two, Hit)
	tbl.SetHard(21, cards.Two, Stand)

	// Busted totals clamp onto the last hard row.
	bust := cards.NewHand(cards.Ten, cards.Ten, cards.Five)
	assert.Equal(t, Stand, tbl.Decide(&bust, cards.Two, false))
}

func TestDecideIsPure(t *testing.T) {
	tbl := NewTables()
	tbl.SetPair(cards.Ace, cards.Six, Split)
	h := cards.NewHand(cards.Ace, cards.Ace)

	first := tbl.Decide(&h, cards.Six, true)
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, tbl.Decide(&h, cards.Six, true))
	}
}

func TestParseAction(t *testing.T) {
	tests := []struct {
		code string
		want Action
	}{
		{"S", Stand},
		{"Stand", Stand},
		{"H", Hit},
		{"Hit", Hit},
		{"D", DoubleElseHit},
		{"Dh", DoubleElseHit},
		{"Double-else-Hit", DoubleElseHit},
		{"Ds", DoubleElseStand},
		{"Double-else-Stand", DoubleElseStand},
		{"P", Split},
		{"Split", Split},
		{"Ph", Split},
		{"Split-else-Hit", Split},
		{"", Hit},
		{"X", Hit},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseAction(tt.code), "code %q", tt.code)
	}
}

func TestActionString(t *testing.T) {
	assert.Equal(t, "S", Stand.String())
	assert.Equal(t, "H", Hit.String())
	assert.Equal(t, "Dh", DoubleElseHit.String())
	assert.Equal(t, "Ds", DoubleElseStand.String())
	assert.Equal(t, "P", Split.String())
}
