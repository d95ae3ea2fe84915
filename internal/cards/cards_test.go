package cards

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandValue(t *testing.T) {
	tests := []struct {
		name  string
		ranks []Rank
		total int
		soft  bool
	}{
		{name: "hard 20", ranks: []Rank{Ten, Ten}, total: 20, soft: false},
		{name: "natural", ranks: []Rank{Ace, Ten}, total: 21, soft: true},
		{name: "soft 13", ranks: []Rank{Ace, Two}, total: 13, soft: true},
		{name: "ace demotes once", ranks: []Rank{Ace, Nine, Five}, total: 15, soft: false},
		{name: "two aces", ranks: []Rank{Ace, Ace}, total: 12, soft: true},
		{name: "two aces plus nine", ranks: []Rank{Ace, Ace, Nine}, total: 21, soft: true},
		{name: "all aces demoted", ranks: []Rank{Ace, Ace, Ten}, total: 12, soft: false},
		{name: "bust", ranks: []Rank{Ten, Nine, Five}, total: 24, soft: false},
		{name: "ace saves bust", ranks: []Rank{Ace, Ten, Ten}, total: 21, soft: false},
		{name: "eleven aces", ranks: []Rank{Ace, Ace, Ace, Ace, Ace, Ace, Ace, Ace, Ace, Ace, Ace}, total: 21, soft: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHand(tt.ranks...)
			total, soft := h.Value()
			assert.Equal(t, tt.total, total)
			assert.Equal(t, tt.soft, soft)
		})
	}
}

func TestSoftTotalNeverAbove21(t *testing.T) {
	// Exhaustive small search: every combination of up to 4 cards.
	ranks := []Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Ace}
	for _, a := range ranks {
		for _, b := range ranks {
			for _, c := range ranks {
				for _, d := range ranks {
					h := NewHand(a, b, c, d)
					total, soft := h.Value()
					if soft {
						assert.LessOrEqual(t, total, 21,
							"soft total above 21 for %v %v %v %v", a, b, c, d)
					}
				}
			}
		}
	}
}

func TestBlackjack(t *testing.T) {
	bj := NewHand(Ace, Ten)
	assert.True(t, bj.Blackjack())

	threeCard21 := NewHand(Seven, Seven, Seven)
	assert.Equal(t, 21, threeCard21.Total())
	assert.False(t, threeCard21.Blackjack())

	twenty := NewHand(Ten, Ten)
	assert.False(t, twenty.Blackjack())
}

func TestPair(t *testing.T) {
	eights := NewHand(Eight, Eight)
	assert.True(t, eights.Pair())
	aces := NewHand(Ace, Ace)
	assert.True(t, aces.Pair())
	tenNine := NewHand(Ten, Nine)
	assert.False(t, tenNine.Pair())
	threeEights := NewHand(Eight, Eight, Eight)
	assert.False(t, threeEights.Pair())
}

func TestBust(t *testing.T) {
	bust := NewHand(Ten, Nine, Five)
	assert.True(t, bust.Bust())
	soft21 := NewHand(Ace, Ten, Ten)
	assert.False(t, soft21.Bust())
	twenty := NewHand(Ten, Ten)
	assert.False(t, twenty.Bust())
}

func TestMultiplier(t *testing.T) {
	h := NewHand(Five, Six)
	assert.Equal(t, 1.0, h.Multiplier())
	h.Doubled = true
	assert.Equal(t, 2.0, h.Multiplier())
}

func TestReset(t *testing.T) {
	h := NewHand(Ten, Ten)
	h.Doubled = true
	h.AceSplit = true
	h.Reset()
	assert.Equal(t, 0, h.Len())
	assert.False(t, h.Doubled)
	assert.False(t, h.AceSplit)
}

func TestRankString(t *testing.T) {
	assert.Equal(t, "A", Ace.String())
	assert.Equal(t, "10", Ten.String())
	assert.Equal(t, "7", Seven.String())
}
