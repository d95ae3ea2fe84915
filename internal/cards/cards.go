// Package cards defines blackjack card ranks and hand evaluation.
//
// Suits are irrelevant to blackjack outcomes, so a card is just its rank
// value: 2-9 at face value, all ten-value cards (10/J/Q/K) folded into Ten,
// and Ace carried as 11 until hand evaluation demotes it.
package cards

// Rank is the blackjack value of a card. Ten stands for all four
// ten-value ranks.
type Rank uint8

const (
	Two   Rank = 2
	Three Rank = 3
	Four  Rank = 4
	Five  Rank = 5
	Six   Rank = 6
	Seven Rank = 7
	Eight Rank = 8
	Nine  Rank = 9
	Ten   Rank = 10
	Ace   Rank = 11
)

// String returns the rank as displayed in strategy tables.
func (r Rank) String() string {
	switch {
	case r == Ace:
		return "A"
	case r == Ten:
		return "10"
	case r >= Two && r <= Nine:
		return string('0' + byte(r))
	default:
		return "?"
	}
}

// MaxHandCards bounds a hand's card count. Twelve cards is unreachable in
// practice (eleven aces hit 21) but keeps the array a safe fixed size.
const MaxHandCards = 12

// Hand is a bounded, append-only sequence of dealt ranks plus the per-hand
// betting state the simulator needs: the bet multiplier after doubling and
// whether the hand descends from a split pair of aces.
type Hand struct {
	ranks    [MaxHandCards]Rank
	n        int
	Doubled  bool
	AceSplit bool
}

// NewHand returns a hand seeded with the given cards.
func NewHand(ranks ...Rank) Hand {
	var h Hand
	for _, r := range ranks {
		h.Add(r)
	}
	return h
}

// Add appends a card to the hand.
func (h *Hand) Add(r Rank) {
	if h.n >= MaxHandCards {
		panic("cards: hand overflow")
	}
	h.ranks[h.n] = r
	h.n++
}

// Len returns the number of cards dealt to the hand.
func (h *Hand) Len() int { return h.n }

// Card returns the i-th dealt card.
func (h *Hand) Card(i int) Rank { return h.ranks[i] }

// Multiplier returns the hand's bet multiplier (2 after a double, else 1).
func (h *Hand) Multiplier() float64 {
	if h.Doubled {
		return 2
	}
	return 1
}

// Value computes the hand total and whether it is soft. Aces count as 11,
// then demote to 1 one at a time while the total exceeds 21. The hand is
// soft iff an ace still counts as 11 after demotion.
func (h *Hand) Value() (total int, soft bool) {
	aces := 0
	for i := 0; i < h.n; i++ {
		total += int(h.ranks[i])
		if h.ranks[i] == Ace {
			aces++
		}
	}
	for total > 21 && aces > 0 {
		total -= 10
		aces--
	}
	return total, aces > 0
}

// Total returns just the hand total.
func (h *Hand) Total() int {
	total, _ := h.Value()
	return total
}

// Bust reports whether the hand total exceeds 21 with every ace demoted.
func (h *Hand) Bust() bool {
	return h.Total() > 21
}

// Blackjack reports whether the hand is a two-card natural 21.
func (h *Hand) Blackjack() bool {
	return h.n == 2 && h.Total() == 21
}

// Pair reports whether the hand is exactly two cards of equal rank.
func (h *Hand) Pair() bool {
	return h.n == 2 && h.ranks[0] == h.ranks[1]
}

// Reset empties the hand for reuse without reallocating.
func (h *Hand) Reset() {
	h.n = 0
	h.Doubled = false
	h.AceSplit = false
}
