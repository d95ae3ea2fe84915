// Package shoe implements the dealing shoe: a shuffled multiset of card
// ranks drawn down to a penetration threshold and then reshuffled, or a
// stateless infinite-deck sampler when no deck count is configured.
package shoe

import (
	rand "math/rand/v2"

	"github.com/hankhsu1996/blackjack-basic-strategy/internal/cards"
)

// cardsPerDeck is 52: 4 each of 2-9 and Ace, 16 ten-values.
const cardsPerDeck = 52

// Shoe deals cards for one simulation lane. It is not safe for concurrent
// use; each lane owns its own Shoe and RNG.
type Shoe struct {
	ranks      []cards.Rank
	cursor     int
	threshold  int
	infinite   bool
	continuous bool
	reshuffles int
	rng        *rand.Rand
}

// New builds a shoe of deckCount decks shuffled with rng, with a reshuffle
// threshold of deckCount*52*penetration cards. deckCount 0 selects infinite
// mode. Penetration at or below zero selects continuous-shuffle mode: the
// caller reshuffles before every round via ForceReshuffle, and the threshold
// is backstopped at full capacity so the cursor can never run off the end.
func New(deckCount int, penetration float64, rng *rand.Rand) *Shoe {
	s := &Shoe{rng: rng}
	if deckCount == 0 {
		s.infinite = true
		return s
	}

	n := deckCount * cardsPerDeck
	s.ranks = make([]cards.Rank, 0, n)
	for d := 0; d < deckCount; d++ {
		for r := cards.Two; r <= cards.Nine; r++ {
			s.ranks = append(s.ranks, r, r, r, r)
		}
		s.ranks = append(s.ranks, cards.Ace, cards.Ace, cards.Ace, cards.Ace)
		for i := 0; i < 16; i++ {
			s.ranks = append(s.ranks, cards.Ten)
		}
	}

	if penetration <= 0 {
		s.continuous = true
		s.threshold = n
	} else {
		if penetration > 1 {
			penetration = 1
		}
		s.threshold = int(float64(n) * penetration)
	}

	s.shuffle()
	s.reshuffles = 0
	return s
}

// Infinite reports whether the shoe samples from an infinite deck.
func (s *Shoe) Infinite() bool { return s.infinite }

// Continuous reports whether the shoe must be reshuffled before every round.
func (s *Shoe) Continuous() bool { return s.continuous }

// Reshuffles returns how many times the shoe has been reshuffled since New.
func (s *Shoe) Reshuffles() int { return s.reshuffles }

// Draw returns the next card. In infinite mode it samples uniformly over the
// 13 ranks with the four ten-value ranks collapsed into one 4/13 mass. In
// finite mode it reshuffles the full multiset once the cursor reaches the
// penetration threshold.
func (s *Shoe) Draw() cards.Rank {
	if s.infinite {
		// 0 -> Ace, 1..8 -> 2..9, 9..12 -> ten-value.
		switch v := s.rng.IntN(13); {
		case v == 0:
			return cards.Ace
		case v <= 8:
			return cards.Rank(v + 1)
		default:
			return cards.Ten
		}
	}

	if s.cursor >= s.threshold {
		s.shuffle()
	}
	r := s.ranks[s.cursor]
	s.cursor++
	return r
}

// ForceReshuffle reshuffles immediately regardless of the cursor position.
// Used before every round in continuous-shuffle mode. No-op for infinite
// shoes, which carry no cards.
func (s *Shoe) ForceReshuffle() {
	if s.infinite {
		return
	}
	s.shuffle()
}

// shuffle runs a full Fisher-Yates pass over the card multiset and resets
// the cursor. Every permutation of the multiset is equally likely.
func (s *Shoe) shuffle() {
	for i := len(s.ranks) - 1; i > 0; i-- {
		j := s.rng.IntN(i + 1)
		s.ranks[i], s.ranks[j] = s.ranks[j], s.ranks[i]
	}
	s.cursor = 0
	s.reshuffles++
}
