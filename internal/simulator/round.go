package simulator

import (
	"fmt"

	"github.com/hankhsu1996/blackjack-basic-strategy/internal/cards"
	"github.com/hankhsu1996/blackjack-basic-strategy/internal/config"
	"github.com/hankhsu1996/blackjack-basic-strategy/internal/strategy"
)

// drawSource supplies cards to a lane. Shoe satisfies it; tests substitute
// scripted sequences.
type drawSource interface {
	Draw() cards.Rank
	ForceReshuffle()
}

// lane plays rounds for one independent execution lane. It owns its draw
// source outright and shares the strategy tables read-only, so lanes never
// touch each other's state.
type lane struct {
	rules  config.Rules
	tables *strategy.Tables
	src    drawSource
	hands  []cards.Hand // per-round scratch, reused to stay allocation-free
}

func newLane(rules config.Rules, tables *strategy.Tables, src drawSource) *lane {
	return &lane{
		rules:  rules,
		tables: tables,
		src:    src,
		hands:  make([]cards.Hand, 0, rules.MaxSplitHands),
	}
}

// playRound deals and settles one round, returning the signed bet-adjusted
// outcome (e.g. -1 for a flat loss, +1.5 for a natural at 3:2).
func (l *lane) playRound() float64 {
	if l.rules.ContinuousShuffle() {
		l.src.ForceReshuffle()
	}

	player := cards.NewHand(l.src.Draw(), l.src.Draw())
	dealer := cards.NewHand(l.src.Draw(), l.src.Draw())
	up := dealer.Card(0)

	// Naturals settle immediately. Dealer peek has no effect here: the
	// extra bets a no-peek game would lose to a dealer natural are not yet
	// on the table at this point.
	playerBJ, dealerBJ := player.Blackjack(), dealer.Blackjack()
	switch {
	case playerBJ && dealerBJ:
		return 0
	case playerBJ:
		return l.rules.BlackjackPayout
	case dealerBJ:
		return -1
	}

	if l.tables.Decide(&player, up, true) == strategy.Split {
		l.resolveSplits(player.Card(0), up)
	} else {
		l.hands = append(l.hands[:0], player)
	}

	for i := range l.hands {
		if !l.hands[i].AceSplit {
			l.playHand(&l.hands[i], up)
		}
	}

	l.dealerTurn(&dealer)
	dealerTotal := dealer.Total()

	ret := 0.0
	for i := range l.hands {
		ret += settle(&l.hands[i], dealerTotal)
	}
	return ret
}

// playHand runs the player turn loop: hit, stand, or double per the tables.
// Doubling is only resolvable on a two-card hand; otherwise the fallback
// half of the action applies. The loop stops unconditionally at 21.
func (l *lane) playHand(h *cards.Hand, up cards.Rank) {
	for {
		if h.Total() >= 21 {
			return
		}
		switch a := l.tables.Decide(h, up, false); a {
		case strategy.Stand:
			return
		case strategy.Hit:
			h.Add(l.src.Draw())
		case strategy.DoubleElseHit:
			if h.Len() == 2 {
				h.Add(l.src.Draw())
				h.Doubled = true
				return
			}
			h.Add(l.src.Draw())
		case strategy.DoubleElseStand:
			if h.Len() == 2 {
				h.Add(l.src.Draw())
				h.Doubled = true
				return
			}
			return
		default:
			// Split cannot come back with canSplit=false; anything else is
			// a programmer error and must not be papered over.
			panic(fmt.Sprintf("simulator: unexpected action %v in player loop", a))
		}
	}
}

// dealerTurn plays the dealer's fixed policy: hit below 17, hit soft 17
// under H17, otherwise stand.
func (l *lane) dealerTurn(d *cards.Hand) {
	for {
		total, soft := d.Value()
		if total > 17 {
			return
		}
		if total == 17 && (!soft || !l.rules.DealerHitsSoft17) {
			return
		}
		d.Add(l.src.Draw())
	}
}

// resolveSplits expands an initial pair into up to MaxSplitHands hands.
// Each split replaces the split hand's second card with a fresh draw and
// spawns a sibling from the retained first card. The scan restarts after
// every split, since a split can expose a new two-card pair that an
// in-flight pass would miss. Hands descending from split aces keep exactly
// their one follow-up card; resplitting aces requires the RSA rule.
func (l *lane) resolveSplits(pairRank cards.Rank, up cards.Rank) {
	aceFlag := pairRank == cards.Ace
	l.hands = append(l.hands[:0],
		splitChild(pairRank, l.src.Draw(), aceFlag),
		splitChild(pairRank, l.src.Draw(), aceFlag),
	)

	for len(l.hands) < l.rules.MaxSplitHands {
		split := false
		for i := range l.hands {
			h := &l.hands[i]
			if !h.Pair() {
				continue
			}
			if h.Card(0) == cards.Ace && !l.rules.ResplitAces {
				continue
			}
			if l.tables.Decide(h, up, true) != strategy.Split {
				continue
			}

			first := h.Card(0)
			flag := h.AceSplit || first == cards.Ace
			*h = splitChild(first, l.src.Draw(), flag)
			l.hands = append(l.hands, splitChild(first, l.src.Draw(), flag))
			split = true
			break
		}
		if !split {
			return
		}
	}
}

func splitChild(first, drawn cards.Rank, aceSplit bool) cards.Hand {
	h := cards.NewHand(first, drawn)
	h.AceSplit = aceSplit
	return h
}

// settle scores one player hand against the dealer's final total. A busted
// player hand loses even when the dealer also busts.
func settle(h *cards.Hand, dealerTotal int) float64 {
	mult := h.Multiplier()
	total := h.Total()
	switch {
	case total > 21:
		return -mult
	case dealerTotal > 21:
		return mult
	case total > dealerTotal:
		return mult
	case total < dealerTotal:
		return -mult
	default:
		return 0
	}
}
