// Package allocator is the cost allocator of §4.5: it turns a sweep
// split sequence (or, for BUY, a single point-in-time occupant set)
// plus a bill amount and payer into signed increments on the debt
// graph, under a fixed rounding rule that never leaves the payer
// short.
//
// The proportional-share rule here — cost for a sub-interval split
// n ways, overpaying by at most a cent — is the same shape as the
// teacher's haircut taint model (internal/heuristics/taint_analysis.go):
// PropagateTaintHaircut distributes a tainted amount across outputs
// proportional to value; here the amount is distributed across
// occupants proportional to the fraction of the billing window they
// covered, with the truncation/tip rule spec.md §4.5 and §9 specify
// replacing the "haircut" weighting.
package allocator

import (
	"fmt"

	"github.com/rawblock/household-ledger/internal/ledger"
	"github.com/rawblock/household-ledger/internal/store"
	"github.com/rawblock/household-ledger/internal/sweep"
	"github.com/rawblock/household-ledger/pkg/model"
)

// Pay applies a PAY event: the bill amount is distributed across the
// billing window [w0, w1) in proportion to how many people were
// present in each constant-occupancy sub-interval of the presence
// store, with gaps (sub-ranges where presence is empty) refilled from
// the obligation store.
func Pay(g *ledger.Graph, presence, obligation *store.Store, payer model.PersonID, amount model.Cents, w0, w1 model.Time) {
	if w0 >= w1 {
		return // empty window: no splits, no effect (§8 boundary behaviour)
	}

	ivs := presence.Intersect(w0, w1)
	splits := gapFill(sweep.Run(ivs, w0, w1), w0, w1, obligation)

	windowLen := int64(w1 - w0)
	for _, s := range splits {
		n := int64(len(s.Occupants))
		if n == 0 {
			continue
		}
		cost := splitCost(int64(amount), int64(s.B-s.A), n, windowLen)
		for _, occupant := range s.Occupants {
			if occupant == payer {
				continue // §9 open question: allocator always skips the payer
			}
			g.Add(payer, occupant, model.Cents(cost))
		}
	}
}

// gapFill implements §4.5's gap-filling rule: any prefix, suffix, or
// interior sub-range of [w0, w1) not covered by a presence split
// (because presence there was empty) is re-swept against the
// obligation store and spliced in, in place.
func gapFill(splitsP []sweep.Split, w0, w1 model.Time, obligation *store.Store) []sweep.Split {
	out := make([]sweep.Split, 0, len(splitsP))
	cursor := w0
	for _, s := range splitsP {
		if s.A > cursor {
			out = append(out, fillFromObligation(cursor, s.A, obligation)...)
		}
		out = append(out, s)
		cursor = s.B
	}
	if cursor < w1 {
		out = append(out, fillFromObligation(cursor, w1, obligation)...)
	}
	return out
}

func fillFromObligation(a, b model.Time, obligation *store.Store) []sweep.Split {
	ivs := obligation.Intersect(a, b)
	return sweep.Run(ivs, a, b)
}

// splitCost computes amount * dur / (n * windowLen), truncated toward
// zero, with a one-cent payer tip added whenever the division isn't
// exact (§4.5, §9 "Payer-tip rule" — the tip applies only on non-zero
// remainder, unlike an earlier source revision that tipped
// unconditionally).
func splitCost(amount, dur, n, windowLen int64) int64 {
	numerator := amount * dur
	denom := n * windowLen
	cost := numerator / denom
	if numerator%denom != 0 {
		cost++
	}
	return cost
}

// Buy applies a BUY event: the bill amount is split evenly among the
// owners of obligation intervals containing t, with the same
// truncate-then-tip rounding rule as Pay's per-split cost, and the
// same skip-the-payer attribution.
func Buy(g *ledger.Graph, obligation *store.Store, payer model.PersonID, amount model.Cents, t model.Time) error {
	occupants := obligation.Intersect(t, t)
	n := int64(len(occupants))
	if n == 0 {
		return fmt.Errorf("allocator: BUY at t=%d has no obligated occupants", t)
	}

	cost := int64(amount) / n
	if int64(amount)%n != 0 {
		cost++
	}

	for _, iv := range occupants {
		if iv.Owner == payer {
			continue
		}
		g.Add(payer, iv.Owner, model.Cents(cost))
	}
	return nil
}
