// Package sweep implements the sweep-line splitter of §4.4: given a
// set of intervals clipped to a query window, it produces the
// minimal sequence of maximal sub-intervals on which the set of
// present owners is constant.
//
// The teacher's closest analogues are its timing and change-detection
// heuristics (internal/heuristics/timing_analysis.go,
// change_detection.go), which sort an event stream and walk it while
// maintaining running state; here the running state is the live set
// of owners, and the output is a partition of the window.
package sweep

import (
	"fmt"
	"sort"

	"github.com/rawblock/household-ledger/pkg/model"
)

// Split is one maximal constant-occupancy sub-interval of the
// window: [A, B) with Occupants the set of owners present throughout.
type Split struct {
	A, B      model.Time
	Occupants []model.PersonID
}

const (
	eventClose = 0
	eventOpen  = 1
)

type event struct {
	t    model.Time
	kind int // eventClose or eventOpen
	who  model.PersonID
}

// Run clips each interval to [winMin, winMax] per §4.4's clipping
// rule and sweeps the resulting events to produce the maximal
// constant-occupancy partition.
//
// Tie-breaking: CLOSE sorts before OPEN at equal timestamps. §9 flags
// this explicitly as "the most common latent bug" in the source,
// which instead sorted OPEN before CLOSE; CLOSE-before-OPEN is the
// correct rule for half-open intervals; sharing a timestamp, closing
// first means a person who leaves at t and another who arrives at
// the same t are never both counted as occupying the instant t.
func Run(intervals []model.Interval, winMin, winMax model.Time) []Split {
	if winMin >= winMax {
		return nil
	}

	events := make([]event, 0, 2*len(intervals))
	for _, raw := range intervals {
		iv := raw.Clip(winMin, winMax)
		if iv.Min >= iv.Max {
			continue
		}
		events = append(events, event{t: iv.Min, kind: eventOpen, who: iv.Owner})
		events = append(events, event{t: iv.Max, kind: eventClose, who: iv.Owner})
	}
	if len(events) == 0 {
		return nil
	}

	sort.SliceStable(events, func(i, j int) bool {
		if events[i].t != events[j].t {
			return events[i].t < events[j].t
		}
		return events[i].kind < events[j].kind // eventClose(0) before eventOpen(1)
	})

	live := make(map[model.PersonID]int) // owner -> open-interval count at this instant
	var splits []Split
	i := 0
	for i < len(events) {
		t := events[i].t
		for i < len(events) && events[i].t == t {
			switch events[i].kind {
			case eventOpen:
				live[events[i].who]++
			case eventClose:
				live[events[i].who]--
				if live[events[i].who] < 0 {
					panic(fmt.Sprintf("sweep: negative occupancy for owner %d — invariant violation", events[i].who))
				}
				if live[events[i].who] == 0 {
					delete(live, events[i].who)
				}
			}
			i++
		}

		if i >= len(events) {
			break
		}
		next := events[i].t
		if next == t {
			continue // zero-length gap, skip emission
		}
		if len(live) > 0 {
			splits = append(splits, Split{A: t, B: next, Occupants: snapshot(live)})
		}
	}
	return mergeAdjacent(splits)
}

func snapshot(live map[model.PersonID]int) []model.PersonID {
	out := make([]model.PersonID, 0, len(live))
	for who := range live {
		out = append(out, who)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// mergeAdjacent collapses consecutive splits whose occupant sets are
// identical — this happens when the events at one timestamp leave the
// live set unchanged (e.g. an owner's interval closes exactly where
// their next one opens); merging keeps the maximality guarantee
// (occupants_k != occupants_{k+1}) exact.
func mergeAdjacent(splits []Split) []Split {
	if len(splits) < 2 {
		return splits
	}
	out := splits[:1]
	for _, s := range splits[1:] {
		last := &out[len(out)-1]
		if last.B == s.A && sameOccupants(last.Occupants, s.Occupants) {
			last.B = s.B
			continue
		}
		out = append(out, s)
	}
	return out
}

func sameOccupants(a, b []model.PersonID) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
