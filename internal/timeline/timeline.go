// Package timeline is the supplemental ASCII timeline renderer: a
// read-only reporting adapter over the two interval stores, activated
// by the CLI's --timeline flag. It never touches the debt graph.
package timeline

import (
	"fmt"
	"io"
	"strings"

	"github.com/rawblock/household-ledger/internal/registry"
	"github.com/rawblock/household-ledger/internal/store"
	"github.com/rawblock/household-ledger/pkg/model"
)

const oneDay = model.Time(86400)

// Render writes one row per registered person to w, one tick per
// calendar day in [from, to): 'P' if the person is present that day,
// 'o' if absent but still obligated (paused, or owing without being
// present), '.' otherwise. to is exclusive.
//
// Each day is sampled at its midpoint rather than its boundary: a
// boundary point query can match both the interval that closes there
// and the one that opens there (§4.3's inclusive point-query rule),
// which would double-mark the tick either side of a START/STOP. The
// midpoint always falls strictly inside at most one interval.
func Render(w io.Writer, reg *registry.Registry, presence, obligation *store.Store, from, to model.Time) error {
	for _, p := range reg.IDs() {
		var ticks strings.Builder
		for t := from; t < to; t += oneDay {
			mid := t + oneDay/2
			switch {
			case owns(presence.Intersect(mid, mid), p):
				ticks.WriteByte('P')
			case owns(obligation.Intersect(mid, mid), p):
				ticks.WriteByte('o')
			default:
				ticks.WriteByte('.')
			}
		}
		if _, err := fmt.Fprintf(w, "%-*s %s\n", registry.MaxNicknameBytes, reg.NameOf(p), ticks.String()); err != nil {
			return err
		}
	}
	return nil
}

func owns(ivs []model.Interval, p model.PersonID) bool {
	for _, iv := range ivs {
		if iv.Owner == p {
			return true
		}
	}
	return false
}
