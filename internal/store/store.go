// Package store implements the labelled interval store of §4.3: a
// set of owned, half-open intervals indexed so that (a) every
// interval overlapping a query window can be enumerated and (b) the
// single open interval for an owner can be found and closed.
//
// §9 ("Secondary indices and cursor fragility") warns against the
// source's approach of mutating a primary index through a
// secondary cursor — the source kept two KV stores (pdbs/npdbs) with
// secondary indices and noted the pattern as corruption-prone. This
// implementation instead follows §9's recommendation directly: one
// owning ordered structure keyed by (Max, Owner, seq) — a google/btree
// B-tree, the ordered-index structure the wider corpus reaches for
// (AKJUS-bsc-erigon/go.mod; erigon-lib leans on the same library for
// its own range-scan indices) — plus a side map from owner to its
// current open entry. No cursor ever mutates the tree in place: close
// is delete-then-reinsert, exactly as §4.3 permits ("the identity of
// the replaced entry is immaterial").
package store

import (
	"fmt"

	"github.com/google/btree"
	"github.com/rawblock/household-ledger/pkg/model"
)

// Store is one labelled interval store — the engine holds two
// independent instances, one for presence and one for obligation
// (§4.3).
type Store struct {
	tree *btree.BTree
	open map[model.PersonID]entry
	seq  int64
}

// New returns an empty, ready-to-use Store.
func New() *Store {
	return &Store{
		tree: btree.New(32),
		open: make(map[model.PersonID]entry),
	}
}

// entry is the btree.Item stored in the tree: an interval plus a
// monotonically increasing sequence number that breaks ties between
// intervals sharing (Max, Owner), guaranteeing every key is distinct
// so Delete always finds exactly the entry it was given.
type entry struct {
	iv  model.Interval
	seq int64
}

func (e entry) Less(than btree.Item) bool {
	o := than.(entry)
	if e.iv.Max != o.iv.Max {
		return e.iv.Max < o.iv.Max
	}
	if e.iv.Owner != o.iv.Owner {
		return e.iv.Owner < o.iv.Owner
	}
	return e.seq < o.seq
}

// Insert adds a new interval. No uniqueness check across owners is
// performed; for one owner, the caller must not insert a second open
// interval while one is already open (§4.3).
func (s *Store) Insert(owner model.PersonID, min, max model.Time) {
	e := entry{iv: model.Interval{Owner: owner, Min: min, Max: max}, seq: s.seq}
	s.seq++
	s.tree.ReplaceOrInsert(e)
	if max == model.PosInf {
		s.open[owner] = e
	}
}

// CloseOpen finds owner's current open interval (Max == +Inf) and
// replaces it with one ending at end. It fails if no open interval
// exists for that owner — a state error per §7.
func (s *Store) CloseOpen(owner model.PersonID, end model.Time) error {
	e, ok := s.open[owner]
	if !ok {
		return fmt.Errorf("store: no open interval for owner %d", owner)
	}
	s.tree.Delete(e)
	delete(s.open, owner)

	closed := entry{iv: model.Interval{Owner: owner, Min: e.iv.Min, Max: end}, seq: s.seq}
	s.seq++
	s.tree.ReplaceOrInsert(closed)
	return nil
}

// HasOpen reports whether owner currently has an open interval.
func (s *Store) HasOpen(owner model.PersonID) bool {
	_, ok := s.open[owner]
	return ok
}

// Intersect yields every interval overlapping the query. For a range
// query (winMin < winMax) this is the half-open rule iv.Max >= winMin
// && iv.Min < winMax. For a point query (winMin == winMax == t) §4.3
// carves out the inclusive-inclusive exception: iv.Min <= t <= iv.Max.
//
// The primary index orders entries by Max ascending, so the scan
// starts at the first entry whose Max could possibly qualify and
// walks forward, filtering by Min as it goes — the "range-scan from
// min upward" the implementation contract describes.
func (s *Store) Intersect(winMin, winMax model.Time) []model.Interval {
	var out []model.Interval
	point := winMin == winMax

	pivot := entry{iv: model.Interval{Owner: minPersonID, Max: winMin}, seq: -1}
	s.tree.AscendGreaterOrEqual(pivot, func(item btree.Item) bool {
		e := item.(entry)
		if point {
			if e.iv.ContainsPoint(winMin) {
				out = append(out, e.iv)
			}
		} else if e.iv.Overlaps(winMin, winMax) {
			out = append(out, e.iv)
		}
		return true
	})
	return out
}

// minPersonID is the smallest PersonID an Owner field could hold,
// used only to build a pivot key that sorts before every real entry
// sharing the same Max.
const minPersonID = model.PersonID(-1 << 31)

// Len returns the number of intervals currently stored, for tests and
// diagnostics.
func (s *Store) Len() int { return s.tree.Len() }
