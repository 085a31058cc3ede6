// Package ledger is the debt graph of §4.2: a mapping from unordered
// person pairs to a signed cents balance, canonicalized so {a,b} and
// {b,a} share one cell.
//
// The canonical-pair-with-sign-flip shape mirrors the teacher's own
// undirected evidence edges (internal/heuristics/factor_graph.go groups
// EvidenceEdge values by an undirected dependency_group and fuses
// them into one posterior score); here the fusion rule is simpler —
// plain addition — but the discipline of never exposing a directed
// view of what's fundamentally one undirected cell is the same idea.
package ledger

import (
	"fmt"
	"sort"

	"github.com/rawblock/household-ledger/pkg/model"
)

type pair struct {
	lo, hi model.PersonID
}

// Graph is the debt graph of §4.2. The zero value is not ready to
// use — call New.
type Graph struct {
	edges map[pair]model.Cents
}

// New returns an empty, ready-to-use Graph.
func New() *Graph {
	return &Graph{edges: make(map[pair]model.Cents)}
}

func canon(a, b model.PersonID) (p pair, sign model.Cents) {
	if a == b {
		panic(fmt.Sprintf("ledger: self-edge requested for person %d", a))
	}
	if a > b {
		return pair{lo: b, hi: a}, -1
	}
	return pair{lo: a, hi: b}, 1
}

// Get returns the signed cents owed between "from" and "to": positive
// means to owes from, negative means from owes to, zero means no
// edge. Get(a,b) == -Get(b,a) always (P5); Get(from,to) after
// Add(from,to,v) always equals old Get(from,to) + v regardless of
// which of from/to is the actual debtor.
func (g *Graph) Get(from, to model.PersonID) model.Cents {
	if from == to {
		return 0
	}
	p, sign := canon(from, to)
	return sign * g.edges[p]
}

// Add applies a signed increment along the from->to direction: after
// Add(from, to, v), Get(from, to) == old Get(from, to) + v. Creates
// the entry on first non-zero write; a Get(payer, payer) slot never
// exists (L4), so Add is a no-op when from == to.
func (g *Graph) Add(from, to model.PersonID, v model.Cents) {
	if from == to || v == 0 {
		return
	}
	p, sign := canon(from, to)
	g.edges[p] += sign * v
}

// Edge is one non-zero cell of the debt graph, with lo < hi and w the
// signed balance owed from hi to lo (w > 0) or from lo to hi (w < 0).
type Edge struct {
	Lo, Hi model.PersonID
	W      model.Cents
}

// NonZero returns every edge with a non-zero weight, ordered by (lo,
// hi) for a deterministic emission pass — §6 leaves iteration order
// unspecified but requires it be deterministic for a given input.
func (g *Graph) NonZero() []Edge {
	out := make([]Edge, 0, len(g.edges))
	for p, w := range g.edges {
		if w == 0 {
			continue
		}
		out = append(out, Edge{Lo: p.lo, Hi: p.hi, W: w})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Lo != out[j].Lo {
			return out[i].Lo < out[j].Lo
		}
		return out[i].Hi < out[j].Hi
	})
	return out
}

// Line renders one edge in the §4.2/§6 emission format:
// "<debtor> owes <creditor> <D.CC>€". w > 0 means hi owes lo.
func (e Edge) Line(nameOf func(model.PersonID) string) string {
	if e.W > 0 {
		return fmt.Sprintf("%s owes %s %s€", nameOf(e.Hi), nameOf(e.Lo), e.W.String())
	}
	return fmt.Sprintf("%s owes %s %s€", nameOf(e.Lo), nameOf(e.Hi), (-e.W).String())
}
