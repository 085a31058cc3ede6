package ledger

import (
	"testing"

	"github.com/rawblock/household-ledger/pkg/model"
	"github.com/stretchr/testify/require"
)

const (
	alice model.PersonID = 0
	bob   model.PersonID = 1
)

func TestGetDefaultsToZero(t *testing.T) {
	g := New()
	require.EqualValues(t, 0, g.Get(alice, bob))
}

// TestAdditivity exercises L1: two additions equal one combined addition.
func TestAdditivity(t *testing.T) {
	g1 := New()
	g1.Add(alice, bob, 300)
	g1.Add(alice, bob, 200)

	g2 := New()
	g2.Add(alice, bob, 500)

	require.Equal(t, g2.Get(alice, bob), g1.Get(alice, bob))
}

// TestSkewSymmetry exercises P5.
func TestSkewSymmetry(t *testing.T) {
	g := New()
	g.Add(alice, bob, 750)
	require.EqualValues(t, 750, g.Get(alice, bob))
	require.EqualValues(t, -750, g.Get(bob, alice))
}

func TestAddIsOrderInsensitiveToCanonicalPair(t *testing.T) {
	g := New()
	g.Add(bob, alice, 100) // alice owes bob 100
	require.EqualValues(t, -100, g.Get(alice, bob))
	require.EqualValues(t, 100, g.Get(bob, alice))
}

func TestTransferCancelsDebt(t *testing.T) {
	g := New()
	g.Add(bob, alice, 500) // alice owes bob 500
	g.Add(bob, alice, -500)
	require.Zero(t, g.Get(alice, bob))
	require.Empty(t, g.NonZero())
}

// TestAddSelfIsNoop exercises L4: a PAY never changes graph.Get(payer, payer).
func TestAddSelfIsNoop(t *testing.T) {
	g := New()
	g.Add(alice, alice, 999)
	require.Zero(t, g.Get(alice, alice))
	require.Empty(t, g.NonZero())
}

func TestNonZeroOrderingDeterministic(t *testing.T) {
	g := New()
	g.Add(2, 0, 10)
	g.Add(1, 0, 20)
	edges := g.NonZero()
	require.Len(t, edges, 2)
	require.EqualValues(t, 0, edges[0].Lo)
	require.EqualValues(t, 1, edges[0].Hi)
	require.EqualValues(t, 0, edges[1].Lo)
	require.EqualValues(t, 2, edges[1].Hi)
}

func TestEdgeLineFormatting(t *testing.T) {
	names := map[model.PersonID]string{alice: "alice", bob: "bob"}
	nameOf := func(id model.PersonID) string { return names[id] }

	e := Edge{Lo: alice, Hi: bob, W: 5000}
	require.Equal(t, "bob owes alice 50.00€", e.Line(nameOf))

	e2 := Edge{Lo: alice, Hi: bob, W: -333}
	require.Equal(t, "alice owes bob 3.33€", e2.Line(nameOf))
}
