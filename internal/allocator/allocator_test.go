package allocator

import (
	"testing"

	"github.com/rawblock/household-ledger/internal/ledger"
	"github.com/rawblock/household-ledger/internal/store"
	"github.com/rawblock/household-ledger/pkg/model"
	"github.com/stretchr/testify/require"
)

const (
	alice model.PersonID = 0
	bob   model.PersonID = 1
	carol model.PersonID = 2
)

func day(n int) model.Time { return model.Time(n) * 86400 }

// TestTwoPersonBill is scenario 1 of §8: a single 30-day split with
// two occupants, exact division, no tip.
func TestTwoPersonBill(t *testing.T) {
	g := ledger.New()
	p := store.New()
	o := store.New()
	p.Insert(alice, day(0), model.PosInf)
	p.Insert(bob, day(0), model.PosInf)
	o.Insert(alice, day(0), model.PosInf)
	o.Insert(bob, day(0), model.PosInf)

	Pay(g, p, o, alice, 10000, day(0), day(30))

	require.EqualValues(t, 5000, g.Get(alice, bob))
}

// TestMidWindowArrival is scenario 2 of §8.
func TestMidWindowArrival(t *testing.T) {
	g := ledger.New()
	p := store.New()
	o := store.New()
	p.Insert(alice, day(0), model.PosInf)
	p.Insert(bob, day(15), model.PosInf)
	o.Insert(alice, day(0), model.PosInf)
	o.Insert(bob, day(15), model.PosInf)

	Pay(g, p, o, alice, 30000, day(0), day(30))

	require.EqualValues(t, 7500, g.Get(alice, bob))
}

// TestGapFill is scenario 5 of §8: presence pauses but obligation
// continues, so the gap-filled window still charges no one.
func TestGapFill(t *testing.T) {
	g := ledger.New()
	p := store.New()
	o := store.New()
	p.Insert(alice, day(0), model.PosInf)
	require.NoError(t, p.CloseOpen(alice, day(9)))
	o.Insert(alice, day(0), model.PosInf)

	Pay(g, p, o, alice, 3000, day(0), day(30))

	require.Empty(t, g.NonZero())
}

// TestRoundingWithTip is scenario 6 of §8: three people, one split,
// inexact division, one-cent tip applied to each non-payer.
func TestRoundingWithTip(t *testing.T) {
	g := ledger.New()
	p := store.New()
	o := store.New()
	for _, who := range []model.PersonID{alice, bob, carol} {
		p.Insert(who, day(0), model.PosInf)
		o.Insert(who, day(0), model.PosInf)
	}

	Pay(g, p, o, alice, 10000, day(0), day(30))

	require.EqualValues(t, 3334, g.Get(alice, bob))
	require.EqualValues(t, 3334, g.Get(alice, carol))
}

func TestEmptyWindowHasNoEffect(t *testing.T) {
	g := ledger.New()
	p := store.New()
	o := store.New()
	p.Insert(alice, day(0), model.PosInf)

	Pay(g, p, o, alice, 10000, day(5), day(5))

	require.Empty(t, g.NonZero())
}

// TestSoleOccupancyPayerChargesNoOne exercises §9's open question:
// the allocator always skips o == payer, so a sole occupant PAY is a
// no-op even though the presence split is non-empty.
func TestSoleOccupancyPayerChargesNoOne(t *testing.T) {
	g := ledger.New()
	p := store.New()
	o := store.New()
	p.Insert(alice, day(0), model.PosInf)
	o.Insert(alice, day(0), model.PosInf)

	Pay(g, p, o, alice, 10000, day(0), day(30))

	require.Empty(t, g.NonZero())
}

// TestBuyPauseDoesNotAffectObligation is scenario 3 of §8.
func TestBuyPauseDoesNotAffectObligation(t *testing.T) {
	g := ledger.New()
	o := store.New()
	o.Insert(alice, day(0), model.PosInf)
	o.Insert(bob, day(0), model.PosInf)

	err := Buy(g, o, alice, 1000, day(15))
	require.NoError(t, err)
	require.EqualValues(t, 500, g.Get(alice, bob))
}

func TestBuyWithZeroOccupantsIsFatal(t *testing.T) {
	g := ledger.New()
	o := store.New()

	err := Buy(g, o, alice, 1000, day(15))
	require.Error(t, err)
}

// TestPayerTipMonotone exercises L3 directly against splitCost: the
// per-split cost times occupancy is never less than the split's
// proportional share of the bill, and overshoots by at most one cent
// per occupant.
func TestPayerTipMonotone(t *testing.T) {
	amount, dur, n, windowLen := int64(10000), int64(30), int64(3), int64(30)
	cost := splitCost(amount, dur, n, windowLen)

	require.GreaterOrEqual(t, cost*n, amount)
	require.LessOrEqual(t, cost*n-amount, n) // truncation+tip overshoots by under one cent per occupant
}
