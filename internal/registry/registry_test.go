package registry

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInternAssignsDenseIDs(t *testing.T) {
	r := New()

	alice, err := r.Intern("alice")
	require.NoError(t, err)
	require.Equal(t, 0, int(alice))

	bob, err := r.Intern("bob")
	require.NoError(t, err)
	require.Equal(t, 1, int(bob))

	require.Equal(t, 2, r.Len())
}

func TestInternRejectsDuplicate(t *testing.T) {
	r := New()
	_, err := r.Intern("alice")
	require.NoError(t, err)

	_, err = r.Intern("alice")
	require.Error(t, err)
}

func TestInternOrLookupIsIdempotent(t *testing.T) {
	r := New()
	a1, err := r.InternOrLookup("alice")
	require.NoError(t, err)
	a2, err := r.InternOrLookup("alice")
	require.NoError(t, err)
	require.Equal(t, a1, a2)
}

// TestBijection exercises P1: for every known id p, lookup(name_of(p)) == p.
func TestBijection(t *testing.T) {
	r := New()
	names := []string{"alice", "bob", "carol"}
	for _, n := range names {
		_, err := r.Intern(n)
		require.NoError(t, err)
	}

	for _, id := range r.IDs() {
		name := r.NameOf(id)
		got, ok := r.Lookup(name)
		require.True(t, ok)
		require.Equal(t, id, got)
	}
}

func TestNameOfUnknownPanics(t *testing.T) {
	r := New()
	require.Panics(t, func() { r.NameOf(42) })
}

func TestInternRejectsOversizeNickname(t *testing.T) {
	r := New()
	long := ""
	for i := 0; i < MaxNicknameBytes+1; i++ {
		long += "a"
	}
	_, err := r.Intern(long)
	require.Error(t, err)
}
