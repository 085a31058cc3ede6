package timeline

import (
	"strings"
	"testing"

	"github.com/rawblock/household-ledger/internal/registry"
	"github.com/rawblock/household-ledger/internal/store"
	"github.com/rawblock/household-ledger/pkg/model"
	"github.com/stretchr/testify/require"
)

func TestRenderMarksPresenceAbsenceAndObligation(t *testing.T) {
	reg := registry.New()
	alice, err := reg.Intern("alice")
	require.NoError(t, err)

	presence := store.New()
	obligation := store.New()

	day := func(n int) model.Time { return model.Time(n) * 86400 }

	presence.Insert(alice, day(0), day(1)) // present day 0 only
	obligation.Insert(alice, day(0), day(3))

	var buf strings.Builder
	require.NoError(t, Render(&buf, reg, presence, obligation, day(0), day(3)))

	out := buf.String()
	require.True(t, strings.HasPrefix(out, "alice"))
	require.Contains(t, out, "Poo")
}

func TestRenderEmptyRegistryWritesNothing(t *testing.T) {
	reg := registry.New()
	presence := store.New()
	obligation := store.New()

	var buf strings.Builder
	require.NoError(t, Render(&buf, reg, presence, obligation, 0, 86400))
	require.Empty(t, buf.String())
}
