// Package registry assigns a dense, append-only numeric id to each
// textual nickname the ledger sees, and answers lookups in both
// directions.
//
// This is the household-ledger analogue of the teacher's address
// book: where the coinjoin engine interns Bitcoin addresses into a
// cluster-engine union-find map (internal/heuristics/cluster_engine.go),
// here nicknames are interned into a flat, append-only id space — no
// merging, since a person is a person for the lifetime of a run.
package registry

import (
	"fmt"

	"github.com/rawblock/household-ledger/pkg/model"
)

// MaxNicknameBytes is the maximum nickname length, per §4.1 ("31 bytes
// plus terminator").
const MaxNicknameBytes = 31

// Registry is the person registry of §4.1. The zero value is not
// ready to use — call New.
type Registry struct {
	byName map[string]model.PersonID
	byID   []string
}

// New returns an empty, ready-to-use Registry.
func New() *Registry {
	return &Registry{byName: make(map[string]model.PersonID)}
}

// Intern allocates the next PersonID for a new nickname and records
// both lookup directions. It fails if the nickname is already known —
// callers that don't care whether a nickname is new should use
// InternOrLookup instead.
func (r *Registry) Intern(nickname string) (model.PersonID, error) {
	if len(nickname) == 0 {
		return 0, fmt.Errorf("registry: empty nickname")
	}
	if len(nickname) > MaxNicknameBytes {
		return 0, fmt.Errorf("registry: nickname %q exceeds %d bytes", nickname, MaxNicknameBytes)
	}
	if _, exists := r.byName[nickname]; exists {
		return 0, fmt.Errorf("registry: nickname %q already interned", nickname)
	}
	id := model.PersonID(len(r.byID))
	r.byName[nickname] = id
	r.byID = append(r.byID, nickname)
	return id, nil
}

// InternOrLookup returns the existing id for nickname if known,
// otherwise interns it. This is the form the dispatcher uses for
// START; STOP uses Lookup and falls back to Intern, and
// PAUSE/RESUME/TRANSFER/BUY/PAY use Lookup only.
func (r *Registry) InternOrLookup(nickname string) (model.PersonID, error) {
	if id, ok := r.Lookup(nickname); ok {
		return id, nil
	}
	return r.Intern(nickname)
}

// Lookup returns the id for a known nickname.
func (r *Registry) Lookup(nickname string) (model.PersonID, bool) {
	id, ok := r.byName[nickname]
	return id, ok
}

// NameOf returns the nickname for a known id. It panics on an unknown
// id — per §4.1 this is total over ids the registry itself handed
// out, and a miss indicates engine corruption, not bad input.
func (r *Registry) NameOf(id model.PersonID) string {
	if id < 0 || int(id) >= len(r.byID) {
		panic(fmt.Sprintf("registry: unknown person id %d", id))
	}
	return r.byID[id]
}

// Len returns the number of interned persons.
func (r *Registry) Len() int { return len(r.byID) }

// IDs returns every known PersonID in assignment order, for callers
// that need a stable full pass (e.g. the timeline renderer).
func (r *Registry) IDs() []model.PersonID {
	out := make([]model.PersonID, len(r.byID))
	for i := range out {
		out[i] = model.PersonID(i)
	}
	return out
}
