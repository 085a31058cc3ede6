// Package engine is the operation dispatcher of §4.6: it consumes
// parsed ledger records, mutates the person registry and the two
// interval stores, and invokes the cost allocator for PAY/BUY.
//
// Structurally this mirrors the teacher's own top-level wiring in
// cmd/engine/main.go, which threads one shared registry-like state
// (the taint map, the cluster engine, the watchlist) through a single
// long-lived object that every inbound event updates in place — here
// that object is Engine, and the inbound events are ledger records
// instead of scanned blocks.
package engine

import (
	"github.com/rawblock/household-ledger/internal/allocator"
	"github.com/rawblock/household-ledger/internal/ledger"
	"github.com/rawblock/household-ledger/internal/registry"
	"github.com/rawblock/household-ledger/internal/store"
	"github.com/rawblock/household-ledger/pkg/model"
)

// Engine owns all mutable state for one run: the person registry, the
// two interval stores (presence and obligation, §4.3), and the debt
// graph (§4.2). It processes records strictly in the order it
// receives them (§5: single-threaded, no suspension).
type Engine struct {
	Registry   *registry.Registry
	Presence   *store.Store
	Obligation *store.Store
	Graph      *ledger.Graph

	log *Logger
}

// New returns an empty, ready-to-use Engine. log may be nil, in which
// case debug tracing is disabled.
func New(log *Logger) *Engine {
	return &Engine{
		Registry:   registry.New(),
		Presence:   store.New(),
		Obligation: store.New(),
		Graph:      ledger.New(),
		log:        log,
	}
}

// Dispatch applies one parsed record's effects, per the table in
// §4.6. It returns a *FatalError on any referential, state, or format
// condition the dispatcher itself can detect (most format errors are
// caught earlier, by the ingest parser).
func (e *Engine) Dispatch(rec *model.Record) error {
	e.trace(rec)

	switch rec.Kind {
	case model.OpStart:
		return e.start(rec)
	case model.OpStop:
		return e.stop(rec)
	case model.OpPause:
		return e.pause(rec)
	case model.OpResume:
		return e.resume(rec)
	case model.OpTransfer:
		return e.transfer(rec)
	case model.OpBuy:
		return e.buy(rec)
	case model.OpPay:
		return e.pay(rec)
	default:
		return Fatal(KindFormat, unknownOpError(rec.Kind))
	}
}

func (e *Engine) start(rec *model.Record) error {
	p, err := e.Registry.InternOrLookup(rec.Nick)
	if err != nil {
		return Fatal(KindFormat, err)
	}
	e.Presence.Insert(p, rec.At, model.PosInf)
	e.Obligation.Insert(p, rec.At, model.PosInf)
	return nil
}

// stop implements §4.6's two-branch STOP: known nicknames close their
// current open interval in both stores; unknown nicknames create a
// first-class retro-active [-∞, t) interval in both stores. §9 notes
// this may have been a defensive fallback in the source, but
// spec.md preserves it deliberately.
func (e *Engine) stop(rec *model.Record) error {
	if p, ok := e.Registry.Lookup(rec.Nick); ok {
		if err := e.Presence.CloseOpen(p, rec.At); err != nil {
			return Fatal(KindState, err)
		}
		if err := e.Obligation.CloseOpen(p, rec.At); err != nil {
			return Fatal(KindState, err)
		}
		return nil
	}

	p, err := e.Registry.Intern(rec.Nick)
	if err != nil {
		return Fatal(KindFormat, err)
	}
	e.Presence.Insert(p, model.NegInf, rec.At)
	e.Obligation.Insert(p, model.NegInf, rec.At)
	return nil
}

func (e *Engine) pause(rec *model.Record) error {
	p, ok := e.Registry.Lookup(rec.Nick)
	if !ok {
		return Fatal(KindReferential, unknownNickError(rec.Nick))
	}
	if err := e.Presence.CloseOpen(p, rec.At); err != nil {
		return Fatal(KindState, err)
	}
	return nil
}

func (e *Engine) resume(rec *model.Record) error {
	p, ok := e.Registry.Lookup(rec.Nick)
	if !ok {
		return Fatal(KindReferential, unknownNickError(rec.Nick))
	}
	if e.Presence.HasOpen(p) {
		return Fatal(KindState, alreadyOpenError(rec.Nick))
	}
	e.Presence.Insert(p, rec.At, model.PosInf)
	return nil
}

func (e *Engine) transfer(rec *model.Record) error {
	from, ok := e.Registry.Lookup(rec.From)
	if !ok {
		return Fatal(KindReferential, unknownNickError(rec.From))
	}
	to, ok := e.Registry.Lookup(rec.To)
	if !ok {
		return Fatal(KindReferential, unknownNickError(rec.To))
	}
	e.Graph.Add(from, to, rec.Amount)
	return nil
}

func (e *Engine) buy(rec *model.Record) error {
	p, ok := e.Registry.Lookup(rec.Nick)
	if !ok {
		return Fatal(KindReferential, unknownNickError(rec.Nick))
	}
	if err := allocator.Buy(e.Graph, e.Obligation, p, rec.Amount, rec.At); err != nil {
		return Fatal(KindReferential, err)
	}
	return nil
}

func (e *Engine) pay(rec *model.Record) error {
	p, ok := e.Registry.Lookup(rec.Nick)
	if !ok {
		return Fatal(KindReferential, unknownNickError(rec.Nick))
	}
	allocator.Pay(e.Graph, e.Presence, e.Obligation, p, rec.Amount, rec.WindowStart, rec.WindowEnd)
	return nil
}
