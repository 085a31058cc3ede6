package ingest

import (
	"fmt"

	"github.com/rawblock/household-ledger/internal/engine"
	"github.com/rawblock/household-ledger/pkg/model"
)

// opByName maps the OP token to its OpKind. An unrecognized op is a
// fatal format error (§6, §7.1).
var opByName = map[string]model.OpKind{
	"START":    model.OpStart,
	"STOP":     model.OpStop,
	"PAUSE":    model.OpPause,
	"RESUME":   model.OpResume,
	"TRANSFER": model.OpTransfer,
	"BUY":      model.OpBuy,
	"PAY":      model.OpPay,
}

// ParseLine parses one already-tokenized, non-skipped line into a
// Record. line is the 1-based source line number, carried only so
// errors can name it.
func ParseLine(fields []string, line int) (*model.Record, error) {
	if len(fields) < 2 {
		return nil, engine.FatalAtLine(engine.KindFormat, line, fmt.Errorf("record has too few fields"))
	}
	kind, ok := opByName[fields[0]]
	if !ok {
		return nil, engine.FatalAtLine(engine.KindFormat, line, fmt.Errorf("unrecognized operation %q", fields[0]))
	}
	at, err := ParseDate(fields[1])
	if err != nil {
		return nil, engine.FatalAtLine(engine.KindFormat, line, err)
	}

	rec := &model.Record{Kind: kind, At: at}

	want := func(n int) error {
		if len(fields) < n {
			return engine.FatalAtLine(engine.KindFormat, line,
				fmt.Errorf("%s requires at least %d fields, got %d", fields[0], n, len(fields)))
		}
		return nil
	}

	switch kind {
	case model.OpStart, model.OpStop, model.OpPause, model.OpResume:
		if err := want(3); err != nil {
			return nil, err
		}
		rec.Nick = fields[2]

	case model.OpTransfer:
		if err := want(5); err != nil {
			return nil, err
		}
		rec.From = fields[2]
		rec.To = fields[3]
		amt, err := ParseAmount(fields[4])
		if err != nil {
			return nil, engine.FatalAtLine(engine.KindFormat, line, err)
		}
		rec.Amount = amt

	case model.OpBuy:
		if err := want(4); err != nil {
			return nil, err
		}
		rec.Nick = fields[2]
		amt, err := ParseAmount(fields[3])
		if err != nil {
			return nil, engine.FatalAtLine(engine.KindFormat, line, err)
		}
		rec.Amount = amt

	case model.OpPay:
		if err := want(6); err != nil {
			return nil, err
		}
		rec.Nick = fields[2]
		amt, err := ParseAmount(fields[3])
		if err != nil {
			return nil, engine.FatalAtLine(engine.KindFormat, line, err)
		}
		rec.Amount = amt
		w0, err := ParseDate(fields[4])
		if err != nil {
			return nil, engine.FatalAtLine(engine.KindFormat, line, err)
		}
		w1, err := ParseDate(fields[5])
		if err != nil {
			return nil, engine.FatalAtLine(engine.KindFormat, line, err)
		}
		rec.WindowStart = w0
		rec.WindowEnd = w1
	}

	return rec, nil
}
