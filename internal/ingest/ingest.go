package ingest

import (
	"bufio"
	"io"

	"github.com/rawblock/household-ledger/internal/engine"
	"github.com/rawblock/household-ledger/pkg/model"
)

// Scan reads r line by line and invokes fn for every record the
// grammar in §6 accepts, skipping comment and blank lines. It returns
// the first fatal error encountered — from parsing or from fn itself —
// or a KindResource FatalError if the underlying reader fails.
func Scan(r io.Reader, fn func(*model.Record) error) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)

	line := 0
	for sc.Scan() {
		line++
		fields := tokenize(sc.Text())
		if fields == nil {
			continue
		}
		rec, err := ParseLine(fields, line)
		if err != nil {
			return err
		}
		if err := fn(rec); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return engine.Fatal(engine.KindResource, err)
	}
	return nil
}
