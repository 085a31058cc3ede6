package ingest

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rawblock/household-ledger/pkg/model"
)

// ParseAmount parses AMOUNT per §6: a decimal with at most two
// fractional digits. The engine stores ⌊amount·100⌋ cents.
func ParseAmount(s string) (model.Cents, error) {
	orig := s
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}

	whole, frac, hasFrac := strings.Cut(s, ".")
	if whole == "" {
		return 0, fmt.Errorf("invalid amount %q", orig)
	}
	if hasFrac && len(frac) > 2 {
		return 0, fmt.Errorf("invalid amount %q: at most two fractional digits", orig)
	}

	w, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", orig, err)
	}

	f := int64(0)
	if hasFrac {
		for len(frac) < 2 {
			frac += "0"
		}
		if frac != "" {
			f, err = strconv.ParseInt(frac, 10, 64)
			if err != nil {
				return 0, fmt.Errorf("invalid amount %q: %w", orig, err)
			}
		}
	}

	cents := w*100 + f
	if neg {
		cents = -cents
	}
	return model.Cents(cents), nil
}
