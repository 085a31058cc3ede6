package ingest

import (
	"fmt"
	"time"

	"github.com/rawblock/household-ledger/pkg/model"
)

const (
	dateOnlyLayout = "2006-01-02"
	dateTimeLayout = "2006-01-02T15:04:05"
)

// ParseDate parses a DATE token per §6: either a bare calendar date
// (midnight UTC implied) or a full UTC timestamp. Both forms are
// tried; neither carries a zone offset, so both are interpreted in UTC.
func ParseDate(s string) (model.Time, error) {
	if t, err := time.ParseInLocation(dateTimeLayout, s, time.UTC); err == nil {
		return model.Time(t.Unix()), nil
	}
	if t, err := time.ParseInLocation(dateOnlyLayout, s, time.UTC); err == nil {
		return model.Time(t.Unix()), nil
	}
	return 0, fmt.Errorf("invalid date %q: want YYYY-MM-DD or YYYY-MM-DDTHH:MM:SS", s)
}
