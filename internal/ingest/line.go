// Package ingest is the line tokenizer and field parser of §6: it
// turns one line of ledger text into a *model.Record the dispatcher
// can apply, or a fatal format error.
package ingest

import "strings"

// tokenize splits one input line into whitespace-delimited fields. It
// returns nil for a line the grammar skips entirely: blank lines and
// lines whose first non-whitespace byte is '#'.
func tokenize(line string) []string {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return nil
	}
	return strings.Fields(trimmed)
}
