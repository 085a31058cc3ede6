package engine

import "fmt"

func unknownNickError(nick string) error {
	return fmt.Errorf("unknown nickname %q", nick)
}

func alreadyOpenError(nick string) error {
	return fmt.Errorf("%q already has an open presence interval", nick)
}

func unknownOpError(kind interface{ String() string }) error {
	return fmt.Errorf("unrecognized operation %q", kind.String())
}
