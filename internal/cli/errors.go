package cli

import (
	"errors"
	"fmt"
)

// outputError normalizes error emission across commands so failures are
// always visible on stderr before the nonzero exit.
func outputError(globals *Globals, code, message string) error {
	if globals != nil {
		fmt.Fprintf(globals.Stderr, "Error [%s]: %s\n", code, message)
	}
	return errors.New(message)
}
