package parser

import (
	"fmt"
	"strings"

	"github.com/spicery/owlfn/pkg/common"
)

// Error is a positioned grammar failure. Found is the offending input, or
// empty at the end of input, and Expected lists the acceptable productions.
type Error struct {
	Span     common.Span
	Found    string
	Expected []string
	Message  string
}

func (e *Error) Error() string {
	found := "end of input"
	if e.Found != "" {
		found = fmt.Sprintf("'%s'", e.Found)
	}
	if e.Message != "" {
		return fmt.Sprintf("%s: found %s at line %d, column %d", e.Message, found, e.Span.StartLine, e.Span.StartColumn)
	}
	return fmt.Sprintf("found %s while expecting '%s' at line %d, column %d", found, strings.Join(e.Expected, "' or '"), e.Span.StartLine, e.Span.StartColumn)
}
