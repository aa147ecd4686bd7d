package functional

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spicery/owlfn/pkg/common"
	"github.com/spicery/owlfn/pkg/parser"
)

// ErrorKind classifies an Error.
type ErrorKind int

const (
	// KindUnknown is an error that did not come from this package.
	KindUnknown ErrorKind = iota
	// KindGrammar covers text that does not match the requested production,
	// including text with input left over.
	KindGrammar
	// KindIO is a failure to read the input or write the output.
	KindIO
	// KindExpansion is a compact IRI whose prefix is not declared.
	KindExpansion
	// KindInvalidFacet is a facet IRI outside the OWL 2 facet vocabulary.
	KindInvalidFacet
	// KindUnsupported is a construct the model cannot represent.
	KindUnsupported
)

func (k ErrorKind) String() string {
	switch k {
	case KindGrammar:
		return "grammar error"
	case KindIO:
		return "I/O error"
	case KindExpansion:
		return "expansion error"
	case KindInvalidFacet:
		return "invalid facet"
	case KindUnsupported:
		return "unsupported construct"
	default:
		return "unknown error"
	}
}

var (
	// ErrRemainingInput marks text that parsed but was not consumed entirely.
	ErrRemainingInput = errors.New("remaining input")
	// ErrRuleMismatch marks a tree node converted as the wrong production.
	ErrRuleMismatch = errors.New("rule mismatch")
)

// Error is the error returned by every operation of this package.
type Error struct {
	Kind      ErrorKind
	Span      common.Span
	Message   string
	Found     string   // grammar errors: what was found
	Expected  []string // grammar errors: what would have been accepted
	Value     string   // the offending IRI or text
	Construct string   // unsupported errors: the construct
	Reference string   // unsupported errors: where the gap is described
	Err       error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.String())
	if e.Span.StartLine > 0 {
		fmt.Fprintf(&b, " at line %d, column %d", e.Span.StartLine, e.Span.StartColumn)
	}
	switch e.Kind {
	case KindGrammar:
		if e.Message != "" {
			fmt.Fprintf(&b, ": %s", e.Message)
		}
		if len(e.Expected) > 0 {
			found := "nothing"
			if e.Found != "" {
				found = fmt.Sprintf("'%s'", e.Found)
			}
			fmt.Fprintf(&b, ": found %s while expecting '%s'", found, strings.Join(e.Expected, "' or '"))
		}
	case KindExpansion:
		fmt.Fprintf(&b, ": cannot expand '%s'", e.Value)
	case KindInvalidFacet:
		fmt.Fprintf(&b, ": '%s' is not a constraining facet", e.Value)
	case KindUnsupported:
		fmt.Fprintf(&b, ": %s", e.Construct)
		if e.Reference != "" {
			fmt.Fprintf(&b, " (see %s)", e.Reference)
		}
	default:
		if e.Message != "" {
			fmt.Fprintf(&b, ": %s", e.Message)
		}
	}
	if e.Err != nil && e.Kind != KindGrammar {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf classifies err, returning KindUnknown for errors from elsewhere.
func KindOf(err error) ErrorKind {
	var ferr *Error
	if errors.As(err, &ferr) {
		return ferr.Kind
	}
	return KindUnknown
}

func grammarError(err error) error {
	var perr *parser.Error
	if errors.As(err, &perr) {
		return &Error{
			Kind:     KindGrammar,
			Span:     perr.Span,
			Message:  perr.Message,
			Found:    perr.Found,
			Expected: perr.Expected,
			Err:      perr,
		}
	}
	return &Error{Kind: KindGrammar, Message: err.Error(), Err: err}
}

// mismatch reports a node that is not one of the expected productions. A nil
// node means the parent ran out of children.
func mismatch(node, parent *common.Node, expected ...string) error {
	err := &Error{Kind: KindGrammar, Expected: expected, Err: ErrRuleMismatch}
	if node != nil {
		err.Span = node.Span
		err.Found = node.Name
	} else if parent != nil {
		err.Span = parent.Span
	}
	return err
}

// Reference for constructs of the grammar that the model cannot hold.
const referenceDataRestrictions = "https://www.w3.org/TR/owl2-syntax/#Data_Property_Restrictions"

func unsupported(node *common.Node, construct, reference string) error {
	return &Error{
		Kind:      KindUnsupported,
		Span:      node.Span,
		Construct: construct,
		Reference: reference,
	}
}
