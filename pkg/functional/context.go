// Package functional converts between OWL 2 functional-style syntax and the
// owl document model.
//
// Parsing goes through a rule-tagged parse tree built by package parser; each
// node is checked against the production it should come from before it is
// converted. Rendering writes the canonical text form, abbreviating IRIs when
// a prefix mapping is available.
package functional

import (
	"github.com/spicery/owlfn/pkg/curie"
	"github.com/spicery/owlfn/pkg/owl"
)

// Context carries the IRI interning service and the prefix mapping used by
// one parse or render call. Both are optional and a nil *Context is valid.
// A Context is not modified once in use.
type Context struct {
	Build    *owl.Build
	Prefixes *curie.PrefixMapping
}

func NewContext(build *owl.Build, prefixes *curie.PrefixMapping) *Context {
	return &Context{Build: build, Prefixes: prefixes}
}

// WithPrefixes derives a Context sharing the interning service but using
// another prefix mapping.
func (c *Context) WithPrefixes(prefixes *curie.PrefixMapping) *Context {
	return &Context{Build: c.build(), Prefixes: prefixes}
}

func (c *Context) build() *owl.Build {
	if c == nil {
		return nil
	}
	return c.Build
}

func (c *Context) prefixes() *curie.PrefixMapping {
	if c == nil {
		return nil
	}
	return c.Prefixes
}
