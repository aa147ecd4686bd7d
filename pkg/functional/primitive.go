package functional

import (
	"strconv"
	"strings"

	"github.com/spicery/owlfn/pkg/common"
	"github.com/spicery/owlfn/pkg/curie"
	"github.com/spicery/owlfn/pkg/owl"
)

// unquote strips the delimiting quotes and undoes the `\\` then the `\"`
// escape, each exactly once.
func unquote(quoted string) string {
	s := quoted
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	s = strings.ReplaceAll(s, `\\`, `\`)
	return strings.ReplaceAll(s, `\"`, `"`)
}

// quote is the inverse of unquote.
func quote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
}

func fromQuotedString(n *common.Node, ctx *Context) (string, error) {
	if err := expect(n, nil, common.NameQuotedString); err != nil {
		return "", err
	}
	return unquote(n.Value()), nil
}

func fromNonNegativeInteger(n *common.Node, ctx *Context) (uint32, error) {
	if err := expect(n, nil, common.NameNonNegativeInteger); err != nil {
		return 0, err
	}
	value, err := strconv.ParseUint(n.Value(), 10, 32)
	if err != nil {
		return 0, &Error{Kind: KindGrammar, Span: n.Span, Value: n.Value(), Message: "not a non-negative integer", Err: err}
	}
	return uint32(value), nil
}

func fromIRI(n *common.Node, ctx *Context) (owl.IRI, error) {
	if err := expect(n, nil, common.NameIRI, common.NameFullIRI, common.NameAbbreviatedIRI); err != nil {
		return "", err
	}
	switch n.Name {
	case common.NameIRI:
		inner, err := unwrap(n, common.NameIRI)
		if err != nil {
			return "", err
		}
		if err := expect(inner, n, common.NameFullIRI, common.NameAbbreviatedIRI); err != nil {
			return "", err
		}
		return fromIRI(inner, ctx)
	case common.NameFullIRI:
		return ctx.build().IRI(n.Value()), nil
	default:
		c := curie.Curie{Prefix: n.Options[common.OptionPrefix], Local: n.Options[common.OptionLocal]}
		prefixes := ctx.prefixes()
		if prefixes == nil {
			return "", &Error{Kind: KindExpansion, Span: n.Span, Value: c.String(), Message: "no prefix mapping"}
		}
		expanded, err := prefixes.ExpandCurie(c)
		if err != nil {
			return "", &Error{Kind: KindExpansion, Span: n.Span, Value: c.String(), Err: err}
		}
		return ctx.build().IRI(expanded), nil
	}
}

// fromConstrainingFacet resolves a facet IRI against the closed vocabulary.
func fromConstrainingFacet(n *common.Node, ctx *Context) (owl.Facet, error) {
	r := newReader(n, ctx, common.NameConstrainingFacet)
	iri := read(r, common.NameIRI, fromIRI)
	if err := r.finish(); err != nil {
		return 0, err
	}
	facet, ok := owl.FacetFromIRI(iri)
	if !ok {
		return 0, &Error{Kind: KindInvalidFacet, Span: n.Span, Value: string(iri)}
	}
	return facet, nil
}
