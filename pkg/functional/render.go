package functional

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spicery/owlfn/pkg/common"
	"github.com/spicery/owlfn/pkg/curie"
	"github.com/spicery/owlfn/pkg/owl"
	"github.com/spicery/owlfn/pkg/parser"
)

// Renderer writes model values in canonical functional-style syntax. The
// first write or conversion failure is kept and later output is skipped.
type Renderer struct {
	w   io.Writer
	ctx *Context
	err error
}

// NewRenderer renders to w. With a nil ctx, or one without prefixes, every
// IRI is written in full.
func NewRenderer(w io.Writer, ctx *Context) *Renderer {
	return &Renderer{w: w, ctx: ctx}
}

func (r *Renderer) Err() error {
	return r.err
}

// Render writes one value: an IRI, entity, literal, annotation, expression,
// axiom, annotated axiom, ontology or prefix mapping.
func (r *Renderer) Render(v any) error {
	r.render(v)
	return r.err
}

// Format renders v on its own, with full IRIs.
func Format(v any) (string, error) {
	return FormatContext(v, nil)
}

// FormatContext renders v abbreviating IRIs through the prefixes of ctx.
func FormatContext(v any, ctx *Context) (string, error) {
	var b strings.Builder
	if err := NewRenderer(&b, ctx).Render(v); err != nil {
		return "", err
	}
	return b.String(), nil
}

func (r *Renderer) write(s string) {
	if r.err != nil {
		return
	}
	if _, err := io.WriteString(r.w, s); err != nil {
		r.err = &Error{Kind: KindIO, Message: "cannot write output", Err: err}
	}
}

func (r *Renderer) fail(v any) {
	if r.err == nil {
		r.err = &Error{Kind: KindUnsupported, Construct: fmt.Sprintf("cannot render %T", v)}
	}
}

func (r *Renderer) iri(iri owl.IRI) {
	if prefixes := r.ctx.prefixes(); prefixes != nil {
		if c, ok := prefixes.Shrink(string(iri)); ok {
			r.write(c.String())
			return
		}
	}
	r.write("<" + string(iri) + ">")
}

// group is a parenthesised operand list without a keyword.
type group []any

// declared is the operand of a declaration, written with its entity kind.
type declared struct {
	entity owl.Entity
}

func spread[T any](items []T) []any {
	operands := make([]any, len(items))
	for i, item := range items {
		operands[i] = item
	}
	return operands
}

// form writes `keyword(annotations... operands...)` with single spaces.
func (r *Renderer) form(keyword string, annotations []owl.Annotation, operands ...any) {
	r.write(keyword)
	r.write("(")
	first := true
	for _, annotation := range annotations {
		if !first {
			r.write(" ")
		}
		first = false
		r.render(annotation)
	}
	for _, operand := range operands {
		if !first {
			r.write(" ")
		}
		first = false
		r.render(operand)
	}
	r.write(")")
}

func (r *Renderer) render(v any) {
	if r.err != nil {
		return
	}
	switch v := v.(type) {
	case owl.IRI:
		r.iri(v)
	case owl.Class:
		r.iri(v.IRI)
	case owl.Datatype:
		r.iri(v.IRI)
	case owl.ObjectProperty:
		r.iri(v.IRI)
	case owl.DataProperty:
		r.iri(v.IRI)
	case owl.AnnotationProperty:
		r.iri(v.IRI)
	case owl.NamedIndividual:
		r.iri(v.IRI)
	case owl.AnonymousIndividual:
		r.write(v.ID)
	case owl.Literal:
		r.literal(v)
	case uint32:
		r.write(strconv.FormatUint(uint64(v), 10))
	case owl.Facet:
		r.iri(v.IRI())
	case owl.FacetRestriction:
		r.render(v.Facet)
		r.write(" ")
		r.render(v.Value)
	case owl.Annotation:
		r.form(common.NameAnnotation, v.Annotations, v.Property, v.Value)
	case owl.InverseObjectProperty:
		r.form(parser.KeywordObjectInverseOf, nil, v.Property)
	case owl.PropertyChain:
		r.form(parser.KeywordObjectPropertyChain, nil, spread(v.Properties)...)
	case group:
		r.write("(")
		for i, operand := range v {
			if i > 0 {
				r.write(" ")
			}
			r.render(operand)
		}
		r.write(")")
	case declared:
		r.declared(v.entity)
	case owl.ClassExpression:
		r.classExpression(v)
	case owl.DataRange:
		r.dataRange(v)
	case owl.AnnotatedAxiom:
		r.axiom(v.Axiom, v.Annotations)
	case owl.Axiom:
		r.axiom(v, nil)
	case *owl.Ontology:
		r.ontology(v)
	case *curie.PrefixMapping:
		r.prefixes(v)
	default:
		r.fail(v)
	}
}

func (r *Renderer) literal(l owl.Literal) {
	r.write(quote(l.Lexical()))
	switch l := l.(type) {
	case owl.LanguageLiteral:
		r.write("@" + l.Lang)
	case owl.DatatypeLiteral:
		r.write("^^")
		r.iri(l.Datatype)
	}
}

func (r *Renderer) declared(entity owl.Entity) {
	switch e := entity.(type) {
	case owl.Class:
		r.form(common.NameClass, nil, e)
	case owl.Datatype:
		r.form(common.NameDatatype, nil, e)
	case owl.ObjectProperty:
		r.form(common.NameObjectProperty, nil, e)
	case owl.DataProperty:
		r.form(common.NameDataProperty, nil, e)
	case owl.AnnotationProperty:
		r.form(common.NameAnnotationProperty, nil, e)
	case owl.NamedIndividual:
		r.form(common.NameNamedIndividual, nil, e)
	default:
		r.fail(entity)
	}
}

func (r *Renderer) classExpression(v owl.ClassExpression) {
	switch v := v.(type) {
	case owl.ObjectIntersectionOf:
		r.form(common.NameObjectIntersectionOf, nil, spread(v.Operands)...)
	case owl.ObjectUnionOf:
		r.form(common.NameObjectUnionOf, nil, spread(v.Operands)...)
	case owl.ObjectComplementOf:
		r.form(common.NameObjectComplementOf, nil, v.Operand)
	case owl.ObjectOneOf:
		r.form(common.NameObjectOneOf, nil, spread(v.Individuals)...)
	case owl.ObjectSomeValuesFrom:
		r.form(common.NameObjectSomeValuesFrom, nil, v.Property, v.Filler)
	case owl.ObjectAllValuesFrom:
		r.form(common.NameObjectAllValuesFrom, nil, v.Property, v.Filler)
	case owl.ObjectHasValue:
		r.form(common.NameObjectHasValue, nil, v.Property, v.Individual)
	case owl.ObjectHasSelf:
		r.form(common.NameObjectHasSelf, nil, v.Property)
	case owl.ObjectMinCardinality:
		r.form(common.NameObjectMinCardinality, nil, v.N, v.Property, v.Filler)
	case owl.ObjectMaxCardinality:
		r.form(common.NameObjectMaxCardinality, nil, v.N, v.Property, v.Filler)
	case owl.ObjectExactCardinality:
		r.form(common.NameObjectExactCardinality, nil, v.N, v.Property, v.Filler)
	case owl.DataSomeValuesFrom:
		r.form(common.NameDataSomeValuesFrom, nil, v.Property, v.Range)
	case owl.DataAllValuesFrom:
		r.form(common.NameDataAllValuesFrom, nil, v.Property, v.Range)
	case owl.DataHasValue:
		r.form(common.NameDataHasValue, nil, v.Property, v.Value)
	case owl.DataMinCardinality:
		r.form(common.NameDataMinCardinality, nil, v.N, v.Property, v.Range)
	case owl.DataMaxCardinality:
		r.form(common.NameDataMaxCardinality, nil, v.N, v.Property, v.Range)
	case owl.DataExactCardinality:
		r.form(common.NameDataExactCardinality, nil, v.N, v.Property, v.Range)
	default:
		r.fail(v)
	}
}

func (r *Renderer) dataRange(v owl.DataRange) {
	switch v := v.(type) {
	case owl.DataIntersectionOf:
		r.form(common.NameDataIntersectionOf, nil, spread(v.Operands)...)
	case owl.DataUnionOf:
		r.form(common.NameDataUnionOf, nil, spread(v.Operands)...)
	case owl.DataComplementOf:
		r.form(common.NameDataComplementOf, nil, v.Operand)
	case owl.DataOneOf:
		r.form(common.NameDataOneOf, nil, spread(v.Literals)...)
	case owl.DatatypeRestriction:
		r.form(common.NameDatatypeRestriction, nil, append([]any{v.Datatype}, spread(v.Restrictions)...)...)
	default:
		r.fail(v)
	}
}

// axiom writes one axiom. Annotations come before the operands and are left
// out when there are none.
func (r *Renderer) axiom(v owl.Axiom, anns []owl.Annotation) {
	switch v := owl.AxiomValue(v).(type) {
	case owl.Import:
		if len(anns) > 0 {
			r.err = &Error{Kind: KindUnsupported, Construct: "annotated import"}
			return
		}
		r.form(common.NameImport, nil, v.IRI)
	case owl.OntologyAnnotation:
		if len(anns) > 0 {
			r.err = &Error{Kind: KindUnsupported, Construct: "annotated ontology annotation"}
			return
		}
		r.render(v.Annotation)
	case owl.Declaration:
		r.form(common.NameDeclaration, anns, declared{v.Entity})
	case owl.SubClassOf:
		r.form(common.NameSubClassOf, anns, v.Sub, v.Super)
	case owl.EquivalentClasses:
		r.form(common.NameEquivalentClasses, anns, spread(v.Classes)...)
	case owl.DisjointClasses:
		r.form(common.NameDisjointClasses, anns, spread(v.Classes)...)
	case owl.DisjointUnion:
		r.form(common.NameDisjointUnion, anns, append([]any{v.Class}, spread(v.Classes)...)...)
	case owl.SubObjectPropertyOf:
		r.form(common.NameSubObjectPropertyOf, anns, v.Sub, v.Super)
	case owl.EquivalentObjectProperties:
		r.form(common.NameEquivalentObjectProperties, anns, spread(v.Properties)...)
	case owl.DisjointObjectProperties:
		r.form(common.NameDisjointObjectProperties, anns, spread(v.Properties)...)
	case owl.InverseObjectProperties:
		r.form(common.NameInverseObjectProperties, anns, v.First, v.Second)
	case owl.ObjectPropertyDomain:
		r.form(common.NameObjectPropertyDomain, anns, v.Property, v.Domain)
	case owl.ObjectPropertyRange:
		r.form(common.NameObjectPropertyRange, anns, v.Property, v.Range)
	case owl.FunctionalObjectProperty:
		r.form(common.NameFunctionalObjectProperty, anns, v.Property)
	case owl.InverseFunctionalObjectProperty:
		r.form(common.NameInverseFunctionalObjectProperty, anns, v.Property)
	case owl.ReflexiveObjectProperty:
		r.form(common.NameReflexiveObjectProperty, anns, v.Property)
	case owl.IrreflexiveObjectProperty:
		r.form(common.NameIrreflexiveObjectProperty, anns, v.Property)
	case owl.SymmetricObjectProperty:
		r.form(common.NameSymmetricObjectProperty, anns, v.Property)
	case owl.AsymmetricObjectProperty:
		r.form(common.NameAsymmetricObjectProperty, anns, v.Property)
	case owl.TransitiveObjectProperty:
		r.form(common.NameTransitiveObjectProperty, anns, v.Property)
	case owl.SubDataPropertyOf:
		r.form(common.NameSubDataPropertyOf, anns, v.Sub, v.Super)
	case owl.EquivalentDataProperties:
		r.form(common.NameEquivalentDataProperties, anns, spread(v.Properties)...)
	case owl.DisjointDataProperties:
		r.form(common.NameDisjointDataProperties, anns, spread(v.Properties)...)
	case owl.DataPropertyDomain:
		r.form(common.NameDataPropertyDomain, anns, v.Property, v.Domain)
	case owl.DataPropertyRange:
		r.form(common.NameDataPropertyRange, anns, v.Property, v.Range)
	case owl.FunctionalDataProperty:
		r.form(common.NameFunctionalDataProperty, anns, v.Property)
	case owl.DatatypeDefinition:
		r.form(common.NameDatatypeDefinition, anns, v.Datatype, v.Range)
	case owl.HasKey:
		r.form(common.NameHasKey, anns, v.Class, group(spread(v.ObjectProperties)), group(spread(v.DataProperties)))
	case owl.SameIndividual:
		r.form(common.NameSameIndividual, anns, spread(v.Individuals)...)
	case owl.DifferentIndividuals:
		r.form(common.NameDifferentIndividuals, anns, spread(v.Individuals)...)
	case owl.ClassAssertion:
		r.form(common.NameClassAssertion, anns, v.Class, v.Individual)
	case owl.ObjectPropertyAssertion:
		r.form(common.NameObjectPropertyAssertion, anns, v.Property, v.Subject, v.Object)
	case owl.NegativeObjectPropertyAssertion:
		r.form(common.NameNegativeObjectPropertyAssertion, anns, v.Property, v.Subject, v.Object)
	case owl.DataPropertyAssertion:
		r.form(common.NameDataPropertyAssertion, anns, v.Property, v.Subject, v.Value)
	case owl.NegativeDataPropertyAssertion:
		r.form(common.NameNegativeDataPropertyAssertion, anns, v.Property, v.Subject, v.Value)
	case owl.AnnotationAssertion:
		r.form(common.NameAnnotationAssertion, anns, v.Property, v.Subject, v.Value)
	case owl.SubAnnotationPropertyOf:
		r.form(common.NameSubAnnotationPropertyOf, anns, v.Sub, v.Super)
	case owl.AnnotationPropertyDomain:
		r.form(common.NameAnnotationPropertyDomain, anns, v.Property, v.Domain)
	case owl.AnnotationPropertyRange:
		r.form(common.NameAnnotationPropertyRange, anns, v.Property, v.Range)
	default:
		r.fail(v)
	}
}
