package functional

import (
	"fmt"

	"github.com/spicery/owlfn/pkg/common"
	"github.com/spicery/owlfn/pkg/curie"
	"github.com/spicery/owlfn/pkg/owl"
)

// named builds the converter for a production that wraps a single IRI.
func named[T any](rule string, build func(owl.IRI) T) converter[T] {
	return func(n *common.Node, ctx *Context) (T, error) {
		r := newReader(n, ctx, rule)
		iri := read(r, common.NameIRI, fromIRI)
		if err := r.finish(); err != nil {
			var zero T
			return zero, err
		}
		return build(iri), nil
	}
}

var (
	fromClass = named(common.NameClass, func(iri owl.IRI) owl.Class {
		return owl.Class{IRI: iri}
	})
	fromDatatype = named(common.NameDatatype, func(iri owl.IRI) owl.Datatype {
		return owl.Datatype{IRI: iri}
	})
	fromObjectProperty = named(common.NameObjectProperty, func(iri owl.IRI) owl.ObjectProperty {
		return owl.ObjectProperty{IRI: iri}
	})
	fromDataProperty = named(common.NameDataProperty, func(iri owl.IRI) owl.DataProperty {
		return owl.DataProperty{IRI: iri}
	})
	fromAnnotationProperty = named(common.NameAnnotationProperty, func(iri owl.IRI) owl.AnnotationProperty {
		return owl.AnnotationProperty{IRI: iri}
	})
	fromNamedIndividual = named(common.NameNamedIndividual, func(iri owl.IRI) owl.NamedIndividual {
		return owl.NamedIndividual{IRI: iri}
	})
)

func fromAnonymousIndividual(n *common.Node, ctx *Context) (owl.AnonymousIndividual, error) {
	if err := expect(n, nil, common.NameAnonymousIndividual); err != nil {
		return owl.AnonymousIndividual{}, err
	}
	return owl.AnonymousIndividual{ID: n.Value()}, nil
}

// fromEntity converts the operand of a declaration.
func fromEntity(n *common.Node, ctx *Context) (owl.Entity, error) {
	inner, err := unwrap(n, common.NameEntity)
	if err != nil {
		return nil, err
	}
	switch inner.Name {
	case common.NameClass:
		return fromClass(inner, ctx)
	case common.NameDatatype:
		return fromDatatype(inner, ctx)
	case common.NameObjectProperty:
		return fromObjectProperty(inner, ctx)
	case common.NameDataProperty:
		return fromDataProperty(inner, ctx)
	case common.NameAnnotationProperty:
		return fromAnnotationProperty(inner, ctx)
	case common.NameNamedIndividual:
		return fromNamedIndividual(inner, ctx)
	default:
		return nil, mismatch(inner, n, common.NameClass, common.NameDatatype, common.NameObjectProperty,
			common.NameDataProperty, common.NameAnnotationProperty, common.NameNamedIndividual)
	}
}

func fromIndividual(n *common.Node, ctx *Context) (owl.Individual, error) {
	inner, err := unwrap(n, common.NameIndividual)
	if err != nil {
		return nil, err
	}
	switch inner.Name {
	case common.NameNamedIndividual:
		return fromNamedIndividual(inner, ctx)
	case common.NameAnonymousIndividual:
		return fromAnonymousIndividual(inner, ctx)
	default:
		return nil, mismatch(inner, n, common.NameNamedIndividual, common.NameAnonymousIndividual)
	}
}

func fromLiteral(n *common.Node, ctx *Context) (owl.Literal, error) {
	inner, err := unwrap(n, common.NameLiteral)
	if err != nil {
		return nil, err
	}
	r := newReader(inner, ctx)
	var literal owl.Literal
	switch inner.Name {
	case common.NameTypedLiteral:
		text := read(r, common.NameQuotedString, fromQuotedString)
		datatype := read(r, common.NameDatatype, fromDatatype)
		literal = owl.DatatypeLiteral{Literal: text, Datatype: datatype.IRI}
	case common.NameStringLiteralWithLanguage:
		text := read(r, common.NameQuotedString, fromQuotedString)
		if tag := r.next(common.NameLanguageTag); tag != nil {
			literal = owl.LanguageLiteral{Literal: text, Lang: tag.Value()}
		}
	case common.NameStringLiteralNoLanguage:
		literal = owl.SimpleLiteral{Literal: read(r, common.NameQuotedString, fromQuotedString)}
	default:
		return nil, mismatch(inner, n, common.NameTypedLiteral, common.NameStringLiteralWithLanguage,
			common.NameStringLiteralNoLanguage)
	}
	if err := r.finish(); err != nil {
		return nil, err
	}
	return literal, nil
}

func fromAnnotationValue(n *common.Node, ctx *Context) (owl.AnnotationValue, error) {
	inner, err := unwrap(n, common.NameAnnotationValue)
	if err != nil {
		return nil, err
	}
	switch inner.Name {
	case common.NameIRI:
		return fromIRI(inner, ctx)
	case common.NameAnonymousIndividual:
		return fromAnonymousIndividual(inner, ctx)
	case common.NameLiteral:
		literal, err := fromLiteral(inner, ctx)
		if err != nil {
			return nil, err
		}
		return literal.(owl.AnnotationValue), nil
	default:
		return nil, mismatch(inner, n, common.NameIRI, common.NameAnonymousIndividual, common.NameLiteral)
	}
}

func fromAnnotationSubject(n *common.Node, ctx *Context) (owl.AnnotationSubject, error) {
	inner, err := unwrap(n, common.NameAnnotationSubject)
	if err != nil {
		return nil, err
	}
	switch inner.Name {
	case common.NameIRI:
		return fromIRI(inner, ctx)
	case common.NameAnonymousIndividual:
		return fromAnonymousIndividual(inner, ctx)
	default:
		return nil, mismatch(inner, n, common.NameIRI, common.NameAnonymousIndividual)
	}
}

func fromAnnotation(n *common.Node, ctx *Context) (owl.Annotation, error) {
	r := newReader(n, ctx, common.NameAnnotation)
	annotation := owl.Annotation{
		Annotations: read(r, common.NameAnnotations, fromAnnotations),
		Property:    read(r, common.NameAnnotationProperty, fromAnnotationProperty),
		Value:       read(r, common.NameAnnotationValue, fromAnnotationValue),
	}
	return annotation, r.finish()
}

func fromAnnotations(n *common.Node, ctx *Context) ([]owl.Annotation, error) {
	r := newReader(n, ctx, common.NameAnnotations)
	annotations := readAll(r, common.NameAnnotation, fromAnnotation)
	return annotations, r.finish()
}

func fromObjectPropertyExpression(n *common.Node, ctx *Context) (owl.ObjectPropertyExpression, error) {
	inner, err := unwrap(n, common.NameObjectPropertyExpression)
	if err != nil {
		return nil, err
	}
	switch inner.Name {
	case common.NameObjectProperty:
		return fromObjectProperty(inner, ctx)
	case common.NameInverseObjectProperty:
		r := newReader(inner, ctx)
		inverse := owl.InverseObjectProperty{Property: read(r, common.NameObjectProperty, fromObjectProperty)}
		return inverse, r.finish()
	default:
		return nil, mismatch(inner, n, common.NameObjectProperty, common.NameInverseObjectProperty)
	}
}

func fromDataPropertyExpression(n *common.Node, ctx *Context) (owl.DataProperty, error) {
	inner, err := unwrap(n, common.NameDataPropertyExpression)
	if err != nil {
		return owl.DataProperty{}, err
	}
	return fromDataProperty(inner, ctx)
}

func fromSubObjectPropertyExpression(n *common.Node, ctx *Context) (owl.SubObjectPropertyExpression, error) {
	inner, err := unwrap(n, common.NameSubObjectPropertyExpression)
	if err != nil {
		return nil, err
	}
	switch inner.Name {
	case common.NameObjectPropertyExpression:
		expression, err := fromObjectPropertyExpression(inner, ctx)
		if err != nil {
			return nil, err
		}
		return expression.(owl.SubObjectPropertyExpression), nil
	case common.NamePropertyExpressionChain:
		r := newReader(inner, ctx)
		chain := owl.PropertyChain{Properties: readAll(r, common.NameObjectPropertyExpression, fromObjectPropertyExpression)}
		return chain, r.finish()
	default:
		return nil, mismatch(inner, n, common.NameObjectPropertyExpression, common.NamePropertyExpressionChain)
	}
}

func fromClassExpression(n *common.Node, ctx *Context) (owl.ClassExpression, error) {
	inner, err := unwrap(n, common.NameClassExpression)
	if err != nil {
		return nil, err
	}
	if inner.Name == common.NameClass {
		return fromClass(inner, ctx)
	}

	r := newReader(inner, ctx)
	ce := common.NameClassExpression
	ope := common.NameObjectPropertyExpression
	var expression owl.ClassExpression
	switch inner.Name {
	case common.NameObjectIntersectionOf:
		expression = owl.ObjectIntersectionOf{Operands: readAll(r, ce, fromClassExpression)}
	case common.NameObjectUnionOf:
		expression = owl.ObjectUnionOf{Operands: readAll(r, ce, fromClassExpression)}
	case common.NameObjectComplementOf:
		expression = owl.ObjectComplementOf{Operand: read(r, ce, fromClassExpression)}
	case common.NameObjectOneOf:
		expression = owl.ObjectOneOf{Individuals: readAll(r, common.NameIndividual, fromIndividual)}
	case common.NameObjectSomeValuesFrom:
		expression = owl.ObjectSomeValuesFrom{
			Property: read(r, ope, fromObjectPropertyExpression),
			Filler:   read(r, ce, fromClassExpression),
		}
	case common.NameObjectAllValuesFrom:
		expression = owl.ObjectAllValuesFrom{
			Property: read(r, ope, fromObjectPropertyExpression),
			Filler:   read(r, ce, fromClassExpression),
		}
	case common.NameObjectHasValue:
		expression = owl.ObjectHasValue{
			Property:   read(r, ope, fromObjectPropertyExpression),
			Individual: read(r, common.NameIndividual, fromIndividual),
		}
	case common.NameObjectHasSelf:
		expression = owl.ObjectHasSelf{Property: read(r, ope, fromObjectPropertyExpression)}
	case common.NameObjectMinCardinality, common.NameObjectMaxCardinality, common.NameObjectExactCardinality:
		expression = objectCardinality(r, inner.Name)
	case common.NameDataSomeValuesFrom, common.NameDataAllValuesFrom:
		return dataQuantifier(r, inner)
	case common.NameDataHasValue:
		expression = owl.DataHasValue{
			Property: read(r, common.NameDataPropertyExpression, fromDataPropertyExpression),
			Value:    read(r, common.NameLiteral, fromLiteral),
		}
	case common.NameDataMinCardinality, common.NameDataMaxCardinality, common.NameDataExactCardinality:
		expression = dataCardinality(r, inner.Name)
	default:
		return nil, unsupported(inner, inner.Name, "")
	}
	if err := r.finish(); err != nil {
		return nil, err
	}
	return expression, nil
}

// objectCardinality reads `n property [filler]`. A missing filler means
// owl:Thing.
func objectCardinality(r *reader, rule string) owl.ClassExpression {
	n := read(r, common.NameNonNegativeInteger, fromNonNegativeInteger)
	property := read(r, common.NameObjectPropertyExpression, fromObjectPropertyExpression)
	var filler owl.ClassExpression = owl.Class{IRI: r.ctx.build().IRI(string(owl.OWLThing))}
	if r.more() {
		filler = read(r, common.NameClassExpression, fromClassExpression)
	}
	switch rule {
	case common.NameObjectMinCardinality:
		return owl.ObjectMinCardinality{N: n, Property: property, Filler: filler}
	case common.NameObjectMaxCardinality:
		return owl.ObjectMaxCardinality{N: n, Property: property, Filler: filler}
	default:
		return owl.ObjectExactCardinality{N: n, Property: property, Filler: filler}
	}
}

// dataCardinality reads `n property [range]`. A missing range means
// rdfs:Literal.
func dataCardinality(r *reader, rule string) owl.ClassExpression {
	n := read(r, common.NameNonNegativeInteger, fromNonNegativeInteger)
	property := read(r, common.NameDataPropertyExpression, fromDataPropertyExpression)
	var dataRange owl.DataRange = owl.Datatype{IRI: r.ctx.build().IRI(string(owl.RDFSLiteral))}
	if r.more() {
		dataRange = read(r, common.NameDataRange, fromDataRange)
	}
	switch rule {
	case common.NameDataMinCardinality:
		return owl.DataMinCardinality{N: n, Property: property, Range: dataRange}
	case common.NameDataMaxCardinality:
		return owl.DataMaxCardinality{N: n, Property: property, Range: dataRange}
	default:
		return owl.DataExactCardinality{N: n, Property: property, Range: dataRange}
	}
}

// dataQuantifier accepts exactly one data property. The grammar allows
// several but the model has no n-ary data restrictions.
func dataQuantifier(r *reader, inner *common.Node) (owl.ClassExpression, error) {
	properties := readWhile(r, common.NameDataPropertyExpression, fromDataPropertyExpression)
	dataRange := read(r, common.NameDataRange, fromDataRange)
	if err := r.finish(); err != nil {
		return nil, err
	}
	if len(properties) != 1 {
		construct := fmt.Sprintf("%s over %d data properties", inner.Name, len(properties))
		return nil, unsupported(inner, construct, referenceDataRestrictions)
	}
	if inner.Name == common.NameDataSomeValuesFrom {
		return owl.DataSomeValuesFrom{Property: properties[0], Range: dataRange}, nil
	}
	return owl.DataAllValuesFrom{Property: properties[0], Range: dataRange}, nil
}

func fromDataRange(n *common.Node, ctx *Context) (owl.DataRange, error) {
	inner, err := unwrap(n, common.NameDataRange)
	if err != nil {
		return nil, err
	}
	if inner.Name == common.NameDatatype {
		return fromDatatype(inner, ctx)
	}

	r := newReader(inner, ctx)
	dr := common.NameDataRange
	var dataRange owl.DataRange
	switch inner.Name {
	case common.NameDataIntersectionOf:
		dataRange = owl.DataIntersectionOf{Operands: readAll(r, dr, fromDataRange)}
	case common.NameDataUnionOf:
		dataRange = owl.DataUnionOf{Operands: readAll(r, dr, fromDataRange)}
	case common.NameDataComplementOf:
		dataRange = owl.DataComplementOf{Operand: read(r, dr, fromDataRange)}
	case common.NameDataOneOf:
		dataRange = owl.DataOneOf{Literals: readAll(r, common.NameLiteral, fromLiteral)}
	case common.NameDatatypeRestriction:
		dataRange = owl.DatatypeRestriction{
			Datatype:     read(r, common.NameDatatype, fromDatatype),
			Restrictions: readAll(r, common.NameFacetRestriction, fromFacetRestriction),
		}
	default:
		return nil, unsupported(inner, inner.Name, "")
	}
	if err := r.finish(); err != nil {
		return nil, err
	}
	return dataRange, nil
}

func fromFacetRestriction(n *common.Node, ctx *Context) (owl.FacetRestriction, error) {
	r := newReader(n, ctx, common.NameFacetRestriction)
	restriction := owl.FacetRestriction{
		Facet: read(r, common.NameConstrainingFacet, fromConstrainingFacet),
		Value: read(r, common.NameLiteral, fromLiteral),
	}
	return restriction, r.finish()
}

func fromImport(n *common.Node, ctx *Context) (owl.Import, error) {
	r := newReader(n, ctx, common.NameImport)
	imp := owl.Import{IRI: read(r, common.NameIRI, fromIRI)}
	return imp, r.finish()
}

// fromAxiom converts any axiom production. Every axiom node starts with its
// annotations.
func fromAxiom(n *common.Node, ctx *Context) (owl.AnnotatedAxiom, error) {
	inner, err := unwrap(n, common.NameAxiom)
	if err != nil {
		return owl.AnnotatedAxiom{}, err
	}
	r := newReader(inner, ctx)
	annotations := read(r, common.NameAnnotations, fromAnnotations)

	ce := common.NameClassExpression
	ope := common.NameObjectPropertyExpression
	dpe := common.NameDataPropertyExpression
	ind := common.NameIndividual
	ap := common.NameAnnotationProperty

	var axiom owl.Axiom
	switch inner.Name {
	case common.NameDeclaration:
		axiom = owl.Declaration{Entity: read(r, common.NameEntity, fromEntity)}
	case common.NameSubClassOf:
		axiom = owl.SubClassOf{Sub: read(r, ce, fromClassExpression), Super: read(r, ce, fromClassExpression)}
	case common.NameEquivalentClasses:
		axiom = owl.EquivalentClasses{Classes: readAll(r, ce, fromClassExpression)}
	case common.NameDisjointClasses:
		axiom = owl.DisjointClasses{Classes: readAll(r, ce, fromClassExpression)}
	case common.NameDisjointUnion:
		axiom = owl.DisjointUnion{
			Class:   read(r, common.NameClass, fromClass),
			Classes: readAll(r, ce, fromClassExpression),
		}
	case common.NameSubObjectPropertyOf:
		axiom = owl.SubObjectPropertyOf{
			Sub:   read(r, common.NameSubObjectPropertyExpression, fromSubObjectPropertyExpression),
			Super: read(r, ope, fromObjectPropertyExpression),
		}
	case common.NameEquivalentObjectProperties:
		axiom = owl.EquivalentObjectProperties{Properties: readAll(r, ope, fromObjectPropertyExpression)}
	case common.NameDisjointObjectProperties:
		axiom = owl.DisjointObjectProperties{Properties: readAll(r, ope, fromObjectPropertyExpression)}
	case common.NameInverseObjectProperties:
		axiom = owl.InverseObjectProperties{
			First:  read(r, ope, fromObjectPropertyExpression),
			Second: read(r, ope, fromObjectPropertyExpression),
		}
	case common.NameObjectPropertyDomain:
		axiom = owl.ObjectPropertyDomain{
			Property: read(r, ope, fromObjectPropertyExpression),
			Domain:   read(r, ce, fromClassExpression),
		}
	case common.NameObjectPropertyRange:
		axiom = owl.ObjectPropertyRange{
			Property: read(r, ope, fromObjectPropertyExpression),
			Range:    read(r, ce, fromClassExpression),
		}
	case common.NameFunctionalObjectProperty:
		axiom = owl.FunctionalObjectProperty{Property: read(r, ope, fromObjectPropertyExpression)}
	case common.NameInverseFunctionalObjectProperty:
		axiom = owl.InverseFunctionalObjectProperty{Property: read(r, ope, fromObjectPropertyExpression)}
	case common.NameReflexiveObjectProperty:
		axiom = owl.ReflexiveObjectProperty{Property: read(r, ope, fromObjectPropertyExpression)}
	case common.NameIrreflexiveObjectProperty:
		axiom = owl.IrreflexiveObjectProperty{Property: read(r, ope, fromObjectPropertyExpression)}
	case common.NameSymmetricObjectProperty:
		axiom = owl.SymmetricObjectProperty{Property: read(r, ope, fromObjectPropertyExpression)}
	case common.NameAsymmetricObjectProperty:
		axiom = owl.AsymmetricObjectProperty{Property: read(r, ope, fromObjectPropertyExpression)}
	case common.NameTransitiveObjectProperty:
		axiom = owl.TransitiveObjectProperty{Property: read(r, ope, fromObjectPropertyExpression)}
	case common.NameSubDataPropertyOf:
		axiom = owl.SubDataPropertyOf{
			Sub:   read(r, dpe, fromDataPropertyExpression),
			Super: read(r, dpe, fromDataPropertyExpression),
		}
	case common.NameEquivalentDataProperties:
		axiom = owl.EquivalentDataProperties{Properties: readAll(r, dpe, fromDataPropertyExpression)}
	case common.NameDisjointDataProperties:
		axiom = owl.DisjointDataProperties{Properties: readAll(r, dpe, fromDataPropertyExpression)}
	case common.NameDataPropertyDomain:
		axiom = owl.DataPropertyDomain{
			Property: read(r, dpe, fromDataPropertyExpression),
			Domain:   read(r, ce, fromClassExpression),
		}
	case common.NameDataPropertyRange:
		axiom = owl.DataPropertyRange{
			Property: read(r, dpe, fromDataPropertyExpression),
			Range:    read(r, common.NameDataRange, fromDataRange),
		}
	case common.NameFunctionalDataProperty:
		axiom = owl.FunctionalDataProperty{Property: read(r, dpe, fromDataPropertyExpression)}
	case common.NameDatatypeDefinition:
		axiom = owl.DatatypeDefinition{
			Datatype: read(r, common.NameDatatype, fromDatatype),
			Range:    read(r, common.NameDataRange, fromDataRange),
		}
	case common.NameHasKey:
		axiom = owl.HasKey{
			Class:            read(r, ce, fromClassExpression),
			ObjectProperties: readList(r, common.NameObjectPropertyExpressions, ope, fromObjectPropertyExpression),
			DataProperties:   readList(r, common.NameDataPropertyExpressions, dpe, fromDataPropertyExpression),
		}
	case common.NameSameIndividual:
		axiom = owl.SameIndividual{Individuals: readAll(r, ind, fromIndividual)}
	case common.NameDifferentIndividuals:
		axiom = owl.DifferentIndividuals{Individuals: readAll(r, ind, fromIndividual)}
	case common.NameClassAssertion:
		axiom = owl.ClassAssertion{Class: read(r, ce, fromClassExpression), Individual: read(r, ind, fromIndividual)}
	case common.NameObjectPropertyAssertion:
		axiom = owl.ObjectPropertyAssertion{
			Property: read(r, ope, fromObjectPropertyExpression),
			Subject:  read(r, ind, fromIndividual),
			Object:   read(r, ind, fromIndividual),
		}
	case common.NameNegativeObjectPropertyAssertion:
		axiom = owl.NegativeObjectPropertyAssertion{
			Property: read(r, ope, fromObjectPropertyExpression),
			Subject:  read(r, ind, fromIndividual),
			Object:   read(r, ind, fromIndividual),
		}
	case common.NameDataPropertyAssertion:
		axiom = owl.DataPropertyAssertion{
			Property: read(r, dpe, fromDataPropertyExpression),
			Subject:  read(r, ind, fromIndividual),
			Value:    read(r, common.NameLiteral, fromLiteral),
		}
	case common.NameNegativeDataPropertyAssertion:
		axiom = owl.NegativeDataPropertyAssertion{
			Property: read(r, dpe, fromDataPropertyExpression),
			Subject:  read(r, ind, fromIndividual),
			Value:    read(r, common.NameLiteral, fromLiteral),
		}
	case common.NameAnnotationAssertion:
		axiom = owl.AnnotationAssertion{
			Property: read(r, ap, fromAnnotationProperty),
			Subject:  read(r, common.NameAnnotationSubject, fromAnnotationSubject),
			Value:    read(r, common.NameAnnotationValue, fromAnnotationValue),
		}
	case common.NameSubAnnotationPropertyOf:
		axiom = owl.SubAnnotationPropertyOf{
			Sub:   read(r, ap, fromAnnotationProperty),
			Super: read(r, ap, fromAnnotationProperty),
		}
	case common.NameAnnotationPropertyDomain:
		axiom = owl.AnnotationPropertyDomain{
			Property: read(r, ap, fromAnnotationProperty),
			Domain:   read(r, common.NameIRI, fromIRI),
		}
	case common.NameAnnotationPropertyRange:
		axiom = owl.AnnotationPropertyRange{
			Property: read(r, ap, fromAnnotationProperty),
			Range:    read(r, common.NameIRI, fromIRI),
		}
	default:
		return owl.AnnotatedAxiom{}, unsupported(inner, inner.Name, "")
	}
	if err := r.finish(); err != nil {
		return owl.AnnotatedAxiom{}, err
	}
	return owl.AnnotatedAxiom{Axiom: axiom, Annotations: annotations}, nil
}

// fromOntology fills an ontology from its header and body. Imports and
// ontology annotations are held as axioms.
func fromOntology(n *common.Node, ctx *Context) (*owl.Ontology, error) {
	ontology := owl.NewOntology()
	r := newReader(n, ctx, common.NameOntology)
	if r.peek() == common.NameOntologyIRI {
		iri := read(r, common.NameOntologyIRI, wrapped(common.NameOntologyIRI, fromIRI))
		ontology.ID.IRI = &iri
	}
	if r.peek() == common.NameVersionIRI {
		iri := read(r, common.NameVersionIRI, wrapped(common.NameVersionIRI, fromIRI))
		ontology.ID.VersionIRI = &iri
	}
	for _, imp := range readList(r, common.NameDirectlyImportsDocuments, common.NameImport, fromImport) {
		ontology.InsertAxiom(imp)
	}
	for _, annotation := range readList(r, common.NameOntologyAnnotations, common.NameAnnotation, fromAnnotation) {
		ontology.InsertAxiom(owl.OntologyAnnotation{Annotation: annotation})
	}
	for _, axiom := range readList(r, common.NameAxioms, common.NameAxiom, fromAxiom) {
		ontology.Insert(axiom)
	}
	if err := r.finish(); err != nil {
		return nil, err
	}
	return ontology, nil
}

// wrapped converts the only child of a node produced by rule.
func wrapped[T any](rule string, convert converter[T]) converter[T] {
	return func(n *common.Node, ctx *Context) (T, error) {
		inner, err := unwrap(n, rule)
		if err != nil {
			var zero T
			return zero, err
		}
		return convert(inner, ctx)
	}
}

func fromPrefixDeclaration(n *common.Node, ctx *Context) (curie.Mapping, error) {
	r := newReader(n, ctx, common.NamePrefixDeclaration)
	name := r.next(common.NamePrefixName)
	namespace := r.next(common.NameFullIRI)
	if err := r.finish(); err != nil {
		return curie.Mapping{}, err
	}
	return curie.Mapping{Name: name.Value(), Namespace: namespace.Value()}, nil
}

type document struct {
	ontology *owl.Ontology
	prefixes *curie.PrefixMapping
}

// fromOntologyDocument reads the prefix declarations first. The body is then
// converted against them alone; the caller's prefixes play no part.
func fromOntologyDocument(n *common.Node, ctx *Context) (document, error) {
	r := newReader(n, ctx, common.NameOntologyDocument)
	prefixes := curie.NewPrefixMapping()
	for _, mapping := range readWhile(r, common.NamePrefixDeclaration, fromPrefixDeclaration) {
		if err := prefixes.AddPrefix(mapping.Name, mapping.Namespace); err != nil {
			return document{}, &Error{Kind: KindGrammar, Span: n.Span, Value: mapping.Name, Message: err.Error(), Err: err}
		}
	}
	r.ctx = ctx.WithPrefixes(prefixes)
	ontology := read(r, common.NameOntology, fromOntology)
	if err := r.finish(); err != nil {
		return document{}, err
	}
	return document{ontology: ontology, prefixes: prefixes}, nil
}
