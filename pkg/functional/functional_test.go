package functional

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spicery/owlfn/pkg/common"
	"github.com/spicery/owlfn/pkg/curie"
	"github.com/spicery/owlfn/pkg/owl"
	"github.com/spicery/owlfn/pkg/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exampleContext(t *testing.T) *Context {
	t.Helper()
	prefixes := curie.NewPrefixMapping()
	prefixes.SetDefault("http://example.com/")
	require.NoError(t, prefixes.AddPrefix("ex", "http://example.com/"))
	require.NoError(t, prefixes.AddPrefix("owl", owl.NamespaceOWL))
	require.NoError(t, prefixes.AddPrefix("rdfs", owl.NamespaceRDFS))
	require.NoError(t, prefixes.AddPrefix("xsd", owl.NamespaceXSD))
	return NewContext(owl.NewBuild(), prefixes)
}

func TestDeclarationRoundTrip(t *testing.T) {
	text := "Declaration(Class(<http://example.com/A>))"
	axiom, err := ParseAnnotatedAxiom(text, nil)
	require.NoError(t, err)
	assert.Equal(t, owl.Declaration{Entity: owl.Class{IRI: "http://example.com/A"}}, axiom.Axiom)
	assert.Empty(t, axiom.Annotations)

	rendered, err := Format(axiom)
	require.NoError(t, err)
	assert.Equal(t, text, rendered)
}

func TestParseDeclarationRendersFullForm(t *testing.T) {
	declaration, err := ParseDeclaration("Class(<http://example.com/A>)", nil)
	require.NoError(t, err)
	rendered, err := Format(declaration)
	require.NoError(t, err)
	assert.Equal(t, "Declaration(Class(<http://example.com/A>))", rendered)
}

func TestTrailingInputRejected(t *testing.T) {
	first := "Class(<http://example.com/a>)"
	_, err := ParseDeclaration(first+" Class(<http://example.com/b>)", nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrRemainingInput))
	assert.Equal(t, KindGrammar, KindOf(err))

	var ferr *Error
	require.True(t, errors.As(err, &ferr))
	assert.Equal(t, len(first), ferr.Span.StartOffset)
	assert.Equal(t, 1, ferr.Span.StartLine)
	assert.Equal(t, len(first)+1, ferr.Span.StartColumn)
}

func TestTrailingCommentsAllowed(t *testing.T) {
	_, err := ParseDeclaration("Class(<http://example.com/a>)  # the a class\n", nil)
	assert.NoError(t, err)
}

func TestMinimalOntology(t *testing.T) {
	ontology, prefixes, err := ParseDocument("Ontology()", nil)
	require.NoError(t, err)
	assert.Nil(t, ontology.ID.IRI)
	assert.Nil(t, ontology.ID.VersionIRI)
	assert.Equal(t, 0, ontology.Len())
	assert.Equal(t, 0, prefixes.Len())

	var b strings.Builder
	require.NoError(t, RenderDocument(&b, ontology, prefixes))
	assert.Equal(t, "Ontology()", b.String())
}

func TestCardinalityDefaults(t *testing.T) {
	ctx := exampleContext(t)
	tests := []struct {
		implicit string
		explicit string
	}{
		{"ObjectMinCardinality(2 :hasPart)", "ObjectMinCardinality(2 :hasPart owl:Thing)"},
		{"ObjectExactCardinality(1 ObjectInverseOf(:hasPart))", "ObjectExactCardinality(1 ObjectInverseOf(:hasPart) owl:Thing)"},
		{"DataMinCardinality(2 :hasAge)", "DataMinCardinality(2 :hasAge rdfs:Literal)"},
		{"DataMaxCardinality(0 :hasAge)", "DataMaxCardinality(0 :hasAge rdfs:Literal)"},
	}
	for _, test := range tests {
		implicit, err := ParseClassExpression(test.implicit, ctx)
		require.NoError(t, err, test.implicit)
		explicit, err := ParseClassExpression(test.explicit, ctx)
		require.NoError(t, err, test.explicit)
		assert.Equal(t, explicit, implicit, test.implicit)
	}

	expression, err := ParseClassExpression("ObjectMinCardinality(2 :hasPart)", ctx)
	require.NoError(t, err)
	assert.Equal(t, owl.ObjectMinCardinality{
		N:        2,
		Property: owl.ObjectProperty{IRI: "http://example.com/hasPart"},
		Filler:   owl.Class{IRI: owl.OWLThing},
	}, expression)
}

func TestEscapingIsAnInvolution(t *testing.T) {
	for _, s := range []string{"", `plain`, `say "hi"`, `\`, `\"`, `"\`, `\\"`, `a\nb`, `""\\\\`} {
		assert.Equal(t, s, unquote(quote(s)), s)
	}
	assert.Equal(t, `"a\\b\"c"`, quote(`a\b"c`))
}

func TestLiteralEscapesRoundTrip(t *testing.T) {
	literal, err := ParseLiteral(`"say \"hi\" \\ bye"`, nil)
	require.NoError(t, err)
	assert.Equal(t, owl.SimpleLiteral{Literal: `say "hi" \ bye`}, literal)
	rendered, err := Format(literal)
	require.NoError(t, err)
	assert.Equal(t, `"say \"hi\" \\ bye"`, rendered)
}

func TestLiterals(t *testing.T) {
	ctx := exampleContext(t)
	tests := []struct {
		input    string
		expected owl.Literal
	}{
		{`"plain"`, owl.SimpleLiteral{Literal: "plain"}},
		{`"chat"@fr`, owl.LanguageLiteral{Literal: "chat", Lang: "fr"}},
		{`"1"^^xsd:integer`, owl.DatatypeLiteral{Literal: "1", Datatype: owl.XSDInteger}},
	}
	for _, test := range tests {
		literal, err := ParseLiteral(test.input, ctx)
		require.NoError(t, err, test.input)
		assert.Equal(t, test.expected, literal, test.input)

		rendered, err := FormatContext(literal, ctx)
		require.NoError(t, err)
		assert.Equal(t, test.input, rendered)
	}
}

func TestCurieResolution(t *testing.T) {
	ctx := exampleContext(t)
	iri, err := ParseIRI("ex:Thing", ctx)
	require.NoError(t, err)
	assert.Equal(t, owl.IRI("http://example.com/Thing"), iri)

	_, err = ParseIRI("nope:Thing", ctx)
	require.Error(t, err)
	assert.Equal(t, KindExpansion, KindOf(err))
	var ferr *Error
	require.True(t, errors.As(err, &ferr))
	assert.Equal(t, "nope:Thing", ferr.Value)
	var expansion *curie.ExpansionError
	assert.True(t, errors.As(err, &expansion))

	_, err = ParseIRI("ex:Thing", nil)
	assert.Equal(t, KindExpansion, KindOf(err))

	withoutDefault := NewContext(nil, curie.NewPrefixMapping())
	_, err = ParseIRI(":Thing", withoutDefault)
	assert.Equal(t, KindExpansion, KindOf(err))
}

func TestInvalidFacet(t *testing.T) {
	_, err := ParseFacet("<http://example.com/thing>", nil)
	require.Error(t, err)
	assert.Equal(t, KindInvalidFacet, KindOf(err))
	var ferr *Error
	require.True(t, errors.As(err, &ferr))
	assert.Equal(t, "http://example.com/thing", ferr.Value)

	facet, err := ParseFacet("<http://www.w3.org/2001/XMLSchema#minLength>", nil)
	require.NoError(t, err)
	assert.Equal(t, owl.FacetMinLength, facet)

	_, err = ParseDataRange(`DatatypeRestriction(xsd:integer ex:thing "1")`, exampleContext(t))
	assert.Equal(t, KindInvalidFacet, KindOf(err))
}

func TestUnsupportedDataQuantifier(t *testing.T) {
	_, err := ParseClassExpression(`DataSomeValuesFrom(:p :q DataOneOf("a" "b"))`, exampleContext(t))
	require.Error(t, err)
	assert.Equal(t, KindUnsupported, KindOf(err))
	var ferr *Error
	require.True(t, errors.As(err, &ferr))
	assert.Equal(t, referenceDataRestrictions, ferr.Reference)
	assert.Contains(t, ferr.Construct, common.NameDataSomeValuesFrom)
}

func TestGrammarError(t *testing.T) {
	_, err := ParseClassExpression("ObjectIntersectionOf(:A)", exampleContext(t))
	require.Error(t, err)
	assert.Equal(t, KindGrammar, KindOf(err))
	var perr *parser.Error
	assert.True(t, errors.As(err, &perr))
}

func TestRuleMismatch(t *testing.T) {
	_, err := fromClassExpression(&common.Node{Name: common.NameLiteral}, nil)
	assert.True(t, errors.Is(err, ErrRuleMismatch))

	extra := &common.Node{Name: common.NameFacetRestriction, Children: []*common.Node{
		{Name: common.NameLiteral},
	}}
	_, err = fromFacetRestriction(extra, nil)
	assert.True(t, errors.Is(err, ErrRuleMismatch))
}

func TestRoundTripFragments(t *testing.T) {
	ctx := exampleContext(t)
	tests := []string{
		`SubClassOf(Annotation(Annotation(:source "x") rdfs:comment "c") :A :B)`,
		`EquivalentClasses(Annotation(rdfs:label "same") :A ObjectIntersectionOf(:B ObjectComplementOf(:C)))`,
		`DisjointUnion(:A :B :C)`,
		`SubObjectPropertyOf(ObjectPropertyChain(:p ObjectInverseOf(:q)) :r)`,
		`HasKey(:Person (:hasParent) ())`,
		`HasKey(:Person () (:hasSSN :hasName))`,
		`AnnotationAssertion(rdfs:comment _:b1 _:b2)`,
		`AnnotationAssertion(rdfs:label :A "A"@en)`,
		`DataPropertyRange(:hasAge DatatypeRestriction(xsd:integer xsd:minInclusive "0"^^xsd:integer xsd:maxExclusive "150"^^xsd:integer))`,
		`DatatypeDefinition(:Small DataUnionOf(DataOneOf("a" "b") DataComplementOf(xsd:string)))`,
		`ClassAssertion(ObjectSomeValuesFrom(:knows ObjectOneOf(:alice _:x)) :bob)`,
		`NegativeDataPropertyAssertion(:hasAge :bob "7"^^xsd:integer)`,
		`SubClassOf(:A DataExactCardinality(1 :hasAge xsd:integer))`,
		`SubClassOf(:A DataAllValuesFrom(:hasAge DataIntersectionOf(xsd:integer xsd:string)))`,
		`SubClassOf(:A ObjectHasSelf(:likes))`,
		`SubClassOf(:A DataHasValue(:hasAge "3"))`,
		`AnnotationPropertyRange(rdfs:comment xsd:string)`,
		`Declaration(Datatype(:Age))`,
		`Declaration(ObjectProperty(:knows))`,
		`Declaration(DataProperty(:hasAge))`,
		`Declaration(AnnotationProperty(:source))`,
		`Declaration(NamedIndividual(:bob))`,
		`EquivalentObjectProperties(:knows :isAcquaintedWith)`,
		`DisjointObjectProperties(:likes :dislikes ObjectInverseOf(:ignores))`,
		`InverseObjectProperties(:hasParent :hasChild)`,
		`ObjectPropertyDomain(:hasParent :Person)`,
		`ObjectPropertyRange(:hasPet ObjectAllValuesFrom(:eats :Food))`,
		`FunctionalObjectProperty(:hasMother)`,
		`InverseFunctionalObjectProperty(ObjectInverseOf(:hasMother))`,
		`ReflexiveObjectProperty(:knows)`,
		`IrreflexiveObjectProperty(:hasParent)`,
		`SymmetricObjectProperty(:marriedTo)`,
		`AsymmetricObjectProperty(:hasParent)`,
		`TransitiveObjectProperty(:ancestorOf)`,
		`SubDataPropertyOf(:hasFirstName :hasName)`,
		`EquivalentDataProperties(:hasName :name)`,
		`DisjointDataProperties(:hasAge :hasName :hasWeight)`,
		`DataPropertyDomain(:hasAge :Person)`,
		`FunctionalDataProperty(:hasAge)`,
		`SameIndividual(:bob :robert _:b1)`,
		`DifferentIndividuals(:alice :bob)`,
		`ObjectPropertyAssertion(:knows :alice :bob)`,
		`NegativeObjectPropertyAssertion(ObjectInverseOf(:knows) :alice _:b1)`,
		`SubAnnotationPropertyOf(:source rdfs:comment)`,
		`AnnotationPropertyDomain(:source :Document)`,
		`SubClassOf(:Fan ObjectHasValue(:likes :bob))`,
		`SubClassOf(:Vegan ObjectAllValuesFrom(:eats owl:Thing))`,
	}
	for _, text := range tests {
		axiom, err := ParseAnnotatedAxiom(text, ctx)
		require.NoError(t, err, text)
		rendered, err := FormatContext(axiom, ctx)
		require.NoError(t, err, text)
		assert.Equal(t, text, rendered)

		again, err := ParseAnnotatedAxiom(rendered, ctx)
		require.NoError(t, err)
		assert.Equal(t, owl.Key(axiom), owl.Key(again))
	}
}

func TestMetaAnnotationsRetained(t *testing.T) {
	axiom, err := ParseAnnotatedAxiom(`SubClassOf(Annotation(Annotation(:source "x") rdfs:comment "c") :A :B)`, exampleContext(t))
	require.NoError(t, err)
	require.Len(t, axiom.Annotations, 1)
	require.Len(t, axiom.Annotations[0].Annotations, 1)
	assert.Equal(t, owl.SimpleLiteral{Literal: "x"}, axiom.Annotations[0].Annotations[0].Value)
}

func TestParseAxiomDropsAnnotations(t *testing.T) {
	axiom, err := ParseAxiom(`SubClassOf(Annotation(rdfs:comment "c") :A :B)`, exampleContext(t))
	require.NoError(t, err)
	assert.Equal(t, owl.SubClassOf{
		Sub:   owl.Class{IRI: "http://example.com/A"},
		Super: owl.Class{IRI: "http://example.com/B"},
	}, axiom)
}

func TestIsolatedRenderingUsesFullIRIs(t *testing.T) {
	ctx := exampleContext(t)
	expression, err := ParseClassExpression("ObjectUnionOf(:A ex:B)", ctx)
	require.NoError(t, err)
	rendered, err := Format(expression)
	require.NoError(t, err)
	assert.Equal(t, "ObjectUnionOf(<http://example.com/A> <http://example.com/B>)", rendered)

	rendered, err = FormatContext(owl.Class{IRI: "http://elsewhere.org/x#y"}, ctx)
	require.NoError(t, err)
	assert.Equal(t, "<http://elsewhere.org/x#y>", rendered)
}

const sampleDocument = `Prefix(:=<http://example.com/>)
Prefix(rdfs:=<http://www.w3.org/2000/01/rdf-schema#>)
Prefix(xsd:=<http://www.w3.org/2001/XMLSchema#>)
# a small ontology
Ontology(<http://example.com/o> <http://example.com/o/1>
  Import(<http://example.com/other>)
  Annotation(rdfs:label "An ontology"@en)
  SubClassOf(:B :A)
  Declaration(Class(:A))
  Declaration(Class(:A))
  DataPropertyAssertion(:hasAge :bob "42"^^xsd:integer)
)
`

func TestParseDocument(t *testing.T) {
	ontology, prefixes, err := ParseDocument(sampleDocument, exampleContext(t))
	require.NoError(t, err)
	require.NotNil(t, ontology.ID.IRI)
	assert.Equal(t, owl.IRI("http://example.com/o"), *ontology.ID.IRI)
	require.NotNil(t, ontology.ID.VersionIRI)
	assert.Equal(t, owl.IRI("http://example.com/o/1"), *ontology.ID.VersionIRI)
	assert.Equal(t, 3, prefixes.Len())
	assert.Equal(t, []owl.Import{{IRI: "http://example.com/other"}}, ontology.Imports())
	assert.Len(t, ontology.OntologyAnnotations(), 1)
	assert.Equal(t, 5, ontology.Len())
}

func TestDocumentIgnoresCallerPrefixes(t *testing.T) {
	_, _, err := ParseDocument("Ontology(ex:o)", exampleContext(t))
	assert.Equal(t, KindExpansion, KindOf(err))
}

func TestRenderDocument(t *testing.T) {
	ontology, prefixes, err := ParseDocument(sampleDocument, nil)
	require.NoError(t, err)
	var b strings.Builder
	require.NoError(t, RenderDocument(&b, ontology, prefixes))
	expected := `Prefix(:=<http://example.com/>)
Prefix(rdfs:=<http://www.w3.org/2000/01/rdf-schema#>)
Prefix(xsd:=<http://www.w3.org/2001/XMLSchema#>)
Ontology(:o <http://example.com/o/1>
Import(:other)
Annotation(rdfs:label "An ontology"@en)
Declaration(Class(:A))
SubClassOf(:B :A)
DataPropertyAssertion(:hasAge :bob "42"^^xsd:integer)
)`
	assert.Equal(t, expected, b.String())

	again, _, err := ParseDocument(b.String(), nil)
	require.NoError(t, err)
	assert.True(t, ontology.Equal(again))
}

func TestRenderDocumentWithoutPrefixes(t *testing.T) {
	ontology, _, err := ParseDocument(sampleDocument, nil)
	require.NoError(t, err)
	var b strings.Builder
	require.NoError(t, RenderDocument(&b, ontology, nil))
	assert.True(t, strings.HasPrefix(b.String(), "Ontology(<http://example.com/o> <http://example.com/o/1>\n"))

	again, _, err := ParseDocument(b.String(), nil)
	require.NoError(t, err)
	assert.True(t, ontology.Equal(again))
}

func TestParseOntologyUsesContextPrefixes(t *testing.T) {
	ontology, err := ParseOntology("Ontology(:o SubClassOf(:A :B))", exampleContext(t))
	require.NoError(t, err)
	assert.Equal(t, 1, ontology.Len())
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "small.ofn")
	require.NoError(t, os.WriteFile(path, []byte(sampleDocument), 0o644))
	ontology, _, err := ParseFile(path, nil)
	require.NoError(t, err)
	assert.Equal(t, 5, ontology.Len())

	_, _, err = ParseFile(filepath.Join(t.TempDir(), "missing.ofn"), nil)
	assert.Equal(t, KindIO, KindOf(err))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestParseReader(t *testing.T) {
	ontology, _, err := ParseReader(strings.NewReader(sampleDocument), nil)
	require.NoError(t, err)
	assert.Equal(t, 5, ontology.Len())
}

func TestInterning(t *testing.T) {
	ctx := exampleContext(t)
	_, err := ParseAxiom("SubClassOf(:A ObjectSomeValuesFrom(:p :A))", ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, ctx.Build.Len())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestRenderErrors(t *testing.T) {
	_, err := Format(42)
	assert.Equal(t, KindUnsupported, KindOf(err))

	err = NewRenderer(failingWriter{}, nil).Render(owl.Class{IRI: "http://example.com/A"})
	assert.Equal(t, KindIO, KindOf(err))

	_, err = Format(owl.AnnotatedAxiom{
		Axiom:       owl.Import{IRI: "http://example.com/other"},
		Annotations: []owl.Annotation{{Property: owl.AnnotationProperty{IRI: "http://example.com/p"}, Value: owl.SimpleLiteral{Literal: "x"}}},
	})
	assert.Equal(t, KindUnsupported, KindOf(err))
}

func TestParseTree(t *testing.T) {
	root, err := ParseTree(common.NameClassExpression, "ObjectUnionOf(:A :B)")
	require.NoError(t, err)
	assert.Equal(t, common.NameObjectUnionOf, root.Child(0).Name)

	_, err = ParseTree(common.NameIRI, ":A :B")
	assert.True(t, errors.Is(err, ErrRemainingInput))
}

func TestParseNamedEntities(t *testing.T) {
	ctx := exampleContext(t)
	class, err := ParseClass(":Person", ctx)
	require.NoError(t, err)
	assert.Equal(t, owl.Class{IRI: "http://example.com/Person"}, class)

	datatype, err := ParseDatatype("xsd:integer", ctx)
	require.NoError(t, err)
	assert.Equal(t, owl.Datatype{IRI: owl.XSDInteger}, datatype)

	objectProperty, err := ParseObjectProperty(":knows", ctx)
	require.NoError(t, err)
	assert.Equal(t, owl.ObjectProperty{IRI: "http://example.com/knows"}, objectProperty)

	dataProperty, err := ParseDataProperty(":hasAge", ctx)
	require.NoError(t, err)
	assert.Equal(t, owl.DataProperty{IRI: "http://example.com/hasAge"}, dataProperty)

	annotationProperty, err := ParseAnnotationProperty("rdfs:label", ctx)
	require.NoError(t, err)
	assert.Equal(t, owl.AnnotationProperty{IRI: owl.NamespaceRDFS + "label"}, annotationProperty)

	individual, err := ParseNamedIndividual("<http://example.com/bob>", nil)
	require.NoError(t, err)
	assert.Equal(t, owl.NamedIndividual{IRI: "http://example.com/bob"}, individual)

	anonymous, err := ParseAnonymousIndividual("_:b1", nil)
	require.NoError(t, err)
	assert.Equal(t, owl.AnonymousIndividual{ID: "_:b1"}, anonymous)
}

func TestParseAnnotationParts(t *testing.T) {
	ctx := exampleContext(t)
	subject, err := ParseAnnotationSubject(":A", ctx)
	require.NoError(t, err)
	assert.Equal(t, owl.IRI("http://example.com/A"), subject)

	subject, err = ParseAnnotationSubject("_:x", ctx)
	require.NoError(t, err)
	assert.Equal(t, owl.AnonymousIndividual{ID: "_:x"}, subject)

	value, err := ParseAnnotationValue(`"hello"@en`, ctx)
	require.NoError(t, err)
	assert.Equal(t, owl.LanguageLiteral{Literal: "hello", Lang: "en"}, value)

	annotation, err := ParseOntologyAnnotation(`Annotation(rdfs:label "o")`, ctx)
	require.NoError(t, err)
	assert.Equal(t, owl.KindOntologyAnnotation, annotation.Kind())
	assert.Equal(t, owl.SimpleLiteral{Literal: "o"}, annotation.Annotation.Value)
}

func TestParseAnnotationsIsASet(t *testing.T) {
	label := func(text string) owl.Annotation {
		return owl.Annotation{
			Property: owl.AnnotationProperty{IRI: owl.NamespaceRDFS + "label"},
			Value:    owl.SimpleLiteral{Literal: text},
		}
	}
	annotations, err := ParseAnnotations(
		`Annotation(rdfs:label "b") Annotation(rdfs:label "a") Annotation(rdfs:label "b")`,
		exampleContext(t))
	require.NoError(t, err)
	assert.Equal(t, []owl.Annotation{label("a"), label("b")}, annotations)
}

func TestFragmentsRejectTrailingInput(t *testing.T) {
	ctx := exampleContext(t)
	tests := []struct {
		name  string
		parse func(string) error
		text  string
	}{
		{"class", func(s string) error { _, err := ParseClass(s, ctx); return err }, ":A :B"},
		{"datatype", func(s string) error { _, err := ParseDatatype(s, ctx); return err }, "xsd:string xsd:integer"},
		{"object property", func(s string) error { _, err := ParseObjectProperty(s, ctx); return err }, ":p :q"},
		{"data property", func(s string) error { _, err := ParseDataProperty(s, ctx); return err }, ":d :e"},
		{"annotation property", func(s string) error { _, err := ParseAnnotationProperty(s, ctx); return err }, "rdfs:label rdfs:comment"},
		{"named individual", func(s string) error { _, err := ParseNamedIndividual(s, ctx); return err }, ":a :b"},
		{"anonymous individual", func(s string) error { _, err := ParseAnonymousIndividual(s, ctx); return err }, "_:a _:b"},
		{"annotation subject", func(s string) error { _, err := ParseAnnotationSubject(s, ctx); return err }, ":s :t"},
		{"annotation value", func(s string) error { _, err := ParseAnnotationValue(s, ctx); return err }, `"x" "y"`},
		{"annotations", func(s string) error { _, err := ParseAnnotations(s, ctx); return err }, `Annotation(rdfs:label "x") :extra`},
		{"ontology annotation", func(s string) error { _, err := ParseOntologyAnnotation(s, ctx); return err }, `Annotation(rdfs:label "x") :extra`},
	}
	for _, test := range tests {
		err := test.parse(test.text)
		assert.True(t, errors.Is(err, ErrRemainingInput), test.name)
	}
}

func TestPointerAxiomsRenderAsValues(t *testing.T) {
	sub := owl.SubClassOf{Sub: owl.Class{IRI: "http://example.com/A"}, Super: owl.Class{IRI: "http://example.com/B"}}
	byValue, err := Format(sub)
	require.NoError(t, err)
	byPointer, err := Format(&sub)
	require.NoError(t, err)
	assert.Equal(t, byValue, byPointer)

	annotated, err := Format(owl.AnnotatedAxiom{Axiom: &sub})
	require.NoError(t, err)
	assert.Equal(t, byValue, annotated)
}

func TestErrorKindNames(t *testing.T) {
	assert.Equal(t, "unknown error", KindUnknown.String())
	assert.Equal(t, "grammar error", KindGrammar.String())
	assert.Equal(t, "I/O error", KindIO.String())
	assert.Equal(t, "expansion error", KindExpansion.String())
	assert.Equal(t, "invalid facet", KindInvalidFacet.String())
	assert.Equal(t, "unsupported construct", KindUnsupported.String())
}
