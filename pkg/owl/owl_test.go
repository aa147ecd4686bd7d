package owl

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildInterns(t *testing.T) {
	b := NewBuild()
	a1 := b.IRI("http://example.com/a")
	a2 := b.IRI("http://example.com/a")
	assert.Equal(t, a1, a2)
	assert.Equal(t, 1, b.Len())
	assert.Equal(t, Class{IRI: "http://example.com/a"}, b.Class("http://example.com/a"))
}

func TestNilBuild(t *testing.T) {
	var b *Build
	assert.Equal(t, IRI("x"), b.IRI("x"))
	assert.Equal(t, 0, b.Len())
}

func TestBuildConcurrent(t *testing.T) {
	b := NewBuild()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				b.IRI("http://example.com/shared")
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, b.Len())
}

func TestFacets(t *testing.T) {
	assert.Len(t, Facets(), 11)
	for _, facet := range Facets() {
		found, ok := FacetFromIRI(facet.IRI())
		require.True(t, ok, facet.String())
		assert.Equal(t, facet, found)
	}
	facet, ok := FacetFromIRI(NamespaceXSD + "minLength")
	assert.True(t, ok)
	assert.Equal(t, FacetMinLength, facet)
	_, ok = FacetFromIRI("http://example.com/thing")
	assert.False(t, ok)
}

func TestAxiomKindNames(t *testing.T) {
	for _, kind := range AxiomKinds() {
		found, ok := AxiomKindFromString(kind.String())
		require.True(t, ok)
		assert.Equal(t, kind, found)
	}
	assert.Equal(t, "SubClassOf", SubClassOf{}.Kind().String())
	assert.Equal(t, "Unknown", AxiomKind(-1).String())
}

func label(text string) Annotation {
	return Annotation{
		Property: AnnotationProperty{IRI: NamespaceRDFS + "label"},
		Value:    SimpleLiteral{Literal: text},
	}
}

func TestOntologySetSemantics(t *testing.T) {
	o := NewOntology()
	sub := SubClassOf{Sub: Class{IRI: "http://a"}, Super: Class{IRI: "http://b"}}
	assert.True(t, o.InsertAxiom(sub, label("x"), label("y")))
	assert.False(t, o.InsertAxiom(sub, label("y"), label("x"), label("x")))
	assert.True(t, o.InsertAxiom(sub))
	assert.Equal(t, 2, o.Len())
	assert.True(t, o.Contains(AnnotatedAxiom{Axiom: sub, Annotations: []Annotation{}}))

	assert.True(t, o.Remove(AnnotatedAxiom{Axiom: sub}))
	assert.False(t, o.Remove(AnnotatedAxiom{Axiom: sub}))
	assert.Equal(t, 1, o.Len())
}

func TestOntologyOrdering(t *testing.T) {
	o := NewOntology()
	o.InsertAxiom(Declaration{Entity: Class{IRI: "http://b"}})
	o.InsertAxiom(OntologyAnnotation{Annotation: label("o")})
	o.InsertAxiom(Declaration{Entity: Class{IRI: "http://a"}})
	o.InsertAxiom(Import{IRI: "http://other"})

	axioms := o.Axioms()
	require.Len(t, axioms, 4)
	assert.Equal(t, KindImport, axioms[0].Kind())
	assert.Equal(t, KindOntologyAnnotation, axioms[1].Kind())
	assert.Equal(t, Declaration{Entity: Class{IRI: "http://a"}}, axioms[2].Axiom)
	assert.Equal(t, Declaration{Entity: Class{IRI: "http://b"}}, axioms[3].Axiom)

	assert.Equal(t, []Import{{IRI: "http://other"}}, o.Imports())
	assert.Equal(t, []Annotation{label("o")}, o.OntologyAnnotations())
	assert.Equal(t, 2, o.KindCounts()[KindDeclaration])
}

func TestDeclarationsOfDifferentKindsAreDistinct(t *testing.T) {
	o := NewOntology()
	o.InsertAxiom(Declaration{Entity: Class{IRI: "http://a"}})
	o.InsertAxiom(Declaration{Entity: Datatype{IRI: "http://a"}})
	assert.Equal(t, 2, o.Len())
}

func TestOntologyEqual(t *testing.T) {
	iri := IRI("http://example.com/o")
	a := NewOntology()
	b := NewOntology()
	a.InsertAxiom(Declaration{Entity: Class{IRI: "http://a"}}, label("1"), label("2"))
	b.InsertAxiom(Declaration{Entity: Class{IRI: "http://a"}}, label("2"), label("1"))
	assert.True(t, a.Equal(b))

	a.ID.IRI = &iri
	assert.False(t, a.Equal(b))
	other := iri
	b.ID.IRI = &other
	assert.True(t, a.Equal(b))
}

func TestNormalizeAnnotationsRecurses(t *testing.T) {
	outer := label("outer")
	outer.Annotations = []Annotation{label("b"), label("a"), label("b")}
	normalized := NormalizeAnnotations([]Annotation{outer})
	require.Len(t, normalized, 1)
	assert.Equal(t, []Annotation{label("a"), label("b")}, normalized[0].Annotations)
	assert.Nil(t, NormalizeAnnotations([]Annotation{}))
}

func TestNormalizeHasKey(t *testing.T) {
	withEmpty := AnnotatedAxiom{Axiom: HasKey{
		Class:            Class{IRI: "http://a"},
		ObjectProperties: []ObjectPropertyExpression{},
		DataProperties:   []DataProperty{},
	}}
	withNil := AnnotatedAxiom{Axiom: HasKey{Class: Class{IRI: "http://a"}}}
	assert.Equal(t, Key(Normalize(withNil)), Key(Normalize(withEmpty)))
}

func TestAnnotatedAxiomIsNotAnAxiom(t *testing.T) {
	_, ok := any(AnnotatedAxiom{Axiom: Import{IRI: "http://other"}}).(Axiom)
	assert.False(t, ok)
}

func TestPointerAxiomsStoredAsValues(t *testing.T) {
	o := NewOntology()
	sub := SubClassOf{Sub: Class{IRI: "http://a"}, Super: Class{IRI: "http://b"}}
	assert.True(t, o.InsertAxiom(&sub))
	assert.False(t, o.InsertAxiom(sub))
	assert.Equal(t, sub, o.Axioms()[0].Axiom)
	assert.Equal(t, sub, AxiomValue(&sub))
	assert.Equal(t, sub, AxiomValue(sub))
}
