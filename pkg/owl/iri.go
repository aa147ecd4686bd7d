// Package owl holds the typed model of an OWL 2 ontology: entities, class
// expressions, data ranges, literals, annotations and axioms.
package owl

import "sync"

// IRI is an absolute identifier. Once resolved from a compact form it is
// indistinguishable from one written in full.
type IRI string

func (i IRI) String() string {
	return string(i)
}

// Well known namespaces.
const (
	NamespaceOWL  = "http://www.w3.org/2002/07/owl#"
	NamespaceRDF  = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	NamespaceRDFS = "http://www.w3.org/2000/01/rdf-schema#"
	NamespaceXSD  = "http://www.w3.org/2001/XMLSchema#"
)

const (
	// OWLThing is the class of all individuals.
	OWLThing IRI = NamespaceOWL + "Thing"
	// RDFSLiteral is the datatype of all literals.
	RDFSLiteral IRI = NamespaceRDFS + "Literal"
	// RDFLangRange is the facet used to restrict language tags.
	RDFLangRange IRI = NamespaceRDF + "langRange"
	XSDInteger   IRI = NamespaceXSD + "integer"
)

// Build interns IRIs so that equal identifiers share storage. It is safe for
// concurrent use. A nil *Build returns IRIs without interning.
type Build struct {
	mu   sync.Mutex
	iris map[string]IRI
}

func NewBuild() *Build {
	return &Build{iris: map[string]IRI{}}
}

func (b *Build) IRI(s string) IRI {
	if b == nil {
		return IRI(s)
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if iri, ok := b.iris[s]; ok {
		return iri
	}
	if b.iris == nil {
		b.iris = map[string]IRI{}
	}
	iri := IRI(s)
	b.iris[s] = iri
	return iri
}

// Len is the number of distinct IRIs interned so far.
func (b *Build) Len() int {
	if b == nil {
		return 0
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.iris)
}

func (b *Build) Class(s string) Class {
	return Class{IRI: b.IRI(s)}
}

func (b *Build) Datatype(s string) Datatype {
	return Datatype{IRI: b.IRI(s)}
}

func (b *Build) ObjectProperty(s string) ObjectProperty {
	return ObjectProperty{IRI: b.IRI(s)}
}

func (b *Build) DataProperty(s string) DataProperty {
	return DataProperty{IRI: b.IRI(s)}
}

func (b *Build) AnnotationProperty(s string) AnnotationProperty {
	return AnnotationProperty{IRI: b.IRI(s)}
}

func (b *Build) NamedIndividual(s string) NamedIndividual {
	return NamedIndividual{IRI: b.IRI(s)}
}
