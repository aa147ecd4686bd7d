package owl

import "sort"

// OntologyID names an ontology. Either IRI may be absent.
type OntologyID struct {
	IRI        *IRI
	VersionIRI *IRI
}

func (id OntologyID) Equal(other OntologyID) bool {
	return equalIRIPtr(id.IRI, other.IRI) && equalIRIPtr(id.VersionIRI, other.VersionIRI)
}

func equalIRIPtr(a, b *IRI) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// Ontology is an unordered set of annotated axioms plus an identity.
// Imports and ontology annotations are stored as axioms.
type Ontology struct {
	ID     OntologyID
	axioms map[string]AnnotatedAxiom
}

func NewOntology() *Ontology {
	return &Ontology{axioms: map[string]AnnotatedAxiom{}}
}

// Insert adds an annotated axiom and reports whether it was new.
func (o *Ontology) Insert(axiom AnnotatedAxiom) bool {
	if o.axioms == nil {
		o.axioms = map[string]AnnotatedAxiom{}
	}
	axiom = Normalize(axiom)
	key := Key(axiom)
	if _, ok := o.axioms[key]; ok {
		return false
	}
	o.axioms[key] = axiom
	return true
}

// InsertAxiom adds an axiom with the given annotations.
func (o *Ontology) InsertAxiom(axiom Axiom, annotations ...Annotation) bool {
	return o.Insert(AnnotatedAxiom{Axiom: axiom, Annotations: annotations})
}

func (o *Ontology) Contains(axiom AnnotatedAxiom) bool {
	_, ok := o.axioms[Key(Normalize(axiom))]
	return ok
}

func (o *Ontology) Remove(axiom AnnotatedAxiom) bool {
	key := Key(Normalize(axiom))
	if _, ok := o.axioms[key]; !ok {
		return false
	}
	delete(o.axioms, key)
	return true
}

func (o *Ontology) Len() int {
	return len(o.axioms)
}

// Axioms returns every axiom ordered by kind and then structurally.
func (o *Ontology) Axioms() []AnnotatedAxiom {
	keys := make([]string, 0, len(o.axioms))
	for key := range o.axioms {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		ki, kj := o.axioms[keys[i]].Kind(), o.axioms[keys[j]].Kind()
		if ki != kj {
			return ki < kj
		}
		return keys[i] < keys[j]
	})
	result := make([]AnnotatedAxiom, 0, len(keys))
	for _, key := range keys {
		result = append(result, o.axioms[key])
	}
	return result
}

// AxiomsOfKind returns the axioms of one kind in structural order.
func (o *Ontology) AxiomsOfKind(kind AxiomKind) []AnnotatedAxiom {
	var result []AnnotatedAxiom
	for _, axiom := range o.Axioms() {
		if axiom.Kind() == kind {
			result = append(result, axiom)
		}
	}
	return result
}

func (o *Ontology) Imports() []Import {
	var imports []Import
	for _, axiom := range o.AxiomsOfKind(KindImport) {
		imports = append(imports, axiom.Axiom.(Import))
	}
	return imports
}

func (o *Ontology) OntologyAnnotations() []Annotation {
	var annotations []Annotation
	for _, axiom := range o.AxiomsOfKind(KindOntologyAnnotation) {
		annotations = append(annotations, axiom.Axiom.(OntologyAnnotation).Annotation)
	}
	return annotations
}

// KindCounts tallies the axioms by kind.
func (o *Ontology) KindCounts() map[AxiomKind]int {
	counts := map[AxiomKind]int{}
	for _, axiom := range o.axioms {
		counts[axiom.Kind()]++
	}
	return counts
}

// Equal compares identity and axiom sets structurally.
func (o *Ontology) Equal(other *Ontology) bool {
	if o == nil || other == nil {
		return o == other
	}
	if !o.ID.Equal(other.ID) || len(o.axioms) != len(other.axioms) {
		return false
	}
	for key := range o.axioms {
		if _, ok := other.axioms[key]; !ok {
			return false
		}
	}
	return true
}

// Normalize puts an annotated axiom into the form used for set membership:
// pointers replaced by values, annotation sets sorted and de-duplicated,
// empty lists nil.
func Normalize(axiom AnnotatedAxiom) AnnotatedAxiom {
	axiom.Axiom = AxiomValue(axiom.Axiom)
	axiom.Annotations = NormalizeAnnotations(axiom.Annotations)
	switch a := axiom.Axiom.(type) {
	case OntologyAnnotation:
		a.Annotation.Annotations = NormalizeAnnotations(a.Annotation.Annotations)
		axiom.Axiom = a
	case HasKey:
		if len(a.ObjectProperties) == 0 {
			a.ObjectProperties = nil
		}
		if len(a.DataProperties) == 0 {
			a.DataProperties = nil
		}
		axiom.Axiom = a
	}
	return axiom
}
