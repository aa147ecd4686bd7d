package owl

import "reflect"

// AxiomKind identifies the shape of an axiom. The order of the constants is
// the order in which axioms are listed.
type AxiomKind int

const (
	KindImport AxiomKind = iota
	KindOntologyAnnotation
	KindDeclaration
	KindSubClassOf
	KindEquivalentClasses
	KindDisjointClasses
	KindDisjointUnion
	KindSubObjectPropertyOf
	KindEquivalentObjectProperties
	KindDisjointObjectProperties
	KindInverseObjectProperties
	KindObjectPropertyDomain
	KindObjectPropertyRange
	KindFunctionalObjectProperty
	KindInverseFunctionalObjectProperty
	KindReflexiveObjectProperty
	KindIrreflexiveObjectProperty
	KindSymmetricObjectProperty
	KindAsymmetricObjectProperty
	KindTransitiveObjectProperty
	KindSubDataPropertyOf
	KindEquivalentDataProperties
	KindDisjointDataProperties
	KindDataPropertyDomain
	KindDataPropertyRange
	KindFunctionalDataProperty
	KindDatatypeDefinition
	KindHasKey
	KindSameIndividual
	KindDifferentIndividuals
	KindClassAssertion
	KindObjectPropertyAssertion
	KindNegativeObjectPropertyAssertion
	KindDataPropertyAssertion
	KindNegativeDataPropertyAssertion
	KindAnnotationAssertion
	KindSubAnnotationPropertyOf
	KindAnnotationPropertyDomain
	KindAnnotationPropertyRange
)

var axiomKindNames = [...]string{
	KindImport:                          "Import",
	KindOntologyAnnotation:              "OntologyAnnotation",
	KindDeclaration:                     "Declaration",
	KindSubClassOf:                      "SubClassOf",
	KindEquivalentClasses:               "EquivalentClasses",
	KindDisjointClasses:                 "DisjointClasses",
	KindDisjointUnion:                   "DisjointUnion",
	KindSubObjectPropertyOf:             "SubObjectPropertyOf",
	KindEquivalentObjectProperties:      "EquivalentObjectProperties",
	KindDisjointObjectProperties:        "DisjointObjectProperties",
	KindInverseObjectProperties:         "InverseObjectProperties",
	KindObjectPropertyDomain:            "ObjectPropertyDomain",
	KindObjectPropertyRange:             "ObjectPropertyRange",
	KindFunctionalObjectProperty:        "FunctionalObjectProperty",
	KindInverseFunctionalObjectProperty: "InverseFunctionalObjectProperty",
	KindReflexiveObjectProperty:         "ReflexiveObjectProperty",
	KindIrreflexiveObjectProperty:       "IrreflexiveObjectProperty",
	KindSymmetricObjectProperty:         "SymmetricObjectProperty",
	KindAsymmetricObjectProperty:        "AsymmetricObjectProperty",
	KindTransitiveObjectProperty:        "TransitiveObjectProperty",
	KindSubDataPropertyOf:               "SubDataPropertyOf",
	KindEquivalentDataProperties:        "EquivalentDataProperties",
	KindDisjointDataProperties:          "DisjointDataProperties",
	KindDataPropertyDomain:              "DataPropertyDomain",
	KindDataPropertyRange:               "DataPropertyRange",
	KindFunctionalDataProperty:          "FunctionalDataProperty",
	KindDatatypeDefinition:              "DatatypeDefinition",
	KindHasKey:                          "HasKey",
	KindSameIndividual:                  "SameIndividual",
	KindDifferentIndividuals:            "DifferentIndividuals",
	KindClassAssertion:                  "ClassAssertion",
	KindObjectPropertyAssertion:         "ObjectPropertyAssertion",
	KindNegativeObjectPropertyAssertion: "NegativeObjectPropertyAssertion",
	KindDataPropertyAssertion:           "DataPropertyAssertion",
	KindNegativeDataPropertyAssertion:   "NegativeDataPropertyAssertion",
	KindAnnotationAssertion:             "AnnotationAssertion",
	KindSubAnnotationPropertyOf:         "SubAnnotationPropertyOf",
	KindAnnotationPropertyDomain:        "AnnotationPropertyDomain",
	KindAnnotationPropertyRange:         "AnnotationPropertyRange",
}

func (k AxiomKind) String() string {
	if k < 0 || int(k) >= len(axiomKindNames) {
		return "Unknown"
	}
	return axiomKindNames[k]
}

// AxiomKinds lists every kind in order.
func AxiomKinds() []AxiomKind {
	kinds := make([]AxiomKind, len(axiomKindNames))
	for i := range axiomKindNames {
		kinds[i] = AxiomKind(i)
	}
	return kinds
}

// AxiomKindFromString is the inverse of AxiomKind.String.
func AxiomKindFromString(name string) (AxiomKind, bool) {
	for i, candidate := range axiomKindNames {
		if candidate == name {
			return AxiomKind(i), true
		}
	}
	return 0, false
}

// Axiom is a single statement of an ontology.
type Axiom interface {
	Kind() AxiomKind
	isAxiom()
}

// Import names another ontology document whose axioms are included.
type Import struct {
	IRI IRI
}

// OntologyAnnotation annotates the ontology itself.
type OntologyAnnotation struct {
	Annotation Annotation
}

type Declaration struct {
	Entity Entity
}

type SubClassOf struct {
	Sub   ClassExpression
	Super ClassExpression
}

type EquivalentClasses struct {
	Classes []ClassExpression
}

type DisjointClasses struct {
	Classes []ClassExpression
}

type DisjointUnion struct {
	Class   Class
	Classes []ClassExpression
}

type SubObjectPropertyOf struct {
	Sub   SubObjectPropertyExpression
	Super ObjectPropertyExpression
}

type EquivalentObjectProperties struct {
	Properties []ObjectPropertyExpression
}

type DisjointObjectProperties struct {
	Properties []ObjectPropertyExpression
}

type InverseObjectProperties struct {
	First  ObjectPropertyExpression
	Second ObjectPropertyExpression
}

type ObjectPropertyDomain struct {
	Property ObjectPropertyExpression
	Domain   ClassExpression
}

type ObjectPropertyRange struct {
	Property ObjectPropertyExpression
	Range    ClassExpression
}

type FunctionalObjectProperty struct {
	Property ObjectPropertyExpression
}

type InverseFunctionalObjectProperty struct {
	Property ObjectPropertyExpression
}

type ReflexiveObjectProperty struct {
	Property ObjectPropertyExpression
}

type IrreflexiveObjectProperty struct {
	Property ObjectPropertyExpression
}

type SymmetricObjectProperty struct {
	Property ObjectPropertyExpression
}

type AsymmetricObjectProperty struct {
	Property ObjectPropertyExpression
}

type TransitiveObjectProperty struct {
	Property ObjectPropertyExpression
}

type SubDataPropertyOf struct {
	Sub   DataProperty
	Super DataProperty
}

type EquivalentDataProperties struct {
	Properties []DataProperty
}

type DisjointDataProperties struct {
	Properties []DataProperty
}

type DataPropertyDomain struct {
	Property DataProperty
	Domain   ClassExpression
}

type DataPropertyRange struct {
	Property DataProperty
	Range    DataRange
}

type FunctionalDataProperty struct {
	Property DataProperty
}

type DatatypeDefinition struct {
	Datatype Datatype
	Range    DataRange
}

// HasKey keeps object and data properties apart, in the order they are written.
type HasKey struct {
	Class            ClassExpression
	ObjectProperties []ObjectPropertyExpression
	DataProperties   []DataProperty
}

type SameIndividual struct {
	Individuals []Individual
}

type DifferentIndividuals struct {
	Individuals []Individual
}

type ClassAssertion struct {
	Class      ClassExpression
	Individual Individual
}

type ObjectPropertyAssertion struct {
	Property ObjectPropertyExpression
	Subject  Individual
	Object   Individual
}

type NegativeObjectPropertyAssertion struct {
	Property ObjectPropertyExpression
	Subject  Individual
	Object   Individual
}

type DataPropertyAssertion struct {
	Property DataProperty
	Subject  Individual
	Value    Literal
}

type NegativeDataPropertyAssertion struct {
	Property DataProperty
	Subject  Individual
	Value    Literal
}

type AnnotationAssertion struct {
	Property AnnotationProperty
	Subject  AnnotationSubject
	Value    AnnotationValue
}

type SubAnnotationPropertyOf struct {
	Sub   AnnotationProperty
	Super AnnotationProperty
}

type AnnotationPropertyDomain struct {
	Property AnnotationProperty
	Domain   IRI
}

type AnnotationPropertyRange struct {
	Property AnnotationProperty
	Range    IRI
}

func (Import) Kind() AxiomKind                          { return KindImport }
func (OntologyAnnotation) Kind() AxiomKind              { return KindOntologyAnnotation }
func (Declaration) Kind() AxiomKind                     { return KindDeclaration }
func (SubClassOf) Kind() AxiomKind                      { return KindSubClassOf }
func (EquivalentClasses) Kind() AxiomKind               { return KindEquivalentClasses }
func (DisjointClasses) Kind() AxiomKind                 { return KindDisjointClasses }
func (DisjointUnion) Kind() AxiomKind                   { return KindDisjointUnion }
func (SubObjectPropertyOf) Kind() AxiomKind             { return KindSubObjectPropertyOf }
func (EquivalentObjectProperties) Kind() AxiomKind      { return KindEquivalentObjectProperties }
func (DisjointObjectProperties) Kind() AxiomKind        { return KindDisjointObjectProperties }
func (InverseObjectProperties) Kind() AxiomKind         { return KindInverseObjectProperties }
func (ObjectPropertyDomain) Kind() AxiomKind            { return KindObjectPropertyDomain }
func (ObjectPropertyRange) Kind() AxiomKind             { return KindObjectPropertyRange }
func (FunctionalObjectProperty) Kind() AxiomKind        { return KindFunctionalObjectProperty }
func (InverseFunctionalObjectProperty) Kind() AxiomKind { return KindInverseFunctionalObjectProperty }
func (ReflexiveObjectProperty) Kind() AxiomKind         { return KindReflexiveObjectProperty }
func (IrreflexiveObjectProperty) Kind() AxiomKind       { return KindIrreflexiveObjectProperty }
func (SymmetricObjectProperty) Kind() AxiomKind         { return KindSymmetricObjectProperty }
func (AsymmetricObjectProperty) Kind() AxiomKind        { return KindAsymmetricObjectProperty }
func (TransitiveObjectProperty) Kind() AxiomKind        { return KindTransitiveObjectProperty }
func (SubDataPropertyOf) Kind() AxiomKind               { return KindSubDataPropertyOf }
func (EquivalentDataProperties) Kind() AxiomKind        { return KindEquivalentDataProperties }
func (DisjointDataProperties) Kind() AxiomKind          { return KindDisjointDataProperties }
func (DataPropertyDomain) Kind() AxiomKind              { return KindDataPropertyDomain }
func (DataPropertyRange) Kind() AxiomKind               { return KindDataPropertyRange }
func (FunctionalDataProperty) Kind() AxiomKind          { return KindFunctionalDataProperty }
func (DatatypeDefinition) Kind() AxiomKind              { return KindDatatypeDefinition }
func (HasKey) Kind() AxiomKind                          { return KindHasKey }
func (SameIndividual) Kind() AxiomKind                  { return KindSameIndividual }
func (DifferentIndividuals) Kind() AxiomKind            { return KindDifferentIndividuals }
func (ClassAssertion) Kind() AxiomKind                  { return KindClassAssertion }
func (ObjectPropertyAssertion) Kind() AxiomKind         { return KindObjectPropertyAssertion }
func (NegativeObjectPropertyAssertion) Kind() AxiomKind { return KindNegativeObjectPropertyAssertion }
func (DataPropertyAssertion) Kind() AxiomKind           { return KindDataPropertyAssertion }
func (NegativeDataPropertyAssertion) Kind() AxiomKind   { return KindNegativeDataPropertyAssertion }
func (AnnotationAssertion) Kind() AxiomKind             { return KindAnnotationAssertion }
func (SubAnnotationPropertyOf) Kind() AxiomKind         { return KindSubAnnotationPropertyOf }
func (AnnotationPropertyDomain) Kind() AxiomKind        { return KindAnnotationPropertyDomain }
func (AnnotationPropertyRange) Kind() AxiomKind         { return KindAnnotationPropertyRange }

func (Import) isAxiom()                          {}
func (OntologyAnnotation) isAxiom()              {}
func (Declaration) isAxiom()                     {}
func (SubClassOf) isAxiom()                      {}
func (EquivalentClasses) isAxiom()               {}
func (DisjointClasses) isAxiom()                 {}
func (DisjointUnion) isAxiom()                   {}
func (SubObjectPropertyOf) isAxiom()             {}
func (EquivalentObjectProperties) isAxiom()      {}
func (DisjointObjectProperties) isAxiom()        {}
func (InverseObjectProperties) isAxiom()         {}
func (ObjectPropertyDomain) isAxiom()            {}
func (ObjectPropertyRange) isAxiom()             {}
func (FunctionalObjectProperty) isAxiom()        {}
func (InverseFunctionalObjectProperty) isAxiom() {}
func (ReflexiveObjectProperty) isAxiom()         {}
func (IrreflexiveObjectProperty) isAxiom()       {}
func (SymmetricObjectProperty) isAxiom()         {}
func (AsymmetricObjectProperty) isAxiom()        {}
func (TransitiveObjectProperty) isAxiom()        {}
func (SubDataPropertyOf) isAxiom()               {}
func (EquivalentDataProperties) isAxiom()        {}
func (DisjointDataProperties) isAxiom()          {}
func (DataPropertyDomain) isAxiom()              {}
func (DataPropertyRange) isAxiom()               {}
func (FunctionalDataProperty) isAxiom()          {}
func (DatatypeDefinition) isAxiom()              {}
func (HasKey) isAxiom()                          {}
func (SameIndividual) isAxiom()                  {}
func (DifferentIndividuals) isAxiom()            {}
func (ClassAssertion) isAxiom()                  {}
func (ObjectPropertyAssertion) isAxiom()         {}
func (NegativeObjectPropertyAssertion) isAxiom() {}
func (DataPropertyAssertion) isAxiom()           {}
func (NegativeDataPropertyAssertion) isAxiom()   {}
func (AnnotationAssertion) isAxiom()             {}
func (SubAnnotationPropertyOf) isAxiom()         {}
func (AnnotationPropertyDomain) isAxiom()        {}
func (AnnotationPropertyRange) isAxiom()         {}

// AxiomValue returns the axiom a pointer refers to, or axiom itself.
func AxiomValue(axiom Axiom) Axiom {
	rv := reflect.ValueOf(axiom)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return axiom
	}
	if value, ok := rv.Elem().Interface().(Axiom); ok {
		return value
	}
	return axiom
}

// AnnotatedAxiom is an axiom together with its annotations. It is not itself
// an Axiom.
type AnnotatedAxiom struct {
	Axiom       Axiom
	Annotations []Annotation
}

func (a AnnotatedAxiom) Kind() AxiomKind {
	return a.Axiom.Kind()
}
