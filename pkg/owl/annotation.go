package owl

import "sort"

// AnnotationValue is the object of an annotation.
type AnnotationValue interface {
	isAnnotationValue()
}

func (IRI) isAnnotationValue()                 {}
func (AnonymousIndividual) isAnnotationValue() {}
func (SimpleLiteral) isAnnotationValue()       {}
func (LanguageLiteral) isAnnotationValue()     {}
func (DatatypeLiteral) isAnnotationValue()     {}

// Annotation attaches a property value to an axiom, ontology or another
// annotation. Annotations holds the annotations on this annotation.
type Annotation struct {
	Annotations []Annotation
	Property    AnnotationProperty
	Value       AnnotationValue
}

// NormalizeAnnotations sorts annotations by their structural key and drops
// duplicates, recursively. An empty set becomes nil.
func NormalizeAnnotations(annotations []Annotation) []Annotation {
	if len(annotations) == 0 {
		return nil
	}
	keyed := make(map[string]Annotation, len(annotations))
	for _, annotation := range annotations {
		annotation.Annotations = NormalizeAnnotations(annotation.Annotations)
		keyed[Key(annotation)] = annotation
	}
	keys := make([]string, 0, len(keyed))
	for key := range keyed {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	result := make([]Annotation, 0, len(keys))
	for _, key := range keys {
		result = append(result, keyed[key])
	}
	return result
}
