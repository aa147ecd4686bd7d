package owl

// Entity is a named term of the vocabulary, the operand of a declaration.
type Entity interface {
	EntityIRI() IRI
	isEntity()
}

type Class struct{ IRI IRI }

type Datatype struct{ IRI IRI }

type ObjectProperty struct{ IRI IRI }

type DataProperty struct{ IRI IRI }

type AnnotationProperty struct{ IRI IRI }

type NamedIndividual struct{ IRI IRI }

func (e Class) EntityIRI() IRI              { return e.IRI }
func (e Datatype) EntityIRI() IRI           { return e.IRI }
func (e ObjectProperty) EntityIRI() IRI     { return e.IRI }
func (e DataProperty) EntityIRI() IRI       { return e.IRI }
func (e AnnotationProperty) EntityIRI() IRI { return e.IRI }
func (e NamedIndividual) EntityIRI() IRI    { return e.IRI }

func (Class) isEntity()              {}
func (Datatype) isEntity()           {}
func (ObjectProperty) isEntity()     {}
func (DataProperty) isEntity()       {}
func (AnnotationProperty) isEntity() {}
func (NamedIndividual) isEntity()    {}

// AnonymousIndividual is a blank node such as _:b0. ID keeps the "_:" prefix.
type AnonymousIndividual struct{ ID string }

// Individual is either named or anonymous.
type Individual interface {
	isIndividual()
}

func (NamedIndividual) isIndividual()     {}
func (AnonymousIndividual) isIndividual() {}

// AnnotationSubject is what an annotation assertion talks about.
type AnnotationSubject interface {
	isAnnotationSubject()
}

func (IRI) isAnnotationSubject()                 {}
func (AnonymousIndividual) isAnnotationSubject() {}
