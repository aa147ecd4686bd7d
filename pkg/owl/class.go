package owl

// ObjectPropertyExpression is a named object property or its inverse.
type ObjectPropertyExpression interface {
	isObjectPropertyExpression()
}

// InverseObjectProperty is written ObjectInverseOf(p).
type InverseObjectProperty struct {
	Property ObjectProperty
}

func (ObjectProperty) isObjectPropertyExpression()        {}
func (InverseObjectProperty) isObjectPropertyExpression() {}

// SubObjectPropertyExpression is the left side of SubObjectPropertyOf: a
// property expression or a chain of them.
type SubObjectPropertyExpression interface {
	isSubObjectPropertyExpression()
}

type PropertyChain struct {
	Properties []ObjectPropertyExpression
}

func (ObjectProperty) isSubObjectPropertyExpression()        {}
func (InverseObjectProperty) isSubObjectPropertyExpression() {}
func (PropertyChain) isSubObjectPropertyExpression()         {}

// ClassExpression describes a set of individuals. Child expressions are owned
// by their parent; the structure is a tree.
type ClassExpression interface {
	isClassExpression()
}

type ObjectIntersectionOf struct {
	Operands []ClassExpression
}

type ObjectUnionOf struct {
	Operands []ClassExpression
}

type ObjectComplementOf struct {
	Operand ClassExpression
}

type ObjectOneOf struct {
	Individuals []Individual
}

type ObjectSomeValuesFrom struct {
	Property ObjectPropertyExpression
	Filler   ClassExpression
}

type ObjectAllValuesFrom struct {
	Property ObjectPropertyExpression
	Filler   ClassExpression
}

type ObjectHasValue struct {
	Property   ObjectPropertyExpression
	Individual Individual
}

type ObjectHasSelf struct {
	Property ObjectPropertyExpression
}

// Cardinality restrictions written without a filler have Class{OWLThing}.
type ObjectMinCardinality struct {
	N        uint32
	Property ObjectPropertyExpression
	Filler   ClassExpression
}

type ObjectMaxCardinality struct {
	N        uint32
	Property ObjectPropertyExpression
	Filler   ClassExpression
}

type ObjectExactCardinality struct {
	N        uint32
	Property ObjectPropertyExpression
	Filler   ClassExpression
}

type DataSomeValuesFrom struct {
	Property DataProperty
	Range    DataRange
}

type DataAllValuesFrom struct {
	Property DataProperty
	Range    DataRange
}

type DataHasValue struct {
	Property DataProperty
	Value    Literal
}

// Cardinality restrictions written without a range have Datatype{RDFSLiteral}.
type DataMinCardinality struct {
	N        uint32
	Property DataProperty
	Range    DataRange
}

type DataMaxCardinality struct {
	N        uint32
	Property DataProperty
	Range    DataRange
}

type DataExactCardinality struct {
	N        uint32
	Property DataProperty
	Range    DataRange
}

func (Class) isClassExpression()                  {}
func (ObjectIntersectionOf) isClassExpression()   {}
func (ObjectUnionOf) isClassExpression()          {}
func (ObjectComplementOf) isClassExpression()     {}
func (ObjectOneOf) isClassExpression()            {}
func (ObjectSomeValuesFrom) isClassExpression()   {}
func (ObjectAllValuesFrom) isClassExpression()    {}
func (ObjectHasValue) isClassExpression()         {}
func (ObjectHasSelf) isClassExpression()          {}
func (ObjectMinCardinality) isClassExpression()   {}
func (ObjectMaxCardinality) isClassExpression()   {}
func (ObjectExactCardinality) isClassExpression() {}
func (DataSomeValuesFrom) isClassExpression()     {}
func (DataAllValuesFrom) isClassExpression()      {}
func (DataHasValue) isClassExpression()           {}
func (DataMinCardinality) isClassExpression()     {}
func (DataMaxCardinality) isClassExpression()     {}
func (DataExactCardinality) isClassExpression()   {}
