package owl

// DataRange describes a set of data values.
type DataRange interface {
	isDataRange()
}

type DataIntersectionOf struct {
	Operands []DataRange
}

type DataUnionOf struct {
	Operands []DataRange
}

type DataComplementOf struct {
	Operand DataRange
}

type DataOneOf struct {
	Literals []Literal
}

type DatatypeRestriction struct {
	Datatype     Datatype
	Restrictions []FacetRestriction
}

func (Datatype) isDataRange()            {}
func (DataIntersectionOf) isDataRange()  {}
func (DataUnionOf) isDataRange()         {}
func (DataComplementOf) isDataRange()    {}
func (DataOneOf) isDataRange()           {}
func (DatatypeRestriction) isDataRange() {}

// Facet is one of the constraining facets usable in a datatype restriction.
type Facet int

const (
	FacetLength Facet = iota
	FacetMinLength
	FacetMaxLength
	FacetPattern
	FacetMinInclusive
	FacetMinExclusive
	FacetMaxInclusive
	FacetMaxExclusive
	FacetTotalDigits
	FacetFractionDigits
	FacetLangRange
)

var facetIRIs = [...]IRI{
	FacetLength:         NamespaceXSD + "length",
	FacetMinLength:      NamespaceXSD + "minLength",
	FacetMaxLength:      NamespaceXSD + "maxLength",
	FacetPattern:        NamespaceXSD + "pattern",
	FacetMinInclusive:   NamespaceXSD + "minInclusive",
	FacetMinExclusive:   NamespaceXSD + "minExclusive",
	FacetMaxInclusive:   NamespaceXSD + "maxInclusive",
	FacetMaxExclusive:   NamespaceXSD + "maxExclusive",
	FacetTotalDigits:    NamespaceXSD + "totalDigits",
	FacetFractionDigits: NamespaceXSD + "fractionDigits",
	FacetLangRange:      RDFLangRange,
}

// Facets lists every facet in declaration order.
func Facets() []Facet {
	facets := make([]Facet, len(facetIRIs))
	for i := range facetIRIs {
		facets[i] = Facet(i)
	}
	return facets
}

func (f Facet) IRI() IRI {
	if f < 0 || int(f) >= len(facetIRIs) {
		return ""
	}
	return facetIRIs[f]
}

func (f Facet) String() string {
	return string(f.IRI())
}

// FacetFromIRI finds the facet named by iri. The vocabulary is closed.
func FacetFromIRI(iri IRI) (Facet, bool) {
	for i, candidate := range facetIRIs {
		if candidate == iri {
			return Facet(i), true
		}
	}
	return 0, false
}

type FacetRestriction struct {
	Facet Facet
	Value Literal
}
