package parser

import (
	"github.com/spicery/owlfn/pkg/common"
)

// Keywords whose spelling differs from the production they introduce.
const (
	KeywordPrefix              = "Prefix"
	KeywordObjectInverseOf     = "ObjectInverseOf"
	KeywordObjectPropertyChain = "ObjectPropertyChain"
)

func isIRIToken(token *common.Token) bool {
	if token == nil {
		return false
	}
	return token.Type == common.FullIRITokenType || (token.Type == common.PrefixedNameType && token.Local != "")
}

func isNodeIDToken(token *common.Token) bool {
	return token != nil && token.Type == common.NodeIDTokenType
}

// entityRule reads a bare IRI naming an entity of the given kind.
func entityRule(name string) ruleFunc {
	return func(p *Parser) (*common.Node, error) {
		iri, err := p.ReadIRI()
		if err != nil {
			return nil, err
		}
		return wrap(name, iri), nil
	}
}

// readOperands reads `keyword ( operand... )` with one reader per operand.
func (p *Parser) readOperands(keyword, name string, readers ...ruleFunc) (*common.Node, error) {
	start, err := p.MustReadKeywordOpen(keyword)
	if err != nil {
		return nil, err
	}
	children := make([]*common.Node, 0, len(readers))
	for _, read := range readers {
		child, err := read(p)
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
	end, err := p.MustReadClose()
	if err != nil {
		return nil, err
	}
	return enclose(name, start, end, children), nil
}

// readList reads `keyword ( head... item{min,} )`.
func (p *Parser) readList(keyword, name string, min int, head []ruleFunc, item ruleFunc) (*common.Node, error) {
	start, err := p.MustReadKeywordOpen(keyword)
	if err != nil {
		return nil, err
	}
	var children []*common.Node
	for _, read := range head {
		child, err := read(p)
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
	count := 0
	for !p.atClose() && p.PeekToken() != nil {
		child, err := item(p)
		if err != nil {
			return nil, err
		}
		children = append(children, child)
		count++
	}
	if count < min {
		return nil, p.tooFew(name, min, start)
	}
	end, err := p.MustReadClose()
	if err != nil {
		return nil, err
	}
	return enclose(name, start, end, children), nil
}

func (p *Parser) readAxiomOperands(keyword string, readers ...ruleFunc) (*common.Node, error) {
	return p.readOperands(keyword, keyword, append([]ruleFunc{(*Parser).ReadAnnotations}, readers...)...)
}

func (p *Parser) readAxiomList(keyword string, min int, head []ruleFunc, item ruleFunc) (*common.Node, error) {
	return p.readList(keyword, keyword, min, append([]ruleFunc{(*Parser).ReadAnnotations}, head...), item)
}

func (p *Parser) ReadOntologyDocument() (*common.Node, error) {
	var children []*common.Node
	for p.PeekKeyword() == KeywordPrefix {
		prefix, err := p.ReadPrefixDeclaration()
		if err != nil {
			return nil, err
		}
		children = append(children, prefix)
	}
	ontology, err := p.ReadOntology()
	if err != nil {
		return nil, err
	}
	children = append(children, ontology)
	return wrap(common.NameOntologyDocument, children...), nil
}

func (p *Parser) ReadPrefixDeclaration() (*common.Node, error) {
	start, err := p.MustReadKeywordOpen(KeywordPrefix)
	if err != nil {
		return nil, err
	}
	token := p.PeekToken()
	if token == nil || token.Type != common.PrefixedNameType || token.Local != "" {
		return nil, p.unexpected(token, common.NamePrefixName)
	}
	p.DropPeekedToken()
	name := leaf(common.NamePrefixName, token, map[string]string{common.OptionValue: token.Prefix})
	if _, err := p.MustReadToken(common.EqualsTokenType, "="); err != nil {
		return nil, err
	}
	token = p.PeekToken()
	if token == nil || token.Type != common.FullIRITokenType {
		return nil, p.unexpected(token, common.NameFullIRI)
	}
	p.DropPeekedToken()
	iri := leaf(common.NameFullIRI, token, map[string]string{common.OptionValue: stripBrackets(token.Text)})
	end, err := p.MustReadClose()
	if err != nil {
		return nil, err
	}
	return enclose(common.NamePrefixDeclaration, start, end, []*common.Node{name, iri}), nil
}

func (p *Parser) ReadOntology() (*common.Node, error) {
	start, err := p.MustReadKeywordOpen(common.NameOntology)
	if err != nil {
		return nil, err
	}
	var children []*common.Node
	if isIRIToken(p.PeekToken()) {
		iri, err := p.ReadIRI()
		if err != nil {
			return nil, err
		}
		children = append(children, wrap(common.NameOntologyIRI, iri))
		if isIRIToken(p.PeekToken()) {
			version, err := p.ReadIRI()
			if err != nil {
				return nil, err
			}
			children = append(children, wrap(common.NameVersionIRI, version))
		}
	}

	var imports []*common.Node
	for p.PeekKeyword() == common.NameImport {
		imp, err := p.ReadImport()
		if err != nil {
			return nil, err
		}
		imports = append(imports, imp)
	}
	children = append(children, p.list(common.NameDirectlyImportsDocuments, imports))

	var annotations []*common.Node
	for p.PeekKeyword() == common.NameAnnotation {
		annotation, err := p.ReadAnnotation()
		if err != nil {
			return nil, err
		}
		annotations = append(annotations, annotation)
	}
	children = append(children, p.list(common.NameOntologyAnnotations, annotations))

	var axioms []*common.Node
	for !p.atClose() {
		if !IsAxiomKeyword(p.PeekKeyword()) {
			return nil, p.unexpected(p.PeekToken(), common.NameAxiom, ")")
		}
		axiom, err := p.ReadAxiom()
		if err != nil {
			return nil, err
		}
		axioms = append(axioms, axiom)
	}
	children = append(children, p.list(common.NameAxioms, axioms))

	end, err := p.MustReadClose()
	if err != nil {
		return nil, err
	}
	return enclose(common.NameOntology, start, end, children), nil
}

func (p *Parser) ReadImport() (*common.Node, error) {
	return p.readOperands(common.NameImport, common.NameImport, (*Parser).ReadIRI)
}

func stripBrackets(text string) string {
	return text[1 : len(text)-1]
}

func (p *Parser) ReadIRI() (*common.Node, error) {
	token := p.PeekToken()
	if !isIRIToken(token) {
		return nil, p.unexpected(token, common.NameIRI)
	}
	p.DropPeekedToken()
	if token.Type == common.FullIRITokenType {
		full := leaf(common.NameFullIRI, token, map[string]string{common.OptionValue: stripBrackets(token.Text)})
		return wrap(common.NameIRI, full), nil
	}
	options := map[string]string{common.OptionLocal: token.Local}
	if token.Prefix != "" {
		options[common.OptionPrefix] = token.Prefix
	}
	return wrap(common.NameIRI, leaf(common.NameAbbreviatedIRI, token, options)), nil
}

func (p *Parser) ReadAnnotations() (*common.Node, error) {
	var annotations []*common.Node
	for p.PeekKeyword() == common.NameAnnotation {
		annotation, err := p.ReadAnnotation()
		if err != nil {
			return nil, err
		}
		annotations = append(annotations, annotation)
	}
	return p.list(common.NameAnnotations, annotations), nil
}

func (p *Parser) ReadAnnotation() (*common.Node, error) {
	return p.readOperands(common.NameAnnotation, common.NameAnnotation,
		(*Parser).ReadAnnotations,
		entityRule(common.NameAnnotationProperty),
		(*Parser).ReadAnnotationValue,
	)
}

func (p *Parser) ReadAnonymousIndividual() (*common.Node, error) {
	token := p.PeekToken()
	if !isNodeIDToken(token) {
		return nil, p.unexpected(token, common.NameAnonymousIndividual)
	}
	p.DropPeekedToken()
	return leaf(common.NameAnonymousIndividual, token, map[string]string{common.OptionValue: token.Text}), nil
}

func (p *Parser) ReadIndividual() (*common.Node, error) {
	token := p.PeekToken()
	if isNodeIDToken(token) {
		anon, _ := p.ReadAnonymousIndividual()
		return wrap(common.NameIndividual, anon), nil
	}
	if !isIRIToken(token) {
		return nil, p.unexpected(token, common.NameIndividual)
	}
	named, err := entityRule(common.NameNamedIndividual)(p)
	if err != nil {
		return nil, err
	}
	return wrap(common.NameIndividual, named), nil
}

func (p *Parser) ReadAnnotationSubject() (*common.Node, error) {
	token := p.PeekToken()
	var child *common.Node
	var err error
	switch {
	case isNodeIDToken(token):
		child, err = p.ReadAnonymousIndividual()
	case isIRIToken(token):
		child, err = p.ReadIRI()
	default:
		return nil, p.unexpected(token, common.NameAnnotationSubject)
	}
	if err != nil {
		return nil, err
	}
	return wrap(common.NameAnnotationSubject, child), nil
}

func (p *Parser) ReadAnnotationValue() (*common.Node, error) {
	token := p.PeekToken()
	var child *common.Node
	var err error
	switch {
	case isNodeIDToken(token):
		child, err = p.ReadAnonymousIndividual()
	case isIRIToken(token):
		child, err = p.ReadIRI()
	case token != nil && token.Type == common.StringTokenType:
		child, err = p.ReadLiteral()
	default:
		return nil, p.unexpected(token, common.NameAnnotationValue)
	}
	if err != nil {
		return nil, err
	}
	return wrap(common.NameAnnotationValue, child), nil
}

// ReadEntity reads the operand of a declaration, such as `Class(ex:A)`.
func (p *Parser) ReadEntity() (*common.Node, error) {
	keyword := p.PeekKeyword()
	switch keyword {
	case common.NameClass, common.NameDatatype, common.NameObjectProperty,
		common.NameDataProperty, common.NameAnnotationProperty, common.NameNamedIndividual:
	default:
		return nil, p.unexpected(p.PeekToken(), common.NameEntity)
	}
	entity, err := p.readOperands(keyword, keyword, (*Parser).ReadIRI)
	if err != nil {
		return nil, err
	}
	return wrap(common.NameEntity, entity), nil
}

func (p *Parser) ReadQuotedString() (*common.Node, error) {
	token := p.PeekToken()
	if token == nil || token.Type != common.StringTokenType {
		return nil, p.unexpected(token, common.NameQuotedString)
	}
	p.DropPeekedToken()
	return leaf(common.NameQuotedString, token, map[string]string{common.OptionValue: token.Text}), nil
}

func (p *Parser) ReadLiteral() (*common.Node, error) {
	token := p.PeekToken()
	if token == nil || token.Type != common.StringTokenType {
		return nil, p.unexpected(token, common.NameLiteral)
	}
	quoted, _ := p.ReadQuotedString()
	var inner *common.Node
	next := p.PeekToken()
	switch {
	case next.Is(common.DatatypeMarkType, "^^"):
		p.DropPeekedToken()
		datatype, err := entityRule(common.NameDatatype)(p)
		if err != nil {
			return nil, err
		}
		inner = wrap(common.NameTypedLiteral, quoted, datatype)
	case next != nil && next.Type == common.LanguageTagTokenType:
		p.DropPeekedToken()
		tag := leaf(common.NameLanguageTag, next, map[string]string{common.OptionValue: next.Text[1:]})
		inner = wrap(common.NameStringLiteralWithLanguage, quoted, tag)
	default:
		inner = wrap(common.NameStringLiteralNoLanguage, quoted)
	}
	return wrap(common.NameLiteral, inner), nil
}

func (p *Parser) ReadNonNegativeInteger() (*common.Node, error) {
	token := p.PeekToken()
	if token == nil || token.Type != common.IntegerTokenType {
		return nil, p.unexpected(token, common.NameNonNegativeInteger)
	}
	p.DropPeekedToken()
	return leaf(common.NameNonNegativeInteger, token, map[string]string{common.OptionValue: token.Text}), nil
}

func (p *Parser) ReadObjectPropertyExpression() (*common.Node, error) {
	var inner *common.Node
	var err error
	token := p.PeekToken()
	switch {
	case token.IsKeyword(KeywordObjectInverseOf):
		inner, err = p.readOperands(KeywordObjectInverseOf, common.NameInverseObjectProperty, entityRule(common.NameObjectProperty))
	case isIRIToken(token):
		inner, err = entityRule(common.NameObjectProperty)(p)
	default:
		return nil, p.unexpected(token, common.NameObjectPropertyExpression)
	}
	if err != nil {
		return nil, err
	}
	return wrap(common.NameObjectPropertyExpression, inner), nil
}

func (p *Parser) ReadDataPropertyExpression() (*common.Node, error) {
	if !isIRIToken(p.PeekToken()) {
		return nil, p.unexpected(p.PeekToken(), common.NameDataPropertyExpression)
	}
	property, err := entityRule(common.NameDataProperty)(p)
	if err != nil {
		return nil, err
	}
	return wrap(common.NameDataPropertyExpression, property), nil
}

func (p *Parser) ReadClassExpression() (*common.Node, error) {
	token := p.PeekToken()
	if isIRIToken(token) {
		class, err := entityRule(common.NameClass)(p)
		if err != nil {
			return nil, err
		}
		return wrap(common.NameClassExpression, class), nil
	}
	var inner *common.Node
	var err error
	switch keyword := p.PeekKeyword(); keyword {
	case common.NameObjectIntersectionOf, common.NameObjectUnionOf:
		inner, err = p.readList(keyword, keyword, 2, nil, (*Parser).ReadClassExpression)
	case common.NameObjectComplementOf:
		inner, err = p.readOperands(keyword, keyword, (*Parser).ReadClassExpression)
	case common.NameObjectOneOf:
		inner, err = p.readList(keyword, keyword, 1, nil, (*Parser).ReadIndividual)
	case common.NameObjectSomeValuesFrom, common.NameObjectAllValuesFrom:
		inner, err = p.readOperands(keyword, keyword, (*Parser).ReadObjectPropertyExpression, (*Parser).ReadClassExpression)
	case common.NameObjectHasValue:
		inner, err = p.readOperands(keyword, keyword, (*Parser).ReadObjectPropertyExpression, (*Parser).ReadIndividual)
	case common.NameObjectHasSelf:
		inner, err = p.readOperands(keyword, keyword, (*Parser).ReadObjectPropertyExpression)
	case common.NameObjectMinCardinality, common.NameObjectMaxCardinality, common.NameObjectExactCardinality:
		inner, err = p.readCardinality(keyword, (*Parser).ReadObjectPropertyExpression, (*Parser).ReadClassExpression)
	case common.NameDataSomeValuesFrom, common.NameDataAllValuesFrom:
		inner, err = p.readDataQuantifier(keyword)
	case common.NameDataHasValue:
		inner, err = p.readOperands(keyword, keyword, (*Parser).ReadDataPropertyExpression, (*Parser).ReadLiteral)
	case common.NameDataMinCardinality, common.NameDataMaxCardinality, common.NameDataExactCardinality:
		inner, err = p.readCardinality(keyword, (*Parser).ReadDataPropertyExpression, (*Parser).ReadDataRange)
	default:
		return nil, p.unexpected(token, common.NameClassExpression)
	}
	if err != nil {
		return nil, err
	}
	return wrap(common.NameClassExpression, inner), nil
}

// readCardinality reads `keyword ( n property [filler] )`.
func (p *Parser) readCardinality(keyword string, property, filler ruleFunc) (*common.Node, error) {
	start, err := p.MustReadKeywordOpen(keyword)
	if err != nil {
		return nil, err
	}
	n, err := p.ReadNonNegativeInteger()
	if err != nil {
		return nil, err
	}
	prop, err := property(p)
	if err != nil {
		return nil, err
	}
	children := []*common.Node{n, prop}
	if !p.atClose() {
		f, err := filler(p)
		if err != nil {
			return nil, err
		}
		children = append(children, f)
	}
	end, err := p.MustReadClose()
	if err != nil {
		return nil, err
	}
	return enclose(keyword, start, end, children), nil
}

// readDataQuantifier reads `keyword ( DPE+ DataRange )`. The last operand is
// the data range and every operand before it a data property.
func (p *Parser) readDataQuantifier(keyword string) (*common.Node, error) {
	start, err := p.MustReadKeywordOpen(keyword)
	if err != nil {
		return nil, err
	}
	var items []*common.Node
	for !p.atClose() {
		token := p.PeekToken()
		var item *common.Node
		switch {
		case isIRIToken(token):
			item, err = p.ReadIRI()
		case token != nil && token.Type == common.KeywordTokenType:
			item, err = p.ReadDataRange()
		default:
			return nil, p.unexpected(token, common.NameDataPropertyExpression, common.NameDataRange)
		}
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if len(items) < 2 {
		return nil, p.tooFew(keyword, 2, start)
	}
	children := make([]*common.Node, 0, len(items))
	for _, item := range items[:len(items)-1] {
		if item.Name != common.NameIRI {
			return nil, &Error{Span: item.Span, Found: item.Name, Expected: []string{common.NameDataPropertyExpression}}
		}
		children = append(children, wrap(common.NameDataPropertyExpression, wrap(common.NameDataProperty, item)))
	}
	last := items[len(items)-1]
	if last.Name == common.NameIRI {
		last = wrap(common.NameDataRange, wrap(common.NameDatatype, last))
	}
	children = append(children, last)
	end, err := p.MustReadClose()
	if err != nil {
		return nil, err
	}
	return enclose(keyword, start, end, children), nil
}

func (p *Parser) ReadDataRange() (*common.Node, error) {
	token := p.PeekToken()
	if isIRIToken(token) {
		datatype, err := entityRule(common.NameDatatype)(p)
		if err != nil {
			return nil, err
		}
		return wrap(common.NameDataRange, datatype), nil
	}
	var inner *common.Node
	var err error
	switch keyword := p.PeekKeyword(); keyword {
	case common.NameDataIntersectionOf, common.NameDataUnionOf:
		inner, err = p.readList(keyword, keyword, 2, nil, (*Parser).ReadDataRange)
	case common.NameDataComplementOf:
		inner, err = p.readOperands(keyword, keyword, (*Parser).ReadDataRange)
	case common.NameDataOneOf:
		inner, err = p.readList(keyword, keyword, 1, nil, (*Parser).ReadLiteral)
	case common.NameDatatypeRestriction:
		inner, err = p.readList(keyword, keyword, 1, []ruleFunc{entityRule(common.NameDatatype)}, (*Parser).ReadFacetRestriction)
	default:
		return nil, p.unexpected(token, common.NameDataRange)
	}
	if err != nil {
		return nil, err
	}
	return wrap(common.NameDataRange, inner), nil
}

func (p *Parser) ReadFacetRestriction() (*common.Node, error) {
	facet, err := p.ReadConstrainingFacet()
	if err != nil {
		return nil, err
	}
	literal, err := p.ReadLiteral()
	if err != nil {
		return nil, err
	}
	return wrap(common.NameFacetRestriction, facet, literal), nil
}

func (p *Parser) ReadConstrainingFacet() (*common.Node, error) {
	iri, err := p.ReadIRI()
	if err != nil {
		return nil, err
	}
	return wrap(common.NameConstrainingFacet, iri), nil
}

func (p *Parser) readSubObjectPropertyExpression() (*common.Node, error) {
	var inner *common.Node
	var err error
	if p.PeekKeyword() == KeywordObjectPropertyChain {
		inner, err = p.readList(KeywordObjectPropertyChain, common.NamePropertyExpressionChain, 2, nil, (*Parser).ReadObjectPropertyExpression)
	} else {
		inner, err = p.ReadObjectPropertyExpression()
	}
	if err != nil {
		return nil, err
	}
	return wrap(common.NameSubObjectPropertyExpression, inner), nil
}

// readPropertyList reads a parenthesised, possibly empty, property list.
func (p *Parser) readPropertyList(name string, item ruleFunc) (*common.Node, error) {
	start, err := p.MustReadOpen()
	if err != nil {
		return nil, err
	}
	var children []*common.Node
	for !p.atClose() && p.PeekToken() != nil {
		child, err := item(p)
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
	end, err := p.MustReadClose()
	if err != nil {
		return nil, err
	}
	return enclose(name, start, end, children), nil
}

var axiomKeywords = map[string]bool{}

func init() {
	for _, keyword := range []string{
		common.NameDeclaration, common.NameSubClassOf, common.NameEquivalentClasses,
		common.NameDisjointClasses, common.NameDisjointUnion, common.NameSubObjectPropertyOf,
		common.NameEquivalentObjectProperties, common.NameDisjointObjectProperties,
		common.NameInverseObjectProperties, common.NameObjectPropertyDomain,
		common.NameObjectPropertyRange, common.NameFunctionalObjectProperty,
		common.NameInverseFunctionalObjectProperty, common.NameReflexiveObjectProperty,
		common.NameIrreflexiveObjectProperty, common.NameSymmetricObjectProperty,
		common.NameAsymmetricObjectProperty, common.NameTransitiveObjectProperty,
		common.NameSubDataPropertyOf, common.NameEquivalentDataProperties,
		common.NameDisjointDataProperties, common.NameDataPropertyDomain,
		common.NameDataPropertyRange, common.NameFunctionalDataProperty,
		common.NameDatatypeDefinition, common.NameHasKey, common.NameSameIndividual,
		common.NameDifferentIndividuals, common.NameClassAssertion,
		common.NameObjectPropertyAssertion, common.NameNegativeObjectPropertyAssertion,
		common.NameDataPropertyAssertion, common.NameNegativeDataPropertyAssertion,
		common.NameAnnotationAssertion, common.NameSubAnnotationPropertyOf,
		common.NameAnnotationPropertyDomain, common.NameAnnotationPropertyRange,
	} {
		axiomKeywords[keyword] = true
	}
}

// IsAxiomKeyword reports whether keyword starts an axiom.
func IsAxiomKeyword(keyword string) bool {
	return axiomKeywords[keyword]
}

func (p *Parser) ReadAxiom() (*common.Node, error) {
	var inner *common.Node
	var err error
	ce := (*Parser).ReadClassExpression
	ope := (*Parser).ReadObjectPropertyExpression
	dpe := (*Parser).ReadDataPropertyExpression
	ind := (*Parser).ReadIndividual
	ap := entityRule(common.NameAnnotationProperty)

	switch keyword := p.PeekKeyword(); keyword {
	case common.NameDeclaration:
		inner, err = p.readAxiomOperands(keyword, (*Parser).ReadEntity)
	case common.NameSubClassOf:
		inner, err = p.readAxiomOperands(keyword, ce, ce)
	case common.NameEquivalentClasses, common.NameDisjointClasses:
		inner, err = p.readAxiomList(keyword, 2, nil, ce)
	case common.NameDisjointUnion:
		inner, err = p.readAxiomList(keyword, 2, []ruleFunc{entityRule(common.NameClass)}, ce)
	case common.NameSubObjectPropertyOf:
		inner, err = p.readAxiomOperands(keyword, (*Parser).readSubObjectPropertyExpression, ope)
	case common.NameEquivalentObjectProperties, common.NameDisjointObjectProperties:
		inner, err = p.readAxiomList(keyword, 2, nil, ope)
	case common.NameInverseObjectProperties:
		inner, err = p.readAxiomOperands(keyword, ope, ope)
	case common.NameObjectPropertyDomain, common.NameObjectPropertyRange:
		inner, err = p.readAxiomOperands(keyword, ope, ce)
	case common.NameFunctionalObjectProperty, common.NameInverseFunctionalObjectProperty,
		common.NameReflexiveObjectProperty, common.NameIrreflexiveObjectProperty,
		common.NameSymmetricObjectProperty, common.NameAsymmetricObjectProperty,
		common.NameTransitiveObjectProperty:
		inner, err = p.readAxiomOperands(keyword, ope)
	case common.NameSubDataPropertyOf:
		inner, err = p.readAxiomOperands(keyword, dpe, dpe)
	case common.NameEquivalentDataProperties, common.NameDisjointDataProperties:
		inner, err = p.readAxiomList(keyword, 2, nil, dpe)
	case common.NameDataPropertyDomain:
		inner, err = p.readAxiomOperands(keyword, dpe, ce)
	case common.NameDataPropertyRange:
		inner, err = p.readAxiomOperands(keyword, dpe, (*Parser).ReadDataRange)
	case common.NameFunctionalDataProperty:
		inner, err = p.readAxiomOperands(keyword, dpe)
	case common.NameDatatypeDefinition:
		inner, err = p.readAxiomOperands(keyword, entityRule(common.NameDatatype), (*Parser).ReadDataRange)
	case common.NameHasKey:
		inner, err = p.readAxiomOperands(keyword, ce,
			func(p *Parser) (*common.Node, error) {
				return p.readPropertyList(common.NameObjectPropertyExpressions, ope)
			},
			func(p *Parser) (*common.Node, error) {
				return p.readPropertyList(common.NameDataPropertyExpressions, dpe)
			},
		)
	case common.NameSameIndividual, common.NameDifferentIndividuals:
		inner, err = p.readAxiomList(keyword, 2, nil, ind)
	case common.NameClassAssertion:
		inner, err = p.readAxiomOperands(keyword, ce, ind)
	case common.NameObjectPropertyAssertion, common.NameNegativeObjectPropertyAssertion:
		inner, err = p.readAxiomOperands(keyword, ope, ind, ind)
	case common.NameDataPropertyAssertion, common.NameNegativeDataPropertyAssertion:
		inner, err = p.readAxiomOperands(keyword, dpe, ind, (*Parser).ReadLiteral)
	case common.NameAnnotationAssertion:
		inner, err = p.readAxiomOperands(keyword, ap, (*Parser).ReadAnnotationSubject, (*Parser).ReadAnnotationValue)
	case common.NameSubAnnotationPropertyOf:
		inner, err = p.readAxiomOperands(keyword, ap, ap)
	case common.NameAnnotationPropertyDomain, common.NameAnnotationPropertyRange:
		inner, err = p.readAxiomOperands(keyword, ap, (*Parser).ReadIRI)
	default:
		return nil, p.unexpected(p.PeekToken(), common.NameAxiom)
	}
	if err != nil {
		return nil, err
	}
	return wrap(common.NameAxiom, inner), nil
}
