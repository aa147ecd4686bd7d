// Package parser builds rule-tagged parse trees from OWL functional-style
// text by recursive descent.
package parser

import (
	"fmt"
	"sort"

	"github.com/spicery/owlfn/pkg/common"
	"github.com/spicery/owlfn/pkg/tokenizer"
)

type Parser struct {
	tokens *tokenizer.Tokenizer
	peeked *common.Token
	last   *common.Token // the most recently consumed token
	input  string
}

func NewParser(input string) *Parser {
	return &Parser{
		tokens: tokenizer.NewTokenizer(input),
		input:  input,
	}
}

type ruleFunc func(p *Parser) (*common.Node, error)

// rules lists the productions that Parse accepts as a starting point.
var rules = map[string]ruleFunc{
	common.NameOntologyDocument:         (*Parser).ReadOntologyDocument,
	common.NamePrefixDeclaration:        (*Parser).ReadPrefixDeclaration,
	common.NameOntology:                 (*Parser).ReadOntology,
	common.NameImport:                   (*Parser).ReadImport,
	common.NameIRI:                      (*Parser).ReadIRI,
	common.NameAnnotation:               (*Parser).ReadAnnotation,
	common.NameAnnotations:              (*Parser).ReadAnnotations,
	common.NameAnnotationSubject:        (*Parser).ReadAnnotationSubject,
	common.NameAnnotationValue:          (*Parser).ReadAnnotationValue,
	common.NameClass:                    entityRule(common.NameClass),
	common.NameDatatype:                 entityRule(common.NameDatatype),
	common.NameObjectProperty:           entityRule(common.NameObjectProperty),
	common.NameDataProperty:             entityRule(common.NameDataProperty),
	common.NameAnnotationProperty:       entityRule(common.NameAnnotationProperty),
	common.NameNamedIndividual:          entityRule(common.NameNamedIndividual),
	common.NameAnonymousIndividual:      (*Parser).ReadAnonymousIndividual,
	common.NameIndividual:               (*Parser).ReadIndividual,
	common.NameEntity:                   (*Parser).ReadEntity,
	common.NameLiteral:                  (*Parser).ReadLiteral,
	common.NameQuotedString:             (*Parser).ReadQuotedString,
	common.NameNonNegativeInteger:       (*Parser).ReadNonNegativeInteger,
	common.NameObjectPropertyExpression: (*Parser).ReadObjectPropertyExpression,
	common.NameDataPropertyExpression:   (*Parser).ReadDataPropertyExpression,
	common.NameClassExpression:          (*Parser).ReadClassExpression,
	common.NameDataRange:                (*Parser).ReadDataRange,
	common.NameFacetRestriction:         (*Parser).ReadFacetRestriction,
	common.NameConstrainingFacet:        (*Parser).ReadConstrainingFacet,
	common.NameAxiom:                    (*Parser).ReadAxiom,
}

// Rules returns the names accepted by Parse, sorted.
func Rules() []string {
	names := make([]string, 0, len(rules))
	for name := range rules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Parse reads the longest prefix of text that matches rule. The root's
// Span.EndOffset tells how much of text was consumed.
func Parse(rule string, text string) (*common.Node, error) {
	read, ok := rules[rule]
	if !ok {
		return nil, fmt.Errorf("unknown rule '%s'", rule)
	}
	return read(NewParser(text))
}

// PeekToken returns the next token without consuming it, or nil at the end
// of input.
func (p *Parser) PeekToken() *common.Token {
	if p.peeked == nil {
		p.peeked = p.tokens.Next()
	}
	return p.peeked
}

// DropPeekedToken consumes the token returned by PeekToken.
func (p *Parser) DropPeekedToken() {
	p.GetToken()
}

func (p *Parser) GetToken() *common.Token {
	token := p.PeekToken()
	p.peeked = nil
	if token != nil {
		p.last = token
	}
	return token
}

func (p *Parser) MustReadToken(expectedType common.TokenType, text string) (*common.Token, error) {
	token := p.PeekToken()
	if !token.Is(expectedType, text) {
		return nil, p.unexpected(token, text)
	}
	return p.GetToken(), nil
}

func (p *Parser) TryReadToken(expectedType common.TokenType, text string) *common.Token {
	if p.PeekToken().Is(expectedType, text) {
		return p.GetToken()
	}
	return nil
}

func (p *Parser) MustReadOpen() (*common.Token, error) {
	return p.MustReadToken(common.OpenTokenType, "(")
}

func (p *Parser) MustReadClose() (*common.Token, error) {
	return p.MustReadToken(common.CloseTokenType, ")")
}

// MustReadKeywordOpen reads `keyword (`.
func (p *Parser) MustReadKeywordOpen(keyword string) (*common.Token, error) {
	start, err := p.MustReadToken(common.KeywordTokenType, keyword)
	if err != nil {
		return nil, err
	}
	if _, err := p.MustReadOpen(); err != nil {
		return nil, err
	}
	return start, nil
}

// PeekKeyword returns the keyword text of the next token, or "" when the
// next token is not a keyword.
func (p *Parser) PeekKeyword() string {
	token := p.PeekToken()
	if token == nil || token.Type != common.KeywordTokenType {
		return ""
	}
	return token.Text
}

func (p *Parser) atClose() bool {
	return p.PeekToken().Is(common.CloseTokenType, ")")
}

// here is a zero width span at the start of the next token.
func (p *Parser) here() common.Span {
	if token := p.PeekToken(); token != nil {
		start := token.Span
		start.EndLine, start.EndColumn, start.EndOffset = start.StartLine, start.StartColumn, start.StartOffset
		return start
	}
	if p.last != nil {
		end := p.last.Span
		end.StartLine, end.StartColumn, end.StartOffset = end.EndLine, end.EndColumn, end.EndOffset
		return end
	}
	pos := p.tokens.Position()
	return pos.Span(pos)
}

func (p *Parser) unexpected(token *common.Token, expected ...string) *Error {
	if token == nil {
		return &Error{Span: p.here(), Expected: expected}
	}
	err := &Error{Span: token.Span, Found: token.Text, Expected: expected}
	if token.Type == common.ExceptionTokenType {
		err.Message = token.Reason
	}
	return err
}

// tooFew reports a list that is shorter than the grammar allows.
func (p *Parser) tooFew(construct string, min int, start *common.Token) *Error {
	token := p.PeekToken()
	found := ""
	if token != nil {
		found = token.Text
	}
	here := p.here()
	return &Error{
		Span:     *start.Span.ToSpan(&here),
		Found:    found,
		Expected: []string{construct},
		Message:  fmt.Sprintf("%s needs at least %d operands", construct, min),
	}
}

func leaf(name string, token *common.Token, options map[string]string) *common.Node {
	return &common.Node{
		Name:     name,
		Span:     token.Span,
		Options:  options,
		Children: []*common.Node{},
	}
}

func wrap(name string, children ...*common.Node) *common.Node {
	node := &common.Node{Name: name, Children: children}
	node.UpdateSpan()
	return node
}

// enclose builds a node spanning from the start token to the end token.
func enclose(name string, start, end *common.Token, children []*common.Node) *common.Node {
	if children == nil {
		children = []*common.Node{}
	}
	return &common.Node{
		Name:     name,
		Span:     *start.Span.ToSpan(&end.Span),
		Children: children,
	}
}

// list builds a node for a possibly empty sequence of children.
func (p *Parser) list(name string, children []*common.Node) *common.Node {
	if len(children) == 0 {
		return &common.Node{Name: name, Span: p.here(), Children: []*common.Node{}}
	}
	return wrap(name, children...)
}
