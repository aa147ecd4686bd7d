package functional

import (
	"io"
	"os"

	"github.com/spicery/owlfn/pkg/common"
	"github.com/spicery/owlfn/pkg/curie"
	"github.com/spicery/owlfn/pkg/owl"
	"github.com/spicery/owlfn/pkg/parser"
	"github.com/spicery/owlfn/pkg/tokenizer"
)

// parseAs parses text as rule and converts the tree. Text left over after
// the production, other than whitespace and comments, is an error even when
// the prefix would have converted.
func parseAs[T any](rule, text string, ctx *Context, convert converter[T]) (T, error) {
	var zero T
	root, err := parser.Parse(rule, text)
	if err != nil {
		return zero, grammarError(err)
	}
	if end := root.Span.EndOffset; !tokenizer.OnlyTrivia(text[end:]) {
		return zero, remainingInput(text, end)
	}
	return convert(root, ctx)
}

func remainingInput(text string, consumed int) error {
	start := common.LineColAt(text, consumed)
	return &Error{
		Kind:    KindGrammar,
		Span:    start.Span(common.LineColAt(text, len(text))),
		Message: ErrRemainingInput.Error(),
		Err:     ErrRemainingInput,
	}
}

func ParseIRI(text string, ctx *Context) (owl.IRI, error) {
	return parseAs(common.NameIRI, text, ctx, fromIRI)
}

func ParseLiteral(text string, ctx *Context) (owl.Literal, error) {
	return parseAs(common.NameLiteral, text, ctx, fromLiteral)
}

// ParseFacet reads a constraining facet IRI such as xsd:minLength.
func ParseFacet(text string, ctx *Context) (owl.Facet, error) {
	return parseAs(common.NameConstrainingFacet, text, ctx, fromConstrainingFacet)
}

func ParseFacetRestriction(text string, ctx *Context) (owl.FacetRestriction, error) {
	return parseAs(common.NameFacetRestriction, text, ctx, fromFacetRestriction)
}

// ParseImport reads an `Import(<iri>)` declaration.
func ParseImport(text string, ctx *Context) (owl.Import, error) {
	return parseAs(common.NameImport, text, ctx, fromImport)
}

func ParseAnnotation(text string, ctx *Context) (owl.Annotation, error) {
	return parseAs(common.NameAnnotation, text, ctx, fromAnnotation)
}

// ParseAnnotations reads zero or more annotations as a set: sorted, with
// duplicates removed.
func ParseAnnotations(text string, ctx *Context) ([]owl.Annotation, error) {
	annotations, err := parseAs(common.NameAnnotations, text, ctx, fromAnnotations)
	if err != nil {
		return nil, err
	}
	return owl.NormalizeAnnotations(annotations), nil
}

// ParseOntologyAnnotation reads an `Annotation(...)` that annotates the
// ontology itself.
func ParseOntologyAnnotation(text string, ctx *Context) (owl.OntologyAnnotation, error) {
	annotation, err := ParseAnnotation(text, ctx)
	if err != nil {
		return owl.OntologyAnnotation{}, err
	}
	return owl.OntologyAnnotation{Annotation: annotation}, nil
}

func ParseAnnotationSubject(text string, ctx *Context) (owl.AnnotationSubject, error) {
	return parseAs(common.NameAnnotationSubject, text, ctx, fromAnnotationSubject)
}

func ParseAnnotationValue(text string, ctx *Context) (owl.AnnotationValue, error) {
	return parseAs(common.NameAnnotationValue, text, ctx, fromAnnotationValue)
}

// ParseClass reads a class name. The other named entities have matching
// functions.
func ParseClass(text string, ctx *Context) (owl.Class, error) {
	return parseAs(common.NameClass, text, ctx, fromClass)
}

func ParseDatatype(text string, ctx *Context) (owl.Datatype, error) {
	return parseAs(common.NameDatatype, text, ctx, fromDatatype)
}

func ParseObjectProperty(text string, ctx *Context) (owl.ObjectProperty, error) {
	return parseAs(common.NameObjectProperty, text, ctx, fromObjectProperty)
}

func ParseDataProperty(text string, ctx *Context) (owl.DataProperty, error) {
	return parseAs(common.NameDataProperty, text, ctx, fromDataProperty)
}

func ParseAnnotationProperty(text string, ctx *Context) (owl.AnnotationProperty, error) {
	return parseAs(common.NameAnnotationProperty, text, ctx, fromAnnotationProperty)
}

func ParseNamedIndividual(text string, ctx *Context) (owl.NamedIndividual, error) {
	return parseAs(common.NameNamedIndividual, text, ctx, fromNamedIndividual)
}

func ParseAnonymousIndividual(text string, ctx *Context) (owl.AnonymousIndividual, error) {
	return parseAs(common.NameAnonymousIndividual, text, ctx, fromAnonymousIndividual)
}

func ParseClassExpression(text string, ctx *Context) (owl.ClassExpression, error) {
	return parseAs(common.NameClassExpression, text, ctx, fromClassExpression)
}

func ParseDataRange(text string, ctx *Context) (owl.DataRange, error) {
	return parseAs(common.NameDataRange, text, ctx, fromDataRange)
}

func ParseObjectPropertyExpression(text string, ctx *Context) (owl.ObjectPropertyExpression, error) {
	return parseAs(common.NameObjectPropertyExpression, text, ctx, fromObjectPropertyExpression)
}

func ParseIndividual(text string, ctx *Context) (owl.Individual, error) {
	return parseAs(common.NameIndividual, text, ctx, fromIndividual)
}

// ParseDeclaration reads a bare entity such as `Class(ex:A)` and returns
// the declaration of it. Rendering the result writes the full
// `Declaration(...)` form.
func ParseDeclaration(text string, ctx *Context) (owl.Declaration, error) {
	entity, err := parseAs(common.NameEntity, text, ctx, fromEntity)
	if err != nil {
		return owl.Declaration{}, err
	}
	return owl.Declaration{Entity: entity}, nil
}

// ParseAxiom reads any axiom. Its annotations are dropped; use
// ParseAnnotatedAxiom to keep them.
func ParseAxiom(text string, ctx *Context) (owl.Axiom, error) {
	axiom, err := ParseAnnotatedAxiom(text, ctx)
	if err != nil {
		return nil, err
	}
	return axiom.Axiom, nil
}

func ParseAnnotatedAxiom(text string, ctx *Context) (owl.AnnotatedAxiom, error) {
	return parseAs(common.NameAxiom, text, ctx, fromAxiom)
}

// ParseOntology reads an `Ontology(...)` block without prefix declarations.
// Abbreviated IRIs resolve against the prefixes of ctx.
func ParseOntology(text string, ctx *Context) (*owl.Ontology, error) {
	return parseAs(common.NameOntology, text, ctx, fromOntology)
}

// ParseDocument reads a complete ontology document and returns the ontology
// with the prefixes it declared.
func ParseDocument(text string, ctx *Context) (*owl.Ontology, *curie.PrefixMapping, error) {
	doc, err := parseAs(common.NameOntologyDocument, text, ctx, fromOntologyDocument)
	if err != nil {
		return nil, nil, err
	}
	return doc.ontology, doc.prefixes, nil
}

func ParseReader(r io.Reader, ctx *Context) (*owl.Ontology, *curie.PrefixMapping, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, &Error{Kind: KindIO, Message: "cannot read document", Err: err}
	}
	return ParseDocument(string(data), ctx)
}

func ParseFile(path string, ctx *Context) (*owl.Ontology, *curie.PrefixMapping, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, &Error{Kind: KindIO, Value: path, Message: "cannot read document", Err: err}
	}
	return ParseDocument(string(data), ctx)
}

// ParseTree parses text as rule without converting it. The tree is what the
// command line tools print.
func ParseTree(rule, text string) (*common.Node, error) {
	root, err := parser.Parse(rule, text)
	if err != nil {
		return nil, grammarError(err)
	}
	if end := root.Span.EndOffset; !tokenizer.OnlyTrivia(text[end:]) {
		return nil, remainingInput(text, end)
	}
	return root, nil
}
