package functional

import (
	"io"

	"github.com/spicery/owlfn/pkg/common"
	"github.com/spicery/owlfn/pkg/curie"
	"github.com/spicery/owlfn/pkg/owl"
	"github.com/spicery/owlfn/pkg/parser"
)

// RenderDocument writes the prefix declarations and then the ontology, with
// IRIs abbreviated through prefixes where possible. A nil prefixes writes
// no declarations and full IRIs.
func RenderDocument(w io.Writer, ontology *owl.Ontology, prefixes *curie.PrefixMapping) error {
	r := NewRenderer(w, NewContext(nil, prefixes))
	if prefixes != nil {
		r.prefixes(prefixes)
	}
	r.ontology(ontology)
	return r.err
}

// prefixes writes one `Prefix(name:=<namespace>)` line per mapping.
func (r *Renderer) prefixes(prefixes *curie.PrefixMapping) {
	for _, mapping := range prefixes.Mappings() {
		r.write(parser.KeywordPrefix + "(" + mapping.Name + ":=<" + mapping.Namespace + ">)\n")
	}
}

// ontology writes the header and then one item per line: imports, ontology
// annotations and then the remaining axioms in their listing order.
func (r *Renderer) ontology(ontology *owl.Ontology) {
	if ontology == nil {
		r.fail(ontology)
		return
	}
	r.write(common.NameOntology + "(")
	if ontology.ID.IRI != nil {
		r.iri(*ontology.ID.IRI)
		if ontology.ID.VersionIRI != nil {
			r.write(" ")
			r.iri(*ontology.ID.VersionIRI)
		}
	}
	axioms := ontology.Axioms()
	for _, axiom := range axioms {
		r.write("\n")
		r.render(axiom)
	}
	if len(axioms) > 0 {
		r.write("\n")
	}
	r.write(")")
}
