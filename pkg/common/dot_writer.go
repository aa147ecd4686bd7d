package common

import (
	"fmt"
	"io"
	"strings"
)

func PrintASTDOT(root *Node, indentDelta string, output io.Writer, options *PrintOptions) error {
	if options == nil {
		options = DefaultPrintOptions()
	}
	w := &dotWriter{output: output, options: options}
	w.println(`digraph G {`)
	w.println(`  bgcolor="transparent";`)
	w.println(`  node [shape="box", style="filled", fontname="Ubuntu Mono"];`)
	w.printNode(root, "")
	w.println(`}`)
	return w.err
}

// dotWriter remembers the first write error so the recursion stays simple.
type dotWriter struct {
	output  io.Writer
	options *PrintOptions
	count   int
	err     error
}

func (w *dotWriter) println(line string) {
	if w.err == nil {
		_, w.err = fmt.Fprintln(w.output, line)
	}
}

func (w *dotWriter) printNode(node *Node, parentID string) {
	w.count++
	nodeID := fmt.Sprintf("node_%d", w.count)

	label := node.Name
	if value, exists := node.Options[OptionValue]; exists {
		trimmedValue := TrimValue(OptionValue, value, w.options.TrimTokenOnOutput)
		label = fmt.Sprintf("%s: %s", node.Name, escapeDOTValue(trimmedValue))
	} else if prefix, exists := node.Options[OptionPrefix]; exists {
		label = fmt.Sprintf("%s: %s", node.Name, escapeDOTValue(prefix))
	}

	fillColor := tagColors[node.Name]
	if fillColor == "" {
		fillColor = "lightgray"
	}

	w.println(fmt.Sprintf("  \"%s\" [label=\"%s\", shape=\"box\", fillcolor=\"%s\"];", nodeID, label, fillColor))
	if parentID != "" {
		w.println(fmt.Sprintf("  \"%s\" -> \"%s\";", parentID, nodeID))
	}
	for _, child := range node.Children {
		w.printNode(child, nodeID)
	}
}

func escapeDOTValue(value string) string {
	value = strings.ReplaceAll(value, `\`, `\\`)
	return strings.ReplaceAll(value, `"`, `\"`)
}

var tagColors = map[string]string{
	NameOntology:           "lightpink",
	NameAxioms:             "#FFD8E1",
	NameClassExpression:    "lightgreen",
	NameFullIRI:            "Honeydew",
	NameAbbreviatedIRI:     "Honeydew",
	NameAnnotations:        "PaleTurquoise",
	NameDataRange:          "#C0FFC0",
	NameLiteral:            "lightgoldenrodyellow",
	NameNonNegativeInteger: "lightgoldenrodyellow",
}
