package common

import (
	"fmt"
	"io"
	"sort"

	asciitree "github.com/thediveo/go-asciitree"
)

type AsciiNode struct {
	Label    string      `asciitree:"label"`
	Props    []string    `asciitree:"properties"`
	Children []AsciiNode `asciitree:"children"`
}

func convertToTree(n *Node, options *PrintOptions) AsciiNode {
	sortedKeys := make([]string, 0, len(n.Options))
	for key := range n.Options {
		sortedKeys = append(sortedKeys, key)
	}
	sort.Strings(sortedKeys)

	var props []string
	for _, key := range sortedKeys {
		value := TrimValue(key, n.Options[key], options.TrimTokenOnOutput)
		props = append(props, fmt.Sprintf("%s: %s", key, value))
	}
	if options.IncludeSpans {
		props = append(props, fmt.Sprintf("%s: %s", OptionSpan, n.Span.SpanString()))
	}

	var children []AsciiNode
	for _, child := range n.Children {
		children = append(children, convertToTree(child, options))
	}
	return AsciiNode{
		Label:    n.Name,
		Props:    props,
		Children: children,
	}
}

func PrintASTAsciiTree(root *Node, indentDelta string, output io.Writer, options *PrintOptions) error {
	if options == nil {
		options = DefaultPrintOptions()
	}
	_, err := fmt.Fprintln(output, asciitree.RenderFancy(convertToTree(root, options)))
	return err
}
