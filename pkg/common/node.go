package common

import (
	"fmt"
	"io"
	"strings"
)

// Node is a rule-tagged parse tree node. Name holds the grammar production
// that matched, Span the source it covers.
type Node struct {
	Name     string            `json:"name" yaml:"name"`                           // The production rule of the node
	Span     Span              `json:"span" yaml:"span,flow"`                      // The span of the node in the source
	Options  map[string]string `json:"options,omitempty" yaml:"options,omitempty"` // Attributes (name-value pairs)
	Children []*Node           `json:"children,omitempty" yaml:"children,omitempty"`
}

const OptionValue = "value"
const OptionPrefix = "prefix"
const OptionLocal = "local"
const OptionSpan = "span"

// TrimValue trims a token value to at most trimLength characters when
// trimming is enabled.
func TrimValue(key, value string, trimLength int) string {
	if key != OptionValue || trimLength <= 0 {
		return value
	}
	runes := []rune(value)
	if len(runes) <= trimLength {
		return value
	}
	// Reserve space for Unicode ellipsis (1 character: "…")
	if trimLength >= 2 {
		return string(runes[:trimLength-1]) + "…"
	}
	// If trim length is too small for ellipsis, just truncate
	return string(runes[:trimLength])
}

// PrintFunc writes a tree to output in some display format.
type PrintFunc func(root *Node, indentDelta string, output io.Writer, options *PrintOptions) error

// PickPrintFunc returns the printer for a format name, case insensitively.
func PickPrintFunc(format string) (PrintFunc, error) {
	switch strings.ToUpper(format) {
	case "JSON":
		return PrintASTJSON, nil
	case "YAML":
		return PrintASTYAML, nil
	case "ASCIITREE":
		return PrintASTAsciiTree, nil
	case "DOT":
		return PrintASTDOT, nil
	default:
		return nil, fmt.Errorf("unknown format: %s", format)
	}
}

// Value returns the leaf text of a node.
func (n *Node) Value() string {
	return n.Options[OptionValue]
}

// Child returns the i-th child or nil when there are not enough children.
func (n *Node) Child(i int) *Node {
	if i < 0 || i >= len(n.Children) {
		return nil
	}
	return n.Children[i]
}

func (n *Node) UpdateSpan() {
	if len(n.Children) > 0 {
		span := n.Children[0].Span
		for _, child := range n.Children[1:] {
			span = span.MergeSpan(&child.Span)
		}
		n.Span = span
	}
}

// plainNode is a Node without its span, written when spans are suppressed.
type plainNode struct {
	Name     string            `json:"name" yaml:"name"`
	Options  map[string]string `json:"options,omitempty" yaml:"options,omitempty"`
	Children []*plainNode      `json:"children,omitempty" yaml:"children,omitempty"`
}

func withoutSpans(n *Node) *plainNode {
	plain := &plainNode{Name: n.Name, Options: n.Options}
	for _, child := range n.Children {
		plain.Children = append(plain.Children, withoutSpans(child))
	}
	return plain
}

// displayed picks what the JSON and YAML printers encode.
func displayed(root *Node, options *PrintOptions) interface{} {
	if options == nil || options.IncludeSpans {
		return root
	}
	return withoutSpans(root)
}
