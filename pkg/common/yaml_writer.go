package common

import (
	"io"

	"gopkg.in/yaml.v3"
)

func PrintASTYAML(root *Node, indentDelta string, output io.Writer, options *PrintOptions) error {
	encoder := yaml.NewEncoder(output)
	indent := len(indentDelta)
	if options != nil && options.Indent > 0 {
		indent = options.Indent
	}
	if indent > 0 {
		encoder.SetIndent(indent)
	}
	if err := encoder.Encode(displayed(root, options)); err != nil {
		return err
	}
	return encoder.Close()
}

func ReadASTYAML(input io.Reader) (*Node, error) {
	var root Node
	if err := yaml.NewDecoder(input).Decode(&root); err != nil {
		return nil, err
	}
	return &root, nil
}
