package common

import (
	"encoding/json"
	"io"
)

func PrintASTJSON(root *Node, indentDelta string, output io.Writer, options *PrintOptions) error {
	encoder := json.NewEncoder(output)
	if indentDelta != "" {
		encoder.SetIndent("", indentDelta)
	}
	return encoder.Encode(displayed(root, options))
}

func ReadASTJSON(input io.Reader) (*Node, error) {
	var root Node
	decoder := json.NewDecoder(input)
	err := decoder.Decode(&root)
	if err != nil {
		return nil, err
	}
	return &root, nil
}
