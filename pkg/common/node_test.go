package common

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTree() *Node {
	iri := &Node{
		Name:    NameFullIRI,
		Span:    Span{1, 7, 1, 29, 6, 28},
		Options: map[string]string{OptionValue: "http://example.com/A"},
	}
	class := &Node{Name: NameClass, Span: Span{1, 7, 1, 29, 6, 28}, Children: []*Node{iri}}
	return &Node{Name: NameEntity, Span: Span{1, 1, 1, 30, 0, 29}, Children: []*Node{class}}
}

func TestPickPrintFunc(t *testing.T) {
	for _, format := range []string{"json", "YAML", "AsciiTree", "dot"} {
		_, err := PickPrintFunc(format)
		assert.NoError(t, err, format)
	}
	_, err := PickPrintFunc("xml")
	assert.EqualError(t, err, "unknown format: xml")
}

func TestJSONRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintASTJSON(sampleTree(), "  ", &buf, DefaultPrintOptions()))
	assert.Contains(t, buf.String(), `"span": [`)

	root, err := ReadASTJSON(&buf)
	require.NoError(t, err)
	assert.Equal(t, sampleTree(), root)
}

func TestYAMLRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintASTYAML(sampleTree(), "  ", &buf, DefaultPrintOptions()))

	root, err := ReadASTYAML(&buf)
	require.NoError(t, err)
	assert.Equal(t, sampleTree(), root)
}

func TestSuppressedSpans(t *testing.T) {
	options := DefaultPrintOptions()
	options.IncludeSpans = false

	var buf bytes.Buffer
	require.NoError(t, PrintASTJSON(sampleTree(), "", &buf, options))
	assert.NotContains(t, buf.String(), "span")
	assert.Contains(t, buf.String(), "http://example.com/A")

	buf.Reset()
	require.NoError(t, PrintASTAsciiTree(sampleTree(), "", &buf, options))
	assert.NotContains(t, buf.String(), OptionSpan+":")
}

func TestAsciiTreeTrimsValues(t *testing.T) {
	options := DefaultPrintOptions()
	options.TrimTokenOnOutput = 8

	var buf bytes.Buffer
	require.NoError(t, PrintASTAsciiTree(sampleTree(), "", &buf, options))
	out := buf.String()
	assert.Contains(t, out, NameEntity)
	assert.Contains(t, out, "value: http://…")
	assert.Contains(t, out, "span: 1 1 1 30")
}

func TestDOTEscapes(t *testing.T) {
	root := &Node{Name: NameLiteral, Options: map[string]string{OptionValue: `"a\b"`}}
	var buf bytes.Buffer
	require.NoError(t, PrintASTDOT(root, "", &buf, nil))
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "digraph G {"))
	assert.Contains(t, out, `label="Literal: \"a\\b\""`)
}

func TestTrimValue(t *testing.T) {
	assert.Equal(t, "abc…", TrimValue(OptionValue, "abcdefg", 4))
	assert.Equal(t, "a", TrimValue(OptionValue, "abcdefg", 1))
	assert.Equal(t, "abcdefg", TrimValue(OptionPrefix, "abcdefg", 4))
	assert.Equal(t, "abcdefg", TrimValue(OptionValue, "abcdefg", 0))
}

func TestUpdateSpan(t *testing.T) {
	node := &Node{Children: []*Node{
		{Span: Span{2, 3, 2, 5, 12, 14}},
		{Span: Span{1, 4, 1, 6, 3, 5}},
	}}
	node.UpdateSpan()
	assert.Equal(t, Span{1, 4, 2, 5, 3, 14}, node.Span)
	assert.Equal(t, 11, node.Span.Len())
}

func TestLineColAt(t *testing.T) {
	text := "ab\nçd e"
	assert.Equal(t, LineCol{LineNo: 1, ColNo: 1, Offset: 0}, LineColAt(text, 0))
	assert.Equal(t, LineCol{LineNo: 2, ColNo: 1, Offset: 3}, LineColAt(text, 3))
	// ç is two bytes but one column.
	assert.Equal(t, LineCol{LineNo: 2, ColNo: 4, Offset: 7}, LineColAt(text, 7))
}

func TestShortSpanJSON(t *testing.T) {
	var span Span
	require.NoError(t, span.UnmarshalJSON([]byte("[1,2,3,4]")))
	assert.Equal(t, Span{StartLine: 1, StartColumn: 2, EndLine: 3, EndColumn: 4}, span)
	assert.Error(t, span.UnmarshalJSON([]byte("[1,2,3]")))
}

func TestTrimValueKeepsRunesWhole(t *testing.T) {
	assert.Equal(t, "çà…", TrimValue(OptionValue, "çàéèù", 3))
	assert.Equal(t, "ç", TrimValue(OptionValue, "çàéèù", 1))
	assert.Equal(t, "çàé", TrimValue(OptionValue, "çàé", 3))
}
