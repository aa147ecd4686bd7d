package common

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

type LineCol struct {
	LineNo int // The line number, starting at 1
	ColNo  int // The column number, starting at 1
	Offset int // The byte offset into the source, starting at 0
}

type Span struct {
	StartLine   int // The starting line number of the token
	StartColumn int // The starting column number of the token
	EndLine     int // The ending line number of the token
	EndColumn   int // The ending column number of the token
	StartOffset int // The byte offset of the first character
	EndOffset   int // The byte offset just past the last character
}

func (x *Span) SpanString() string {
	return fmt.Sprintf("%d %d %d %d", x.StartLine, x.StartColumn, x.EndLine, x.EndColumn)
}

// Len is the number of source bytes covered by the span.
func (x *Span) Len() int {
	return x.EndOffset - x.StartOffset
}

func (x *LineCol) Span(lineCol LineCol) Span {
	return Span{
		StartLine:   x.LineNo,
		StartColumn: x.ColNo,
		EndLine:     lineCol.LineNo,
		EndColumn:   lineCol.ColNo,
		StartOffset: x.Offset,
		EndOffset:   lineCol.Offset,
	}
}

func (x *Span) ToSpan(y *Span) *Span {
	return &Span{
		StartLine:   x.StartLine,
		StartColumn: x.StartColumn,
		EndLine:     y.EndLine,
		EndColumn:   y.EndColumn,
		StartOffset: x.StartOffset,
		EndOffset:   y.EndOffset,
	}
}

func (x *Span) MergeSpan(y *Span) Span {
	if y == nil {
		return Span{}
	}
	sofar := *x
	if sofar.StartOffset > y.StartOffset {
		sofar.StartLine = y.StartLine
		sofar.StartColumn = y.StartColumn
		sofar.StartOffset = y.StartOffset
	}
	if sofar.EndOffset < y.EndOffset {
		sofar.EndLine = y.EndLine
		sofar.EndColumn = y.EndColumn
		sofar.EndOffset = y.EndOffset
	}
	return sofar
}

// MarshalJSON implements custom JSON marshaling for Span.
func (s Span) MarshalJSON() ([]byte, error) {
	arr := [6]int{s.StartLine, s.StartColumn, s.EndLine, s.EndColumn, s.StartOffset, s.EndOffset}
	return json.Marshal(arr)
}

// UnmarshalJSON implements custom JSON unmarshaling for Span. The offsets are
// optional so that four element spans are still accepted.
func (s *Span) UnmarshalJSON(data []byte) error {
	var arr []int
	if err := json.Unmarshal(data, &arr); err != nil {
		return err
	}
	if len(arr) != 4 && len(arr) != 6 {
		return fmt.Errorf("span must have 4 or 6 elements, found %d", len(arr))
	}
	s.StartLine = arr[0]
	s.StartColumn = arr[1]
	s.EndLine = arr[2]
	s.EndColumn = arr[3]
	if len(arr) == 6 {
		s.StartOffset = arr[4]
		s.EndOffset = arr[5]
	}
	return nil
}

// MarshalYAML renders a span as a flow sequence.
func (s Span) MarshalYAML() (interface{}, error) {
	return []int{s.StartLine, s.StartColumn, s.EndLine, s.EndColumn, s.StartOffset, s.EndOffset}, nil
}

// UnmarshalYAML accepts the same 4 or 6 element sequence as UnmarshalJSON.
func (s *Span) UnmarshalYAML(value *yaml.Node) error {
	var arr []int
	if err := value.Decode(&arr); err != nil {
		return err
	}
	data, err := json.Marshal(arr)
	if err != nil {
		return err
	}
	return s.UnmarshalJSON(data)
}

// LineColAt returns the position of the given byte offset of text. Columns
// count runes.
func LineColAt(text string, offset int) LineCol {
	pos := LineCol{LineNo: 1, ColNo: 1}
	for i, r := range text {
		if i >= offset {
			break
		}
		if r == '\n' {
			pos.LineNo++
			pos.ColNo = 1
		} else {
			pos.ColNo++
		}
	}
	pos.Offset = offset
	return pos
}
