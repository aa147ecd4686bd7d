// Package tokenizer splits OWL functional-style text into tokens.
package tokenizer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/spicery/owlfn/pkg/common"
	"github.com/spicery/owlfn/pkg/curie"
)

// Tokenizer produces tokens on demand. Input it cannot classify becomes an
// exception token so that the parser decides whether the problem matters.
type Tokenizer struct {
	input  string
	offset int
	line   int
	col    int
}

func NewTokenizer(input string) *Tokenizer {
	return &Tokenizer{input: input, line: 1, col: 1}
}

// Tokenize reads every token of input.
func Tokenize(input string) []*common.Token {
	t := NewTokenizer(input)
	var tokens []*common.Token
	for {
		token := t.Next()
		if token == nil {
			return tokens
		}
		tokens = append(tokens, token)
	}
}

// OnlyTrivia reports whether text holds nothing but whitespace and comments.
func OnlyTrivia(text string) bool {
	t := NewTokenizer(text)
	t.skipTrivia()
	return t.offset >= len(t.input)
}

// Position is the location of the next unread character.
func (t *Tokenizer) Position() common.LineCol {
	return common.LineCol{LineNo: t.line, ColNo: t.col, Offset: t.offset}
}

// Next returns the next token, or nil at the end of input.
func (t *Tokenizer) Next() *common.Token {
	t.skipTrivia()
	if t.offset >= len(t.input) {
		return nil
	}
	start := t.Position()
	r, _ := utf8.DecodeRuneInString(t.input[t.offset:])
	switch {
	case r == '(':
		return t.take(start, 1, common.OpenTokenType)
	case r == ')':
		return t.take(start, 1, common.CloseTokenType)
	case r == '=':
		return t.take(start, 1, common.EqualsTokenType)
	case r == '^':
		if strings.HasPrefix(t.input[t.offset:], "^^") {
			return t.take(start, 2, common.DatatypeMarkType)
		}
		return t.exception(start, 1, "expected '^^'")
	case r == '<':
		return t.readFullIRI(start)
	case r == '"':
		return t.readString(start)
	case r == '@':
		return t.readLanguageTag(start)
	case r == '_' && strings.HasPrefix(t.input[t.offset:], "_:"):
		return t.readNodeID(start)
	case r >= '0' && r <= '9':
		return t.take(start, t.scan(t.offset, isDigit)-t.offset, common.IntegerTokenType)
	case r == ':' || curie.IsNameStartChar(r):
		return t.readName(start)
	default:
		return t.exception(start, utf8.RuneLen(r), "unexpected character")
	}
}

func (t *Tokenizer) skipTrivia() {
	for t.offset < len(t.input) {
		r, size := utf8.DecodeRuneInString(t.input[t.offset:])
		if r == '#' {
			end := strings.IndexByte(t.input[t.offset:], '\n')
			if end < 0 {
				t.advance(len(t.input) - t.offset)
				return
			}
			t.advance(end)
			continue
		}
		if !unicode.IsSpace(r) {
			return
		}
		t.advance(size)
	}
}

// advance moves forward n bytes keeping line and column in step.
func (t *Tokenizer) advance(n int) {
	for _, r := range t.input[t.offset : t.offset+n] {
		if r == '\n' {
			t.line++
			t.col = 1
		} else {
			t.col++
		}
	}
	t.offset += n
}

// scan returns the offset of the first rune at or after from that does not
// satisfy accept.
func (t *Tokenizer) scan(from int, accept func(rune) bool) int {
	i := from
	for i < len(t.input) {
		r, size := utf8.DecodeRuneInString(t.input[i:])
		if !accept(r) {
			break
		}
		i += size
	}
	return i
}

func (t *Tokenizer) take(start common.LineCol, n int, tokenType common.TokenType) *common.Token {
	text := t.input[t.offset : t.offset+n]
	t.advance(n)
	end := t.Position()
	return common.NewToken(text, tokenType, start.Span(end))
}

func (t *Tokenizer) exception(start common.LineCol, n int, reason string) *common.Token {
	text := t.input[t.offset : t.offset+n]
	t.advance(n)
	end := t.Position()
	return common.NewExceptionToken(text, reason, start.Span(end))
}

func (t *Tokenizer) readFullIRI(start common.LineCol) *common.Token {
	end := t.scan(t.offset+1, func(r rune) bool {
		return r != '>' && r != '<' && r != '"' && !unicode.IsSpace(r)
	})
	if end >= len(t.input) || t.input[end] != '>' {
		return t.exception(start, end-t.offset, "unterminated IRI")
	}
	return t.take(start, end+1-t.offset, common.FullIRITokenType)
}

// readString keeps the quotes and escapes in the token text.
func (t *Tokenizer) readString(start common.LineCol) *common.Token {
	i := t.offset + 1
	for i < len(t.input) {
		switch t.input[i] {
		case '\\':
			if i+1 < len(t.input) {
				_, size := utf8.DecodeRuneInString(t.input[i+1:])
				i += 1 + size
				continue
			}
			i++
		case '"':
			return t.take(start, i+1-t.offset, common.StringTokenType)
		default:
			i++
		}
	}
	return t.exception(start, len(t.input)-t.offset, "unterminated string")
}

func (t *Tokenizer) readLanguageTag(start common.LineCol) *common.Token {
	end := t.scan(t.offset+1, isASCIILetter)
	if end == t.offset+1 {
		return t.exception(start, 1, "empty language tag")
	}
	for end < len(t.input) && t.input[end] == '-' {
		next := t.scan(end+1, func(r rune) bool { return isASCIILetter(r) || isDigit(r) })
		if next == end+1 {
			break
		}
		end = next
	}
	return t.take(start, end-t.offset, common.LanguageTagTokenType)
}

func (t *Tokenizer) readNodeID(start common.LineCol) *common.Token {
	end := t.trimDots(t.offset+2, t.scan(t.offset+2, curie.IsNameChar))
	if end == t.offset+2 {
		return t.exception(start, 2, "empty node ID")
	}
	return t.take(start, end-t.offset, common.NodeIDTokenType)
}

// readName reads either a constructor keyword or a prefixed name.
func (t *Tokenizer) readName(start common.LineCol) *common.Token {
	wordEnd := t.scan(t.offset, curie.IsNameChar)
	word := t.input[t.offset:wordEnd]
	if wordEnd >= len(t.input) || t.input[wordEnd] != ':' {
		for _, r := range word {
			if !isASCIILetter(r) {
				return t.exception(start, wordEnd-t.offset, "unexpected name")
			}
		}
		return t.take(start, wordEnd-t.offset, common.KeywordTokenType)
	}
	if !curie.IsPrefixName(word) {
		return t.exception(start, wordEnd+1-t.offset, "invalid prefix name")
	}
	localStart := wordEnd + 1
	localEnd := t.trimDots(localStart, t.scan(localStart, curie.IsLocalChar))
	local := t.input[localStart:localEnd]
	if local != "" && !curie.IsLocalName(local) {
		return t.exception(start, localEnd-t.offset, "invalid local name")
	}
	text := t.input[t.offset:localEnd]
	t.advance(localEnd - t.offset)
	return common.NewPrefixedNameToken(text, word, local, start.Span(t.Position()))
}

// trimDots backs end off over trailing full stops, which never end a name.
func (t *Tokenizer) trimDots(from, end int) int {
	for end > from && t.input[end-1] == '.' {
		end--
	}
	return end
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
