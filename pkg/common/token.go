package common

// TokenType represents the different types of tokens.
type TokenType string

const (
	OpenTokenType        TokenType = "(" // Opening parenthesis
	CloseTokenType       TokenType = ")" // Closing parenthesis
	EqualsTokenType      TokenType = "=" // The '=' of a prefix declaration
	DatatypeMarkType     TokenType = "^" // The '^^' between a literal and its datatype
	FullIRITokenType     TokenType = "I" // <...>
	PrefixedNameType     TokenType = "P" // pfx:local, :local or pfx:
	NodeIDTokenType      TokenType = "B" // _:id
	StringTokenType      TokenType = "s" // Quoted string, Text keeps the quotes
	LanguageTagTokenType TokenType = "@" // @lang, Text keeps the '@'
	IntegerTokenType     TokenType = "n" // Non-negative integer
	KeywordTokenType     TokenType = "K" // Constructor names such as Class or SubClassOf
	ExceptionTokenType   TokenType = "X" // Unrecognised input
)

// Token represents a single token of functional-style source.
type Token struct {
	Text string    `json:"text"`
	Span Span      `json:"span"`
	Type TokenType `json:"type"`

	// For prefixed names only.
	Prefix string `json:"prefix,omitempty"`
	Local  string `json:"local,omitempty"`

	// For exception tokens only.
	Reason string `json:"reason,omitempty"`
}

// NewToken creates a new token with the basic required fields.
func NewToken(text string, tokenType TokenType, span Span) *Token {
	return &Token{
		Text: text,
		Type: tokenType,
		Span: span,
	}
}

// NewPrefixedNameToken creates a token for a prefixed name.
func NewPrefixedNameToken(text, prefix, local string, span Span) *Token {
	return &Token{
		Text:   text,
		Type:   PrefixedNameType,
		Span:   span,
		Prefix: prefix,
		Local:  local,
	}
}

// NewExceptionToken creates a token for input the tokenizer could not classify.
func NewExceptionToken(text, reason string, span Span) *Token {
	return &Token{
		Text:   text,
		Type:   ExceptionTokenType,
		Span:   span,
		Reason: reason,
	}
}

// Is reports whether the token has the given type and text.
func (t *Token) Is(tokenType TokenType, text string) bool {
	return t != nil && t.Type == tokenType && t.Text == text
}

// IsKeyword reports whether the token is the given constructor keyword.
func (t *Token) IsKeyword(keyword string) bool {
	return t.Is(KeywordTokenType, keyword)
}
