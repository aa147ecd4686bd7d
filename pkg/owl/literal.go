package owl

// Literal is a data value. A literal never carries both a language tag and
// a datatype.
type Literal interface {
	Lexical() string
	isLiteral()
}

// SimpleLiteral has neither language tag nor datatype.
type SimpleLiteral struct {
	Literal string
}

type LanguageLiteral struct {
	Literal string
	Lang    string
}

type DatatypeLiteral struct {
	Literal  string
	Datatype IRI
}

func (l SimpleLiteral) Lexical() string   { return l.Literal }
func (l LanguageLiteral) Lexical() string { return l.Literal }
func (l DatatypeLiteral) Lexical() string { return l.Literal }

func (SimpleLiteral) isLiteral()   {}
func (LanguageLiteral) isLiteral() {}
func (DatatypeLiteral) isLiteral() {}
