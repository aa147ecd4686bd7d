package functional

import (
	"github.com/spicery/owlfn/pkg/common"
)

// expect checks that n was produced by one of the given rules.
func expect(n, parent *common.Node, rules ...string) error {
	if n != nil {
		for _, rule := range rules {
			if n.Name == rule {
				return nil
			}
		}
	}
	return mismatch(n, parent, rules...)
}

// unwrap returns the single child of a node produced by rule.
func unwrap(n *common.Node, rule string) (*common.Node, error) {
	if err := expect(n, nil, rule); err != nil {
		return nil, err
	}
	if len(n.Children) != 1 {
		return nil, &Error{Kind: KindGrammar, Span: n.Span, Found: n.Name, Message: "expected exactly one child", Err: ErrRuleMismatch}
	}
	return n.Children[0], nil
}

// reader walks the children of a node in grammar order. The first failure
// sticks and later reads do nothing.
type reader struct {
	ctx  *Context
	node *common.Node
	pos  int
	err  error
}

// newReader starts reading n, first checking it against rules if any.
func newReader(n *common.Node, ctx *Context, rules ...string) *reader {
	r := &reader{ctx: ctx, node: n}
	if len(rules) > 0 {
		r.err = expect(n, nil, rules...)
	} else if n == nil {
		r.err = mismatch(nil, nil)
	}
	return r
}

// more reports whether children remain and nothing has failed.
func (r *reader) more() bool {
	return r.err == nil && r.pos < len(r.node.Children)
}

// peek returns the rule name of the next child, or "".
func (r *reader) peek() string {
	if !r.more() {
		return ""
	}
	return r.node.Children[r.pos].Name
}

func (r *reader) next(rules ...string) *common.Node {
	if r.err != nil {
		return nil
	}
	child := r.node.Child(r.pos)
	if err := expect(child, r.node, rules...); err != nil {
		r.err = err
		return nil
	}
	r.pos++
	return child
}

func (r *reader) fail(err error) {
	if r.err == nil {
		r.err = err
	}
}

// finish returns the first failure, or complains about unread children.
func (r *reader) finish() error {
	if r.err != nil {
		return r.err
	}
	if r.pos < len(r.node.Children) {
		extra := r.node.Children[r.pos]
		return &Error{Kind: KindGrammar, Span: extra.Span, Found: extra.Name, Message: "unexpected child of " + r.node.Name, Err: ErrRuleMismatch}
	}
	return nil
}

type converter[T any] func(*common.Node, *Context) (T, error)

// read converts the next child, which must come from rule.
func read[T any](r *reader, rule string, convert converter[T]) T {
	var zero T
	node := r.next(rule)
	if node == nil {
		return zero
	}
	value, err := convert(node, r.ctx)
	if err != nil {
		r.fail(err)
		return zero
	}
	return value
}

// readAll converts every remaining child.
func readAll[T any](r *reader, rule string, convert converter[T]) []T {
	var values []T
	for r.more() {
		value := read(r, rule, convert)
		if r.err != nil {
			return nil
		}
		values = append(values, value)
	}
	return values
}

// readWhile converts children for as long as they come from rule.
func readWhile[T any](r *reader, rule string, convert converter[T]) []T {
	var values []T
	for r.peek() == rule {
		value := read(r, rule, convert)
		if r.err != nil {
			return nil
		}
		values = append(values, value)
	}
	return values
}

// readList converts the children of the next child, itself from listRule.
func readList[T any](r *reader, listRule, rule string, convert converter[T]) []T {
	node := r.next(listRule)
	if node == nil {
		return nil
	}
	inner := newReader(node, r.ctx)
	values := readAll(inner, rule, convert)
	if err := inner.finish(); err != nil {
		r.fail(err)
		return nil
	}
	return values
}
