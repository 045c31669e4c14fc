package document

import (
	"fmt"
	"iter"
	"regexp"
)

// Matcher decides whether a map node is a query hit. Matchers only
// inspect map nodes; sequences are always descended into element-wise.
type Matcher interface {
	Match(n *Node) bool
}

// MatcherFunc adapts a plain function to the Matcher interface.
type MatcherFunc func(n *Node) bool

func (f MatcherFunc) Match(n *Node) bool { return f(n) }

// compilePrefix compiles a pattern anchored at the start of the
// candidate string. A pattern matches any candidate it is a prefix of:
// "foo" matches "foobar" but not "xfoobar".
func compilePrefix(pattern string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(`\A(?:` + pattern + `)`)
	if err != nil {
		return nil, fmt.Errorf("compiling pattern %q: %w", pattern, err)
	}
	return re, nil
}

type keyOrValueMatcher struct {
	re *regexp.Regexp
}

// KeyOrValueMatch builds a matcher that hits a map node when any key
// name, or any string-typed value, matches the pattern as a prefix.
func KeyOrValueMatch(pattern string) (Matcher, error) {
	re, err := compilePrefix(pattern)
	if err != nil {
		return nil, err
	}
	return &keyOrValueMatcher{re: re}, nil
}

func (m *keyOrValueMatcher) Match(n *Node) bool {
	for _, p := range n.Pairs() {
		if m.re.MatchString(p.Key) {
			return true
		}
		if s, ok := p.Value.Str(); ok && m.re.MatchString(s) {
			return true
		}
	}
	return false
}

type fieldValueMatcher struct {
	field string
	re    *regexp.Regexp
}

// FieldValueMatch builds a matcher that hits a map node when the named
// field is present and its value matches the pattern as a prefix. The
// value may be a string or a list containing a matching string.
func FieldValueMatch(field, pattern string) (Matcher, error) {
	re, err := compilePrefix(pattern)
	if err != nil {
		return nil, err
	}
	return &fieldValueMatcher{field: field, re: re}, nil
}

func (m *fieldValueMatcher) Match(n *Node) bool {
	v, ok := n.Get(m.field)
	if !ok {
		return false
	}
	if s, ok := v.Str(); ok {
		return m.re.MatchString(s)
	}
	for _, e := range v.Elems() {
		if s, ok := e.Str(); ok && m.re.MatchString(s) {
			return true
		}
	}
	return false
}

// Select returns the matching nodes of a pre-order, depth-first walk of
// the tree as a lazy sequence. A matching node is yielded whole and its
// children are not searched further. The sequence is finite and
// restartable: ranging over it again reproduces the same matches.
func Select(root *Node, m Matcher) iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		selectWalk(root, m, yield)
	}
}

func selectWalk(n *Node, m Matcher, yield func(*Node) bool) bool {
	switch n.Kind() {
	case KindMap:
		if m.Match(n) {
			return yield(n)
		}
		for _, p := range n.Pairs() {
			if !selectWalk(p.Value, m, yield) {
				return false
			}
		}
	case KindSequence:
		for _, e := range n.Elems() {
			if !selectWalk(e, m, yield) {
				return false
			}
		}
	}
	return true
}

// First returns the first match of Select, if any.
func First(root *Node, m Matcher) (*Node, bool) {
	for n := range Select(root, m) {
		return n, true
	}
	return nil, false
}

// Walk yields every container node of the tree in pre-order, the
// container itself before its children, without pruning. Scalar leaves
// are not yielded.
func Walk(root *Node) iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		walkAll(root, yield)
	}
}

func walkAll(n *Node, yield func(*Node) bool) bool {
	switch n.Kind() {
	case KindMap:
		if !yield(n) {
			return false
		}
		for _, p := range n.Pairs() {
			if !walkAll(p.Value, yield) {
				return false
			}
		}
	case KindSequence:
		if !yield(n) {
			return false
		}
		for _, e := range n.Elems() {
			if !walkAll(e, yield) {
				return false
			}
		}
	}
	return true
}
