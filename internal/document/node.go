package document

//go:generate go tool stringer -type=NodeKind -output=nodekind_string.go

// NodeKind identifies the variant stored in a Node.
type NodeKind int

const (
	KindInvalid NodeKind = iota
	KindMap
	KindSequence
	KindString
	KindNumber
	KindBool
	KindNull
)

// Pair is a single key/value entry of a map node. Pairs keep the order
// in which keys appeared in the source document.
type Pair struct {
	Key   string
	Value *Node
}

// Node is a tagged variant over the shapes a parsed document can take:
// a map of ordered key/value pairs, a sequence of values, or a scalar.
// Nodes are immutable once built and carry no parent references.
type Node struct {
	kind  NodeKind
	pairs []Pair
	elems []*Node
	str   string
	intv  int64
	fltv  float64
	isInt bool
	boolv bool
}

// NewMap builds a map node from ordered pairs.
func NewMap(pairs ...Pair) *Node { return &Node{kind: KindMap, pairs: pairs} }

// NewSequence builds a sequence node.
func NewSequence(elems ...*Node) *Node { return &Node{kind: KindSequence, elems: elems} }

// NewString builds a string scalar.
func NewString(s string) *Node { return &Node{kind: KindString, str: s} }

// NewInt builds an integer number scalar.
func NewInt(v int64) *Node { return &Node{kind: KindNumber, intv: v, fltv: float64(v), isInt: true} }

// NewFloat builds a floating-point number scalar.
func NewFloat(v float64) *Node { return &Node{kind: KindNumber, fltv: v} }

// NewBool builds a boolean scalar.
func NewBool(v bool) *Node { return &Node{kind: KindBool, boolv: v} }

// NewNull builds a null scalar.
func NewNull() *Node { return &Node{kind: KindNull} }

// Kind returns the variant tag of the node.
func (n *Node) Kind() NodeKind { return n.kind }

// IsContainer reports whether the node is a map or a sequence.
func (n *Node) IsContainer() bool { return n.kind == KindMap || n.kind == KindSequence }

// Pairs returns the ordered key/value pairs of a map node, or nil.
func (n *Node) Pairs() []Pair {
	if n.kind != KindMap {
		return nil
	}
	return n.pairs
}

// Elems returns the elements of a sequence node, or nil.
func (n *Node) Elems() []*Node {
	if n.kind != KindSequence {
		return nil
	}
	return n.elems
}

// Get looks up a key in a map node.
func (n *Node) Get(key string) (*Node, bool) {
	if n.kind != KindMap {
		return nil, false
	}
	for _, p := range n.pairs {
		if p.Key == key {
			return p.Value, true
		}
	}
	return nil, false
}

// Values returns the values of a map node in key order, or the elements
// of a sequence node.
func (n *Node) Values() []*Node {
	switch n.kind {
	case KindMap:
		vals := make([]*Node, len(n.pairs))
		for i, p := range n.pairs {
			vals[i] = p.Value
		}
		return vals
	case KindSequence:
		return n.elems
	}
	return nil
}

// Len returns the number of entries of a container node, 0 otherwise.
func (n *Node) Len() int {
	switch n.kind {
	case KindMap:
		return len(n.pairs)
	case KindSequence:
		return len(n.elems)
	}
	return 0
}

// Str returns the string value of a string scalar.
func (n *Node) Str() (string, bool) {
	if n.kind != KindString {
		return "", false
	}
	return n.str, true
}

// Int returns the value of an integral number scalar.
func (n *Node) Int() (int64, bool) {
	if n.kind != KindNumber || !n.isInt {
		return 0, false
	}
	return n.intv, true
}

// Float returns the value of any number scalar.
func (n *Node) Float() (float64, bool) {
	if n.kind != KindNumber {
		return 0, false
	}
	return n.fltv, true
}

// Bool returns the value of a boolean scalar.
func (n *Node) Bool() (bool, bool) {
	if n.kind != KindBool {
		return false, false
	}
	return n.boolv, true
}
