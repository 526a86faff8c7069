package acon

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// =========================
// AST Definitions
// =========================

type Kind string

var aconKinds = struct {
	Array  Kind
	String Kind
	Table  Kind
}{
	Array:  "array",
	String: "string",
	Table:  "table",
}

// Kinds exposes the node kinds for callers that switch on Node.Kind.
var (
	KindArray  = aconKinds.Array
	KindString = aconKinds.String
	KindTable  = aconKinds.Table
)

// Node is one of *Array, *String or *Table.
//
// Nodes are pointers, so the node returned by Get or Path is a mutable view
// into the tree it was found in.
type Node interface {
	Kind() Kind
	// Get looks up a direct child. Tables look up by key, arrays by base-10
	// index. Strings have no children. Get never panics.
	Get(key string) (Node, bool)
	isNode()
}

// -------- Table --------

type Table struct {
	Items map[string]Node
}

func NewTable() *Table {
	return &Table{Items: make(map[string]Node)}
}

func (*Table) Kind() Kind { return aconKinds.Table }

func (*Table) isNode() {}

func (t *Table) Get(key string) (Node, bool) {
	n, ok := t.Items[key]
	return n, ok
}

func (t *Table) Has(key string) bool {
	_, ok := t.Items[key]
	return ok
}

// Set stores n under key, replacing any previous entry.
func (t *Table) Set(key string, n Node) {
	if t.Items == nil {
		t.Items = make(map[string]Node)
	}
	t.Items[key] = n
}

func (t *Table) Delete(key string) {
	delete(t.Items, key)
}

func (t *Table) Len() int { return len(t.Items) }

// Keys returns the table keys in sorted order. Every consumer that walks a
// table goes through Keys so output stays deterministic.
func (t *Table) Keys() []string {
	keys := make([]string, 0, len(t.Items))
	for k := range t.Items {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// -------- Array --------

type Array struct {
	Elems []Node
}

func NewArray(elems ...Node) *Array {
	return &Array{Elems: elems}
}

func (*Array) Kind() Kind { return aconKinds.Array }

func (*Array) isNode() {}

func (a *Array) Get(key string) (Node, bool) {
	i, err := strconv.ParseUint(key, 10, 0)
	if err != nil || i >= uint64(len(a.Elems)) {
		return nil, false
	}
	return a.Elems[i], true
}

func (a *Array) Append(n Node) {
	a.Elems = append(a.Elems, n)
}

// Set replaces the element at i and reports whether i was in range.
func (a *Array) Set(i int, n Node) bool {
	if i < 0 || i >= len(a.Elems) {
		return false
	}
	a.Elems[i] = n
	return true
}

func (a *Array) Len() int { return len(a.Elems) }

// -------- String --------

type String struct {
	V string
}

func NewString(s string) *String {
	return &String{V: s}
}

func (*String) Kind() Kind { return aconKinds.String }

func (*String) isNode() {}

func (*String) Get(string) (Node, bool) { return nil, false }

func (s *String) Set(v string) { s.V = v }

func (s *String) String() string { return s.V }

// =========================
// Safe Access Helpers
// =========================

// Get walks the already split path segments from root.
func Get(root Node, path ...string) (Node, bool) {
	cur := root
	for _, p := range path {
		if cur == nil {
			return nil, false
		}
		next, ok := cur.Get(p)
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

// Path splits dotted on "." and walks it from root. Empty segments are
// looked up as the empty key, which is where unnamed blocks are stored:
// ".1.message" reads element 1 of the array stored under "".
func Path(root Node, dotted string) (Node, bool) {
	return Get(root, strings.Split(dotted, ".")...)
}

// PathString is Path followed by a string check.
func PathString(root Node, dotted string) (string, bool) {
	n, ok := Path(root, dotted)
	if !ok {
		return "", false
	}
	s, ok := n.(*String)
	if !ok {
		return "", false
	}
	return s.V, true
}

// TypeMismatchError is the panic value of the Must accessors.
type TypeMismatchError struct {
	Want Kind
	Got  Kind
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("acon: value is not %s (got %s)", article(e.Want), e.Got)
}

func article(k Kind) string {
	if k == aconKinds.Array {
		return "an array"
	}
	return "a " + string(k)
}

func kindOf(n Node) Kind {
	if n == nil {
		return "nil"
	}
	return n.Kind()
}

// MustArray panics with a *TypeMismatchError unless n is an array.
func MustArray(n Node) *Array {
	a, ok := n.(*Array)
	if !ok {
		panic(&TypeMismatchError{Want: aconKinds.Array, Got: kindOf(n)})
	}
	return a
}

// MustString panics with a *TypeMismatchError unless n is a string.
func MustString(n Node) string {
	s, ok := n.(*String)
	if !ok {
		panic(&TypeMismatchError{Want: aconKinds.String, Got: kindOf(n)})
	}
	return s.V
}

// MustTable panics with a *TypeMismatchError unless n is a table.
func MustTable(n Node) *Table {
	t, ok := n.(*Table)
	if !ok {
		panic(&TypeMismatchError{Want: aconKinds.Table, Got: kindOf(n)})
	}
	return t
}

// Equal reports whether a and b hold the same structure and strings.
func Equal(a, b Node) bool {
	switch x := a.(type) {
	case *String:
		y, ok := b.(*String)
		return ok && x.V == y.V
	case *Array:
		y, ok := b.(*Array)
		if !ok || len(x.Elems) != len(y.Elems) {
			return false
		}
		for i := range x.Elems {
			if !Equal(x.Elems[i], y.Elems[i]) {
				return false
			}
		}
		return true
	case *Table:
		y, ok := b.(*Table)
		if !ok || len(x.Items) != len(y.Items) {
			return false
		}
		for k, v := range x.Items {
			w, ok := y.Items[k]
			if !ok || !Equal(v, w) {
				return false
			}
		}
		return true
	default:
		return a == nil && b == nil
	}
}
