package acon

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"
)

// MaxLineSize bounds the length of a single input line.
const MaxLineSize = 1 << 20

// Delimiters recognised as the first word of a line.
const (
	OpenTable  = "{"
	CloseTable = "}"
	OpenArray  = "["
	CloseArray = "]"
	CloseAll   = "$"
)

// =========================
// Public API
// =========================

// Parse reads an ACON document from r and returns its root table. Parsing is
// all or nothing: on error no partial tree is returned. Structural failures
// are reported as *Error; read failures are returned wrapped.
func Parse(r io.Reader) (*Table, error) {
	p := &parser{
		scanner: bufio.NewScanner(r),
		stack:   []frame{{node: NewTable()}},
	}
	p.scanner.Buffer(make([]byte, 0, 64*1024), MaxLineSize)

	for p.scanner.Scan() {
		p.lineNo++
		if err := p.parseLine(p.scanner.Text()); err != nil {
			return nil, err
		}
	}

	if err := p.scanner.Err(); err != nil {
		return nil, fmt.Errorf("acon: reading input: %w", err)
	}

	return p.finish()
}

func ParseString(s string) (*Table, error) {
	return Parse(strings.NewReader(s))
}

func ParseBytes(b []byte) (*Table, error) {
	return Parse(bytes.NewReader(b))
}

// =========================
// Parser Implementation
// =========================

// frame is an open block: the node being filled, the name it will be stored
// under once closed, and the line it was opened on.
type frame struct {
	name string
	node Node
	line int
}

type parser struct {
	scanner *bufio.Scanner
	stack   []frame
	lineNo  int
}

func (p *parser) parseLine(line string) error {
	words := strings.Fields(line)

	if len(words) == 0 {
		switch top := p.top().node.(type) {
		case *Array:
			top.Append(NewString(""))
			return nil
		case *Table:
			return nil
		default:
			return p.errf(InternalInvariantViolation)
		}
	}

	switch words[0] {
	case OpenTable:
		p.push(words, NewTable())
		return nil
	case OpenArray:
		p.push(words, NewArray())
		return nil
	case CloseTable, CloseArray:
		return p.close(words[0])
	case CloseAll:
		return p.closeAll()
	}

	switch top := p.top().node.(type) {
	case *Array:
		top.Append(NewString(strings.Join(words, " ")))
	case *Table:
		key := words[0]
		if top.Has(key) {
			return p.duplicate(key)
		}
		top.Set(key, NewString(strings.Join(words[1:], " ")))
	default:
		return p.errf(InternalInvariantViolation)
	}
	return nil
}

func (p *parser) top() *frame {
	return &p.stack[len(p.stack)-1]
}

func (p *parser) push(words []string, n Node) {
	name := ""
	if len(words) > 1 {
		name = words[1]
	}
	p.stack = append(p.stack, frame{name: name, node: n, line: p.lineNo})
}

func (p *parser) pop() frame {
	f := p.stack[len(p.stack)-1]
	p.stack = p.stack[:len(p.stack)-1]
	return f
}

// close pops the innermost block and merges it into its parent. A closer
// seen while only the root table is open is ExcessiveClosingDelimiter for
// both "}" and "]": the root is never popped, so "]" is not reported as a
// wrong-kind closer of the root.
func (p *parser) close(delim string) error {
	if len(p.stack) == 1 {
		return p.errf(ExcessiveClosingDelimiter)
	}

	f := p.pop()
	switch f.node.(type) {
	case *Table:
		if delim != CloseTable {
			return &Error{Kind: WrongClosingDelimiterKind, Line: p.lineNo, Want: aconKinds.Table}
		}
	case *Array:
		if delim != CloseArray {
			return &Error{Kind: WrongClosingDelimiterKind, Line: p.lineNo, Want: aconKinds.Array}
		}
	default:
		return p.errf(InternalInvariantViolation)
	}

	return p.merge(f)
}

// closeAll merges every open block into its parent, innermost first. The
// root table stays open.
func (p *parser) closeAll() error {
	for len(p.stack) > 1 {
		if err := p.merge(p.pop()); err != nil {
			return err
		}
	}
	return nil
}

// merge attaches a closed frame to the frame now on top of the stack. Named
// blocks inside an array are wrapped in a single-entry table so the name is
// kept while the element stays addressable by index.
func (p *parser) merge(f frame) error {
	switch parent := p.top().node.(type) {
	case *Array:
		if f.name == "" {
			parent.Append(f.node)
			return nil
		}
		wrapper := NewTable()
		wrapper.Set(f.name, f.node)
		parent.Append(wrapper)
	case *Table:
		if parent.Has(f.name) {
			return p.duplicate(f.name)
		}
		parent.Set(f.name, f.node)
	default:
		return p.errf(InternalInvariantViolation)
	}
	return nil
}

func (p *parser) finish() (*Table, error) {
	if len(p.stack) > 1 {
		open := p.top()
		return nil, &Error{Kind: UnterminatedNesting, Want: open.node.Kind(), Opened: open.line}
	}

	root, ok := p.stack[0].node.(*Table)
	if !ok {
		return nil, &Error{Kind: InternalInvariantViolation}
	}
	return root, nil
}

func (p *parser) duplicate(key string) error {
	return &Error{Kind: DuplicateKey, Line: p.lineNo, Key: key}
}

func (p *parser) errf(kind ErrorKind) error {
	return &Error{Kind: kind, Line: p.lineNo}
}
