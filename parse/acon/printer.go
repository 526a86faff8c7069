package acon

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"unicode"
)

// DefaultIndent is one nesting level in printed output.
const DefaultIndent = "\t"

// Printer renders a tree back into ACON text. Table entries are written in
// key order, so output is deterministic and parses back to an equal tree.
type Printer struct {
	Indent string
}

// Print writes the document rooted at n to w using DefaultIndent.
func Print(w io.Writer, n Node) error {
	return (&Printer{Indent: DefaultIndent}).Fprint(w, n)
}

// Marshal returns the document rooted at n as ACON text.
func Marshal(n Node) ([]byte, error) {
	var buf bytes.Buffer
	if err := Print(&buf, n); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Fprint writes the document rooted at n to w. Only a *Table can be a
// document root; anything else returns ErrRootNotTable.
func (p *Printer) Fprint(w io.Writer, n Node) error {
	t, ok := n.(*Table)
	if !ok {
		return ErrRootNotTable
	}
	pw := &printer{indent: p.Indent}
	if err := pw.table(0, t); err != nil {
		return err
	}
	_, err := w.Write(pw.buf.Bytes())
	return err
}

type printer struct {
	buf    bytes.Buffer
	indent string
}

func (p *printer) line(depth int, s string) {
	if s != "" {
		for i := 0; i < depth; i++ {
			p.buf.WriteString(p.indent)
		}
		p.buf.WriteString(s)
	}
	p.buf.WriteByte('\n')
}

func (p *printer) table(depth int, t *Table) error {
	for _, key := range t.Keys() {
		if err := p.entry(depth, key, t.Items[key]); err != nil {
			return err
		}
	}
	return nil
}

func (p *printer) entry(depth int, key string, n Node) error {
	switch v := n.(type) {
	case *String:
		if key == "" || isDelimiter(key) || strings.ContainsFunc(key, unicode.IsSpace) {
			return fmt.Errorf("acon: key %q cannot hold a string value", key)
		}
		if v.V == "" {
			p.line(depth, key)
		} else {
			p.line(depth, key+" "+v.V)
		}
	case *Table:
		if err := checkName(key); err != nil {
			return err
		}
		p.line(depth, opener(OpenTable, key))
		if err := p.table(depth+1, v); err != nil {
			return err
		}
		p.line(depth, CloseTable)
	case *Array:
		if err := checkName(key); err != nil {
			return err
		}
		p.line(depth, opener(OpenArray, key))
		if err := p.array(depth+1, v); err != nil {
			return err
		}
		p.line(depth, CloseArray)
	default:
		return fmt.Errorf("acon: cannot print %T under key %q", n, key)
	}
	return nil
}

func (p *printer) array(depth int, a *Array) error {
	for _, e := range a.Elems {
		switch v := e.(type) {
		case *String:
			if words := strings.Fields(v.V); len(words) > 0 && isDelimiter(words[0]) {
				return fmt.Errorf("acon: array element %q starts with a delimiter", v.V)
			}
			p.line(depth, v.V)
		case *Table:
			if key, inner, ok := namedBlock(v); ok {
				if err := p.entry(depth, key, inner); err != nil {
					return err
				}
				continue
			}
			p.line(depth, OpenTable)
			if err := p.table(depth+1, v); err != nil {
				return err
			}
			p.line(depth, CloseTable)
		case *Array:
			p.line(depth, OpenArray)
			if err := p.array(depth+1, v); err != nil {
				return err
			}
			p.line(depth, CloseArray)
		default:
			return fmt.Errorf("acon: cannot print %T as an array element", e)
		}
	}
	return nil
}

// namedBlock recognises the single-entry wrapper the parser builds for a
// named block inside an array.
func namedBlock(t *Table) (string, Node, bool) {
	if len(t.Items) != 1 {
		return "", nil, false
	}
	for k, v := range t.Items {
		if k == "" || checkName(k) != nil {
			return "", nil, false
		}
		switch v.(type) {
		case *Table, *Array:
			return k, v, true
		}
	}
	return "", nil, false
}

func opener(delim, name string) string {
	if name == "" {
		return delim
	}
	return delim + " " + name
}

func checkName(name string) error {
	if strings.ContainsFunc(name, unicode.IsSpace) {
		return fmt.Errorf("acon: block name %q contains whitespace", name)
	}
	return nil
}

func isDelimiter(word string) bool {
	switch word {
	case OpenTable, CloseTable, OpenArray, CloseArray, CloseAll:
		return true
	}
	return false
}

