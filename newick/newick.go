// Package newick reads and writes trees in Newick format.
//
// Only topology and leaf labels are kept: internal node labels and branch
// lengths are accepted on input and discarded. Shapes are written with
// "*" for every leaf.
package newick

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/relab/biotrees/phylo"
)

// ErrSyntax is wrapped by every error returned for malformed input.
var ErrSyntax = errors.New("newick: syntax error")

const special = "()[]',:;"

// String returns t in Newick format, terminated by ';'.
func String[T any](t *phylo.Tree[T]) string {
	return phylo.Render(t, leafText[T], phylo.JoinChildren) + ";"
}

// Write writes t to w in Newick format followed by a newline.
func Write[T any](w io.Writer, t *phylo.Tree[T]) error {
	_, err := io.WriteString(w, String(t)+"\n")
	return err
}

func leafText[T any](label T) string {
	s := fmt.Sprint(label)
	if s != "" && !strings.ContainsAny(s, special) && strings.IndexFunc(s, unicode.IsSpace) < 0 {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// Parse parses a single Newick tree. The terminating ';' is optional.
// Leaves without a label get the empty string.
func Parse(s string) (*phylo.Tree[string], error) {
	p := &parser{in: s}
	p.skipSpace()
	if p.pos == len(p.in) {
		return nil, p.errorf("empty input")
	}
	t, err := p.subtree()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.peek() == ';' {
		p.pos++
		p.skipSpace()
	}
	if p.pos < len(p.in) {
		return nil, p.errorf("unexpected %q after tree", p.in[p.pos])
	}
	return t, nil
}

// ParseShape parses a Newick tree and returns its canonical shape.
func ParseShape(s string) (*phylo.Shape, error) {
	t, err := Parse(s)
	if err != nil {
		return nil, err
	}
	return phylo.CanonicalShape(t), nil
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

type parser struct {
	in  string
	pos int
}

func (p *parser) errorf(format string, args ...any) error {
	return fmt.Errorf("%w at offset %d: %s", ErrSyntax, p.pos, fmt.Sprintf(format, args...))
}

func (p *parser) peek() byte {
	if p.pos < len(p.in) {
		return p.in[p.pos]
	}
	return 0
}

func (p *parser) skipSpace() {
	for p.pos < len(p.in) {
		switch c := p.in[p.pos]; {
		case c == '[':
			// comment
			end := strings.IndexByte(p.in[p.pos:], ']')
			if end < 0 {
				p.pos = len(p.in)
				return
			}
			p.pos += end + 1
		case isSpace(c):
			p.pos++
		default:
			return
		}
	}
}

func (p *parser) subtree() (*phylo.Tree[string], error) {
	p.skipSpace()
	if p.peek() != '(' {
		label, err := p.label()
		if err != nil {
			return nil, err
		}
		if err := p.length(); err != nil {
			return nil, err
		}
		return phylo.Leaf(label), nil
	}
	p.pos++
	var children []*phylo.Tree[string]
	for {
		c, err := p.subtree()
		if err != nil {
			return nil, err
		}
		children = append(children, c)
		p.skipSpace()
		switch p.peek() {
		case ',':
			p.pos++
			continue
		case ')':
			p.pos++
		case 0:
			return nil, p.errorf("unterminated subtree")
		default:
			return nil, p.errorf("unexpected %q in subtree", p.peek())
		}
		break
	}
	// internal node labels are dropped
	if _, err := p.label(); err != nil {
		return nil, err
	}
	if err := p.length(); err != nil {
		return nil, err
	}
	return phylo.Node(children...), nil
}

func (p *parser) label() (string, error) {
	p.skipSpace()
	if p.peek() == '\'' {
		return p.quoted()
	}
	start := p.pos
	for p.pos < len(p.in) {
		c := p.in[p.pos]
		if strings.IndexByte(special, c) >= 0 || isSpace(c) {
			break
		}
		p.pos++
	}
	return p.in[start:p.pos], nil
}

func (p *parser) quoted() (string, error) {
	var b strings.Builder
	p.pos++
	for p.pos < len(p.in) {
		c := p.in[p.pos]
		p.pos++
		if c != '\'' {
			b.WriteByte(c)
			continue
		}
		if p.peek() != '\'' {
			return b.String(), nil
		}
		b.WriteByte('\'')
		p.pos++
	}
	return "", p.errorf("unterminated quoted label")
}

func (p *parser) length() error {
	p.skipSpace()
	if p.peek() != ':' {
		return nil
	}
	p.pos++
	p.skipSpace()
	start := p.pos
	for p.pos < len(p.in) && strings.IndexByte("+-.0123456789eE", p.in[p.pos]) >= 0 {
		p.pos++
	}
	if _, err := strconv.ParseFloat(p.in[start:p.pos], 64); err != nil {
		p.pos = start
		return p.errorf("bad branch length")
	}
	return nil
}
