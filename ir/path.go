package ir

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// PathString renders the path of a node given the names from the top level
// down to it.
func PathString(names []string) string {
	buf := bytes.NewBuffer([]byte{'$'})
	for _, name := range names {
		buf.WriteByte('.')
		buf.WriteString(pathString(name))
	}
	return buf.String()
}

type Path struct {
	IndexAll bool
	Index    *int
	Field    *string
	Subtree  bool
	Next     *Path
}

func (p *Path) String() string {
	buf := bytes.NewBuffer([]byte{'$'})
	x := p
	for x != nil {
		if x.Subtree {
			buf.WriteString("..")
			x = x.Next
			if x != nil && x.Field != nil && !x.Subtree {
				buf.WriteString(pathString(*x.Field))
				x = x.Next
			}
			continue
		}
		if x.IndexAll {
			buf.WriteString("[*]")
			x = x.Next
			continue
		}
		if x.Field != nil {
			buf.WriteString("." + pathString(*x.Field))
			x = x.Next
			continue
		}
		if x.Index != nil {
			fmt.Fprintf(buf, "[%d]", *x.Index)
			x = x.Next
			continue
		}
		x = x.Next
	}
	return buf.String()
}

func ParsePath(p string) (*Path, error) {
	if len(p) == 0 || p[0] != '$' {
		return nil, fmt.Errorf("%w: %q should start with '$'", ErrPath, p)
	}
	root := &Path{}
	if len(p) == 1 {
		return root, nil
	}
	if err := parseFrag(p[1:], root); err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrPath, p, err)
	}
	return root, nil
}

func parseFrag(frag string, parent *Path) error {
	if len(frag) == 0 {
		return nil
	}
	switch frag[0] {
	case '.':
		if len(frag) > 1 && frag[1] == '.' {
			parent.Subtree = true
			rest := frag[2:]
			if len(rest) == 0 {
				return nil
			}
			if rest[0] != '.' && rest[0] != '[' {
				rest = "." + rest
			}
			next := &Path{}
			if err := parseFrag(rest, next); err != nil {
				return err
			}
			parent.Next = next
			return nil
		}
		field, rest, err := parseField(frag[1:])
		if err != nil {
			return err
		}
		parent.Field = &field
		if len(rest) == 0 {
			return nil
		}
		next := &Path{}
		if err := parseFrag(rest, next); err != nil {
			return err
		}
		parent.Next = next
		return nil
	case '[':
		i := strings.IndexByte(frag[1:], ']')
		if i == -1 {
			return fmt.Errorf("expected '[' <index> ']'")
		}
		index, all, err := parseIndex(frag[1 : i+1])
		if err != nil {
			return err
		}
		parent.IndexAll = all
		if !all {
			parent.Index = &index
		}
		if len(frag) == i+2 {
			return nil
		}
		next := &Path{}
		if err := parseFrag(frag[i+2:], next); err != nil {
			return err
		}
		parent.Next = next
		return nil
	default:
		return fmt.Errorf("expected '.' or '['")
	}
}

func parseIndex(is string) (index int, all bool, err error) {
	if len(is) == 1 && is[0] == '*' {
		return 0, true, nil
	}
	u64, err := strconv.ParseUint(is, 10, 32)
	if err != nil {
		return 0, false, err
	}
	return int(u64), false, nil
}

func parseField(frag string) (field, rest string, err error) {
	if len(frag) == 0 {
		return "", "", fmt.Errorf("expected field at end of string")
	}
	if frag[0] != '\'' {
		i := strings.IndexAny(frag, ".[")
		if i == -1 {
			return frag, "", nil
		}
		return frag[:i], frag[i:], nil
	}
	escaped := false
	res := make([]byte, 0, len(frag))
	for i := 1; i < len(frag); i++ {
		c := frag[i]
		switch c {
		case '\\':
			if escaped {
				escaped = false
				res = append(res, c)
				continue
			}
			escaped = true
		case '\'':
			if !escaped {
				return string(res), frag[i+1:], nil
			}
			fallthrough
		default:
			escaped = false
			res = append(res, c)
		}
	}
	return "", "", fmt.Errorf("end of string scanning for \"'\"")
}

func pathString(f string) string {
	if f != "" && strings.IndexAny(f, "'.*$[]\\") == -1 {
		return f
	}
	f = strings.Replace(f, "\\", "\\\\", -1)
	return "'" + strings.Replace(f, "'", "\\'", -1) + "'"
}

// ListPath returns the nodes of the document selected by path.
//
// A field step selects the children with that name, an index step selects
// one node of the current selection and '..' selects every descendant.
// The result shares nodes with the document.
func ListPath(nodes []*Node, path string) ([]*Node, error) {
	yp, err := ParsePath(path)
	if err != nil {
		return nil, err
	}
	return listPath(nodes, yp), nil
}

func listPath(nodes []*Node, yp *Path) []*Node {
	root := &Node{Value: nodes}
	sel := []*Node{root}
	for x := yp; x != nil; x = x.Next {
		switch {
		case x.Subtree:
			var all []*Node
			for _, n := range sel {
				all = append(all, n)
				Walk(n.Value, func(_ []string, d *Node) bool {
					all = append(all, d)
					return true
				})
			}
			sel = all
		case x.IndexAll:
		case x.Index != nil:
			idx := *x.Index
			if idx >= len(sel) {
				return nil
			}
			sel = sel[idx : idx+1]
		case x.Field != nil:
			var next []*Node
			for _, n := range sel {
				for _, c := range n.Value {
					if c.Name == *x.Field {
						next = append(next, c)
					}
				}
			}
			sel = next
		}
	}
	if len(sel) == 1 && sel[0] == root {
		return nodes
	}
	res := sel[:0:0]
	for _, n := range sel {
		if n != root {
			res = append(res, n)
		}
	}
	return res
}

// GetPath returns the first node selected by path. Paths with '..' or
// '[*]' are rejected.
func GetPath(nodes []*Node, path string) (*Node, error) {
	yp, err := ParsePath(path)
	if err != nil {
		return nil, err
	}
	for x := yp; x != nil; x = x.Next {
		if x.Subtree || x.IndexAll {
			return nil, fmt.Errorf("%w: %s", ErrPathGet, path)
		}
	}
	res := listPath(nodes, yp)
	if len(res) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	return res[0], nil
}
