package tree

import (
	"strings"

	"github.com/signadot/tilde-format/tilde/debug"
)

// Drop describes an entry which could not be attached.
type Drop struct {
	// Entry is the 0-based index of the entry in the input.
	Entry  int
	Offset int
	Key    string
	Text   string
	// Last is the offset of the node the attachment was resolved from.
	Last int
}

// node is an entry of the arena. parent is an index into the arena or -1.
type node struct {
	offset   int
	key      string
	text     string
	parent   int
	children group
}

// group holds nodes grouped by key in order of first occurrence. Every
// occurrence is kept.
type group struct {
	keys    []string
	members [][]int
	index   map[string]int
}

func (g *group) add(key string, i int) {
	if j, ok := g.index[key]; ok {
		g.members[j] = append(g.members[j], i)
		return
	}
	if g.index == nil {
		g.index = map[string]int{}
	}
	g.index[key] = len(g.keys)
	g.keys = append(g.keys, key)
	g.members = append(g.members, []int{i})
}

// Builder consumes parser events and builds a tree. It implements
// parse.Handler.
type Builder struct {
	// OnDrop, if set, is called for each dropped entry.
	OnDrop func(Drop)
	// OnError, if set, is called for each syntax error.
	OnError func(row, col int, err error)

	nodes   []node
	root    group
	last    int
	entries int
	drops   []Drop
	errs    []error

	offset int
	key    strings.Builder
	text   strings.Builder
}

func NewBuilder() *Builder {
	return &Builder{last: -1}
}

func (b *Builder) BeginKey(offset int) {
	b.offset = offset
	b.key.Reset()
}

func (b *Builder) KeyChar(r rune) {
	b.key.WriteRune(r)
}

func (b *Builder) EndKey() {}

func (b *Builder) BeginText() {
	b.text.Reset()
}

func (b *Builder) TextChar(r rune) {
	b.text.WriteRune(r)
}

func (b *Builder) NextArraySlot() {
	b.EndText()
	b.BeginText()
}

func (b *Builder) EndText() {
	b.add(b.offset, b.key.String(), b.text.String())
	b.text.Reset()
}

func (b *Builder) Error(row, col int, err error) {
	b.errs = append(b.errs, err)
	if b.OnError != nil {
		b.OnError(row, col, err)
	}
}

// Errors returns the syntax errors received so far.
func (b *Builder) Errors() []error {
	return b.errs
}

// Drops returns the entries dropped so far.
func (b *Builder) Drops() []Drop {
	return b.drops
}

// Entries returns the number of entries received, dropped or not.
func (b *Builder) Entries() int {
	return b.entries
}

func (b *Builder) Reset() {
	b.nodes = b.nodes[:0]
	b.root = group{}
	b.last = -1
	b.entries = 0
	b.drops = nil
	b.errs = nil
	b.offset = 0
	b.key.Reset()
	b.text.Reset()
}

func (b *Builder) add(offset int, key, text string) {
	entry := b.entries
	b.entries++
	i := len(b.nodes)
	if offset == 0 {
		b.nodes = append(b.nodes, node{offset: 0, key: key, text: text, parent: -1})
		b.root.add(key, i)
		b.last = i
		if debug.Build() {
			debug.Logf("build: entry %d %q at top level\n", entry, key)
		}
		return
	}
	parent := b.resolve(offset)
	if parent < 0 {
		d := Drop{Entry: entry, Offset: offset, Key: key, Text: text, Last: -1}
		if b.last >= 0 {
			d.Last = b.nodes[b.last].offset
		}
		b.drops = append(b.drops, d)
		if debug.Drop() {
			debug.Logf("build: dropped entry %d %q offset %x (last offset %x)\n", entry, key, offset, d.Last)
		}
		if b.OnDrop != nil {
			b.OnDrop(d)
		}
		return
	}
	b.nodes = append(b.nodes, node{offset: offset, key: key, text: text, parent: parent})
	b.nodes[parent].children.add(key, i)
	b.last = i
	if debug.Build() {
		debug.Logf("build: entry %d %q offset %x under %q\n", entry, key, offset, b.nodes[parent].key)
	}
}

// resolve finds the parent for a node at offset, starting from the last
// attached node. It returns -1 if there is none.
func (b *Builder) resolve(offset int) int {
	if b.last < 0 {
		return -1
	}
	if offset == b.nodes[b.last].offset+1 {
		return b.last
	}
	for cur := b.last; cur >= 0; cur = b.nodes[cur].parent {
		o := b.nodes[cur].offset
		if o == offset {
			return b.nodes[cur].parent
		}
		if offset > o {
			return -1
		}
	}
	return -1
}
