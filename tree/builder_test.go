package tree

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/tilde-format/tilde/ir"
)

type entry struct {
	offset int
	key    string
	texts  []string
}

func build(b *Builder, entries []entry) {
	for _, e := range entries {
		b.BeginKey(e.offset)
		for _, r := range e.key {
			b.KeyChar(r)
		}
		b.EndKey()
		b.BeginText()
		for i, t := range e.texts {
			if i > 0 {
				b.NextArraySlot()
			}
			for _, r := range t {
				b.TextChar(r)
			}
		}
		b.EndText()
	}
}

type buildTest struct {
	name    string
	entries []entry
	out     []*ir.Node
	drops   int
}

func TestBuild(t *testing.T) {
	bts := []buildTest{
		{
			name: "siblings",
			entries: []entry{
				{0, "a", []string{"x"}},
				{0, "b", []string{"y"}},
			},
			out: []*ir.Node{ir.New("a", "x"), ir.New("b", "y")},
		},
		{
			name: "chain",
			entries: []entry{
				{0, "a", nil},
				{1, "b", nil},
				{2, "c", []string{"z"}},
			},
			out: []*ir.Node{
				ir.New("a").WithValue(ir.New("b").WithValue(ir.New("c", "z"))),
			},
		},
		{
			name: "back to ancestor sibling",
			entries: []entry{
				{0, "a", nil},
				{1, "b", nil},
				{2, "c", nil},
				{1, "d", nil},
			},
			out: []*ir.Node{
				ir.New("a").WithValue(
					ir.New("b").WithValue(ir.New("c")),
					ir.New("d"),
				),
			},
		},
		{
			name: "grouping keeps first occurrence order",
			entries: []entry{
				{0, "a", []string{"1"}},
				{0, "b", []string{"2"}},
				{0, "a", []string{"3"}},
				{1, "c", []string{"4"}},
				{0, "b", []string{"", "5"}},
			},
			out: []*ir.Node{
				ir.New("a", "1", "3").WithValue(ir.New("c", "4")),
				ir.New("b", "2", "5"),
			},
		},
		{
			name: "children of every member concatenated",
			entries: []entry{
				{0, "a", nil},
				{1, "x", []string{"1"}},
				{0, "a", nil},
				{1, "y", []string{"2"}},
				{1, "x", []string{"3"}},
			},
			out: []*ir.Node{
				ir.New("a").WithValue(ir.New("x", "1"), ir.New("y", "2"), ir.New("x", "3")),
			},
		},
		{
			name: "unreachable offset",
			entries: []entry{
				{0, "a", nil},
				{1, "b", nil},
				{0, "c", nil},
				{2, "d", []string{"lost"}},
			},
			out: []*ir.Node{
				ir.New("a").WithValue(ir.New("b")),
				ir.New("c"),
			},
			drops: 1,
		},
		{
			name: "nested before any top level",
			entries: []entry{
				{1, "a", nil},
			},
			out:   []*ir.Node{},
			drops: 1,
		},
	}
	for _, bt := range bts {
		b := NewBuilder()
		build(b, bt.entries)
		if diff := cmp.Diff(bt.out, b.Export()); diff != "" {
			t.Errorf("%s: mismatch (-want +got):\n%s", bt.name, diff)
		}
		if len(b.Drops()) != bt.drops {
			t.Errorf("%s: got %d drops want %d", bt.name, len(b.Drops()), bt.drops)
		}
		if b.Entries() != len(bt.entries)+extraSlots(bt.entries) {
			t.Errorf("%s: got %d entries want %d", bt.name, b.Entries(), len(bt.entries))
		}
	}
}

func extraSlots(entries []entry) int {
	n := 0
	for _, e := range entries {
		if len(e.texts) > 1 {
			n += len(e.texts) - 1
		}
	}
	return n
}

func TestBuilderReset(t *testing.T) {
	b := NewBuilder()
	var dropped []Drop
	b.OnDrop = func(d Drop) { dropped = append(dropped, d) }
	build(b, []entry{{0, "a", nil}, {2, "b", nil}})
	if len(dropped) != 1 || dropped[0].Key != "b" || dropped[0].Last != 0 {
		t.Errorf("got drops %+v", dropped)
	}
	b.Reset()
	build(b, []entry{{0, "c", []string{"d"}}})
	if diff := cmp.Diff([]*ir.Node{ir.New("c", "d")}, b.Export()); diff != "" {
		t.Errorf("mismatch after reset (-want +got):\n%s", diff)
	}
	if len(b.Drops()) != 0 {
		t.Errorf("drops survived reset: %v", b.Drops())
	}
}
