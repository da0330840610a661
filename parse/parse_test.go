package parse

import (
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/tilde-format/tilde/ir"
	"github.com/signadot/tilde-format/tilde/token"
	"github.com/signadot/tilde-format/tilde/tree"
)

const example = `#optional header line
#another header line
0~a:a
+a
|b
|c
0~b:a
1~a
2~a:b
0~c:
|
|cc
|
`

func exampleNodes() []*ir.Node {
	return []*ir.Node{
		ir.New("a", "a", "a\nb\nc"),
		ir.New("b", "a").WithValue(
			ir.New("a").WithValue(ir.New("a", "b")),
		),
		ir.New("c", "\n\ncc\n"),
	}
}

type parseTest struct {
	in  string
	out []*ir.Node
	err error
}

func TestParse(t *testing.T) {
	pts := []parseTest{
		{
			in:  example,
			out: exampleNodes(),
		},
		{
			in:  "0~a:\n|a\n|\n|b",
			out: []*ir.Node{ir.New("a", "\na\n\nb")},
		},
		{
			in:  "0~a:a\n|\n|b",
			out: []*ir.Node{ir.New("a", "a\n\nb")},
		},
		{
			in:  "0~k:\n+x\n+y",
			out: []*ir.Node{ir.New("k", "x", "y")},
		},
		{
			in:  "0~a\\:b:c",
			out: []*ir.Node{ir.New("a:b", "c")},
		},
		{
			in:  "0~a\\\\b:c",
			out: []*ir.Node{ir.New(`a\b`, "c")},
		},
		{
			in:  "0~a\\\n0~b:c",
			out: []*ir.Node{ir.New("a"), ir.New("b", "c")},
		},
		{
			in:  "0~a:x\r\n  |y\r\n0~b:z",
			out: []*ir.Node{ir.New("a", "x\r\ny"), ir.New("b", "z")},
		},
		{
			in:  "0~a:x\n\r|y\n\r0~b:z",
			out: []*ir.Node{ir.New("a", "x\n\ry"), ir.New("b", "z")},
		},
		{
			in:  "0~a:x\n\n\n0~b:y",
			out: []*ir.Node{ir.New("a", "x"), ir.New("b", "y")},
		},
		{
			in:  "0~a:x\n0~a:y\n1~c:z",
			out: []*ir.Node{ir.New("a", "x", "y").WithValue(ir.New("c", "z"))},
		},
		{
			in:  "0~a:x\n3~b:y\n0~c:z",
			out: []*ir.Node{ir.New("a", "x"), ir.New("c", "z")},
			err: token.ErrDepth,
		},
		{
			in:  "0~a:x\nzz\n0~c:z",
			out: []*ir.Node{ir.New("a", "x"), ir.New("c", "z")},
			err: token.ErrMarker,
		},
		{
			in:  "\n0~a:x",
			out: []*ir.Node{ir.New("a", "x")},
			err: token.ErrPlacement,
		},
		{
			in:  "",
			out: []*ir.Node{},
		},
	}
	for _, pt := range pts {
		nodes, err := ParseString(pt.in)
		if pt.err == nil && err != nil {
			t.Errorf("%q: unexpected error %v", pt.in, err)
		}
		if pt.err != nil && !errors.Is(err, pt.err) {
			t.Errorf("%q: got error %v want %v", pt.in, err, pt.err)
		}
		if diff := cmp.Diff(pt.out, nodes); diff != "" {
			t.Errorf("%q: nodes mismatch (-want +got):\n%s", pt.in, diff)
		}
	}
}

func TestParseErrorPosition(t *testing.T) {
	var seen []*token.SyntaxError
	_, err := Parse([]byte("0~a:x\n1~b:y\n3~c:z\n1~d:w"),
		ParseErrorFunc(func(se *token.SyntaxError) { seen = append(seen, se) }),
		ParseFilename("x.tilde"))
	var list ErrorList
	if !errors.As(err, &list) {
		t.Fatalf("got %T want ErrorList", err)
	}
	if len(list) != 1 || len(seen) != 1 {
		t.Fatalf("got %d errors, %d reported, want 1", len(list), len(seen))
	}
	se := list[0]
	if se.Row != 3 || se.Col != 2 {
		t.Errorf("got %s want line=3, col=2", se.Pos)
	}
	if !strings.HasPrefix(se.Error(), "x.tilde: ") {
		t.Errorf("missing filename in %q", se.Error())
	}
}

func TestParseStrict(t *testing.T) {
	nodes, err := ParseString("0~a:x\n5~b", ParseStrict())
	if !errors.Is(err, token.ErrDepth) {
		t.Errorf("got error %v want %v", err, token.ErrDepth)
	}
	if nodes != nil {
		t.Errorf("got nodes %v in strict mode", nodes)
	}
}

func TestParseHeader(t *testing.T) {
	var h []string
	nodes, err := ParseString(example, ParseHeader(&h))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"optional header line", "another header line"}, h); diff != "" {
		t.Errorf("header mismatch (-want +got):\n%s", diff)
	}
	if len(nodes) != 3 {
		t.Errorf("got %d nodes want 3", len(nodes))
	}

	h = nil
	if _, err := ParseString("##x\n#\n", ParseHeader(&h)); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"x", ""}, h); diff != "" {
		t.Errorf("header mismatch (-want +got):\n%s", diff)
	}
}

func TestParseHeaderBlankLines(t *testing.T) {
	for _, in := range []string{"#a\n\n#b\n0~x:y", "#a\r\n\r\n#b\r\n\r\n0~x:y"} {
		var h []string
		nodes, err := ParseString(in, ParseHeader(&h))
		if err != nil {
			t.Fatalf("%q: %v", in, err)
		}
		if diff := cmp.Diff([]string{"a", "b"}, h); diff != "" {
			t.Errorf("%q: header mismatch (-want +got):\n%s", in, diff)
		}
		if diff := cmp.Diff([]*ir.Node{ir.New("x", "y")}, nodes); diff != "" {
			t.Errorf("%q: nodes mismatch (-want +got):\n%s", in, diff)
		}
	}
}

func TestParseDrop(t *testing.T) {
	var drops []tree.Drop
	nodes, err := ParseString("0~a:x\n1~b:y\n0~c:z\n2~d:w\n1~e:v",
		ParseDropFunc(func(d tree.Drop) { drops = append(drops, d) }))
	if err != nil {
		t.Fatalf("drop reported as syntax error: %v", err)
	}
	want := []tree.Drop{{Entry: 3, Offset: 2, Key: "d", Text: "w", Last: 0}}
	if diff := cmp.Diff(want, drops); diff != "" {
		t.Errorf("drops mismatch (-want +got):\n%s", diff)
	}
	wantNodes := []*ir.Node{
		ir.New("a", "x").WithValue(ir.New("b", "y")),
		ir.New("c", "z").WithValue(ir.New("e", "v")),
	}
	if diff := cmp.Diff(wantNodes, nodes); diff != "" {
		t.Errorf("nodes mismatch (-want +got):\n%s", diff)
	}
}

func TestParseReader(t *testing.T) {
	nodes, err := ParseReader(iotest.OneByteReader(strings.NewReader(example)))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(exampleNodes(), nodes); diff != "" {
		t.Errorf("nodes mismatch (-want +got):\n%s", diff)
	}
	_, err = ParseReader(iotest.ErrReader(io.ErrUnexpectedEOF))
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("got error %v want %v", err, io.ErrUnexpectedEOF)
	}
}
