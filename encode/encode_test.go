package encode_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/tilde-format/tilde/encode"
	"github.com/signadot/tilde-format/tilde/format"
	"github.com/signadot/tilde-format/tilde/ir"
	"github.com/signadot/tilde-format/tilde/parse"
)

const example = "0~a:a\n+a\n|b\n|c\n0~b:a\n1~a\n2~a:b\n0~c:\n|\n|cc\n|\n"

func TestEncodeExample(t *testing.T) {
	nodes, err := parse.ParseString(example)
	if err != nil {
		t.Fatal(err)
	}
	if got := encode.MustString(nodes); got != example {
		t.Errorf("got %q want %q", got, example)
	}
}

type roundTripTest struct {
	in  []*ir.Node
	out string
}

func TestEncodeRoundTrip(t *testing.T) {
	rts := []roundTripTest{
		{
			in:  []*ir.Node{ir.New("a:b", "c")},
			out: "0~a\\:b:c\n",
		},
		{
			in:  []*ir.Node{ir.New(`a\`, "c")},
			out: "0~a\\\\:c\n",
		},
		{
			in:  []*ir.Node{ir.New("k", "x\r\ny", "z\n")},
			out: "0~k:x\r\n|y\n+z\n|\n",
		},
		{
			in:  []*ir.Node{ir.New("k", " lead", "|bar", "+plus")},
			out: "0~k: lead\n+|bar\n++plus\n",
		},
		{
			in: []*ir.Node{
				ir.New("a").WithValue(
					ir.New("b").WithValue(ir.New("c", "1")),
					ir.New("d", "2"),
				),
				ir.New("e"),
			},
			out: "0~a\n1~b\n2~c:1\n1~d:2\n0~e\n",
		},
	}
	for _, rt := range rts {
		got := encode.MustString(rt.in)
		if got != rt.out {
			t.Errorf("got %q want %q", got, rt.out)
			continue
		}
		back, err := parse.ParseString(got)
		if err != nil {
			t.Errorf("%q: %v", got, err)
			continue
		}
		if diff := cmp.Diff(rt.in, back); diff != "" {
			t.Errorf("%q: round trip mismatch (-want +got):\n%s", got, diff)
		}
	}
}

func TestEncodeDeep(t *testing.T) {
	n := ir.New("x", "bottom")
	for i := 0; i < 20; i++ {
		n = ir.New("x").WithValue(n)
	}
	d := encode.MustString([]*ir.Node{n})
	if !strings.Contains(d, "\n14~x:bottom\n") {
		t.Errorf("missing hex offset in %q", d)
	}
	back, err := parse.ParseString(d)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]*ir.Node{n}, back); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestEncodeUnencodable(t *testing.T) {
	bad := [][]*ir.Node{
		{ir.New("")},
		{ir.New("a\nb", "c")},
		{ir.New("a").WithValue(ir.New("x\ry"))},
	}
	for _, nodes := range bad {
		err := encode.Encode(nodes, &bytes.Buffer{})
		if !errors.Is(err, encode.ErrUnencodable) {
			t.Errorf("%q: got error %v want %v", nodes[0].Name, err, encode.ErrUnencodable)
		}
	}
	err := encode.Encode(nil, &bytes.Buffer{}, encode.EncodeHeader([]string{"a\nb"}))
	if !errors.Is(err, encode.ErrUnencodable) {
		t.Errorf("header: got error %v want %v", err, encode.ErrUnencodable)
	}
}

func TestEncodeHeader(t *testing.T) {
	var h []string
	nodes, err := parse.ParseString("#one\n#two\n0~a:b\n", parse.ParseHeader(&h))
	if err != nil {
		t.Fatal(err)
	}
	got := encode.MustString(nodes, encode.EncodeHeader(h))
	if want := "#one\n#two\n0~a:b\n"; got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestEncodeColors(t *testing.T) {
	colors := encode.NewColors()
	colors.Map = map[encode.ColorAttr]func(string, ...any) string{
		encode.KeyColor: func(s string, _ ...any) string { return "<" + s + ">" },
	}
	got := encode.MustString([]*ir.Node{ir.New("a:b", "c")}, encode.EncodeColors(colors))
	if want := "0~<a>\\:<b>:c\n"; got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestEncodeFormats(t *testing.T) {
	nodes, err := parse.ParseString(example)
	if err != nil {
		t.Fatal(err)
	}
	for _, f := range []format.Format{format.JSONFormat, format.YAMLFormat} {
		d := encode.MustString(nodes, encode.EncodeFormat(f))
		back, err := encode.Decode([]byte(d), f)
		if err != nil {
			t.Errorf("%s: %v\n%s", f, err, d)
			continue
		}
		if diff := cmp.Diff(nodes, back); diff != "" {
			t.Errorf("%s: mismatch (-want +got):\n%s", f, diff)
		}
	}
	m := encode.MustString(nodes, encode.EncodeFormat(format.MapFormat), encode.EncodeMapSep("/"))
	if !strings.Contains(m, "b/a/a:") {
		t.Errorf("missing b/a/a in map output:\n%s", m)
	}
	if _, err := encode.Decode([]byte("x"), format.XMLFormat); !errors.Is(err, encode.ErrDecoding) {
		t.Errorf("got error %v want %v", err, encode.ErrDecoding)
	}
	if _, err := encode.Decode([]byte(`[{"name": "a", "bogus": 1}]`), format.JSONFormat); !errors.Is(err, encode.ErrDecoding) {
		t.Errorf("got error %v want %v", err, encode.ErrDecoding)
	}
}
