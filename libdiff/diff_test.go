package libdiff

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/tilde-format/tilde/ir"
	"github.com/signadot/tilde-format/tilde/parse"
)

func mustParse(t *testing.T, s string) []*ir.Node {
	t.Helper()
	nodes, err := parse.ParseString(s)
	if err != nil {
		t.Fatal(err)
	}
	return nodes
}

type summary struct {
	Kind Kind
	Path string
}

func summarize(changes []Change) []summary {
	res := make([]summary, len(changes))
	for i, c := range changes {
		res[i] = summary{c.Kind, c.Path}
	}
	return res
}

func TestDiff(t *testing.T) {
	from := mustParse(t, "0~a:x\n1~b:y\n0~c:z\n0~d:w\n")
	to := mustParse(t, "0~a:x\n1~b:Y\n1~e:v\n0~d:w\n0~f\n")
	got := summarize(Diff(from, to))
	want := []summary{
		{Changed, "$.a.b"},
		{Added, "$.a.e"},
		{Removed, "$.c"},
		{Added, "$.f"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	if changes := Diff(from, from); len(changes) != 0 {
		t.Errorf("got %d changes between equal trees", len(changes))
	}
}

func TestDiffTexts(t *testing.T) {
	from := mustParse(t, "0~a:one\n+two\n+three\n")
	to := mustParse(t, "0~a:one\n+2\n")
	changes := Diff(from, to)
	if len(changes) != 1 {
		t.Fatalf("got %d changes want 1", len(changes))
	}
	texts := changes[0].Texts
	if len(texts) != 2 || texts[0].Index != 1 || texts[1].Index != 2 || texts[1].To != "" {
		t.Fatalf("got text diffs %+v", texts)
	}
	for _, td := range texts {
		got, err := PatchText(td.From, td)
		if err != nil {
			t.Fatal(err)
		}
		if got != td.To {
			t.Errorf("patched %q to %q want %q", td.From, got, td.To)
		}
		rev := reverseText(td)
		back, err := PatchText(td.To, rev)
		if err != nil {
			t.Fatal(err)
		}
		if back != td.From {
			t.Errorf("reverse patched %q to %q want %q", td.To, back, td.From)
		}
	}
	if _, err := PatchText("nope", texts[0]); err == nil {
		t.Error("expected error patching the wrong text")
	}
}

func TestReverse(t *testing.T) {
	from := mustParse(t, "0~a:x\n0~b:y\n")
	to := mustParse(t, "0~a:z\n0~c:y\n")
	got := summarize(Reverse(Diff(from, to)))
	want := summarize(Diff(to, from))
	if diff := cmp.Diff(want, got, cmp.Transformer("sort", func(s []summary) map[summary]bool {
		m := map[summary]bool{}
		for _, x := range s {
			m[x] = true
		}
		return m
	})); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestPrint(t *testing.T) {
	from := mustParse(t, "0~a:hello\n0~b\n1~c:d\n")
	to := mustParse(t, "0~a:help\n")
	buf := &bytes.Buffer{}
	if err := Print(buf, Diff(from, to), false); err != nil {
		t.Fatal(err)
	}
	want := "~ $.a\n  [0] hel[-lo-]{+p+}\n- $.b\n- 0~b\n- 1~c:d\n"
	if got := buf.String(); got != want {
		t.Errorf("got %q want %q", got, want)
	}
}
