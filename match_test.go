package tilde

import (
	"testing"

	"github.com/signadot/tilde-format/tilde/encode"
	"github.com/signadot/tilde-format/tilde/parse"
)

type matchTest struct {
	in    string
	match string
	res   bool
}

var matchTests = []matchTest{
	{
		in:    "0~a:1",
		match: "0~a:1",
		res:   true,
	},
	{
		in:    "0~a:0",
		match: "0~a:1",
		res:   false,
	},
	{
		in:    "0~a:1\n+2",
		match: "0~a:2",
		res:   true,
	},
	{
		in:    "0~a:b\n0~c:d",
		match: "0~a:b",
		res:   true,
	},
	{
		in:    "0~a:b",
		match: "0~a:b\n0~c:d",
		res:   false,
	},
	{
		in:    "0~a:b",
		match: "0~a",
		res:   true,
	},
	{
		in:    "0~a\n1~b\n2~c:x",
		match: "0~a\n1~b\n2~c:x",
		res:   true,
	},
	{
		in:    "0~a\n1~b\n2~c:x",
		match: "0~a\n1~c",
		res:   false,
	},
	{
		in:    "0~a:b",
		match: "",
		res:   true,
	},
}

func TestMatch(t *testing.T) {
	for i := range matchTests {
		mt := &matchTests[i]
		doc, err := parse.ParseString(mt.in)
		if err != nil {
			t.Fatal(err)
		}
		match, err := parse.ParseString(mt.match)
		if err != nil {
			t.Fatal(err)
		}
		if got := Match(doc, match); got != mt.res {
			t.Errorf("match %q against %q: got %t want %t", mt.match, mt.in, got, mt.res)
		}
	}
}

type trimTest struct {
	match string
	doc   string
	res   string
}

func TestTrim(t *testing.T) {
	tts := []trimTest{
		{
			match: "0~a",
			doc:   "0~a:x\n1~b:y\n0~c:z",
			res:   "0~a:x\n1~b:y\n",
		},
		{
			match: "0~a\n1~c",
			doc:   "0~a:x\n1~b:y\n1~c:w\n0~c:z",
			res:   "0~a:x\n1~c:w\n",
		},
		{
			match: "0~a:2",
			doc:   "0~a:1\n+2\n+3",
			res:   "0~a:2\n",
		},
		{
			match: "0~q",
			doc:   "0~a:1",
			res:   "",
		},
	}
	for _, tt := range tts {
		match, err := parse.ParseString(tt.match)
		if err != nil {
			t.Fatal(err)
		}
		doc, err := parse.ParseString(tt.doc)
		if err != nil {
			t.Fatal(err)
		}
		got := encode.MustString(Trim(match, doc))
		if got != tt.res {
			t.Errorf("trim %q by %q: got %q want %q", tt.doc, tt.match, got, tt.res)
		}
	}
}

func TestSelect(t *testing.T) {
	doc, err := parse.ParseString("0~a:1\n1~a:2\n0~b\n1~a:3\n")
	if err != nil {
		t.Fatal(err)
	}
	all, err := Select(doc, `name == "a"`)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 3 {
		t.Errorf("got %d nodes want 3", len(all))
	}
	top, err := Select(doc, `name == "a"`, MatchTopLevel(true))
	if err != nil {
		t.Fatal(err)
	}
	if len(top) != 1 || top[0] != doc[0] {
		t.Errorf("got %v want top level a", top)
	}
	lim, err := Select(doc, `true`, MatchLimit(2))
	if err != nil {
		t.Fatal(err)
	}
	if len(lim) != 2 {
		t.Errorf("got %d nodes want 2", len(lim))
	}
	if _, err := Select(doc, `(`); err == nil {
		t.Error("expected compile error")
	}
}
