package tilde

import (
	"slices"

	"github.com/signadot/tilde-format/tilde/debug"
	"github.com/signadot/tilde-format/tilde/eval"
	"github.com/signadot/tilde-format/tilde/ir"
)

type MatchConfig struct {
	TopLevel bool
	Limit    int
}

type MatchOpt func(*MatchConfig)

// MatchTopLevel restricts selection to top level nodes.
func MatchTopLevel(v bool) MatchOpt {
	return func(c *MatchConfig) { c.TopLevel = v }
}

// MatchLimit stops selection after n nodes. n <= 0 means no limit.
func MatchLimit(n int) MatchOpt {
	return func(c *MatchConfig) { c.Limit = n }
}

// Match reports whether doc contains match.
//
// Each node of match must correspond to a node of doc with the same name
// at the same level, having every text of the match node among its texts
// and whose children contain the match node's children.
func Match(doc, match []*ir.Node) bool {
	for _, m := range match {
		if !slices.ContainsFunc(doc, func(d *ir.Node) bool { return matchNode(d, m) }) {
			if debug.Eval() {
				debug.Logf("match: no node for %q\n", m.Name)
			}
			return false
		}
	}
	return true
}

func matchNode(doc, match *ir.Node) bool {
	if doc.Name != match.Name {
		return false
	}
	for _, t := range match.Text {
		if !slices.Contains(doc.Text, t) {
			return false
		}
	}
	return Match(doc.Value, match.Value)
}

// Trim filters doc to the nodes named in match, recursively. A match node
// without children keeps the whole subtree of the corresponding nodes, and
// a match node with texts keeps only those texts.
func Trim(match, doc []*ir.Node) []*ir.Node {
	var res []*ir.Node
	for _, d := range doc {
		var pats []*ir.Node
		for _, m := range match {
			if m.Name == d.Name {
				pats = append(pats, m)
			}
		}
		if len(pats) == 0 {
			continue
		}
		res = append(res, trimNode(pats, d))
	}
	return res
}

func trimNode(pats []*ir.Node, doc *ir.Node) *ir.Node {
	var texts []string
	var children []*ir.Node
	allTexts, allChildren := false, false
	for _, p := range pats {
		if len(p.Text) == 0 {
			allTexts = true
		}
		texts = append(texts, p.Text...)
		if len(p.Value) == 0 {
			allChildren = true
		}
		children = append(children, p.Value...)
	}
	res := &ir.Node{Name: doc.Name}
	for _, t := range doc.Text {
		if allTexts || slices.Contains(texts, t) {
			res.Text = append(res.Text, t)
		}
	}
	if allChildren {
		res.Value = ir.CloneAll(doc.Value)
		if len(res.Value) == 0 {
			res.Value = nil
		}
		return res
	}
	res.Value = Trim(children, doc.Value)
	return res
}

// Select returns the nodes of doc for which the expr-lang expression src
// holds, in document order. See package eval for the expression
// environment.
func Select(doc []*ir.Node, src string, opts ...MatchOpt) ([]*ir.Node, error) {
	cfg := &MatchConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	return eval.Select(doc, src,
		eval.SelectTopLevel(cfg.TopLevel),
		eval.SelectLimit(cfg.Limit))
}
