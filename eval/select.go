package eval

import (
	"fmt"

	"github.com/signadot/tilde-format/tilde/debug"
	"github.com/signadot/tilde-format/tilde/ir"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Program is a compiled boolean expression over the nodes of one document.
type Program struct {
	src string
	prg *vm.Program
}

func Compile(doc []*ir.Node, src string) (*Program, error) {
	opts := append(exprOpts(doc), expr.Env(typeEnv), expr.AsBool())
	prg, err := expr.Compile(src, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCompile, err)
	}
	return &Program{src: src, prg: prg}, nil
}

// Match evaluates p for n, where names holds the names from the top level
// down to n.
func (p *Program) Match(names []string, n *ir.Node) (bool, error) {
	res, err := expr.Run(p.prg, NodeEnv(names, n))
	if err != nil {
		return false, fmt.Errorf("%w: %s at %s: %w", ErrEval, p.src, ir.PathString(names), err)
	}
	ok, _ := res.(bool)
	if debug.Eval() {
		debug.Logf("eval: %s at %s: %t\n", p.src, ir.PathString(names), ok)
	}
	return ok, nil
}

type selectOpts struct {
	topLevel bool
	limit    int
}

type SelectOption func(*selectOpts)

// SelectTopLevel restricts selection to top level nodes.
func SelectTopLevel(v bool) SelectOption {
	return func(o *selectOpts) { o.topLevel = v }
}

// SelectLimit stops selection after n nodes. n <= 0 means no limit.
func SelectLimit(n int) SelectOption {
	return func(o *selectOpts) { o.limit = n }
}

// Select returns the nodes of doc for which src holds, in document order.
func Select(doc []*ir.Node, src string, opts ...SelectOption) ([]*ir.Node, error) {
	so := &selectOpts{}
	for _, opt := range opts {
		opt(so)
	}
	p, err := Compile(doc, src)
	if err != nil {
		return nil, err
	}
	var (
		res  []*ir.Node
		eErr error
	)
	ir.Walk(doc, func(names []string, n *ir.Node) bool {
		if eErr != nil || (so.limit > 0 && len(res) >= so.limit) {
			return false
		}
		ok, err := p.Match(names, n)
		if err != nil {
			eErr = err
			return false
		}
		if ok {
			res = append(res, n)
		}
		return !so.topLevel
	})
	if eErr != nil {
		return nil, eErr
	}
	return res, nil
}
