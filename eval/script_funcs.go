package eval

import (
	"github.com/signadot/tilde-format/tilde/ir"

	"github.com/expr-lang/expr"
)

func exprOpts(doc []*ir.Node) []expr.Option {
	return []expr.Option{
		expr.Function("getpath", func(params ...any) (any, error) {
			path := params[0].(string)
			res, err := ir.GetPath(doc, path)
			if err != nil {
				return nil, err
			}
			return ToAny(res), nil
		},
			new(func(string) map[string]any)),
		expr.Function("listpath", func(params ...any) (any, error) {
			path := params[0].(string)
			nodes, err := ir.ListPath(doc, path)
			if err != nil {
				return nil, err
			}
			res := make([]any, len(nodes))
			for i, n := range nodes {
				res[i] = ToAny(n)
			}
			return res, nil
		},
			new(func(string) []any)),
	}
}
