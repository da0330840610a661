package main

import (
	"fmt"

	"github.com/signadot/tilde-format/tilde"
	"github.com/signadot/tilde-format/tilde/encode"
	"github.com/signadot/tilde-format/tilde/ir"

	"github.com/scott-cotton/cli"
)

func match(cfg *MatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Command.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: match requires 1 argument, an expression or match file", cli.ErrUsage)
	}
	if cfg.Trim && !cfg.File {
		return fmt.Errorf("%w: -trim requires -f", cli.ErrUsage)
	}
	var m []*ir.Node
	if cfg.File {
		m, err = cfg.getObjFile(cc, args[0])
		if err != nil {
			return fmt.Errorf("error decoding match %s: %w", args[0], err)
		}
	}
	for _, arg := range inputs(args[1:]) {
		doc, err := cfg.getObjFile(cc, arg)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", arg, err)
		}
		var res []*ir.Node
		if cfg.File {
			res = matchDoc(cfg, doc, m)
		} else {
			res, err = tilde.Select(doc, args[0],
				tilde.MatchTopLevel(cfg.TopLevel),
				tilde.MatchLimit(cfg.Limit))
			if err != nil {
				return fmt.Errorf("error matching %s: %w", arg, err)
			}
		}
		if len(res) == 0 {
			continue
		}
		if err := encode.Encode(res, cc.Out, cfg.MainConfig.encOpts(cc.Out)...); err != nil {
			return fmt.Errorf("error encoding output: %w", err)
		}
	}
	return nil
}

func matchDoc(cfg *MatchConfig, doc, m []*ir.Node) []*ir.Node {
	if !tilde.Match(doc, m) {
		return nil
	}
	if cfg.Trim {
		return tilde.Trim(m, doc)
	}
	return doc
}
