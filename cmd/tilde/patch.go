package main

import (
	"fmt"

	"github.com/signadot/tilde-format/tilde"
	"github.com/signadot/tilde-format/tilde/encode"

	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.String && cfg.File {
		return fmt.Errorf("%w: only one of -s, -f may be specified", cli.ErrUsage)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires at least 1 argument, a json patch", cli.ErrUsage)
	}
	p := []byte(args[0])
	if cfg.File {
		p, err = readFile(cc, args[0])
		if err != nil {
			return fmt.Errorf("error reading patch: %w", err)
		}
	}
	for _, arg := range inputs(args[1:]) {
		doc, err := cfg.getObjFile(cc, arg)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", arg, err)
		}
		res, err := tilde.Patch(doc, p)
		if err != nil {
			return fmt.Errorf("error patching %s: %w", arg, err)
		}
		if err := encode.Encode(res, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return fmt.Errorf("error encoding output: %w", err)
		}
	}
	return nil
}
