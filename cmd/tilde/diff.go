package main

import (
	"fmt"

	"github.com/signadot/tilde-format/tilde"
	"github.com/signadot/tilde-format/tilde/libdiff"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	a, err := cfg.getObjFile(cc, args[0])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	b, err := cfg.getObjFile(cc, args[1])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	d := tilde.Diff(a, b)
	if len(d) == 0 {
		return nil
	}
	if cfg.Reverse {
		d = libdiff.Reverse(d)
	}
	if err := libdiff.Print(cc.Out, d, cfg.colored(cc.Out)); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}
