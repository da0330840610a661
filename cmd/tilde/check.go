package main

import (
	"fmt"

	"github.com/signadot/tilde-format/tilde/parse"
	"github.com/signadot/tilde-format/tilde/token"
	"github.com/signadot/tilde-format/tilde/tree"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		cfg.Check.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	errf, warnf := fmt.Sprint, fmt.Sprint
	if cfg.colored(cc.Out) {
		errf = color.New(color.FgRed).Sprint
		warnf = color.New(color.FgYellow).Sprint
	}
	n := 0
	for _, file := range inputs(args) {
		d, err := readFile(cc, file)
		if err != nil {
			return fmt.Errorf("could not read %q: %w", file, err)
		}
		name := file
		if name == "-" {
			name = "<stdin>"
		}
		opts := []parse.ParseOption{
			parse.ParseFilename(name),
			parse.ParseErrorFunc(func(se *token.SyntaxError) {
				n++
				fmt.Fprintf(cc.Out, "%s %v\n", errf("error"), se)
			}),
		}
		if cfg.Drops {
			opts = append(opts, parse.ParseDropFunc(func(dr tree.Drop) {
				fmt.Fprintf(cc.Out, "%s %s: entry %d: %x~%s not attached after offset %x\n",
					warnf("drop"), name, dr.Entry, dr.Offset, dr.Key, dr.Last)
			}))
		}
		// errors are reported through the error func
		_, _ = parse.Parse(d, opts...)
	}
	if n != 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func header(cfg *HeaderConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Header.Parse(cc, args)
	if err != nil {
		cfg.Header.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	for _, file := range inputs(args) {
		d, err := readFile(cc, file)
		if err != nil {
			return fmt.Errorf("could not read %q: %w", file, err)
		}
		var hdr []string
		_, err = parse.Parse(d, append(cfg.parseOpts(file), parse.ParseHeader(&hdr))...)
		if err != nil && cfg.Strict {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		for _, line := range hdr {
			if _, err := fmt.Fprintln(cc.Out, line); err != nil {
				return err
			}
		}
	}
	return nil
}
