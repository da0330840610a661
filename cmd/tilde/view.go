package main

import (
	"fmt"
	"io"

	"github.com/signadot/tilde-format/tilde/encode"
	"github.com/signadot/tilde-format/tilde/format"
	"github.com/signadot/tilde-format/tilde/parse"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	opts := cfg.encOpts(cc.Out)
	if !cfg.Format.IsTilde() {
		opts = append(opts, encode.EncodeFormat(cfg.Format))
	}
	return viewFiles(cfg.MainConfig, cc, cc.Out, inputs(args), opts)
}

func viewFiles(cfg *MainConfig, cc *cli.Context, w io.Writer, files []string, opts []encode.EncodeOption) error {
	for i, file := range files {
		if i > 0 {
			if _, err := w.Write([]byte("\n")); err != nil {
				return err
			}
		}
		if err := viewFile(cfg, cc, w, file, opts); err != nil {
			return err
		}
	}
	return nil
}

func viewFile(cfg *MainConfig, cc *cli.Context, w io.Writer, file string, opts []encode.EncodeOption) error {
	d, err := readFile(cc, file)
	if err != nil {
		return fmt.Errorf("could not read %q: %w", file, err)
	}
	var hdr []string
	pOpts := append(cfg.parseOpts(file), parse.ParseHeader(&hdr))
	nodes, err := parse.Parse(d, pOpts...)
	if err != nil && cfg.Strict {
		return fmt.Errorf("error decoding %s: %w", file, err)
	}
	opts = append(opts[:len(opts):len(opts)], encode.EncodeHeader(hdr))
	if err := encode.Encode(nodes, w, opts...); err != nil {
		return fmt.Errorf("error encoding %s: %w", file, err)
	}
	return nil
}

func mapCmd(cfg *MapConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Map.Parse(cc, args)
	if err != nil {
		cfg.Map.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	sep := cfg.Sep
	if sep == "" {
		sep = "."
	}
	opts := append(cfg.encOpts(cc.Out),
		encode.EncodeFormat(format.MapFormat),
		encode.EncodeMapSep(sep))
	return viewFiles(cfg.MainConfig, cc, cc.Out, inputs(args), opts)
}
