package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/signadot/tilde-format/tilde/encode"
	"github.com/signadot/tilde-format/tilde/parse"

	"github.com/scott-cotton/cli"
)

func fmtCmd(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		cfg.Fmt.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.Write && len(args) == 0 {
		return fmt.Errorf("%w: fmt -w requires files", cli.ErrUsage)
	}
	for _, file := range inputs(args) {
		d, err := readFile(cc, file)
		if err != nil {
			return fmt.Errorf("could not read %q: %w", file, err)
		}
		var hdr []string
		nodes, err := parse.Parse(d, append(cfg.parseOpts(file), parse.ParseHeader(&hdr))...)
		if err != nil {
			// reformatting drops malformed lines
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		if !cfg.Write {
			if err := encode.Encode(nodes, cc.Out, append(cfg.encOpts(cc.Out), encode.EncodeHeader(hdr))...); err != nil {
				return fmt.Errorf("error encoding %s: %w", file, err)
			}
			continue
		}
		buf := &bytes.Buffer{}
		if err := encode.Encode(nodes, buf, encode.EncodeHeader(hdr)); err != nil {
			return fmt.Errorf("error encoding %s: %w", file, err)
		}
		if bytes.Equal(buf.Bytes(), d) {
			continue
		}
		if err := os.WriteFile(file, buf.Bytes(), 0644); err != nil {
			return err
		}
	}
	return nil
}
