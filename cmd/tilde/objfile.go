package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/tilde-format/tilde/ir"
	"github.com/signadot/tilde-format/tilde/parse"

	"github.com/scott-cotton/cli"
)

func readFile(cc *cli.Context, path string) ([]byte, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return d, nil
}

// getObjFile parses the file at path. Syntax errors are only returned with
// -strict.
func (cfg *MainConfig) getObjFile(cc *cli.Context, path string) ([]*ir.Node, error) {
	d, err := readFile(cc, path)
	if err != nil {
		return nil, err
	}
	nodes, err := parse.Parse(d, cfg.parseOpts(path)...)
	if err != nil && cfg.Strict {
		return nil, err
	}
	return nodes, nil
}

// inputs returns args, or stdin when args is empty.
func inputs(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}
