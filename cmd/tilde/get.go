package main

import (
	"fmt"

	"github.com/signadot/tilde-format/tilde/encode"
	"github.com/signadot/tilde-format/tilde/ir"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a path", cli.ErrUsage)
	}
	path := args[0]
	if path == "" {
		return fmt.Errorf("%w: invalid path \"\"", cli.ErrUsage)
	}
	if path[0] != '$' {
		path = "$" + path
	}
	if _, err := ir.ParsePath(path); err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	for _, arg := range inputs(args[1:]) {
		if err := getFile(cfg, cc, arg, path); err != nil {
			return fmt.Errorf("error querying %s with %s: %w", arg, path, err)
		}
	}
	return nil
}

func getFile(cfg *GetConfig, cc *cli.Context, file, path string) error {
	doc, err := cfg.getObjFile(cc, file)
	if err != nil {
		return err
	}
	var res []*ir.Node
	if cfg.List {
		res, err = ir.ListPath(doc, path)
		if err != nil {
			return err
		}
	} else {
		n, err := ir.GetPath(doc, path)
		if err != nil {
			return err
		}
		res = []*ir.Node{n}
	}
	return encode.Encode(res, cc.Out, cfg.encOpts(cc.Out)...)
}
