package main

import (
	"github.com/signadot/tilde-format/tilde/format"

	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: tilde/t, json/j, yaml/y, xml/x, html/h, map/m",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "tilde").
		WithSynopsis("tilde [opts] command [opts]").
		WithDescription("tilde is a tool for working with tilde line notation.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return tildeMain(cfg, cc, args)
		}).
		WithSubs(
			ViewCommand(cfg, "view", format.TildeFormat, "v"),
			ViewCommand(cfg, "xml", format.XMLFormat, "x"),
			ViewCommand(cfg, "html", format.HTMLFormat, "h"),
			ViewCommand(cfg, "json", format.JSONFormat, "j"),
			ViewCommand(cfg, "yaml", format.YAMLFormat, "y"),
			MapCommand(cfg),
			CheckCommand(cfg),
			HeaderCommand(cfg),
			FmtCommand(cfg),
			GetCommand(cfg),
			MatchCommand(cfg),
			PatchCommand(cfg),
			DiffCommand(cfg))
}

func ViewCommand(mainCfg *MainConfig, name string, f format.Format, aliases ...string) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg, Format: f}
	desc := "convert tilde files to " + f.String()
	if f.IsTilde() {
		desc = "view tilde files in color"
	}
	cmd := cli.NewCommand(name).
		WithAliases(aliases...).
		WithSynopsis(name + " [files]").
		WithDescription(desc).
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
	cfg.View = cmd
	return cmd
}

func MapCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &MapConfig{MainConfig: mainCfg, Sep: "."}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Map, "map").
		WithAliases("m").
		WithSynopsis("map [-sep s] [files]").
		WithDescription("convert tilde files to a map from key paths to texts").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return mapCmd(cfg, cc, args)
		})
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Check, "check").
		WithAliases("c", "ch").
		WithSynopsis("check [-drops] [files]").
		WithDescription("report syntax errors in tilde files").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
}

func HeaderCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &HeaderConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Header, "header").
		WithAliases("hd").
		WithSynopsis("header [files]").
		WithDescription("print the header lines of tilde files").
		WithRun(func(cc *cli.Context, args []string) error {
			return header(cfg, cc, args)
		})
}

func FmtCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FmtConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Fmt, "fmt").
		WithAliases("f").
		WithSynopsis("fmt [-w] [files]").
		WithDescription("reformat tilde files with minimal offsets").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return fmtCmd(cfg, cc, args)
		})
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("get").
		WithAliases("g", "ge").
		WithSynopsis("get [-l] <path> [files]").
		WithDescription("get nodes from files by path").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
	cfg.Get = cmd
	return cmd
}

func MatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &MatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Command, "match").
		WithAliases("ma").
		WithSynopsis("match [opts] <expr> [files] or match -f <matchfile> [files]").
		WithDescription("select nodes with an expression or match documents with a match document").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return match(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("diff").
		WithAliases("d", "di").
		WithOpts(opts...).
		WithSynopsis("diff [-r] a b").
		WithDescription("diff tilde documents").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("patch").
		WithAliases("p", "pa").
		WithSynopsis("patch [opts] <jsonpatch> [files]").
		WithDescription("apply a json patch to tilde documents").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return patch(cfg, cc, args)
		})
	cfg.Patch = cmd
	return cmd
}
