package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/tilde-format/tilde/encode"
	"github.com/signadot/tilde-format/tilde/format"
	"github.com/signadot/tilde-format/tilde/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color  bool `cli:"name=color desc='encode with color'"`
	Strict bool `cli:"name=strict desc='fail on any syntax error'"`
	Escape bool `cli:"name=escape desc='escape text in xml and html output'"`

	OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) parseOpts(file string) []parse.ParseOption {
	res := []parse.ParseOption{}
	if file != "" && file != "-" {
		res = append(res, parse.ParseFilename(file))
	}
	if cfg.Strict {
		res = append(res, parse.ParseStrict())
	}
	return res
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	f := format.TildeFormat
	if cfg.OutFormat != nil {
		f = *cfg.OutFormat
	}
	res := []encode.EncodeOption{
		encode.EncodeFormat(f),
		encode.EncodeEscape(cfg.Escape),
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	if cfg.colorSet() {
		return res
	}
	if isTerminal(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

// colorSet reports whether -color was given explicitly.
func (cfg *MainConfig) colorSet() bool {
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		return opt.Value != nil
	}
	return false
}

func (cfg *MainConfig) colored(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	return !cfg.colorSet() && isTerminal(w)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type ViewConfig struct {
	*MainConfig

	Format format.Format
	View   *cli.Command
}

type MapConfig struct {
	*MainConfig

	Sep string `cli:"name=sep desc='path separator for keys'"`
	Map *cli.Command
}

type CheckConfig struct {
	*MainConfig

	Drops bool `cli:"name=drops desc='report unattached lines'"`
	Check *cli.Command
}

type HeaderConfig struct {
	*MainConfig

	Header *cli.Command
}

type FmtConfig struct {
	*MainConfig

	Write bool `cli:"name=w desc='write result to source file'"`
	Fmt   *cli.Command
}

type GetConfig struct {
	*MainConfig

	List bool `cli:"name=l aliases=list desc='list all selected nodes'"`
	Get  *cli.Command
}

type MatchConfig struct {
	*cli.Command
	*MainConfig

	Trim     bool `cli:"name=trim desc='trim the results to the match'"`
	File     bool `cli:"name=f desc='consider match a path to a match document'"`
	TopLevel bool `cli:"name=top desc='only select top level nodes'"`
	Limit    int  `cli:"name=limit desc='max number of results'"`
}

type DiffConfig struct {
	*MainConfig
	Reverse bool `cli:"name=r desc='reverse the diff'"`

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig
	String bool `cli:"name=s desc='patch arg as string'"`
	File   bool `cli:"name=f desc='patch arg as file'"`

	Patch *cli.Command
}
