package encode

import (
	"strings"

	"github.com/fatih/color"
)

type ColorAttr int

const (
	OffsetColor ColorAttr = iota
	SepColor
	KeyColor
	EscapeColor
	MarkerColor
	TextColor
	HeaderColor
	TagColor
	AttrColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[ColorAttr]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map: map[ColorAttr]func(string, ...any) string{
			OffsetColor: color.RGB(128, 216, 236).SprintfFunc(),
			SepColor:    color.RGB(255, 0, 196).SprintfFunc(),
			KeyColor:    color.RGB(196, 96, 16).SprintfFunc(),
			EscapeColor: color.RGB(168, 0, 196).SprintfFunc(),
			MarkerColor: color.RGB(196, 128, 128).SprintfFunc(),
			TextColor:   color.RGB(8, 196, 16).SprintfFunc(),
			HeaderColor: color.BlueString,
			TagColor:    color.RGB(128, 168, 196).SprintfFunc(),
			AttrColor:   color.RGB(198, 198, 46).SprintfFunc(),
		},
	}
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(a ColorAttr, s string) string {
	return c.Get(a)(s)
}

func (c *Colors) Get(a ColorAttr) func(string, ...any) string {
	f := c.Map[a]
	if f == nil {
		return c.Default
	}
	return f
}
