package format

import (
	"errors"
	"fmt"
)

type Format int

const (
	TildeFormat Format = iota
	JSONFormat
	YAMLFormat
	XMLFormat
	HTMLFormat
	MapFormat
)

var ErrBadFormat = errors.New("bad format")

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"t":     TildeFormat,
		"tilde": TildeFormat,
		"j":     JSONFormat,
		"json":  JSONFormat,
		"y":     YAMLFormat,
		"yaml":  YAMLFormat,
		"x":     XMLFormat,
		"xml":   XMLFormat,
		"h":     HTMLFormat,
		"html":  HTMLFormat,
		"m":     MapFormat,
		"map":   MapFormat,
	}[v]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case TildeFormat:
		return []byte("tilde"), nil
	case JSONFormat:
		return []byte("json"), nil
	case YAMLFormat:
		return []byte("yaml"), nil
	case XMLFormat:
		return []byte("xml"), nil
	case HTMLFormat:
		return []byte("html"), nil
	case MapFormat:
		return []byte("map"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

func (f Format) IsTilde() bool { return f == TildeFormat }
func (f Format) IsJSON() bool  { return f == JSONFormat }
func (f Format) IsYAML() bool  { return f == YAMLFormat }

// IsMarkup reports whether f renders the tree as elements.
func (f Format) IsMarkup() bool { return f == XMLFormat || f == HTMLFormat }

// Suffix returns the file extension for this format (including the dot).
func (f Format) Suffix() string {
	switch f {
	case TildeFormat:
		return ".tilde"
	case JSONFormat:
		return ".json"
	case YAMLFormat, MapFormat:
		return ".yaml"
	case XMLFormat:
		return ".xml"
	case HTMLFormat:
		return ".html"
	default:
		return ""
	}
}

// AllFormats returns all supported formats in preference order.
func AllFormats() []Format {
	return []Format{TildeFormat, JSONFormat, YAMLFormat, XMLFormat, HTMLFormat, MapFormat}
}
