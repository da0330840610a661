package encode

import "github.com/signadot/tilde-format/tilde/format"

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

// FormatFromOpts extracts the format from encode options.
func FormatFromOpts(opts ...EncodeOption) format.Format {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return es.format
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) {
		if c == nil {
			es.Color = nil
			return
		}
		es.Color = c.Color
	}
}

// EncodeEscape escapes markup characters in XML and HTML output.
func EncodeEscape(v bool) EncodeOption {
	return func(es *EncState) { es.escape = v }
}

// EncodeHeader writes header lines before a Tilde document.
func EncodeHeader(lines []string) EncodeOption {
	return func(es *EncState) { es.header = lines }
}

// EncodeMapSep sets the path separator of the map format.
func EncodeMapSep(sep string) EncodeOption {
	return func(es *EncState) { es.sep = sep }
}

// EncodeIndent sets the indentation of JSON and YAML output.
func EncodeIndent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}
