package encode

import "github.com/signadot/tagline/format"

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
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

// EncodePrefix overrides the root prefix.
func EncodePrefix(p string) EncodeOption {
	return func(es *EncState) {
		es.prefix = p
		es.hasPrefix = true
	}
}

// EncodeIndent sets the indentation of JSON output; zero gives compact
// output.
func EncodeIndent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}
