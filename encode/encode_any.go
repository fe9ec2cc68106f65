package encode

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/signadot/tagline/ir"
)

func encodeJSON(node *ir.Node, w io.Writer, es *EncState) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if es.indent > 0 {
		enc.SetIndent("", strings.Repeat(" ", es.indent))
	}
	if err := enc.Encode(ir.ToAny(node)); err != nil {
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	return nil
}

func encodeYAML(node *ir.Node, w io.Writer) error {
	d, err := yaml.Marshal(yamlValue(ir.ToAny(node)))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	_, err = w.Write(d)
	return err
}

// yamlValue replaces json.Number with Go numbers, keeping the literal
// text when it does not fit.
func yamlValue(v any) any {
	switch x := v.(type) {
	case json.Number:
		if i, err := strconv.ParseInt(string(x), 10, 64); err == nil {
			return i
		}
		if f, err := strconv.ParseFloat(string(x), 64); err == nil {
			return f
		}
		return string(x)
	case []any:
		res := make([]any, len(x))
		for i, e := range x {
			res[i] = yamlValue(e)
		}
		return res
	case map[string]any:
		res := make(map[string]any, len(x))
		for k, e := range x {
			res[k] = yamlValue(e)
		}
		return res
	default:
		return v
	}
}
