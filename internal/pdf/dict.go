package pdf

import (
	"encoding/json"

	pdflib "github.com/ledongthuc/pdf"

	"github.com/annotext/mcp-pdf-comments/internal/comments"
)

// maxJSONDepth caps how deep the JSON fallback walks nested objects.
const maxJSONDepth = 4

// valueObject adapts a parsed annotation dictionary to the untyped
// accessor contract the comment extractor works against. The
// underlying library panics on some malformed objects, so every
// accessor recovers and reports a plain miss instead.
type valueObject struct {
	v pdflib.Value
}

func wrapValue(v pdflib.Value) comments.Object {
	return valueObject{v: v}
}

func missOnPanic(ok *bool) {
	if recover() != nil {
		*ok = false
	}
}

func (o valueObject) String(key string) (s string, ok bool) {
	defer missOnPanic(&ok)
	val := o.v.Key(key)
	if val.Kind() != pdflib.String {
		return "", false
	}
	return val.Text(), true
}

func (o valueObject) Name(key string) (name string, ok bool) {
	defer missOnPanic(&ok)
	val := o.v.Key(key)
	if val.Kind() != pdflib.Name {
		return "", false
	}
	return val.Name(), true
}

func (o valueObject) Object(key string) (obj comments.Object, ok bool) {
	defer missOnPanic(&ok)
	val := o.v.Key(key)
	if val.Kind() != pdflib.Dict {
		return nil, false
	}
	return wrapValue(val), true
}

func (o valueObject) Strings(key string) (parts []string, ok bool) {
	defer missOnPanic(&ok)
	val := o.v.Key(key)
	if val.Kind() != pdflib.Array {
		return nil, false
	}
	parts = make([]string, 0, val.Len())
	for i := 0; i < val.Len(); i++ {
		if elem := val.Index(i); elem.Kind() == pdflib.String {
			parts = append(parts, elem.Text())
		}
	}
	return parts, true
}

func (o valueObject) JSON(key string) (s string, ok bool) {
	defer missOnPanic(&ok)
	val := o.v.Key(key)
	if val.Kind() != pdflib.Dict {
		return "", false
	}
	b, err := json.Marshal(exportValue(val, maxJSONDepth))
	if err != nil {
		return "", false
	}
	return string(b), true
}

// exportValue converts a PDF value into plain Go data for the JSON
// fallback, truncating at depth to avoid reference cycles.
func exportValue(v pdflib.Value, depth int) any {
	switch v.Kind() {
	case pdflib.String:
		return v.Text()
	case pdflib.Name:
		return v.Name()
	case pdflib.Integer:
		return v.Int64()
	case pdflib.Real:
		return v.Float64()
	case pdflib.Bool:
		return v.Bool()
	case pdflib.Array:
		if depth <= 0 {
			return nil
		}
		out := make([]any, 0, v.Len())
		for i := 0; i < v.Len(); i++ {
			out = append(out, exportValue(v.Index(i), depth-1))
		}
		return out
	case pdflib.Dict:
		if depth <= 0 {
			return nil
		}
		out := make(map[string]any, len(v.Keys()))
		for _, k := range v.Keys() {
			out[k] = exportValue(v.Key(k), depth-1)
		}
		return out
	default:
		return nil
	}
}
