package humps

import (
	"fmt"

	"github.com/valyala/fastjson"
)

// ConvertJSON rewrites every object key of a JSON document with conv. Key
// order and the text of scalar values are kept as they are.
func ConvertJSON(data []byte, conv Converter, opts *Options) ([]byte, error) {
	doc, err := ParseDocument(data, FormatJSON)
	if err != nil {
		return nil, err
	}
	return doc.ConvertKeys(conv, opts).compact(), nil
}

func parseJSON(data []byte) (*fastjson.Parser, *fastjson.Value, error) {
	p := new(fastjson.Parser)
	v, err := p.ParseBytes(data)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	return p, v, nil
}

// jsonWalker rebuilds a fastjson tree in its arena. Scalars are shared with
// the source tree, so the source parser must outlive the result.
type jsonWalker struct {
	arena *fastjson.Arena
	keys  *keyProcessor
}

func (w *jsonWalker) walk(v *fastjson.Value) *fastjson.Value {
	switch v.Type() {
	case fastjson.TypeObject:
		result := w.arena.NewObject()
		v.GetObject().Visit(func(k []byte, child *fastjson.Value) {
			orig := string(k)
			key := w.keys.key(orig)
			if w.keys.preserved(orig, key) {
				result.Set(key, child)
				return
			}
			result.Set(key, w.walk(child))
		})
		return result
	case fastjson.TypeArray:
		result := w.arena.NewArray()
		for i, item := range v.GetArray() {
			result.SetArrayItem(i, w.walk(item))
		}
		return result
	default:
		return v
	}
}

func jsonKeys(v *fastjson.Value, skip map[string]bool, keys []string) []string {
	switch v.Type() {
	case fastjson.TypeObject:
		v.GetObject().Visit(func(k []byte, child *fastjson.Value) {
			key := string(k)
			keys = append(keys, key)
			if !skip[key] {
				keys = jsonKeys(child, skip, keys)
			}
		})
	case fastjson.TypeArray:
		for _, item := range v.GetArray() {
			keys = jsonKeys(item, skip, keys)
		}
	}
	return keys
}
