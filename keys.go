package humps

import (
	"reflect"

	"gopkg.in/yaml.v2"
)

// ProcessKeys returns a copy of v in which every mapping key has been
// rewritten by conv. Sequences and mappings are rebuilt; every other value,
// including time.Time, *regexp.Regexp, bools, funcs and structs, is returned
// as is. Cyclic values are not detected.
func ProcessKeys(conv Converter, v any, opts *Options) any {
	p := newKeyProcessor(conv, opts)
	return p.walk(v)
}

type keyProcessor struct {
	conv     Converter
	opts     *Options
	preserve map[string]bool
}

func newKeyProcessor(conv Converter, opts *Options) *keyProcessor {
	return &keyProcessor{
		conv:     Override(conv, opts.process()),
		opts:     opts,
		preserve: opts.preserve(),
	}
}

func (p *keyProcessor) key(k string) string {
	return p.conv.Convert(k, p.opts)
}

// preserved reports whether the value under a key is copied verbatim.
func (p *keyProcessor) preserved(orig, converted string) bool {
	return p.preserve[orig] || p.preserve[converted]
}

func (p *keyProcessor) entry(orig string, child any) (string, any) {
	k := p.key(orig)
	if p.preserved(orig, k) {
		return k, child
	}
	return k, p.walk(child)
}

func (p *keyProcessor) walk(v any) any {
	switch val := v.(type) {
	case nil:
		return nil
	case map[string]any:
		result := make(map[string]any, len(val))
		for k, child := range val {
			nk, nv := p.entry(k, child)
			result[nk] = nv
		}
		return result
	case map[any]any:
		result := make(map[any]any, len(val))
		for k, child := range val {
			s, ok := k.(string)
			if !ok {
				result[k] = p.walk(child)
				continue
			}
			nk, nv := p.entry(s, child)
			result[nk] = nv
		}
		return result
	case yaml.MapSlice:
		result := make(yaml.MapSlice, len(val))
		for i, item := range val {
			s, ok := item.Key.(string)
			if !ok {
				result[i] = yaml.MapItem{Key: item.Key, Value: p.walk(item.Value)}
				continue
			}
			nk, nv := p.entry(s, item.Value)
			result[i] = yaml.MapItem{Key: nk, Value: nv}
		}
		return result
	case []any:
		result := make([]any, len(val))
		for i, child := range val {
			result[i] = p.walk(child)
		}
		return result
	default:
		return p.walkReflect(v)
	}
}

// walkReflect handles typed maps with string keys and typed slices whose
// elements may hold containers, e.g. map[string]string or []map[string]any.
func (p *keyProcessor) walkReflect(v any) any {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map:
		t := rv.Type()
		if t.Key().Kind() != reflect.String {
			return v
		}
		if rv.IsNil() {
			return v
		}
		result := reflect.MakeMapWithSize(t, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			nk, nv := p.entry(iter.Key().String(), iter.Value().Interface())
			result.SetMapIndex(reflect.ValueOf(nk).Convert(t.Key()), elemValue(nv, t.Elem()))
		}
		return result.Interface()
	case reflect.Slice:
		t := rv.Type()
		if rv.IsNil() || !holdsContainers(t.Elem()) {
			return v
		}
		result := reflect.MakeSlice(t, rv.Len(), rv.Len())
		for i := 0; i < rv.Len(); i++ {
			result.Index(i).Set(elemValue(p.walk(rv.Index(i).Interface()), t.Elem()))
		}
		return result.Interface()
	default:
		return v
	}
}

func holdsContainers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Interface, reflect.Map, reflect.Slice:
		return true
	}
	return false
}

func elemValue(v any, t reflect.Type) reflect.Value {
	if v == nil {
		return reflect.Zero(t)
	}
	return reflect.ValueOf(v)
}

func (c *Caser) camelizer() Converter {
	return ConverterFunc(func(key string, _ *Options) string {
		return c.CamelizeWithInitialism(key)
	})
}

func (c *Caser) pascalizer() Converter {
	return ConverterFunc(func(key string, _ *Options) string {
		return Pascalize(key)
	})
}

func (c *Caser) decamelizer() Converter {
	return ConverterFunc(c.Decamelize)
}

// CamelizeKeys applies CamelizeWithInitialism to every key of v.
func (c *Caser) CamelizeKeys(v any, opts *Options) any {
	return ProcessKeys(c.camelizer(), v, opts)
}

// PascalizeKeys applies Pascalize to every key of v.
func (c *Caser) PascalizeKeys(v any, opts *Options) any {
	return ProcessKeys(c.pascalizer(), v, opts)
}

// DecamelizeKeys applies Decamelize to every key of v.
func (c *Caser) DecamelizeKeys(v any, opts *Options) any {
	return ProcessKeys(c.decamelizer(), v, opts)
}

// DepascalizeKeys is an alias of DecamelizeKeys.
func (c *Caser) DepascalizeKeys(v any, opts *Options) any {
	return c.DecamelizeKeys(v, opts)
}

// CamelizeKeys applies CamelizeWithInitialism to every key of v.
func CamelizeKeys(v any, opts *Options) any {
	return defaultCaser.CamelizeKeys(v, opts)
}

// PascalizeKeys applies Pascalize to every key of v.
func PascalizeKeys(v any, opts *Options) any {
	return defaultCaser.PascalizeKeys(v, opts)
}

// DecamelizeKeys applies Decamelize to every key of v.
func DecamelizeKeys(v any, opts *Options) any {
	return defaultCaser.DecamelizeKeys(v, opts)
}

// DepascalizeKeys is an alias of DecamelizeKeys.
func DepascalizeKeys(v any, opts *Options) any {
	return defaultCaser.DecamelizeKeys(v, opts)
}
