package tales

import (
	"reflect"
	"strings"
)

// Operations is the capability contract for opaque objects that expose
// named zero-argument operations to path resolution. When a path atom names
// one of an object's operations, the operation's result becomes the current
// value of the walk.
type Operations interface {
	Operation(name string) (func() any, bool)
}

// variant classifies a value for one path-walk step.
type variant int

const (
	scalarVariant variant = iota
	mappingVariant
	sequenceVariant
)

func variantOf(v any) variant {
	switch v.(type) {
	case Context, map[string]any:
		return mappingVariant
	case nil:
		return scalarVariant
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() == reflect.String {
			return mappingVariant
		}
	case reflect.Slice, reflect.Array:
		return sequenceVariant
	}
	return scalarVariant
}

// ProcessPath resolves a path expression, a "|"-separated list of
// alternatives, against the given contexts. Contexts are tried in the order
// given and, within each context, every alternative in order; the first
// defined value wins. An exhausted search yields nil, never an error.
func ProcessPath(path string, ctxs ...Context) any {
	alts := strings.Split(path, "|")
	for _, ctx := range ctxs {
		for _, alt := range alts {
			alt = strings.TrimSpace(alt)
			alt = strings.TrimPrefix(alt, "/")
			if v := walk(ctx, alt); v != nil {
				return v
			}
		}
	}
	return nil
}

func walk(ctx Context, alt string) any {
	cur := any(ctx)
	for _, atom := range strings.Split(alt, "/") {
		cur = step(cur, atom)
		if cur == nil {
			return nil
		}
	}
	return cur
}

func step(v any, atom string) any {
	if ops, ok := v.(Operations); ok {
		if fn, ok := ops.Operation(atom); ok {
			return fn()
		}
	}
	switch variantOf(v) {
	case mappingVariant:
		return mapIndex(v, atom)
	case sequenceVariant:
		return seqIndex(v, atom)
	}
	return nil
}

func mapIndex(v any, key string) any {
	switch m := v.(type) {
	case Context:
		return m[key]
	case map[string]any:
		return m[key]
	}
	rv := reflect.ValueOf(v)
	kv := reflect.ValueOf(key).Convert(rv.Type().Key())
	ev := rv.MapIndex(kv)
	if !ev.IsValid() {
		return nil
	}
	return ev.Interface()
}

func seqIndex(v any, atom string) any {
	i, ok := atoi(atom)
	if !ok {
		return nil
	}
	rv := reflect.ValueOf(v)
	if i >= rv.Len() {
		return nil
	}
	return rv.Index(i).Interface()
}

// atoi accepts only plain decimal integer literals; anything else is not a
// sequence index.
func atoi(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	n := 0
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
		n = n*10 + int(s[i]-'0')
	}
	return n, true
}
