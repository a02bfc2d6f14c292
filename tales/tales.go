// Package tales evaluates TALES expressions: small "type:body" expressions
// resolved against a stack of context mappings. The built-in types are path,
// string, not, exists, and expr; further types are added with Register.
package tales

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/tal-format/tal/debug"
)

// Context is one mapping of names to values. Path resolution treats a
// missing name and a name bound to nil identically: both are undefined,
// represented as nil.
type Context map[string]any

// Copy returns a shallow copy of c.
func (c Context) Copy() Context {
	res := make(Context, len(c))
	for k, v := range c {
		res[k] = v
	}
	return res
}

var typeRe = regexp.MustCompile(`(?s)^\s*(\w+)\s*:\s*(.*)$`)

// Value evaluates a full TALES expression. The expression type defaults to
// path when no "type:" prefix is present. An unregistered type is the only
// hard failure; resolution misses inside a registered type degrade to nil.
func Value(expr string, ctxs ...Context) (any, error) {
	typ, body := "path", expr
	if m := typeRe.FindStringSubmatch(expr); m != nil {
		typ, body = m[1], m[2]
	}
	if len(ctxs) == 0 {
		ctxs = []Context{{}}
	}
	fn := Lookup(typ)
	if fn == nil {
		return nil, fmt.Errorf("%s: %w", typ, ErrUnknownType)
	}
	v, err := fn(body, ctxs...)
	if debug.Expr() {
		debug.Logf("tales %q -> %v (err %v)\n", expr, v, err)
	}
	return v, err
}

// Split splits a directive argument list on semicolons. Segments are
// trimmed and empty segments dropped; a doubled semicolon is the escape for
// a literal semicolon inside a segment.
func Split(s string) []string {
	var (
		segs []string
		b    strings.Builder
	)
	flush := func() {
		if t := strings.TrimSpace(b.String()); t != "" {
			segs = append(segs, t)
		}
		b.Reset()
	}
	for i := 0; i < len(s); i++ {
		if s[i] == ';' {
			if i+1 < len(s) && s[i+1] == ';' {
				b.WriteByte(';')
				i++
				continue
			}
			flush()
			continue
		}
		b.WriteByte(s[i])
	}
	flush()
	return segs
}

// ProcessNot evaluates its body as a full expression and negates its truth.
func ProcessNot(body string, ctxs ...Context) (any, error) {
	v, err := Value(body, ctxs...)
	if err != nil {
		return nil, err
	}
	return !Truth(v), nil
}
