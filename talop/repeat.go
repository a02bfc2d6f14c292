package talop

import (
	"fmt"
	"reflect"

	"github.com/tal-format/tal"
	"github.com/tal-format/tal/dom"
	"github.com/tal-format/tal/tales"
)

// processRepeat takes "name expression" and emits one processed copy of the
// element per sequence item, binding name to the item and repeat/name to a
// loop descriptor in each copy's local context. An undefined or empty
// sequence removes the element.
func processRepeat(t *tal.Template, n *dom.Node, value string, local, global tales.Context) ([]*dom.Node, error) {
	name, expr, _ := cutWord(value)
	if name == "" || expr == "" {
		return nil, fmt.Errorf("repeat %q: want name expression", value)
	}
	v, err := tales.Value(expr, local, global)
	if err != nil {
		return nil, err
	}
	items := sequence(v)
	if len(items) == 0 {
		return nil, nil
	}

	// Copies are processed under a scratch parent so their own directives
	// can remove or replace them before the walker splices the survivors
	// in place of the original.
	scratch := dom.NewElement("repeat")
	for i, item := range items {
		c := n.Clone()
		scratch.AppendChild(c)
		cl := local.Copy()
		cl[name] = item
		cl["repeat"] = loopContext(cl["repeat"], name, i, len(items))
		if err := t.ProcessNode(c, cl, global); err != nil {
			return nil, err
		}
	}
	return append([]*dom.Node(nil), scratch.Children...), nil
}

// sequence adapts the evaluated value for iteration: slices and arrays
// repeat per element, any other defined value repeats once.
func sequence(v any) []any {
	if v == nil {
		return nil
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Slice, reflect.Array:
		items := make([]any, rv.Len())
		for i := range items {
			items[i] = rv.Index(i).Interface()
		}
		return items
	}
	return []any{v}
}

func loopContext(prev any, name string, i, length int) tales.Context {
	loops := tales.Context{}
	if p, ok := prev.(tales.Context); ok {
		for k, v := range p {
			loops[k] = v
		}
	}
	loops[name] = tales.Context{
		"index":  i,
		"number": i + 1,
		"even":   i%2 == 0,
		"odd":    i%2 == 1,
		"start":  i == 0,
		"end":    i == length-1,
		"length": length,
	}
	return loops
}
