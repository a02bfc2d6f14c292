package talop

import (
	"github.com/tal-format/tal"
	"github.com/tal-format/tal/dom"
	"github.com/tal-format/tal/tales"
)

// processContent replaces the element's children with the evaluated value,
// keeping the element itself. An undefined value empties the element.
func processContent(t *tal.Template, n *dom.Node, value string, local, global tales.Context) ([]*dom.Node, error) {
	seq, _, err := renderValue(value, local, global)
	if err != nil {
		return nil, err
	}
	n.SetChildren(seq...)
	return []*dom.Node{n}, nil
}

// processReplace replaces the element itself with the evaluated value. An
// undefined value removes the element.
func processReplace(t *tal.Template, n *dom.Node, value string, local, global tales.Context) ([]*dom.Node, error) {
	seq, defined, err := renderValue(value, local, global)
	if err != nil {
		return nil, err
	}
	if !defined {
		return nil, nil
	}
	return seq, nil
}

// renderValue evaluates a content/replace argument. An optional leading
// "text" or "structure" keyword selects plain text (the default) or XML
// fragment parsing of the value's textual form.
func renderValue(value string, local, global tales.Context) ([]*dom.Node, bool, error) {
	kind := "text"
	if w, rest, ok := cutWord(value); ok && rest != "" && (w == "text" || w == "structure") {
		kind, value = w, rest
	}
	v, err := tales.Value(value, local, global)
	if err != nil {
		return nil, false, err
	}
	if v == nil {
		return nil, false, nil
	}
	if kind == "structure" {
		seq, err := dom.ParseFragment(tales.Text(v))
		if err != nil {
			return nil, true, err
		}
		return seq, true, nil
	}
	return []*dom.Node{dom.NewText(tales.Text(v))}, true, nil
}
