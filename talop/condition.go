package talop

import (
	"github.com/tal-format/tal"
	"github.com/tal-format/tal/dom"
	"github.com/tal-format/tal/tales"
)

// processCondition removes the element, children included, when its
// expression is falsy.
func processCondition(t *tal.Template, n *dom.Node, value string, local, global tales.Context) ([]*dom.Node, error) {
	v, err := tales.Value(value, local, global)
	if err != nil {
		return nil, err
	}
	if !tales.Truth(v) {
		return nil, nil
	}
	return []*dom.Node{n}, nil
}
