package talop

import (
	"strings"

	"github.com/tal-format/tal"
	"github.com/tal-format/tal/dom"
	"github.com/tal-format/tal/tales"
)

// processOmitTag drops the element's tag, keeping its children, when its
// expression is truthy or empty. The children are processed here because
// the walker does not recurse into a replacement sequence.
func processOmitTag(t *tal.Template, n *dom.Node, value string, local, global tales.Context) ([]*dom.Node, error) {
	omit := true
	if strings.TrimSpace(value) != "" {
		v, err := tales.Value(value, local, global)
		if err != nil {
			return nil, err
		}
		omit = tales.Truth(v)
	}
	if !omit {
		return []*dom.Node{n}, nil
	}
	for _, c := range append([]*dom.Node(nil), n.Children...) {
		if err := t.ProcessNode(c, local.Copy(), global); err != nil {
			return nil, err
		}
	}
	return append([]*dom.Node(nil), n.Children...), nil
}
