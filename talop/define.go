package talop

import (
	"fmt"

	"github.com/tal-format/tal"
	"github.com/tal-format/tal/dom"
	"github.com/tal-format/tal/tales"
)

// processDefine binds names: "define" takes a semicolon-separated list of
// "[local|global] name expression" segments. Local bindings are visible to
// the element's subtree, global ones to the rest of the traversal.
func processDefine(t *tal.Template, n *dom.Node, value string, local, global tales.Context) ([]*dom.Node, error) {
	for _, seg := range tales.Split(value) {
		scope := "local"
		name, rest, _ := cutWord(seg)
		if name == "local" || name == "global" {
			scope = name
			name, rest, _ = cutWord(rest)
		}
		if name == "" || rest == "" {
			return nil, fmt.Errorf("define %q: want [local|global] name expression", seg)
		}
		v, err := tales.Value(rest, local, global)
		if err != nil {
			return nil, err
		}
		if scope == "global" {
			global[name] = v
		} else {
			local[name] = v
		}
	}
	return []*dom.Node{n}, nil
}
