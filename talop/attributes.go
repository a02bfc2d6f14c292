package talop

import (
	"fmt"
	"strings"

	"github.com/tal-format/tal"
	"github.com/tal-format/tal/dom"
	"github.com/tal-format/tal/tales"
)

// processAttributes rewrites attributes: a semicolon-separated list of
// "name expression" segments. A defined value sets the attribute, an
// undefined one removes it.
func processAttributes(t *tal.Template, n *dom.Node, value string, local, global tales.Context) ([]*dom.Node, error) {
	for _, seg := range tales.Split(value) {
		name, expr, _ := cutWord(seg)
		if name == "" || expr == "" {
			return nil, fmt.Errorf("attributes %q: want name expression", seg)
		}
		v, err := tales.Value(expr, local, global)
		if err != nil {
			return nil, err
		}
		if v == nil {
			removeAttr(n, name)
			continue
		}
		n.SetAttr(name, tales.Text(v))
	}
	return []*dom.Node{n}, nil
}

func removeAttr(n *dom.Node, name string) {
	var space, local string
	if i := strings.IndexByte(name, ':'); i >= 0 {
		space, local = n.LookupPrefix(name[:i]), name[i+1:]
	} else {
		local = name
	}
	n.RemoveAttr(space, local)
}
