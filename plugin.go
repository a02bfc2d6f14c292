package tal

import (
	"strconv"

	"github.com/tal-format/tal/dom"
	"github.com/tal-format/tal/tales"
)

// Handler processes one directive attribute on one element. The raw
// attribute value has already been removed from the node. The returned
// sequence selects the structural outcome: empty removes the node, a
// sequence not starting with the node replaces it, and the node itself
// signals that only contexts or attributes changed. Handlers may mutate
// local and global to introduce bindings; local changes are visible to the
// node's subtree only, global changes to the rest of the traversal.
type Handler func(t *Template, n *dom.Node, value string, local, global tales.Context) ([]*dom.Node, error)

// Language is one directive plugin: a namespace of attributes and an
// ordered set of directive names. Tag order defines precedence among the
// plugin's own directives; order among plugins is their registration order
// on the template.
type Language interface {
	Namespace() string
	Tags() []string
	Handler(tag string) Handler
}

// Warning describes attributes in a recognized plugin namespace that match
// none of that plugin's declared directives. Warnings never abort a
// traversal.
type Warning struct {
	Namespace string
	Element   string
	Path      string
	Line      int
	Attrs     []string
}

func (w Warning) String() string {
	return "unhandled attributes " + quoteJoin(w.Attrs) +
		" in namespace " + w.Namespace +
		" on <" + w.Element + "> at " + w.Path + " line " + strconv.Itoa(w.Line)
}

func quoteJoin(names []string) string {
	s := ""
	for i, name := range names {
		if i > 0 {
			s += ", "
		}
		s += `"` + name + `"`
	}
	return s
}
