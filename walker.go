package tal

import (
	"sort"

	"github.com/tal-format/tal/debug"
	"github.com/tal-format/tal/dom"
	"github.com/tal-format/tal/tales"
)

// ProcessNode processes one node and, unless a handler removed or replaced
// it, recurses into its children. Each child receives a fresh shallow copy
// of local; global is the same instance for the whole traversal. This is
// the recursive entry point directive handlers use to process subtrees they
// build themselves.
func (t *Template) ProcessNode(n *dom.Node, local, global tales.Context) error {
	if !n.IsElement() {
		return nil
	}
	if debug.Walk() {
		debug.Logf("walk %s\n", n.Path())
	}

	// Record, per plugin, the namespace-matching attributes present now.
	// The walker removes each directive attribute before invoking its
	// handler; what this snapshot still holds after a plugin's declared
	// directives ran is that plugin's unhandled attributes.
	snap := make([]map[string]string, len(t.langs))
	for i, lang := range t.langs {
		ns := lang.Namespace()
		for _, a := range n.Attrs {
			if a.Space != ns {
				continue
			}
			if snap[i] == nil {
				snap[i] = map[string]string{}
			}
			snap[i][a.Local] = a.Value
		}
	}

	for i, lang := range t.langs {
		if snap[i] == nil {
			continue
		}
		ns := lang.Namespace()
		for _, tag := range lang.Tags() {
			raw, ok := n.Attr(ns, tag)
			if !ok {
				continue
			}
			delete(snap[i], tag)
			n.RemoveAttr(ns, tag)
			h := lang.Handler(tag)
			if h == nil {
				continue
			}
			if debug.Op() {
				debug.Logf("op %s:%s on %s\n", ns, tag, n.Path())
			}
			seq, err := h(t, n, raw, local, global)
			if err != nil {
				return err
			}
			switch {
			case len(seq) == 0:
				n.Detach()
				return nil
			case seq[0] != n:
				n.ReplaceWith(seq...)
				return nil
			}
		}
		if len(snap[i]) > 0 {
			t.warn(ns, n, snap[i])
		}
	}

	for _, c := range append([]*dom.Node(nil), n.Children...) {
		if err := t.ProcessNode(c, local.Copy(), global); err != nil {
			return err
		}
	}
	return nil
}

func (t *Template) warn(ns string, n *dom.Node, attrs map[string]string) {
	names := make([]string, 0, len(attrs))
	for name := range attrs {
		names = append(names, name)
	}
	sort.Strings(names)
	w := Warning{
		Namespace: ns,
		Element:   n.Name,
		Path:      n.Path(),
		Line:      n.Line,
		Attrs:     names,
	}
	if t.WarnFunc != nil {
		t.WarnFunc(w)
		return
	}
	debug.Logf("tal: %s\n", w)
}
