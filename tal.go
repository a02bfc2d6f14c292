// Package tal renders XML documents whose elements carry namespace
// qualified directive attributes. A Template walks the document tree,
// dispatching each recognized attribute to a Language plugin; plugins
// evaluate their arguments with package tales and mutate the tree in place.
// The caller owns parsing the source and serializing the result; package
// dom provides both.
package tal

import (
	"github.com/tal-format/tal/dom"
	"github.com/tal-format/tal/tales"
)

// Template holds the ordered plugin list for one template. The zero value
// processes no directives; attach plugins with Use before Process.
type Template struct {
	langs []Language

	// WarnFunc receives unhandled-attribute warnings. When nil they are
	// written to stderr.
	WarnFunc func(Warning)
}

func New(langs ...Language) *Template {
	return &Template{langs: langs}
}

// Use appends plugins to the template's ordered plugin list.
func (t *Template) Use(langs ...Language) *Template {
	t.langs = append(t.langs, langs...)
	return t
}

// SetLanguages replaces the template's plugin list.
func (t *Template) SetLanguages(langs ...Language) *Template {
	t.langs = append(t.langs[:0:0], langs...)
	return t
}

// Process walks the tree rooted at root, mutating it in place. A fresh
// empty local context and a fresh global context seeded from data live for
// exactly this one call; data itself is never mutated.
func (t *Template) Process(root *dom.Node, data tales.Context) error {
	global := make(tales.Context, len(data))
	for k, v := range data {
		global[k] = v
	}
	return t.ProcessNode(root, tales.Context{}, global)
}

// Render parses an XML source, processes it against data, and returns the
// mutated tree for serialization.
func (t *Template) Render(src []byte, data tales.Context) (*dom.Node, error) {
	root, err := dom.Parse(src)
	if err != nil {
		return nil, err
	}
	if err := t.Process(root, data); err != nil {
		return nil, err
	}
	return root, nil
}
