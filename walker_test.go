package tal

import (
	"strings"
	"testing"

	"github.com/tal-format/tal/dom"
	"github.com/tal-format/tal/tales"
)

const testNS = "urn:test"

type fakeLang struct {
	ns   string
	tags []string
	h    map[string]Handler
}

func (f *fakeLang) Namespace() string {
	return f.ns
}

func (f *fakeLang) Tags() []string {
	return f.tags
}

func (f *fakeLang) Handler(tag string) Handler {
	return f.h[tag]
}

func keep(t *Template, n *dom.Node, value string, local, global tales.Context) ([]*dom.Node, error) {
	return []*dom.Node{n}, nil
}

func parseDoc(t *testing.T, body string) *dom.Node {
	t.Helper()
	root, err := dom.ParseString(`<root xmlns:t="` + testNS + `">` + body + `</root>`)
	if err != nil {
		t.Fatal(err)
	}
	return root
}

func TestRemovalDetachesOnlyTheNode(t *testing.T) {
	root := parseDoc(t, `<a t:drop="x"/><b/>`)
	var dropped []string
	lang := &fakeLang{ns: testNS, tags: []string{"drop", "later"}, h: map[string]Handler{
		"drop": func(tp *Template, n *dom.Node, v string, l, g tales.Context) ([]*dom.Node, error) {
			dropped = append(dropped, n.Name)
			return nil, nil
		},
		"later": func(tp *Template, n *dom.Node, v string, l, g tales.Context) ([]*dom.Node, error) {
			t.Error("directive after removal must not run")
			return []*dom.Node{n}, nil
		},
	}}
	tpl := New(lang)
	if err := tpl.Process(root, nil); err != nil {
		t.Fatal(err)
	}
	out := root.XML()
	if strings.Contains(out, "<a") || !strings.Contains(out, "<b/>") {
		t.Errorf("got %s, want a removed and b intact", out)
	}
	if len(dropped) != 1 || dropped[0] != "a" {
		t.Errorf("dropped %v, want exactly [a]", dropped)
	}
}

func TestRemovalStopsFurtherDirectives(t *testing.T) {
	root := parseDoc(t, `<a t:drop="" t:other=""/>`)
	ran := []string{}
	lang := &fakeLang{ns: testNS, tags: []string{"drop", "other"}, h: map[string]Handler{
		"drop": func(tp *Template, n *dom.Node, v string, l, g tales.Context) ([]*dom.Node, error) {
			ran = append(ran, "drop")
			return nil, nil
		},
		"other": func(tp *Template, n *dom.Node, v string, l, g tales.Context) ([]*dom.Node, error) {
			ran = append(ran, "other")
			return []*dom.Node{n}, nil
		},
	}}
	if err := New(lang).Process(root, nil); err != nil {
		t.Fatal(err)
	}
	if len(ran) != 1 || ran[0] != "drop" {
		t.Errorf("ran %v, want [drop]", ran)
	}
}

func TestReplacementSequence(t *testing.T) {
	root := parseDoc(t, `<a t:swap=""/><z/>`)
	lang := &fakeLang{ns: testNS, tags: []string{"swap"}, h: map[string]Handler{
		"swap": func(tp *Template, n *dom.Node, v string, l, g tales.Context) ([]*dom.Node, error) {
			return []*dom.Node{dom.NewText("x"), dom.NewElement("y")}, nil
		},
	}}
	if err := New(lang).Process(root, nil); err != nil {
		t.Fatal(err)
	}
	want := `<root xmlns:t="` + testNS + `">x<y/><z/></root>`
	if got := root.XML(); got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestDirectiveAttributeConsumed(t *testing.T) {
	root := parseDoc(t, `<a t:noop="x"/>`)
	lang := &fakeLang{ns: testNS, tags: []string{"noop"}, h: map[string]Handler{
		"noop": func(tp *Template, n *dom.Node, v string, l, g tales.Context) ([]*dom.Node, error) {
			if _, ok := n.Attr(testNS, "noop"); ok {
				t.Error("attribute still present inside handler")
			}
			if v != "x" {
				t.Errorf("raw value %q, want x", v)
			}
			return []*dom.Node{n}, nil
		},
	}}
	if err := New(lang).Process(root, nil); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(root.XML(), "noop") {
		t.Errorf("directive attribute leaked into output: %s", root.XML())
	}
}

func TestLocalContextIsolation(t *testing.T) {
	root := parseDoc(t, `<a t:set="inner"><b t:get=""/></a><c t:get=""/>`)
	var seen []any
	lang := &fakeLang{ns: testNS, tags: []string{"set", "get"}, h: map[string]Handler{
		"set": func(tp *Template, n *dom.Node, v string, l, g tales.Context) ([]*dom.Node, error) {
			l["x"] = v
			return []*dom.Node{n}, nil
		},
		"get": func(tp *Template, n *dom.Node, v string, l, g tales.Context) ([]*dom.Node, error) {
			seen = append(seen, tales.ProcessPath("x", l, g))
			return []*dom.Node{n}, nil
		},
	}}
	if err := New(lang).Process(root, nil); err != nil {
		t.Fatal(err)
	}
	if len(seen) != 2 || seen[0] != "inner" || seen[1] != nil {
		t.Errorf("seen %v, want [inner <nil>]", seen)
	}
}

func TestGlobalContextPersistence(t *testing.T) {
	root := parseDoc(t, `<a t:gset="v"/><b><c t:get=""/></b>`)
	var seen []any
	lang := &fakeLang{ns: testNS, tags: []string{"gset", "get"}, h: map[string]Handler{
		"gset": func(tp *Template, n *dom.Node, v string, l, g tales.Context) ([]*dom.Node, error) {
			g["x"] = v
			return []*dom.Node{n}, nil
		},
		"get": func(tp *Template, n *dom.Node, v string, l, g tales.Context) ([]*dom.Node, error) {
			seen = append(seen, tales.ProcessPath("x", l, g))
			return []*dom.Node{n}, nil
		},
	}}
	if err := New(lang).Process(root, nil); err != nil {
		t.Fatal(err)
	}
	if len(seen) != 1 || seen[0] != "v" {
		t.Errorf("seen %v, want [v]", seen)
	}
}

func TestGlobalSeededWithoutMutatingCaller(t *testing.T) {
	root := parseDoc(t, `<a t:gset="v"/>`)
	lang := &fakeLang{ns: testNS, tags: []string{"gset"}, h: map[string]Handler{
		"gset": func(tp *Template, n *dom.Node, v string, l, g tales.Context) ([]*dom.Node, error) {
			g["x"] = v
			return []*dom.Node{n}, nil
		},
	}}
	data := tales.Context{"seed": 1}
	if err := New(lang).Process(root, data); err != nil {
		t.Fatal(err)
	}
	if _, ok := data["x"]; ok {
		t.Error("caller data mutated by traversal")
	}
}

func TestPluginOrderPrecedence(t *testing.T) {
	const otherNS = "urn:other"
	root, err := dom.ParseString(`<root xmlns:t="` + testNS + `" xmlns:u="` + otherNS + `">` +
		`<a t:swap="" u:mark=""/></root>`)
	if err != nil {
		t.Fatal(err)
	}
	var ran []string
	first := &fakeLang{ns: testNS, tags: []string{"swap"}, h: map[string]Handler{
		"swap": func(tp *Template, n *dom.Node, v string, l, g tales.Context) ([]*dom.Node, error) {
			ran = append(ran, "swap")
			return []*dom.Node{dom.NewText("gone")}, nil
		},
	}}
	second := &fakeLang{ns: otherNS, tags: []string{"mark"}, h: map[string]Handler{
		"mark": func(tp *Template, n *dom.Node, v string, l, g tales.Context) ([]*dom.Node, error) {
			ran = append(ran, "mark")
			return []*dom.Node{n}, nil
		},
	}}
	if err := New(first, second).Process(root, nil); err != nil {
		t.Fatal(err)
	}
	if len(ran) != 1 || ran[0] != "swap" {
		t.Errorf("ran %v, want replacement to preempt later plugins", ran)
	}
}

func TestUnhandledAttributeWarning(t *testing.T) {
	root := parseDoc(t, `<a t:bogus="1" t:noop="2"/>`)
	lang := &fakeLang{ns: testNS, tags: []string{"noop"}, h: map[string]Handler{
		"noop": keep,
	}}
	tpl := New(lang)
	var warnings []Warning
	tpl.WarnFunc = func(w Warning) {
		warnings = append(warnings, w)
	}
	if err := tpl.Process(root, nil); err != nil {
		t.Fatal(err)
	}
	if len(warnings) != 1 {
		t.Fatalf("got %d warnings, want 1", len(warnings))
	}
	w := warnings[0]
	if w.Namespace != testNS || w.Element != "a" {
		t.Errorf("warning %+v", w)
	}
	if len(w.Attrs) != 1 || w.Attrs[0] != "bogus" {
		t.Errorf("warning attrs %v, want [bogus]", w.Attrs)
	}
	if w.Line != 1 {
		t.Errorf("warning line %d, want 1", w.Line)
	}
}

func TestNoWarningWhenAllHandled(t *testing.T) {
	root := parseDoc(t, `<a t:noop="1"/>`)
	lang := &fakeLang{ns: testNS, tags: []string{"noop"}, h: map[string]Handler{"noop": keep}}
	tpl := New(lang)
	tpl.WarnFunc = func(w Warning) {
		t.Errorf("unexpected warning %v", w)
	}
	if err := tpl.Process(root, nil); err != nil {
		t.Fatal(err)
	}
}

func TestNonElementRootSkipped(t *testing.T) {
	n := dom.NewText("hello")
	if err := New().Process(n, nil); err != nil {
		t.Fatal(err)
	}
}
