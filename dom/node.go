// Package dom holds the mutable XML tree the template engine walks: a
// namespace-resolving reader, the tree-edit operations directive handlers
// rely on, and a writer.
package dom

import (
	"strconv"
	"strings"
)

type Kind int

const (
	ElementKind Kind = iota
	TextKind
	CommentKind
	ProcInstKind
	DirectiveKind
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		ElementKind:   "Element",
		TextKind:      "Text",
		CommentKind:   "Comment",
		ProcInstKind:  "ProcInst",
		DirectiveKind: "Directive",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

// Attr is one attribute of an element. Space holds the resolved namespace
// URI, Prefix the prefix as written in the source. Unprefixed attributes
// have both empty; xmlns declarations keep Space == "xmlns".
type Attr struct {
	Prefix string
	Space  string
	Local  string
	Value  string
}

// Node is one node of a mutable XML tree. Parent and ParentIndex are
// maintained by the edit methods; code outside this package should mutate
// the tree only through them.
type Node struct {
	Kind        Kind
	Parent      *Node
	ParentIndex int

	Prefix string
	Space  string
	Name   string
	Attrs  []Attr

	Children []*Node

	// Text holds character data for TextKind, comment text for
	// CommentKind, and the raw body for ProcInstKind and DirectiveKind.
	Text string

	// Line is the 1-based source line of the node, 0 when synthesized.
	Line int
}

func NewElement(name string) *Node {
	return &Node{Kind: ElementKind, Name: name}
}

func NewText(text string) *Node {
	return &Node{Kind: TextKind, Text: text}
}

func (n *Node) IsElement() bool {
	return n.Kind == ElementKind
}

// Attr returns the value of the attribute with the given namespace URI and
// local name.
func (n *Node) Attr(space, local string) (string, bool) {
	for i := range n.Attrs {
		a := &n.Attrs[i]
		if a.Space == space && a.Local == local {
			return a.Value, true
		}
	}
	return "", false
}

// RemoveAttr removes the attribute with the given namespace URI and local
// name, reporting whether it was present.
func (n *Node) RemoveAttr(space, local string) bool {
	for i := range n.Attrs {
		a := &n.Attrs[i]
		if a.Space == space && a.Local == local {
			n.Attrs = append(n.Attrs[:i], n.Attrs[i+1:]...)
			return true
		}
	}
	return false
}

// SetAttr sets an attribute by its name as written (possibly "prefix:local").
// The namespace URI of a prefixed name is resolved against the declarations
// in scope; an unresolvable prefix is kept verbatim with an empty URI.
func (n *Node) SetAttr(name, value string) {
	var prefix, space, local string
	if i := strings.IndexByte(name, ':'); i >= 0 {
		prefix, local = name[:i], name[i+1:]
		space = n.LookupPrefix(prefix)
	} else {
		local = name
	}
	for i := range n.Attrs {
		a := &n.Attrs[i]
		if a.Prefix == prefix && a.Local == local {
			a.Value = value
			return
		}
	}
	n.Attrs = append(n.Attrs, Attr{Prefix: prefix, Space: space, Local: local, Value: value})
}

// LookupPrefix resolves a namespace prefix against the xmlns declarations on
// this element and its ancestors. The empty prefix resolves to the default
// namespace.
func (n *Node) LookupPrefix(prefix string) string {
	for e := n; e != nil; e = e.Parent {
		if e.Kind != ElementKind {
			continue
		}
		for i := range e.Attrs {
			a := &e.Attrs[i]
			if a.Space == "xmlns" && a.Local == prefix {
				return a.Value
			}
			if prefix == "" && a.Prefix == "" && a.Local == "xmlns" {
				return a.Value
			}
		}
	}
	return ""
}

func (n *Node) Root() *Node {
	r := n
	for r.Parent != nil {
		r = r.Parent
	}
	return r
}

// AppendChild adds c as the last child of n.
func (n *Node) AppendChild(c *Node) {
	c.Parent = n
	c.ParentIndex = len(n.Children)
	n.Children = append(n.Children, c)
}

// SetChildren replaces all children of n with seq.
func (n *Node) SetChildren(seq ...*Node) {
	n.Children = n.Children[:0]
	for _, c := range seq {
		n.AppendChild(c)
	}
}

// Detach removes n from its parent. Detaching a parentless node is a no-op.
func (n *Node) Detach() {
	p := n.Parent
	if p == nil {
		return
	}
	i := n.ParentIndex
	p.Children = append(p.Children[:i], p.Children[i+1:]...)
	p.reindex(i)
	n.Parent = nil
	n.ParentIndex = 0
}

// ReplaceWith replaces n in its parent with seq: the first node takes n's
// position and each subsequent node is inserted immediately after the
// previous one. With no arguments it is equivalent to Detach.
func (n *Node) ReplaceWith(seq ...*Node) {
	p := n.Parent
	if p == nil {
		return
	}
	if len(seq) == 0 {
		n.Detach()
		return
	}
	i := n.ParentIndex
	rest := make([]*Node, len(p.Children)-i-1)
	copy(rest, p.Children[i+1:])
	p.Children = append(p.Children[:i], seq...)
	p.Children = append(p.Children, rest...)
	for _, c := range seq {
		c.Parent = p
	}
	p.reindex(i)
	n.Parent = nil
	n.ParentIndex = 0
}

// InsertAfter inserts sib as the next sibling of n.
func (n *Node) InsertAfter(sib *Node) {
	p := n.Parent
	if p == nil {
		return
	}
	i := n.ParentIndex + 1
	p.Children = append(p.Children, nil)
	copy(p.Children[i+1:], p.Children[i:])
	p.Children[i] = sib
	sib.Parent = p
	p.reindex(i)
}

func (n *Node) reindex(from int) {
	for i := from; i < len(n.Children); i++ {
		n.Children[i].ParentIndex = i
	}
}

// Clone returns a deep copy of n, detached from any parent.
func (n *Node) Clone() *Node {
	dst := &Node{}
	n.cloneTo(dst)
	return dst
}

func (n *Node) cloneTo(dst *Node) {
	dst.Kind = n.Kind
	dst.Prefix = n.Prefix
	dst.Space = n.Space
	dst.Name = n.Name
	dst.Text = n.Text
	dst.Line = n.Line
	if n.Attrs != nil {
		dst.Attrs = make([]Attr, len(n.Attrs))
		copy(dst.Attrs, n.Attrs)
	}
	if n.Children != nil {
		dst.Children = make([]*Node, len(n.Children))
		for i, c := range n.Children {
			cc := &Node{}
			c.cloneTo(cc)
			cc.Parent = dst
			cc.ParentIndex = i
			dst.Children[i] = cc
		}
	}
}

// Visit walks the subtree rooted at n depth first, calling f before and
// after each node's children. Returning false from a pre-order call skips
// the node's children.
func (n *Node) Visit(f func(node *Node, isPost bool) (bool, error)) error {
	desc, err := f(n, false)
	if err != nil {
		return err
	}
	if desc {
		for _, c := range append([]*Node(nil), n.Children...) {
			if err := c.Visit(f); err != nil {
				return err
			}
		}
	}
	_, err = f(n, true)
	return err
}

// TextContent returns the concatenated character data of the subtree.
func (n *Node) TextContent() string {
	var b strings.Builder
	n.textContent(&b)
	return b.String()
}

func (n *Node) textContent(b *strings.Builder) {
	if n.Kind == TextKind {
		b.WriteString(n.Text)
		return
	}
	for _, c := range n.Children {
		c.textContent(b)
	}
}

// Path renders the document position of n, for diagnostics.
func (n *Node) Path() string {
	if n.Parent == nil {
		if n.Kind == ElementKind {
			return "/" + n.Name
		}
		return "/"
	}
	prefix := n.Parent.Path()
	if n.Kind != ElementKind {
		return prefix
	}
	nth, dup := 0, false
	for _, sib := range n.Parent.Children {
		if sib.Kind != ElementKind || sib.Name != n.Name {
			continue
		}
		if sib == n {
			break
		}
		nth++
	}
	for _, sib := range n.Parent.Children {
		if sib != n && sib.Kind == ElementKind && sib.Name == n.Name {
			dup = true
			break
		}
	}
	p := prefix + "/" + n.Name
	if dup {
		p += "[" + strconv.Itoa(nth+1) + "]"
	}
	return p
}
