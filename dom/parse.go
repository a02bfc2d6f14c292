package dom

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
)

var ErrParse = errors.New("parse error")

// Parse reads an XML document and returns its root element. Prolog content
// before the root element is discarded. Namespace prefixes are resolved at
// read time; xmlns declarations stay on their elements so the tree can be
// written back with the original prefixes.
func Parse(data []byte) (*Node, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.Entity = xml.HTMLEntity
	var (
		root *Node
		cur  *Node
	)
	for {
		start := dec.InputOffset()
		tok, err := dec.RawToken()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParse, err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			n := &Node{
				Kind:   ElementKind,
				Prefix: t.Name.Space,
				Name:   t.Name.Local,
				Line:   lineAt(data, start),
			}
			for _, a := range t.Attr {
				switch {
				case a.Name.Space == "xmlns":
					n.Attrs = append(n.Attrs, Attr{Space: "xmlns", Local: a.Name.Local, Value: a.Value})
				case a.Name.Space == "" && a.Name.Local == "xmlns":
					n.Attrs = append(n.Attrs, Attr{Local: "xmlns", Value: a.Value})
				default:
					n.Attrs = append(n.Attrs, Attr{Prefix: a.Name.Space, Local: a.Name.Local, Value: a.Value})
				}
			}
			if cur == nil {
				if root != nil {
					return nil, fmt.Errorf("%w: line %d: multiple root elements", ErrParse, n.Line)
				}
				root = n
			} else {
				cur.AppendChild(n)
			}
			// Declarations on this element are in scope for the
			// element itself, so resolve after attachment.
			n.Space = n.LookupPrefix(n.Prefix)
			for i := range n.Attrs {
				a := &n.Attrs[i]
				if a.Prefix != "" && a.Space == "" {
					a.Space = n.LookupPrefix(a.Prefix)
				}
			}
			cur = n
		case xml.EndElement:
			if cur == nil {
				return nil, fmt.Errorf("%w: line %d: unexpected </%s>", ErrParse, lineAt(data, start), rawName(t.Name))
			}
			if cur.Prefix != t.Name.Space || cur.Name != t.Name.Local {
				return nil, fmt.Errorf("%w: line %d: </%s> closes <%s>", ErrParse,
					lineAt(data, start), rawName(t.Name), cur.tagName())
			}
			cur = cur.Parent
		case xml.CharData:
			if cur == nil {
				continue
			}
			c := NewText(string(t))
			c.Line = lineAt(data, start)
			cur.AppendChild(c)
		case xml.Comment:
			if cur == nil {
				continue
			}
			cur.AppendChild(&Node{Kind: CommentKind, Text: string(t), Line: lineAt(data, start)})
		case xml.ProcInst:
			if cur == nil {
				continue
			}
			cur.AppendChild(&Node{
				Kind: ProcInstKind,
				Name: t.Target,
				Text: string(t.Inst),
				Line: lineAt(data, start),
			})
		case xml.Directive:
			if cur == nil {
				continue
			}
			cur.AppendChild(&Node{Kind: DirectiveKind, Text: string(t), Line: lineAt(data, start)})
		}
	}
	if cur != nil {
		return nil, fmt.Errorf("%w: unexpected end of input in <%s>", ErrParse, cur.tagName())
	}
	if root == nil {
		return nil, fmt.Errorf("%w: no root element", ErrParse)
	}
	return root, nil
}

func ParseString(s string) (*Node, error) {
	return Parse([]byte(s))
}

// ParseFragment parses a string of XML content (text and zero or more
// elements) and returns the resulting sequence of detached nodes.
func ParseFragment(s string) ([]*Node, error) {
	wrapped, err := Parse([]byte("<fragment>" + s + "</fragment>"))
	if err != nil {
		return nil, err
	}
	seq := append([]*Node(nil), wrapped.Children...)
	for _, n := range seq {
		n.Parent = nil
		n.ParentIndex = 0
		n.Line = 0
	}
	return seq, nil
}

func rawName(n xml.Name) string {
	if n.Space != "" {
		return n.Space + ":" + n.Local
	}
	return n.Local
}

func (n *Node) tagName() string {
	if n.Prefix != "" {
		return n.Prefix + ":" + n.Name
	}
	return n.Name
}

func lineAt(data []byte, off int64) int {
	if off > int64(len(data)) {
		off = int64(len(data))
	}
	return 1 + bytes.Count(data[:off], []byte{'\n'})
}
