package dom

import (
	"io"
	"strings"
)

// WriteTo serializes the subtree rooted at n as XML.
func (n *Node) WriteTo(w io.Writer) error {
	sw, ok := w.(io.StringWriter)
	if !ok {
		sw = &plainStringWriter{w}
	}
	return n.write(sw)
}

// XML returns the subtree rooted at n serialized as XML.
func (n *Node) XML() string {
	var b strings.Builder
	n.write(&b)
	return b.String()
}

func (n *Node) write(w io.StringWriter) error {
	switch n.Kind {
	case TextKind:
		return writeEscaped(w, n.Text, false)
	case CommentKind:
		return writeAll(w, "<!--", n.Text, "-->")
	case ProcInstKind:
		if n.Text == "" {
			return writeAll(w, "<?", n.Name, "?>")
		}
		return writeAll(w, "<?", n.Name, " ", n.Text, "?>")
	case DirectiveKind:
		return writeAll(w, "<!", n.Text, ">")
	}
	if err := writeAll(w, "<", n.tagName()); err != nil {
		return err
	}
	for i := range n.Attrs {
		a := &n.Attrs[i]
		if err := writeAll(w, " ", a.name(), `="`); err != nil {
			return err
		}
		if err := writeEscaped(w, a.Value, true); err != nil {
			return err
		}
		if _, err := w.WriteString(`"`); err != nil {
			return err
		}
	}
	if len(n.Children) == 0 {
		_, err := w.WriteString("/>")
		return err
	}
	if _, err := w.WriteString(">"); err != nil {
		return err
	}
	for _, c := range n.Children {
		if err := c.write(w); err != nil {
			return err
		}
	}
	return writeAll(w, "</", n.tagName(), ">")
}

func (a *Attr) name() string {
	switch {
	case a.Space == "xmlns":
		return "xmlns:" + a.Local
	case a.Prefix != "":
		return a.Prefix + ":" + a.Local
	default:
		return a.Local
	}
}

func writeAll(w io.StringWriter, parts ...string) error {
	for _, p := range parts {
		if _, err := w.WriteString(p); err != nil {
			return err
		}
	}
	return nil
}

func writeEscaped(w io.StringWriter, s string, inAttr bool) error {
	last := 0
	for i := 0; i < len(s); i++ {
		var esc string
		switch s[i] {
		case '&':
			esc = "&amp;"
		case '<':
			esc = "&lt;"
		case '>':
			esc = "&gt;"
		case '"':
			if !inAttr {
				continue
			}
			esc = "&quot;"
		default:
			continue
		}
		if _, err := w.WriteString(s[last:i]); err != nil {
			return err
		}
		if _, err := w.WriteString(esc); err != nil {
			return err
		}
		last = i + 1
	}
	_, err := w.WriteString(s[last:])
	return err
}

type plainStringWriter struct {
	w io.Writer
}

func (p *plainStringWriter) WriteString(s string) (int, error) {
	return p.w.Write([]byte(s))
}
