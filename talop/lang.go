// Package talop implements the default TAL directive plugin: define,
// condition, repeat, content, replace, attributes, and omit-tag, in that
// order of precedence.
package talop

import (
	"strings"

	"github.com/tal-format/tal"
)

// Namespace is the attribute namespace the plugin governs.
const Namespace = "http://xml.zope.org/namespaces/tal"

type language struct{}

// New returns the default TAL plugin.
func New() tal.Language {
	return language{}
}

func (language) Namespace() string {
	return Namespace
}

func (language) Tags() []string {
	return []string{
		"define",
		"condition",
		"repeat",
		"content",
		"replace",
		"attributes",
		"omit-tag",
	}
}

func (language) Handler(tag string) tal.Handler {
	return handlers[tag]
}

var handlers = map[string]tal.Handler{
	"define":     processDefine,
	"condition":  processCondition,
	"repeat":     processRepeat,
	"content":    processContent,
	"replace":    processReplace,
	"attributes": processAttributes,
	"omit-tag":   processOmitTag,
}

// cutWord splits one leading whitespace-delimited word off s.
func cutWord(s string) (word, rest string, ok bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", "", false
	}
	i := strings.IndexAny(s, " \t")
	if i < 0 {
		return s, "", true
	}
	return s[:i], strings.TrimSpace(s[i+1:]), true
}
