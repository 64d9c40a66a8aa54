package markup

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Matcher selects element nodes.
type Matcher func(n *html.Node) bool

// Element matches elements by tag name.
func Element(tag string) Matcher {
	tag = strings.ToLower(strings.TrimSpace(tag))
	return func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.Data == tag
	}
}

// Input matches <input> elements whose type is one of types. Without types
// every input matches.
func Input(types ...string) Matcher {
	return func(n *html.Node) bool {
		if n.Type != html.ElementNode || n.DataAtom != atom.Input {
			return false
		}
		if len(types) == 0 {
			return true
		}
		kind := strings.ToLower(Attr(n, "type"))
		if kind == "" {
			kind = "text"
		}
		for _, t := range types {
			if kind == t {
				return true
			}
		}
		return false
	}
}

// HasAttr matches elements whose attribute key equals value.
func HasAttr(key, value string) Matcher {
	return func(n *html.Node) bool {
		if n.Type != html.ElementNode {
			return false
		}
		for _, a := range n.Attr {
			if a.Key == key {
				return a.Val == value
			}
		}
		return false
	}
}

// Not inverts m.
func Not(m Matcher) Matcher {
	return func(n *html.Node) bool { return !m(n) }
}

// All matches when every matcher does.
func All(matchers ...Matcher) Matcher {
	return func(n *html.Node) bool {
		for _, m := range matchers {
			if !m(n) {
				return false
			}
		}
		return true
	}
}

// Any matches when one of matchers does.
func Any(matchers ...Matcher) Matcher {
	return func(n *html.Node) bool {
		for _, m := range matchers {
			if m(n) {
				return true
			}
		}
		return false
	}
}

// fragment is a parsed HTML snippet hanging off a synthetic root.
type fragment struct {
	root *html.Node
}

func parse(src string) (*fragment, error) {
	context := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(src), context)
	if err != nil {
		return nil, err
	}
	root := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	for _, n := range nodes {
		if n.Parent != nil {
			n.Parent.RemoveChild(n)
		}
		root.AppendChild(n)
	}
	return &fragment{root: root}, nil
}

func (f *fragment) String() string {
	return renderChildren(f.root)
}

func (f *fragment) find(m Matcher) *html.Node {
	return findFirst(f.root, m)
}

func (f *fragment) findAll(m Matcher) []*html.Node {
	var out []*html.Node
	walk(f.root, func(n *html.Node) {
		if m(n) {
			out = append(out, n)
		}
	})
	return out
}

func renderNode(n *html.Node) string {
	var b strings.Builder
	if err := html.Render(&b, n); err != nil {
		return ""
	}
	return b.String()
}

func renderChildren(n *html.Node) string {
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&b, c); err != nil {
			return ""
		}
	}
	return b.String()
}

func walk(n *html.Node, fn func(*html.Node)) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		fn(c)
		walk(c, fn)
	}
}

func findFirst(n *html.Node, m Matcher) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if m(c) {
			return c
		}
		if found := findFirst(c, m); found != nil {
			return found
		}
	}
	return nil
}

func isAncestor(ancestor, n *html.Node) bool {
	for p := n.Parent; p != nil; p = p.Parent {
		if p == ancestor {
			return true
		}
	}
	return false
}

// unwrap replaces n with its children.
func unwrap(n *html.Node) {
	parent := n.Parent
	if parent == nil {
		return
	}
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		n.RemoveChild(c)
		parent.InsertBefore(c, n)
		c = next
	}
	parent.RemoveChild(n)
}

// Attr returns the value of attribute key on n, or "".
func Attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val
		}
	}
	return ""
}

func setAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

func addClasses(n *html.Node, classes ...string) {
	current := strings.Fields(Attr(n, "class"))
	for _, class := range classes {
		for _, token := range strings.Fields(class) {
			if !containsToken(current, token) {
				current = append(current, token)
			}
		}
	}
	setAttr(n, "class", strings.Join(current, " "))
}

func containsToken(tokens []string, token string) bool {
	for _, t := range tokens {
		if t == token {
			return true
		}
	}
	return false
}
