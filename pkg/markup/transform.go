package markup

import (
	"strings"

	"golang.org/x/net/html"
)

// CheckboxClasses are the classes applied when a label is moved around its
// checkbox. Empty values leave the existing class untouched.
type CheckboxClasses struct {
	Label string
	Input string
}

// AppendClass adds classes to every element matched by m. Classes already
// present are not repeated.
func AppendClass(src string, m Matcher, classes ...string) (string, bool) {
	frag, err := parse(src)
	if err != nil {
		return src, false
	}
	nodes := frag.findAll(m)
	if len(nodes) == 0 {
		return src, false
	}
	for _, n := range nodes {
		addClasses(n, classes...)
	}
	return frag.String(), true
}

// SetClass replaces the class attribute of every element matched by m.
func SetClass(src string, m Matcher, class string) (string, bool) {
	frag, err := parse(src)
	if err != nil {
		return src, false
	}
	nodes := frag.findAll(m)
	if len(nodes) == 0 {
		return src, false
	}
	for _, n := range nodes {
		setAttr(n, "class", class)
	}
	return frag.String(), true
}

// RelocateCheckboxLabel moves the label of the checkbox with the given id so
// that it wraps the checkbox: <label ...><input type="checkbox" .../> Text</label>.
// Only the checkbox carrying id and the label whose for attribute names it are
// touched. When either is missing the fragment is unchanged.
func RelocateCheckboxLabel(src, id string, classes CheckboxClasses) (string, bool) {
	if id == "" {
		return src, false
	}
	frag, err := parse(src)
	if err != nil {
		return src, false
	}
	checkbox := frag.find(All(Input("checkbox"), HasAttr("id", id)))
	if checkbox == nil {
		return src, false
	}
	label := frag.find(All(Element("label"), HasAttr("for", id)))
	if label == nil {
		return src, false
	}
	wrapLabel(label, checkbox, classes)
	return frag.String(), true
}

// AttrOf returns attribute key of the first element in src matched by m.
func AttrOf(src string, m Matcher, key string) (string, bool) {
	frag, err := parse(src)
	if err != nil {
		return "", false
	}
	n := frag.find(m)
	if n == nil {
		return "", false
	}
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// wrapLabel applies classes and moves checkbox to the start of label.
func wrapLabel(label, checkbox *html.Node, classes CheckboxClasses) {
	if classes.Label != "" {
		setAttr(label, "class", classes.Label)
	}
	if classes.Input != "" {
		setAttr(checkbox, "class", classes.Input)
	}
	if isAncestor(label, checkbox) {
		return
	}

	label.Parent.RemoveChild(label)
	checkbox.Parent.InsertBefore(label, checkbox)
	checkbox.Parent.RemoveChild(checkbox)

	first := label.FirstChild
	switch {
	case first == nil:
	case first.Type == html.TextNode:
		first.Data = " " + strings.TrimLeft(first.Data, " \t\r\n")
	default:
		label.InsertBefore(&html.Node{Type: html.TextNode, Data: " "}, first)
	}
	if label.FirstChild != nil {
		label.InsertBefore(checkbox, label.FirstChild)
	} else {
		label.AppendChild(checkbox)
	}
}

// InlineCheckboxOption rewrites one option of a multi-checkbox list: wrapper
// divs are dropped, labelClass is appended to the option label's classes and
// the label wraps its checkbox. The option holds a single checkbox, so a
// label without a matching for attribute is still taken.
func InlineCheckboxOption(src, labelClass string) (string, bool) {
	frag, err := parse(src)
	if err != nil {
		return src, false
	}
	divs := frag.findAll(Element("div"))
	for _, div := range divs {
		unwrap(div)
	}
	if label := frag.find(Element("label")); label != nil && strings.TrimSpace(labelClass) != "" {
		addClasses(label, labelClass)
	}
	relocated := false
	if checkbox := frag.find(Input("checkbox")); checkbox != nil {
		label := frag.find(All(Element("label"), HasAttr("for", Attr(checkbox, "id"))))
		if label == nil {
			label = frag.find(Element("label"))
		}
		if label != nil {
			wrapLabel(label, checkbox, CheckboxClasses{})
			relocated = true
		}
	}
	if !relocated && len(divs) == 0 {
		return src, false
	}
	return frag.String(), true
}

// ExtractElement removes the first element named tag from src and returns its
// markup alongside the remaining fragment.
func ExtractElement(src, tag string) (element, rest string, ok bool) {
	frag, err := parse(src)
	if err != nil {
		return "", src, false
	}
	n := frag.find(Element(tag))
	if n == nil {
		return "", src, false
	}
	n.Parent.RemoveChild(n)
	return renderNode(n), frag.String(), true
}

// Contains reports whether src holds an element matched by m.
func Contains(src string, m Matcher) bool {
	frag, err := parse(src)
	if err != nil {
		return false
	}
	return frag.find(m) != nil
}
