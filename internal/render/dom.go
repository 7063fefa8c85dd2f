package render

import (
	"strings"

	"golang.org/x/net/html"
)

const hookAttr = "data-sf-hook"

// findHook returns the first element carrying data-sf-hook=name in
// depth-first document order, or nil. A missing hook makes the caller's
// step a no-op.
func findHook(n *html.Node, name string) *html.Node {
	if n.Type == html.ElementNode && attrValue(n, hookAttr) == name {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findHook(c, name); found != nil {
			return found
		}
	}
	return nil
}

func findHooks(n *html.Node, name string) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && attrValue(n, hookAttr) == name {
			out = append(out, n)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return out
}

func findElement(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, tag); found != nil {
			return found
		}
	}
	return nil
}

func attrValue(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func setAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if a.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

func removeAttr(n *html.Node, key string) {
	for i, a := range n.Attr {
		if a.Key == key {
			n.Attr = append(n.Attr[:i], n.Attr[i+1:]...)
			return
		}
	}
}

func setText(n *html.Node, text string) {
	removeChildren(n)
	n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
}

// setInnerHTML replaces n's children with a parsed fragment. Used for the
// rich-text hero subtitle.
func setInnerHTML(n *html.Node, fragment string) {
	nodes, err := html.ParseFragment(strings.NewReader(fragment), n)
	if err != nil {
		setText(n, stripTags(fragment))
		return
	}
	removeChildren(n)
	for _, child := range nodes {
		n.AppendChild(child)
	}
}

func removeChildren(n *html.Node) {
	for n.FirstChild != nil {
		n.RemoveChild(n.FirstChild)
	}
}

func removeNode(n *html.Node) {
	if n.Parent != nil {
		n.Parent.RemoveChild(n)
	}
}

// cloneNode deep-copies an element subtree so synthesized product cards
// keep the template's own card markup.
func cloneNode(n *html.Node) *html.Node {
	clone := &html.Node{
		Type:     n.Type,
		DataAtom: n.DataAtom,
		Data:     n.Data,
		Attr:     append([]html.Attribute(nil), n.Attr...),
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		clone.AppendChild(cloneNode(c))
	}
	return clone
}
