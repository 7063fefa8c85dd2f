package render

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/net/html"
)

const descriptionLimit = 120

func formatPrice(price decimal.Decimal) string {
	return "₱" + price.StringFixed(2)
}

// stripTags flattens rich-text HTML to plain text for card descriptions.
func stripTags(s string) string {
	if !strings.ContainsAny(s, "<>") {
		return strings.TrimSpace(s)
	}
	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		return strings.TrimSpace(s)
	}
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return strings.TrimSpace(strings.Join(strings.Fields(sb.String()), " "))
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return strings.TrimSpace(string(runes[:limit])) + "…"
}

// absoluteURL resolves a storage path against the asset base URL. Paths
// that already name a scheme (or are protocol-relative) pass through.
func absoluteURL(base, path string) string {
	if path == "" {
		return ""
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") ||
		strings.HasPrefix(path, "//") || strings.HasPrefix(path, "data:") {
		return path
	}
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(path, "/")
}
