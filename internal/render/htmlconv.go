package render

import (
	"strings"

	"golang.org/x/net/html"
)

// ConvertBody converts an untrusted HTML comment body to Markdown. It walks
// a parsed fragment rather than pattern-matching raw markup, so nested and
// attribute-bearing content cannot smuggle tags past the conversion. Only a
// bounded tag set gains Markdown structure; anything else is flattened to
// its text content.
func ConvertBody(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	doc, err := html.Parse(strings.NewReader("<body>" + raw + "</body>"))
	if err != nil {
		return decodeEntities(raw)
	}
	body := findBodyNode(doc)
	if body == nil {
		return decodeEntities(raw)
	}

	var b strings.Builder
	for c := body.FirstChild; c != nil; c = c.NextSibling {
		convertNode(&b, c)
	}
	return strings.TrimSpace(decodeEntities(b.String()))
}

func convertNode(b *strings.Builder, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		b.WriteString(n.Data)
	case html.CommentNode:
		return
	case html.ElementNode:
		convertElement(b, n)
	default:
		convertChildren(b, n)
	}
}

func convertElement(b *strings.Builder, n *html.Node) {
	switch strings.ToLower(n.Data) {
	case "p":
		b.WriteString("\n\n")
		convertChildren(b, n)
	case "a":
		text := childrenToString(n)
		if href := attrValue(n, "href"); isSafeHref(href) {
			b.WriteString("[" + text + "](" + strings.TrimSpace(href) + ")")
		} else {
			// unsafe scheme: keep the text, drop the href entirely
			b.WriteString(text)
		}
	case "pre":
		// raw text content, not recursively converted, so code samples
		// quoting HTML survive untouched
		code := strings.Trim(textContent(n), "\n")
		b.WriteString("\n\n```\n" + code + "\n```\n\n")
	case "code":
		b.WriteString("`" + textContent(n) + "`")
	case "i", "em":
		b.WriteString("*" + childrenToString(n) + "*")
	case "b", "strong":
		b.WriteString("**" + childrenToString(n) + "**")
	case "br":
		b.WriteString("\n")
	default:
		convertChildren(b, n)
	}
}

func convertChildren(b *strings.Builder, n *html.Node) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		convertNode(b, c)
	}
}

func childrenToString(n *html.Node) string {
	var b strings.Builder
	convertChildren(&b, n)
	return b.String()
}

func textContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

func findBodyNode(n *html.Node) *html.Node {
	if n == nil {
		return nil
	}
	if n.Type == html.ElementNode && strings.EqualFold(n.Data, "body") {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if b := findBodyNode(c); b != nil {
			return b
		}
	}
	return nil
}

func attrValue(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if strings.EqualFold(a.Key, key) {
			return a.Val
		}
	}
	return ""
}

// isSafeHref allows http(s), same-document fragments, root-relative paths
// and bare relative paths. Anything carrying another scheme separator
// (javascript:, data:, vbscript:, ...) is rejected.
func isSafeHref(href string) bool {
	href = strings.TrimSpace(href)
	if href == "" {
		return false
	}
	lower := strings.ToLower(href)
	if strings.HasPrefix(lower, "http:") || strings.HasPrefix(lower, "https:") {
		return true
	}
	if strings.HasPrefix(href, "#") || strings.HasPrefix(href, "/") {
		return true
	}
	return !strings.Contains(href, ":")
}

// entityReplacer runs a single left-to-right pass, so already-decoded text
// is never decoded twice (&amp;lt; becomes &lt;, not <).
var entityReplacer = strings.NewReplacer(
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&#x27;", "'",
	"&#39;", "'",
	"&amp;", "&",
)

func decodeEntities(s string) string {
	return entityReplacer.Replace(s)
}
