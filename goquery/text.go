package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

var (
	trailingSpaceRe = regexp.MustCompile(`[ \t]+\n`)
	multiNewlineRe  = regexp.MustCompile(`\n{3,}`)
)

// skipTags are elements whose content never renders.
var skipTags = map[string]struct{}{
	"script": {}, "style": {}, "noscript": {}, "head": {}, "template": {},
}

// blockTags are elements that break lines around their content. The
// section heuristics depend on numbered headings landing at line starts,
// so the rendering must mirror what a browser's innerText produces.
var blockTags = map[string]struct{}{
	"address": {}, "article": {}, "aside": {}, "blockquote": {},
	"div": {}, "dl": {}, "dt": {}, "dd": {}, "fieldset": {}, "figure": {},
	"footer": {}, "form": {}, "h1": {}, "h2": {}, "h3": {}, "h4": {},
	"h5": {}, "h6": {}, "header": {}, "hr": {}, "li": {}, "main": {},
	"nav": {}, "ol": {}, "p": {}, "pre": {}, "section": {}, "table": {},
	"tr": {}, "ul": {},
}

// VisibleText parses HTML and renders its visible body text: block
// elements become line breaks, table cells a single space, script/style
// content is dropped. Trailing spaces before newlines are removed and
// runs of three or more newlines collapse to exactly two.
func VisibleText(rawHTML string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return "", err
	}

	nodes := doc.Find("body").Nodes
	if len(nodes) == 0 {
		nodes = doc.Selection.Nodes
	}

	var b strings.Builder
	for _, n := range nodes {
		renderText(&b, n)
	}
	return stripSpaces(b.String()), nil
}

func renderText(b *strings.Builder, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		b.WriteString(n.Data)
		return
	case html.CommentNode:
		return
	case html.ElementNode:
		if _, skip := skipTags[n.Data]; skip {
			return
		}
		if n.Data == "br" {
			b.WriteString("\n")
			return
		}
	}

	_, block := blockTags[n.Data]
	if block && n.Type == html.ElementNode {
		b.WriteString("\n")
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		renderText(b, c)
	}

	switch {
	case n.Type == html.ElementNode && (n.Data == "td" || n.Data == "th"):
		b.WriteString(" ")
	case block && n.Type == html.ElementNode:
		b.WriteString("\n")
	}
}

// stripSpaces tidies rendered text: trailing space before a newline is
// dropped and 3+ consecutive newlines collapse to 2, then the whole text
// is trimmed.
func stripSpaces(s string) string {
	s = trailingSpaceRe.ReplaceAllString(s, "\n")
	s = multiNewlineRe.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}
