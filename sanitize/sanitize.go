// Package sanitize normalizes arbitrary user text before it is sent to a
// language model.
package sanitize

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/go-shiori/go-readability"
	"golang.org/x/net/html"
)

// MaxChars caps the cleaned content length before the ellipsis marker.
const MaxChars = 8000

const ellipsis = "..."

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	// \w is ASCII-only in RE2; spell out letters and digits so accented and
	// CJK text survives cleaning.
	disallowedRe = regexp.MustCompile(`[^\p{L}\p{N}_\s.,!?’'":-]`)
	htmlTagRe    = regexp.MustCompile(`(?i)<\s*(p|div|br|h[1-6]|article|section|span|a|ul|ol|li|html|body|strong|em)\b`)
)

// Clean collapses whitespace runs to single spaces, strips characters outside
// the whitelist (word characters, whitespace, and basic punctuation), truncates
// to MaxChars with an ellipsis marker, and trims the result.
func Clean(s string) string {
	if s == "" {
		return ""
	}
	s = whitespaceRe.ReplaceAllString(s, " ")
	s = disallowedRe.ReplaceAllString(s, "")
	if utf8.RuneCountInString(s) > MaxChars {
		// truncate on a rune boundary, never mid-character
		s = string([]rune(s)[:MaxChars]) + ellipsis
	}
	return strings.TrimSpace(s)
}

// CleanHTML behaves like Clean but first extracts readable text when the input
// carries HTML markup, so tags never leak into a prompt.
func CleanHTML(s string) string {
	if htmlTagRe.MatchString(s) {
		if text := extractText(s); text != "" {
			s = text
		}
	}
	return Clean(s)
}

func extractText(htmlStr string) string {
	doc, err := html.Parse(strings.NewReader(htmlStr))
	if err != nil {
		return ""
	}

	article, err := readability.FromDocument(doc, nil)
	if err == nil && strings.TrimSpace(article.TextContent) != "" {
		return article.TextContent
	}

	// Readability rejects fragments without enough structure; fall back to a
	// plain text-node walk.
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			text := strings.TrimSpace(n.Data)
			if text != "" {
				b.WriteString(text)
				b.WriteString(" ")
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return strings.TrimSpace(b.String())
}
