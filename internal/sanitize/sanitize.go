package sanitize

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Text strips markup from an HTML fragment and collapses the remaining
// whitespace. Input that fails to parse is returned collapsed but otherwise
// untouched rather than dropped.
func Text(html string) string {
	if html == "" {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return Collapse(html)
	}
	return Collapse(doc.Text())
}

// Collapse flattens runs of whitespace (including non-breaking spaces) into
// single spaces and trims the ends.
func Collapse(s string) string {
	s = strings.ReplaceAll(s, " ", " ")
	return strings.Join(strings.Fields(s), " ")
}
