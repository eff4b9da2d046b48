// Package goquery extracts race cards from race-detail HTML using CSS
// selectors.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/autorace"
)

// NewDocument parses html into a document.
func NewDocument(html string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, autorace.Errorf(autorace.EINVALID, "failed to parse HTML: %v", err)
	}
	return doc, nil
}

// Text returns the trimmed text of the first element matching selector.
// The result is absent when nothing matches or the text is blank.
func Text(doc *goquery.Document, selector string) autorace.Optional[string] {
	sel := doc.Find(selector).First()
	if sel.Length() == 0 {
		return autorace.None[string]()
	}
	return nonBlank(sel.Text())
}

func nonBlank(s string) autorace.Optional[string] {
	s = strings.TrimSpace(s)
	if s == "" {
		return autorace.None[string]()
	}
	return autorace.Some(s)
}
