package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// contentSelectors are tried in strict priority order: platform-specific
// body containers first, then semantic tags, then generic content class
// names. The first non-empty match wins.
var contentSelectors = []string{
	// Substack
	"div.body.markup",
	"div.available-content",
	// Semantic
	"article",
	"main",
	// Generic
	"div.post-content",
	"div.entry-content",
	"div.article-content",
	"div.content",
}

// locateContent selects the root element of the article body. It never
// fails: when no selector matches, it returns an empty synthetic container
// and found=false so conversion can proceed to an empty fragment.
func locateContent(doc *goquery.Document) (content *goquery.Selection, found bool) {
	for _, selector := range contentSelectors {
		if sel := doc.Find(selector).First(); sel.Length() > 0 {
			return sel, true
		}
	}

	empty := &html.Node{
		Type:     html.ElementNode,
		Data:     "div",
		DataAtom: atom.Div,
	}
	return goquery.NewDocumentFromNode(empty).Selection, false
}
