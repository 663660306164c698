package goquery

import (
	"context"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// backrefClassPattern matches class names that mark back-reference links
// inside footnote definitions.
var backrefClassPattern = regexp.MustCompile(`(?i)backref|footnote-back`)

// backrefSymbols are the visible texts back-reference links commonly carry.
var backrefSymbols = map[string]bool{
	"↩":      true,
	"↑":      true,
	"^":      true,
	"return": true,
}

// footnoteIDPattern matches element identifiers that denote footnote
// definitions or references.
var footnoteIDPattern = regexp.MustCompile(`footnote-`)

// leadingLabelPattern matches the bracketed-or-bare numeric label some
// sources prepend to footnote definition text.
var leadingLabelPattern = regexp.MustCompile(`^\[?\d+\]?\s*`)

// footnoteIndex maps footnote identifiers to rendered Typst markup. Every
// definition is stored under both the bare id and the "#"-prefixed form so
// fragment-style and bare-id lookups succeed identically. An index is
// built fresh for each conversion and discarded afterwards.
type footnoteIndex map[string]string

func (ix footnoteIndex) add(id, markup string) {
	ix[id] = markup
	ix["#"+id] = markup
}

// resolve looks up a reference fragment, trying the "#"-prefixed key
// before the bare one.
func (ix footnoteIndex) resolve(fragment string) (string, bool) {
	if markup, ok := ix["#"+fragment]; ok {
		return markup, true
	}
	markup, ok := ix[fragment]
	return markup, ok
}

// buildFootnoteIndex extracts footnote definitions from the document and
// removes them from the tree so the render pass never revisits them.
//
// Two strategies run in order. Strategy A handles a dedicated
// div.footnotes container (markdown processors, Substack exports): each
// identified list item has its back-reference markers removed, is rendered,
// and the whole container is then dropped. Strategy B sweeps the content
// root for scattered elements whose id looks like a footnote definition,
// which Substack emits for expandable footnotes.
func buildFootnoteIndex(ctx context.Context, doc *goquery.Document, content *goquery.Selection, r *renderer) footnoteIndex {
	ix := make(footnoteIndex)

	if container := doc.Find("div.footnotes").First(); container.Length() > 0 {
		container.Find("li[id]").Each(func(_ int, item *goquery.Selection) {
			id := item.AttrOr("id", "")
			if id == "" {
				return
			}

			item.Find("[class]").Each(func(_ int, sel *goquery.Selection) {
				if backrefClassPattern.MatchString(sel.AttrOr("class", "")) {
					sel.Remove()
				}
			})
			item.Find("a").Each(func(_ int, link *goquery.Selection) {
				if backrefSymbols[strings.ToLower(strings.TrimSpace(link.Text()))] {
					link.Remove()
				}
			})

			ix.add(id, r.render(ctx, item.Nodes[0]))
		})
		container.Remove()
	}

	content.Find("[id]").Each(func(_ int, sel *goquery.Selection) {
		id := sel.AttrOr("id", "")
		if !footnoteIDPattern.MatchString(id) {
			return
		}

		// Links with an href are references to definitions, not
		// definitions themselves.
		if goquery.NodeName(sel) == "a" {
			if href, ok := sel.Attr("href"); ok && href != "" {
				return
			}
		}

		// A bare numeric marker is too short to be a definition.
		if len(strings.TrimSpace(sel.Text())) <= 5 {
			return
		}

		markup := r.render(ctx, sel.Nodes[0])
		markup = leadingLabelPattern.ReplaceAllString(markup, "")
		ix.add(id, markup)
		sel.Remove()
	})

	return ix
}
