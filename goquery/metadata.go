package goquery

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var authorClassPattern = regexp.MustCompile(`(?i)author|byline`)

// extractTitle returns the article title, preferring Open Graph metadata
// over heading elements.
func extractTitle(doc *goquery.Document) string {
	if content, ok := doc.Find(`meta[property="og:title"]`).First().Attr("content"); ok && content != "" {
		return content
	}
	if title := strings.TrimSpace(doc.Find("h1.post-title").First().Text()); title != "" {
		return title
	}
	if title := strings.TrimSpace(doc.Find("h1").First().Text()); title != "" {
		return title
	}
	return "Untitled"
}

// extractAuthor returns the article author from metadata, falling back to
// generic byline elements.
func extractAuthor(doc *goquery.Document) string {
	if content, ok := doc.Find(`meta[name="author"]`).First().Attr("content"); ok && content != "" {
		return content
	}

	author := ""
	doc.Find("[class]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if !authorClassPattern.MatchString(sel.AttrOr("class", "")) {
			return true
		}
		if text := strings.TrimSpace(sel.Text()); text != "" {
			author = text
			return false
		}
		return true
	})
	if author != "" {
		return author
	}

	return "Unknown Author"
}

// extractDate returns the raw publication date string. Tries the article
// metadata tag, then a time element (datetime attribute preferred over
// text), then JSON-LD datePublished including @graph entries. Returns ""
// when nothing is found; normalization is the assembler's concern.
func extractDate(doc *goquery.Document) string {
	if content, ok := doc.Find(`meta[property="article:published_time"]`).First().Attr("content"); ok && content != "" {
		return content
	}

	if timeElem := doc.Find("time").First(); timeElem.Length() > 0 {
		if dt, ok := timeElem.Attr("datetime"); ok && dt != "" {
			return dt
		}
		if text := strings.TrimSpace(timeElem.Text()); text != "" {
			return text
		}
	}

	return dateFromJSONLD(doc)
}

func dateFromJSONLD(doc *goquery.Document) string {
	date := ""
	doc.Find(`script[type="application/ld+json"]`).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		var data map[string]any
		if err := json.Unmarshal([]byte(sel.Text()), &data); err != nil {
			return true
		}

		if d, ok := data["datePublished"].(string); ok && d != "" {
			date = d
			return false
		}

		graph, ok := data["@graph"].([]any)
		if !ok {
			return true
		}
		for _, entry := range graph {
			item, ok := entry.(map[string]any)
			if !ok {
				continue
			}
			if d, ok := item["datePublished"].(string); ok && d != "" {
				date = d
				return false
			}
		}
		return true
	})
	return date
}
