package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// unwantedClasses is the exact-match removal list for structural chrome:
// platform widgets, CTAs, paywall prompts, navigation, and ads.
var unwantedClasses = map[string]bool{
	// Substack
	"share-dialog-title":       true,
	"share-button":             true,
	"subscription-widget-wrap": true,
	"subscribe-widget":         true,
	"post-footer":              true,
	"comments-section":         true,
	"buttons":                  true,
	"utility-bar":              true,
	"paywall-cta":              true,
	"share-post":               true,
	"post-footer-cta":          true,
	// Generic
	"sidebar":           true,
	"nav":               true,
	"navigation":        true,
	"footer":            true,
	"menu":              true,
	"ad":                true,
	"advertisement":     true,
	"popup":             true,
	"newsletter-signup": true,
}

// chromeKeywords are the short call-to-action texts removed outright when
// an element's visible text is nothing but one of them.
var chromeKeywords = []string{"subscribe", "share", "leave a comment", "donate", "sign up"}

// containerTags limits the class-substring removal rule so that inline
// spans merely mentioning "share" or "subscribe" in a class token survive.
var containerTags = map[string]bool{
	"div":     true,
	"aside":   true,
	"section": true,
}

// removeChrome strips structural and textual chrome from the content root.
// It runs after footnote extraction and before rendering, mutating the
// tree in place.
func removeChrome(content *goquery.Selection) {
	// Pass 1: structural removal by class.
	content.Find("[class]").Each(func(_ int, sel *goquery.Selection) {
		classes := strings.Fields(sel.AttrOr("class", ""))
		if len(classes) == 0 {
			return
		}

		for _, class := range classes {
			if unwantedClasses[class] {
				sel.Remove()
				return
			}
		}

		if !containerTags[goquery.NodeName(sel)] {
			return
		}
		for _, class := range classes {
			lower := strings.ToLower(class)
			if strings.Contains(lower, "share") || strings.Contains(lower, "subscribe") {
				sel.Remove()
				return
			}
		}
	})

	// Pass 2: textual-keyword removal. Buttons and links go as soon as
	// their text matches; divs and paragraphs additionally need to be
	// near-empty so a substantive paragraph mentioning "share" alongside
	// real prose is retained.
	content.Find("button, a, div, p").Each(func(_ int, sel *goquery.Selection) {
		text := strings.ToLower(strings.TrimSpace(sel.Text()))
		if !matchesChromeKeyword(text) {
			return
		}

		switch goquery.NodeName(sel) {
		case "button", "a":
			sel.Remove()
		case "div", "p":
			if sel.Find("*").Length() <= 1 {
				sel.Remove()
			}
		}
	})
}

func matchesChromeKeyword(text string) bool {
	for _, keyword := range chromeKeywords {
		if text == keyword {
			return true
		}
	}
	if len(text) < 50 {
		for _, keyword := range chromeKeywords {
			if strings.Contains(text, keyword) {
				return true
			}
		}
	}
	return false
}
