package goquery

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/url"
	"strconv"
	"strings"

	"github.com/fwojciec/typgrab"
	"github.com/fwojciec/typgrab/typst"
	"golang.org/x/net/html"
)

// chromeWrapperClasses mark print-layout wrappers that duplicate content
// already carried by the document template (title block, sidebar, footer)
// or exist only for on-screen navigation.
var chromeWrapperClasses = []string{
	"print-nav",
	"series-nav",
	"post__title__wrapper", // duplicate title, author, date, tags
	"post__sidebar",        // author profile, share buttons
	"footer__wrapper",      // footer / newsletter
	"d-print-none",         // generic print hider
}

// imageFileExts identify link texts that are just an image filename, a
// common artifact in converted footnotes and captions.
var imageFileExts = []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}

// renderer walks a sanitized tree depth-first and produces Typst markup.
// Its only side effect is delegating image downloads to the store; a
// failed download suppresses that figure and rendering continues.
type renderer struct {
	base      *url.URL
	footnotes footnoteIndex
	images    typgrab.ImageStore
	logger    *slog.Logger
}

// dataWrapperAttrs is the attributes-JSON payload of an embedded chart
// preview widget.
type dataWrapperAttrs struct {
	ThumbnailURL     string `json:"thumbnail_url"`
	ThumbnailURLFull string `json:"thumbnail_url_full"`
	Title            string `json:"title"`
	Description      string `json:"description"`
}

// render converts a node to Typst markup. Children are rendered first and
// concatenated in document order; a tag-specific transform then wraps or
// suppresses the result. Unrecognized tags pass their child content
// through unchanged.
func (r *renderer) render(ctx context.Context, n *html.Node) string {
	switch n.Type {
	case html.TextNode:
		return typst.Escape(n.Data)
	case html.ElementNode:
		// handled below
	default:
		return ""
	}

	tag := n.Data

	switch tag {
	case "script", "style", "noscript":
		return ""
	case "aside", "header":
		return ""
	}

	if tag == "div" || tag == "section" {
		for _, class := range chromeWrapperClasses {
			if hasClass(n, class) {
				return ""
			}
		}
	}

	if tag == "div" && hasClass(n, "datawrapper-wrap") {
		if raw := attrVal(n, "data-attrs"); raw != "" {
			if out, ok := r.renderDataWrapper(ctx, raw); ok {
				return out
			}
		}
	}

	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		b.WriteString(r.render(ctx, c))
	}
	content := b.String()

	switch tag {
	case "p", "div":
		if strings.TrimSpace(content) == "" && !hasDescendant(n, "img") {
			return ""
		}
		return content + "\n\n"

	case "h1", "h2", "h3", "h4", "h5", "h6":
		level := int(tag[1] - '0')
		return typst.Heading(level, content)

	case "strong", "b":
		if strings.TrimSpace(content) == "" {
			return ""
		}
		return typst.Strong(content)

	case "em", "i":
		if strings.TrimSpace(content) == "" {
			return ""
		}
		return typst.Emph(content)

	case "ul":
		return r.renderList(ctx, n, "- ")

	case "ol":
		return r.renderList(ctx, n, "+ ")

	case "blockquote":
		return typst.Quote(content)

	case "br":
		return "\n"

	case "a":
		return r.renderLink(ctx, n, content)

	case "img":
		return r.renderImage(ctx, n)
	}

	return content
}

// renderList iterates only the direct li children; nested markup inside
// each item is rendered and trimmed before the marker is prefixed.
func (r *renderer) renderList(ctx context.Context, n *html.Node, marker string) string {
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode || c.Data != "li" {
			continue
		}
		var item strings.Builder
		for gc := c.FirstChild; gc != nil; gc = gc.NextSibling {
			item.WriteString(r.render(ctx, gc))
		}
		b.WriteString(marker)
		b.WriteString(strings.TrimSpace(item.String()))
		b.WriteString("\n")
	}
	return b.String() + "\n"
}

func (r *renderer) renderLink(ctx context.Context, n *html.Node, content string) string {
	href := r.resolve(attrVal(n, "href"))

	// A link wrapping an image is just the image; the wrapper adds
	// nothing on paper.
	if hasDescendant(n, "img") {
		return content
	}

	text := strings.TrimSpace(nodeText(n))
	lower := strings.ToLower(text)
	if len(lower) < 50 {
		for _, ext := range imageFileExts {
			if strings.HasSuffix(lower, ext) {
				return ""
			}
		}
	}

	if u, err := url.Parse(href); err == nil && u.Fragment != "" && strings.Contains(u.Fragment, "footnote") {
		if markup, ok := r.footnotes.resolve(u.Fragment); ok {
			return typst.Footnote(strings.TrimSpace(markup))
		}

		// The definition never made it into the index (dynamically
		// loaded, perhaps). A bare reference number reads better as a
		// superscript than as a dangling hyperlink.
		if isDigits(text) || (strings.HasPrefix(text, "[") && strings.HasSuffix(text, "]")) {
			return typst.Super(text)
		}
	}

	return typst.Link(href, content)
}

func (r *renderer) renderImage(ctx context.Context, n *html.Node) string {
	src := attrVal(n, "src")
	if src == "" {
		return ""
	}

	local, err := r.images.Materialize(ctx, r.resolve(src))
	if err != nil {
		r.logger.Warn("failed to materialize image", "src", src, "error", err)
		return ""
	}
	return typst.Figure(local, "")
}

// renderDataWrapper handles an embedded chart preview widget. It parses
// the attributes JSON, materializes the thumbnail, and emits a full-width
// figure captioned with the chart's title and description. ok=false on
// any failure, letting the caller fall through to generic child rendering.
func (r *renderer) renderDataWrapper(ctx context.Context, raw string) (out string, ok bool) {
	var attrs dataWrapperAttrs
	if err := json.Unmarshal([]byte(raw), &attrs); err != nil {
		r.logger.Warn("failed to parse embed attributes", "error", err)
		return "", false
	}

	imgURL := attrs.ThumbnailURL
	if imgURL == "" {
		imgURL = attrs.ThumbnailURLFull
	}
	if imgURL == "" {
		return "", false
	}

	local, err := r.images.Materialize(ctx, r.resolve(imgURL))
	if err != nil {
		r.logger.Warn("failed to materialize embed thumbnail", "src", imgURL, "error", err)
		return "", false
	}

	var captionParts []string
	if attrs.Title != "" {
		captionParts = append(captionParts, typst.Strong(typst.Escape(attrs.Title)))
	}
	if attrs.Description != "" {
		captionParts = append(captionParts, typst.Escape(attrs.Description))
	}

	return typst.WideFigure(local, strings.Join(captionParts, " ")), true
}

// resolve resolves href against the renderer's base URL, if any.
func (r *renderer) resolve(href string) string {
	if r.base == nil || href == "" {
		return href
	}
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return r.base.ResolveReference(ref).String()
}

func hasClass(n *html.Node, class string) bool {
	for _, token := range strings.Fields(attrVal(n, "class")) {
		if token == class {
			return true
		}
	}
	return false
}

func attrVal(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func hasDescendant(n *html.Node, tag string) bool {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == tag {
			return true
		}
		if hasDescendant(c, tag) {
			return true
		}
	}
	return false
}

// nodeText concatenates the visible text of a node's subtree.
func nodeText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	_, err := strconv.Atoi(s)
	return err == nil && !strings.HasPrefix(s, "-") && !strings.HasPrefix(s, "+")
}
