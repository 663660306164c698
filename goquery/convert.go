// Package goquery implements the HTML-to-Typst conversion core: content
// location, footnote extraction, chrome removal, and recursive rendering.
// The pipeline mutates the parsed tree in place; footnote and chrome
// removal always happen before the render pass reads it.
package goquery

import (
	"context"
	"io"
	"log/slog"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/typgrab"
)

// Ensure Converter implements typgrab.Converter at compile time.
var _ typgrab.Converter = (*Converter)(nil)

// Converter converts a fetched HTML document into a Typst article.
type Converter struct {
	images typgrab.ImageStore
	logger *slog.Logger
}

// Option configures a Converter.
type Option func(*Converter)

// WithLogger sets the logger used for degradation warnings (missing
// content container, unparsable embed attributes, skipped images).
// Defaults to a discarding logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Converter) {
		c.logger = logger
	}
}

// NewConverter creates a new Converter. Images encountered during
// rendering are materialized through the given store.
func NewConverter(images typgrab.ImageStore, opts ...Option) *Converter {
	c := &Converter{
		images: images,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Convert transforms raw HTML into a Typst article. The baseURL resolves
// relative links and image sources and is recorded as the article URL.
//
// Pipeline order is significant: the content root is located first, then
// footnote definitions are extracted and removed, then chrome is stripped,
// and only then does the renderer walk the remaining tree. A fresh
// footnote index is built for every call; nothing is shared between
// conversions.
func (c *Converter) Convert(ctx context.Context, rawHTML string, baseURL string) (*typgrab.ConvertResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, typgrab.Errorf(typgrab.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, typgrab.Errorf(typgrab.EINVALID, "failed to parse HTML: %v", err)
	}

	var base *url.URL
	if baseURL != "" {
		base, err = url.Parse(baseURL)
		if err != nil {
			return nil, typgrab.Errorf(typgrab.EINVALID, "invalid base URL: %v", err)
		}
	}

	title := extractTitle(doc)
	author := extractAuthor(doc)
	date := extractDate(doc)

	content, found := locateContent(doc)
	if !found {
		c.logger.Warn("could not identify main content area, output may be empty", "url", baseURL)
	}

	r := &renderer{
		base:   base,
		images: c.images,
		logger: c.logger,
	}
	r.footnotes = buildFootnoteIndex(ctx, doc, content, r)

	removeChrome(content)

	var fragment string
	if len(content.Nodes) > 0 {
		fragment = r.render(ctx, content.Nodes[0])
	}

	return &typgrab.ConvertResult{
		Article: typgrab.Article{
			Title:   title,
			Author:  author,
			Date:    date,
			URL:     baseURL,
			Content: fragment,
		},
		ContentFound: found,
	}, nil
}
