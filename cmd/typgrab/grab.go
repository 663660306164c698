package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fwojciec/typgrab"
	"github.com/fwojciec/typgrab/typst"
)

// Grabber runs the fetch → convert → assemble → write pipeline.
type Grabber struct {
	Fetcher   typgrab.Fetcher
	Converter typgrab.Converter
	Extractor typgrab.Extractor // optional readability fallback
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
}

// Run converts the article at rawURL and writes the Typst document to
// outputPath (derived from the title when empty). When compile is set the
// typst CLI is invoked on the result.
func (g *Grabber) Run(ctx context.Context, rawURL, outputPath string, compile bool) error {
	fetchURL := PrintModeURL(rawURL)
	if fetchURL != rawURL {
		g.Logger.Info("switching to print mode", "url", fetchURL)
	}

	html, err := g.Fetcher.Fetch(ctx, fetchURL)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", fetchURL, err)
	}

	result, err := g.Converter.Convert(ctx, html, fetchURL)
	if err != nil {
		return fmt.Errorf("convert: %w", err)
	}

	// When the heuristics found nothing and a fallback extractor is
	// wired, retry on readability's cleaned content. The content is
	// wrapped in an article element so the locator recognizes it;
	// metadata from the first pass is kept since readability strips
	// the document head.
	if !result.ContentFound && g.Extractor != nil {
		extracted, exErr := g.Extractor.Extract(html)
		if exErr != nil {
			g.Logger.Warn("readability fallback failed", "error", exErr)
		} else {
			retry, exErr := g.Converter.Convert(ctx, "<article>"+extracted.ContentHTML+"</article>", fetchURL)
			if exErr != nil {
				g.Logger.Warn("readability fallback conversion failed", "error", exErr)
			} else {
				meta := result.Article
				result = retry
				result.Article.Author = meta.Author
				result.Article.Date = meta.Date
				if meta.Title != "Untitled" {
					result.Article.Title = meta.Title
				} else if extracted.Title != "" {
					result.Article.Title = extracted.Title
				}
			}
		}
	}

	article := result.Article
	article.Date = typst.FormatDate(article.Date)

	if err := article.Validate(); err != nil {
		return err
	}

	if outputPath == "" {
		outputPath = OutputFilename(article.Title)
	}

	if err := writeTemplate(filepath.Dir(outputPath)); err != nil {
		return err
	}

	if err := os.WriteFile(outputPath, []byte(typst.Document(&article)), 0644); err != nil {
		return fmt.Errorf("write %s: %w", outputPath, err)
	}
	fmt.Fprintf(g.Stdout, "Generated %s\n", outputPath)

	if compile {
		if err := Compile(ctx, outputPath, g.Stdout, g.Stderr); err != nil {
			return err
		}
	}

	return nil
}

// writeTemplate writes the default template.typ next to the output file
// unless one already exists; a hand-tuned template is never overwritten.
func writeTemplate(dir string) error {
	path := filepath.Join(dir, typst.TemplateFileName)
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}
	return os.WriteFile(path, []byte(typst.Template), 0644)
}
