package typgrab

import "context"

// Article represents a converted article ready for template assembly.
type Article struct {
	Title   string
	Author  string
	Date    string // normalized display form, e.g. "Nov 26, 2025"
	URL     string
	Content string // Typst markup fragment
}

// Validate returns an error if the article contains invalid fields.
func (a *Article) Validate() error {
	if a.URL == "" {
		return Errorf(EINVALID, "article source URL required")
	}
	if a.Title == "" {
		return Errorf(EINVALID, "article title required")
	}
	return nil
}

// ConvertResult holds a converted article plus conversion diagnostics.
type ConvertResult struct {
	Article Article

	// ContentFound is false when no recognizable content container was
	// identified and conversion proceeded with an empty one.
	ContentFound bool
}

// Converter transforms a fetched HTML document into a Typst article.
// The baseURL resolves relative links and image sources; it may be empty.
// The context bounds image downloads triggered during rendering.
type Converter interface {
	Convert(ctx context.Context, rawHTML string, baseURL string) (*ConvertResult, error)
}
