package typgrab

// ExtractResult holds the extracted content from an HTML page.
type ExtractResult struct {
	// Title is the page title extracted from metadata.
	Title string

	// ContentHTML is the main content as clean HTML.
	// Boilerplate (nav, footer, sidebar, ads) has been removed.
	ContentHTML string
}

// Extractor extracts main content from HTML pages, removing boilerplate.
// It is an optional pre-cleaning stage ahead of the Converter, useful for
// layouts the converter's own heuristics don't recognize.
type Extractor interface {
	Extract(rawHTML string) (*ExtractResult, error)
}
