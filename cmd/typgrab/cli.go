package main

import "time"

// CLI defines the command-line interface.
type CLI struct {
	URL         string        `arg:"" help:"Article URL to convert."`
	Output      string        `short:"o" help:"Output .typ file path. Defaults to a slug of the article title."`
	Images      string        `default:"images" help:"Directory for downloaded images."`
	Cookie      string        `env:"SUBSTACK_COOKIE" help:"Substack session cookie for subscriber-only posts."`
	Timeout     time.Duration `default:"30s" help:"Timeout for HTTP requests."`
	Readability bool          `help:"Fall back to readability extraction when no content container is recognized."`
	Compile     bool          `help:"Compile the generated document to PDF with the typst CLI."`
	Verbose     bool          `short:"v" help:"Enable debug logging."`
}
