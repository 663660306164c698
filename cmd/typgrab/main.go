package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/typgrab/goquery"
	typhttp "github.com/fwojciec/typgrab/http"
	"github.com/fwojciec/typgrab/readability"
	typslog "github.com/fwojciec/typgrab/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("typgrab"),
		kong.Description("Convert an online article to a Typst document for print"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags
	if len(args) == 0 || (len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help")) {
		_, _ = parser.Parse([]string{"--help"})
		if len(args) == 0 {
			return fmt.Errorf("no arguments provided")
		}
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	// Wire dependencies
	fetcherOpts := []typhttp.Option{typhttp.WithTimeout(cli.Timeout)}
	if cli.Cookie != "" {
		fetcherOpts = append(fetcherOpts, typhttp.WithCookie("substack.sid", cli.Cookie))
		logger.Info("using session cookie for authentication")
	}
	fetcher := typslog.NewLoggingFetcher(typhttp.NewFetcher(fetcherOpts...), logger)
	defer fetcher.Close()

	images := typslog.NewLoggingImageStore(
		typhttp.NewImageStore(cli.Images, typhttp.WithImageTimeout(cli.Timeout)),
		logger,
	)

	converter := typslog.NewLoggingConverter(
		goquery.NewConverter(images, goquery.WithLogger(logger)),
		logger,
	)

	g := &Grabber{
		Fetcher:   fetcher,
		Converter: converter,
		Stdout:    stdout,
		Stderr:    stderr,
		Logger:    logger,
	}
	if cli.Readability {
		g.Extractor = readability.NewExtractor()
	}

	return g.Run(ctx, cli.URL, cli.Output, cli.Compile)
}
