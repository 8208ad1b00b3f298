package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/msoler/farmanote"
	"github.com/msoler/farmanote/cima"
	"github.com/msoler/farmanote/goquery"
	fmhttp "github.com/msoler/farmanote/http"
	"github.com/msoler/farmanote/resolve"
	fmslog "github.com/msoler/farmanote/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Registry base URL and proxy template. Set before calling Run().
	BaseURL       string
	ProxyTemplate string
}

// NewMain returns a new instance of Main with defaults from the
// environment.
func NewMain() *Main {
	m := &Main{
		BaseURL:       cima.DefaultBaseURL,
		ProxyTemplate: fmhttp.DefaultProxyTemplate,
	}
	if v := os.Getenv("FARMANOTE_BASE_URL"); v != "" {
		m.BaseURL = v
	}
	if v, ok := os.LookupEnv("FARMANOTE_PROXY"); ok {
		m.ProxyTemplate = v
	}
	return m
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("farmanote"),
		kong.Description("Resolve medicament brand names against the CIMA registry."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'farmanote --help' to see available commands")
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return err
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	if !cli.Verbose {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	jsonFetcher := fmhttp.NewFetcher(
		fmhttp.WithAccept("application/json"),
		fmhttp.WithProxyTemplate(m.ProxyTemplate),
	)
	defer jsonFetcher.Close()

	docFetcher := fmhttp.NewFetcher(
		fmhttp.WithTimeout(fmhttp.DocumentTimeout),
		fmhttp.WithAccept("text/html, text/plain"),
		fmhttp.WithProxyTemplate(m.ProxyTemplate),
	)
	defer docFetcher.Close()

	var registry farmanote.Registry = cima.NewClient(jsonFetcher, cima.WithBaseURL(m.BaseURL))
	if cli.Verbose {
		registry = fmslog.NewLoggingRegistry(registry, logger)
	}

	deps := &Dependencies{
		Ctx:         ctx,
		Stdout:      stdout,
		Stderr:      stderr,
		Registry:    registry,
		Resolver:    &resolve.Resolver{Registry: registry, Logger: logger},
		Indications: goquery.NewExtractor(docFetcher),
		Host:        &stdioHost{in: stdin, out: stdout},
		Status:      &writerStatus{out: stderr},
	}

	return kongCtx.Run(deps)
}
