package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/autorace"
	"github.com/fwojciec/autorace/goquery"
	"github.com/fwojciec/autorace/htmltomarkdown"
	autoracehttp "github.com/fwojciec/autorace/http"
	"github.com/fwojciec/autorace/scrape"
	autoraceslog "github.com/fwojciec/autorace/slog"
	"github.com/joho/godotenv"
)

func main() {
	ctx := context.Background()

	// A missing .env file is fine; flags and the environment still apply.
	_ = godotenv.Load()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Fetcher replaces the HTTP fetcher. Set before calling Run().
	Fetcher autorace.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("autorace"),
		kong.Description("Scrape auto race cards from race-detail pages"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
		kong.Vars{"default_base_url": autoracehttp.DefaultBaseURL},
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'autorace --help' to see available commands")
	}

	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	fetcher := m.Fetcher
	if fetcher == nil {
		fetcher = autoracehttp.NewFetcher(
			autoracehttp.WithTimeout(cli.Timeout),
			autoracehttp.WithUserAgent(cli.UserAgent),
		)
	}
	defer fetcher.Close()

	deps.Scraper = autoraceslog.NewLoggingScraper(&scrape.Scraper{
		URLs:        autoracehttp.NewURLBuilder(cli.BaseURL),
		Fetcher:     autoraceslog.NewLoggingFetcher(fetcher, logger),
		Parser:      goquery.NewParser(),
		RateLimiter: scrape.NewDomainLimiter(cli.RPS),
	}, logger)
	deps.Converter = htmltomarkdown.NewConverter()

	return kongCtx.Run(deps)
}
