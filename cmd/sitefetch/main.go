package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
	"github.com/fatih/color"
	"github.com/fwojciec/sitefetch"
	"github.com/fwojciec/sitefetch/download"
	"github.com/fwojciec/sitefetch/goquery"
	sitehttp "github.com/fwojciec/sitefetch/http"
	"github.com/fwojciec/sitefetch/rod"
	siteslog "github.com/fwojciec/sitefetch/slog"
)

func main() {
	ctx := context.Background()

	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, os.Interrupt)

	m := NewMain()
	m.Interrupts = interrupts

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Canceler is fired by an interrupt during a cancelable strategy.
	Canceler *sitefetch.Canceler

	// Interrupts delivers user interrupts. Nil means interrupts are not handled.
	Interrupts <-chan os.Signal

	// Fetcher overrides the transport selected by flags. Used for testing.
	Fetcher sitefetch.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Canceler: sitefetch.NewCanceler(),
	}
}

// Run executes the CLI with the given arguments.
// Any error is reported on stderr before it is returned.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) (err error) {
	errColor := color.New(color.FgRed, color.Bold)
	defer func() {
		if err != nil {
			errColor.Fprintf(stderr, "error: %s\n", errorText(err))
		}
	}()

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("sitefetch"),
		kong.Description("Download a list of web pages using different concurrency strategies"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no strategy specified. Run 'sitefetch --help' to see available strategies")
	}

	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	if cli.NoColor {
		errColor.DisableColor()
	}

	strategy, err := sitefetch.ParseStrategy(cli.Strategy)
	if err != nil {
		return err
	}

	logger := newLogger(stderr, cli.Verbose)

	fetcher, err := m.newFetcher(cli, stderr)
	if err != nil {
		return err
	}
	defer fetcher.Close()

	urls := cli.URLs
	if len(urls) == 0 {
		urls = sitefetch.DefaultURLs()
	}

	runner := download.NewRunner(
		siteslog.NewLoggingFetcher(fetcher, logger),
		urls,
		download.WithConcurrency(cli.Concurrency),
	)

	var titles sitefetch.TitleExtractor
	if cli.Titles {
		titles = goquery.NewTitleExtractor()
	}

	canceler := m.Canceler
	if canceler == nil {
		canceler = sitefetch.NewCanceler()
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	if m.Interrupts != nil {
		stop := watchInterrupts(m.Interrupts, strategy, canceler, cancel)
		defer stop()
	}

	deps := &Dependencies{
		Ctx:        ctx,
		Stdout:     stdout,
		Stderr:     stderr,
		Downloader: siteslog.NewLoggingDownloader(runner, logger),
		Canceler:   canceler,
		Printer:    NewPrinter(stdout, titles, cli.NoColor),
	}

	cmd := &FetchCmd{
		Strategy:    strategy,
		CancelAfter: cli.CancelAfter,
	}

	return cmd.Run(deps)
}

// newFetcher returns the transport selected by flags.
func (m *Main) newFetcher(cli *CLI, stderr io.Writer) (sitefetch.Fetcher, error) {
	if m.Fetcher != nil {
		return m.Fetcher, nil
	}

	if cli.Browser {
		f, err := rod.NewFetcher(rod.WithFetchTimeout(cli.Timeout))
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
			return nil, fmt.Errorf("failed to start browser: %w", err)
		}
		return f, nil
	}

	return sitehttp.NewFetcher(sitehttp.WithTimeout(cli.Timeout)), nil
}

// newLogger returns a text logger on w when verbose, otherwise a logger that discards.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	if !verbose {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// watchInterrupts routes interrupts until stop is called. For a cancelable
// strategy the first interrupt fires canceler so the run ends at its next
// checkpoint and a second one cancels the run. Otherwise the first
// interrupt cancels the run.
func watchInterrupts(interrupts <-chan os.Signal, strategy sitefetch.Strategy, canceler *sitefetch.Canceler, cancel context.CancelFunc) (stop func()) {
	done := make(chan struct{})
	go func() {
		fired := false
		for {
			select {
			case <-done:
				return
			case <-interrupts:
				if strategy.Cancelable() && !fired {
					fired = true
					canceler.Cancel()
					continue
				}
				cancel()
				return
			}
		}
	}()
	return func() { close(done) }
}

// errorText returns the message of an application error, or the full error
// text for anything else.
func errorText(err error) string {
	if sitefetch.ErrorCode(err) == sitefetch.EINTERNAL {
		return err.Error()
	}
	return sitefetch.ErrorMessage(err)
}
