package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/sitefetch"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx        context.Context
	Stdout     io.Writer
	Stderr     io.Writer
	Downloader sitefetch.Downloader
	Canceler   *sitefetch.Canceler
	Printer    *Printer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Strategy    string        `arg:"" enum:"sync,parallel,async,join,parallel-async" help:"Execution strategy: sync, parallel, async, join or parallel-async"`
	URLs        []string      `arg:"" optional:"" name:"url" help:"URLs to download (default: a fixed list of popular sites)"`
	Concurrency int           `short:"c" env:"SITEFETCH_CONCURRENCY" help:"Worker pool size for parallel strategies (default: number of CPUs)"`
	Timeout     time.Duration `short:"t" env:"SITEFETCH_TIMEOUT" help:"Per-request timeout (default: none)"`
	Browser     bool          `short:"b" env:"SITEFETCH_BROWSER" help:"Render pages with headless Chrome instead of plain HTTP"`
	CancelAfter time.Duration `name:"cancel-after" help:"Cancel the async strategy after this long"`
	Titles      bool          `help:"Show page titles next to results"`
	NoColor     bool          `name:"no-color" help:"Disable colored output"`
	Verbose     bool          `short:"v" help:"Log fetches and runs to stderr"`
}

// FetchCmd downloads the URL list with one strategy and prints the results.
type FetchCmd struct {
	Strategy    sitefetch.Strategy
	CancelAfter time.Duration
}
