package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/fwojciec/sitefetch"
)

// progressWidth is the number of cells in the progress bar.
const progressWidth = 20

// Printer renders results, progress, and run outcomes.
type Printer struct {
	stdout io.Writer
	titles sitefetch.TitleExtractor

	urlColor  *color.Color
	barColor  *color.Color
	warnColor *color.Color
}

// NewPrinter returns a Printer. titles may be nil.
func NewPrinter(stdout io.Writer, titles sitefetch.TitleExtractor, noColor bool) *Printer {
	p := &Printer{
		stdout:    stdout,
		titles:    titles,
		urlColor:  color.New(color.FgCyan),
		barColor:  color.New(color.FgGreen),
		warnColor: color.New(color.FgYellow),
	}
	if noColor {
		for _, c := range []*color.Color{p.urlColor, p.barColor, p.warnColor} {
			c.DisableColor()
		}
	}
	return p
}

// Result prints one "<url> downloaded: N characters long." line.
func (p *Printer) Result(r *sitefetch.Result) {
	p.urlColor.Fprint(p.stdout, r.URL)
	fmt.Fprintf(p.stdout, " downloaded: %d characters long.", r.Length())
	if title := p.title(r); title != "" {
		fmt.Fprintf(p.stdout, " (%s)", title)
	}
	fmt.Fprintln(p.stdout)
}

// Results prints a line per result.
func (p *Printer) Results(results []*sitefetch.Result) {
	for _, r := range results {
		p.Result(r)
	}
}

// Progress prints a bar and the most recently completed result.
func (p *Printer) Progress(snapshot sitefetch.Progress) {
	filled := snapshot.Percent * progressWidth / 100
	p.barColor.Fprintf(p.stdout, "[%s%s] %3d%% ",
		strings.Repeat("=", filled),
		strings.Repeat(" ", progressWidth-filled),
		snapshot.Percent,
	)
	fmt.Fprintf(p.stdout, "(%d/%d) ", snapshot.Completed, snapshot.Total)
	if n := len(snapshot.Results); n > 0 {
		p.Result(snapshot.Results[n-1])
		return
	}
	fmt.Fprintln(p.stdout)
}

// Canceled reports a run stopped by the user.
func (p *Printer) Canceled() {
	p.warnColor.Fprintln(p.stdout, "The async download was cancelled")
}

// Elapsed prints the total run time.
func (p *Printer) Elapsed(d time.Duration) {
	fmt.Fprintf(p.stdout, "Total execution time: %dms\n", d.Milliseconds())
}

func (p *Printer) title(r *sitefetch.Result) string {
	if p.titles == nil {
		return ""
	}
	title, err := p.titles.ExtractTitle(r.Content)
	if err != nil {
		return ""
	}
	return title
}
