// Package console renders the human facing parts of a run: the start banner,
// the configuration table, step panels, the progress bar and the summary.
package console

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cheggaaa/pb/v3"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/mattn/go-runewidth"
)

// Console writes presentation output. Colours and the progress bar are only
// used when the target is a terminal.
type Console struct {
	out         io.Writer
	progressOut io.Writer
	interactive bool
}

// New creates a console writing to out, with the progress bar on progressOut.
func New(out, progressOut io.Writer) *Console {
	return &Console{
		out:         out,
		progressOut: progressOut,
		interactive: IsTerminal(out) && IsTerminal(progressOut),
	}
}

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (c *Console) style(attrs ...color.Attribute) *color.Color {
	style := color.New(attrs...)
	if !c.interactive {
		style.DisableColor()
	}
	return style
}

// Banner prints the application name and version framed by rules.
func (c *Console) Banner(name, version string) {
	title := fmt.Sprintf("%s (v%s)", name, version)
	rule := strings.Repeat("=", runewidth.StringWidth(title)+4)

	style := c.style(color.FgCyan, color.Bold)
	style.Fprintln(c.out, rule)
	style.Fprintf(c.out, "  %s\n", title)
	style.Fprintln(c.out, rule)
}

// ConfigTable prints key/value pairs as an aligned two column table.
func (c *Console) ConfigTable(rows [][2]string) {
	width := 0
	for _, row := range rows {
		if w := runewidth.StringWidth(row[0]); w > width {
			width = w
		}
	}

	keyStyle := c.style(color.FgYellow)
	for _, row := range rows {
		value := row[1]
		if value == "" {
			value = "-"
		}
		fmt.Fprintf(c.out, "  %s  %s\n", keyStyle.Sprint(runewidth.FillRight(row[0], width)), value)
	}
	fmt.Fprintln(c.out)
}

// Panel prints a titled step header.
func (c *Console) Panel(title, message string) {
	c.style(color.FgMagenta, color.Bold).Fprintf(c.out, "[%s] ", title)
	fmt.Fprintln(c.out, message)
}

// Summary prints the per-kind outcome counts.
func (c *Console) Summary(succeeded, failed, skipped int) {
	total := succeeded + failed + skipped
	fmt.Fprintf(c.out, "\nProcessed %d row(s): ", total)
	c.style(color.FgGreen).Fprintf(c.out, "%d succeeded", succeeded)
	fmt.Fprint(c.out, ", ")
	c.style(color.FgRed).Fprintf(c.out, "%d failed", failed)
	fmt.Fprint(c.out, ", ")
	c.style(color.FgYellow).Fprintf(c.out, "%d skipped", skipped)
	fmt.Fprintln(c.out)
}

// Progress advances one tick per processed row.
type Progress struct {
	bar *pb.ProgressBar
}

// NewProgress starts a progress bar for total rows. On non-terminals the
// returned Progress is inert.
func (c *Console) NewProgress(total int) *Progress {
	if !c.interactive {
		return &Progress{}
	}
	bar := pb.New(total).SetTemplate(pb.Simple).SetWriter(c.progressOut)
	bar.Start()
	return &Progress{bar: bar}
}

// Advance moves the bar by one row.
func (p *Progress) Advance() {
	if p.bar != nil {
		p.bar.Increment()
	}
}

// Finish stops the bar.
func (p *Progress) Finish() {
	if p.bar != nil {
		p.bar.Finish()
	}
}
