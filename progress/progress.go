// Package progress reports per-video harvest progress. Terminals get an
// in-place bar with elapsed and estimated remaining time; everything else
// gets one plain line per video.
package progress

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
)

// Reporter receives harvest milestones. The harvester reports sequentially,
// so implementations need no locking.
type Reporter interface {
	// Start announces the total number of videos.
	Start(total int)
	// Step records one completed video.
	Step(label string)
	// Done finishes the report.
	Done()
}

// New picks the reporter for f.
func New(f *os.File) Reporter {
	if isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()) {
		return &bar{out: f, width: 30, now: time.Now}
	}
	return &plain{out: f}
}

type bar struct {
	out   io.Writer
	width int
	now   func() time.Time

	total   int
	pos     int
	started time.Time
}

func (b *bar) Start(total int) {
	b.total = total
	b.pos = 0
	b.started = b.now()
	b.render("")
}

func (b *bar) Step(label string) {
	b.pos++
	b.render(label)
}

func (b *bar) Done() {
	fmt.Fprintln(b.out)
}

func (b *bar) render(label string) {
	// \x1b[K erases the tail of the previous, possibly longer line.
	fmt.Fprintf(b.out, "\r%s\x1b[K", b.line(label, b.now()))
}

func (b *bar) line(label string, now time.Time) string {
	elapsed := now.Sub(b.started)
	s := fmt.Sprintf("[%s] [%s] %s %d/%d",
		formatDuration(elapsed),
		formatDuration(eta(elapsed, b.pos, b.total)),
		renderBar(b.pos, b.total, b.width),
		b.pos, b.total)
	if label != "" {
		s += " " + label
	}
	return s
}

type plain struct {
	out   io.Writer
	total int
	pos   int
}

func (p *plain) Start(total int) {
	p.total = total
	p.pos = 0
}

func (p *plain) Step(label string) {
	p.pos++
	fmt.Fprintf(p.out, "ytcomb: [%d/%d] %s\n", p.pos, p.total, label)
}

func (p *plain) Done() {}

// renderBar draws the fill for pos of total across width cells.
func renderBar(pos, total, width int) string {
	filled := 0
	if total > 0 {
		filled = pos * width / total
	}
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}

// eta estimates remaining time from the pace so far. Zero until the first
// step completes.
func eta(elapsed time.Duration, pos, total int) time.Duration {
	if pos <= 0 || total <= 0 || pos >= total {
		return 0
	}
	return elapsed / time.Duration(pos) * time.Duration(total-pos)
}

func formatDuration(d time.Duration) string {
	seconds := int(d.Seconds())
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	secs := seconds % 60

	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, secs)
	}
	return fmt.Sprintf("%d:%02d", minutes, secs)
}
