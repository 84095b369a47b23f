package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/dkoosis/tinytest/pkg/pattern"
)

// DefaultPadding is the column the status marker starts at.
const DefaultPadding = 32

const runningText = " RUNNING..."

var _ Renderer = (*Terminal)(nil)

// Terminal renders patterns as console report lines.
type Terminal struct {
	theme   Theme
	padding int
	counts  *message.Printer
}

// NewTerminal creates a terminal renderer. Unit names are padded to padding
// display cells so that status markers line up.
func NewTerminal(theme Theme, padding int) *Terminal {
	if padding <= 0 {
		padding = DefaultPadding
	}
	return &Terminal{
		theme:   theme,
		padding: padding,
		counts:  message.NewPrinter(language.English),
	}
}

// Running returns the status line shown while a unit executes. It has no
// trailing newline; the final status overwrites it.
func (t *Terminal) Running(name string) string {
	return t.label(name) + t.theme.Muted.Render(runningText)
}

// GroupHeader returns the header printed before a named group's units.
func (t *Terminal) GroupHeader(name string, count int, noun string) string {
	return "\n" + t.theme.Header.Render(fmt.Sprintf("%s (%d %s)", name, count, noun)) + "\n"
}

// Render formats a single pattern.
func (t *Terminal) Render(p pattern.Pattern) string {
	switch v := p.(type) {
	case *pattern.TestLine:
		return t.renderTestLine(v)
	case *pattern.Summary:
		return t.renderSummary(v)
	case *pattern.Captured:
		return t.renderCaptured(v)
	case *pattern.BenchTiming:
		return t.renderBenchTiming(v)
	default:
		return ""
	}
}

func (t *Terminal) label(name string) string {
	return runewidth.FillRight(name+":", t.padding)
}

// overwrite rewrites the running line from column 0 and pads the marker so
// that no part of the running text survives.
func (t *Terminal) overwrite(name, marker string, markerWidth int) string {
	var sb strings.Builder
	sb.WriteString("\r")
	sb.WriteString(t.label(name))
	sb.WriteString(" ")
	sb.WriteString(marker)
	if pad := runewidth.StringWidth(runningText) - 1 - markerWidth; pad > 0 {
		sb.WriteString(strings.Repeat(" ", pad))
	}
	return sb.String()
}

func (t *Terminal) renderTestLine(l *pattern.TestLine) string {
	var sb strings.Builder
	if !l.Failed() {
		sb.WriteString(t.overwrite(l.Name, t.theme.Pass.Render("[PASS]"), len("[PASS]")))
		sb.WriteString("\n")
		return sb.String()
	}
	marker := fmt.Sprintf("[FAIL (line %d)]", l.Line)
	sb.WriteString(t.overwrite(l.Name, t.theme.Fail.Render(marker), len(marker)))
	if l.Message != "" {
		sb.WriteString("\n")
		sb.WriteString(t.theme.Message.Render("MESSAGE:"))
		sb.WriteString(" ")
		sb.WriteString(l.Message)
	}
	sb.WriteString("\n")
	return sb.String()
}

func (t *Terminal) renderSummary(s *pattern.Summary) string {
	var sb strings.Builder
	if s.Label == "" {
		sb.WriteString(fmt.Sprintf("results (%d tests)\n", s.Total))
	} else {
		sb.WriteString(fmt.Sprintf("%s results (%d tests)\n", s.Label, s.Total))
	}
	sb.WriteString(fmt.Sprintf("%d/%d tests passed (%d%%)\n", s.Passed, s.Total, s.Percent()))
	return sb.String()
}

func (t *Terminal) renderCaptured(c *pattern.Captured) string {
	if len(c.Data) == 0 {
		return ""
	}
	var sb strings.Builder
	if c.Stream == pattern.StreamStderr {
		sb.WriteString(t.theme.Message.Render(c.Stream))
		sb.WriteString(":\n")
	} else {
		sb.WriteString(c.Stream + ":\n")
	}
	sb.Write(c.Data)
	if c.Data[len(c.Data)-1] != '\n' {
		sb.WriteString("\n")
	}
	return sb.String()
}

func (t *Terminal) renderBenchTiming(b *pattern.BenchTiming) string {
	var sb strings.Builder
	if b.Skipped {
		sb.WriteString(t.label(b.Name))
		sb.WriteString(" ")
		sb.WriteString(t.theme.Skip.Render("[SKIP]"))
		sb.WriteString("\n")
		return sb.String()
	}
	sb.WriteString(t.overwrite(b.Name, t.theme.Done.Render("[DONE]"), len("[DONE]")))
	sb.WriteString(t.theme.Muted.Render(t.counts.Sprintf(" (%d iterations)", b.Iterations)))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  %-10s%14s%14s\n", "", "user", "system"))
	sb.WriteString(fmt.Sprintf("  %-10s%14s%14s\n", "overall:",
		FormatDuration(b.Overall.User), FormatDuration(b.Overall.System)))
	sb.WriteString(fmt.Sprintf("  %-10s%14s%14s\n", "per iter:",
		FormatDuration(b.PerIter.User), FormatDuration(b.PerIter.System)))
	return sb.String()
}

// FormatDuration renders d in microseconds, switching to milliseconds once
// the value exceeds 1000 microseconds.
func FormatDuration(d time.Duration) string {
	us := float64(d) / float64(time.Microsecond)
	if us > 1000 {
		return fmt.Sprintf("%.3f ms", us/1000)
	}
	return fmt.Sprintf("%.3f us", us)
}
