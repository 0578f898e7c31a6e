package inputprompt

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

const (
	promptSymbol = "?"
	doneSymbol   = "✔"
	errorSymbol  = "»"
)

// renderer draws frames on a terminal using ANSI escape sequences.
//
// A frame is drawn on one line, starting at column 0 of the line the caret
// is on. The error text, if any, goes on the line below and the caret is
// moved back to the frame's cursor marker (or to the end of the line when
// the frame has none). Columns are measured in display cells so wide
// characters in messages and placeholders do not shift the caret.
type renderer struct {
	output      io.Writer    // Target output writer (typically stdout or colorable wrapper)
	colorScheme *ColorScheme // Color configuration for themed rendering
	colored     bool         // False when the environment asks for plain output
}

// newRenderer creates a new renderer with the given output and color scheme.
func newRenderer(output io.Writer, colorScheme *ColorScheme, colored bool) *renderer {
	return &renderer{
		output:      output,
		colorScheme: colorScheme,
		colored:     colored,
	}
}

func (r *renderer) style(c Color, text string) string {
	if !r.colored || text == "" {
		return text
	}
	return c.ToANSI() + text + Reset()
}

// renderInput draws an editing frame and the error line below it. Lines
// wider than width cells are truncated; width <= 0 disables truncation.
func (r *renderer) renderInput(frame *Frame, errMsg string, width int) error {
	var line strings.Builder
	cursorCol := -1

	for _, seg := range frame.Segments() {
		switch seg.Kind {
		case SegmentPrompt:
			line.WriteString(r.style(r.colorScheme.Prompt, promptSymbol))
			line.WriteString(" " + seg.Text + ": ")
		case SegmentHint:
			line.WriteString(r.style(r.colorScheme.Hint, seg.Text))
		case SegmentInput:
			line.WriteString(r.style(r.colorScheme.Input, seg.Text))
		case SegmentCursor:
			cursorCol = ansi.StringWidth(line.String())
		}
	}
	if cursorCol < 0 {
		cursorCol = ansi.StringWidth(line.String())
	}

	text := line.String()
	errLine := ""
	if errMsg != "" {
		errLine = r.style(r.colorScheme.Error, errorSymbol+" "+errMsg)
	}
	// A wrapped line would leave stale rows behind on the next redraw
	if width > 0 {
		text = r.truncate(text, width-1)
		errLine = r.truncate(errLine, width-1)
		cursorCol = min(cursorCol, width-1)
	}

	var out strings.Builder
	// Move to beginning of line and clear everything below
	out.WriteString("\r\x1b[J")
	out.WriteString(text)
	if errLine != "" {
		out.WriteString("\r\n")
		out.WriteString(errLine)
		out.WriteString("\x1b[1A")
	}
	out.WriteString("\r")
	if cursorCol > 0 {
		fmt.Fprintf(&out, "\x1b[%dC", cursorCol)
	}

	_, err := io.WriteString(r.output, out.String())
	return err
}

func (r *renderer) truncate(s string, width int) string {
	if ansi.StringWidth(s) <= width {
		return s
	}
	s = ansi.Truncate(s, width, "…")
	if r.colored {
		// Terminate styling cut in the middle
		s += Reset()
	}
	return s
}

// renderFinish draws the resolved prompt and leaves the caret on the next line.
func (r *renderer) renderFinish(frame *Frame) error {
	var out strings.Builder
	out.WriteString("\r\x1b[J")

	for _, seg := range frame.Segments() {
		switch seg.Kind {
		case SegmentDone:
			out.WriteString(r.style(r.colorScheme.Done, doneSymbol))
			out.WriteString(" " + seg.Text + ": ")
		case SegmentAnswer:
			out.WriteString(r.style(r.colorScheme.Answer, seg.Text))
		}
	}
	out.WriteString("\r\n")

	_, err := io.WriteString(r.output, out.String())
	return err
}

// renderCancel clears the frame and echoes the interrupt.
func (r *renderer) renderCancel(err error) error {
	var out strings.Builder
	out.WriteString("\x1b[J")
	if errors.Is(err, ErrInterrupted) {
		out.WriteString("^C")
	}
	out.WriteString("\r\n")
	_, werr := io.WriteString(r.output, out.String())
	return werr
}
