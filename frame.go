package inputprompt

import "strings"

// Canvas receives the content of one screen update.
//
// Writes are labeled so a renderer can style each part; PushCursor marks
// where the caret must be placed once the frame is drawn. Frame is the
// in-memory implementation used by the prompt.
type Canvas interface {
	WritePrompt(text string)
	WriteHint(text string)
	WriteInput(text string)
	PushCursor()
	WriteDone(text string)
	WriteAnswer(text string)
}

// SegmentKind labels a piece of a Frame.
type SegmentKind int

// Segment kinds in the order a renderer usually meets them
const (
	SegmentPrompt SegmentKind = iota
	SegmentHint
	SegmentInput
	SegmentCursor
	SegmentDone
	SegmentAnswer
)

func (k SegmentKind) String() string {
	switch k {
	case SegmentPrompt:
		return "prompt"
	case SegmentHint:
		return "hint"
	case SegmentInput:
		return "input"
	case SegmentCursor:
		return "cursor"
	case SegmentDone:
		return "done"
	case SegmentAnswer:
		return "answer"
	default:
		return "unknown"
	}
}

// Segment is one labeled piece of text. Cursor segments carry no text.
type Segment struct {
	Kind SegmentKind
	Text string
}

// Frame is an ordered list of segments with at most one cursor marker.
// A new Frame is built for every render.
type Frame struct {
	segments []Segment
	cursor   int
}

// NewFrame returns an empty frame.
func NewFrame() *Frame {
	return &Frame{cursor: -1}
}

func (f *Frame) write(kind SegmentKind, text string) {
	f.segments = append(f.segments, Segment{Kind: kind, Text: text})
}

func (f *Frame) WritePrompt(text string) { f.write(SegmentPrompt, text) }
func (f *Frame) WriteHint(text string)   { f.write(SegmentHint, text) }
func (f *Frame) WriteInput(text string)  { f.write(SegmentInput, text) }
func (f *Frame) WriteDone(text string)   { f.write(SegmentDone, text) }
func (f *Frame) WriteAnswer(text string) { f.write(SegmentAnswer, text) }

// PushCursor marks the current position as the caret position.
// Only the first call per frame has an effect.
func (f *Frame) PushCursor() {
	if f.cursor >= 0 {
		return
	}
	f.cursor = len(f.segments)
	f.write(SegmentCursor, "")
}

// Segments returns a copy of the frame content.
func (f *Frame) Segments() []Segment {
	return append([]Segment(nil), f.segments...)
}

// Cursor returns the index of the cursor segment, or -1 when none was pushed.
func (f *Frame) Cursor() int {
	return f.cursor
}

// String returns the unstyled text of the frame.
func (f *Frame) String() string {
	var sb strings.Builder
	for _, s := range f.segments {
		sb.WriteString(s.Text)
	}
	return sb.String()
}

// writeInputTemplate draws the editing view. The order is fixed: message,
// default hint, cursor marker and placeholder, then the typed text. Renderers
// rely on hints never following the input and on the cursor marker
// preceding the placeholder.
func writeInputTemplate[T any](c Canvas, opts *Options[T], input string) {
	c.WritePrompt(opts.Message)

	if def, ok := opts.Default.Get(); ok {
		text, _ := opts.Converter.Format(def)
		if opts.DefaultValueMustBeSelected {
			c.WriteHint("(" + text + " - Tab to select) ")
		} else {
			c.WriteHint("(" + text + ") ")
		}
	}

	if input == "" && opts.Placeholder != "" {
		c.PushCursor()
		c.WriteHint(opts.Placeholder)
	}

	c.WriteInput(input)
}

// writeFinishTemplate draws the resolved prompt. Empty values get no answer.
func writeFinishTemplate[T any](c Canvas, opts *Options[T], result T) {
	c.WriteDone(opts.Message)

	if text, ok := opts.Converter.Format(result); ok {
		c.WriteAnswer(text)
	}
}
