package inputprompt

import (
	"io"
	"os"
	"runtime"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-tty"
	"golang.org/x/term"
)

// terminalInterface is the key source of a prompt.
//
// realTerminal reads from the controlling TTY; mockTerminal replays a fixed
// input for tests. ReadRune blocks until a key is available and is the only
// place a prompt waits.
type terminalInterface interface {
	SetRaw() error                        // Enter raw mode for immediate key processing
	Restore() error                       // Restore original terminal settings
	Size() (width, height int, err error) // Get terminal dimensions with safe fallbacks
	ReadRune() (rune, int, error)         // Read a single Unicode character from input
	Close() error                         // Release the TTY, safe to call twice
}

// realTerminal reads keys through go-tty and manages raw mode with x/term.
type realTerminal struct {
	tty           *tty.TTY
	closed        bool // Windows panics on a second tty.Close
	stdinFd       int
	originalState *term.State
}

func newRealTerminal() (*realTerminal, error) {
	t, err := tty.Open()
	if err != nil {
		return nil, err
	}
	return &realTerminal{
		tty:     t,
		stdinFd: int(os.Stdin.Fd()),
	}, nil
}

// defaultOutput returns stdout, wrapped on Windows so ANSI sequences are translated.
func defaultOutput() io.Writer {
	if runtime.GOOS == "windows" {
		return colorable.NewColorableStdout()
	}
	return os.Stdout
}

func (t *realTerminal) SetRaw() error {
	if !term.IsTerminal(t.stdinFd) {
		return nil
	}
	// Capture a fresh baseline every time so repeated prompts restore correctly
	state, err := term.GetState(t.stdinFd)
	if err != nil {
		return err
	}
	t.originalState = state
	_, err = term.MakeRaw(t.stdinFd)
	return err
}

func (t *realTerminal) Restore() error {
	if t.originalState == nil || !term.IsTerminal(t.stdinFd) {
		return nil
	}
	err := term.Restore(t.stdinFd, t.originalState)
	t.originalState = nil
	return err
}

func (t *realTerminal) Size() (width, height int, err error) {
	w, h, err := t.tty.Size()
	if err != nil || w <= 0 || h <= 0 {
		return 80, 24, err
	}
	return w, h, nil
}

func (t *realTerminal) ReadRune() (rune, int, error) {
	r, err := t.tty.ReadRune()
	if err != nil {
		return 0, 0, err
	}
	return r, 1, nil
}

func (t *realTerminal) Close() error {
	if t.closed || t.tty == nil {
		return nil
	}
	t.closed = true
	return t.tty.Close()
}
