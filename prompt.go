package inputprompt

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/muesli/termenv"
	"go.uber.org/zap"
)

// Phase is the state of a prompt.
type Phase int

// Prompt phases
const (
	// PhaseEditing is the initial phase; the user is typing.
	PhaseEditing Phase = iota
	// PhaseSubmitted means Enter resolved a valid value.
	PhaseSubmitted
	// PhaseCancelled means the prompt was interrupted, hit EOF or its context ended.
	PhaseCancelled
)

func (p Phase) String() string {
	switch p {
	case PhaseEditing:
		return "editing"
	case PhaseSubmitted:
		return "submitted"
	case PhaseCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Options describes what a prompt asks for. It is copied by New and does
// not change while the prompt runs.
type Options[T any] struct {
	Message     string       // Question shown in front of the input, required
	Placeholder string       // Shown dimmed while the input is empty
	Default     Optional[T]  // Value offered when the input is empty
	Converter   Converter[T] // Parses and formats T, required
	Validators  []Rule[T]    // Applied in order to the converted value

	// DefaultValueMustBeSelected requires the user to press Tab to copy the
	// default into the input. Pressing Enter on an empty line then does NOT
	// apply the default: it resolves to the zero value of T.
	DefaultValueMustBeSelected bool
}

func (o *Options[T]) validate() error {
	if o.Message == "" {
		return errors.New("inputprompt: message must not be empty")
	}
	if o.Converter == nil {
		return errors.New("inputprompt: converter must not be nil")
	}
	return nil
}

// Messages holds the user-facing texts the prompt shows on its own.
type Messages struct {
	Required string // Shown when an empty line cannot be accepted
}

// DefaultMessages returns the English messages.
func DefaultMessages() Messages {
	return Messages{
		Required: "Value is required",
	}
}

// Config holds the environment of a prompt: look, keys, history and logging.
type Config struct {
	ColorScheme   *ColorScheme   // Color scheme (nil for default)
	KeyMap        *KeyMap        // Key bindings (nil for default)
	HistoryConfig *HistoryConfig // History configuration (nil for default)
	Logger        *zap.Logger    // Logger (nil for no logging)
	Messages      Messages       // Empty fields fall back to DefaultMessages
	DisableColor  bool           // Plain output regardless of the terminal
}

// Option represents a configuration option for a prompt
type Option func(*Config)

// WithColorScheme sets the color scheme
func WithColorScheme(colorScheme *ColorScheme) Option {
	return func(c *Config) {
		c.ColorScheme = colorScheme
	}
}

// WithTheme sets the color scheme (alias of WithColorScheme)
func WithTheme(theme *ColorScheme) Option {
	return WithColorScheme(theme)
}

// WithoutColor disables ANSI colors.
func WithoutColor() Option {
	return func(c *Config) {
		c.DisableColor = true
	}
}

// WithKeyMap sets the key bindings
func WithKeyMap(keyMap *KeyMap) Option {
	return func(c *Config) {
		c.KeyMap = keyMap
	}
}

// WithHistory configures answer history.
//
// Example:
//
//	inputprompt.New(opts, inputprompt.WithHistory(&inputprompt.HistoryConfig{
//		Enabled:    true,
//		MaxEntries: 50,
//		File:       "~/.myapp_answers",
//	}))
func WithHistory(historyConfig *HistoryConfig) Option {
	return func(c *Config) {
		c.HistoryConfig = historyConfig
	}
}

// WithMemoryHistory keeps up to maxEntries answers in memory.
func WithMemoryHistory(maxEntries int) Option {
	return func(c *Config) {
		c.HistoryConfig = &HistoryConfig{
			Enabled:    true,
			MaxEntries: maxEntries,
		}
	}
}

// WithFileHistory keeps up to maxEntries answers and persists them to file on Close.
func WithFileHistory(file string, maxEntries int) Option {
	return func(c *Config) {
		c.HistoryConfig = &HistoryConfig{
			Enabled:    true,
			MaxEntries: maxEntries,
			File:       file,
		}
	}
}

// WithLogger sets the logger used for debug traces and warnings.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithMessages overrides the texts shown by the prompt.
func WithMessages(messages Messages) Option {
	return func(c *Config) {
		c.Messages = messages
	}
}

// Input is an interactive prompt that reads one value of type T.
//
// The prompt redraws after every key press. Enter resolves the typed text
// into a value: an empty line falls back to the default (see
// Options.DefaultValueMustBeSelected), non-empty text goes through the
// Converter, and the result through the Validators. Resolution failures are
// shown below the input and editing continues; Run only returns once a value
// is accepted or the prompt is cancelled.
//
// Input instances are not thread-safe.
type Input[T any] struct {
	opts     Options[T]
	config   Config
	output   io.Writer
	terminal terminalInterface
	renderer *renderer
	logger   *zap.Logger
	history  *History
	keyMap   *KeyMap
	handlers map[Key]Handler

	buffer       Buffer
	errMsg       string
	phase        Phase
	result       T
	cancelErr    error
	historyIndex int
}

// New creates a prompt reading from the controlling terminal.
//
// Example:
//
//	p, err := inputprompt.New(inputprompt.Options[int]{
//		Message:    "How many workers",
//		Default:    inputprompt.Some(4),
//		Converter:  inputprompt.Int(),
//		Validators: []inputprompt.Rule[int]{inputprompt.Between(1, 64)},
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer p.Close()
//
//	workers, err := p.Run()
func New[T any](opts Options[T], options ...Option) (*Input[T], error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	config := Config{}
	for _, option := range options {
		option(&config)
	}

	terminal, err := newRealTerminal()
	if err != nil {
		return nil, fmt.Errorf("failed to create terminal: %w", err)
	}

	p, err := newFromConfig(opts, config, defaultOutput(), terminal)
	if err != nil {
		_ = terminal.Close()
		return nil, err
	}
	return p, nil
}

func newFromConfig[T any](opts Options[T], config Config, output io.Writer, terminal terminalInterface) (*Input[T], error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	opts.Validators = slices.Clone(opts.Validators)

	if config.ColorScheme == nil {
		config.ColorScheme = ThemeDefault
	}
	if config.KeyMap == nil {
		config.KeyMap = NewDefaultKeyMap()
	}
	if config.Logger == nil {
		config.Logger = zap.NewNop()
	}
	if config.Messages.Required == "" {
		config.Messages.Required = DefaultMessages().Required
	}

	history := NewHistory(config.HistoryConfig)
	if err := history.Load(); err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}

	colored := !config.DisableColor && termenv.EnvColorProfile() != termenv.Ascii

	p := &Input[T]{
		opts:     opts,
		config:   config,
		output:   output,
		terminal: terminal,
		renderer: newRenderer(output, config.ColorScheme, colored),
		logger:   config.Logger,
		history:  history,
		keyMap:   config.KeyMap,
	}
	p.handlers = map[Key]Handler{
		KeyEnter:      p.handleEnter,
		KeyTab:        p.handleTab,
		KeyRune:       p.handleRune,
		KeyBackspace:  p.handleBackspace,
		KeyDeleteLine: p.handleDeleteLine,
		KeyUp:         p.handleHistoryUp,
		KeyDown:       p.handleHistoryDown,
		KeyInterrupt:  p.handleInterrupt,
		KeyEOF:        p.handleEOF,
	}
	p.reset()
	return p, nil
}

// Handle registers h for key, replacing the built-in handler. A handler
// returning false while the prompt is still editing resolves the input as
// if Enter had been pressed.
//
// Example:
//
//	// Ctrl+D submits instead of cancelling
//	p.Handle(inputprompt.KeyEOF, func(inputprompt.KeyEvent) bool {
//		return false
//	})
func (p *Input[T]) Handle(key Key, h Handler) {
	p.handlers[key] = h
}

// Run starts the prompt and returns the accepted value.
//
// This is a convenience method that calls RunWithContext with a background context.
func (p *Input[T]) Run() (T, error) {
	return p.RunWithContext(context.Background())
}

// RunWithContext starts the prompt and returns the accepted value.
//
// The context is checked before each key is read; the read itself blocks
// until a key arrives. Errors:
//   - ErrInterrupted: User pressed Ctrl+C
//   - ErrEOF: User pressed Ctrl+D on an empty line or the input ended
//   - ctx.Err(): The context was cancelled or timed out
func (p *Input[T]) RunWithContext(ctx context.Context) (T, error) {
	var zero T

	if err := p.terminal.SetRaw(); err != nil {
		return zero, fmt.Errorf("failed to enter raw mode: %w", err)
	}
	defer func() {
		if err := p.terminal.Restore(); err != nil {
			p.logger.Warn("failed to restore terminal state", zap.Error(err))
		}
	}()

	p.reset()
	for p.phase == PhaseEditing {
		if err := p.renderInput(); err != nil {
			return zero, fmt.Errorf("failed to render prompt: %w", err)
		}

		select {
		case <-ctx.Done():
			p.cancel(ctx.Err())
			return zero, p.abort()
		default:
		}

		ev, err := readKey(p.terminal, p.keyMap)
		if err != nil {
			if errors.Is(err, io.EOF) {
				p.cancel(ErrEOF)
				return zero, p.abort()
			}
			return zero, fmt.Errorf("failed to read input: %w", err)
		}

		p.dispatch(ev)
	}

	if p.phase == PhaseCancelled {
		return zero, p.abort()
	}

	frame := NewFrame()
	writeFinishTemplate(frame, &p.opts, p.result)
	if err := p.renderer.renderFinish(frame); err != nil {
		return zero, fmt.Errorf("failed to render answer: %w", err)
	}
	if text, ok := p.opts.Converter.Format(p.result); ok {
		p.history.Add(text)
	}
	return p.result, nil
}

// Close saves the answer history and releases the terminal.
// It is safe to call Close multiple times.
func (p *Input[T]) Close() error {
	if p.history != nil {
		if err := p.history.Save(); err != nil {
			p.logger.Warn("failed to save history", zap.String("file", p.history.File()), zap.Error(err))
		}
	}
	if p.terminal != nil {
		return p.terminal.Close()
	}
	return nil
}

// Phase returns the current phase.
func (p *Input[T]) Phase() Phase {
	return p.phase
}

// Text returns the current input text.
func (p *Input[T]) Text() string {
	return p.buffer.String()
}

// ErrorMessage returns the error shown below the input, or "".
func (p *Input[T]) ErrorMessage() string {
	return p.errMsg
}

// Result returns the accepted value and whether the prompt was submitted.
func (p *Input[T]) Result() (T, bool) {
	if p.phase != PhaseSubmitted {
		var zero T
		return zero, false
	}
	return p.result, true
}

// History returns the answer history.
func (p *Input[T]) History() *History {
	return p.history
}

// Render writes the current state to c: the editing view while editing,
// the resolved view once submitted.
func (p *Input[T]) Render(c Canvas) {
	if p.phase == PhaseSubmitted {
		writeFinishTemplate(c, &p.opts, p.result)
		return
	}
	writeInputTemplate(c, &p.opts, p.buffer.String())
}

func (p *Input[T]) reset() {
	var zero T
	p.buffer.Clear()
	p.errMsg = ""
	p.phase = PhaseEditing
	p.result = zero
	p.cancelErr = nil
	p.historyIndex = p.history.Len()
}

// dispatch clears the previous error and runs the handler bound to ev.
// Unbound keys are ignored.
func (p *Input[T]) dispatch(ev KeyEvent) bool {
	p.errMsg = ""
	handler, ok := p.handlers[ev.Key]
	if !ok || handler == nil {
		return true
	}
	if handler(ev) {
		return true
	}
	if p.phase == PhaseEditing {
		return p.handleEnter(ev)
	}
	return false
}

func (p *Input[T]) handleEnter(KeyEvent) bool {
	result, err := p.resolve()
	if err != nil {
		p.setError(err)
		p.logger.Debug("input rejected",
			zap.String("message", p.opts.Message),
			zap.String("input", p.buffer.String()),
			zap.Error(err))
		return true
	}
	p.result = result
	p.phase = PhaseSubmitted
	p.logger.Debug("input submitted",
		zap.String("message", p.opts.Message),
		zap.String("input", p.buffer.String()))
	return false
}

// resolve turns the input into a validated value. Panics raised by
// converters or rules are reported as errors.
func (p *Input[T]) resolve() (result T, err error) {
	defer func() {
		if r := recover(); r != nil {
			var zero T
			result = zero
			err = fmt.Errorf("%v", r)
		}
	}()

	input := p.buffer.String()
	if input == "" {
		if !p.opts.Converter.Nullable() && !p.opts.Default.HasValue() {
			return result, ErrRequired
		}
		// A default that must be selected is only applied through Tab;
		// a bare Enter leaves result at the zero value of T.
		if !p.opts.DefaultValueMustBeSelected {
			result = p.opts.Default.OrZero()
		}
	} else {
		result, err = p.opts.Converter.Convert(input)
		if err != nil {
			var zero T
			return zero, err
		}
	}

	return Validate(result, p.opts.Validators)
}

func (p *Input[T]) setError(err error) {
	if errors.Is(err, ErrRequired) {
		p.errMsg = p.config.Messages.Required
		return
	}
	p.errMsg = err.Error()
}

func (p *Input[T]) handleTab(KeyEvent) bool {
	if !p.opts.DefaultValueMustBeSelected {
		return true
	}
	if def, ok := p.opts.Default.Get(); ok {
		text, _ := p.opts.Converter.Format(def)
		p.buffer.Set(text)
	}
	return true
}

func (p *Input[T]) handleRune(ev KeyEvent) bool {
	if p.buffer.Insert(ev.Rune) {
		p.historyIndex = p.history.Len()
	}
	return true
}

func (p *Input[T]) handleBackspace(KeyEvent) bool {
	p.buffer.Backspace()
	return true
}

func (p *Input[T]) handleDeleteLine(KeyEvent) bool {
	p.buffer.Clear()
	return true
}

func (p *Input[T]) handleHistoryUp(KeyEvent) bool {
	if p.historyIndex > 0 {
		p.historyIndex--
		p.buffer.Set(p.history.At(p.historyIndex))
	}
	return true
}

func (p *Input[T]) handleHistoryDown(KeyEvent) bool {
	if p.historyIndex < p.history.Len() {
		p.historyIndex++
		if p.historyIndex == p.history.Len() {
			p.buffer.Clear()
		} else {
			p.buffer.Set(p.history.At(p.historyIndex))
		}
	}
	return true
}

func (p *Input[T]) handleInterrupt(KeyEvent) bool {
	p.cancel(ErrInterrupted)
	return false
}

func (p *Input[T]) handleEOF(KeyEvent) bool {
	if p.buffer.Len() > 0 {
		return true
	}
	p.cancel(ErrEOF)
	return false
}

func (p *Input[T]) cancel(err error) {
	p.phase = PhaseCancelled
	p.cancelErr = err
}

// abort draws the cancellation and returns its cause.
func (p *Input[T]) abort() error {
	if err := p.renderer.renderCancel(p.cancelErr); err != nil {
		p.logger.Warn("failed to render cancellation", zap.Error(err))
	}
	p.logger.Debug("input cancelled", zap.String("message", p.opts.Message), zap.Error(p.cancelErr))
	return p.cancelErr
}

func (p *Input[T]) renderInput() error {
	frame := NewFrame()
	writeInputTemplate(frame, &p.opts, p.buffer.String())
	width, _, err := p.terminal.Size()
	if err != nil {
		width = 0
	}
	return p.renderer.renderInput(frame, p.errMsg, width)
}
