// Package inputprompt provides a typed, single-line input prompt for terminal applications.
//
// A prompt asks one question, lets the user edit an answer, and converts
// and validates that answer into a Go value of the requested type before
// returning it. Invalid answers never end the prompt: the reason is shown
// below the input line and the user keeps editing.
//
// Key Features:
//
//   - Generic prompts: Input[int], Input[time.Duration], Input[*string], ...
//   - Pluggable converters per type, with built-ins for common types
//   - Ordered validation rules, including go-playground/validator tags
//   - Default values, optionally selected explicitly with Tab
//   - Placeholders, answer history and configurable key bindings
//   - Context support for timeouts and cancellation
//
// Quick Start:
//
//	package main
//
//	import (
//		"fmt"
//		"log"
//
//		"github.com/nao1215/inputprompt"
//	)
//
//	func main() {
//		p, err := inputprompt.New(inputprompt.Options[int]{
//			Message:   "Port",
//			Default:   inputprompt.Some(8080),
//			Converter: inputprompt.Int(),
//			Validators: []inputprompt.Rule[int]{
//				inputprompt.Between(1, 65535),
//			},
//		})
//		if err != nil {
//			log.Fatal(err)
//		}
//		defer p.Close()
//
//		port, err := p.Run()
//		if err != nil {
//			log.Fatal(err)
//		}
//		fmt.Printf("Listening on %d\n", port)
//	}
//
// Resolving the Answer:
//
// When Enter is pressed the input is resolved as follows:
//
//   - Empty input, the type has no empty value (see Converter.Nullable) and
//     no default is configured: "Value is required" is shown.
//   - Empty input otherwise: the default value is used, or the zero value
//     when there is none.
//   - Non-empty input: the Converter parses it; parse errors are shown.
//   - The value is then checked by each rule in Options.Validators in order;
//     the first failure is shown.
//
// Selecting the Default:
//
// With Options.DefaultValueMustBeSelected the hint reads
// "(8080 - Tab to select)" and Tab copies the default into the input.
// Note that pressing Enter on an empty line in this mode does not apply the
// default; it resolves to the zero value of the type (0 for Input[int]).
//
// Key Bindings:
//
//   - Enter: Resolve and submit the input
//   - Tab: Copy the default into the input (when it must be selected)
//   - Backspace: Delete the last character
//   - Ctrl+U: Delete the whole line
//   - Up/Down: Recall previous answers
//   - Ctrl+C: Cancel and return ErrInterrupted
//   - Ctrl+D: Cancel and return ErrEOF when the line is empty
//
// Rendering:
//
// Each redraw builds a Frame through the Canvas interface (prompt, hint,
// cursor marker, input; or done and answer once resolved). Input.Render
// exposes the same frames to custom renderers.
//
// Thread Safety:
//
// Input instances are not thread-safe. Each prompt should be used from a single
// goroutine. However, you can safely cancel a prompt from another goroutine using
// context cancellation.
package inputprompt
