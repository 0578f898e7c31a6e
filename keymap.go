package inputprompt

import "strings"

// Key identifies what a key press means to the prompt.
type Key int

// Key identities produced by the KeyMap
const (
	KeyUnknown Key = iota
	KeyRune
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDeleteLine
	KeyUp
	KeyDown
	KeyInterrupt
	KeyEOF
)

// KeyEvent is one decoded key press. Rune is set for KeyRune events.
type KeyEvent struct {
	Key  Key
	Rune rune
}

// Handler reacts to a key event and reports whether editing continues.
type Handler func(ev KeyEvent) bool

// KeyMap maps raw terminal input to keys.
type KeyMap struct {
	bindings  map[rune]Key
	sequences map[string]Key
}

// NewDefaultKeyMap creates the default key bindings.
//
// Default key bindings:
//   - Enter/Return: Submit the value
//   - Tab: Select the default value (when it must be selected)
//   - Backspace: Delete the last character
//   - Ctrl+U: Delete the whole line
//   - Ctrl+C: Cancel (interrupt)
//   - Ctrl+D: EOF when the line is empty
//   - Up/Down arrows: Recall previous answers
//
// Example:
//
//	keyMap := inputprompt.NewDefaultKeyMap()
//	// Ctrl+L clears the line as well
//	keyMap.Bind('\x0C', inputprompt.KeyDeleteLine)
func NewDefaultKeyMap() *KeyMap {
	km := &KeyMap{
		bindings:  make(map[rune]Key),
		sequences: make(map[string]Key),
	}

	km.bindings['\r'] = KeyEnter
	km.bindings['\n'] = KeyEnter
	km.bindings['\t'] = KeyTab
	km.bindings['\x7f'] = KeyBackspace
	km.bindings['\b'] = KeyBackspace
	km.bindings['\x15'] = KeyDeleteLine // Ctrl+U
	km.bindings['\x03'] = KeyInterrupt  // Ctrl+C
	km.bindings['\x04'] = KeyEOF        // Ctrl+D

	// Escape sequences, without the leading ESC
	km.sequences["[A"] = KeyUp
	km.sequences["[B"] = KeyDown
	km.sequences["OA"] = KeyUp
	km.sequences["OB"] = KeyDown

	return km
}

// Bind adds or updates the key for a single rune.
func (km *KeyMap) Bind(r rune, key Key) {
	km.bindings[r] = key
}

// BindSequence adds or updates the key for an escape sequence.
// The sequence should not include the initial ESC character.
//
// Example:
//
//	keyMap := inputprompt.NewDefaultKeyMap()
//	// Shift+Tab selects the default too
//	keyMap.BindSequence("[Z", inputprompt.KeyTab)
func (km *KeyMap) BindSequence(seq string, key Key) {
	km.sequences[seq] = key
}

// Lookup decodes a single rune. Unbound printable runes decode as KeyRune.
func (km *KeyMap) Lookup(r rune) KeyEvent {
	if km != nil && km.bindings != nil {
		if key, exists := km.bindings[r]; exists {
			return KeyEvent{Key: key, Rune: r}
		}
	}
	if r >= 32 && r != 127 {
		return KeyEvent{Key: KeyRune, Rune: r}
	}
	return KeyEvent{Key: KeyUnknown, Rune: r}
}

// LookupSequence decodes an escape sequence, or returns KeyUnknown.
func (km *KeyMap) LookupSequence(seq string) KeyEvent {
	if km == nil || km.sequences == nil {
		return KeyEvent{Key: KeyUnknown}
	}
	if key, exists := km.sequences[seq]; exists {
		return KeyEvent{Key: key}
	}
	return KeyEvent{Key: KeyUnknown}
}

// readKey reads one key press from t, collecting escape sequences.
func readKey(t terminalInterface, km *KeyMap) (KeyEvent, error) {
	r, _, err := t.ReadRune()
	if err != nil {
		return KeyEvent{}, err
	}
	if r != '\x1b' {
		return km.Lookup(r), nil
	}
	seq, err := readEscapeSequence(t)
	if err != nil {
		return KeyEvent{}, err
	}
	return km.LookupSequence(seq), nil
}

func readEscapeSequence(t terminalInterface) (string, error) {
	seq := make([]rune, 0, 8)
	for range 8 {
		r, _, err := t.ReadRune()
		if err != nil {
			return "", err
		}
		seq = append(seq, r)

		s := string(seq)
		if len(seq) == 1 && r != '[' && r != 'O' {
			return s, nil
		}
		if len(seq) >= 2 && (r < '0' || r > '9') && r != ';' {
			return s, nil
		}
		if strings.HasSuffix(s, "~") {
			return s, nil
		}
	}
	return string(seq), nil
}
