package inputprompt

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// HistoryConfig holds answer history settings.
//
// File path supports multiple formats:
//   - Empty string: Memory-only history (no persistence)
//   - Absolute path: "/home/user/.app_answers"
//   - Home directory: "~/.app_answers"
//   - Relative path: "./app_answers" (converted to absolute)
type HistoryConfig struct {
	Enabled    bool   // Enable/disable history functionality
	MaxEntries int    // Maximum number of entries to keep (default: 100)
	File       string // File path for history persistence (empty = memory only)
}

const defaultHistoryEntries = 100

// DefaultHistoryConfig returns an enabled, memory-only history configuration.
func DefaultHistoryConfig() *HistoryConfig {
	return &HistoryConfig{
		Enabled:    true,
		MaxEntries: defaultHistoryEntries,
	}
}

// History keeps the textual form of previously submitted answers.
// Up and Down recall its entries into the input line.
type History struct {
	config  HistoryConfig
	entries []string
}

// NewHistory creates a history with the given configuration.
// A nil config yields DefaultHistoryConfig.
func NewHistory(config *HistoryConfig) *History {
	if config == nil {
		config = DefaultHistoryConfig()
	}
	cfg := *config
	if cfg.MaxEntries <= 0 {
		cfg.MaxEntries = defaultHistoryEntries
	}
	if cfg.File != "" {
		if absPath, err := expandHistoryPath(cfg.File); err == nil {
			cfg.File = absPath
		}
	}
	return &History{config: cfg}
}

// IsEnabled returns whether history functionality is enabled
func (h *History) IsEnabled() bool {
	return h.config.Enabled
}

// File returns the resolved persistence path, or "" for memory-only history.
func (h *History) File() string {
	return h.config.File
}

// Add appends an entry. Empty entries and consecutive duplicates are ignored.
func (h *History) Add(entry string) {
	if !h.config.Enabled || entry == "" {
		return
	}
	if len(h.entries) > 0 && h.entries[len(h.entries)-1] == entry {
		return
	}
	h.entries = append(h.entries, entry)
	if len(h.entries) > h.config.MaxEntries {
		h.entries = h.entries[len(h.entries)-h.config.MaxEntries:]
	}
}

// Entries returns a copy of the history, oldest first.
func (h *History) Entries() []string {
	if !h.config.Enabled {
		return []string{}
	}
	return append([]string{}, h.entries...)
}

// Len returns the number of entries.
func (h *History) Len() int {
	return len(h.entries)
}

// At returns the entry at index i, oldest first.
func (h *History) At(i int) string {
	return h.entries[i]
}

// Clear removes all entries.
func (h *History) Clear() {
	h.entries = nil
}

// Load reads entries from the configured file. A missing file is not an error.
func (h *History) Load() error {
	if !h.config.Enabled || h.config.File == "" {
		return nil
	}

	file, err := os.Open(h.config.File)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to open history file: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		h.Add(strings.TrimSpace(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read history file: %w", err)
	}
	return nil
}

// Save writes the entries to the configured file, creating its directory.
func (h *History) Save() error {
	if !h.config.Enabled || h.config.File == "" {
		return nil
	}

	if dir := filepath.Dir(h.config.File); dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create history directory: %w", err)
		}
	}

	file, err := os.Create(h.config.File)
	if err != nil {
		return fmt.Errorf("failed to create history file: %w", err)
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	for _, entry := range h.entries {
		if _, err := fmt.Fprintln(w, entry); err != nil {
			return fmt.Errorf("failed to write history entry: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write history file: %w", err)
	}
	return nil
}

// expandHistoryPath expands "~" and converts path to an absolute path.
func expandHistoryPath(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get user home directory: %w", err)
		}
		path = filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to convert to absolute path: %w", err)
	}
	return absPath, nil
}
