package inputprompt

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultHistoryConfig(t *testing.T) {
	t.Parallel()

	config := DefaultHistoryConfig()
	assert.True(t, config.Enabled)
	assert.Equal(t, 100, config.MaxEntries)
	assert.Empty(t, config.File)
}

func TestNewHistory(t *testing.T) {
	t.Parallel()

	t.Run("nil config", func(t *testing.T) {
		t.Parallel()

		h := NewHistory(nil)
		assert.True(t, h.IsEnabled())
		assert.Equal(t, 0, h.Len())
		assert.Empty(t, h.File())
	})

	t.Run("non-positive limit falls back to default", func(t *testing.T) {
		t.Parallel()

		h := NewHistory(&HistoryConfig{Enabled: true, MaxEntries: 0})
		for i := range 150 {
			h.Add(string(rune('a'+i%26)) + string(rune('0'+i/26)))
		}
		assert.Equal(t, 100, h.Len())
	})

	t.Run("config is copied", func(t *testing.T) {
		t.Parallel()

		config := &HistoryConfig{Enabled: true, MaxEntries: 5}
		h := NewHistory(config)
		config.Enabled = false
		assert.True(t, h.IsEnabled())
	})
}

func TestHistoryAdd(t *testing.T) {
	t.Parallel()

	h := NewHistory(&HistoryConfig{Enabled: true, MaxEntries: 3})

	h.Add("1")
	h.Add("")
	h.Add("2")
	h.Add("2")
	assert.Equal(t, []string{"1", "2"}, h.Entries(), "empty and consecutive duplicates are skipped")

	h.Add("1")
	h.Add("3")
	assert.Equal(t, []string{"2", "1", "3"}, h.Entries(), "oldest entries are dropped")
	assert.Equal(t, "1", h.At(1))

	entries := h.Entries()
	entries[0] = "changed"
	assert.Equal(t, "2", h.At(0), "Entries returns a copy")

	h.Clear()
	assert.Equal(t, 0, h.Len())
	assert.Empty(t, h.Entries())
}

func TestHistoryDisabled(t *testing.T) {
	t.Parallel()

	h := NewHistory(&HistoryConfig{Enabled: false, MaxEntries: 10, File: filepath.Join(t.TempDir(), "answers")})
	h.Add("1")

	assert.False(t, h.IsEnabled())
	assert.Empty(t, h.Entries())
	assert.Equal(t, 0, h.Len())
	require.NoError(t, h.Save())
	require.NoError(t, h.Load())
	_, err := os.Stat(h.File())
	assert.True(t, os.IsNotExist(err), "disabled history must not write a file")
}

func TestHistoryFilePersistence(t *testing.T) {
	t.Parallel()

	file := filepath.Join(t.TempDir(), "nested", "answers")
	config := &HistoryConfig{Enabled: true, MaxEntries: 10, File: file}

	h := NewHistory(config)
	h.Add("8080")
	h.Add("hello world")
	require.NoError(t, h.Save())

	content, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, "8080\nhello world\n", string(content))

	loaded := NewHistory(config)
	require.NoError(t, loaded.Load())
	assert.Equal(t, []string{"8080", "hello world"}, loaded.Entries())
}

func TestHistoryLoadTrimsAndLimits(t *testing.T) {
	t.Parallel()

	file := filepath.Join(t.TempDir(), "answers")
	require.NoError(t, os.WriteFile(file, []byte("a\n  b  \n\nc\nc\nd\n"), 0600))

	h := NewHistory(&HistoryConfig{Enabled: true, MaxEntries: 2, File: file})
	require.NoError(t, h.Load())
	assert.Equal(t, []string{"c", "d"}, h.Entries())
}

func TestHistoryLoadNonExistentFile(t *testing.T) {
	t.Parallel()

	h := NewHistory(&HistoryConfig{Enabled: true, MaxEntries: 10, File: filepath.Join(t.TempDir(), "missing")})
	require.NoError(t, h.Load())
	assert.Equal(t, 0, h.Len())
}

func TestHistoryLoadDirectoryFails(t *testing.T) {
	t.Parallel()

	h := NewHistory(&HistoryConfig{Enabled: true, MaxEntries: 10, File: t.TempDir()})
	assert.Error(t, h.Load())
}

func TestExpandHistoryPath(t *testing.T) {
	t.Parallel()

	home, err := os.UserHomeDir()
	require.NoError(t, err)
	wd, err := os.Getwd()
	require.NoError(t, err)

	tests := []struct {
		name     string
		path     string
		expected string
	}{
		{name: "home", path: "~", expected: home},
		{name: "under home", path: "~/.app_answers", expected: filepath.Join(home, ".app_answers")},
		{name: "absolute", path: "/tmp/answers", expected: "/tmp/answers"},
		{name: "relative", path: "./answers", expected: filepath.Join(wd, "answers")},
		{name: "tilde in name is literal", path: "~answers", expected: filepath.Join(wd, "~answers")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := expandHistoryPath(tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestNewHistoryExpandsPath(t *testing.T) {
	t.Parallel()

	home, err := os.UserHomeDir()
	require.NoError(t, err)

	h := NewHistory(&HistoryConfig{Enabled: true, File: "~/.app_answers"})
	assert.Equal(t, filepath.Join(home, ".app_answers"), h.File())
}

func TestPromptPersistsHistoryOnClose(t *testing.T) {
	t.Parallel()

	file := filepath.Join(t.TempDir(), "answers")

	first, _ := newForTesting(t, intOptions(), "42\r", WithFileHistory(file, 10))
	_, err := first.Run()
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, _ := newForTesting(t, intOptions(), "\x1b[A\r", WithFileHistory(file, 10))
	defer second.Close()
	assert.Equal(t, []string{"42"}, second.History().Entries())

	result, err := second.Run()
	require.NoError(t, err)
	assert.Equal(t, 42, result)
}
