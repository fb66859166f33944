package prefs

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModeString(t *testing.T) {
	assert.Equal(t, "light", Light.String())
	assert.Equal(t, "dark", Dark.String())
}

func TestModeToggle(t *testing.T) {
	assert.Equal(t, Dark, Light.Toggle())
	assert.Equal(t, Light, Dark.Toggle())
	assert.Equal(t, Light, Light.Toggle().Toggle())
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in     string
		want   Mode
		wantOK bool
	}{
		{"dark", Dark, true},
		{"light", Light, true},
		{"", Light, false},
		{"Dark", Light, false},
		{"purple", Light, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseMode(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestThemeStoreDefaultsToLight(t *testing.T) {
	ts := NewThemeStore(NewMemoryStore(), nil)

	mode, err := ts.Read()
	require.NoError(t, err)
	assert.Equal(t, Light, mode)
}

func TestThemeStoreUnknownValueIsLight(t *testing.T) {
	kv := NewMemoryStore()
	require.NoError(t, kv.Set(ThemeKey, "sepia"))

	mode, err := NewThemeStore(kv, nil).Read()
	require.NoError(t, err)
	assert.Equal(t, Light, mode)
}

func TestThemeStoreWritesLiterals(t *testing.T) {
	kv := NewMemoryStore()
	ts := NewThemeStore(kv, nil)

	require.NoError(t, ts.Write(Dark))
	v, _, _ := kv.Get(ThemeKey)
	assert.Equal(t, "dark", v)

	require.NoError(t, ts.Write(Light))
	v, _, _ = kv.Get(ThemeKey)
	assert.Equal(t, "light", v)
}

func TestThemeStoreWriteError(t *testing.T) {
	kv := NewMemoryStore()
	kv.SetErr = errors.New("read-only")

	assert.Error(t, NewThemeStore(kv, nil).Write(Dark))
}

func TestThemeStoreOverFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")

	require.NoError(t, NewThemeStore(NewFileStore(path), nil).Write(Dark))

	// A fresh store sees the persisted value, as on the next launch.
	mode, err := NewThemeStore(NewFileStore(path), nil).Read()
	require.NoError(t, err)
	assert.Equal(t, Dark, mode)
}
