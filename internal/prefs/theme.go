package prefs

import "log/slog"

// ThemeKey is the key the theme preference is stored under.
const ThemeKey = "theme"

// Mode is the UI colour mode.
type Mode int

const (
	Light Mode = iota
	Dark
)

func (m Mode) String() string {
	if m == Dark {
		return "dark"
	}
	return "light"
}

// Toggle returns the other mode.
func (m Mode) Toggle() Mode {
	if m == Dark {
		return Light
	}
	return Dark
}

// ParseMode parses the stored literals "light" and "dark". ok is false for
// anything else, in which case Light is returned.
func ParseMode(s string) (mode Mode, ok bool) {
	switch s {
	case "dark":
		return Dark, true
	case "light":
		return Light, true
	default:
		return Light, false
	}
}

// ThemeStore reads and writes the persisted theme.
type ThemeStore interface {
	Read() (Mode, error)
	Write(Mode) error
}

type kvThemeStore struct {
	kv  KV
	log *slog.Logger
}

// NewThemeStore stores the theme under ThemeKey in kv.
func NewThemeStore(kv KV, log *slog.Logger) ThemeStore {
	if log == nil {
		log = slog.Default()
	}
	return &kvThemeStore{kv: kv, log: log}
}

// Read returns Light when nothing is stored or the stored value is unknown.
func (s *kvThemeStore) Read() (Mode, error) {
	v, ok, err := s.kv.Get(ThemeKey)
	if err != nil {
		return Light, err
	}
	if !ok {
		return Light, nil
	}
	mode, known := ParseMode(v)
	if !known {
		s.log.Warn("ignoring unknown theme preference", "value", v)
	}
	return mode, nil
}

func (s *kvThemeStore) Write(m Mode) error {
	return s.kv.Set(ThemeKey, m.String())
}
