package config

import (
	"fmt"
	"os"
	"sync"

	"github.com/joho/godotenv"
)

// Settings keys persisted across restarts.
const (
	SettingLocale = "LOCALE"
	SettingTheme  = "THEME"
)

var settingsDefaults = map[string]string{
	SettingLocale: "en",
	SettingTheme:  "light",
}

// Settings is the key/value preferences file (locale, theme). It is
// read once at startup and rewritten on every change.
type Settings struct {
	path string

	mu     sync.Mutex
	values map[string]string
}

// LoadSettings reads the settings file at path. A missing file is not
// an error; defaults apply until the first write creates it.
func LoadSettings(path string) (*Settings, error) {
	s := &Settings{path: path, values: map[string]string{}}
	for k, v := range settingsDefaults {
		s.values[k] = v
	}

	stored, err := godotenv.Read(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}
	for k, v := range stored {
		s.values[k] = v
	}
	return s, nil
}

// Get returns the value for key, or the default when unset.
func (s *Settings) Get(key string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.values[key]
}

// Set updates key and rewrites the settings file.
func (s *Settings) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value

	out := make(map[string]string, len(s.values))
	for k, v := range s.values {
		out[k] = v
	}
	if err := godotenv.Write(out, s.path); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}
	return nil
}

// All returns a copy of every setting.
func (s *Settings) All() map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]string, len(s.values))
	for k, v := range s.values {
		out[k] = v
	}
	return out
}
