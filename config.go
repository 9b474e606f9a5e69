package calloutmath

import (
	"sync"

	"github.com/riverfjs/calloutmath-go/internal/types"
)

// Exported type aliases.
type Settings = types.Settings
type Classes = types.Classes

var (
	defaultSettings     *Settings
	defaultSettingsOnce sync.Once
	defaultClasses      *Classes
	defaultClassesOnce  sync.Once
)

// DefaultSettings returns the default settings (singleton). Callers must
// not modify it; copy it first.
func DefaultSettings() *Settings {
	defaultSettingsOnce.Do(func() {
		defaultSettings = types.DefaultSettings()
	})
	return defaultSettings
}

// DefaultClasses returns the default decoration class names (singleton).
func DefaultClasses() *Classes {
	defaultClassesOnce.Do(func() {
		defaultClasses = types.DefaultClasses()
	})
	return defaultClasses
}
