package config

import (
	"time"

	"fyne.io/fyne/v2"
	"github.com/rs/zerolog"

	"github.com/ytget/juice-tracker/internal/platform"
	"github.com/ytget/juice-tracker/internal/store"
)

// AppName names the per-user data directory
const AppName = "juice-tracker"

// Settings keys for Fyne preferences
const (
	KeyDatabasePath   = "database_path"
	KeyStorageBackend = "storage_backend"
	KeyLanguage       = "app_language"
	KeyLogLevel       = "log_level"
	KeyCacheTTL       = "cache_ttl_seconds"
)

// Default values
const (
	DefaultStorageBackend  = store.BackendSQLite
	DefaultLanguage        = "system"
	DefaultLogLevel        = "info"
	DefaultCacheTTLSeconds = 30
	MaxCacheTTLSeconds     = 3600
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetDatabasePath returns the configured SQLite file path
func (s *Settings) GetDatabasePath() string {
	path := s.app.Preferences().String(KeyDatabasePath)
	if path == "" {
		path = platform.DefaultDatabasePath(AppName)
		s.SetDatabasePath(path)
	}
	return path
}

// SetDatabasePath sets the SQLite file path
func (s *Settings) SetDatabasePath(path string) {
	s.app.Preferences().SetString(KeyDatabasePath, path)
}

// GetStorageBackend returns the configured storage backend
func (s *Settings) GetStorageBackend() string {
	backend := s.app.Preferences().String(KeyStorageBackend)
	if !isKnownBackend(backend) {
		s.SetStorageBackend(DefaultStorageBackend)
		return DefaultStorageBackend
	}
	return backend
}

// SetStorageBackend sets the storage backend; unknown names reset to the default
func (s *Settings) SetStorageBackend(backend string) {
	if !isKnownBackend(backend) {
		backend = DefaultStorageBackend
	}
	s.app.Preferences().SetString(KeyStorageBackend, backend)
}

// GetStorageBackendOptions returns available storage backends
func (s *Settings) GetStorageBackendOptions() []string {
	return []string{store.BackendSQLite, store.BackendMemory}
}

func isKnownBackend(backend string) bool {
	return backend == store.BackendSQLite || backend == store.BackendMemory
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

// GetLogLevel returns the configured log level; unparsable values reset to info
func (s *Settings) GetLogLevel() zerolog.Level {
	value := s.app.Preferences().StringWithFallback(KeyLogLevel, DefaultLogLevel)
	level, err := zerolog.ParseLevel(value)
	if err != nil || value == "" {
		s.app.Preferences().SetString(KeyLogLevel, DefaultLogLevel)
		return zerolog.InfoLevel
	}
	return level
}

// SetLogLevel sets the log level
func (s *Settings) SetLogLevel(level zerolog.Level) {
	s.app.Preferences().SetString(KeyLogLevel, level.String())
}

// GetLogLevelOptions returns selectable log levels
func (s *Settings) GetLogLevelOptions() []string {
	return []string{
		zerolog.DebugLevel.String(),
		zerolog.InfoLevel.String(),
		zerolog.WarnLevel.String(),
		zerolog.ErrorLevel.String(),
	}
}

// GetCacheTTL returns how long fetched entries stay cached; 0 disables the cache
func (s *Settings) GetCacheTTL() time.Duration {
	seconds := s.app.Preferences().IntWithFallback(KeyCacheTTL, DefaultCacheTTLSeconds)
	if seconds < 0 {
		s.SetCacheTTLSeconds(DefaultCacheTTLSeconds)
		seconds = DefaultCacheTTLSeconds
	}
	return time.Duration(seconds) * time.Second
}

// SetCacheTTLSeconds sets the cache TTL, clamped to [0, MaxCacheTTLSeconds]
func (s *Settings) SetCacheTTLSeconds(seconds int) {
	s.app.Preferences().SetInt(KeyCacheTTL, ClampCacheTTLSeconds(seconds))
}

// ClampCacheTTLSeconds limits seconds to the accepted cache TTL range
func ClampCacheTTLSeconds(seconds int) int {
	return max(0, min(seconds, MaxCacheTTLSeconds))
}
