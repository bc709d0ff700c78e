package config

import (
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Store holds the active Config and swaps it on reload.
type Store struct {
	mu        sync.RWMutex
	cfg       *Config
	callbacks []func(*Config)
	logger    *zap.Logger
}

// NewStore wraps an initial, already validated Config.
func NewStore(initial *Config, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{cfg: initial, logger: logger}
}

// Get returns a copy of the active Config.
func (s *Store) Get() Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return *s.cfg
}

// OnChange registers fn to run after every successful reload.
func (s *Store) OnChange(fn func(*Config)) {
	s.mu.Lock()
	s.callbacks = append(s.callbacks, fn)
	s.mu.Unlock()
}

// Watch reloads from v whenever its configuration file changes.
// It is a no-op when v has no file.
func (s *Store) Watch(v *viper.Viper) {
	if v.ConfigFileUsed() == "" {
		s.logger.Debug("configuration hot reload disabled: no file")
		return
	}
	v.OnConfigChange(func(e fsnotify.Event) {
		s.logger.Info("configuration file changed",
			zap.String("file", e.Name),
			zap.String("operation", e.Op.String()),
		)
		s.Reload(v)
	})
	v.WatchConfig()
	s.logger.Info("configuration hot reload enabled", zap.String("file", v.ConfigFileUsed()))
}

// Reload decodes v and installs the result if it validates. It reports
// whether the active Config was replaced.
func (s *Store) Reload(v *viper.Viper) bool {
	next, err := FromViper(v)
	if err != nil {
		s.logger.Error("invalid configuration after reload, keeping previous", zap.Error(err))
		return false
	}

	s.mu.Lock()
	s.cfg = next
	callbacks := append([]func(*Config){}, s.callbacks...)
	s.mu.Unlock()

	for _, fn := range callbacks {
		fn(next)
	}
	s.logger.Info("configuration reloaded", zap.Int("callbacks_notified", len(callbacks)))

	return true
}
