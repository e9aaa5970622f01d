package wizard

import "sync"

// Store is the single owner of the wizard Config for an installer session.
// Every method is safe for concurrent use and each mutation is applied as a
// whole, so readers never observe a half-reset record.
type Store struct {
	mu       sync.RWMutex
	cfg      Config
	defaults Config
}

// NewStore creates a store holding defaults.
func NewStore(defaults Config) *Store {
	return &Store{cfg: defaults, defaults: defaults}
}

// Snapshot returns a copy of the current Config.
func (s *Store) Snapshot() Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg
}

// Update applies fn to the Config under the write lock.
func (s *Store) Update(fn func(*Config)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.cfg)
}

// Reset restores every field to its default.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg = s.defaults
}

// ResetPreserving restores every field to its default except the listed
// fields, which keep the value they had before the reset.
func (s *Store) ResetPreserving(fields ...Field) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.cfg
	s.cfg = s.defaults
	for _, f := range fields {
		copyField(&s.cfg, &prev, f)
	}
}

// Defaults returns the values Reset restores.
func (s *Store) Defaults() Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.defaults
}

// SetDefaults replaces the values Reset restores. The current Config is
// left alone.
func (s *Store) SetDefaults(defaults Config) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.defaults = defaults
}

// ArchivePath returns the archive-path field.
func (s *Store) ArchivePath() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg.ArchivePath
}

// SetArchivePath overwrites the archive-path field.
func (s *Store) SetArchivePath(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg.ArchivePath = path
}
