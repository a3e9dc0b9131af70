package store

// Read-through query cache. Keys combine the table version with a
// caller-chosen query string, so entries from before a table
// replacement can never be served afterwards: replacing any master
// table bumps the version and drops the map.

type cacheKey struct {
	version uint64
	query   string
}

// GetCached returns the cached value for a query at the current table
// version.
func (s *Store) GetCached(query string) (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.cache[cacheKey{s.version, query}]
	return v, ok
}

// PutCached stores a query result under the current table version.
func (s *Store) PutCached(query string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache[cacheKey{s.version, query}] = value
}

// Version returns the current table version. It changes on every
// master-table replacement.
func (s *Store) Version() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.version
}

// invalidate bumps the version and frees all cached entries.
func (s *Store) invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.version++
	s.cache = map[cacheKey]any{}
}
