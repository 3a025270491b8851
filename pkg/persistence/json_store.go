package persistence

import "github.com/xiaomi388/result-management/pkg/types"

// JSONStore implements Store using a single JSON file.
type JSONStore struct {
	path string
}

func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

func (s *JSONStore) Path() string {
	return s.path
}

func (s *JSONStore) LoadRoster() (*types.Roster, error) {
	return LoadRoster(s.path), nil
}

func (s *JSONStore) DumpRoster(roster *types.Roster) error {
	return DumpRoster(s.path, roster)
}

func (s *JSONStore) Close() error {
	return nil
}
