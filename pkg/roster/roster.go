package roster

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/xiaomi388/result-management/pkg/persistence"
	"github.com/xiaomi388/result-management/pkg/types"
)

var ErrNotFound = errors.New("student not found")

// Store owns the in-memory roster and writes it back through a persistence
// backend after every mutation. It is not safe for concurrent use.
type Store struct {
	backend persistence.Store
	roster  *types.Roster
}

// Open loads the roster once. A backend that fails to load leaves the store
// with an empty roster rather than an error.
func Open(backend persistence.Store) *Store {
	roster, err := backend.LoadRoster()
	if err != nil {
		logrus.WithError(err).WithField("path", backend.Path()).Warn("failed to load roster, starting fresh")
		roster = types.NewRoster()
	}

	logrus.WithFields(logrus.Fields{
		"path":     backend.Path(),
		"classes":  len(roster.Classes()),
		"students": roster.Students(),
	}).Debug("roster loaded")

	return &Store{backend: backend, roster: roster}
}

func (s *Store) Roster() *types.Roster {
	return s.roster
}

func (s *Store) Lookup(class types.ClassID, id string) (types.StudentRecord, bool) {
	return s.roster.Lookup(class, id)
}

func (s *Store) Upsert(class types.ClassID, id string, rec types.StudentRecord) {
	s.roster.Upsert(class, id, rec)
	logrus.WithFields(logrus.Fields{"class": class, "id": id}).Debug("student upserted")
}

func (s *Store) Delete(class types.ClassID, id string) error {
	if !s.roster.Delete(class, id) {
		return fmt.Errorf("class %s, id %s: %w", class, id, ErrNotFound)
	}
	logrus.WithFields(logrus.Fields{"class": class, "id": id}).Debug("student deleted")
	return nil
}

// Save rewrites the whole backing file. On failure the in-memory roster keeps
// the change and the returned error is a *persistence.WriteError.
func (s *Store) Save() error {
	if err := s.backend.DumpRoster(s.roster); err != nil {
		logrus.WithError(err).Error("failed to save roster")
		return err
	}
	return nil
}

func (s *Store) Close() error {
	return s.backend.Close()
}
