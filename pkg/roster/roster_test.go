package roster

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xiaomi388/result-management/pkg/persistence"
	"github.com/xiaomi388/result-management/pkg/types"
)

type failingBackend struct {
	saves int
}

func (f *failingBackend) LoadRoster() (*types.Roster, error) {
	return nil, errors.New("disk on fire")
}

func (f *failingBackend) DumpRoster(*types.Roster) error {
	f.saves++
	return &persistence.WriteError{Path: "nowhere", Err: errors.New("read-only")}
}

func (f *failingBackend) Close() error { return nil }

func (f *failingBackend) Path() string { return "nowhere" }

func TestParseGrades(t *testing.T) {
	grades, skipped := ParseGrades("")
	assert.Equal(t, 0, grades.Len())
	assert.Equal(t, 0, skipped)

	grades, skipped = ParseGrades("Math:90, Sci:A+, Bad")
	assert.Equal(t, 1, skipped)
	assert.Equal(t, []string{"Math", "Sci"}, grades.Subjects())
	math, _ := grades.Get("Math")
	assert.Equal(t, types.IntegerGrade(90), math)
	sci, _ := grades.Get("Sci")
	assert.Equal(t, types.TextGrade("A+"), sci)

	grades, _ = ParseGrades("Eng:8.5")
	eng, _ := grades.Get("Eng")
	assert.Equal(t, types.DecimalGrade(8.5), eng)
}

func TestParseGradesEdgeCases(t *testing.T) {
	grades, skipped := ParseGrades(" , Math : 70 ,,Hist:B:C, Math:95 ")
	assert.Equal(t, 0, skipped)
	assert.Equal(t, []string{"Math", "Hist"}, grades.Subjects())

	math, _ := grades.Get("Math")
	assert.Equal(t, types.IntegerGrade(95), math)
	hist, _ := grades.Get("Hist")
	assert.Equal(t, types.TextGrade("B:C"), hist)
}

func TestStoreDelete(t *testing.T) {
	s := Open(persistence.NewJSONStore(filepath.Join(t.TempDir(), "students.json")))
	s.Upsert("11", "a", types.StudentRecord{Name: "A", RollNo: 1, Section: "X"})

	err := s.Delete("11", "b")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 1, s.Roster().Students())

	require.NoError(t, s.Delete("11", "a"))
	assert.Empty(t, s.Roster().Classes())
}

func TestStoreSaveCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "students.json")
	s := Open(persistence.NewJSONStore(path))
	s.Upsert("12", "z", types.StudentRecord{Name: "Zoe", RollNo: 2, Section: "C"})
	require.NoError(t, s.Save())

	reopened := Open(persistence.NewJSONStore(path))
	rec, ok := reopened.Lookup("12", "z")
	require.True(t, ok)
	assert.Equal(t, "Zoe", rec.Name)
	assert.Equal(t, 1, reopened.Roster().Students())
}

func TestStoreSaveFailureKeepsMemory(t *testing.T) {
	backend := &failingBackend{}
	s := Open(backend)
	assert.Empty(t, s.Roster().Classes())

	s.Upsert("11", "a", types.StudentRecord{Name: "A"})
	err := s.Save()

	var werr *persistence.WriteError
	assert.ErrorAs(t, err, &werr)
	assert.Equal(t, 1, backend.saves)
	_, ok := s.Lookup("11", "a")
	assert.True(t, ok)
}
