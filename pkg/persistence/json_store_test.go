package persistence

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/xiaomi388/result-management/pkg/config"
	"github.com/xiaomi388/result-management/pkg/types"
)

func TestJSONStoreMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "students.json")
	store := NewJSONStore(path)

	roster, err := store.LoadRoster()
	if err != nil {
		t.Fatalf("LoadRoster: %v", err)
	}
	if len(roster.Classes()) != 0 {
		t.Fatalf("expected empty roster, got %v", roster.Classes())
	}

	roster.Upsert("11", "s1", types.StudentRecord{Name: "Ana", RollNo: 4, Section: "A"})
	if err := store.DumpRoster(roster); err != nil {
		t.Fatalf("DumpRoster: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	expected := `{
  "11": {
    "s1": {
      "name": "Ana",
      "roll_no": 4,
      "section": "A",
      "grades": {}
    }
  }
}
`
	if string(data) != expected {
		t.Errorf("unexpected file content.\nExpected: %s\nActual:   %s", expected, data)
	}
}

func TestJSONStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "students.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	roster, err := NewJSONStore(path).LoadRoster()
	if err != nil {
		t.Fatalf("LoadRoster: %v", err)
	}
	if len(roster.Classes()) != 0 {
		t.Errorf("expected empty roster for a corrupt file, got %v", roster.Classes())
	}
}

func TestJSONStoreSaveIsStable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "students.json")
	store := NewJSONStore(path)

	roster := newTestRoster()
	roster.Upsert("11", "s-03", types.StudentRecord{Name: "Ñandú <&>", RollNo: 5, Section: "A"})
	if err := store.DumpRoster(roster); err != nil {
		t.Fatalf("DumpRoster: %v", err)
	}
	first, _ := os.ReadFile(path)

	for i := 0; i < 2; i++ {
		loaded, _ := store.LoadRoster()
		if err := store.DumpRoster(loaded); err != nil {
			t.Fatalf("DumpRoster: %v", err)
		}
		again, _ := os.ReadFile(path)
		if string(first) != string(again) {
			t.Fatalf("save %d changed the file.\nFirst: %s\nAgain: %s", i+2, first, again)
		}
	}
}

func TestJSONStoreWriteError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "students.json")

	err := NewJSONStore(path).DumpRoster(types.NewRoster())
	var werr *WriteError
	if !errors.As(err, &werr) {
		t.Fatalf("expected *WriteError, got %v", err)
	}
	if werr.Path != path {
		t.Errorf("expected path %s, got %s", path, werr.Path)
	}
}

func TestNewStoreUnknownBackend(t *testing.T) {
	if _, err := NewStoreWithBackend("csv", ""); err == nil {
		t.Error("expected error for unknown backend")
	}
}

func TestResolvePath(t *testing.T) {
	tests := []struct {
		backend, path, want string
	}{
		{"", "", DefaultRosterPath},
		{"json", "", DefaultRosterPath},
		{"sqlite", "", DefaultSQLitePath},
		{"sqlite", "x.db", "x.db"},
	}
	for _, tt := range tests {
		got, err := ResolvePath(tt.backend, tt.path)
		if err != nil {
			t.Fatalf("ResolvePath(%q, %q): %v", tt.backend, tt.path, err)
		}
		if got != tt.want {
			t.Errorf("ResolvePath(%q, %q) = %q, want %q", tt.backend, tt.path, got, tt.want)
		}
	}

	if _, err := ResolvePath("csv", ""); err == nil {
		t.Error("expected error for unknown backend")
	}

	store, err := NewStore(config.StorageConfig{Backend: "json"})
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	if store.Path() != DefaultRosterPath {
		t.Errorf("expected %s, got %s", DefaultRosterPath, store.Path())
	}
}

func TestJSONStoreMistypedFieldLoadsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "students.json")
	data := `{"11": {"s1": {"name": "Ana", "roll_no": "5", "section": "A", "grades": {}}}}`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	roster, err := NewJSONStore(path).LoadRoster()
	if err != nil {
		t.Fatalf("LoadRoster: %v", err)
	}
	if roster.Students() != 0 {
		t.Errorf("expected empty roster, got %d students", roster.Students())
	}
}
