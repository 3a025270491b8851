package persistence

import (
	"database/sql"
	"fmt"
	"strconv"

	_ "modernc.org/sqlite"

	"github.com/xiaomi388/result-management/pkg/types"
)

const schema = `
CREATE TABLE IF NOT EXISTS classes (
    name     TEXT PRIMARY KEY,
    position INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS students (
    class    TEXT NOT NULL REFERENCES classes(name),
    id       TEXT NOT NULL,
    position INTEGER NOT NULL,
    name     TEXT NOT NULL,
    roll_no  INTEGER NOT NULL,
    section  TEXT NOT NULL,
    PRIMARY KEY (class, id)
);

CREATE TABLE IF NOT EXISTS grades (
    class      TEXT NOT NULL,
    student_id TEXT NOT NULL,
    subject    TEXT NOT NULL,
    position   INTEGER NOT NULL,
    kind       TEXT NOT NULL CHECK(kind IN ('integer', 'decimal', 'text')),
    value      TEXT NOT NULL,
    PRIMARY KEY (class, student_id, subject),
    FOREIGN KEY (class, student_id) REFERENCES students(class, id)
);

CREATE INDEX IF NOT EXISTS idx_students_class ON students(class, position);
CREATE INDEX IF NOT EXISTS idx_grades_student ON grades(class, student_id, position);
`

// SQLiteStore implements Store using a SQLite database. Position columns keep
// the insertion order the JSON file would have.
type SQLiteStore struct {
	db   *sql.DB
	path string
}

func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite db: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set WAL mode: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return &SQLiteStore{db: db, path: path}, nil
}

func (s *SQLiteStore) Path() string {
	return s.path
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) LoadRoster() (*types.Roster, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	classRows, err := tx.Query("SELECT name FROM classes ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("failed to query classes: %w", err)
	}

	var classes []types.ClassID
	for classRows.Next() {
		var name string
		if err := classRows.Scan(&name); err != nil {
			classRows.Close()
			return nil, fmt.Errorf("failed to scan class: %w", err)
		}
		classes = append(classes, types.ClassID(name))
	}
	classRows.Close()
	if err := classRows.Err(); err != nil {
		return nil, fmt.Errorf("class rows error: %w", err)
	}

	roster := types.NewRoster()
	for _, class := range classes {
		if err := s.loadClassRoll(tx, class, roster.EnsureClass(class)); err != nil {
			return nil, fmt.Errorf("failed to load class %s: %w", class, err)
		}
	}

	return roster, nil
}

func (s *SQLiteStore) loadClassRoll(tx *sql.Tx, class types.ClassID, roll *types.ClassRoll) error {
	studentRows, err := tx.Query(
		"SELECT id, name, roll_no, section FROM students WHERE class = ? ORDER BY position",
		string(class),
	)
	if err != nil {
		return fmt.Errorf("failed to query students: %w", err)
	}

	var ids []string
	records := map[string]types.StudentRecord{}
	for studentRows.Next() {
		var id string
		var rec types.StudentRecord
		if err := studentRows.Scan(&id, &rec.Name, &rec.RollNo, &rec.Section); err != nil {
			studentRows.Close()
			return fmt.Errorf("failed to scan student: %w", err)
		}
		ids = append(ids, id)
		records[id] = rec
	}
	studentRows.Close()
	if err := studentRows.Err(); err != nil {
		return fmt.Errorf("student rows error: %w", err)
	}

	for _, id := range ids {
		rec := records[id]
		grades, err := s.loadGrades(tx, class, id)
		if err != nil {
			return fmt.Errorf("failed to load grades of %s: %w", id, err)
		}
		rec.Grades = grades
		roll.CreateOrUpdateStudent(id, rec)
	}

	return nil
}

func (s *SQLiteStore) loadGrades(tx *sql.Tx, class types.ClassID, id string) (types.GradeMap, error) {
	var grades types.GradeMap

	rows, err := tx.Query(
		"SELECT subject, kind, value FROM grades WHERE class = ? AND student_id = ? ORDER BY position",
		string(class), id,
	)
	if err != nil {
		return grades, fmt.Errorf("failed to query grades: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var subject, kind, value string
		if err := rows.Scan(&subject, &kind, &value); err != nil {
			return grades, fmt.Errorf("failed to scan grade: %w", err)
		}
		g, err := gradeFromColumns(kind, value)
		if err != nil {
			return grades, err
		}
		grades.Set(subject, g)
	}

	return grades, rows.Err()
}

func gradeFromColumns(kind, value string) (types.Grade, error) {
	switch kind {
	case types.GradeInteger.String():
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return types.Grade{}, fmt.Errorf("failed to parse integer grade %q: %w", value, err)
		}
		return types.IntegerGrade(n), nil
	case types.GradeDecimal.String():
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return types.Grade{}, fmt.Errorf("failed to parse decimal grade %q: %w", value, err)
		}
		return types.DecimalGrade(f), nil
	default:
		return types.TextGrade(value), nil
	}
}

func (s *SQLiteStore) DumpRoster(roster *types.Roster) error {
	if err := s.dumpRoster(roster); err != nil {
		return &WriteError{Path: s.path, Err: err}
	}
	return nil
}

func (s *SQLiteStore) dumpRoster(roster *types.Roster) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// Clear all data in reverse dependency order
	for _, table := range []string{"grades", "students", "classes"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("failed to clear table %s: %w", table, err)
		}
	}

	for classPos, class := range roster.Classes() {
		if _, err := tx.Exec("INSERT INTO classes (name, position) VALUES (?, ?)", string(class), classPos); err != nil {
			return fmt.Errorf("failed to insert class %s: %w", class, err)
		}

		roll, _ := roster.Class(class)
		for studentPos, id := range roll.IDs() {
			rec, _ := roll.Student(id)
			if _, err := tx.Exec(
				"INSERT INTO students (class, id, position, name, roll_no, section) VALUES (?, ?, ?, ?, ?, ?)",
				string(class), id, studentPos, rec.Name, rec.RollNo, rec.Section,
			); err != nil {
				return fmt.Errorf("failed to insert student %s: %w", id, err)
			}

			for gradePos, subject := range rec.Grades.Subjects() {
				g, _ := rec.Grades.Get(subject)
				if _, err := tx.Exec(
					"INSERT INTO grades (class, student_id, subject, position, kind, value) VALUES (?, ?, ?, ?, ?, ?)",
					string(class), id, subject, gradePos, g.Kind().String(), g.String(),
				); err != nil {
					return fmt.Errorf("failed to insert grade %s: %w", subject, err)
				}
			}
		}
	}

	return tx.Commit()
}
