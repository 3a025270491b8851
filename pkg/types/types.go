package types

import (
	"encoding/json"
	"sort"
	"strconv"
)

// ClassID identifies a class, e.g. "11" or "12".
type ClassID string

type StudentRecord struct {
	Name    string   `json:"name"`
	RollNo  int      `json:"roll_no"`
	Section string   `json:"section"`
	Grades  GradeMap `json:"grades"`
}

// ClassRoll holds the students of one class keyed by student ID, in the
// order they were first added.
type ClassRoll struct {
	students orderedMap[StudentRecord]
}

func NewClassRoll() *ClassRoll {
	return &ClassRoll{}
}

func (cr *ClassRoll) Student(id string) (StudentRecord, bool) {
	return cr.students.get(id)
}

func (cr *ClassRoll) CreateOrUpdateStudent(id string, rec StudentRecord) {
	cr.students.set(id, rec)
}

func (cr *ClassRoll) DeleteStudent(id string) bool {
	return cr.students.remove(id)
}

func (cr *ClassRoll) IDs() []string {
	return cr.students.keyList()
}

func (cr *ClassRoll) Len() int {
	return cr.students.len()
}

func (cr *ClassRoll) MarshalJSON() ([]byte, error) {
	return cr.students.marshal()
}

func (cr *ClassRoll) UnmarshalJSON(data []byte) error {
	*cr = ClassRoll{}
	return decodeObject(data, func(id string, dec *json.Decoder) error {
		var rec StudentRecord
		if err := dec.Decode(&rec); err != nil {
			return err
		}
		cr.CreateOrUpdateStudent(id, rec)
		return nil
	})
}

// Roster is every class roll, keyed by class in insertion order.
type Roster struct {
	classes orderedMap[*ClassRoll]
}

func NewRoster() *Roster {
	return &Roster{}
}

func (r *Roster) Class(class ClassID) (*ClassRoll, bool) {
	return r.classes.get(string(class))
}

// EnsureClass returns the roll for class, creating an empty one if needed.
func (r *Roster) EnsureClass(class ClassID) *ClassRoll {
	if cr, ok := r.Class(class); ok {
		return cr
	}
	cr := NewClassRoll()
	r.classes.set(string(class), cr)
	return cr
}

func (r *Roster) Lookup(class ClassID, id string) (StudentRecord, bool) {
	cr, ok := r.Class(class)
	if !ok {
		return StudentRecord{}, false
	}
	return cr.Student(id)
}

func (r *Roster) Upsert(class ClassID, id string, rec StudentRecord) {
	r.EnsureClass(class).CreateOrUpdateStudent(id, rec)
}

// Delete removes a student and drops the class once its roll is empty.
// It reports whether the student existed.
func (r *Roster) Delete(class ClassID, id string) bool {
	cr, ok := r.Class(class)
	if !ok || !cr.DeleteStudent(id) {
		return false
	}
	if cr.Len() == 0 {
		r.classes.remove(string(class))
	}
	return true
}

// Classes returns class IDs in insertion order.
func (r *Roster) Classes() []ClassID {
	keys := r.classes.keyList()
	out := make([]ClassID, len(keys))
	for i, k := range keys {
		out[i] = ClassID(k)
	}
	return out
}

// SortedClasses orders classes numerically when every ID is made of digits,
// lexicographically otherwise.
func (r *Roster) SortedClasses() []ClassID {
	classes := r.Classes()
	numeric := true
	for _, c := range classes {
		if !isDigits(string(c)) {
			numeric = false
			break
		}
	}

	sort.SliceStable(classes, func(i, j int) bool {
		if numeric {
			a, _ := strconv.ParseUint(string(classes[i]), 10, 64)
			b, _ := strconv.ParseUint(string(classes[j]), 10, 64)
			if a != b {
				return a < b
			}
		}
		return classes[i] < classes[j]
	})
	return classes
}

// Students counts records across all classes.
func (r *Roster) Students() int {
	n := 0
	for _, cr := range r.classes.values {
		n += cr.Len()
	}
	return n
}

func (r *Roster) MarshalJSON() ([]byte, error) {
	return r.classes.marshal()
}

func (r *Roster) UnmarshalJSON(data []byte) error {
	*r = Roster{}
	return decodeObject(data, func(class string, dec *json.Decoder) error {
		cr := NewClassRoll()
		if err := dec.Decode(cr); err != nil {
			return err
		}
		r.classes.set(class, cr)
		return nil
	})
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
