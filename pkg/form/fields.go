package form

import (
	"strings"

	"github.com/xiaomi388/result-management/pkg/types"
)

// Fields is the raw content of the form. A nil Class means no class has been
// selected yet.
type Fields struct {
	StudentID string         `validate:"required"`
	Name      string         `validate:"required"`
	Class     *types.ClassID `validate:"required,class"`
	RollNo    string         `validate:"required"`
	Section   string         `validate:"required"`
	Grades    string
}

// SelectClass sets the class selection; an empty class clears it.
func (f *Fields) SelectClass(class types.ClassID) {
	if class == "" {
		f.Class = nil
		return
	}
	f.Class = &class
}

func (f *Fields) Reset() {
	*f = Fields{}
}

func (f Fields) trimmed() Fields {
	f.StudentID = strings.TrimSpace(f.StudentID)
	f.Name = strings.TrimSpace(f.Name)
	f.RollNo = strings.TrimSpace(f.RollNo)
	f.Section = strings.TrimSpace(f.Section)
	f.Grades = strings.TrimSpace(f.Grades)
	return f
}
