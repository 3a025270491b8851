package form

import (
	"errors"
	"fmt"
	"iter"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"github.com/xiaomi388/result-management/pkg/report"
	"github.com/xiaomi388/result-management/pkg/roster"
	"github.com/xiaomi388/result-management/pkg/types"
)

// Confirmer answers a yes/no question before a destructive action.
type Confirmer interface {
	Confirm(title, prompt string) bool
}

type ConfirmFunc func(title, prompt string) bool

func (f ConfirmFunc) Confirm(title, prompt string) bool {
	return f(title, prompt)
}

// Controller turns form submissions into roster changes.
type Controller struct {
	store    *roster.Store
	classes  []types.ClassID
	validate *validator.Validate
}

func NewController(store *roster.Store, classes []types.ClassID) *Controller {
	c := &Controller{
		store:    store,
		classes:  classes,
		validate: validator.New(),
	}

	_ = c.validate.RegisterValidation("class", func(fl validator.FieldLevel) bool {
		return c.validClass(types.ClassID(fl.Field().String()))
	})

	return c
}

// Classes lists the classes a student can be filed under.
func (c *Controller) Classes() []types.ClassID {
	return c.classes
}

func (c *Controller) Store() *roster.Store {
	return c.store
}

func (c *Controller) validClass(class types.ClassID) bool {
	for _, valid := range c.classes {
		if valid == class {
			return true
		}
	}
	return false
}

func failedFields(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
	}
	return fields
}

// ValidateRequired checks that ID, name, roll number and section are filled,
// that a valid class is selected and that the roll number is an integer.
func (c *Controller) ValidateRequired(f Fields) (types.ClassID, int, error) {
	f = f.trimmed()

	if err := c.validate.Struct(f); err != nil {
		return "", 0, &ValidationError{Message: msgRequiredFields, Fields: failedFields(err)}
	}

	rollNo, err := strconv.Atoi(f.RollNo)
	if err != nil {
		return "", 0, &ValidationError{Message: msgRollNotInteger, Fields: []string{"RollNo"}}
	}

	return *f.Class, rollNo, nil
}

// Apply validates f and upserts the student without saving.
func (c *Controller) Apply(f Fields) (types.ClassID, string, error) {
	class, rollNo, err := c.ValidateRequired(f)
	if err != nil {
		return "", "", err
	}

	in := f.trimmed()
	grades, skipped := roster.ParseGrades(in.Grades)
	if skipped > 0 {
		logrus.WithFields(logrus.Fields{"id": in.StudentID, "skipped": skipped}).
			Warn("ignored grade entries without a subject separator")
	}

	c.store.Upsert(class, in.StudentID, types.StudentRecord{
		Name:    in.Name,
		RollNo:  rollNo,
		Section: in.Section,
		Grades:  grades,
	})
	return class, in.StudentID, nil
}

// SubmitAddOrUpdate stores the student and saves the roster. The fields are
// reset once the student has been saved.
func (c *Controller) SubmitAddOrUpdate(f *Fields) (Notice, error) {
	class, id, err := c.Apply(*f)
	if err != nil {
		return errorNotice(err), err
	}

	if err := c.store.Save(); err != nil {
		return errorNotice(err), err
	}

	logrus.WithFields(logrus.Fields{"class": class, "id": id}).Info("student saved")
	f.Reset()
	return Notice{
		Kind:    NoticeSuccess,
		Title:   "Success",
		Message: fmt.Sprintf("Student %s added/updated successfully.", id),
	}, nil
}

// PendingDelete is a delete that waits for the user's confirmation.
type PendingDelete struct {
	c      *Controller
	fields *Fields
	Class  types.ClassID
	ID     string
}

func (p *PendingDelete) Title() string {
	return "Confirm Delete"
}

func (p *PendingDelete) Prompt() string {
	return fmt.Sprintf("Are you sure you want to delete student %s from class %s?", p.ID, p.Class)
}

// Confirm removes the student and saves the roster.
func (p *PendingDelete) Confirm() (Notice, error) {
	if err := p.c.store.Delete(p.Class, p.ID); err != nil {
		if errors.Is(err, roster.ErrNotFound) {
			return Notice{Kind: NoticeInfo, Title: "Not found", Message: msgNotFound}, nil
		}
		return errorNotice(err), err
	}

	if err := p.c.store.Save(); err != nil {
		return errorNotice(err), err
	}

	logrus.WithFields(logrus.Fields{"class": p.Class, "id": p.ID}).Info("student deleted")
	p.fields.Reset()
	return Notice{
		Kind:    NoticeSuccess,
		Title:   "Deleted",
		Message: fmt.Sprintf("Student %s deleted from class %s.", p.ID, p.Class),
	}, nil
}

// BeginDelete validates the ID and class and looks the student up. A missing
// student yields an informational notice and no pending delete.
func (c *Controller) BeginDelete(f *Fields) (*PendingDelete, Notice, error) {
	in := f.trimmed()
	if err := c.validate.StructPartial(in, "StudentID", "Class"); err != nil {
		verr := &ValidationError{Message: msgDeleteFields, Fields: failedFields(err)}
		return nil, errorNotice(verr), verr
	}

	if _, ok := c.store.Lookup(*in.Class, in.StudentID); !ok {
		return nil, Notice{Kind: NoticeInfo, Title: "Not found", Message: msgNotFound}, nil
	}

	return &PendingDelete{c: c, fields: f, Class: *in.Class, ID: in.StudentID}, Notice{}, nil
}

// SubmitDelete asks confirm before deleting. Declining leaves everything
// untouched and returns an empty notice.
func (c *Controller) SubmitDelete(f *Fields, confirm Confirmer) (Notice, error) {
	pending, notice, err := c.BeginDelete(f)
	if pending == nil {
		return notice, err
	}

	if !confirm.Confirm(pending.Title(), pending.Prompt()) {
		logrus.WithFields(logrus.Fields{"class": pending.Class, "id": pending.ID}).Debug("delete cancelled")
		return Notice{}, nil
	}

	return pending.Confirm()
}

// ListAll renders the roster one class block at a time.
func (c *Controller) ListAll() iter.Seq[string] {
	return report.Blocks(c.store.Roster())
}
