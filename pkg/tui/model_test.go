package tui

import (
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xiaomi388/result-management/pkg/form"
	"github.com/xiaomi388/result-management/pkg/persistence"
	"github.com/xiaomi388/result-management/pkg/roster"
	"github.com/xiaomi388/result-management/pkg/types"
)

func newTestModel(t *testing.T) (Model, *roster.Store) {
	t.Helper()
	store := roster.Open(persistence.NewJSONStore(filepath.Join(t.TempDir(), "students.json")))
	return New(form.NewController(store, []types.ClassID{"11", "12"})), store
}

func press(t *testing.T, m Model, msgs ...tea.KeyMsg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m
}

func typeText(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	tab   = tea.KeyMsg{Type: tea.KeyTab}
	right = tea.KeyMsg{Type: tea.KeyRight}
	left  = tea.KeyMsg{Type: tea.KeyLeft}
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
	save  = tea.KeyMsg{Type: tea.KeyCtrlS}
	del   = tea.KeyMsg{Type: tea.KeyCtrlD}
	view  = tea.KeyMsg{Type: tea.KeyCtrlR}
	paste = tea.KeyMsg{Type: tea.KeyCtrlV}
)

// fillForm types a full student starting from the Student ID field.
func fillForm(t *testing.T, m Model, id string) Model {
	t.Helper()
	return press(t, m,
		typeText(id), tab,
		typeText("Ravi"), tab,
		right, tab, // class 11
		typeText("7"), tab,
		typeText("C"), tab,
		typeText("Math:88, Art:B"),
	)
}

func TestClassSelectorCycles(t *testing.T) {
	m, _ := newTestModel(t)
	m = press(t, m, tab, tab)
	assert.Equal(t, fieldClass, m.focus)
	assert.Nil(t, m.collect().Class)
	assert.Contains(t, m.View(), classPlaceholder)

	m = press(t, m, right, right)
	require.NotNil(t, m.collect().Class)
	assert.Equal(t, types.ClassID("12"), *m.collect().Class)

	m = press(t, m, right)
	assert.Nil(t, m.collect().Class, "wraps back to the placeholder")

	m = press(t, m, left)
	assert.Equal(t, types.ClassID("12"), *m.collect().Class)
}

func TestAddStudentFromForm(t *testing.T) {
	m, store := newTestModel(t)
	m = fillForm(t, m, "S7")
	m = press(t, m, save)

	assert.Equal(t, modeNotice, m.mode)
	assert.Equal(t, form.NoticeSuccess, m.notice.Kind)
	assert.Contains(t, m.View(), "Student S7 added/updated successfully.")

	rec, ok := store.Lookup("11", "S7")
	require.True(t, ok)
	assert.Equal(t, "Ravi", rec.Name)
	assert.Equal(t, 7, rec.RollNo)
	assert.Equal(t, "Math:88, Art:B", rec.Grades.String())

	m = press(t, m, enter)
	assert.Equal(t, modeForm, m.mode)
	assert.Equal(t, form.Fields{}, m.collect(), "form is cleared after success")
}

func TestAddWithoutClassShowsError(t *testing.T) {
	m, store := newTestModel(t)
	m = press(t, m, typeText("S1"), tab, typeText("Ravi"), save)

	assert.Equal(t, modeNotice, m.mode)
	assert.Equal(t, form.NoticeError, m.notice.Kind)
	assert.Empty(t, store.Roster().Classes())

	m = press(t, m, esc)
	assert.Equal(t, "S1", m.collect().StudentID, "input is kept after a failed submit")
}

func TestDeleteAsksForConfirmation(t *testing.T) {
	m, store := newTestModel(t)
	m = press(t, fillForm(t, m, "S9"), save, enter)

	// Focus wraps from Grades back to Student ID.
	m = press(t, m, tab, typeText("S9"), tab, tab, right, del)
	require.Equal(t, modeConfirm, m.mode)
	assert.Contains(t, m.View(), "Are you sure you want to delete student S9 from class 11?")

	m = press(t, m, typeText("n"))
	assert.Equal(t, modeForm, m.mode)
	_, ok := store.Lookup("11", "S9")
	assert.True(t, ok)

	m = press(t, m, del, typeText("y"))
	assert.Equal(t, modeNotice, m.mode)
	assert.Equal(t, "Student S9 deleted from class 11.", m.notice.Message)
	assert.Empty(t, store.Roster().Classes())
	assert.Equal(t, form.Fields{}, m.collect())
}

func TestDeleteMissingStudentIsInformational(t *testing.T) {
	m, _ := newTestModel(t)
	m = press(t, m, typeText("ghost"), tab, tab, right, del)

	assert.Equal(t, modeNotice, m.mode)
	assert.Equal(t, form.NoticeInfo, m.notice.Kind)
	assert.Equal(t, "Not found", m.notice.Title)
}

func TestViewAllOpensReport(t *testing.T) {
	m, _ := newTestModel(t)
	m = press(t, fillForm(t, m, "S3"), save, enter)

	m = press(t, m, view)
	require.Equal(t, modeReport, m.mode)
	out := m.View()
	assert.Contains(t, out, "All Students")
	assert.Contains(t, out, "Class 11:")
	assert.True(t, strings.Contains(out, "ID: S3, Name: Ravi, Roll: 7, Section: C"))

	m = press(t, m, esc)
	assert.Equal(t, modeForm, m.mode)
}

func TestLongGradesAreNotTruncated(t *testing.T) {
	m, store := newTestModel(t)

	var pairs []string
	for i := 0; i < 20; i++ {
		pairs = append(pairs, fmt.Sprintf("Subject%02d:95.5", i))
	}
	grades := strings.Join(pairs, ", ")
	require.Greater(t, len(grades), 256)

	m = press(t, m,
		typeText("S5"), tab,
		typeText("Ravi"), tab,
		right, tab,
		typeText("7"), tab,
		typeText("C"), tab,
		typeText(grades),
		save,
	)
	require.Equal(t, form.NoticeSuccess, m.notice.Kind)

	rec, ok := store.Lookup("11", "S5")
	require.True(t, ok)
	assert.Equal(t, 20, rec.Grades.Len())
	last, ok := rec.Grades.Get("Subject19")
	require.True(t, ok)
	assert.Equal(t, types.DecimalGrade(95.5), last)
	assert.Equal(t, grades, rec.Grades.String())
}

func TestPasteKeyStaysWithTheInput(t *testing.T) {
	m, _ := newTestModel(t)
	m = press(t, m, paste)
	assert.Equal(t, modeForm, m.mode)
	assert.NotContains(t, m.View(), "All Students")
}

func TestCtrlCQuits(t *testing.T) {
	m, _ := newTestModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
