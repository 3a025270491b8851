// Package tui is the interactive admin form: six inputs, three actions and
// modal notices, drawn with bubbletea.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"
	"github.com/xiaomi388/result-management/pkg/form"
)

const (
	fieldID = iota
	fieldName
	fieldClass
	fieldRoll
	fieldSection
	fieldGrades
	fieldCount
)

const classPlaceholder = "Select Class"

var labels = [fieldCount]string{
	"Student ID",
	"Name",
	"Class",
	"Roll No",
	"Section",
	"Grades (Subject:Grade, ...)",
}

type mode int

const (
	modeForm mode = iota
	modeNotice
	modeConfirm
	modeReport
)

// Model is the admin form. Every action runs synchronously inside Update.
type Model struct {
	ctrl *form.Controller

	// inputs[fieldClass] is unused; the class is a selector.
	inputs   [fieldCount]textinput.Model
	classIdx int // 0 is the placeholder
	focus    int

	mode          mode
	notice        form.Notice
	pending       *form.PendingDelete
	pendingFields *form.Fields
	report        viewport.Model

	width  int
	height int
	styles Styles
}

func New(ctrl *form.Controller) Model {
	m := Model{
		ctrl:   ctrl,
		report: viewport.New(80, 20),
		styles: DefaultStyles(),
	}

	for i := range m.inputs {
		if i == fieldClass {
			continue
		}
		ti := textinput.New()
		ti.Prompt = " "
		ti.CharLimit = 0
		ti.Width = 54
		m.inputs[i] = ti
	}
	m.inputs[fieldGrades].Placeholder = "Math:90, Sci:A+"
	m.inputs[fieldID].Focus()

	return m
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.report.Width = max(msg.Width-4, 20)
		m.report.Height = max(msg.Height-6, 5)
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		switch m.mode {
		case modeNotice:
			return m.updateNotice(msg)
		case modeConfirm:
			return m.updateConfirm(msg)
		case modeReport:
			return m.updateReport(msg)
		}
		return m.updateForm(msg)
	}

	// Cursor blink and friends.
	if m.mode == modeForm && m.focus != fieldClass {
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+q":
		return m, tea.Quit
	case "tab", "down":
		return m, m.setFocus((m.focus + 1) % fieldCount)
	case "shift+tab", "up":
		return m, m.setFocus((m.focus + fieldCount - 1) % fieldCount)
	case "ctrl+s":
		return m.submitAddOrUpdate(), nil
	case "ctrl+d":
		return m.submitDelete(), nil
	case "ctrl+r":
		return m.openReport(), nil
	}

	if m.focus == fieldClass {
		options := len(m.ctrl.Classes()) + 1
		switch msg.String() {
		case "left", "h":
			m.classIdx = (m.classIdx + options - 1) % options
		case "right", "l", " ":
			m.classIdx = (m.classIdx + 1) % options
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m Model) updateNotice(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc", " ":
		m.notice = form.Notice{}
		m.mode = modeForm
	}
	return m, nil
}

func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		notice, err := m.pending.Confirm()
		if err != nil {
			logrus.WithError(err).Debug("delete failed")
		}
		m.apply(*m.pendingFields)
		m.pending, m.pendingFields = nil, nil
		return m.showNotice(notice), nil
	case "n", "N", "esc":
		m.pending, m.pendingFields = nil, nil
		m.mode = modeForm
	}
	return m, nil
}

func (m Model) updateReport(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		m.mode = modeForm
		return m, nil
	}

	var cmd tea.Cmd
	m.report, cmd = m.report.Update(msg)
	return m, cmd
}

func (m *Model) setFocus(i int) tea.Cmd {
	for j := range m.inputs {
		if j != fieldClass {
			m.inputs[j].Blur()
		}
	}
	m.focus = i
	if i == fieldClass {
		return nil
	}
	return m.inputs[i].Focus()
}

// collect reads the widgets into form fields.
func (m Model) collect() form.Fields {
	f := form.Fields{
		StudentID: m.inputs[fieldID].Value(),
		Name:      m.inputs[fieldName].Value(),
		RollNo:    m.inputs[fieldRoll].Value(),
		Section:   m.inputs[fieldSection].Value(),
		Grades:    m.inputs[fieldGrades].Value(),
	}
	if m.classIdx > 0 {
		f.SelectClass(m.ctrl.Classes()[m.classIdx-1])
	}
	return f
}

// apply writes form fields back into the widgets.
func (m *Model) apply(f form.Fields) {
	m.inputs[fieldID].SetValue(f.StudentID)
	m.inputs[fieldName].SetValue(f.Name)
	m.inputs[fieldRoll].SetValue(f.RollNo)
	m.inputs[fieldSection].SetValue(f.Section)
	m.inputs[fieldGrades].SetValue(f.Grades)

	m.classIdx = 0
	if f.Class != nil {
		for i, c := range m.ctrl.Classes() {
			if c == *f.Class {
				m.classIdx = i + 1
				break
			}
		}
	}
}

func (m Model) showNotice(n form.Notice) Model {
	if n.Empty() {
		m.mode = modeForm
		return m
	}
	m.notice = n
	m.mode = modeNotice
	return m
}

func (m Model) submitAddOrUpdate() Model {
	f := m.collect()
	notice, err := m.ctrl.SubmitAddOrUpdate(&f)
	if err != nil {
		logrus.WithError(err).Debug("add/update rejected")
	}
	m.apply(f)
	return m.showNotice(notice)
}

func (m Model) submitDelete() Model {
	f := m.collect()
	pending, notice, err := m.ctrl.BeginDelete(&f)
	if err != nil {
		logrus.WithError(err).Debug("delete rejected")
	}
	if pending == nil {
		return m.showNotice(notice)
	}

	m.pending = pending
	m.pendingFields = &f
	m.mode = modeConfirm
	return m
}

func (m Model) openReport() Model {
	var sb strings.Builder
	for block := range m.ctrl.ListAll() {
		sb.WriteString(block)
	}
	m.report.SetContent(sb.String())
	m.report.GotoTop()
	m.mode = modeReport
	return m
}

func (m Model) classLabel() string {
	if m.classIdx == 0 {
		return classPlaceholder
	}
	return string(m.ctrl.Classes()[m.classIdx-1])
}

func (m Model) View() string {
	switch m.mode {
	case modeReport:
		return m.viewReport()
	case modeNotice:
		return m.center(m.viewNotice())
	case modeConfirm:
		return m.center(m.viewConfirm())
	}
	return m.viewForm()
}

func (m Model) viewForm() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("Admin Panel - Manage Data"))
	sb.WriteString("\n")

	for i := 0; i < fieldCount; i++ {
		sb.WriteString(m.styles.Label.Render(labels[i]))
		sb.WriteString("\n")

		style := m.styles.Field
		if i == m.focus {
			style = m.styles.FocusedField
		}

		if i == fieldClass {
			sb.WriteString(style.Render(lipgloss.PlaceHorizontal(54, lipgloss.Center, "‹ "+m.classLabel()+" ›")))
		} else {
			sb.WriteString(style.Render(m.inputs[i].View()))
		}
		sb.WriteString("\n\n")
	}

	buttons := lipgloss.JoinHorizontal(lipgloss.Top,
		m.styles.AddButton.Render("Add/Update Student (ctrl+s)"),
		m.styles.DeleteButton.Render("Delete Student (ctrl+d)"),
	)
	sb.WriteString(buttons)
	sb.WriteString("\n\n")
	sb.WriteString(m.styles.ViewButton.Render("View All Students (ctrl+r)"))
	sb.WriteString("\n")
	sb.WriteString(m.styles.Help.Render("tab/shift+tab: move • ←/→: change class • ctrl+c: quit"))

	return sb.String()
}

func (m Model) viewNotice() string {
	style := m.styles.Modal.BorderForeground(noticeColor(m.notice.Kind))
	body := m.styles.ModalTitle.Render(m.notice.Title) + "\n" + m.notice.Message +
		"\n\n" + m.styles.Help.Render("enter: OK")
	return style.Render(body)
}

func (m Model) viewConfirm() string {
	style := m.styles.Modal.BorderForeground(WarnColor)
	body := m.styles.ModalTitle.Render(m.pending.Title()) + "\n" + m.pending.Prompt() +
		"\n\n" + m.styles.Help.Render("y: yes • n: no")
	return style.Render(body)
}

func (m Model) viewReport() string {
	header := m.styles.Title.Render("All Students")
	footer := m.styles.Help.Render(fmt.Sprintf("%3.f%% • ↑/↓: scroll • esc: close", m.report.ScrollPercent()*100))
	return header + "\n" + m.styles.Report.Render(m.report.View()) + "\n" + footer
}

func (m Model) center(s string) string {
	if m.width == 0 || m.height == 0 {
		return s
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, s)
}

// Run opens the form and blocks until the user quits.
func Run(ctrl *form.Controller) error {
	p := tea.NewProgram(New(ctrl), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run form: %w", err)
	}
	return nil
}

