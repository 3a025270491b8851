package report

import (
	"bytes"
	"fmt"
	"io"
	"iter"
	"os"
	"strings"
	"text/template"

	"github.com/sirupsen/logrus"
	"github.com/xiaomi388/result-management/pkg/types"
)

var classTpl = template.Must(template.New("class").Parse(classTemplate))

type studentLine struct {
	ID     string
	Record types.StudentRecord
}

type classBlock struct {
	Class    types.ClassID
	Students []studentLine
}

func renderClass(roster *types.Roster, class types.ClassID) (string, error) {
	block := classBlock{Class: class}
	if roll, ok := roster.Class(class); ok {
		for _, id := range roll.IDs() {
			rec, _ := roll.Student(id)
			block.Students = append(block.Students, studentLine{ID: id, Record: rec})
		}
	}

	var buf bytes.Buffer
	if err := classTpl.Execute(&buf, block); err != nil {
		return "", fmt.Errorf("failed to render class %s: %w", class, err)
	}
	return buf.String(), nil
}

// Blocks yields one rendered block per class, classes in SortedClasses
// order. Each range over the sequence reads the roster afresh.
func Blocks(roster *types.Roster) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, class := range roster.SortedClasses() {
			block, err := renderClass(roster, class)
			if err != nil {
				logrus.WithError(err).Error("failed to render report")
				return
			}
			if !yield(block) {
				return
			}
		}
	}
}

// String renders the whole report.
func String(roster *types.Roster) string {
	var sb strings.Builder
	for block := range Blocks(roster) {
		sb.WriteString(block)
	}
	return sb.String()
}

func Write(w io.Writer, roster *types.Roster) error {
	for block := range Blocks(roster) {
		if _, err := io.WriteString(w, block); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}
	return nil
}

// Dump writes the report to path, replacing any previous report.
func Dump(path string, roster *types.Roster) error {
	var buf bytes.Buffer
	if err := Write(&buf, roster); err != nil {
		return err
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write report file: %w", err)
	}

	return nil
}
