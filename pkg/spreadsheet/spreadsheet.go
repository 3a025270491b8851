package spreadsheet

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/xiaomi388/result-management/pkg/form"
	"github.com/xiaomi388/result-management/pkg/types"
	"github.com/xuri/excelize/v2"
)

var header = []interface{}{"Student ID", "Name", "Roll No", "Section", "Grades"}

func SheetName(class types.ClassID) string {
	return "Class " + string(class)
}

// Export writes one sheet per class, classes in report order.
func Export(path string, roster *types.Roster) error {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			logrus.WithError(err).Warn("failed to close workbook")
		}
	}()

	for i, class := range roster.SortedClasses() {
		sheet := SheetName(class)
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheet); err != nil {
				return fmt.Errorf("failed to name sheet %s: %w", sheet, err)
			}
		} else if _, err := f.NewSheet(sheet); err != nil {
			return fmt.Errorf("failed to create sheet %s: %w", sheet, err)
		}

		if err := writeClass(f, sheet, roster, class); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}

	return nil
}

func writeClass(f *excelize.File, sheet string, roster *types.Roster, class types.ClassID) error {
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header of %s: %w", sheet, err)
	}

	roll, ok := roster.Class(class)
	if !ok {
		return nil
	}

	for i, id := range roll.IDs() {
		rec, _ := roll.Student(id)
		grades := ""
		if rec.Grades.Len() > 0 {
			grades = rec.Grades.String()
		}

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{id, rec.Name, rec.RollNo, rec.Section, grades}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write student %s: %w", id, err)
		}
	}

	return nil
}

// ReadRows reads students for class from a workbook. The sheet named after
// the class is used when present, the first sheet otherwise. The first row is
// a header.
func ReadRows(r io.Reader, class types.ClassID) ([]form.Fields, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open excel file: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			logrus.WithError(err).Warn("failed to close workbook")
		}
	}()

	sheet := f.GetSheetName(0)
	for _, name := range f.GetSheetList() {
		if name == SheetName(class) {
			sheet = name
			break
		}
	}
	if sheet == "" {
		return nil, errors.New("excel file does not contain any sheets")
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to get rows from sheet %s: %w", sheet, err)
	}

	var out []form.Fields
	for i, row := range rows {
		if i == 0 || isBlank(row) {
			continue
		}
		// Trailing empty cells are not returned.
		for len(row) < len(header) {
			row = append(row, "")
		}

		fields := form.Fields{
			StudentID: row[0],
			Name:      row[1],
			RollNo:    row[2],
			Section:   row[3],
			Grades:    row[4],
		}
		fields.SelectClass(class)
		out = append(out, fields)
	}

	return out, nil
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if cell != "" {
			return false
		}
	}
	return true
}
