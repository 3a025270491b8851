package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xiaomi388/result-management/pkg/types"
)

func sampleRoster() *types.Roster {
	var grades types.GradeMap
	grades.Set("Math", types.IntegerGrade(90))
	grades.Set("Eng", types.DecimalGrade(8.5))

	r := types.NewRoster()
	r.Upsert("12", "b", types.StudentRecord{Name: "Ben", RollNo: 2, Section: "B"})
	r.Upsert("11", "z", types.StudentRecord{Name: "Zia", RollNo: 9, Section: "A", Grades: grades})
	r.Upsert("11", "a", types.StudentRecord{Name: "Ari", RollNo: 1, Section: "A"})
	r.EnsureClass("9")
	return r
}

func TestString(t *testing.T) {
	expected := "Class 9:\n" +
		"  No students\n" +
		"\n" +
		"Class 11:\n" +
		"  ID: z, Name: Zia, Roll: 9, Section: A, Grades: Math:90, Eng:8.5\n" +
		"  ID: a, Name: Ari, Roll: 1, Section: A, Grades: None\n" +
		"\n" +
		"Class 12:\n" +
		"  ID: b, Name: Ben, Roll: 2, Section: B, Grades: None\n" +
		"\n"

	assert.Equal(t, expected, String(sampleRoster()))
}

func TestBlocksIsRestartable(t *testing.T) {
	r := sampleRoster()
	seq := Blocks(r)

	var first []string
	for b := range seq {
		first = append(first, b)
	}
	require.Len(t, first, 3)

	r.Upsert("13", "c", types.StudentRecord{Name: "Cy", RollNo: 3, Section: "C"})
	count := 0
	for range seq {
		count++
	}
	assert.Equal(t, 4, count)

	for b := range seq {
		assert.Equal(t, first[0], b)
		break
	}
}

func TestDump(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.txt")
	require.NoError(t, Dump(path, sampleRoster()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, String(sampleRoster()), string(data))
}

func TestEmptyRoster(t *testing.T) {
	assert.Equal(t, "", String(types.NewRoster()))
}
