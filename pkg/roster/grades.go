package roster

import (
	"strings"

	"github.com/xiaomi388/result-management/pkg/types"
)

// ParseGrades reads "Subject:Value, Subject2:Value2". Segments without a ':'
// are skipped and counted. A repeated subject keeps its first position and
// takes the later value.
func ParseGrades(text string) (types.GradeMap, int) {
	var grades types.GradeMap
	skipped := 0

	for _, item := range strings.Split(text, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}

		subject, value, ok := strings.Cut(item, ":")
		if !ok {
			skipped++
			continue
		}

		grades.Set(strings.TrimSpace(subject), types.ParseGrade(strings.TrimSpace(value)))
	}

	return grades, skipped
}
