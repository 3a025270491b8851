package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

type GradeKind int

const (
	GradeInteger GradeKind = iota
	GradeDecimal
	GradeText
)

func (k GradeKind) String() string {
	switch k {
	case GradeInteger:
		return "integer"
	case GradeDecimal:
		return "decimal"
	default:
		return "text"
	}
}

// Grade is a single subject result: a whole number, a decimal, or a letter
// grade such as "A+".
type Grade struct {
	kind GradeKind
	i    int64
	f    float64
	s    string
}

func IntegerGrade(n int64) Grade { return Grade{kind: GradeInteger, i: n} }
func DecimalGrade(f float64) Grade { return Grade{kind: GradeDecimal, f: f} }
func TextGrade(s string) Grade { return Grade{kind: GradeText, s: s} }

// ParseGrade classifies a trimmed grade literal. A literal containing "." is
// read as a decimal, anything else as an integer; when that fails the literal
// is kept as text. Only base-10 decimals count, so "0x1.8p1" stays text.
func ParseGrade(raw string) Grade {
	if strings.Contains(raw, ".") {
		if strings.ContainsAny(raw, "xXpP") {
			return TextGrade(raw)
		}
		if f, err := strconv.ParseFloat(raw, 64); err == nil {
			return DecimalGrade(f)
		}
		return TextGrade(raw)
	}
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return IntegerGrade(n)
	}
	return TextGrade(raw)
}

func (g Grade) Kind() GradeKind { return g.kind }

func (g Grade) String() string {
	switch g.kind {
	case GradeInteger:
		return strconv.FormatInt(g.i, 10)
	case GradeDecimal:
		return formatDecimal(g.f)
	default:
		return g.s
	}
}

// formatDecimal always keeps a fractional part so 90.0 stays a decimal
// after a save and reload.
func formatDecimal(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eEnN") {
		s += ".0"
	}
	return s
}

func (g Grade) MarshalJSON() ([]byte, error) {
	switch g.kind {
	case GradeInteger:
		return []byte(strconv.FormatInt(g.i, 10)), nil
	case GradeDecimal:
		return []byte(formatDecimal(g.f)), nil
	default:
		return encode(g.s)
	}
}

func (g *Grade) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return fmt.Errorf("empty grade")
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*g = TextGrade(s)
		return nil
	case 'n':
		*g = TextGrade("")
		return nil
	}

	lit := string(data)
	if !strings.ContainsAny(lit, ".eE") {
		if n, err := strconv.ParseInt(lit, 10, 64); err == nil {
			*g = IntegerGrade(n)
			return nil
		}
	}
	f, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		return fmt.Errorf("invalid grade %s: %w", lit, err)
	}
	*g = DecimalGrade(f)
	return nil
}

// GradeMap maps subject names to grades in first-seen order.
type GradeMap struct {
	m orderedMap[Grade]
}

func (gm GradeMap) Get(subject string) (Grade, bool) {
	return gm.m.get(subject)
}

func (gm *GradeMap) Set(subject string, g Grade) {
	gm.m.set(subject, g)
}

func (gm GradeMap) Subjects() []string {
	return gm.m.keyList()
}

func (gm GradeMap) Len() int {
	return gm.m.len()
}

// String renders "Subject:Value" pairs joined by ", ", or "None" when empty.
func (gm GradeMap) String() string {
	if gm.Len() == 0 {
		return "None"
	}

	parts := make([]string, 0, gm.Len())
	for _, subject := range gm.m.keys {
		parts = append(parts, subject+":"+gm.m.values[subject].String())
	}
	return strings.Join(parts, ", ")
}

func (gm GradeMap) MarshalJSON() ([]byte, error) {
	return gm.m.marshal()
}

func (gm *GradeMap) UnmarshalJSON(data []byte) error {
	*gm = GradeMap{}
	return decodeObject(data, func(subject string, dec *json.Decoder) error {
		var g Grade
		if err := dec.Decode(&g); err != nil {
			return err
		}
		gm.Set(subject, g)
		return nil
	})
}
