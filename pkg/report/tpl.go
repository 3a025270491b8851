package report

const classTemplate = `Class {{ .Class }}:
{{ range .Students }}  ID: {{ .ID }}, Name: {{ .Record.Name }}, Roll: {{ .Record.RollNo }}, Section: {{ .Record.Section }}, Grades: {{ .Record.Grades }}
{{ else }}  No students
{{ end }}
`
