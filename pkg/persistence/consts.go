package persistence

// Default paths for the roster data and the generated report.
const (
	DefaultRosterPath = "./students.json"
	DefaultSQLitePath = "./students.db"
	DefaultReportPath = "./students_report.txt"
)
