package form

const (
	msgRequiredFields = "Please fill all required fields (Student ID, Name, Class, Roll No, Section)."
	msgRollNotInteger = "Roll No must be an integer."
	msgDeleteFields   = "Please provide valid Student ID and Class."
	msgNotFound       = "Student ID not found."
)

// ValidationError rejects a submission before anything is changed.
type ValidationError struct {
	Message string
	Fields  []string
}

func (e *ValidationError) Error() string {
	return e.Message
}

type NoticeKind int

const (
	NoticeNone NoticeKind = iota
	NoticeSuccess
	NoticeInfo
	NoticeError
)

// Notice is the outcome shown to the user after an action.
type Notice struct {
	Kind    NoticeKind
	Title   string
	Message string
}

func (n Notice) Empty() bool {
	return n.Kind == NoticeNone
}

func errorNotice(err error) Notice {
	return Notice{Kind: NoticeError, Title: "Error", Message: err.Error()}
}
