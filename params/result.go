package params

// ButtonResult is how a dialog was closed.
type ButtonResult int

const (
	None ButtonResult = iota
	OK
	Cancel
	Abort
	Retry
	Ignore
	Yes
	No
)

func (b ButtonResult) String() string {
	switch b {
	case OK:
		return "OK"
	case Cancel:
		return "Cancel"
	case Abort:
		return "Abort"
	case Retry:
		return "Retry"
	case Ignore:
		return "Ignore"
	case Yes:
		return "Yes"
	case No:
		return "No"
	default:
		return "None"
	}
}

// Result is what a dialog hands back when it closes.
type Result struct {
	Button     ButtonResult
	Parameters *Parameters
}

// Confirmed reports whether the dialog closed with OK. Every other button
// counts as not confirmed.
func (r Result) Confirmed() bool { return r.Button == OK }
