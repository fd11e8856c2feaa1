// Package dialogs hosts modal dialogs inside a Bubble Tea program.
//
// Dialogs are registered by name and opened through Service.ShowDialog with
// a params bag. A dialog closes itself by returning Close(result); the
// service then calls the opener's callback with that result.
package dialogs

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/siftly-dialogs/params"
)

// Dialog is the common interface all dialogs (Confirm, Prompt, Help, etc.) implement.
type Dialog interface {
	Init() tea.Cmd // optional, can return nil
	Update(msg tea.Msg) (Dialog, tea.Cmd)
	View() string
	Title() string

	// Focus and Blur are called when a dialog is stacked on top of this one and removed again.
	Focus() tea.Cmd
	Blur()
}

// Closer lets a dialog refuse a close request, e.g. while input is invalid.
type Closer interface {
	CanClose() bool
}

// ClosedHook is called after the dialog leaves the stack and before the opener's callback.
type ClosedHook interface {
	OnClosed()
}

// Factory builds a dialog from the parameters it was opened with.
type Factory func(p *params.Parameters) Dialog

var ErrUnknownDialog = errors.New("dialogs: no dialog registered with that name")

// --- Messages ---------------------------------------------------------------

type (
	// CloseMsg asks the host to close the dialog that produced it.
	CloseMsg struct {
		Result params.Result
		id     string
	}
	// ErrorMsg reports a host failure, such as an unknown dialog name.
	ErrorMsg struct{ Err error }
)

// Close returns a command that closes the calling dialog with r.
func Close(r params.Result) tea.Cmd {
	return func() tea.Msg { return CloseMsg{Result: r} }
}

// Cancel closes the calling dialog with params.Cancel and no parameters.
func Cancel() tea.Cmd {
	return Close(params.Result{Button: params.Cancel})
}
