package dialogs

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/andareed/siftly-dialogs/params"
)

const ConfirmDialog = "confirm"

// Message is the question a Confirm dialog asks.
type Message string

// Confirmation is the answer a Confirm dialog returns.
type Confirmation bool

var (
	buttonStyle       = lipgloss.NewStyle().Padding(0, 2)
	activeButtonStyle = buttonStyle.Reverse(true)
)

// Confirm is a yes/no dialog. It always closes with OK and a Confirmation,
// unless escaped, which closes with Cancel.
type Confirm struct {
	message Message
	yes     bool // which button is selected; no is the safer default
}

func NewConfirm(p *params.Parameters) Dialog {
	msg, ok := params.TryGet[Message](p)
	if !ok {
		msg = "Are you sure?"
	}
	return &Confirm{message: msg}
}

func (d *Confirm) Init() tea.Cmd  { return nil }
func (d *Confirm) Title() string  { return "Confirm" }
func (d *Confirm) Focus() tea.Cmd { return nil }
func (d *Confirm) Blur()          {}

func (d *Confirm) Update(msg tea.Msg) (Dialog, tea.Cmd) {
	m, ok := msg.(tea.KeyMsg)
	if !ok {
		return d, nil
	}
	switch m.String() {
	case "y":
		return d, Close(params.NewResult(Confirmation(true)))
	case "n":
		return d, Close(params.NewResult(Confirmation(false)))
	case "left", "right", "tab", "shift+tab", "h", "l":
		d.yes = !d.yes
	case "enter":
		log.Printf("ConfirmDialog:Update::Enter pressed with yes=%v\n", d.yes)
		return d, Close(params.NewResult(Confirmation(d.yes)))
	case "esc":
		return d, Cancel()
	}
	return d, nil
}

func (d *Confirm) View() string {
	yes, no := buttonStyle, activeButtonStyle
	if d.yes {
		yes, no = activeButtonStyle, buttonStyle
	}
	buttons := lipgloss.JoinHorizontal(lipgloss.Top, yes.Render("Yes"), "  ", no.Render("No"))
	return frame(d.Title(), string(d.message)+"\n\n"+buttons, "y/n • ←/→ to choose • enter to confirm • esc to cancel")
}
