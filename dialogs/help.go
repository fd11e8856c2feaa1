package dialogs

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/siftly-dialogs/params"
)

const HelpDialog = "help"

// Bindings is the key legend a Help dialog lists.
type Bindings []key.Binding

// Help is just a list of key bindings to show. It always closes with Cancel.
type Help struct {
	bindings Bindings
}

func NewHelp(p *params.Parameters) Dialog {
	b, _ := params.TryGet[Bindings](p)
	return &Help{bindings: b}
}

func (d *Help) Init() tea.Cmd  { return nil }
func (d *Help) Title() string  { return "Keys" }
func (d *Help) Focus() tea.Cmd { return nil }
func (d *Help) Blur()          {}

func (d *Help) Update(msg tea.Msg) (Dialog, tea.Cmd) {
	if m, ok := msg.(tea.KeyMsg); ok {
		switch m.String() {
		case "enter", "esc", "?":
			return d, Cancel()
		}
	}
	return d, nil
}

func (d *Help) View() string {
	// Build lines "keys   description" from the bindings.
	var lines []string
	for _, b := range d.bindings {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		lines = append(lines, fmt.Sprintf("%-12s %s", h.Key, h.Desc))
	}
	if len(lines) == 0 {
		lines = append(lines, "no key bindings")
	}
	return frame(d.Title(), strings.Join(lines, "\n"), "enter/esc to return")
}
