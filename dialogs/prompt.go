package dialogs

import (
	"log"
	"path/filepath"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/siftly-dialogs/params"
)

const PromptDialog = "prompt"

// PromptRequest configures a Prompt dialog.
type PromptRequest struct {
	Title       string
	Prompt      string // e.g. "Save as: "
	DefaultName string
	// optional: relative names are resolved against this directory
	LastDir string
}

// Filename is what a Prompt dialog returns.
type Filename string

// Prompt asks for a file name.
type Prompt struct {
	req   PromptRequest
	input textinput.Model
}

func NewPrompt(p *params.Parameters) Dialog {
	req, _ := params.TryGet[PromptRequest](p)
	if req.Prompt == "" {
		req.Prompt = "File: "
	}

	ti := textinput.New()
	ti.Placeholder = req.DefaultName
	ti.Prompt = req.Prompt
	ti.CharLimit = 256
	// Wide enough for typical paths
	ti.Width = 50
	if req.DefaultName != "" {
		ti.SetValue(req.DefaultName)
	}
	return &Prompt{req: req, input: ti}
}

func (d *Prompt) Init() tea.Cmd  { return d.input.Focus() }
func (d *Prompt) Title() string  { return d.req.Title }
func (d *Prompt) Focus() tea.Cmd { return d.input.Focus() }
func (d *Prompt) Blur()          { d.input.Blur() }

func (d *Prompt) Update(msg tea.Msg) (Dialog, tea.Cmd) {
	if m, ok := msg.(tea.KeyMsg); ok {
		switch m.String() {
		case "enter":
			path := d.resolve()
			if path == "" {
				return d, nil
			}
			log.Printf("PromptDialog:Update::Enter key was pressed, returning %q\n", path)
			return d, Close(params.NewResult(Filename(path)))
		case "esc":
			log.Printf("PromptDialog:Update::Esc key was pressed, cancelling\n")
			return d, Cancel()
		}
	}
	var cmd tea.Cmd
	d.input, cmd = d.input.Update(msg)
	return d, cmd
}

func (d *Prompt) resolve() string {
	val := d.input.Value()
	if val == "" {
		// fall back to placeholder if user left it blank
		val = d.input.Placeholder
	}
	if val == "" {
		return ""
	}
	// Expand "." to lastDir if provided
	if d.req.LastDir != "" && !filepath.IsAbs(val) && filepath.Dir(val) == "." {
		return filepath.Join(d.req.LastDir, filepath.Base(val))
	}
	return val
}

func (d *Prompt) View() string {
	return frame(d.req.Title, d.input.View(), "enter to accept • esc to cancel")
}
