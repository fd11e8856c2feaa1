package dialogs

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/siftly-dialogs/params"
)

const CommentDialog = "comment"

// Comment is both the input and the result of a Comment dialog.
type Comment string

// CommentEditor edits a multi-line comment. ctrl+s accepts, esc cancels.
// Clearing the text and accepting returns an empty Comment.
type CommentEditor struct {
	area textarea.Model
}

func NewCommentEditor(p *params.Parameters) Dialog {
	initial, _ := params.TryGet[Comment](p)

	ta := textarea.New()
	ta.Placeholder = "Comment:"
	ta.CharLimit = 256
	ta.SetWidth(dialogWidth - 6)
	ta.SetHeight(5)
	ta.SetValue(string(initial))
	return &CommentEditor{area: ta}
}

func (d *CommentEditor) Init() tea.Cmd  { return d.area.Focus() }
func (d *CommentEditor) Title() string  { return "Comment" }
func (d *CommentEditor) Focus() tea.Cmd { return d.area.Focus() }
func (d *CommentEditor) Blur()          { d.area.Blur() }

func (d *CommentEditor) Update(msg tea.Msg) (Dialog, tea.Cmd) {
	if m, ok := msg.(tea.KeyMsg); ok {
		switch m.String() {
		case "ctrl+s":
			return d, Close(params.NewResult(Comment(strings.TrimSpace(d.area.Value()))))
		case "esc":
			return d, Cancel()
		}
	}
	var cmd tea.Cmd
	d.area, cmd = d.area.Update(msg)
	return d, cmd
}

func (d *CommentEditor) View() string {
	return frame(d.Title(), d.area.View(), "ctrl+s to save • esc to cancel")
}
