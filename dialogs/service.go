package dialogs

import (
	"fmt"
	"reflect"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/andareed/siftly-dialogs/logging"
	"github.com/andareed/siftly-dialogs/params"
)

type entry struct {
	id       string
	name     string
	dialog   Dialog
	onClosed func(params.Result)
}

// Service is the dialog host. It keeps a stack of open dialogs; only the top
// one receives input. It is not safe for concurrent use and is meant to be
// driven from the owning model's Update.
type Service struct {
	factories map[string]Factory
	stack     []*entry
	pending   []tea.Cmd
	width     int
	height    int
}

var _ params.Host = (*Service)(nil)

func NewService() *Service {
	return &Service{factories: make(map[string]Factory)}
}

// Register binds name to f, replacing any earlier registration.
func (s *Service) Register(name string, f Factory) {
	s.factories[name] = f
}

func (s *Service) Registered(name string) bool {
	_, ok := s.factories[name]
	return ok
}

// ShowDialog opens the named dialog with a copy of p. onClosed runs once,
// from Update, when the dialog closes. An unknown name produces an ErrorMsg
// from the next Cmd and onClosed is never called.
func (s *Service) ShowDialog(name string, p *params.Parameters, onClosed func(params.Result)) {
	f, ok := s.factories[name]
	if !ok {
		err := fmt.Errorf("%w: %q", ErrUnknownDialog, name)
		logging.Warnf("DialogService:ShowDialog:: %v", err)
		s.pending = append(s.pending, func() tea.Msg { return ErrorMsg{Err: err} })
		return
	}

	if top := s.top(); top != nil {
		top.dialog.Blur()
	}

	e := &entry{
		id:       uuid.NewString(),
		name:     name,
		dialog:   f(p.Clone()),
		onClosed: onClosed,
	}
	s.stack = append(s.stack, e)
	logging.Infof("DialogService:ShowDialog:: opened %q (%s) with %s, depth %d", name, e.id, p, len(s.stack))

	s.pending = append(s.pending, s.tag(e.id, e.dialog.Init()))
	if s.width > 0 {
		s.forward(e, tea.WindowSizeMsg{Width: s.width, Height: s.height})
	}
}

// Cmd drains commands queued by ShowDialog and by callbacks. Call it after
// opening a dialog outside of Update.
func (s *Service) Cmd() tea.Cmd {
	if len(s.pending) == 0 {
		return nil
	}
	cmds := s.pending
	s.pending = nil
	return tea.Batch(cmds...)
}

func (s *Service) Active() bool { return len(s.stack) > 0 }

func (s *Service) Depth() int { return len(s.stack) }

// Top returns the dialog receiving input, or nil.
func (s *Service) Top() Dialog {
	if e := s.top(); e != nil {
		return e.dialog
	}
	return nil
}

// Update routes msg to the top dialog and handles close requests. Size
// messages are remembered even with no dialog open and go to every dialog
// on the stack.
func (s *Service) Update(msg tea.Msg) tea.Cmd {
	switch m := msg.(type) {
	case CloseMsg:
		s.close(m)
		return s.Cmd()
	case tea.WindowSizeMsg:
		s.width, s.height = m.Width, m.Height
		for _, e := range s.stack {
			s.forward(e, m)
		}
		return s.Cmd()
	}

	e := s.top()
	if e == nil {
		return s.Cmd()
	}
	s.forward(e, msg)
	return s.Cmd()
}

func (s *Service) forward(e *entry, msg tea.Msg) {
	d, cmd := e.dialog.Update(msg)
	e.dialog = d
	if cmd != nil {
		s.pending = append(s.pending, s.tag(e.id, cmd))
	}
}

func (s *Service) close(m CloseMsg) {
	idx := s.indexOf(m.id)
	if idx < 0 {
		logging.Warnf("DialogService:close:: no open dialog for %q", m.id)
		return
	}
	e := s.stack[idx]
	if c, ok := e.dialog.(Closer); ok && !c.CanClose() {
		logging.Debugf("DialogService:close:: %q (%s) refused to close", e.name, e.id)
		return
	}

	s.stack = append(s.stack[:idx], s.stack[idx+1:]...)
	if h, ok := e.dialog.(ClosedHook); ok {
		h.OnClosed()
	}
	if top := s.top(); top != nil && idx == len(s.stack) {
		s.pending = append(s.pending, s.tag(top.id, top.dialog.Focus()))
	}
	logging.Infof("DialogService:close:: %q (%s) closed with %s %s", e.name, e.id, m.Result.Button, m.Result.Parameters)

	if e.onClosed != nil {
		e.onClosed(m.Result)
	}
}

// indexOf finds the entry with id. An empty id only resolves while a single
// dialog is open; with a stack it cannot tell whose request it is.
func (s *Service) indexOf(id string) int {
	if id == "" {
		if len(s.stack) > 1 {
			logging.Warnf("DialogService:close:: untagged close with %d dialogs open, ignoring", len(s.stack))
			return -1
		}
		return len(s.stack) - 1
	}
	for i, e := range s.stack {
		if e.id == id {
			return i
		}
	}
	return -1
}

func (s *Service) top() *entry {
	if len(s.stack) == 0 {
		return nil
	}
	return s.stack[len(s.stack)-1]
}

var cmdType = reflect.TypeOf((*tea.Cmd)(nil)).Elem()

// tag stamps CloseMsgs coming out of cmd with the dialog id, so a close
// request still reaches its own dialog after another one is stacked on top.
// Messages that carry commands (tea.Batch, and tea.Sequence whose message
// type is unexported) are rebuilt with every inner command tagged.
func (s *Service) tag(id string, cmd tea.Cmd) tea.Cmd {
	if cmd == nil {
		return nil
	}
	return func() tea.Msg {
		msg := cmd()
		if m, ok := msg.(CloseMsg); ok {
			if m.id == "" {
				m.id = id
			}
			return m
		}
		return s.tagCommands(id, msg)
	}
}

func (s *Service) tagCommands(id string, msg tea.Msg) tea.Msg {
	v := reflect.ValueOf(msg)
	if !v.IsValid() || v.Kind() != reflect.Slice || v.Type().Elem() != cmdType {
		return msg
	}
	out := reflect.MakeSlice(v.Type(), v.Len(), v.Len())
	for i := 0; i < v.Len(); i++ {
		c, _ := v.Index(i).Interface().(tea.Cmd)
		out.Index(i).Set(reflect.ValueOf(s.tag(id, c)))
	}
	return out.Interface()
}
