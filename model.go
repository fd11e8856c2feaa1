package main

import (
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/siftly-dialogs/clipboard"
	"github.com/andareed/siftly-dialogs/config"
	"github.com/andareed/siftly-dialogs/dialogs"
	"github.com/andareed/siftly-dialogs/logging"
	"github.com/andareed/siftly-dialogs/params"
)

type model struct {
	cfg     config.Config
	dialogs *dialogs.Service

	history []outcome
	cursor  int    // index into history
	path    string // file the history was loaded from or last saved to
	dirty   bool

	ui             uiState
	terminalWidth  int
	terminalHeight int
	ready          bool

	// commands queued by dialog callbacks, flushed at the end of Update
	pending []tea.Cmd

	// swapped out in tests
	copyText func(text string, fallback bool) error
	now      func() time.Time
}

func newModel(cfg config.Config, history []outcome, path string) *model {
	svc := dialogs.NewService()
	dialogs.RegisterDefaults(svc)

	m := &model{
		cfg:      cfg,
		dialogs:  svc,
		history:  history,
		path:     path,
		copyText: clipboard.Copy,
		now:      time.Now,
	}
	if len(history) > 0 {
		m.cursor = len(history) - 1
	}
	return m
}

func (m *model) Init() tea.Cmd {
	log.Println("sfdlg: Initialised")
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.terminalWidth, m.terminalHeight = msg.Width, msg.Height
		m.ready = true
	case clearNoticeMsg:
		m.clearNotice(msg.id)
		return m, nil
	case dialogs.ErrorMsg:
		logging.Errorf("Dialog error: %v", msg.Err)
		return m, m.startNotice(msg.Err.Error(), noticeError)
	case tea.KeyMsg:
		if !m.dialogs.Active() {
			return m, m.flush(m.handleKey(msg))
		}
	}

	// everything else (keys while a dialog is open, close requests, cursor
	// blinks, sizes) belongs to the dialog host
	return m, m.flush(m.dialogs.Update(msg))
}

func (m *model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, Keys.Quit):
		return m.quit()
	case key.Matches(msg, Keys.RowDown):
		if m.cursor < len(m.history)-1 {
			m.cursor++
		}
	case key.Matches(msg, Keys.RowUp):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, Keys.SaveAs):
		m.saveAs()
	case key.Matches(msg, Keys.Clear):
		m.clearHistory()
	case key.Matches(msg, Keys.Comment):
		m.editComment()
	case key.Matches(msg, Keys.CopyRow):
		return m.copySelected()
	case key.Matches(msg, Keys.OpenHelp):
		params.ShowDialog(m.dialogs, dialogs.HelpDialog, dialogs.Bindings(Keys.Legend()), nil)
	}
	return m.dialogs.Cmd()
}

func (m *model) quit() tea.Cmd {
	if !m.dirty {
		return tea.Quit
	}
	msg := dialogs.Message(fmt.Sprintf("%d unsaved outcome(s). Quit anyway?", len(m.history)))
	params.ShowDialog(m.dialogs, dialogs.ConfirmDialog, msg, func(r params.Result) {
		if yes, ok := params.TryGetResult[dialogs.Confirmation](r); ok && bool(yes) {
			log.Println("Quit confirmed with unsaved history")
			m.queue(tea.Quit)
		}
	})
	return m.dialogs.Cmd()
}

func (m *model) saveAs() {
	req := dialogs.PromptRequest{
		Title:       "Save history",
		Prompt:      "Save as: ",
		DefaultName: m.defaultName(),
		LastDir:     m.cfg.LastDir,
	}
	params.ShowDialog(m.dialogs, dialogs.PromptDialog, req, func(r params.Result) {
		name, ok := params.TryGetResult[dialogs.Filename](r)
		m.record(dialogs.PromptDialog, r, string(name))
		if !ok {
			m.notify("Save cancelled", noticeInfo)
			return
		}
		if err := SaveHistory(m.history, string(name)); err != nil {
			logging.Errorf("Save failed: %v", err)
			m.notify(err.Error(), noticeError)
			return
		}
		m.path = string(name)
		m.dirty = false
		m.notify("Saved to "+string(name), noticeSuccess)
	})
}

func (m *model) defaultName() string {
	if m.path != "" {
		return filepath.Base(m.path)
	}
	return m.cfg.DefaultFilename
}

func (m *model) clearHistory() {
	if len(m.history) == 0 {
		m.notify("History is already empty", noticeInfo)
		return
	}
	msg := dialogs.Message(fmt.Sprintf("Clear %d outcome(s)?", len(m.history)))
	params.ShowDialog(m.dialogs, dialogs.ConfirmDialog, msg, func(r params.Result) {
		yes, ok := params.TryGetResult[dialogs.Confirmation](r)
		if !ok || !bool(yes) {
			m.record(dialogs.ConfirmDialog, r, fmt.Sprint(bool(yes)))
			return
		}
		m.history = nil
		m.cursor = 0
		m.dirty = true
		m.notify("History cleared", noticeSuccess)
	})
}

func (m *model) editComment() {
	if m.cursor < 0 || m.cursor >= len(m.history) {
		m.notify("Nothing selected", noticeWarn)
		return
	}
	idx := m.cursor
	current := dialogs.Comment(m.history[idx].Comment)
	params.ShowDialog(m.dialogs, dialogs.CommentDialog, current, func(r params.Result) {
		c, ok := params.TryGetResult[dialogs.Comment](r)
		if !ok || idx >= len(m.history) {
			return
		}
		m.history[idx].Comment = string(c)
		m.dirty = true
	})
}

func (m *model) copySelected() tea.Cmd {
	if m.cursor < 0 || m.cursor >= len(m.history) {
		return m.startNotice("Nothing selected", noticeWarn)
	}
	val := m.history[m.cursor].Value
	if err := m.copyText(val, m.cfg.OSC52Fallback); err != nil {
		return m.startNotice(err.Error(), noticeError)
	}
	return m.startNotice("Copied to clipboard", noticeSuccess)
}

// record appends a closed dialog to the history and selects it.
func (m *model) record(name string, r params.Result, value string) {
	if !r.Confirmed() {
		value = ""
	}
	m.history = append(m.history, outcome{
		Dialog: name,
		Button: r.Button,
		Value:  value,
		At:     m.now(),
	})
	m.cursor = len(m.history) - 1
	m.dirty = true
}

func (m *model) queue(cmd tea.Cmd) {
	if cmd != nil {
		m.pending = append(m.pending, cmd)
	}
}

// flush batches cmd with whatever dialog callbacks queued while it ran.
func (m *model) flush(cmd tea.Cmd) tea.Cmd {
	cmds := append(m.pending, cmd)
	m.pending = nil
	return tea.Batch(cmds...)
}
