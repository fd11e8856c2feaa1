package main

import (
	"bytes"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/siftly-dialogs/config"
	"github.com/andareed/siftly-dialogs/dialogs"
	"github.com/andareed/siftly-dialogs/params"
)

var fixedNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyCtrlS = tea.KeyMsg{Type: tea.KeyCtrlS}
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestModel(t *testing.T, history []outcome) *model {
	t.Helper()
	cfg, err := config.LoadFrom(map[string]string{"SFDLG_LAST_DIR": t.TempDir()})
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	m := newModel(cfg, history, "")
	m.now = func() time.Time { return fixedNow }
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return m
}

// collect runs cmd, skipping anything that does not return promptly
// (cursor blinks, notice timers).
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()

	var msg tea.Msg
	select {
	case msg = <-ch:
	case <-time.After(50 * time.Millisecond):
		return nil
	}
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

// send delivers msg and feeds dialog close/error messages back until the
// model settles. It reports whether the program asked to quit.
func send(t *testing.T, m *model, msg tea.Msg) (quit bool) {
	t.Helper()
	_, cmd := m.Update(msg)
	for i := 0; cmd != nil; i++ {
		if i > 10 {
			t.Fatal("model did not settle")
		}
		var next []tea.Cmd
		for _, out := range collect(cmd) {
			switch out.(type) {
			case dialogs.CloseMsg, dialogs.ErrorMsg:
				_, c := m.Update(out)
				next = append(next, c)
			case tea.QuitMsg:
				quit = true
			}
		}
		cmd = tea.Batch(next...)
	}
	return quit
}

func sampleHistory() []outcome {
	return []outcome{
		{Dialog: "prompt", Button: params.OK, Value: "a.json", At: fixedNow},
		{Dialog: "confirm", Button: params.Cancel, At: fixedNow},
	}
}

func TestClearHistory_Confirmed(t *testing.T) {
	m := newTestModel(t, sampleHistory())

	send(t, m, runes("d"))
	if !m.dialogs.Active() {
		t.Fatal("expected confirm dialog to open")
	}
	send(t, m, runes("y"))

	if m.dialogs.Active() {
		t.Error("expected dialog to close")
	}
	if len(m.history) != 0 {
		t.Errorf("expected history cleared, got %d", len(m.history))
	}
	if m.ui.noticeMsg != "History cleared" {
		t.Errorf("unexpected notice %q", m.ui.noticeMsg)
	}
}

func TestClearHistory_Cancelled(t *testing.T) {
	m := newTestModel(t, sampleHistory())

	send(t, m, runes("d"))
	send(t, m, keyEsc)

	if len(m.history) != 3 {
		t.Fatalf("expected the cancel to be recorded, got %d outcomes", len(m.history))
	}
	last := m.history[2]
	if last.Button != params.Cancel || last.Value != "" || last.Dialog != dialogs.ConfirmDialog {
		t.Errorf("unexpected outcome %+v", last)
	}
	if m.cursor != 2 {
		t.Errorf("expected cursor on new outcome, got %d", m.cursor)
	}
}

func TestSaveAs_WritesHistory(t *testing.T) {
	m := newTestModel(t, sampleHistory())

	send(t, m, runes("s"))
	if top := m.dialogs.Top(); top == nil || top.Title() != "Save history" {
		t.Fatalf("expected save prompt, got %v", top)
	}
	send(t, m, keyEnter)

	want := filepath.Join(m.cfg.LastDir, m.cfg.DefaultFilename)
	if m.path != want {
		t.Errorf("expected path %q, got %q", want, m.path)
	}
	if m.dirty {
		t.Error("expected clean state after save")
	}

	h, err := LoadHistory(want)
	if err != nil {
		t.Fatalf("LoadHistory: %v", err)
	}
	if len(h) != 3 || h[2].Value != want || h[2].Button != params.OK {
		t.Errorf("unexpected saved history %+v", h)
	}
}

func TestSaveAs_Cancelled(t *testing.T) {
	m := newTestModel(t, nil)

	send(t, m, runes("s"))
	send(t, m, keyEsc)

	if m.path != "" {
		t.Errorf("expected no path, got %q", m.path)
	}
	if len(m.history) != 1 || m.history[0].Button != params.Cancel {
		t.Errorf("expected one cancelled outcome, got %+v", m.history)
	}
	entries, _ := os.ReadDir(m.cfg.LastDir)
	if len(entries) != 0 {
		t.Errorf("expected nothing written, got %d files", len(entries))
	}
}

func TestSaveAs_WriteFailureIsReported(t *testing.T) {
	var buf bytes.Buffer
	prevOut, prevFlags := log.Writer(), log.Flags()
	log.SetOutput(&buf)
	log.SetFlags(0)
	defer func() {
		log.SetOutput(prevOut)
		log.SetFlags(prevFlags)
	}()

	m := newTestModel(t, nil)
	m.cfg.LastDir = filepath.Join(m.cfg.LastDir, "missing")

	send(t, m, runes("s"))
	send(t, m, keyEnter)

	if m.path != "" {
		t.Errorf("expected no path after failed save, got %q", m.path)
	}
	if m.ui.noticeType != noticeError {
		t.Errorf("expected error notice, got %q (%s)", m.ui.noticeMsg, m.ui.noticeType)
	}
	if !strings.Contains(buf.String(), "[ERROR] Save failed") {
		t.Errorf("expected error log line, got %q", buf.String())
	}
}

func TestEditComment(t *testing.T) {
	m := newTestModel(t, sampleHistory())
	m.cursor = 0

	send(t, m, runes("c"))
	for _, r := range "odd" {
		send(t, m, runes(string(r)))
	}
	send(t, m, keyCtrlS)

	if got := m.history[0].Comment; got != "odd" {
		t.Errorf("expected comment odd, got %q", got)
	}
	if !m.dirty {
		t.Error("expected dirty after comment")
	}
}

func TestQuit(t *testing.T) {
	m := newTestModel(t, nil)
	if !send(t, m, runes("q")) {
		t.Error("expected immediate quit with nothing unsaved")
	}

	m = newTestModel(t, sampleHistory())
	m.dirty = true
	if send(t, m, runes("q")) {
		t.Fatal("expected confirmation before quitting")
	}
	if send(t, m, runes("n")) {
		t.Fatal("expected to stay after answering no")
	}
	send(t, m, runes("q"))
	if !send(t, m, runes("y")) {
		t.Error("expected quit after answering yes")
	}
}

func TestCopySelected(t *testing.T) {
	m := newTestModel(t, sampleHistory())
	m.cursor = 0

	var copied string
	m.copyText = func(text string, _ bool) error {
		copied = text
		return nil
	}
	send(t, m, runes("y"))

	if copied != "a.json" {
		t.Errorf("expected a.json copied, got %q", copied)
	}
	if m.ui.noticeType != noticeSuccess {
		t.Errorf("expected success notice, got %q", m.ui.noticeType)
	}
}

func TestHelp_OpensAndCloses(t *testing.T) {
	m := newTestModel(t, sampleHistory())

	send(t, m, runes("?"))
	if !strings.Contains(m.View(), "help / keys") {
		t.Error("expected key legend in view")
	}
	send(t, m, keyEsc)

	if m.dialogs.Active() {
		t.Error("expected help to close")
	}
	if len(m.history) != 2 {
		t.Errorf("help should not be recorded, got %d outcomes", len(m.history))
	}
}

func TestUnknownDialog_ShowsError(t *testing.T) {
	m := newTestModel(t, nil)
	m.dialogs.ShowDialog("nope", nil, nil)

	for _, out := range collect(m.dialogs.Cmd()) {
		m.Update(out)
	}
	if m.ui.noticeType != noticeError || !strings.Contains(m.ui.noticeMsg, `"nope"`) {
		t.Errorf("unexpected notice %q (%s)", m.ui.noticeMsg, m.ui.noticeType)
	}
}

func TestClearNotice_OnlyLatest(t *testing.T) {
	m := newTestModel(t, nil)
	m.startNotice("first", noticeInfo)
	m.startNotice("second", noticeInfo)

	m.Update(clearNoticeMsg{id: 1})
	if m.ui.noticeMsg != "second" {
		t.Errorf("stale clear removed notice: %q", m.ui.noticeMsg)
	}
	m.Update(clearNoticeMsg{id: 2})
	if m.ui.noticeMsg != "" {
		t.Errorf("expected notice cleared, got %q", m.ui.noticeMsg)
	}
}
