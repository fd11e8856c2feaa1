package main

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type noticeKind string

const (
	noticeInfo    noticeKind = "info"
	noticeSuccess noticeKind = "success"
	noticeWarn    noticeKind = "warn"
	noticeError   noticeKind = "error"
)

var noticeIcons = map[noticeKind]string{
	noticeInfo:    "ℹ",
	noticeSuccess: "✓",
	noticeWarn:    "!",
	noticeError:   "×",
}

type clearNoticeMsg struct{ id int }

func noticeText(msg string, kind noticeKind) string {
	if msg == "" {
		return ""
	}
	if icon, ok := noticeIcons[kind]; ok {
		return icon + " " + msg
	}
	return msg
}

// startNotice shows msg and returns the timer that clears it. A newer notice
// invalidates older timers.
func (m *model) startNotice(msg string, kind noticeKind) tea.Cmd {
	m.ui.noticeMsg = msg
	m.ui.noticeType = kind
	m.ui.noticeSeq++
	id := m.ui.noticeSeq
	return tea.Tick(m.cfg.NoticeDuration, func(time.Time) tea.Msg { return clearNoticeMsg{id: id} })
}

// notify is startNotice for dialog callbacks, which cannot return a command;
// the timer goes out with the next Update.
func (m *model) notify(msg string, kind noticeKind) {
	m.queue(m.startNotice(msg, kind))
}

func (m *model) clearNotice(id int) {
	if id != m.ui.noticeSeq {
		return
	}
	m.ui.noticeMsg = ""
	m.ui.noticeType = ""
}
