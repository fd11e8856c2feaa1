package config

import (
	"testing"
	"time"
)

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{})
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.DefaultFilename != "untitled.json" {
		t.Errorf("expected default filename, got %q", cfg.DefaultFilename)
	}
	if cfg.NoticeDuration != 2*time.Second {
		t.Errorf("expected 2s, got %s", cfg.NoticeDuration)
	}
	if !cfg.OSC52Fallback {
		t.Error("expected OSC52 fallback on by default")
	}
}

func TestLoadFrom_Overrides(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{
		"SFDLG_DEBUG_LOG":       "debug.log",
		"SFDLG_NOTICE_DURATION": "500ms",
		"SFDLG_OSC52_FALLBACK":  "false",
		"SFDLG_LAST_DIR":        "/tmp",
	})
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.DebugLog != "debug.log" || cfg.LastDir != "/tmp" {
		t.Errorf("unexpected paths: %+v", cfg)
	}
	if cfg.NoticeDuration != 500*time.Millisecond {
		t.Errorf("expected 500ms, got %s", cfg.NoticeDuration)
	}
	if cfg.OSC52Fallback {
		t.Error("expected OSC52 fallback off")
	}
}

func TestLoadFrom_Invalid(t *testing.T) {
	if _, err := LoadFrom(map[string]string{"SFDLG_NOTICE_DURATION": "soon"}); err == nil {
		t.Error("expected parse error")
	}
	if _, err := LoadFrom(map[string]string{"SFDLG_NOTICE_DURATION": "0s"}); err == nil {
		t.Error("expected error for zero duration")
	}
}
