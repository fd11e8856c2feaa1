package logging

import (
	"bytes"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLevelPrefix(t *testing.T) {
	var buf bytes.Buffer
	prevOut, prevFlags := log.Writer(), log.Flags()
	log.SetOutput(&buf)
	log.SetFlags(log.Lshortfile)
	defer func() {
		log.SetOutput(prevOut)
		log.SetFlags(prevFlags)
	}()

	Warnf("dialog %q not registered", "save")

	got := buf.String()
	if !strings.Contains(got, `[WARN] dialog "save" not registered`) {
		t.Errorf("unexpected log line %q", got)
	}
	if !strings.HasPrefix(got, "logging_test.go:") {
		t.Errorf("expected caller file in prefix, got %q", got)
	}

	buf.Reset()
	Errorf("save failed: %v", "disk full")
	if !strings.Contains(buf.String(), "[ERROR] save failed: disk full") {
		t.Errorf("unexpected error line %q", buf.String())
	}
}

func TestSetupLogging_File(t *testing.T) {
	prevOut, prevFlags, prevPrefix := log.Writer(), log.Flags(), log.Prefix()
	defer func() {
		log.SetOutput(prevOut)
		log.SetFlags(prevFlags)
		log.SetPrefix(prevPrefix)
	}()

	path := filepath.Join(t.TempDir(), "debug.log")
	cleanup, err := SetupLogging(path)
	if err != nil {
		t.Fatalf("SetupLogging: %v", err)
	}
	Infof("hello %d", 1)
	cleanup()

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(b), "[INFO] hello 1") {
		t.Errorf("log file missing entry: %q", b)
	}
}
