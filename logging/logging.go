package logging

import (
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

// SetupLogging configures logging.
// If filename is empty, logging is disabled (except log.Fatal/panic).
// If filename is set, logs go to that file and Bubble Tea logs are enabled too.
func SetupLogging(filename string) (cleanup func(), err error) {
	if filename == "" {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
		log.SetOutput(io.Discard)
		return func() {}, nil
	}

	f, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	// Bubble Tea writes its own debug lines to the same file
	tf, err := tea.LogToFile(filename, "debug")
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("bubbletea log: %w", err)
	}

	cleanup = func() {
		tf.Close()
		f.Close()
	}
	return cleanup, nil
}

func Debugf(format string, args ...any) { output("DEBUG", format, args...) }
func Infof(format string, args ...any)  { output("INFO", format, args...) }
func Warnf(format string, args ...any)  { output("WARN", format, args...) }
func Errorf(format string, args ...any) { output("ERROR", format, args...) }

func output(level, format string, args ...any) {
	// depth 3 so Lshortfile points at the caller of Infof & co.
	_ = log.Output(3, "["+level+"] "+fmt.Sprintf(format, args...))
}
