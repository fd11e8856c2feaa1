package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/siftly-dialogs/config"
	"github.com/andareed/siftly-dialogs/logging"
)

var Version = "dev"

var logFile = flag.String("debug", "", "Write Debug Logs to file (overrides SFDLG_DEBUG_LOG)")

func main() {
	versionFlag := flag.Bool("version", false, "print version and exit")
	dirFlag := flag.String("dir", "", "directory for relative save names (overrides SFDLG_LAST_DIR)")

	flag.Parse()

	// --- EARLY EXIT ---
	if *versionFlag {
		fmt.Println("Version:", Version)
		os.Exit(0)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *logFile != "" {
		cfg.DebugLog = *logFile
	}
	if *dirFlag != "" {
		cfg.LastDir = *dirFlag
	}

	cleanup, err := logging.SetupLogging(cfg.DebugLog)
	if err != nil {
		log.Fatalf("Failed to setup logging %v", err)
	}
	defer cleanup()

	log.Println("sfdlg: Started")

	args := flag.Args()
	if len(args) > 1 {
		fmt.Println("Usage: sfdlg [--debug debug.log] [--dir DIR] [history.json]")
		os.Exit(1)
	}

	var path string
	var history []outcome
	if len(args) == 1 {
		path = args[0]
		history, err = loadHistoryIfExists(path)
		if err != nil {
			log.Fatalf("failed to load %q: %v", path, err)
		}
	}

	m := newModel(cfg, history, path)
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		logging.Errorf("Tea program error: %v", err)
		fmt.Println("Error:", err)
	}
}

// loadHistoryIfExists treats a missing file as an empty history to be saved later.
func loadHistoryIfExists(path string) ([]outcome, error) {
	h, err := LoadHistory(path)
	if errors.Is(err, fs.ErrNotExist) {
		logging.Infof("History %q does not exist yet, starting empty", path)
		return nil, nil
	}
	return h, err
}
