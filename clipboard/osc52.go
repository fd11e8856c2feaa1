package clipboard

import (
	"encoding/base64"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/andareed/siftly-dialogs/logging"
)

var (
	errUnsupported = errors.New("no clipboard utility available")
	errNoOSC52     = errors.New("clipboard unavailable (OSC52 unsupported by terminal)")
)

// terminal output and its capability check, swapped out in tests
var (
	osc52Out       io.Writer = os.Stdout
	osc52Supported           = func() bool {
		if term := os.Getenv("TERM"); term == "" || strings.EqualFold(term, "dumb") {
			return false
		}
		return isTTY(os.Stdout)
	}
)

func copyOSC52(text string) error {
	if !osc52Supported() {
		logging.Warnf("Clipboard: OSC52 unavailable (stdout not TTY or TERM=dumb)")
		return errNoOSC52
	}

	if _, err := io.WriteString(osc52Out, osc52Sequence(text)); err != nil {
		logging.Warnf("Clipboard: OSC52 write failed: %v", err)
		return err
	}
	logging.Infof("Clipboard: copied via OSC52")
	return nil
}

func osc52Sequence(text string) string {
	return "\x1b]52;c;" + base64.StdEncoding.EncodeToString([]byte(text)) + "\x07"
}

func isTTY(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
