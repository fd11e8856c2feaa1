package clipboard

import (
	"fmt"

	atotto "github.com/atotto/clipboard"

	"github.com/andareed/siftly-dialogs/logging"
)

// Copy puts text on the system clipboard. When no native clipboard tool is
// available and fallback is set, it falls back to the OSC52 escape sequence.
func Copy(text string, fallback bool) error {
	err := writeAll(text)
	if err == nil {
		logging.Infof("Clipboard: copied %d bytes via system clipboard", len(text))
		return nil
	}
	logging.Warnf("Clipboard: system clipboard failed: %v", err)
	if !fallback {
		return fmt.Errorf("clipboard: %w", err)
	}
	return copyOSC52(text)
}

// swapped out in tests
var writeAll = func(text string) error {
	if atotto.Unsupported {
		return errUnsupported
	}
	return atotto.WriteAll(text)
}
