package output

import (
	"errors"

	"github.com/atotto/clipboard"
)

// ErrClipboardUnavailable indicates no clipboard utility is available.
var ErrClipboardUnavailable = errors.New("clipboard unavailable")

// clipboardWrite is replaced in tests.
var clipboardWrite = clipboard.WriteAll

// Copy places text on the system clipboard.
func Copy(text string) error {
	if clipboard.Unsupported {
		return ErrClipboardUnavailable
	}
	return clipboardWrite(text)
}
