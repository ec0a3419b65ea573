// Package clipboard copies text to the system clipboard through OSC 52
// escape sequences. This works over SSH and inside most modern terminal
// emulators without any native clipboard dependency.
package clipboard

import (
	"fmt"
	"io"

	"github.com/aymanbagabas/go-osc52/v2"
)

// Copy writes the OSC 52 sequence for text to w, which should be the
// terminal's output stream. Terminals without OSC 52 support ignore the
// sequence, so a nil error does not guarantee the clipboard changed.
func Copy(w io.Writer, text string) error {
	if _, err := osc52.New(text).WriteTo(w); err != nil {
		return fmt.Errorf("write osc52 sequence: %w", err)
	}
	return nil
}
