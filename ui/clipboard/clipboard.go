// Package clipboard copies text to the system clipboard. OSC 52 goes first
// because it works over SSH; the native clipboard is the fallback.
package clipboard

import (
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"
	"github.com/aymanbagabas/go-osc52/v2"
)

// Copy copies text to the system clipboard.
func Copy(text string) error {
	if err := CopyOSC52(text); err == nil {
		return nil
	}
	return CopyNative(text)
}

// CopyOSC52 writes the OSC 52 sequence to the controlling terminal, or to
// stdout when there is no /dev/tty.
func CopyOSC52(text string) error {
	tty, err := os.OpenFile("/dev/tty", os.O_WRONLY, 0)
	if err != nil {
		return WriteOSC52(os.Stdout, text)
	}
	defer tty.Close()
	return WriteOSC52(tty, text)
}

// WriteOSC52 writes the clipboard escape sequence for text to w, wrapped for
// tmux or screen when running inside one.
func WriteOSC52(w io.Writer, text string) error {
	seq := osc52.New(text)
	switch {
	case os.Getenv("TMUX") != "":
		seq = seq.Tmux()
	case os.Getenv("STY") != "":
		seq = seq.Screen()
	}
	if _, err := seq.WriteTo(w); err != nil {
		return fmt.Errorf("clipboard: osc52: %w", err)
	}
	return nil
}

// CopyNative uses the platform clipboard (pbcopy, xclip, xsel, wl-copy, or
// the Windows API).
func CopyNative(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("clipboard: no native clipboard available")
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("clipboard: %w", err)
	}
	return nil
}
