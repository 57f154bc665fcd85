// Package notify delivers best-effort desktop notifications, used when
// a note is published from the TUI.
package notify

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// Send delivers an OS-level notification with the given title and body.
// macOS uses osascript, Linux notify-send, anything else a terminal
// bell. Callers treat this as fire-and-forget.
func Send(title, body string) error {
	switch runtime.GOOS {
	case "darwin":
		script := fmt.Sprintf(
			`display notification %s with title %s`,
			quoteAppleScript(body),
			quoteAppleScript(title),
		)
		return exec.Command("osascript", "-e", script).Run()
	case "linux":
		return exec.Command("notify-send", "-a", "nostr-cli-app", title, body).Run()
	default:
		_, err := fmt.Print("\a")
		return err
	}
}

// quoteAppleScript returns a quoted AppleScript string literal with
// backslashes escaped before quotes.
func quoteAppleScript(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return `"` + s + `"`
}
