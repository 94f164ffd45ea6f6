package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"offer_letter/internal/forms"
	"offer_letter/internal/notify"
)

const progressWidth = 20

// RenderErrors writes one "field: message" line per error, following order first
// and then any remaining fields.
func RenderErrors(w io.Writer, errs forms.Errors, order []string) {
	seen := make(map[string]bool, len(errs))
	for _, name := range order {
		if msg, ok := errs[name]; ok {
			fmt.Fprintf(w, "  %s: %s\n", name, msg)
			seen[name] = true
		}
	}
	for name, msg := range errs {
		if !seen[name] {
			fmt.Fprintf(w, "  %s: %s\n", name, msg)
		}
	}
}

// ProgressBar draws pct (0..100) as a fixed width bar.
func ProgressBar(pct float64) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	filled := int(pct / 100 * progressWidth)
	return "[" + strings.Repeat("#", filled) + strings.Repeat(".", progressWidth-filled) + "]"
}

// RenderNotification prints the notification. With follow set it redraws the
// countdown every tick until the notification is dismissed.
func RenderNotification(w io.Writer, n *notify.Notification, follow bool, tick time.Duration) {
	if n == nil {
		return
	}
	label := strings.ToUpper(string(n.Kind))
	if !follow {
		fmt.Fprintf(w, "[%s] %s\n", label, n.Message)
		return
	}
	if tick <= 0 {
		tick = 100 * time.Millisecond
	}
	t := time.NewTicker(tick)
	defer t.Stop()
	for {
		fmt.Fprintf(w, "\r[%s] %s %s", label, n.Message, ProgressBar(n.Progress()))
		select {
		case <-n.Done():
			fmt.Fprintf(w, "\r[%s] %s %s\n", label, n.Message, ProgressBar(0))
			return
		case <-t.C:
		}
	}
}
