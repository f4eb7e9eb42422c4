// Package notify delivers best-effort desktop alerts through the terminal.
package notify

import (
	"os"

	"github.com/muesli/termenv"
)

// Notifier delivers a push-style alert. Delivery is best-effort: there is no
// acknowledgement and no retry.
type Notifier interface {
	Notify(title, body string)
}

// Terminal sends OSC 777 desktop notifications via the controlling terminal.
// Terminals without notification support silently swallow the sequence,
// which matches the no-guarantee delivery model.
type Terminal struct {
	out *termenv.Output
}

// NewTerminal creates a Terminal notifier writing to stderr so alerts never
// corrupt structured stdout output.
func NewTerminal() *Terminal {
	return &Terminal{out: termenv.NewOutput(os.Stderr)}
}

// Notify implements Notifier.
func (t *Terminal) Notify(title, body string) {
	t.out.Notify(title, body)
}

// Discard is a Notifier that drops every alert. Used when notification
// permission has not been granted.
type Discard struct{}

// Notify implements Notifier.
func (Discard) Notify(string, string) {}
