package flash

import (
	"encoding/gob"
	"log/slog"
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/pkg/errors"
)

type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityInfo    Severity = "info"
)

type Message struct {
	Severity Severity
	Text     string
}

func init() {
	gob.Register(Message{})
}

// Notifier is the transient notification sink: messages are queued in the
// session and rendered once on the next page view, then discarded. Delivery
// is best-effort with no ordering guarantee across overlapping requests.
type Notifier struct {
	sessionStore sessions.Store
	sessionName  string
}

// Notify queues a message. Failures are logged and dropped; notifications
// carry no delivery contract.
func (n *Notifier) Notify(w http.ResponseWriter, r *http.Request, severity Severity, text string) {
	session, err := n.sessionStore.Get(r, n.sessionName)
	if err != nil {
		slog.WarnContext(r.Context(), "could not get flash session", slog.Any("error", errors.WithStack(err)))
		return
	}

	session.AddFlash(Message{Severity: severity, Text: text})

	if err := session.Save(r, w); err != nil {
		slog.WarnContext(r.Context(), "could not save flash session", slog.Any("error", errors.WithStack(err)))
	}
}

// Pop returns the queued messages and clears them.
func (n *Notifier) Pop(w http.ResponseWriter, r *http.Request) []Message {
	session, err := n.sessionStore.Get(r, n.sessionName)
	if err != nil {
		return nil
	}

	rawFlashes := session.Flashes()
	if len(rawFlashes) == 0 {
		return nil
	}

	if err := session.Save(r, w); err != nil {
		slog.WarnContext(r.Context(), "could not save flash session", slog.Any("error", errors.WithStack(err)))
	}

	messages := make([]Message, 0, len(rawFlashes))
	for _, raw := range rawFlashes {
		if message, ok := raw.(Message); ok {
			messages = append(messages, message)
		}
	}

	return messages
}

func NewNotifier(sessionStore sessions.Store) *Notifier {
	return &Notifier{
		sessionStore: sessionStore,
		sessionName:  "memehub_flash",
	}
}
