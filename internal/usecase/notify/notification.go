package notify

import (
	"context"
	"sync"
	"time"

	"hotel-console/internal/pkg/clock"
	"hotel-console/internal/pkg/config"

	"github.com/google/uuid"
)

type Kind string

const (
	KindSuccess Kind = "success"
	KindInfo    Kind = "info"
	KindWarning Kind = "warning"
	KindError   Kind = "error"
)

// Notification is one message for the operator. Modal ones wait for dismissal;
// the rest disappear after AutoDismissMs.
type Notification struct {
	ID            string    `json:"id"`
	Kind          Kind      `json:"kind"`
	Title         string    `json:"title"`
	Text          string    `json:"text"`
	Modal         bool      `json:"modal"`
	AutoDismissMs int64     `json:"autoDismissMs,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// Outbox collects what one console request wants to tell the operator.
type Outbox struct {
	mu            sync.Mutex
	notifications []Notification
	confirmation  *Confirmation
}

func NewOutbox() *Outbox {
	return &Outbox{}
}

func (o *Outbox) Push(n Notification) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.notifications = append(o.notifications, n)
}

func (o *Outbox) Notifications() []Notification {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]Notification{}, o.notifications...)
}

func (o *Outbox) Confirmation() *Confirmation {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.confirmation
}

func (o *Outbox) ask(c Confirmation) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.confirmation = &c
}

type outboxKey struct{}

func WithOutbox(ctx context.Context, o *Outbox) context.Context {
	return context.WithValue(ctx, outboxKey{}, o)
}

// FromContext returns the request's outbox, or a detached one when none is set.
func FromContext(ctx context.Context) *Outbox {
	if o, ok := ctx.Value(outboxKey{}).(*Outbox); ok && o != nil {
		return o
	}
	return NewOutbox()
}

// Notifier builds notifications and drops them into the request's outbox.
type Notifier struct {
	clock       clock.Clock
	autoDismiss time.Duration
}

func NewNotifier(cfg config.NotifyConfig, clk clock.Clock) *Notifier {
	return &Notifier{
		clock:       clk,
		autoDismiss: cfg.AutoDismiss,
	}
}

func (n *Notifier) Success(ctx context.Context, title, text string) {
	n.push(ctx, Notification{Kind: KindSuccess, Title: title, Text: text, AutoDismissMs: n.autoDismiss.Milliseconds()})
}

func (n *Notifier) Info(ctx context.Context, title, text string) {
	n.push(ctx, Notification{Kind: KindInfo, Title: title, Text: text, AutoDismissMs: n.autoDismiss.Milliseconds()})
}

func (n *Notifier) Warning(ctx context.Context, title, text string) {
	n.push(ctx, Notification{Kind: KindWarning, Title: title, Text: text, Modal: true})
}

func (n *Notifier) Error(ctx context.Context, title, text string) {
	n.push(ctx, Notification{Kind: KindError, Title: title, Text: text, Modal: true})
}

func (n *Notifier) push(ctx context.Context, msg Notification) {
	msg.ID = uuid.NewString()
	msg.CreatedAt = n.clock.Now()
	FromContext(ctx).Push(msg)
}
