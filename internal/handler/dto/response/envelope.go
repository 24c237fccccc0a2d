package response

import (
	"context"

	"hotel-console/internal/usecase/notify"
)

// Envelope wraps every console answer: the payload, the open form when there is
// one, and whatever the request wants to tell the operator.
type Envelope struct {
	Data          any                   `json:"data"`
	Form          any                   `json:"form,omitempty"`
	Notifications []notify.Notification `json:"notifications"`
	Confirmation  *notify.Confirmation  `json:"confirmation,omitempty"`
}

func NewEnvelope(ctx context.Context, data, form any) Envelope {
	outbox := notify.FromContext(ctx)
	return Envelope{
		Data:          data,
		Form:          form,
		Notifications: outbox.Notifications(),
		Confirmation:  outbox.Confirmation(),
	}
}
