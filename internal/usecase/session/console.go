package session

import (
	"sync"
	"time"

	"hotel-console/internal/usecase/form"
	"hotel-console/internal/usecase/notify"
	"hotel-console/internal/usecase/reservations"
	"hotel-console/internal/usecase/shared"
	"hotel-console/internal/usecase/views"
)

// Console is the state one operator works with: every list view and the
// reservation workflow. Lock serializes the operator's events.
type Console struct {
	mu       sync.Mutex
	ID       string
	lastSeen time.Time

	Guests       *views.GuestView
	Rooms        *views.RoomView
	Accounts     *views.AccountView
	Reservations *reservations.Workflow
}

func (c *Console) Lock()   { c.mu.Lock() }
func (c *Console) Unlock() { c.mu.Unlock() }

// Gateways bundles the API clients a console is built from.
type Gateways struct {
	Guests       shared.GuestGateway
	Rooms        shared.RoomGateway
	Users        shared.UserGateway
	Reservations shared.ReservationGateway
}

// Factory builds a fresh console for a new session.
type Factory struct {
	gateways  Gateways
	notifier  *notify.Notifier
	validator *form.Validator
}

func NewFactory(gw Gateways, n *notify.Notifier, v *form.Validator) *Factory {
	return &Factory{
		gateways:  gw,
		notifier:  n,
		validator: v,
	}
}

func (f *Factory) New(id string, now time.Time) *Console {
	return &Console{
		ID:           id,
		lastSeen:     now,
		Guests:       views.NewGuestView(f.gateways.Guests, f.notifier, f.validator),
		Rooms:        views.NewRoomView(f.gateways.Rooms),
		Accounts:     views.NewAccountView(f.gateways.Users, f.notifier, f.validator),
		Reservations: reservations.NewWorkflow(f.gateways.Reservations, f.notifier, f.validator),
	}
}
