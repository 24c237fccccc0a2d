package shared

import (
	"context"

	"hotel-console/internal/domain/guest"
	"hotel-console/internal/domain/reservation"
	"hotel-console/internal/domain/room"
	"hotel-console/internal/domain/user"
)

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/gateway/mock_ports.go -package=gatewaymock

// List methods never fail: an unreachable API shows as an empty collection.
// Every other method returns the gateway error after it has been reported.

type GuestGateway interface {
	List(ctx context.Context) []*guest.Guest
	Get(ctx context.Context, id int64) (*guest.Guest, error)
	GetByGuestID(ctx context.Context, id int64) (*guest.Guest, error)
	Create(ctx context.Context, d guest.Draft) (*guest.Guest, error)
	Update(ctx context.Context, id int64, d guest.Draft) (*guest.Guest, error)
	Delete(ctx context.Context, id int64) error
}

type RoomGateway interface {
	List(ctx context.Context) []*room.Room
	Get(ctx context.Context, id int64) (*room.Room, error)
}

type ReservationGateway interface {
	List(ctx context.Context) []*reservation.Reservation
	Get(ctx context.Context, id int64) (*reservation.Reservation, error)
	Create(ctx context.Context, d reservation.Draft) (*reservation.Reservation, error)
	Update(ctx context.Context, id int64, d reservation.Draft) (*reservation.Reservation, error)
	UpdateStatus(ctx context.Context, id int64, status reservation.StatusID) error
	Delete(ctx context.Context, id int64) error
}

type UserGateway interface {
	List(ctx context.Context) []*user.User
	Get(ctx context.Context, id int64) (*user.User, error)
	Create(ctx context.Context, d user.Draft) (*user.User, error)
	Update(ctx context.Context, key string, d user.Draft) (*user.User, error)
	Delete(ctx context.Context, key string) error
}

type AuthGateway interface {
	Login(ctx context.Context, username, password string) (string, error)
}
