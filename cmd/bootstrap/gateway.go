package bootstrap

import (
	"log/slog"
	"net/http"

	"hotel-console/internal/infra/gateway"
	"hotel-console/internal/pkg/config"
	"hotel-console/internal/usecase/notify"
	"hotel-console/internal/usecase/session"
	"hotel-console/internal/usecase/shared"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		NewHTTPClient,
		fx.Annotate(
			notify.NewGatewayReporter,
			fx.As(new(gateway.Reporter)),
		),
		NewAPIClient,
		NewGuestClient,
		NewRoomClient,
		NewReservationClient,
		NewUserClient,
		fx.Annotate(
			NewAuthClient,
			fx.As(new(shared.AuthGateway)),
		),
		NewGateways,
	),
)

func NewHTTPClient(cfg config.Config, tp trace.TracerProvider) *http.Client {
	return gateway.NewHTTPClient(cfg.Gateway.ServiceName, tp)
}

// NewAPIClient wires the outbound pipeline: logging, bearer token, error mapping,
// then the traced transport.
func NewAPIClient(httpClient *http.Client, reporter gateway.Reporter, logger *slog.Logger) *gateway.Client {
	return gateway.NewClient(gateway.NewPipeline(httpClient, reporter, logger), logger)
}

func NewGuestClient(c *gateway.Client, cfg config.Config) *gateway.GuestClient {
	return gateway.NewGuestClient(c, cfg.Gateway.URLFor(cfg.Gateway.GuestsURL, "/huespedes"))
}

func NewRoomClient(c *gateway.Client, cfg config.Config) *gateway.RoomClient {
	return gateway.NewRoomClient(c, cfg.Gateway.URLFor(cfg.Gateway.RoomsURL, "/habitaciones"))
}

func NewReservationClient(c *gateway.Client, cfg config.Config) *gateway.ReservationClient {
	return gateway.NewReservationClient(c, cfg.Gateway.URLFor(cfg.Gateway.ReservationsURL, "/reservas"))
}

func NewUserClient(c *gateway.Client, cfg config.Config) *gateway.UserClient {
	return gateway.NewUserClient(c, cfg.Gateway.URLFor(cfg.Gateway.AccountsURL, "/usuarios"))
}

func NewAuthClient(c *gateway.Client, cfg config.Config) *gateway.AuthClient {
	return gateway.NewAuthClient(c, cfg.Gateway.URLFor(cfg.Gateway.LoginURL, "/auth/login"))
}

func NewGateways(
	guests *gateway.GuestClient,
	rooms *gateway.RoomClient,
	reservations *gateway.ReservationClient,
	users *gateway.UserClient,
) session.Gateways {
	return session.Gateways{
		Guests:       guests,
		Rooms:        rooms,
		Users:        users,
		Reservations: reservations,
	}
}
