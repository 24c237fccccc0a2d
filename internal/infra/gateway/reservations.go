package gateway

import (
	"context"
	"strconv"

	"hotel-console/internal/domain/reservation"
	"hotel-console/internal/infra/converter"
	"hotel-console/internal/infra/gateway/wire"
)

type ReservationClient struct {
	res *Resource[wire.ReservaResponse]
}

func NewReservationClient(client *Client, baseURL string) *ReservationClient {
	return &ReservationClient{res: NewResource[wire.ReservaResponse](client, baseURL, "reservas")}
}

func (c *ReservationClient) List(ctx context.Context) []*reservation.Reservation {
	return converter.ReservationsFromWire(c.res.List(ctx))
}

func (c *ReservationClient) Get(ctx context.Context, id int64) (*reservation.Reservation, error) {
	r, err := c.res.Get(ctx, strconv.FormatInt(id, 10))
	if err != nil {
		return nil, err
	}
	return converter.ReservationFromWire(*r), nil
}

func (c *ReservationClient) Create(ctx context.Context, d reservation.Draft) (*reservation.Reservation, error) {
	r, err := c.res.Create(ctx, converter.ReservationToWire(d))
	if err != nil {
		return nil, err
	}
	return converter.ReservationFromWire(*r), nil
}

// Update changes every field except the status.
func (c *ReservationClient) Update(ctx context.Context, id int64, d reservation.Draft) (*reservation.Reservation, error) {
	r, err := c.res.Update(ctx, strconv.FormatInt(id, 10), converter.ReservationUpdateToWire(d))
	if err != nil {
		return nil, err
	}
	return converter.ReservationFromWire(*r), nil
}

// UpdateStatus is PATCH /reservas/{id}/estado/{estadoId} with an empty object body.
func (c *ReservationClient) UpdateStatus(ctx context.Context, id int64, status reservation.StatusID) error {
	return c.res.Patch(ctx, struct{}{},
		strconv.FormatInt(id, 10), "estado", strconv.Itoa(int(status)))
}

func (c *ReservationClient) Delete(ctx context.Context, id int64) error {
	return c.res.Delete(ctx, strconv.FormatInt(id, 10))
}
