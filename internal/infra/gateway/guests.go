package gateway

import (
	"context"
	"strconv"

	"hotel-console/internal/domain/guest"
	"hotel-console/internal/infra/converter"
	"hotel-console/internal/infra/gateway/wire"
)

type GuestClient struct {
	res *Resource[wire.HuespedResponse]
}

func NewGuestClient(client *Client, baseURL string) *GuestClient {
	return &GuestClient{res: NewResource[wire.HuespedResponse](client, baseURL, "huespedes")}
}

func (c *GuestClient) List(ctx context.Context) []*guest.Guest {
	return converter.GuestsFromWire(c.res.List(ctx))
}

func (c *GuestClient) Get(ctx context.Context, id int64) (*guest.Guest, error) {
	r, err := c.res.Get(ctx, strconv.FormatInt(id, 10))
	if err != nil {
		return nil, err
	}
	return converter.GuestFromWire(*r), nil
}

// GetByGuestID uses the API's alternate lookup route.
func (c *GuestClient) GetByGuestID(ctx context.Context, id int64) (*guest.Guest, error) {
	r, err := c.res.Get(ctx, "id-huesped", strconv.FormatInt(id, 10))
	if err != nil {
		return nil, err
	}
	return converter.GuestFromWire(*r), nil
}

func (c *GuestClient) Create(ctx context.Context, d guest.Draft) (*guest.Guest, error) {
	r, err := c.res.Create(ctx, converter.GuestToWire(d))
	if err != nil {
		return nil, err
	}
	return converter.GuestFromWire(*r), nil
}

func (c *GuestClient) Update(ctx context.Context, id int64, d guest.Draft) (*guest.Guest, error) {
	r, err := c.res.Update(ctx, strconv.FormatInt(id, 10), converter.GuestToWire(d))
	if err != nil {
		return nil, err
	}
	return converter.GuestFromWire(*r), nil
}

func (c *GuestClient) Delete(ctx context.Context, id int64) error {
	return c.res.Delete(ctx, strconv.FormatInt(id, 10))
}
