package gateway

import (
	"context"
	"strconv"

	"hotel-console/internal/domain/room"
	"hotel-console/internal/infra/converter"
	"hotel-console/internal/infra/gateway/wire"
)

type RoomClient struct {
	res *Resource[wire.HabitacionResponse]
}

func NewRoomClient(client *Client, baseURL string) *RoomClient {
	return &RoomClient{res: NewResource[wire.HabitacionResponse](client, baseURL, "habitaciones")}
}

func (c *RoomClient) List(ctx context.Context) []*room.Room {
	return converter.RoomsFromWire(c.res.List(ctx))
}

func (c *RoomClient) Get(ctx context.Context, id int64) (*room.Room, error) {
	r, err := c.res.Get(ctx, strconv.FormatInt(id, 10))
	if err != nil {
		return nil, err
	}
	return converter.RoomFromWire(*r), nil
}
