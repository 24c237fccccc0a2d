package views

import (
	"context"

	"hotel-console/internal/domain/room"
	"hotel-console/internal/pkg/errs"
	"hotel-console/internal/usecase/shared"
	"hotel-console/internal/usecase/store"
)

// RoomView is read-only: rooms are listed and inspected, never edited here.
type RoomView struct {
	gateway shared.RoomGateway
	items   *store.Store[int64, *room.Room]
}

func NewRoomView(gw shared.RoomGateway) *RoomView {
	return &RoomView{
		gateway: gw,
		items:   store.New((*room.Room).ID),
	}
}

func (v *RoomView) Activate(ctx context.Context) []*room.Room {
	v.items.ReplaceAll(v.gateway.List(ctx))
	return v.items.List()
}

func (v *RoomView) Items() []*room.Room {
	return v.items.List()
}

func (v *RoomView) Detail(id int64) (*room.Room, error) {
	r, ok := v.items.Get(id)
	if !ok {
		return nil, errs.ErrEntryNotFound
	}
	return r, nil
}

// Get fetches one room from the API and refreshes its row when listed.
func (v *RoomView) Get(ctx context.Context, id int64) (*room.Room, error) {
	r, err := v.gateway.Get(ctx, id)
	if err != nil {
		return nil, errs.Wrap(err, "get room")
	}
	v.items.Replace(r)
	return r, nil
}
