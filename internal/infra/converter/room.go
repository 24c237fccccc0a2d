package converter

import (
	"hotel-console/internal/domain/room"
	"hotel-console/internal/infra/gateway/wire"
)

func RoomFromWire(r wire.HabitacionResponse) *room.Room {
	return room.Reconstruct(r.ID, r.Numero, r.Tipo, r.Precio, r.Capacidad)
}

func RoomsFromWire(rs []wire.HabitacionResponse) []*room.Room {
	out := make([]*room.Room, len(rs))
	for i, r := range rs {
		out[i] = RoomFromWire(r)
	}
	return out
}
