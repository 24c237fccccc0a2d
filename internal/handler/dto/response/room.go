package response

import "hotel-console/internal/domain/room"

type RoomResponse struct {
	ID       int64   `json:"id"`
	Number   int     `json:"number"`
	Kind     string  `json:"kind"`
	Price    float64 `json:"price"`
	Capacity int     `json:"capacity"`
}

func FromRoom(r *room.Room) *RoomResponse {
	return &RoomResponse{
		ID:       r.ID(),
		Number:   r.Number(),
		Kind:     r.Kind(),
		Price:    r.Price(),
		Capacity: r.Capacity(),
	}
}

func FromRooms(rs []*room.Room) []*RoomResponse {
	out := make([]*RoomResponse, len(rs))
	for i, r := range rs {
		out[i] = FromRoom(r)
	}
	return out
}
