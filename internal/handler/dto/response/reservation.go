package response

import (
	"hotel-console/internal/domain/reservation"
	"hotel-console/internal/usecase/reservations"
)

type ReservationGuest struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Document    string `json:"document"`
	Nationality string `json:"nationality"`
}

type ReservationRoom struct {
	ID       int64   `json:"id"`
	Number   int     `json:"number"`
	Kind     string  `json:"kind"`
	Price    float64 `json:"price"`
	Capacity int     `json:"capacity"`
}

type ReservationResponse struct {
	ID             int64            `json:"id"`
	Guest          ReservationGuest `json:"guest"`
	Room           ReservationRoom  `json:"room"`
	CheckIn        string           `json:"checkIn"`
	CheckOut       string           `json:"checkOut"`
	Status         string           `json:"status"`
	NeedsReconcile bool             `json:"needsReconcile,omitempty"`
	WantedStatus   string           `json:"wantedStatus,omitempty"`
}

func FromReservation(r *reservation.Reservation) *ReservationResponse {
	if r == nil {
		return nil
	}
	g, rm := r.Guest(), r.Room()
	return &ReservationResponse{
		ID: r.ID(),
		Guest: ReservationGuest{
			ID:          g.ID,
			Name:        g.Name,
			Email:       g.Email,
			Phone:       g.Phone,
			Document:    g.Document,
			Nationality: g.Nationality,
		},
		Room: ReservationRoom{
			ID:       rm.ID,
			Number:   rm.Number,
			Kind:     rm.Kind,
			Price:    rm.Price,
			Capacity: rm.Capacity,
		},
		CheckIn:  r.CheckIn().String(),
		CheckOut: r.CheckOut().String(),
		Status:   r.StatusLabel(),
	}
}

func FromRow(row reservations.Row) *ReservationResponse {
	resp := FromReservation(row.Reservation)
	if row.NeedsReconcile {
		resp.NeedsReconcile = true
		resp.WantedStatus = row.WantedStatus.Label()
	}
	return resp
}

func FromRows(rows []reservations.Row) []*ReservationResponse {
	out := make([]*ReservationResponse, len(rows))
	for i, row := range rows {
		out[i] = FromRow(row)
	}
	return out
}
