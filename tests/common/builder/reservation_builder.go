//go:build unit || e2e

package builder

import (
	"hotel-console/internal/domain/reservation"
	"hotel-console/internal/infra/gateway/wire"
)

type ReservationBuilder struct {
	ID          int64
	GuestID     int64
	GuestName   string
	RoomID      int64
	RoomNumber  int
	CheckIn     string
	CheckOut    string
	StatusLabel string
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		ID:          10,
		GuestID:     1,
		GuestName:   "Ana Torres",
		RoomID:      3,
		RoomNumber:  203,
		CheckIn:     "01/12/2025 15:00",
		CheckOut:    "03/12/2025 12:00",
		StatusLabel: "CONFIRMADA",
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) WithID(id int64) *ReservationBuilder {
	b.ID = id
	return b
}

func (b *ReservationBuilder) WithStatus(label string) *ReservationBuilder {
	b.StatusLabel = label
	return b
}

// Build methods
func (b *ReservationBuilder) BuildDomain() *reservation.Reservation {
	return reservation.Reconstruct(
		b.ID,
		reservation.GuestSummary{ID: b.GuestID, Name: b.GuestName},
		reservation.RoomSummary{ID: b.RoomID, Number: b.RoomNumber, Kind: "DOBLE", Price: 1500, Capacity: 2},
		reservation.Stamp(b.CheckIn),
		reservation.Stamp(b.CheckOut),
		b.StatusLabel,
	)
}

// BuildDraft returns a valid form value for this reservation.
func (b *ReservationBuilder) BuildDraft() reservation.Draft {
	status, _ := reservation.StatusFromLabel(b.StatusLabel)
	return reservation.Draft{
		GuestID:  b.GuestID,
		RoomID:   b.RoomID,
		CheckIn:  b.CheckIn,
		CheckOut: b.CheckOut,
		StatusID: status,
	}
}

func (b *ReservationBuilder) BuildWire() wire.ReservaResponse {
	return wire.ReservaResponse{
		ID:            b.ID,
		Huesped:       wire.DatosHuesped{ID: b.GuestID, Nombre: b.GuestName},
		Habitacion:    wire.DatosHabitacion{ID: b.RoomID, Numero: b.RoomNumber, Tipo: "DOBLE", Precio: 1500, Capacidad: 2},
		FechaEntrada:  b.CheckIn,
		FechaSalida:   b.CheckOut,
		EstadoReserva: b.StatusLabel,
	}
}
