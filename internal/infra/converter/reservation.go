package converter

import (
	"hotel-console/internal/domain/reservation"
	"hotel-console/internal/infra/gateway/wire"
)

func ReservationToWire(d reservation.Draft) wire.ReservaRequest {
	return wire.ReservaRequest{
		IDHuesped:       d.GuestID,
		IDHabitacion:    d.RoomID,
		FechaEntrada:    d.CheckIn,
		FechaSalida:     d.CheckOut,
		IDEstadoReserva: int(d.StatusID),
	}
}

// ReservationUpdateToWire drops the status; it is changed by the status transition call.
func ReservationUpdateToWire(d reservation.Draft) wire.ReservaUpdateRequest {
	return wire.ReservaUpdateRequest{
		IDHuesped:    d.GuestID,
		IDHabitacion: d.RoomID,
		FechaEntrada: d.CheckIn,
		FechaSalida:  d.CheckOut,
	}
}

func ReservationFromWire(r wire.ReservaResponse) *reservation.Reservation {
	return reservation.Reconstruct(
		r.ID,
		reservation.GuestSummary{
			ID:          r.Huesped.ID,
			Name:        r.Huesped.Nombre,
			Email:       r.Huesped.Email,
			Phone:       r.Huesped.Telefono,
			Document:    r.Huesped.Documento,
			Nationality: r.Huesped.Nacionalidad,
		},
		reservation.RoomSummary{
			ID:       r.Habitacion.ID,
			Number:   r.Habitacion.Numero,
			Kind:     r.Habitacion.Tipo,
			Price:    r.Habitacion.Precio,
			Capacity: r.Habitacion.Capacidad,
		},
		reservation.Stamp(r.FechaEntrada),
		reservation.Stamp(r.FechaSalida),
		r.EstadoReserva,
	)
}

func ReservationsFromWire(rs []wire.ReservaResponse) []*reservation.Reservation {
	out := make([]*reservation.Reservation, len(rs))
	for i, r := range rs {
		out[i] = ReservationFromWire(r)
	}
	return out
}
