package converter

import (
	"hotel-console/internal/domain/guest"
	"hotel-console/internal/domain/lifecycle"
	"hotel-console/internal/infra/gateway/wire"
)

func GuestToWire(d guest.Draft) wire.HuespedRequest {
	return wire.HuespedRequest{
		Nombre:        d.Name,
		Apellido:      d.Surname,
		Email:         d.Email,
		Telefono:      d.Phone,
		TipoDocumento: d.DocumentType,
		Nacionalidad:  d.Nationality,
	}
}

func GuestFromWire(r wire.HuespedResponse) *guest.Guest {
	return guest.Reconstruct(r.ID, guest.Draft{
		Name:         r.Nombre,
		Surname:      r.Apellido,
		Email:        r.Email,
		Phone:        r.Telefono,
		DocumentType: r.TipoDocumento,
		Nationality:  r.Nacionalidad,
	}, recordStatus(r.EstadoRegistro))
}

func GuestsFromWire(rs []wire.HuespedResponse) []*guest.Guest {
	out := make([]*guest.Guest, len(rs))
	for i, r := range rs {
		out[i] = GuestFromWire(r)
	}
	return out
}

// An unknown status is kept verbatim rather than dropping the record.
func recordStatus(s string) lifecycle.Status {
	status, err := lifecycle.NewStatus(s)
	if err != nil {
		return lifecycle.Status(s)
	}
	return status
}
