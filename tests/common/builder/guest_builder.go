//go:build unit || e2e

package builder

import (
	"hotel-console/internal/domain/guest"
	"hotel-console/internal/domain/lifecycle"
	"hotel-console/internal/infra/gateway/wire"
)

type GuestBuilder struct {
	ID           int64
	Name         string
	Surname      string
	Email        string
	Phone        string
	DocumentType string
	Nationality  string
	Status       lifecycle.Status
}

func NewGuestBuilder() *GuestBuilder {
	return &GuestBuilder{
		ID:           1,
		Name:         "Ana",
		Surname:      "Torres",
		Email:        "ana.torres@example.com",
		Phone:        "5512345678",
		DocumentType: "INE",
		Nationality:  "Mexicana",
		Status:       lifecycle.StatusActive,
	}
}

func (b *GuestBuilder) With(mutate func(*GuestBuilder)) *GuestBuilder {
	mutate(b)
	return b
}

func (b *GuestBuilder) WithID(id int64) *GuestBuilder {
	b.ID = id
	return b
}

func (b *GuestBuilder) WithName(name, surname string) *GuestBuilder {
	b.Name = name
	b.Surname = surname
	return b
}

// Build methods
func (b *GuestBuilder) BuildDraft() guest.Draft {
	return guest.Draft{
		Name:         b.Name,
		Surname:      b.Surname,
		Email:        b.Email,
		Phone:        b.Phone,
		DocumentType: b.DocumentType,
		Nationality:  b.Nationality,
	}
}

func (b *GuestBuilder) BuildDomain() *guest.Guest {
	return guest.Reconstruct(b.ID, b.BuildDraft(), b.Status)
}

func (b *GuestBuilder) BuildWire() wire.HuespedResponse {
	return wire.HuespedResponse{
		ID:             b.ID,
		Nombre:         b.Name,
		Apellido:       b.Surname,
		Email:          b.Email,
		Telefono:       b.Phone,
		TipoDocumento:  b.DocumentType,
		Nacionalidad:   b.Nationality,
		EstadoRegistro: string(b.Status),
	}
}
