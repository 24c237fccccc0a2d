package form

import (
	"hotel-console/internal/domain/guest"
	"hotel-console/internal/domain/reservation"
	"hotel-console/internal/domain/user"
)

type (
	GuestEditor       = Editor[guest.Draft]
	AccountEditor     = Editor[user.Draft]
	ReservationEditor = Editor[reservation.Draft]
)

func NewGuestEditor(v *Validator) *GuestEditor {
	return NewEditor[guest.Draft](v)
}

// NewAccountEditor requires a password only while creating. On edit a blank
// password keeps the current one. The username is checked and sent trimmed.
func NewAccountEditor(v *Validator) *AccountEditor {
	return NewEditor[user.Draft](v, passwordOnCreate).Normalizing(user.Draft.Normalize)
}

func NewReservationEditor(v *Validator) *ReservationEditor {
	return NewEditor[reservation.Draft](v)
}

func passwordOnCreate(d user.Draft, mode Mode) FieldErrors {
	if mode == ModeCreating && d.Password == "" {
		return FieldErrors{"password": {Rule: "required"}}
	}
	return nil
}
