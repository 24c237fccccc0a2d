package user

import "strings"

type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleUser:
		return true
	default:
		return false
	}
}

// Label is the name the account list shows for a role.
func (r Role) Label() string {
	switch r {
	case RoleAdmin:
		return "Administrador"
	case RoleUser:
		return "Recepcionista"
	default:
		return "Desconocido"
	}
}

// NewRole accepts both "ADMIN" and the "ROLE_ADMIN" spelling some API builds return.
func NewRole(s string) (Role, error) {
	role := Role(strings.TrimPrefix(strings.ToUpper(strings.TrimSpace(s)), "ROLE_"))
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
