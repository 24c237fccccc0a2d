package user

import (
	"errors"
	"strings"
)

var ErrInvalidRole = errors.New("invalid role")

// Draft carries the account form. Password stays empty on edits that keep the
// current one.
type Draft struct {
	Username string `json:"username" validate:"required,min=5,max=20"`
	Password string `json:"password" validate:"omitempty,min=8,password"`
	Roles    []Role `json:"roles" validate:"required,min=1,dive,oneof=ADMIN USER"`
}

func (d Draft) Normalize() Draft {
	d.Username = strings.TrimSpace(d.Username)
	return d
}

// ParseRoles drops unknown roles instead of failing the whole record.
func ParseRoles(raw []string) []Role {
	roles := make([]Role, 0, len(raw))
	for _, s := range raw {
		if r, err := NewRole(s); err == nil {
			roles = append(roles, r)
		}
	}
	return roles
}
