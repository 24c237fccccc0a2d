//go:build unit || e2e

package builder

import (
	"hotel-console/internal/domain/lifecycle"
	"hotel-console/internal/domain/user"
	"hotel-console/internal/infra/gateway/wire"
)

type UserBuilder struct {
	ID       int64
	Username string
	Password string
	Roles    []user.Role
	Status   lifecycle.Status
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:       7,
		Username: "recepcion1",
		Password: "clave1234",
		Roles:    []user.Role{user.RoleUser},
		Status:   lifecycle.StatusActive,
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// Build methods
func (u *UserBuilder) BuildDomain() *user.User {
	return user.Reconstruct(u.ID, u.Username, u.Roles, u.Status)
}

func (u *UserBuilder) BuildDraft() user.Draft {
	return user.Draft{
		Username: u.Username,
		Password: u.Password,
		Roles:    append([]user.Role(nil), u.Roles...),
	}
}

func (u *UserBuilder) BuildWire() wire.UsuarioResponse {
	roles := make([]string, len(u.Roles))
	for i, r := range u.Roles {
		roles[i] = "ROLE_" + r.String()
	}
	return wire.UsuarioResponse{
		ID:             u.ID,
		Username:       u.Username,
		Roles:          roles,
		EstadoRegistro: string(u.Status),
	}
}

// Fluent builder methods
func (u *UserBuilder) WithID(id int64) *UserBuilder {
	u.ID = id
	return u
}

func (u *UserBuilder) WithUsername(username string) *UserBuilder {
	u.Username = username
	return u
}

func (u *UserBuilder) WithRoles(roles ...user.Role) *UserBuilder {
	u.Roles = roles
	return u
}

func (u *UserBuilder) AsDeleted() *UserBuilder {
	u.Status = lifecycle.StatusDeleted
	return u
}
