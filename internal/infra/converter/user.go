package converter

import (
	"hotel-console/internal/domain/user"
	"hotel-console/internal/infra/gateway/wire"
)

func UserToWire(d user.Draft) wire.UsuarioRequest {
	roles := make([]string, len(d.Roles))
	for i, r := range d.Roles {
		roles[i] = r.String()
	}
	return wire.UsuarioRequest{
		Username: d.Username,
		Password: d.Password,
		Roles:    roles,
	}
}

func UserFromWire(r wire.UsuarioResponse) *user.User {
	return user.Reconstruct(r.ID, r.Username, user.ParseRoles(r.Roles), recordStatus(r.EstadoRegistro))
}

func UsersFromWire(rs []wire.UsuarioResponse) []*user.User {
	out := make([]*user.User, len(rs))
	for i, r := range rs {
		out[i] = UserFromWire(r)
	}
	return out
}
