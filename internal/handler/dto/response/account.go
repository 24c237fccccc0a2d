package response

import "hotel-console/internal/domain/user"

type AccountResponse struct {
	ID        int64    `json:"id"`
	Username  string   `json:"username"`
	Roles     []string `json:"roles"`
	RoleLabel string   `json:"roleLabel"`
	Status    string   `json:"status"`
	Active    bool     `json:"active"`
	Admin     bool     `json:"admin"`
}

func FromUser(u *user.User) *AccountResponse {
	roles := u.Roles()
	names := make([]string, len(roles))
	for i, r := range roles {
		names[i] = r.String()
	}
	return &AccountResponse{
		ID:        u.ID(),
		Username:  u.Username(),
		Roles:     names,
		RoleLabel: u.RoleLabel(),
		Status:    u.Status().String(),
		Active:    u.IsActive(),
		Admin:     u.HasRole(user.RoleAdmin),
	}
}

func FromUsers(us []*user.User) []*AccountResponse {
	out := make([]*AccountResponse, len(us))
	for i, u := range us {
		out[i] = FromUser(u)
	}
	return out
}
