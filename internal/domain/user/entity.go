package user

import (
	"hotel-console/internal/domain/lifecycle"
)

// User is an operator account. Username is the natural key the API deletes by.
type User struct {
	id       int64
	username string
	roles    []Role
	status   lifecycle.Status
}

func Reconstruct(id int64, username string, roles []Role, status lifecycle.Status) *User {
	return &User{
		id:       id,
		username: username,
		roles:    roles,
		status:   status,
	}
}

func (u *User) ID() int64                { return u.id }
func (u *User) Username() string         { return u.username }
func (u *User) Roles() []Role            { return append([]Role(nil), u.roles...) }
func (u *User) Status() lifecycle.Status { return u.status }

func (u *User) IsActive() bool {
	return u.status != lifecycle.StatusDeleted
}

func (u *User) HasRole(role Role) bool {
	for _, r := range u.roles {
		if r == role {
			return true
		}
	}
	return false
}

// PrimaryRole is the role the edit form preselects.
func (u *User) PrimaryRole() (Role, bool) {
	if len(u.roles) == 0 {
		return "", false
	}
	return u.roles[0], true
}

// RoleLabel renders the first role, or "-" when the account has none.
func (u *User) RoleLabel() string {
	r, ok := u.PrimaryRole()
	if !ok {
		return "-"
	}
	return r.Label()
}
