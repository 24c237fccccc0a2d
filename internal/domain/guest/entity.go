package guest

import (
	"strings"

	"hotel-console/internal/domain/lifecycle"
)

// Guest mirrors a hotel customer record owned by the API.
type Guest struct {
	id           int64
	name         string
	surname      string
	email        string
	phone        string
	documentType string
	nationality  string
	status       lifecycle.Status
}

// Draft is the editable part of a guest, shared by create and edit forms.
type Draft struct {
	Name         string `json:"name" validate:"required,min=2,max=50"`
	Surname      string `json:"surname" validate:"required,min=2,max=50"`
	Email        string `json:"email" validate:"required,email"`
	Phone        string `json:"phone" validate:"required,len=10,number"`
	DocumentType string `json:"documentType" validate:"required"`
	Nationality  string `json:"nationality" validate:"required"`
}

func Reconstruct(id int64, d Draft, status lifecycle.Status) *Guest {
	return &Guest{
		id:           id,
		name:         d.Name,
		surname:      d.Surname,
		email:        d.Email,
		phone:        d.Phone,
		documentType: d.DocumentType,
		nationality:  d.Nationality,
		status:       status,
	}
}

func (g *Guest) ID() int64                { return g.id }
func (g *Guest) Name() string             { return g.name }
func (g *Guest) Surname() string          { return g.surname }
func (g *Guest) Email() string            { return g.email }
func (g *Guest) Phone() string            { return g.phone }
func (g *Guest) DocumentType() string     { return g.documentType }
func (g *Guest) Nationality() string      { return g.nationality }
func (g *Guest) Status() lifecycle.Status { return g.status }

// Draft returns the editable fields, as the edit form starts from them.
func (g *Guest) Draft() Draft {
	return Draft{
		Name:         g.name,
		Surname:      g.surname,
		Email:        g.email,
		Phone:        g.phone,
		DocumentType: g.documentType,
		Nationality:  g.nationality,
	}
}

func (g *Guest) IsDeleted() bool {
	return g.status == lifecycle.StatusDeleted
}

func (g *Guest) FullName() string {
	return strings.TrimSpace(g.name + " " + g.surname)
}

// Initials is what the guest list shows in its avatar column.
func (g *Guest) Initials() string {
	var b strings.Builder
	for _, part := range []string{g.name, g.surname} {
		for _, r := range part {
			b.WriteRune(r)
			break
		}
	}
	return strings.ToUpper(b.String())
}
