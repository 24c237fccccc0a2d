package response

import "hotel-console/internal/domain/guest"

type GuestResponse struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Surname      string `json:"surname"`
	FullName     string `json:"fullName"`
	Initials     string `json:"initials"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	DocumentType string `json:"documentType"`
	Nationality  string `json:"nationality"`
	Status       string `json:"status"`
	Deleted      bool   `json:"deleted"`
}

func FromGuest(g *guest.Guest) *GuestResponse {
	if g == nil {
		return nil
	}
	return &GuestResponse{
		ID:           g.ID(),
		Name:         g.Name(),
		Surname:      g.Surname(),
		FullName:     g.FullName(),
		Initials:     g.Initials(),
		Email:        g.Email(),
		Phone:        g.Phone(),
		DocumentType: g.DocumentType(),
		Nationality:  g.Nationality(),
		Status:       g.Status().String(),
		Deleted:      g.IsDeleted(),
	}
}

func FromGuests(gs []*guest.Guest) []*GuestResponse {
	out := make([]*GuestResponse, len(gs))
	for i, g := range gs {
		out[i] = FromGuest(g)
	}
	return out
}

type GuestSearchResponse struct {
	Found   bool           `json:"found"`
	Guest   *GuestResponse `json:"guest,omitempty"`
	Message string         `json:"message,omitempty"`
}
