package reservation

import "regexp"

// Only the shape is checked here: day 00-31, month 01-12, hour 00-23, minute 00-59.
// Calendar validity and ordering are the API's business.
var stampRegex = regexp.MustCompile(`^([0-2][0-9]|3[0-1])/(0[1-9]|1[0-2])/\d{4} ([0-1][0-9]|2[0-3]):[0-5][0-9]$`)

func IsStamp(s string) bool {
	return stampRegex.MatchString(s)
}

// Stamp is a check-in or check-out value as the API exchanges it.
type Stamp string

func (s Stamp) String() string {
	return string(s)
}

type GuestSummary struct {
	ID          int64
	Name        string
	Email       string
	Phone       string
	Document    string
	Nationality string
}

type RoomSummary struct {
	ID       int64
	Number   int
	Kind     string
	Price    float64
	Capacity int
}

// Draft is the reservation editor value. Every field is required; the status is
// sent on create and through the separate status transition on edit.
type Draft struct {
	GuestID  int64    `json:"guestId" validate:"required"`
	RoomID   int64    `json:"roomId" validate:"required"`
	CheckIn  string   `json:"checkIn" validate:"required,stamp"`
	CheckOut string   `json:"checkOut" validate:"required,stamp"`
	StatusID StatusID `json:"statusId" validate:"required,oneof=1 2 3 4"`
}
