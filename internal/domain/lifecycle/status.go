package lifecycle

import "errors"

var ErrInvalidStatus = errors.New("invalid record status")

// Status is the soft-delete marker the API keeps on guests and operator accounts.
type Status string

const (
	StatusActive  Status = "ACTIVO"
	StatusDeleted Status = "ELIMINADO"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusDeleted:
		return true
	default:
		return false
	}
}

func NewStatus(s string) (Status, error) {
	if s == "" {
		return StatusActive, nil
	}
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}
