package usecase

import (
	"time"

	"hotel-console/internal/domain/user"
	"hotel-console/internal/pkg/jwt"
)

// Operator is who the console believes is signed in, as read from the API token.
type Operator struct {
	Username  string
	Roles     []user.Role
	ExpiresAt *time.Time
}

func (o *Operator) IsAdmin() bool {
	for _, r := range o.Roles {
		if r == user.RoleAdmin {
			return true
		}
	}
	return false
}

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (*Operator, error)
}

type tokenValidatorImpl struct {
	reader *jwt.Reader
}

func NewTokenValidator(reader *jwt.Reader) TokenValidator {
	return &tokenValidatorImpl{
		reader: reader,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (*Operator, error) {
	claims, err := t.reader.Read(tokenString)
	if err != nil {
		return nil, err
	}

	return &Operator{
		Username:  claims.Subject,
		Roles:     user.ParseRoles(claims.Roles),
		ExpiresAt: claims.ExpiresAt,
	}, nil
}
