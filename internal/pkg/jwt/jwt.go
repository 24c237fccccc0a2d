package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

// Claims is the subset of the API token the console needs to gate its views.
// Signature checks belong to the API; the console only reads.
type Claims struct {
	Subject   string
	Roles     []string
	ExpiresAt *time.Time
}

type tokenClaims struct {
	Roles       []string `json:"roles,omitempty"`
	Role        string   `json:"role,omitempty"`
	Authorities []string `json:"authorities,omitempty"`
	jwt.RegisteredClaims
}

type Reader struct {
	parser *jwt.Parser
	now    func() time.Time
}

func NewReader(now func() time.Time) *Reader {
	if now == nil {
		now = time.Now
	}
	return &Reader{
		parser: jwt.NewParser(),
		now:    now,
	}
}

func (r *Reader) Read(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, ErrInvalidToken
	}

	var tc tokenClaims
	if _, _, err := r.parser.ParseUnverified(tokenString, &tc); err != nil {
		return nil, ErrInvalidToken
	}

	claims := &Claims{Subject: tc.Subject}
	claims.Roles = append(claims.Roles, tc.Roles...)
	claims.Roles = append(claims.Roles, tc.Authorities...)
	if tc.Role != "" {
		claims.Roles = append(claims.Roles, tc.Role)
	}

	if tc.ExpiresAt != nil {
		exp := tc.ExpiresAt.Time
		claims.ExpiresAt = &exp
		if r.now().After(exp) {
			return claims, ErrExpiredToken
		}
	}

	return claims, nil
}
