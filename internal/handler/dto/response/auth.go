package response

import (
	"time"

	"hotel-console/internal/usecase"
)

type OperatorResponse struct {
	Username  string     `json:"username"`
	Roles     []string   `json:"roles"`
	IsAdmin   bool       `json:"isAdmin"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
}

func FromOperator(op *usecase.Operator) *OperatorResponse {
	roles := make([]string, len(op.Roles))
	for i, r := range op.Roles {
		roles[i] = r.String()
	}
	return &OperatorResponse{
		Username:  op.Username,
		Roles:     roles,
		IsAdmin:   op.IsAdmin(),
		ExpiresAt: op.ExpiresAt,
	}
}

type LoginResponse struct {
	AccessToken string            `json:"accessToken"`
	Operator    *OperatorResponse `json:"operator"`
}
