package usecase

import (
	"context"
	"errors"

	"hotel-console/internal/usecase/shared"
)

var (
	ErrInvalidCredentials   = errors.New("invalid username or password")
	ErrAuthenticationFailed = errors.New("authentication failed")
)

type AuthUseCase interface {
	Login(ctx context.Context, username, password string) (string, *Operator, error)
}

type authUseCaseImpl struct {
	auth      shared.AuthGateway
	validator TokenValidator
}

func NewAuthUseCase(auth shared.AuthGateway, validator TokenValidator) AuthUseCase {
	return &authUseCaseImpl{
		auth:      auth,
		validator: validator,
	}
}

// Login trades credentials for the API's token and reads the operator from it.
// The API has already notified the operator when the credentials were rejected.
func (a *authUseCaseImpl) Login(ctx context.Context, username, password string) (string, *Operator, error) {
	if username == "" || password == "" {
		return "", nil, ErrInvalidCredentials
	}

	token, err := a.auth.Login(ctx, username, password)
	if err != nil {
		return "", nil, err
	}

	op, err := a.validator.ValidateToken(token)
	if err != nil {
		return "", nil, ErrAuthenticationFailed
	}
	return token, op, nil
}
