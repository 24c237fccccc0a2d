//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"hotel-console/internal/domain/user"
	"hotel-console/internal/infra/gateway"
	"hotel-console/internal/pkg/jwt"
	"hotel-console/internal/usecase"
	"hotel-console/tests/common/authtest"
	gatewaymock "hotel-console/tests/mock/gateway"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthUseCaseTestSuite struct {
	suite.Suite
	mockCtrl    *gomock.Controller
	mockGateway *gatewaymock.MockAuthGateway
	useCase     usecase.AuthUseCase
}

func (s *AuthUseCaseTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockGateway = gatewaymock.NewMockAuthGateway(s.mockCtrl)
	s.useCase = usecase.NewAuthUseCase(s.mockGateway, usecase.NewTokenValidator(jwt.NewReader(nil)))
}

func (s *AuthUseCaseTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthUseCaseSuite(t *testing.T) {
	suite.Run(t, new(AuthUseCaseTestSuite))
}

func (s *AuthUseCaseTestSuite) TestLogin() {
	s.Run("success", func() {
		token := authtest.GenerateToken(s.T(), "admin01", time.Hour, "ROLE_ADMIN", "USER")
		s.mockGateway.EXPECT().Login(gomock.Any(), "admin01", "clave1234").Return(token, nil)

		got, op, err := s.useCase.Login(context.Background(), "admin01", "clave1234")

		s.Require().NoError(err)
		s.Equal(token, got)
		s.Equal("admin01", op.Username)
		s.Equal([]user.Role{user.RoleAdmin, user.RoleUser}, op.Roles)
		s.True(op.IsAdmin())
	})

	s.Run("blank credentials never reach the API", func() {
		_, _, err := s.useCase.Login(context.Background(), "", "clave1234")
		s.ErrorIs(err, usecase.ErrInvalidCredentials)
		_, _, err = s.useCase.Login(context.Background(), "admin01", "")
		s.ErrorIs(err, usecase.ErrInvalidCredentials)
	})

	s.Run("rejected by the API", func() {
		apiErr := &gateway.Error{Status: 401, Category: gateway.CategoryUnauthenticated}
		s.mockGateway.EXPECT().Login(gomock.Any(), "admin01", "wrong").Return("", apiErr)

		_, _, err := s.useCase.Login(context.Background(), "admin01", "wrong")

		s.ErrorIs(err, apiErr)
	})

	s.Run("unreadable token", func() {
		s.mockGateway.EXPECT().Login(gomock.Any(), "admin01", "clave1234").Return("garbage", nil)

		_, _, err := s.useCase.Login(context.Background(), "admin01", "clave1234")

		s.ErrorIs(err, usecase.ErrAuthenticationFailed)
	})
}

func (s *AuthUseCaseTestSuite) TestOperatorIsAdmin() {
	s.False((&usecase.Operator{Roles: []user.Role{user.RoleUser}}).IsAdmin())
	s.True((&usecase.Operator{Roles: []user.Role{user.RoleUser, user.RoleAdmin}}).IsAdmin())
}
