//go:build unit

package views_test

import (
	"context"
	"testing"

	"hotel-console/internal/domain/user"
	"hotel-console/internal/infra/gateway"
	"hotel-console/internal/pkg/errs"
	"hotel-console/internal/usecase/form"
	"hotel-console/internal/usecase/notify"
	"hotel-console/internal/usecase/views"
	"hotel-console/tests/common/builder"
	gatewaymock "hotel-console/tests/mock/gateway"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AccountViewTestSuite struct {
	suite.Suite
	mockCtrl    *gomock.Controller
	mockGateway *gatewaymock.MockUserGateway
	outbox      *notify.Outbox
	ctx         context.Context
	view        *views.AccountView
}

func (s *AccountViewTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockGateway = gatewaymock.NewMockUserGateway(s.mockCtrl)
	s.outbox = notify.NewOutbox()
	s.ctx = notify.WithOutbox(context.Background(), s.outbox)
	s.view = views.NewAccountView(s.mockGateway, newNotifier(), form.NewValidator())
}

// Every subtest starts from an empty view with fresh mocks.
func (s *AccountViewTestSuite) SetupSubTest() {
	s.SetupTest()
}

func (s *AccountViewTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *AccountViewTestSuite) TearDownSubTest() {
	s.mockCtrl.Finish()
}

func TestAccountViewSuite(t *testing.T) {
	suite.Run(t, new(AccountViewTestSuite))
}

func (s *AccountViewTestSuite) load(us ...*user.User) {
	s.mockGateway.EXPECT().List(gomock.Any()).Return(us).Times(1)
	s.view.Activate(s.ctx)
}

func (s *AccountViewTestSuite) TestBeginEdit() {
	s.load(builder.NewUserBuilder().WithID(7).WithRoles(user.RoleAdmin, user.RoleUser).BuildDomain())

	s.Require().NoError(s.view.BeginEdit(7))

	got := s.view.Editor().Value()
	s.Equal("recepcion1", got.Username)
	s.Empty(got.Password)
	s.Equal([]user.Role{user.RoleAdmin}, got.Roles)
	s.ErrorIs(s.view.BeginEdit(8), errs.ErrEntryNotFound)
}

func (s *AccountViewTestSuite) TestSubmit() {
	s.Run("edit keys the update by id and trims the username", func() {
		existing := builder.NewUserBuilder().WithID(7).BuildDomain()
		s.load(existing)

		want := user.Draft{Username: "recepcion2", Roles: []user.Role{user.RoleUser}}
		s.mockGateway.EXPECT().Update(gomock.Any(), "7", want).Return(existing, nil)
		s.mockGateway.EXPECT().List(gomock.Any()).Return([]*user.User{existing})

		s.Require().NoError(s.view.BeginEdit(7))
		s.Require().NoError(s.view.Patch([]byte(`{"username":"  recepcion2 "}`)))
		_, err := s.view.Submit(s.ctx)

		s.Require().NoError(err)
		s.False(s.view.Editor().IsOpen())
	})

	s.Run("create without password is rejected locally", func() {
		s.view.BeginCreate()
		s.Require().NoError(s.view.Patch([]byte(`{"username":"recepcion3","roles":["USER"]}`)))

		_, err := s.view.Submit(s.ctx)

		s.ErrorIs(err, errs.ErrFormInvalid)
		s.True(s.view.Editor().Snapshot().Errors.Has("password"))
	})

	s.Run("padded short username never reaches the API", func() {
		s.mockGateway.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

		s.view.BeginCreate()
		s.Require().NoError(s.view.Patch([]byte(`{"username":"   ab  ","password":"clave1234","roles":["USER"]}`)))
		_, err := s.view.Submit(s.ctx)

		s.ErrorIs(err, errs.ErrFormInvalid)
		s.True(s.view.Editor().IsOpen())
		s.Equal("min", s.view.Editor().Snapshot().Errors["username"].Rule)
	})

	s.Run("create", func() {
		draft := builder.NewUserBuilder().WithUsername("recepcion3").BuildDraft()
		created := builder.NewUserBuilder().WithID(9).WithUsername("recepcion3").BuildDomain()
		s.mockGateway.EXPECT().Create(gomock.Any(), draft).Return(created, nil)
		s.mockGateway.EXPECT().List(gomock.Any()).Return([]*user.User{created})

		s.view.BeginCreate()
		s.Require().NoError(s.view.Patch(mustJSON(s.T(), draft)))
		got, err := s.view.Submit(s.ctx)

		s.Require().NoError(err)
		s.Equal("recepcion3", got.Username())
		s.Equal("¡Creado!", s.outbox.Notifications()[0].Title)
	})
}

func (s *AccountViewTestSuite) TestGet() {
	s.Run("refreshes the listed row", func() {
		s.load(builder.NewUserBuilder().WithID(7).BuildDomain())
		fresh := builder.NewUserBuilder().WithID(7).WithRoles(user.RoleAdmin).BuildDomain()
		s.mockGateway.EXPECT().Get(gomock.Any(), int64(7)).Return(fresh, nil)

		got, err := s.view.Get(s.ctx, 7)

		s.Require().NoError(err)
		s.Same(fresh, got)
		s.Equal("Administrador", s.view.Items()[0].RoleLabel())
	})

	s.Run("failure", func() {
		s.mockGateway.EXPECT().Get(gomock.Any(), int64(7)).
			Return(nil, &gateway.Error{Status: 404, Category: gateway.CategoryNotFound})

		_, err := s.view.Get(s.ctx, 7)

		s.True(errs.Is(err, errs.ErrGatewayFailed))
	})
}

func (s *AccountViewTestSuite) TestDelete() {
	s.Run("removes by username without reloading", func() {
		s.load(
			builder.NewUserBuilder().WithID(1).WithUsername("admin01").BuildDomain(),
			builder.NewUserBuilder().WithID(2).WithUsername("recepcion1").BuildDomain(),
		)
		s.mockGateway.EXPECT().Delete(gomock.Any(), "recepcion1").Return(nil)

		s.Require().NoError(s.view.Delete(s.ctx, "recepcion1", notify.Answer(true)))

		items := s.view.Items()
		s.Require().Len(items, 1)
		s.Equal("admin01", items[0].Username())
	})

	s.Run("declined", func() {
		err := s.view.Delete(s.ctx, "recepcion1", notify.Answer(false))

		s.ErrorIs(err, errs.ErrDeleteDeclined)
		s.Equal(`El usuario "recepcion1" será eliminado permanentemente.`, s.outbox.Confirmation().Text)
	})
}
