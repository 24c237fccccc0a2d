//go:build unit

package handler_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	nethttptest "net/http/httptest"
	"testing"
	"time"

	"hotel-console/internal/domain/guest"
	"hotel-console/internal/domain/reservation"
	"hotel-console/internal/domain/user"
	"hotel-console/internal/handler"
	"hotel-console/internal/handler/api"
	"hotel-console/internal/handler/httperr"
	"hotel-console/internal/handler/middleware"
	"hotel-console/internal/infra/gateway"
	"hotel-console/internal/pkg/clock"
	"hotel-console/internal/pkg/config"
	"hotel-console/internal/pkg/cookie"
	"hotel-console/internal/pkg/jwt"
	"hotel-console/internal/usecase"
	"hotel-console/internal/usecase/form"
	"hotel-console/internal/usecase/notify"
	"hotel-console/internal/usecase/session"
	"hotel-console/tests/common/authtest"
	"hotel-console/tests/common/builder"
	"hotel-console/tests/common/httptest"
	gatewaymock "hotel-console/tests/mock/gateway"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type envelope struct {
	Data json.RawMessage `json:"data"`
	Form *struct {
		Mode     string           `json:"mode"`
		TargetID int64            `json:"targetId"`
		Errors   form.FieldErrors `json:"errors"`
		Valid    bool             `json:"valid"`
	} `json:"form"`
	Notifications []notify.Notification `json:"notifications"`
	Confirmation  *notify.Confirmation  `json:"confirmation"`
}

type ConsoleRouterTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	guests       *gatewaymock.MockGuestGateway
	rooms        *gatewaymock.MockRoomGateway
	users        *gatewaymock.MockUserGateway
	reservations *gatewaymock.MockReservationGateway
	auth         *gatewaymock.MockAuthGateway
	registry     *session.Registry

	cookies    []*http.Cookie
	adminToken string
	userToken  string
}

func (s *ConsoleRouterTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	cfg := config.NewTestConfig()

	s.mockCtrl = gomock.NewController(s.T())
	s.guests = gatewaymock.NewMockGuestGateway(s.mockCtrl)
	s.rooms = gatewaymock.NewMockRoomGateway(s.mockCtrl)
	s.users = gatewaymock.NewMockUserGateway(s.mockCtrl)
	s.reservations = gatewaymock.NewMockReservationGateway(s.mockCtrl)
	s.auth = gatewaymock.NewMockAuthGateway(s.mockCtrl)

	clk := clock.NewRealClock()
	validator := form.NewValidator()
	notifier := notify.NewNotifier(cfg.Notify, clk)
	factory := session.NewFactory(session.Gateways{
		Guests:       s.guests,
		Rooms:        s.rooms,
		Users:        s.users,
		Reservations: s.reservations,
	}, notifier, validator)
	s.registry = session.NewRegistry(cfg.Session, factory, clk, slog.New(slog.NewTextHandler(io.Discard, nil)))

	tokenValidator := usecase.NewTokenValidator(jwt.NewReader(nil))
	authMW := middleware.NewAuthMiddleware(tokenValidator)
	consoleMW := middleware.NewConsoleMiddleware(s.registry, cfg)

	s.router = gin.New()
	handler.NewRouter(s.router, cfg, middleware.NewLogger(cfg.Log), handler.Handlers{
		Auth:         api.NewAuthHandler(usecase.NewAuthUseCase(s.auth, tokenValidator), consoleMW, cfg),
		Guests:       api.NewGuestHandler(),
		Rooms:        api.NewRoomHandler(),
		Accounts:     api.NewAccountHandler(),
		Reservations: api.NewReservationHandler(),
	}, authMW, consoleMW)

	s.cookies = nil
	s.adminToken = authtest.GenerateToken(s.T(), "admin01", time.Hour, "ROLE_ADMIN")
	s.userToken = authtest.GenerateToken(s.T(), "recepcion1", time.Hour, "ROLE_USER")
}

func (s *ConsoleRouterTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestConsoleRouterSuite(t *testing.T) {
	suite.Run(t, new(ConsoleRouterTestSuite))
}

// do sends a request as the admin, keeping the console session cookie between calls.
func (s *ConsoleRouterTestSuite) do(method, path string, body any) *nethttptest.ResponseRecorder {
	return s.doAs(s.adminToken, method, path, body)
}

func (s *ConsoleRouterTestSuite) doAs(token, method, path string, body any) *nethttptest.ResponseRecorder {
	rec := httptest.PerformRequestWithCookies(s.T(), s.router, method, path, body, s.cookies, token)
	if c := httptest.ExtractCookie(rec, cookie.SessionCookieName); c != nil && c.Value != "" {
		s.cookies = []*http.Cookie{c}
	}
	return rec
}

func (s *ConsoleRouterTestSuite) decode(rec *nethttptest.ResponseRecorder, status int) envelope {
	var env envelope
	httptest.AssertSuccessResponse(s.T(), rec, status, &env)
	return env
}

func (s *ConsoleRouterTestSuite) decodeError(rec *nethttptest.ResponseRecorder, status int) httperr.Response {
	s.Require().Equal(status, rec.Code, rec.Body.String())
	var resp httperr.Response
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func (s *ConsoleRouterTestSuite) loadGuests(gs ...*guest.Guest) {
	s.guests.EXPECT().List(gomock.Any()).Return(gs).Times(1)
	rec := s.do(http.MethodGet, "/console/guests", nil)
	s.Require().Equal(http.StatusOK, rec.Code)
}

// ================================================================================
// Authentication
// ================================================================================

func (s *ConsoleRouterTestSuite) TestAuthentication() {
	s.Run("no token", func() {
		rec := s.doAs("", http.MethodGet, "/console/guests", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})

	s.Run("expired token", func() {
		rec := s.doAs(authtest.CreateExpiredToken(s.T(), "admin01", "ADMIN"), http.MethodGet, "/console/guests", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Token expired")
	})

	s.Run("malformed token", func() {
		rec := s.doAs("not-a-jwt", http.MethodGet, "/console/guests", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid token")
	})

	s.Run("me", func() {
		env := s.decode(s.do(http.MethodGet, "/console/me", nil), http.StatusOK)

		var op struct {
			Username string   `json:"username"`
			Roles    []string `json:"roles"`
			IsAdmin  bool     `json:"isAdmin"`
		}
		s.Require().NoError(json.Unmarshal(env.Data, &op))
		s.Equal("admin01", op.Username)
		s.Equal([]string{"ADMIN"}, op.Roles)
		s.True(op.IsAdmin)
	})
}

func (s *ConsoleRouterTestSuite) TestLoginLogout() {
	s.Run("login sets the token cookie", func() {
		s.auth.EXPECT().Login(gomock.Any(), "admin01", "clave1234").Return(s.adminToken, nil)

		rec := s.doAs("", http.MethodPost, "/console/login", map[string]string{
			"username": " admin01 ",
			"password": "clave1234",
		})

		s.decode(rec, http.StatusOK)
		httptest.AssertHeaders(s.T(), rec, map[string]string{
			"Content-Type": "application/json; charset=utf-8",
		})
		c := httptest.ExtractCookie(rec, cookie.AccessTokenCookieName)
		s.Require().NotNil(c)
		s.Equal(s.adminToken, c.Value)
		s.True(c.HttpOnly)
	})

	s.Run("missing password", func() {
		rec := s.doAs("", http.MethodPost, "/console/login", map[string]string{"username": "admin01"})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("rejected credentials keep the API status", func() {
		s.auth.EXPECT().Login(gomock.Any(), "admin01", "mala").
			Return("", &gateway.Error{Status: 401, Category: gateway.CategoryUnauthenticated})

		rec := s.doAs("", http.MethodPost, "/console/login", map[string]string{
			"username": "admin01",
			"password": "mala",
		})

		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	s.Run("logout forgets the session", func() {
		s.loadGuests()
		s.Require().Equal(1, s.registry.Len())

		rec := s.do(http.MethodPost, "/console/logout", nil)

		s.Equal(http.StatusNoContent, rec.Code)
		s.Equal(0, s.registry.Len())
		c := httptest.ExtractCookie(rec, cookie.AccessTokenCookieName)
		s.Require().NotNil(c)
		s.Empty(c.Value)
	})
}

// ================================================================================
// Sessions
// ================================================================================

func (s *ConsoleRouterTestSuite) TestSessionKeepsViewState() {
	s.loadGuests(builder.NewGuestBuilder().WithID(2).BuildDomain())
	s.Require().NotEmpty(s.cookies)

	rec := s.do(http.MethodGet, "/console/guests/2", nil)
	s.decode(rec, http.StatusOK)

	s.cookies = nil
	rec = s.do(http.MethodGet, "/console/guests/2", nil)
	httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Entry not found")
}

// ================================================================================
// Guests
// ================================================================================

func (s *ConsoleRouterTestSuite) TestGuestSearch() {
	s.Run("invalid id", func() {
		resp := s.decodeError(s.do(http.MethodGet, "/console/guests/search?id=abc", nil), http.StatusBadRequest)
		s.Equal("Invalid ID format", resp.Error.Message)
		detail, ok := resp.Detail.(map[string]any)
		s.Require().True(ok)
		s.Equal("Ingrese un ID numérico mayor que cero.", detail["message"])
	})

	s.Run("not found answers 200 with a message", func() {
		s.guests.EXPECT().Get(gomock.Any(), int64(40)).
			Return(nil, &gateway.Error{Status: 404, Category: gateway.CategoryNotFound})

		env := s.decode(s.do(http.MethodGet, "/console/guests/search?id=40", nil), http.StatusOK)

		s.JSONEq(`{"found":false,"message":"Huésped no encontrado."}`, string(env.Data))
	})

	s.Run("lookup route", func() {
		s.guests.EXPECT().GetByGuestID(gomock.Any(), int64(7)).
			Return(builder.NewGuestBuilder().WithID(7).BuildDomain(), nil)

		env := s.decode(s.do(http.MethodGet, "/console/guests/lookup/7", nil), http.StatusOK)

		var body struct {
			Found bool `json:"found"`
			Guest struct {
				ID       int64  `json:"id"`
				FullName string `json:"fullName"`
			} `json:"guest"`
		}
		s.Require().NoError(json.Unmarshal(env.Data, &body))
		s.True(body.Found)
		s.Equal(int64(7), body.Guest.ID)
		s.Equal("Ana Torres", body.Guest.FullName)
	})
}

func (s *ConsoleRouterTestSuite) TestGuestEditor() {
	s.Run("patch without an open form", func() {
		rec := s.do(http.MethodPatch, "/console/guests/editor", map[string]any{"name": "Ana"})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "No form is open")
	})

	s.Run("touched fields carry their errors", func() {
		env := s.decode(s.do(http.MethodPost, "/console/guests/editor", nil), http.StatusOK)
		s.Require().NotNil(env.Form)
		s.Equal("CREATING", env.Form.Mode)
		s.Empty(env.Form.Errors)

		env = s.decode(s.do(http.MethodPatch, "/console/guests/editor", map[string]any{"email": "no-es-email"}), http.StatusOK)
		s.Equal([]string{"email"}, env.Form.Errors.Fields())
		s.False(env.Form.Valid)
	})

	s.Run("submit of an incomplete form is 422 with every error", func() {
		resp := s.decodeError(s.do(http.MethodPost, "/console/guests/editor/submit", nil), http.StatusUnprocessableEntity)
		detail, ok := resp.Detail.(map[string]any)
		s.Require().True(ok)
		fieldErrs, ok := detail["errors"].(map[string]any)
		s.Require().True(ok)
		s.Len(fieldErrs, 6)
	})

	s.Run("API conflict keeps the API status and message", func() {
		s.guests.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(nil, &gateway.Error{Status: 409, Category: gateway.CategoryConflict, Message: "Ya existe"})

		s.decode(s.do(http.MethodPatch, "/console/guests/editor", builder.NewGuestBuilder().BuildDraft()), http.StatusOK)
		rec := s.do(http.MethodPost, "/console/guests/editor/submit", nil)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Ya existe")
	})

	s.Run("successful submit returns the reloaded list", func() {
		created := builder.NewGuestBuilder().WithID(9).BuildDomain()
		s.guests.EXPECT().Create(gomock.Any(), builder.NewGuestBuilder().BuildDraft()).Return(created, nil)
		s.guests.EXPECT().List(gomock.Any()).Return([]*guest.Guest{created})

		env := s.decode(s.do(http.MethodPost, "/console/guests/editor/submit", nil), http.StatusOK)

		var body struct {
			Saved struct {
				ID int64 `json:"id"`
			} `json:"saved"`
			Items []json.RawMessage `json:"items"`
		}
		s.Require().NoError(json.Unmarshal(env.Data, &body))
		s.Equal(int64(9), body.Saved.ID)
		s.Len(body.Items, 1)
		s.Nil(env.Form)
		s.Require().Len(env.Notifications, 1)
		s.Equal(notify.KindSuccess, env.Notifications[0].Kind)
	})
}

func (s *ConsoleRouterTestSuite) TestGuestDelete() {
	s.loadGuests(builder.NewGuestBuilder().WithID(3).WithName("Luis", "Pérez").BuildDomain())

	s.Run("unconfirmed returns the prompt", func() {
		env := s.decode(s.do(http.MethodDelete, "/console/guests/3", nil), http.StatusOK)

		s.Require().NotNil(env.Confirmation)
		s.Equal("¿Estás seguro?", env.Confirmation.Title)
		s.Equal("¿Eliminar a Luis Pérez?", env.Confirmation.Text)
	})

	s.Run("confirmed deletes and reloads", func() {
		gomock.InOrder(
			s.guests.EXPECT().Delete(gomock.Any(), int64(3)).Return(nil),
			s.guests.EXPECT().List(gomock.Any()).Return(nil),
		)

		env := s.decode(s.do(http.MethodDelete, "/console/guests/3?confirm=true", nil), http.StatusOK)

		s.JSONEq(`[]`, string(env.Data))
		s.Nil(env.Confirmation)
	})

	s.Run("bad id", func() {
		rec := s.do(http.MethodDelete, "/console/guests/x?confirm=true", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid ID format")
	})
}

// ================================================================================
// Accounts
// ================================================================================

func (s *ConsoleRouterTestSuite) TestAccountsAreAdminOnly() {
	s.Run("receptionist is refused", func() {
		rec := s.doAs(s.userToken, http.MethodGet, "/console/accounts", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Insufficient permissions")
	})

	s.Run("admin lists accounts", func() {
		s.users.EXPECT().List(gomock.Any()).Return([]*user.User{
			builder.NewUserBuilder().WithID(1).WithUsername("admin01").WithRoles(user.RoleAdmin).BuildDomain(),
		})

		env := s.decode(s.do(http.MethodGet, "/console/accounts", nil), http.StatusOK)

		var items []struct {
			Username string `json:"username"`
		}
		s.Require().NoError(json.Unmarshal(env.Data, &items))
		s.Require().Len(items, 1)
		s.Equal("admin01", items[0].Username)
	})

	s.Run("delete by username", func() {
		s.users.EXPECT().Delete(gomock.Any(), "admin01").Return(nil)

		env := s.decode(s.do(http.MethodDelete, "/console/accounts/admin01?confirm=true", nil), http.StatusOK)

		s.JSONEq(`[]`, string(env.Data))
	})
}

// ================================================================================
// Reservations
// ================================================================================

func (s *ConsoleRouterTestSuite) TestReservations() {
	s.reservations.EXPECT().List(gomock.Any()).Return([]*reservation.Reservation{
		builder.NewReservationBuilder().WithID(10).BuildDomain(),
	})
	env := s.decode(s.do(http.MethodGet, "/console/reservations", nil), http.StatusOK)

	var list struct {
		Items    []json.RawMessage            `json:"items"`
		Statuses []reservation.StatusOption `json:"statuses"`
	}
	s.Require().NoError(json.Unmarshal(env.Data, &list))
	s.Len(list.Items, 1)
	s.Equal(reservation.Statuses(), list.Statuses)

	s.Run("rejected status flags the row and warns", func() {
		updated := builder.NewReservationBuilder().WithID(10).BuildDomain()
		gomock.InOrder(
			s.reservations.EXPECT().Update(gomock.Any(), int64(10), gomock.Any()).Return(updated, nil),
			s.reservations.EXPECT().UpdateStatus(gomock.Any(), int64(10), reservation.StatusCancelled).
				Return(&gateway.Error{Status: 409, Category: gateway.CategoryConflict, Message: "Transición inválida"}),
		)

		s.decode(s.do(http.MethodPost, "/console/reservations/10/editor", nil), http.StatusOK)
		s.decode(s.do(http.MethodPatch, "/console/reservations/editor", map[string]any{"statusId": 4}), http.StatusOK)
		resp := s.decodeError(s.do(http.MethodPost, "/console/reservations/editor/submit", nil), http.StatusConflict)

		s.Equal("Transición inválida", resp.Error.Message)
		s.Require().Len(resp.Notifications, 1)
		s.Equal(notify.KindWarning, resp.Notifications[0].Kind)
		detail, ok := resp.Detail.(map[string]any)
		s.Require().True(ok)
		s.Equal("EDITING", detail["mode"])
	})

	s.Run("delete without confirm asks first", func() {
		env := s.decode(s.do(http.MethodDelete, "/console/reservations/10", nil), http.StatusOK)
		s.NotNil(env.Confirmation)
	})
}
