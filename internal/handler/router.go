package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"hotel-console/internal/domain/user"
	"hotel-console/internal/handler/api"
	"hotel-console/internal/handler/middleware"
	"hotel-console/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// Handlers groups every console handler for the router.
type Handlers struct {
	Auth         *api.AuthHandler
	Guests       *api.GuestHandler
	Rooms        *api.RoomHandler
	Accounts     *api.AccountHandler
	Reservations *api.ReservationHandler
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	logger *middleware.Logger,
	h Handlers,
	authMiddleware *middleware.AuthMiddleware,
	consoleMiddleware *middleware.ConsoleMiddleware,
) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware, consoleMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware, consoleMiddleware *middleware.ConsoleMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	consoleGroup := engine.Group("/console")
	consoleGroup.Use(consoleMiddleware.Outbox())
	{
		addRoutes(consoleGroup, []route{
			{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
		})

		authed := consoleGroup.Group("")
		authed.Use(authMiddleware.RequireAuth(), consoleMiddleware.Session())
		addRoutes(authed, []route{
			{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
		})

		guests := authed.Group("/guests")
		addRoutes(guests, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Guests.List},
			{Method: http.MethodGet, Path: "/search", Handler: h.Guests.Search},
			{Method: http.MethodGet, Path: "/lookup/:id", Handler: h.Guests.Lookup},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Guests.Detail},
			{Method: http.MethodPost, Path: "/editor", Handler: h.Guests.BeginCreate},
			{Method: http.MethodPost, Path: "/:id/editor", Handler: h.Guests.BeginEdit},
			{Method: http.MethodPatch, Path: "/editor", Handler: h.Guests.Patch},
			{Method: http.MethodPost, Path: "/editor/submit", Handler: h.Guests.Submit},
			{Method: http.MethodDelete, Path: "/editor", Handler: h.Guests.Cancel},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Guests.Delete},
		})

		rooms := authed.Group("/rooms")
		addRoutes(rooms, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Rooms.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Rooms.Get},
		})

		accounts := authed.Group("/accounts")
		adminOnly := []gin.HandlerFunc{authMiddleware.RequireRole(user.RoleAdmin)}
		addRoutes(accounts, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Accounts.List, Mw: adminOnly},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Accounts.Get, Mw: adminOnly},
			{Method: http.MethodPost, Path: "/editor", Handler: h.Accounts.BeginCreate, Mw: adminOnly},
			{Method: http.MethodPost, Path: "/:id/editor", Handler: h.Accounts.BeginEdit, Mw: adminOnly},
			{Method: http.MethodPatch, Path: "/editor", Handler: h.Accounts.Patch, Mw: adminOnly},
			{Method: http.MethodPost, Path: "/editor/submit", Handler: h.Accounts.Submit, Mw: adminOnly},
			{Method: http.MethodDelete, Path: "/editor", Handler: h.Accounts.Cancel, Mw: adminOnly},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Accounts.Delete, Mw: adminOnly},
		})

		reservations := authed.Group("/reservations")
		addRoutes(reservations, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Reservations.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Reservations.Get},
			{Method: http.MethodPost, Path: "/editor", Handler: h.Reservations.BeginCreate},
			{Method: http.MethodPost, Path: "/:id/editor", Handler: h.Reservations.BeginEdit},
			{Method: http.MethodPatch, Path: "/editor", Handler: h.Reservations.Patch},
			{Method: http.MethodPost, Path: "/editor/submit", Handler: h.Reservations.Submit},
			{Method: http.MethodDelete, Path: "/editor", Handler: h.Reservations.Cancel},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Reservations.Delete},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
