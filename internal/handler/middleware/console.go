package middleware

import (
	"hotel-console/internal/pkg/config"
	"hotel-console/internal/pkg/cookie"
	"hotel-console/internal/usecase/notify"
	"hotel-console/internal/usecase/session"

	"github.com/gin-gonic/gin"
)

const ctxConsoleKey = "console"

type ConsoleMiddleware struct {
	registry *session.Registry
	cookie   config.CookieConfig
	session  config.SessionConfig
}

func NewConsoleMiddleware(registry *session.Registry, cfg config.Config) *ConsoleMiddleware {
	return &ConsoleMiddleware{
		registry: registry,
		cookie:   cfg.Cookie,
		session:  cfg.Session,
	}
}

// Outbox gives every request its own notification outbox.
func (m *ConsoleMiddleware) Outbox() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := notify.WithOutbox(c.Request.Context(), notify.NewOutbox())
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// Session attaches the caller's console, creating one on first sight, and holds
// its lock until the request is done.
func (m *ConsoleMiddleware) Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		console, created := m.registry.Acquire(cookie.GetSession(c))
		if created {
			cookie.SetSession(c, m.cookie, console.ID, m.session.IdleTimeout)
		}

		console.Lock()
		defer console.Unlock()

		c.Set(ctxConsoleKey, console)
		c.Next()
	}
}

// EndSession forgets the caller's console.
func (m *ConsoleMiddleware) EndSession(c *gin.Context) {
	if id := cookie.GetSession(c); id != "" {
		m.registry.Drop(id)
	}
	cookie.ClearSession(c, m.cookie)
}

func GetConsole(c *gin.Context) (*session.Console, bool) {
	v, exists := c.Get(ctxConsoleKey)
	if !exists {
		return nil, false
	}
	console, ok := v.(*session.Console)
	return console, ok
}
