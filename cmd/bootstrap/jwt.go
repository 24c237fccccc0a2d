package bootstrap

import (
	"hotel-console/internal/pkg/clock"
	"hotel-console/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTReader,
	),
)

// NewJWTReader reads the API's tokens. The console cannot verify them; the API
// rejects forged ones on the next call.
func NewJWTReader(clk clock.Clock) *jwt.Reader {
	return jwt.NewReader(clk.Now)
}
