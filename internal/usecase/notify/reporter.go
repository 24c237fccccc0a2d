package notify

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"hotel-console/internal/infra/gateway"
)

const (
	fallbackText = "Ocurrio un error inesperado"
	loginPath    = "login"
)

// GatewayReporter turns every failed API call into exactly one error modal.
type GatewayReporter struct {
	notifier *Notifier
}

func NewGatewayReporter(n *Notifier) *GatewayReporter {
	return &GatewayReporter{notifier: n}
}

func (r *GatewayReporter) Report(ctx context.Context, req *http.Request, err *gateway.Error) {
	title, text := Describe(req, err)
	r.notifier.Error(ctx, title, text)
}

// Describe picks the title and text shown for a failed call.
func Describe(req *http.Request, err *gateway.Error) (string, string) {
	if req != nil && strings.Contains(req.URL.Path, loginPath) {
		return "Error de autenticacion", "Las claves ingresadas son incorrectas, verificalas e intenta nuevamente."
	}

	msg := err.Message
	switch err.Category {
	case gateway.CategoryValidation:
		return "Solicitud incorrecta", orDefault(msg, fallbackText)
	case gateway.CategoryUnauthenticated:
		return "No autenticado", "Tu sesión ha expirado o no estás autenticado, inicia sesión nuevamente."
	case gateway.CategoryForbidden:
		return "Acceso denegado", "No tienes permisos para realizar esta acción."
	case gateway.CategoryNotFound:
		return "No encontrado", orDefault(msg, "El recurso solicitado no fue encontrado.")
	case gateway.CategoryConflict:
		return "Conflicto", orDefault(msg, "El recurso ya existe o está en uso.")
	case gateway.CategoryUnreachable:
		return "Sin conexión", "No se pudo conectar con el servidor, verifica tu conexión."
	}

	if err.Status == http.StatusInternalServerError {
		return "Error interno del servidor", orDefault(msg, "Se produjo un error interno, intenta nuevamente más tarde.")
	}
	return fmt.Sprintf("Error %d", err.Status), orDefault(msg, fallbackText)
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
