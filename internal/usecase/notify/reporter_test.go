//go:build unit

package notify_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"hotel-console/internal/infra/gateway"
	"hotel-console/internal/usecase/notify"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescribe(t *testing.T) {
	guests := httptest.NewRequest(http.MethodPost, "http://api.local/api/huespedes", nil)
	login := httptest.NewRequest(http.MethodPost, "http://api.local/api/auth/login", nil)

	tests := []struct {
		name      string
		req       *http.Request
		err       *gateway.Error
		wantTitle string
		wantText  string
	}{
		{
			name:      "validation with message",
			req:       guests,
			err:       &gateway.Error{Status: 400, Category: gateway.CategoryValidation, Message: "Email inválido"},
			wantTitle: "Solicitud incorrecta",
			wantText:  "Email inválido",
		},
		{
			name:      "validation without message falls back",
			req:       guests,
			err:       &gateway.Error{Status: 400, Category: gateway.CategoryValidation},
			wantTitle: "Solicitud incorrecta",
			wantText:  "Ocurrio un error inesperado",
		},
		{
			name:      "conflict keeps the API's message",
			req:       guests,
			err:       &gateway.Error{Status: 409, Category: gateway.CategoryConflict, Message: "Ya existe"},
			wantTitle: "Conflicto",
			wantText:  "Ya existe",
		},
		{
			name:      "unauthenticated",
			req:       guests,
			err:       &gateway.Error{Status: 401, Category: gateway.CategoryUnauthenticated, Message: "ignored"},
			wantTitle: "No autenticado",
			wantText:  "Tu sesión ha expirado o no estás autenticado, inicia sesión nuevamente.",
		},
		{
			name:      "forbidden",
			req:       guests,
			err:       &gateway.Error{Status: 403, Category: gateway.CategoryForbidden},
			wantTitle: "Acceso denegado",
			wantText:  "No tienes permisos para realizar esta acción.",
		},
		{
			name:      "not found default",
			req:       guests,
			err:       &gateway.Error{Status: 404, Category: gateway.CategoryNotFound},
			wantTitle: "No encontrado",
			wantText:  "El recurso solicitado no fue encontrado.",
		},
		{
			name:      "unreachable",
			req:       guests,
			err:       &gateway.Error{Status: 0, Category: gateway.CategoryUnreachable},
			wantTitle: "Sin conexión",
			wantText:  "No se pudo conectar con el servidor, verifica tu conexión.",
		},
		{
			name:      "internal server error",
			req:       guests,
			err:       &gateway.Error{Status: 500, Category: gateway.CategoryServer},
			wantTitle: "Error interno del servidor",
			wantText:  "Se produjo un error interno, intenta nuevamente más tarde.",
		},
		{
			name:      "other status",
			req:       guests,
			err:       &gateway.Error{Status: 418, Category: gateway.CategoryServer},
			wantTitle: "Error 418",
			wantText:  "Ocurrio un error inesperado",
		},
		{
			name:      "login failure always reads as bad credentials",
			req:       login,
			err:       &gateway.Error{Status: 500, Category: gateway.CategoryServer, Message: "boom"},
			wantTitle: "Error de autenticacion",
			wantText:  "Las claves ingresadas son incorrectas, verificalas e intenta nuevamente.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			title, text := notify.Describe(tt.req, tt.err)
			assert.Equal(t, tt.wantTitle, title)
			assert.Equal(t, tt.wantText, text)
		})
	}
}

func TestGatewayReporter(t *testing.T) {
	out := notify.NewOutbox()
	ctx := notify.WithOutbox(context.Background(), out)
	req := httptest.NewRequest(http.MethodDelete, "http://api.local/api/huespedes/4", nil)

	notify.NewGatewayReporter(newNotifier()).Report(ctx, req,
		&gateway.Error{Status: 409, Category: gateway.CategoryConflict, Message: "El huésped tiene reservas"})

	got := out.Notifications()
	require.Len(t, got, 1)
	assert.Equal(t, notify.KindError, got[0].Kind)
	assert.True(t, got[0].Modal)
	assert.Equal(t, "Conflicto", got[0].Title)
	assert.Equal(t, "El huésped tiene reservas", got[0].Text)
}
