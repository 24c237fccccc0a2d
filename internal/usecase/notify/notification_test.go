//go:build unit

package notify_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"hotel-console/internal/pkg/clock"
	"hotel-console/internal/pkg/config"
	"hotel-console/internal/usecase/notify"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)

func newNotifier() *notify.Notifier {
	return notify.NewNotifier(config.NotifyConfig{AutoDismiss: 2 * time.Second}, clock.NewMockClock(fixedNow))
}

func TestNotifier(t *testing.T) {
	n := newNotifier()
	out := notify.NewOutbox()
	ctx := notify.WithOutbox(context.Background(), out)

	n.Success(ctx, "Registrado", "Huésped registrado correctamente")
	n.Info(ctx, "Info", "Sin cambios")
	n.Warning(ctx, "Estado no actualizado", "texto")
	n.Error(ctx, "Conflicto", "Ya existe")

	got := out.Notifications()
	require.Len(t, got, 4)

	tests := []struct {
		kind      notify.Kind
		modal     bool
		dismissMs int64
	}{
		{notify.KindSuccess, false, 2000},
		{notify.KindInfo, false, 2000},
		{notify.KindWarning, true, 0},
		{notify.KindError, true, 0},
	}
	for i, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			assert.Equal(t, tt.kind, got[i].Kind)
			assert.Equal(t, tt.modal, got[i].Modal)
			assert.Equal(t, tt.dismissMs, got[i].AutoDismissMs)
			assert.Equal(t, fixedNow, got[i].CreatedAt)
			assert.NotEmpty(t, got[i].ID)
		})
	}
	assert.Equal(t, "Ya existe", got[3].Text)
	assert.NotEqual(t, got[0].ID, got[1].ID)
}

func TestFromContext(t *testing.T) {
	t.Run("without an outbox messages are dropped", func(t *testing.T) {
		ctx := context.Background()
		newNotifier().Success(ctx, "a", "b")
		assert.Empty(t, notify.FromContext(ctx).Notifications())
	})

	t.Run("with an outbox the same one is returned", func(t *testing.T) {
		out := notify.NewOutbox()
		ctx := notify.WithOutbox(context.Background(), out)
		assert.Same(t, out, notify.FromContext(ctx))
	})
}

func TestOutbox_ConcurrentPush(t *testing.T) {
	out := notify.NewOutbox()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			out.Push(notify.Notification{Kind: notify.KindInfo})
		}()
	}
	wg.Wait()
	assert.Len(t, out.Notifications(), 50)
}

func TestAnswer(t *testing.T) {
	prompt := notify.DeletePrompt("El huésped será eliminado")

	t.Run("accepted", func(t *testing.T) {
		out := notify.NewOutbox()
		ctx := notify.WithOutbox(context.Background(), out)

		assert.True(t, notify.Answer(true).Confirm(ctx, prompt))
		assert.Nil(t, out.Confirmation())
	})

	t.Run("declined leaves the prompt", func(t *testing.T) {
		out := notify.NewOutbox()
		ctx := notify.WithOutbox(context.Background(), out)

		assert.False(t, notify.Answer(false).Confirm(ctx, prompt))
		require.NotNil(t, out.Confirmation())
		assert.Equal(t, notify.Confirmation{
			Title:        "¿Estás seguro?",
			Text:         "El huésped será eliminado",
			ConfirmLabel: "Sí, eliminar",
			CancelLabel:  "Cancelar",
		}, *out.Confirmation())
	})
}
