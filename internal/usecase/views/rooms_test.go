//go:build unit

package views_test

import (
	"context"
	"testing"

	"hotel-console/internal/domain/room"
	"hotel-console/internal/infra/gateway"
	"hotel-console/internal/pkg/errs"
	"hotel-console/internal/usecase/views"
	gatewaymock "hotel-console/tests/mock/gateway"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRoomView(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := gatewaymock.NewMockRoomGateway(ctrl)
	view := views.NewRoomView(gw)
	ctx := context.Background()

	gw.EXPECT().List(gomock.Any()).Return([]*room.Room{
		room.Reconstruct(1, 101, "SENCILLA", 900, 1),
		room.Reconstruct(2, 102, "DOBLE", 1500, 2),
	})
	require.Len(t, view.Activate(ctx), 2)

	t.Run("get refreshes the listed row", func(t *testing.T) {
		gw.EXPECT().Get(gomock.Any(), int64(2)).Return(room.Reconstruct(2, 102, "DOBLE", 1650, 2), nil)

		got, err := view.Get(ctx, 2)

		require.NoError(t, err)
		assert.InDelta(t, 1650, got.Price(), 0.001)
		listed, err := view.Detail(2)
		require.NoError(t, err)
		assert.InDelta(t, 1650, listed.Price(), 0.001)
	})

	t.Run("get failure", func(t *testing.T) {
		gw.EXPECT().Get(gomock.Any(), int64(3)).Return(nil, &gateway.Error{Status: 404, Category: gateway.CategoryNotFound})

		_, err := view.Get(ctx, 3)

		assert.True(t, gateway.IsCategory(err, gateway.CategoryNotFound))
	})

	t.Run("detail of an unlisted room", func(t *testing.T) {
		_, err := view.Detail(3)
		assert.ErrorIs(t, err, errs.ErrEntryNotFound)
	})
}
