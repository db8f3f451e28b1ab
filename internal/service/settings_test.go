package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"pinbook/internal/logger"
	"pinbook/internal/mock"
	"pinbook/models"
)

func newTestSettingsSvc(t *testing.T, ctrl *gomock.Controller) (*SettingsService, *mock.MockSettingsRepository) {
	t.Helper()

	settings := mock.NewMockSettingsRepository(ctrl)
	return NewSettingsService(settings, logger.Nop()), settings
}

func TestSettingsService_SetTravelMode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, settings := newTestSettingsSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		settings.EXPECT().GetSettings(ctx).Return(models.DefaultSettings(), nil),
		settings.EXPECT().SaveSettings(ctx, models.Settings{TravelMode: models.TravelModeTransit}).Return(nil),
	)

	require.NoError(t, svc.SetTravelMode(ctx, models.TravelModeTransit))
}

func TestSettingsService_SetTravelMode_Invalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestSettingsSvc(t, ctrl)

	err := svc.SetTravelMode(context.Background(), models.TravelMode("teleport"))
	assert.ErrorIs(t, err, ErrInvalidTravelMode)
}
