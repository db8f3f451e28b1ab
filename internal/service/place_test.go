package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"pinbook/internal/adapter"
	"pinbook/internal/logger"
	"pinbook/internal/mock"
	"pinbook/internal/store"
	"pinbook/models"
)

func newTestPlaceSvc(t *testing.T, ctrl *gomock.Controller) (
	*PlaceService,
	*mock.MockPlaceRepository,
	*mock.MockTabRepository,
	*mock.MockLocationProvider,
	*mock.MockGeocoder,
) {
	t.Helper()

	places := mock.NewMockPlaceRepository(ctrl)
	tabs := mock.NewMockTabRepository(ctrl)
	location := mock.NewMockLocationProvider(ctrl)
	geocoder := mock.NewMockGeocoder(ctrl)

	svc := NewPlaceService(places, tabs, location, geocoder, logger.Nop())
	return svc, places, tabs, location, geocoder
}

// ── List ─────────────────────────────────────────────────────────────────────

func TestPlaceService_List_RepairsDanglingTab(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, places, tabs, _, _ := newTestPlaceSvc(t, ctrl)
	ctx := context.Background()

	places.EXPECT().ListPlaces(ctx).Return([]models.Place{
		{ID: "p1", Name: "ok", TabID: models.TabFrequent},
		{ID: "p2", Name: "dangling", TabID: "deleted-custom-tab"},
	}, nil)
	tabs.EXPECT().ListTabs(ctx).Return(models.BuiltinTabs(), nil)

	got, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, models.TabFrequent, got[0].TabID)
	assert.Equal(t, models.TabOther, got[1].TabID)
}

// ── Create ───────────────────────────────────────────────────────────────────

func TestPlaceService_Create_TrimsNameAndDefaultsTab(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, places, _, _, _ := newTestPlaceSvc(t, ctrl)
	ctx := context.Background()

	places.EXPECT().SavePlace(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, place models.Place) (models.Place, error) {
			assert.Equal(t, "東京タワー", place.Name)
			assert.Equal(t, models.TabOther, place.TabID)
			place.ID = "new-id"
			return place, nil
		},
	)

	got, err := svc.Create(ctx, models.Place{
		Name:      "  東京タワー  ",
		Latitude:  35.6586,
		Longitude: 139.7454,
	})
	require.NoError(t, err)
	assert.Equal(t, "new-id", got.ID)
}

func TestPlaceService_Create_EmptyName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _, _ := newTestPlaceSvc(t, ctrl)

	_, err := svc.Create(context.Background(), models.Place{Name: "   "})
	assert.ErrorIs(t, err, ErrNameRequired)
}

func TestPlaceService_Create_CoordinatesOutOfRange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _, _ := newTestPlaceSvc(t, ctrl)
	ctx := context.Background()

	_, err := svc.Create(ctx, models.Place{Name: "x", Latitude: 91})
	assert.ErrorIs(t, err, ErrCoordinates)

	_, err = svc.Create(ctx, models.Place{Name: "x", Longitude: -181})
	assert.ErrorIs(t, err, ErrCoordinates)
}

// ── Update ───────────────────────────────────────────────────────────────────

func TestPlaceService_Update_ValidatesChangedCoordinates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, places, _, _, _ := newTestPlaceSvc(t, ctrl)
	ctx := context.Background()

	lat := 200.0
	places.EXPECT().GetPlace(ctx, "p1").Return(models.Place{ID: "p1", Latitude: 35, Longitude: 139}, nil)

	_, err := svc.Update(ctx, "p1", models.PlaceUpdate{Latitude: &lat})
	assert.ErrorIs(t, err, ErrCoordinates)
}

func TestPlaceService_Update_TrimsName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, places, _, _, _ := newTestPlaceSvc(t, ctrl)
	ctx := context.Background()

	name := "  renamed  "
	places.EXPECT().UpdatePlace(ctx, "p1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, upd models.PlaceUpdate) (models.Place, error) {
			require.NotNil(t, upd.Name)
			assert.Equal(t, "renamed", *upd.Name)
			return models.Place{ID: "p1", Name: *upd.Name}, nil
		},
	)

	got, err := svc.Update(ctx, "p1", models.PlaceUpdate{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "renamed", got.Name)
}

func TestPlaceService_Update_EmptyNameRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _, _ := newTestPlaceSvc(t, ctrl)

	name := "   "
	_, err := svc.Update(context.Background(), "p1", models.PlaceUpdate{Name: &name})
	assert.ErrorIs(t, err, ErrNameRequired)
}

func TestPlaceService_Update_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, places, _, _, _ := newTestPlaceSvc(t, ctrl)
	ctx := context.Background()

	places.EXPECT().UpdatePlace(ctx, "ghost", gomock.Any()).Return(models.Place{}, store.ErrNotFound)

	note := "hello"
	_, err := svc.Update(ctx, "ghost", models.PlaceUpdate{Note: &note})
	assert.ErrorIs(t, err, store.ErrNotFound)
}

// ── DraftFromCurrentLocation ─────────────────────────────────────────────────

func TestPlaceService_DraftFromCurrentLocation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, location, geocoder := newTestPlaceSvc(t, ctrl)
	ctx := context.Background()

	pos := models.Position{Latitude: 35.6586, Longitude: 139.7454}
	gomock.InOrder(
		location.EXPECT().Current(ctx).Return(pos, nil),
		geocoder.EXPECT().ReverseGeocode(ctx, pos.Latitude, pos.Longitude).Return(models.GeocodeResult{
			Address:    "東京都港区芝公園4-2-8",
			PlaceName:  "東京タワー",
			PostalCode: "105-0011",
		}),
	)

	draft, err := svc.DraftFromCurrentLocation(ctx)
	require.NoError(t, err)
	assert.Empty(t, draft.ID, "draft must not be persisted")
	assert.Equal(t, "東京タワー", draft.Name)
	assert.Equal(t, "東京都港区芝公園4-2-8", draft.Address)
	assert.Equal(t, "105-0011", draft.PostalCode)
	assert.Equal(t, pos.Latitude, draft.Latitude)
	assert.Equal(t, models.TabOther, draft.TabID)
}

func TestPlaceService_DraftFromCurrentLocation_LocationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, location, _ := newTestPlaceSvc(t, ctrl)
	ctx := context.Background()

	locErr := &adapter.LocationError{Code: adapter.LocationTimeout}
	location.EXPECT().Current(ctx).Return(models.Position{}, locErr)

	_, err := svc.DraftFromCurrentLocation(ctx)
	require.Error(t, err)

	var gotErr *adapter.LocationError
	require.ErrorAs(t, err, &gotErr)
	assert.Equal(t, adapter.LocationTimeout, gotErr.Code)
}
