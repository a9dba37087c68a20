//go:build integration
// +build integration

package order_repo_test

import (
	"context"
	"os"
	"testing"
	"time"

	"partsbot/internal/domain/conversation"
	"partsbot/internal/domain/offer"
	"partsbot/internal/i18n"
	order_repo "partsbot/internal/repo/order"
	"partsbot/internal/testinfra"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pg *testinfra.PostgresContainer

func TestMain(m *testing.M) {
	ctx := context.Background()

	var err error
	pg, err = testinfra.NewPostgres(ctx)
	if err != nil {
		panic(err)
	}

	code := m.Run()
	pg.Cleanup(ctx)
	os.Exit(code)
}

func newOrder(phone string) conversation.Order {
	now := time.Now().UTC().Truncate(time.Millisecond)
	return conversation.Order{
		ID:             uuid.New().String(),
		Phone:          phone,
		Status:         conversation.StatusCollectVehicle,
		Language:       i18n.German,
		Version:        0,
		LastActivityAt: now,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func TestPgOrderRepo_RoundTrip(t *testing.T) {
	ctx := context.Background()
	require.NoError(t, pg.Truncate(ctx))
	repo := order_repo.NewPgOrderRepo(pg.Pool)

	ord := newOrder("+4917611111111")
	ord.Vehicle = &conversation.Vehicle{Make: "VW", Model: "Golf", Year: 2018}
	ord.PartDescription = "bremsscheiben vorne"
	ord.Offers = []offer.Offer{
		{ShopName: "Teilehaus", Brand: "Brembo", Price: 89.9, Currency: "EUR"},
	}

	require.NoError(t, repo.Create(ctx, ord))

	got, err := repo.GetByPhone(ctx, "+4917611111111")
	require.NoError(t, err)
	assert.Equal(t, ord.ID, got.ID)
	assert.Equal(t, conversation.StatusCollectVehicle, got.Status)
	assert.Equal(t, i18n.German, got.Language)
	require.NotNil(t, got.Vehicle)
	assert.Equal(t, "Golf", got.Vehicle.Model)
	require.Len(t, got.Offers, 1)
	assert.Equal(t, "Brembo", got.Offers[0].Brand)

	byID, err := repo.GetByID(ctx, ord.ID)
	require.NoError(t, err)
	assert.Equal(t, got.Phone, byID.Phone)
}

func TestPgOrderRepo_DuplicatePhone(t *testing.T) {
	ctx := context.Background()
	require.NoError(t, pg.Truncate(ctx))
	repo := order_repo.NewPgOrderRepo(pg.Pool)

	require.NoError(t, repo.Create(ctx, newOrder("+4917622222222")))

	err := repo.Create(ctx, newOrder("+4917622222222"))
	assert.ErrorIs(t, err, conversation.ErrAlreadyExists)
}

func TestPgOrderRepo_VersionConflict(t *testing.T) {
	ctx := context.Background()
	require.NoError(t, pg.Truncate(ctx))
	repo := order_repo.NewPgOrderRepo(pg.Pool)

	ord := newOrder("+4917633333333")
	require.NoError(t, repo.Create(ctx, ord))

	ord.Status = conversation.StatusConfirmVehicle
	require.NoError(t, repo.Update(ctx, ord, 0))

	// A writer still holding version 0 loses.
	stale := newOrder("+4917633333333")
	stale.ID = ord.ID
	err := repo.Update(ctx, stale, 0)
	assert.ErrorIs(t, err, conversation.ErrVersionConflict)

	got, err := repo.GetByPhone(ctx, "+4917633333333")
	require.NoError(t, err)
	assert.Equal(t, conversation.StatusConfirmVehicle, got.Status)
	assert.Equal(t, 1, got.Version)
}

func TestPgOrderRepo_GetByPhoneNotFound(t *testing.T) {
	ctx := context.Background()
	require.NoError(t, pg.Truncate(ctx))
	repo := order_repo.NewPgOrderRepo(pg.Pool)

	_, err := repo.GetByPhone(ctx, "+4900000000000")
	assert.ErrorIs(t, err, conversation.ErrNotFound)
}
