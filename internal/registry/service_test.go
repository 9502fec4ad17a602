package registry

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ardhichain/registry/internal/idgen"
	"github.com/ardhichain/registry/internal/logger"
	"github.com/ardhichain/registry/internal/metrics"
	"github.com/ardhichain/registry/internal/models"
	"github.com/ardhichain/registry/internal/store"
)

// newTestService wires a Service over the given ledger with deterministic IDs.
func newTestService(ledger *store.Ledger) Service {
	log := logger.New("test")
	met := metrics.New(prometheus.NewRegistry())
	return NewService(ledger, idgen.NewSeeded(1), log, met)
}

func TestTransfer_Success(t *testing.T) {
	ledger := store.NewSeeded()
	service := newTestService(ledger)
	ctx := context.Background()

	before := ledger.GetParcel("l-1")
	require.NotNil(t, before)
	require.Equal(t, models.StatusAvailable, before.Status)

	result, err := service.Transfer(ctx, "l-1")

	require.NoError(t, err)
	assert.Equal(t, "u-1", result.Parcel.Owner.ID)
	assert.Equal(t, models.StatusSold, result.Parcel.Status)
	assert.Equal(t, int64(1650000), result.Buyer.WalletBalance)

	// The commit is visible through the store
	after := ledger.GetParcel("l-1")
	require.NotNil(t, after)
	assert.Equal(t, "u-1", after.Owner.ID)
	assert.Equal(t, models.StatusSold, after.Status)
	assert.Len(t, after.History, len(before.History)+1)
	assert.Equal(t, int64(1650000), ledger.User().WalletBalance)

	// Both logs end with the same record
	user := ledger.User()
	assert.Equal(t, after.History[len(after.History)-1], user.Transactions[len(user.Transactions)-1])
	assert.Equal(t, result.Record, after.History[len(after.History)-1])
}

func TestTransfer_InsufficientFunds(t *testing.T) {
	user := store.SeedUser()
	user.WalletBalance = 100
	ledger := store.New(store.SeedParcels(), user)
	service := newTestService(ledger)

	result, err := service.Transfer(context.Background(), "l-1")

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrInsufficientFunds)

	// No mutation on failure
	parcel := ledger.GetParcel("l-1")
	require.NotNil(t, parcel)
	assert.Equal(t, models.StatusAvailable, parcel.Status)
	assert.Equal(t, "s-1", parcel.Owner.ID)
	assert.Len(t, parcel.History, 1)
	assert.Equal(t, int64(100), ledger.User().WalletBalance)
	assert.Len(t, ledger.User().Transactions, 2)
}

func TestTransfer_ParcelNotFound(t *testing.T) {
	ledger := store.NewSeeded()
	service := newTestService(ledger)

	result, err := service.Transfer(context.Background(), "l-999")

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrParcelNotFound)

	// Store unchanged
	assert.Len(t, ledger.ListParcels(), 3)
	assert.Equal(t, int64(2500000), ledger.User().WalletBalance)
}

func TestTransfer_NotAvailable(t *testing.T) {
	// A rich buyer reaches the availability gate on the disputed parcel
	user := store.SeedUser()
	user.WalletBalance = 50000000
	ledger := store.New(store.SeedParcels(), user)
	service := newTestService(ledger)

	result, err := service.Transfer(context.Background(), "l-2")

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrParcelNotAvailable)

	parcel := ledger.GetParcel("l-2")
	require.NotNil(t, parcel)
	assert.Equal(t, models.StatusDisputed, parcel.Status)
	assert.Equal(t, "s-2", parcel.Owner.ID)
}

func TestTransfer_SoldParcelCannotBeResold(t *testing.T) {
	ledger := store.NewSeeded()
	service := newTestService(ledger)
	ctx := context.Background()

	_, err := service.Transfer(ctx, "l-1")
	require.NoError(t, err)

	// Buying the same parcel again fails at the availability gate
	result, err := service.Transfer(ctx, "l-1")

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrParcelNotAvailable)
	assert.Equal(t, int64(1650000), ledger.User().WalletBalance)
}

func TestGetParcel(t *testing.T) {
	ledger := store.NewSeeded()
	service := newTestService(ledger)
	ctx := context.Background()

	parcel, err := service.GetParcel(ctx, "l-2")
	require.NoError(t, err)
	assert.Equal(t, "NAIROBI/KILIMANI/102", parcel.LRNumber)
	assert.Equal(t, "ELC/B22/2022", parcel.CourtCaseReference)

	parcel, err = service.GetParcel(ctx, "missing")
	assert.Nil(t, parcel)
	assert.ErrorIs(t, err, ErrParcelNotFound)
}

func TestPortfolio(t *testing.T) {
	ledger := store.NewSeeded()
	service := newTestService(ledger)
	ctx := context.Background()

	// Nothing owned before the first purchase
	owned, total := service.Portfolio(ctx)
	assert.Empty(t, owned)
	assert.Equal(t, int64(0), total)

	_, err := service.Transfer(ctx, "l-1")
	require.NoError(t, err)

	owned, total = service.Portfolio(ctx)
	require.Len(t, owned, 1)
	assert.Equal(t, "l-1", owned[0].ID)
	assert.Equal(t, int64(850000), total)
}

func TestProfile(t *testing.T) {
	ledger := store.NewSeeded()
	service := newTestService(ledger)

	user := service.Profile(context.Background())
	assert.Equal(t, "u-1", user.ID)
	assert.Equal(t, "John Doe", user.Name)
	assert.Equal(t, models.RoleBuyer, user.Role)
	assert.Len(t, user.Transactions, 2)
}

func TestListParcels(t *testing.T) {
	ledger := store.NewSeeded()
	service := newTestService(ledger)

	parcels := service.ListParcels(context.Background())
	require.Len(t, parcels, 3)
	assert.Equal(t, "l-1", parcels[0].ID)
	assert.Equal(t, "l-2", parcels[1].ID)
	assert.Equal(t, "l-3", parcels[2].ID)
}
