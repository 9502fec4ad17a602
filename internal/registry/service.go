package registry

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/ardhichain/registry/internal/idgen"
	"github.com/ardhichain/registry/internal/logger"
	"github.com/ardhichain/registry/internal/metrics"
	"github.com/ardhichain/registry/internal/models"
	"github.com/ardhichain/registry/internal/store"
)

// Service-level errors
var (
	ErrParcelNotFound     = errors.New("parcel not found")
	ErrInsufficientFunds  = errors.New("insufficient wallet balance")
	ErrParcelNotAvailable = errors.New("parcel is not available for transfer")
)

// TransferResult carries the post-transfer state back to the caller.
type TransferResult struct {
	Parcel models.Parcel
	Buyer  models.UserProfile
	Record models.TransactionRecord
}

// Service defines the interface for ledger business logic operations.
type Service interface {
	// ListParcels returns all parcels on the ledger.
	ListParcels(ctx context.Context) []models.Parcel

	// Portfolio returns the current user's parcels and their combined price.
	Portfolio(ctx context.Context) ([]models.Parcel, int64)

	// GetParcel returns the parcel with the given ID.
	// Returns ErrParcelNotFound if no such parcel exists.
	GetParcel(ctx context.Context, id string) (*models.Parcel, error)

	// Profile returns the current user profile.
	Profile(ctx context.Context) models.UserProfile

	// Transfer executes the ownership transfer of the parcel to the current
	// user and commits the result to the ledger.
	// Returns ErrParcelNotFound if the parcel does not exist.
	// Returns ErrInsufficientFunds if the user cannot afford the parcel.
	// Returns ErrParcelNotAvailable if the parcel is not listed as AVAILABLE.
	Transfer(ctx context.Context, parcelID string) (*TransferResult, error)
}

// service is the concrete implementation of Service.
type service struct {
	store store.Store
	gen   idgen.Generator
	log   *logger.Logger
	met   *metrics.Metrics
	now   func() time.Time

	// transferMu serializes transfers so the read-validate-commit sequence of
	// one transfer cannot interleave with another. Reads go straight to the
	// store, which has its own lock.
	transferMu sync.Mutex
}

// NewService creates a new instance of Service.
func NewService(st store.Store, gen idgen.Generator, log *logger.Logger, met *metrics.Metrics) Service {
	return &service{
		store: st,
		gen:   gen,
		log:   log,
		met:   met,
		now:   time.Now,
	}
}

// ListParcels returns all parcels on the ledger in insertion order.
func (s *service) ListParcels(ctx context.Context) []models.Parcel {
	return s.store.ListParcels()
}

// Portfolio returns the parcels owned by the current user and the sum of
// their listed prices.
func (s *service) Portfolio(ctx context.Context) ([]models.Parcel, int64) {
	user := s.store.User()
	owned := s.store.ListOwnedBy(user.ID)

	var total int64
	for _, p := range owned {
		total += p.Price
	}
	return owned, total
}

// GetParcel returns the parcel with the given ID or ErrParcelNotFound.
func (s *service) GetParcel(ctx context.Context, id string) (*models.Parcel, error) {
	parcel := s.store.GetParcel(id)
	if parcel == nil {
		s.log.Debug("Parcel not found", map[string]interface{}{
			"parcel_id": id,
		})
		return nil, ErrParcelNotFound
	}
	return parcel, nil
}

// Profile returns the current user profile.
func (s *service) Profile(ctx context.Context) models.UserProfile {
	return s.store.User()
}

// Transfer validates the parcel and the buyer's funds, produces the updated
// parcel and buyer state via ExecuteTransfer, and commits both to the ledger
// as one atomic replacement. A precondition failure leaves the ledger
// untouched.
func (s *service) Transfer(ctx context.Context, parcelID string) (*TransferResult, error) {
	s.transferMu.Lock()
	defer s.transferMu.Unlock()

	parcel := s.store.GetParcel(parcelID)
	if parcel == nil {
		s.log.Warn("Transfer rejected: unknown parcel", map[string]interface{}{
			"parcel_id": parcelID,
		})
		s.met.TransferRejected("not_found")
		return nil, ErrParcelNotFound
	}

	buyer := s.store.User()

	s.log.Info("Executing ownership transfer", map[string]interface{}{
		"parcel_id": parcelID,
		"lr_number": parcel.LRNumber,
		"price":     parcel.Price,
		"buyer_id":  buyer.ID,
	})

	updatedParcel, updatedBuyer, record, err := ExecuteTransfer(*parcel, buyer, s.gen, s.now())
	if err != nil {
		s.log.Warn("Transfer rejected", map[string]interface{}{
			"parcel_id": parcelID,
			"lr_number": parcel.LRNumber,
			"reason":    err.Error(),
		})
		switch {
		case errors.Is(err, ErrInsufficientFunds):
			s.met.TransferRejected("insufficient_funds")
		case errors.Is(err, ErrParcelNotAvailable):
			s.met.TransferRejected("not_available")
		}
		return nil, err
	}

	if err := s.store.CommitTransfer(updatedParcel, updatedBuyer); err != nil {
		s.log.Error("Failed to commit transfer", err, map[string]interface{}{
			"parcel_id": parcelID,
		})
		return nil, err
	}

	s.log.Info("Ownership transfer committed", map[string]interface{}{
		"parcel_id": parcelID,
		"lr_number": updatedParcel.LRNumber,
		"tx_id":     record.ID,
		"tx_hash":   record.Hash,
		"new_owner": updatedParcel.Owner.ID,
	})
	s.met.TransferCompleted()

	return &TransferResult{
		Parcel: updatedParcel,
		Buyer:  updatedBuyer,
		Record: record,
	}, nil
}
