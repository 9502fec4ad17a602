package store

import (
	"fmt"
	"sync"

	"github.com/ardhichain/registry/internal/models"
)

// Store defines read and commit access to the ledger state. Reads return
// copies; callers never hold references into live store memory.
type Store interface {
	// ListParcels returns a snapshot of all parcels in insertion order.
	ListParcels() []models.Parcel

	// ListOwnedBy returns the parcels whose owner ID equals userID,
	// preserving the original ordering.
	ListOwnedBy(userID string) []models.Parcel

	// GetParcel returns the parcel with the given ID.
	// Returns nil if no such parcel exists (not an error).
	GetParcel(id string) *models.Parcel

	// User returns a snapshot of the current user profile.
	User() models.UserProfile

	// CommitTransfer replaces the parcel with parcel.ID and the user profile
	// in one atomic step. Returns an error if the parcel ID is unknown.
	CommitTransfer(parcel models.Parcel, buyer models.UserProfile) error
}

// Ledger is the in-memory implementation of Store. It holds the authoritative
// parcel collection and the single user's profile. Parcels are seeded at
// construction and never created or deleted afterwards; the only mutation is
// CommitTransfer.
type Ledger struct {
	mu      sync.RWMutex
	parcels []models.Parcel
	user    models.UserProfile
}

// New creates a Ledger seeded with the given parcels and user.
func New(parcels []models.Parcel, user models.UserProfile) *Ledger {
	seeded := make([]models.Parcel, len(parcels))
	for i, p := range parcels {
		seeded[i] = copyParcel(p)
	}
	return &Ledger{
		parcels: seeded,
		user:    copyUser(user),
	}
}

// NewSeeded creates a Ledger populated with the registry's initial data set.
func NewSeeded() *Ledger {
	return New(SeedParcels(), SeedUser())
}

// ListParcels returns a snapshot of all parcels in insertion order.
func (l *Ledger) ListParcels() []models.Parcel {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]models.Parcel, len(l.parcels))
	for i, p := range l.parcels {
		out[i] = copyParcel(p)
	}
	return out
}

// ListOwnedBy returns the parcels owned by userID in their original order.
func (l *Ledger) ListOwnedBy(userID string) []models.Parcel {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]models.Parcel, 0)
	for _, p := range l.parcels {
		if p.Owner.ID == userID {
			out = append(out, copyParcel(p))
		}
	}
	return out
}

// GetParcel returns a copy of the parcel with the given ID, or nil when absent.
func (l *Ledger) GetParcel(id string) *models.Parcel {
	l.mu.RLock()
	defer l.mu.RUnlock()

	for _, p := range l.parcels {
		if p.ID == id {
			c := copyParcel(p)
			return &c
		}
	}
	return nil
}

// User returns a snapshot of the current user profile.
func (l *Ledger) User() models.UserProfile {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return copyUser(l.user)
}

// CommitTransfer replaces the stored parcel and user profile under one lock
// acquisition, so no reader observes the parcel updated without the buyer's
// balance (or the reverse).
func (l *Ledger) CommitTransfer(parcel models.Parcel, buyer models.UserProfile) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i, p := range l.parcels {
		if p.ID == parcel.ID {
			l.parcels[i] = copyParcel(parcel)
			l.user = copyUser(buyer)
			return nil
		}
	}
	return fmt.Errorf("cannot commit transfer: parcel %q not in ledger", parcel.ID)
}

// copyParcel deep-copies a parcel, including its history slice.
func copyParcel(p models.Parcel) models.Parcel {
	c := p
	c.History = make([]models.TransactionRecord, len(p.History))
	copy(c.History, p.History)
	return c
}

// copyUser deep-copies a user profile, including its transaction log.
func copyUser(u models.UserProfile) models.UserProfile {
	c := u
	c.Transactions = make([]models.TransactionRecord, len(u.Transactions))
	copy(c.Transactions, u.Transactions)
	return c
}
