package registry

import (
	"fmt"
	"time"

	"github.com/ardhichain/registry/internal/idgen"
	"github.com/ardhichain/registry/internal/models"
)

// ExecuteTransfer applies an ownership transfer as a pure function: it takes
// snapshots of the parcel and buyer and returns the updated copies plus the
// transaction record appended to both, or an error with no partial result.
//
// Preconditions are checked in order: sufficient funds, then availability.
// The parcel-exists check belongs to the caller, which resolves the parcel ID
// against the ledger before calling here.
func ExecuteTransfer(parcel models.Parcel, buyer models.UserProfile, gen idgen.Generator, now time.Time) (models.Parcel, models.UserProfile, models.TransactionRecord, error) {
	if buyer.WalletBalance < parcel.Price {
		return models.Parcel{}, models.UserProfile{}, models.TransactionRecord{},
			fmt.Errorf("%w: balance %d, price %d", ErrInsufficientFunds, buyer.WalletBalance, parcel.Price)
	}

	if parcel.Status != models.StatusAvailable {
		return models.Parcel{}, models.UserProfile{}, models.TransactionRecord{},
			fmt.Errorf("%w: status %s", ErrParcelNotAvailable, parcel.Status)
	}

	record := models.TransactionRecord{
		ID:           gen.TxID(),
		Timestamp:    now.UTC().Format("2006-01-02"),
		From:         parcel.Owner.Name,
		To:           buyer.Name,
		Type:         models.TxTransfer,
		Hash:         gen.TxHash(),
		LandLRNumber: parcel.LRNumber,
	}

	updated := parcel
	updated.Owner = models.Owner{
		ID:               buyer.ID,
		Name:             buyer.Name,
		IdentityVerified: true,
		WalletAddress:    buyer.WalletAddress,
	}
	updated.Status = models.StatusSold
	updated.History = append(append([]models.TransactionRecord{}, parcel.History...), record)
	updated.DeedSignature = supersedeSignature(parcel.DeedSignature, record.Hash)

	newBuyer := buyer
	newBuyer.WalletBalance = buyer.WalletBalance - parcel.Price
	newBuyer.Transactions = append(append([]models.TransactionRecord{}, buyer.Transactions...), record)

	return updated, newBuyer, record, nil
}

// supersedeSignature derives the parcel's new deed signature from the revoked
// one and the transfer hash. The old signature stays legible inside the
// REVOKED marker so the supersession is visible in the record itself.
func supersedeSignature(old, txHash string) string {
	short := txHash
	if len(short) > 10 {
		short = short[:10]
	}
	return fmt.Sprintf("REVOKED[%s] >> BLOCK:%s", old, short)
}
