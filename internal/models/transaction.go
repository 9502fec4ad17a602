package models

// TransactionType classifies a provenance record.
type TransactionType string

const (
	TxTransfer     TransactionType = "TRANSFER"
	TxRegistration TransactionType = "REGISTRATION"
	TxDisputeFlag  TransactionType = "DISPUTE_FLAG"
	TxVerification TransactionType = "VERIFICATION"
)

// TransactionRecord is a single entry in a parcel's provenance chain or a
// user's transaction log. The same record value (same ID and hash) appears in
// both logs when a transfer touches both.
type TransactionRecord struct {
	ID           string          `json:"id"`
	Timestamp    string          `json:"timestamp"`
	From         string          `json:"from"`
	To           string          `json:"to"`
	Type         TransactionType `json:"type"`
	Hash         string          `json:"hash"`
	LandLRNumber string          `json:"landLrNumber,omitempty"`
}
