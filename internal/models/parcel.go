package models

// ParcelStatus represents the lifecycle state of a registered parcel.
type ParcelStatus string

const (
	StatusAvailable   ParcelStatus = "AVAILABLE"
	StatusPendingSale ParcelStatus = "PENDING_SALE"
	StatusDisputed    ParcelStatus = "DISPUTED"
	StatusSold        ParcelStatus = "SOLD"
	StatusVerifying   ParcelStatus = "VERIFYING"
)

// Owner identifies the current holder of a parcel's title.
type Owner struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	IdentityVerified bool   `json:"identityVerified"`
	WalletAddress    string `json:"walletAddress"`
}

// Parcel represents a registered land parcel listed on the marketplace.
// The LR number is the unique human-readable land reference code; History is
// the append-only provenance chain, oldest record first.
type Parcel struct {
	ID                 string              `json:"id"`
	LRNumber           string              `json:"lrNumber"`
	Location           string              `json:"location"`
	County             string              `json:"county"`
	Size               string              `json:"size"`
	Price              int64               `json:"price"`
	Owner              Owner               `json:"owner"`
	Status             ParcelStatus        `json:"status"`
	Description        string              `json:"description"`
	CourtCaseReference string              `json:"courtCaseReference,omitempty"`
	ImageURL           string              `json:"imageUrl"`
	DeedSignature      string              `json:"deedSignature"`
	History            []TransactionRecord `json:"history"`
}
