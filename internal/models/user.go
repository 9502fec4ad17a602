package models

// UserRole is the marketplace role of a user.
type UserRole string

const (
	RoleBuyer  UserRole = "BUYER"
	RoleSeller UserRole = "SELLER"
	RoleAdmin  UserRole = "ADMIN"
)

// UserProfile is the marketplace user with an integer-unit wallet balance and
// an ordered transaction log (oldest first).
type UserProfile struct {
	ID            string              `json:"id"`
	Name          string              `json:"name"`
	Email         string              `json:"email"`
	Role          UserRole            `json:"role"`
	Verified      bool                `json:"verified"`
	WalletBalance int64               `json:"walletBalance"`
	WalletAddress string              `json:"walletAddress"`
	Transactions  []TransactionRecord `json:"transactions"`
}
