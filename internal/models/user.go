package models

import "time"

// User roles. Campaign owners raise funds and never hold investor wallets.
const (
	RoleUser          = "user"
	RoleAdmin         = "admin"
	RoleCampaignOwner = "campaign-owner"
)

type User struct {
	ID        uint   `gorm:"primarykey" json:"id"`
	Email     string `gorm:"uniqueIndex;not null" json:"email"`
	Password  string `gorm:"not null" json:"-"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `gorm:"default:'user'" json:"role"`
	// WalletID is the opaque per-user identifier shared by every
	// currency-specific wallet the user owns. Empty until the first
	// wallet is provisioned.
	WalletID  string    `gorm:"default:''" json:"walletId"`
	Status    string    `gorm:"default:'active'" json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (u *User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
