package models

import "time"

// PlatformSetting holds site-wide configuration maintained by the admin,
// most importantly the platform default currency.
type PlatformSetting struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	SiteName   string    `json:"siteName"`
	CurrencyID uint      `gorm:"not null" json:"currencyId"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
