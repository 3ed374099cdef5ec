package models

import "time"

// MenuItem is one sellable item on the stand's catalog. Items are seeded at
// boot and never deleted, historical order lines keep referencing them by id.
type MenuItem struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Price     int       `gorm:"not null" json:"price"`
	IsActive  bool      `gorm:"not null;default:true" json:"isActive"`
	SortOrder int       `gorm:"not null;default:0" json:"sortOrder"`
	Image     string    `gorm:"type:varchar(255)" json:"image"`
	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null" json:"updatedAt"`
}
