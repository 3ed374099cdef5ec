package models

import "time"

// Order is one customer transaction. Total is captured at creation/update
// time from the menu prices of that moment and is not recomputed afterwards.
type Order struct {
	ID         string      `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Total      int         `gorm:"not null;default:0" json:"total"`
	CreatedAt  time.Time   `gorm:"not null" json:"createdAt"`
	UpdatedAt  time.Time   `gorm:"not null" json:"updatedAt"`
	OrderItems []OrderItem `gorm:"foreignKey:OrderID" json:"OrderItem"`
}
