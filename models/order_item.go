package models

type OrderItem struct {
	ID      string `gorm:"primaryKey;type:varchar(36)" json:"id"`
	OrderID string `gorm:"type:varchar(36);not null;index" json:"orderId"`
	// Omitting Order field from JSON to avoid recursive nesting
	Order      Order    `gorm:"foreignKey:OrderID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	MenuItemID string   `gorm:"type:varchar(36);not null" json:"menuItemId"`
	MenuItem   MenuItem `gorm:"foreignKey:MenuItemID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"MenuItem"`
	Quantity   int      `gorm:"not null" json:"quantity"`
}
