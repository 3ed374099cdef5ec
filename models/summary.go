package models

// Summary holds the dashboard aggregates. It is derived from the full order
// list on every read and never persisted.
type Summary struct {
	TotalSales    int           `json:"totalSales"`
	TotalOrders   int           `json:"totalOrders"`
	TotalQuantity int           `json:"totalQuantity"`
	PopularItems  []PopularItem `json:"popularItems"`
}

// PopularItem is one entry of the best-sellers ranking.
type PopularItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}
