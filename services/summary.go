package services

import (
	"sort"

	"github.com/aokimidori/kakigori-pos/models"
)

// Aggregate recomputes the dashboard summary from scratch over the full order
// list. Total sales use each line's menu item price as loaded at aggregation
// time, not the total stored on the order, so repricing an item moves the
// dashboard but not the order history.
//
// Popular items are the top three by summed quantity; ties keep the order in
// which an item first appears in the order list.
func Aggregate(orders []models.Order) models.Summary {
	summary := models.Summary{
		TotalOrders:  len(orders),
		PopularItems: make([]models.PopularItem, 0, 3),
	}

	quantities := make(map[string]*models.PopularItem)
	seen := make([]string, 0)

	for _, order := range orders {
		for _, line := range order.OrderItems {
			summary.TotalQuantity += line.Quantity
			summary.TotalSales += line.MenuItem.Price * line.Quantity

			entry, ok := quantities[line.MenuItemID]
			if !ok {
				entry = &models.PopularItem{Name: line.MenuItem.Name}
				quantities[line.MenuItemID] = entry
				seen = append(seen, line.MenuItemID)
			}
			entry.Quantity += line.Quantity
		}
	}

	ranked := make([]models.PopularItem, 0, len(seen))
	for _, id := range seen {
		ranked = append(ranked, *quantities[id])
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Quantity > ranked[j].Quantity
	})
	if len(ranked) > 3 {
		ranked = ranked[:3]
	}
	summary.PopularItems = ranked

	return summary
}
