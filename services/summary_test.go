package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aokimidori/kakigori-pos/models"
)

func menuItem(id, name string, price int) models.MenuItem {
	return models.MenuItem{ID: id, Name: name, Price: price, IsActive: true}
}

func orderOf(lines ...models.OrderItem) models.Order {
	return models.Order{ID: "order", OrderItems: lines}
}

func line(item models.MenuItem, qty int) models.OrderItem {
	return models.OrderItem{MenuItemID: item.ID, MenuItem: item, Quantity: qty}
}

func TestAggregateEmpty(t *testing.T) {
	summary := Aggregate(nil)

	assert.Equal(t, 0, summary.TotalSales)
	assert.Equal(t, 0, summary.TotalOrders)
	assert.Equal(t, 0, summary.TotalQuantity)
	assert.Empty(t, summary.PopularItems)
}

func TestAggregateTotals(t *testing.T) {
	a := menuItem("a", "初恋いちご", 300)
	b := menuItem("b", "青春ブルーハワイ", 400)

	orders := []models.Order{
		orderOf(line(a, 2), line(b, 1)),
		orderOf(line(b, 3)),
	}

	summary := Aggregate(orders)

	assert.Equal(t, len(orders), summary.TotalOrders)
	assert.Equal(t, 6, summary.TotalQuantity)
	assert.Equal(t, 2*300+4*400, summary.TotalSales)
}

func TestAggregateScenario(t *testing.T) {
	// Catalog {A: 300円, B: 400円}, one order of 2×A + 1×B.
	a := menuItem("a", "A", 300)
	b := menuItem("b", "B", 400)

	summary := Aggregate([]models.Order{orderOf(line(a, 2), line(b, 1))})

	assert.Equal(t, 1000, summary.TotalSales)
	assert.Equal(t, 1, summary.TotalOrders)
	assert.Equal(t, 3, summary.TotalQuantity)
	assert.Equal(t, []models.PopularItem{
		{Name: "A", Quantity: 2},
		{Name: "B", Quantity: 1},
	}, summary.PopularItems)
}

func TestAggregateUsesCurrentPrice(t *testing.T) {
	// The order stored a total of 300, but the item now costs 350. The
	// dashboard reflects today's price.
	a := menuItem("a", "A", 350)
	order := orderOf(line(a, 1))
	order.Total = 300

	summary := Aggregate([]models.Order{order})

	assert.Equal(t, 350, summary.TotalSales)
}

func TestAggregatePopularItemsTopThree(t *testing.T) {
	a := menuItem("a", "A", 100)
	b := menuItem("b", "B", 100)
	c := menuItem("c", "C", 100)
	d := menuItem("d", "D", 100)

	orders := []models.Order{
		orderOf(line(a, 1), line(b, 5)),
		orderOf(line(c, 3), line(d, 4)),
	}

	summary := Aggregate(orders)

	assert.Len(t, summary.PopularItems, 3)
	assert.Equal(t, []models.PopularItem{
		{Name: "B", Quantity: 5},
		{Name: "D", Quantity: 4},
		{Name: "C", Quantity: 3},
	}, summary.PopularItems)
}

func TestAggregatePopularItemsStableTies(t *testing.T) {
	a := menuItem("a", "A", 100)
	b := menuItem("b", "B", 100)
	c := menuItem("c", "C", 100)

	// B and C tie on quantity; B appeared first and must stay ahead.
	orders := []models.Order{
		orderOf(line(b, 2)),
		orderOf(line(c, 2)),
		orderOf(line(a, 5)),
	}

	summary := Aggregate(orders)

	assert.Equal(t, []models.PopularItem{
		{Name: "A", Quantity: 5},
		{Name: "B", Quantity: 2},
		{Name: "C", Quantity: 2},
	}, summary.PopularItems)
}

func TestAggregateSumsQuantityAcrossOrders(t *testing.T) {
	a := menuItem("a", "A", 100)

	orders := []models.Order{
		orderOf(line(a, 1)),
		orderOf(line(a, 2)),
		orderOf(line(a, 3)),
	}

	summary := Aggregate(orders)

	assert.Equal(t, []models.PopularItem{{Name: "A", Quantity: 6}}, summary.PopularItems)
	assert.Equal(t, 6, summary.TotalQuantity)
}
