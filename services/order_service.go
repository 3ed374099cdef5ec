package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/aokimidori/kakigori-pos/models"
)

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrMenuItemNotFound  = errors.New("menu item not found")
	ErrEmptyOrder        = errors.New("order has no items")
	ErrMissingMenuItemID = errors.New("order line is missing menu item id")
)

// OrderLineInput is one (menu item, quantity) pair as sent by the cart or the
// order edit dialog. Lines with quantity <= 0 mean "removed" and are dropped
// before anything is written.
type OrderLineInput struct {
	MenuItemID string `json:"menuItemId" binding:"required"`
	Quantity   int    `json:"quantity"`
}

// OrderService owns all reads and writes of orders and their lines. Both the
// request/response handlers and the websocket hub go through this one type so
// polling pages and realtime clients see the same data.
type OrderService struct {
	DB *gorm.DB
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{DB: db}
}

// ListOrders returns every order with its lines and each line's menu item,
// newest first.
func (s *OrderService) ListOrders() ([]models.Order, error) {
	orders := make([]models.Order, 0)
	if err := s.DB.Preload("OrderItems.MenuItem").
		Order("created_at desc").
		Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

// GetOrder returns a single order with its lines.
func (s *OrderService) GetOrder(orderID string) (*models.Order, error) {
	if orderID == "" {
		return nil, ErrOrderNotFound
	}
	var order models.Order
	err := s.DB.Preload("OrderItems.MenuItem").First(&order, "id = ?", orderID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load order: %w", err)
	}
	return &order, nil
}

// CreateOrder persists a new order with one line per input. With activeOnly
// set, only active menu items resolve (the ordinary order-placement path);
// the order edit path passes false so lines may keep referencing items that
// have since been taken off the menu.
//
// All referenced menu items are resolved before anything is written: an
// unknown id fails the whole order.
func (s *OrderService) CreateOrder(lines []OrderLineInput, activeOnly bool) (*models.Order, error) {
	lines, err := normalizeLines(lines)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, ErrEmptyOrder
	}

	var created models.Order
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		items, err := resolveMenuItems(tx, lines, activeOnly)
		if err != nil {
			return err
		}

		order := models.Order{
			ID:    uuid.NewString(),
			Total: orderTotal(lines, items),
		}
		if err := tx.Create(&order).Error; err != nil {
			return fmt.Errorf("create order: %w", err)
		}
		for _, line := range lines {
			item := models.OrderItem{
				ID:         uuid.NewString(),
				OrderID:    order.ID,
				MenuItemID: line.MenuItemID,
				Quantity:   line.Quantity,
			}
			if err := tx.Create(&item).Error; err != nil {
				return fmt.Errorf("create order line: %w", err)
			}
		}
		created = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateOrder replaces an order's lines wholesale: delete the existing set,
// recompute the total from the current menu prices, insert the edited set.
// The whole replacement runs in one transaction so readers never observe the
// zero-line intermediate state.
func (s *OrderService) UpdateOrder(orderID string, lines []OrderLineInput) error {
	if orderID == "" {
		return ErrOrderNotFound
	}
	lines, err := normalizeLines(lines)
	if err != nil {
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.First(&order, "id = ?", orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrOrderNotFound
			}
			return fmt.Errorf("load order: %w", err)
		}

		// Resolve inactive items too, edited orders may reference
		// discontinued menu entries.
		items, err := resolveMenuItems(tx, lines, false)
		if err != nil {
			return err
		}

		if err := tx.Where("order_id = ?", orderID).Delete(&models.OrderItem{}).Error; err != nil {
			return fmt.Errorf("delete order lines: %w", err)
		}
		for _, line := range lines {
			item := models.OrderItem{
				ID:         uuid.NewString(),
				OrderID:    order.ID,
				MenuItemID: line.MenuItemID,
				Quantity:   line.Quantity,
			}
			if err := tx.Create(&item).Error; err != nil {
				return fmt.Errorf("create order line: %w", err)
			}
		}

		order.Total = orderTotal(lines, items)
		if err := tx.Save(&order).Error; err != nil {
			return fmt.Errorf("save order: %w", err)
		}
		return nil
	})
}

// DeleteOrder removes an order and all of its lines in one transaction.
func (s *OrderService) DeleteOrder(orderID string) error {
	if orderID == "" {
		return ErrOrderNotFound
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.First(&order, "id = ?", orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrOrderNotFound
			}
			return fmt.Errorf("load order: %w", err)
		}
		if err := tx.Where("order_id = ?", orderID).Delete(&models.OrderItem{}).Error; err != nil {
			return fmt.Errorf("delete order lines: %w", err)
		}
		if err := tx.Delete(&order).Error; err != nil {
			return fmt.Errorf("delete order: %w", err)
		}
		return nil
	})
}

// ListMenuItems returns the whole catalog in display order.
func (s *OrderService) ListMenuItems() ([]models.MenuItem, error) {
	return s.listMenu(false)
}

// ListActiveMenuItems returns only the items currently offered, in display
// order. This is what the ordering UI shows.
func (s *OrderService) ListActiveMenuItems() ([]models.MenuItem, error) {
	return s.listMenu(true)
}

func (s *OrderService) listMenu(activeOnly bool) ([]models.MenuItem, error) {
	items := make([]models.MenuItem, 0)
	q := s.DB.Order("sort_order asc, created_at asc")
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	if err := q.Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list menu items: %w", err)
	}
	return items, nil
}

// normalizeLines drops removed lines (quantity <= 0) and rejects lines
// without a menu item id.
func normalizeLines(lines []OrderLineInput) ([]OrderLineInput, error) {
	out := make([]OrderLineInput, 0, len(lines))
	for _, line := range lines {
		if line.MenuItemID == "" {
			return nil, ErrMissingMenuItemID
		}
		if line.Quantity <= 0 {
			continue
		}
		out = append(out, line)
	}
	return out, nil
}

func resolveMenuItems(tx *gorm.DB, lines []OrderLineInput, activeOnly bool) (map[string]models.MenuItem, error) {
	resolved := make(map[string]models.MenuItem, len(lines))
	if len(lines) == 0 {
		return resolved, nil
	}

	ids := make([]string, 0, len(lines))
	for _, line := range lines {
		ids = append(ids, line.MenuItemID)
	}

	q := tx.Where("id IN ?", ids)
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	var items []models.MenuItem
	if err := q.Find(&items).Error; err != nil {
		return nil, fmt.Errorf("resolve menu items: %w", err)
	}
	for _, item := range items {
		resolved[item.ID] = item
	}

	for _, line := range lines {
		if _, ok := resolved[line.MenuItemID]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMenuItemNotFound, line.MenuItemID)
		}
	}
	return resolved, nil
}

func orderTotal(lines []OrderLineInput, items map[string]models.MenuItem) int {
	total := 0
	for _, line := range lines {
		total += items[line.MenuItemID].Price * line.Quantity
	}
	return total
}
