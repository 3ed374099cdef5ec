package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aokimidori/kakigori-pos/services"
	"github.com/aokimidori/kakigori-pos/utils"
)

type OrderController struct {
	Service *services.OrderService
}

func NewOrderController(service *services.OrderService) *OrderController {
	return &OrderController{Service: service}
}

type orderRequest struct {
	OrderItems []services.OrderLineInput `json:"orderItems" binding:"required"`
}

// GetAllOrders -> list orders with lines and menu items, newest first. The
// order history and dashboard pages poll this every few seconds.
func (oc *OrderController) GetAllOrders(c *gin.Context) {
	orders, err := oc.Service.ListOrders()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of orders", orders)
}

// GetOrderByID -> detail of one order
func (oc *OrderController) GetOrderByID(c *gin.Context) {
	order, err := oc.Service.GetOrder(c.Param("order_id"))
	if err != nil {
		respondStoreError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order detail", order)
}

// CreateOrder -> submit a cart. Only active menu items resolve on this path.
func (oc *OrderController) CreateOrder(c *gin.Context) {
	var body orderRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := oc.Service.CreateOrder(body.OrderItems, true)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	utils.InfoLogger.Printf("Order %s created, total %s", order.ID, utils.FormatCurrencyJPY(order.Total))
	utils.RespondJSON(c, http.StatusCreated, "Order created", order)
}

// UpdateOrder -> replace an order's lines wholesale, returns the refreshed
// order list so the edit dialog can redraw the history in place.
func (oc *OrderController) UpdateOrder(c *gin.Context) {
	orderID := c.Param("order_id")

	var body orderRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := oc.Service.UpdateOrder(orderID, body.OrderItems); err != nil {
		respondStoreError(c, err)
		return
	}

	orders, err := oc.Service.ListOrders()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order updated", orders)
}

// DeleteOrder -> remove an order and its lines, returns the refreshed list.
func (oc *OrderController) DeleteOrder(c *gin.Context) {
	orderID := c.Param("order_id")

	if err := oc.Service.DeleteOrder(orderID); err != nil {
		respondStoreError(c, err)
		return
	}

	orders, err := oc.Service.ListOrders()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order deleted", orders)
}

// respondStoreError maps the service error taxonomy onto status codes:
// not-found vs validation vs everything else (store unreachable and the like).
func respondStoreError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrOrderNotFound),
		errors.Is(err, services.ErrMenuItemNotFound):
		utils.RespondError(c, http.StatusNotFound, err)
	case errors.Is(err, services.ErrEmptyOrder),
		errors.Is(err, services.ErrMissingMenuItemID):
		utils.RespondError(c, http.StatusBadRequest, err)
	default:
		utils.RespondError(c, http.StatusInternalServerError, err)
	}
}
