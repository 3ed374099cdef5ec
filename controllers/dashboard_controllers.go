package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aokimidori/kakigori-pos/hub"
	"github.com/aokimidori/kakigori-pos/services"
	"github.com/aokimidori/kakigori-pos/utils"
)

type DashboardController struct {
	Service *services.OrderService
}

func NewDashboardController(service *services.OrderService) *DashboardController {
	return &DashboardController{Service: service}
}

// GetSummary -> same {orders, summary} payload the websocket pushes, for
// pages that poll instead of subscribing.
func (dc *DashboardController) GetSummary(c *gin.Context) {
	orders, err := dc.Service.ListOrders()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Dashboard summary", hub.Snapshot{
		Orders:  orders,
		Summary: services.Aggregate(orders),
	})
}
