package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aokimidori/kakigori-pos/services"
	"github.com/aokimidori/kakigori-pos/utils"
)

type MenuController struct {
	Service *services.OrderService
}

func NewMenuController(service *services.OrderService) *MenuController {
	return &MenuController{Service: service}
}

// GetAllMenus -> whole catalog in display order, inactive items included
// (order history still shows them).
func (mc *MenuController) GetAllMenus(c *gin.Context) {
	menus, err := mc.Service.ListMenuItems()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of menus", menus)
}

// GetActiveMenus -> only the items currently offered, what the ordering page
// renders.
func (mc *MenuController) GetActiveMenus(c *gin.Context) {
	menus, err := mc.Service.ListActiveMenuItems()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of active menus", menus)
}
