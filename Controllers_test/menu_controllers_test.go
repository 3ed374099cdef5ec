package Controllers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/aokimidori/kakigori-pos/controllers"
	"github.com/aokimidori/kakigori-pos/models"
	"github.com/aokimidori/kakigori-pos/services"
)

func setupMenuRouter(svc *services.OrderService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	menuCtrl := controllers.NewMenuController(svc)
	router.GET("/menus", menuCtrl.GetAllMenus)
	router.GET("/menus/active", menuCtrl.GetActiveMenus)
	return router
}

func TestGetAllMenusSortedByDisplayOrder(t *testing.T) {
	svc := setupTestService(t)
	router := setupMenuRouter(svc)

	w := doJSON(t, router, "GET", "/menus", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	env := decodeEnvelope(t, w)
	assert.Equal(t, "List of menus", env.Message)

	var menus []models.MenuItem
	assert.NoError(t, json.Unmarshal(env.Data, &menus))
	assert.Len(t, menus, 3)
	for i := 1; i < len(menus); i++ {
		assert.LessOrEqual(t, menus[i-1].SortOrder, menus[i].SortOrder)
	}
}

func TestGetActiveMenusFiltersInactive(t *testing.T) {
	svc := setupTestService(t)
	router := setupMenuRouter(svc)

	w := doJSON(t, router, "GET", "/menus/active", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	env := decodeEnvelope(t, w)
	var menus []models.MenuItem
	assert.NoError(t, json.Unmarshal(env.Data, &menus))
	assert.Len(t, menus, 2)
	for _, menu := range menus {
		assert.True(t, menu.IsActive)
		assert.NotEqual(t, itemCassis, menu.ID)
	}
}
