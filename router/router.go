package router

import (
	"github.com/gin-gonic/gin"

	"github.com/aokimidori/kakigori-pos/controllers"
	"github.com/aokimidori/kakigori-pos/hub"
	"github.com/aokimidori/kakigori-pos/middlewares"
	"github.com/aokimidori/kakigori-pos/services"
)

func SetupRouter(service *services.OrderService, h *hub.Hub) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	menuCtrl := controllers.NewMenuController(service)
	orderCtrl := controllers.NewOrderController(service)
	dashCtrl := controllers.NewDashboardController(service)
	weatherCtrl := controllers.NewWeatherController()
	streamCtrl := controllers.NewStreamController(h)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// MENU (read-only, seeded at boot)
	r.GET("/menus", menuCtrl.GetAllMenus)
	r.GET("/menus/active", menuCtrl.GetActiveMenus)

	// ORDERS (request/response path, also used by the 5s polling pages)
	r.GET("/orders", orderCtrl.GetAllOrders)
	r.POST("/orders", orderCtrl.CreateOrder)
	r.GET("/orders/:order_id", orderCtrl.GetOrderByID)
	r.PATCH("/orders/:order_id", orderCtrl.UpdateOrder)
	r.DELETE("/orders/:order_id", orderCtrl.DeleteOrder)

	// DASHBOARD polling fallback, same payload as the websocket push
	r.GET("/dashboard/summary", dashCtrl.GetSummary)

	// WEATHER proxy with its own limiter so we stay polite to the feed
	weather := r.Group("/weather")
	weather.Use(middlewares.NewWeatherRateLimiter())
	{
		weather.GET("", weatherCtrl.GetForecast)
	}

	// Realtime endpoint
	r.GET("/ws", streamCtrl.Stream)

	return r
}
