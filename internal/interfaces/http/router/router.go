package router

import (
	"github.com/gin-gonic/gin"

	"retail_inventory/internal/interfaces/http/handler"
)

func RegisterRoutes(r *gin.Engine, inv *handler.InventoryHandler, analytics *handler.AnalyticsHandler) {
	api := r.Group("/api")
	{
		api.POST("/products", inv.CreateProduct)
		api.GET("/products", inv.SearchProducts)
		api.GET("/products/low-stock", inv.LowStockProducts)
		api.GET("/products/:id", inv.GetProduct)
		api.PATCH("/products/:id/stock", inv.UpdateStock)
		api.POST("/products/:id/discount", inv.ApplyDiscount)

		api.POST("/customers", inv.CreateCustomer)
		api.GET("/customers/:id/contact", inv.GetCustomerContact)

		api.POST("/orders", inv.CreateOrder)
		api.GET("/orders/:id", inv.GetOrder)
		api.PATCH("/orders/:id/status", inv.UpdateOrderStatus)

		api.GET("/reports/inventory", inv.InventoryReport)

		api.GET("/analytics/revenue", analytics.Revenue)
		api.GET("/analytics/top-products", analytics.TopSellingProducts)
		api.GET("/analytics/customers/:id", analytics.CustomerAnalytics)
	}
}
