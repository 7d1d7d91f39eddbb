package http

import (
	"github.com/gin-gonic/gin"

	"household-orders/internal/middleware"
)

// RegisterRoutes maps the JSON API. Routes that write to the store are
// rate limited.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	orders := rg.Group("/orders")
	{
		orders.GET("", h.List)
		orders.POST("", mw.RateLimit(), h.Create)
		orders.POST("/:id/toggle", mw.RateLimit(), h.Toggle)
		orders.DELETE("/completed", mw.RateLimit(), h.ClearCompleted)
	}
}

// RegisterPageRoutes maps the HTML board and its form posts.
func RegisterPageRoutes(r gin.IRoutes, h Handler, mw middleware.Middleware) {
	r.GET("/", h.Page)
	r.POST("/orders", mw.RateLimit(), h.PageAdd)
	r.POST("/orders/:id/toggle", mw.RateLimit(), h.PageToggle)
	r.POST("/orders/clear-completed", mw.RateLimit(), h.PageClearCompleted)
}
