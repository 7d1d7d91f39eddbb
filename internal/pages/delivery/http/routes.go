package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps the informational pages.
func RegisterRoutes(r gin.IRoutes, h Handler) {
	r.GET("/cards", h.Cards)
	r.GET("/links", h.Links)
}
