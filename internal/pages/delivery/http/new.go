package http

import (
	"github.com/gin-gonic/gin"

	"household-orders/internal/pages"
	"household-orders/pkg/log"
)

// Handler serves the informational pages.
type Handler interface {
	Cards(c *gin.Context)
	Links(c *gin.Context)
}

type handler struct {
	l       log.Logger
	title   string
	content pages.Content
}

// New creates a new HTTP handler for the informational pages.
func New(l log.Logger, title string, content pages.Content) Handler {
	return &handler{
		l:       l,
		title:   title,
		content: content,
	}
}
