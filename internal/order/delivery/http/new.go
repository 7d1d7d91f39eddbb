package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"household-orders/internal/order"
	"household-orders/pkg/datemath"
	"household-orders/pkg/log"
)

// Handler is the public interface for the order HTTP delivery layer.
type Handler interface {
	// JSON API
	List(c *gin.Context)
	Create(c *gin.Context)
	Toggle(c *gin.Context)
	ClearCompleted(c *gin.Context)

	// HTML page
	Page(c *gin.Context)
	PageAdd(c *gin.Context)
	PageToggle(c *gin.Context)
	PageClearCompleted(c *gin.Context)
}

type handler struct {
	l        log.Logger
	uc       order.UseCase
	dateMath *datemath.Parser
	title    string
	now      func() time.Time
}

var _ Handler = (*handler)(nil)

// New creates a new HTTP handler for the order domain. title heads the
// rendered page; dateMath resolves "today" for the add form default.
func New(l log.Logger, uc order.UseCase, dateMath *datemath.Parser, title string) *handler {
	return &handler{
		l:        l,
		uc:       uc,
		dateMath: dateMath,
		title:    title,
		now:      time.Now,
	}
}
