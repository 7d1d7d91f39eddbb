package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"household-orders/internal/middleware"
	orderHTTP "household-orders/internal/order/delivery/http"
)

// setupOrderDomain registers the board page and the JSON API. The use case
// is built by the caller because the store driver is a deployment choice.
func (srv HTTPServer) setupOrderDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	h := orderHTTP.New(srv.l, srv.orderUC, srv.dateMath, srv.title)

	// /api/v1/orders
	orderHTTP.RegisterRoutes(api, h, mw)
	// / and its form posts
	orderHTTP.RegisterPageRoutes(srv.gin, h, mw)

	srv.l.Infof(ctx, "Order domain registered")
	return nil
}
