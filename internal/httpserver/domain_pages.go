package httpserver

import (
	"context"

	pagesHTTP "household-orders/internal/pages/delivery/http"
)

func (srv HTTPServer) setupPagesDomain(ctx context.Context) {
	h := pagesHTTP.New(srv.l, srv.title, srv.content)
	pagesHTTP.RegisterRoutes(srv.gin, h)

	srv.l.Infof(ctx, "Pages registered: %d cards, %d link groups", len(srv.content.Cards), len(srv.content.Groups))
}
