package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"household-orders/internal/order"
	pkgErrors "household-orders/pkg/errors"
)

const boardTemplate = "board.html"

// Page renders the board. A store or data failure still renders the page,
// with a banner instead of the list.
func (h *handler) Page(c *gin.Context) {
	ctx := c.Request.Context()

	req, _ := h.processListReq(c)
	view := h.newPageView(req.Query)

	output, err := h.uc.Board(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Board: %v", err)
		h.renderFailure(c, view, err)
		return
	}

	c.HTML(http.StatusOK, boardTemplate, view.withBoard(output))
}

// PageAdd handles the side panel form. On success the form is cleared;
// on a validation error the typed values are kept and the error is shown
// next to the form.
func (h *handler) PageAdd(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	view := h.newPageView(req.Query)
	if err != nil {
		view.Form = formView{Product: req.Product, DueDate: req.DueDate}
		h.renderInline(c, view, err)
		return
	}

	output, err := h.uc.Add(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Add: %v", err)
		view.Form = formView{Product: req.Product, DueDate: req.DueDate}
		h.renderInline(c, view, err)
		return
	}

	view.Notice = "✅ Aggiunto!"
	c.HTML(http.StatusOK, boardTemplate, view.withBoard(output.Board))
}

// PageToggle handles a checkbox change.
func (h *handler) PageToggle(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processToggleReq(c)
	view := h.newPageView(req.Query)
	if err != nil {
		h.renderInline(c, view, err)
		return
	}

	output, err := h.uc.ToggleDone(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ToggleDone: %v", err)
		h.renderInline(c, view, err)
		return
	}

	c.HTML(http.StatusOK, boardTemplate, view.withBoard(output.Board))
}

// PageClearCompleted handles the "clear completed" button.
func (h *handler) PageClearCompleted(c *gin.Context) {
	ctx := c.Request.Context()

	req, _ := h.processClearReq(c)
	view := h.newPageView(req.Query)

	output, err := h.uc.ClearCompleted(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ClearCompleted: %v", err)
		h.renderFailure(c, view, err)
		return
	}

	if output.Removed == 0 {
		view.Notice = "Nessun ordine completato da rimuovere"
	} else {
		view.Notice = fmt.Sprintf("🧹 Rimossi %d ordini completati", output.Removed)
	}
	c.HTML(http.StatusOK, boardTemplate, view.withBoard(output.Board))
}

// renderInline shows a local error and, when possible, the current list
// under it. Load failures fall back to the banner.
func (h *handler) renderInline(c *gin.Context, view pageView, err error) {
	if order.IsLoadFailure(err) {
		h.renderFailure(c, view, err)
		return
	}

	status := statusOf(h.mapError(err))
	if errors.Is(err, order.ErrOrderNotFound) || errors.Is(err, errInvalidID) {
		view.Banner = h.message(err)
	} else {
		view.FormError = h.message(err)
	}

	output, bErr := h.uc.Board(c.Request.Context(), order.BoardInput{Query: view.Query})
	if bErr != nil {
		h.renderFailure(c, view, bErr)
		return
	}
	c.HTML(status, boardTemplate, view.withBoard(output))
}

func (h *handler) renderFailure(c *gin.Context, view pageView, err error) {
	view.Banner = h.message(err)
	c.HTML(statusOf(h.mapError(err)), boardTemplate, view)
}

func statusOf(err error) int {
	var httpErr *pkgErrors.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode()
	}
	return http.StatusBadRequest
}
