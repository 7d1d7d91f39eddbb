package http

import (
	"github.com/gin-gonic/gin"

	"household-orders/pkg/response"
)

// List godoc
// @Summary     Show the order board
// @Description Reads the whole list from the store, filters it by product and groups it into overdue, due today, upcoming and completed.
// @Tags        Orders
// @Produce     json
// @Param       q query string false "Case-insensitive product search"
// @Success     200 {object} boardResp
// @Failure     422 {object} response.Resp "Malformed data in the store"
// @Failure     503 {object} response.Resp "Store unavailable"
// @Router      /api/v1/orders [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Board(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Board: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newBoardResp(output))
}

// Create godoc
// @Summary     Add an order
// @Description Appends a not done order with the next id and returns the refreshed board.
// @Tags        Orders
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Product and due date (blank means today)"
// @Success     200 {object} createResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     503 {object} response.Resp "Store unavailable"
// @Router      /api/v1/orders [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Add(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Add: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newCreateResp(output))
}

// Toggle godoc
// @Summary     Toggle an order
// @Description Flips the done flag of one order and persists it immediately.
// @Tags        Orders
// @Produce     json
// @Param       id path int    true  "Order ID"
// @Param       q  query string false "Search to apply to the returned board"
// @Success     200 {object} toggleResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     503 {object} response.Resp "Store unavailable"
// @Router      /api/v1/orders/{id}/toggle [POST]
func (h *handler) Toggle(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processToggleReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.ToggleDone(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ToggleDone: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newToggleResp(output))
}

// ClearCompleted godoc
// @Summary     Clear completed orders
// @Description Removes every done order. With nothing done the store is not written and removed is 0.
// @Tags        Orders
// @Produce     json
// @Success     200 {object} clearResp
// @Failure     503 {object} response.Resp "Store unavailable"
// @Router      /api/v1/orders/completed [DELETE]
func (h *handler) ClearCompleted(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processClearReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.ClearCompleted(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ClearCompleted: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newClearResp(output))
}
