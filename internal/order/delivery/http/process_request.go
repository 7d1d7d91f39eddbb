package http

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// processListReq binds the search query.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, errInvalidRequest
	}
	return req, nil
}

// processCreateReq binds the create body (JSON or form) and resolves the
// due date. A blank product is left to the use case to reject.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBind(&req); err != nil {
		return req, errInvalidRequest
	}
	return req, h.resolveDueDate(&req)
}

func (h *handler) resolveDueDate(req *createReq) error {
	raw := strings.TrimSpace(req.DueDate)
	if raw == "" {
		req.dueDate = h.dateMath.Today(h.now())
		return nil
	}
	d, err := h.dateMath.Parse(raw, h.now())
	if err != nil {
		return errInvalidDueDate
	}
	req.dueDate = d
	return nil
}

// processToggleReq reads the id path param and the optional query.
func (h *handler) processToggleReq(c *gin.Context) (toggleReq, error) {
	var req toggleReq
	if c.ContentType() != "" {
		if err := c.ShouldBind(&req); err != nil {
			return req, errInvalidRequest
		}
	}
	if req.Query == "" {
		req.Query = c.Query("q")
	}
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		return req, errInvalidID
	}
	req.ID = id
	return req, nil
}

// processClearReq reads the optional query.
func (h *handler) processClearReq(c *gin.Context) (clearReq, error) {
	var req clearReq
	if c.ContentType() != "" {
		if err := c.ShouldBind(&req); err != nil {
			return req, errInvalidRequest
		}
	}
	if req.Query == "" {
		req.Query = c.Query("q")
	}
	return req, nil
}
