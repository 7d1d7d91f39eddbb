package http

import (
	"time"

	"household-orders/internal/model"
	"household-orders/internal/order"
	"household-orders/pkg/response"
)

// --- Request DTOs ---

type listReq struct {
	Query string `form:"q"`
}

func (r listReq) toInput() order.BoardInput {
	return order.BoardInput{Query: r.Query}
}

// ---

// createReq is shared by the JSON API and the page form. DueDate accepts
// ISO or dd/mm/yyyy dates and relative words such as "domani"; blank means
// today.
type createReq struct {
	Product string `json:"product"  form:"product"`
	DueDate string `json:"due_date" form:"due_date"`
	Query   string `json:"q"        form:"q"`

	dueDate time.Time
}

func (r createReq) toInput() order.AddInput {
	return order.AddInput{
		Product: r.Product,
		DueDate: r.dueDate,
		Query:   r.Query,
	}
}

// ---

type toggleReq struct {
	ID    int    `json:"-"`
	Query string `json:"q" form:"q"`
}

func (r toggleReq) toInput() order.ToggleInput {
	return order.ToggleInput{ID: r.ID, Query: r.Query}
}

// ---

type clearReq struct {
	Query string `json:"q" form:"q"`
}

func (r clearReq) toInput() order.ClearInput {
	return order.ClearInput{Query: r.Query}
}

// --- Response DTOs ---

type orderResp struct {
	ID      int           `json:"id"`
	Product string        `json:"product"`
	DueDate response.Date `json:"due_date"`
	Done    bool          `json:"done"`
}

func newOrderResp(o model.Order) orderResp {
	return orderResp{
		ID:      o.ID,
		Product: o.Product,
		DueDate: response.Date(o.DueDate),
		Done:    o.Done,
	}
}

func newOrderResps(list []model.Order) []orderResp {
	out := make([]orderResp, len(list))
	for i, o := range list {
		out[i] = newOrderResp(o)
	}
	return out
}

type boardResp struct {
	Today     response.Date `json:"today"`
	Query     string        `json:"q,omitempty"`
	Total     int           `json:"total"`
	Matched   int           `json:"matched"`
	Overdue   []orderResp   `json:"overdue"`
	DueToday  []orderResp   `json:"due_today"`
	Upcoming  []orderResp   `json:"upcoming"`
	Completed []orderResp   `json:"completed"`
}

func newBoardResp(out order.BoardOutput) boardResp {
	return boardResp{
		Today:     response.Date(out.Today),
		Query:     out.Query,
		Total:     out.Total,
		Matched:   out.Matched,
		Overdue:   newOrderResps(out.Buckets.Overdue),
		DueToday:  newOrderResps(out.Buckets.DueToday),
		Upcoming:  newOrderResps(out.Buckets.Upcoming),
		Completed: newOrderResps(out.Buckets.Completed),
	}
}

type createResp struct {
	Order orderResp `json:"order"`
	Board boardResp `json:"board"`
}

func (h *handler) newCreateResp(out order.AddOutput) createResp {
	return createResp{Order: newOrderResp(out.Order), Board: newBoardResp(out.Board)}
}

type toggleResp struct {
	Order orderResp `json:"order"`
	Board boardResp `json:"board"`
}

func (h *handler) newToggleResp(out order.ToggleOutput) toggleResp {
	return toggleResp{Order: newOrderResp(out.Order), Board: newBoardResp(out.Board)}
}

type clearResp struct {
	Removed int       `json:"removed"`
	Board   boardResp `json:"board"`
}

func (h *handler) newClearResp(out order.ClearOutput) clearResp {
	return clearResp{Removed: out.Removed, Board: newBoardResp(out.Board)}
}

// --- Page view models ---

type formView struct {
	Product string
	DueDate string
}

type sectionView struct {
	Title  string
	Orders []model.Order
}

type pageView struct {
	Title     string
	Query     string
	Notice    string
	Banner    string
	FormError string
	Form      formView

	Loaded   bool
	Today    time.Time
	Total    int
	Matched  int
	Sections []sectionView
}

func (h *handler) newPageView(query string) pageView {
	return pageView{
		Title: h.title,
		Query: query,
		Form:  formView{DueDate: h.dateMath.Today(h.now()).Format(time.DateOnly)},
	}
}

// withBoard fills the order sections. Empty buckets are still listed so
// the page layout stays stable.
func (v pageView) withBoard(out order.BoardOutput) pageView {
	v.Loaded = true
	v.Query = out.Query
	v.Today = out.Today
	v.Total = out.Total
	v.Matched = out.Matched
	v.Sections = []sectionView{
		{Title: "🔴 Scaduti", Orders: out.Buckets.Overdue},
		{Title: "📅 Oggi", Orders: out.Buckets.DueToday},
		{Title: "🗓️ Prossimi", Orders: out.Buckets.Upcoming},
		{Title: "✅ Completati", Orders: out.Buckets.Completed},
	}
	return v
}
