package order

import (
	"time"

	"household-orders/internal/model"
)

// Column names of the canonical sheet schema.
const (
	ColumnID      = "ID"
	ColumnProduct = "Prodotto"
	ColumnDueDate = "Data"
	ColumnDone    = "Consegnato"
)

// Columns is the canonical header, in write order.
var Columns = []string{ColumnID, ColumnProduct, ColumnDueDate, ColumnDone}

// --- Classification ---

// Buckets is the classified view of a list. Every Order of the input lands
// in exactly one bucket.
type Buckets struct {
	Overdue   []model.Order
	DueToday  []model.Order
	Upcoming  []model.Order
	Completed []model.Order
}

// Len returns the number of Orders across all buckets.
func (b Buckets) Len() int {
	return len(b.Overdue) + len(b.DueToday) + len(b.Upcoming) + len(b.Completed)
}

// --- UseCase Inputs ---

type BoardInput struct {
	Query string
}

type AddInput struct {
	Product string
	DueDate time.Time
	Query   string
}

type ToggleInput struct {
	ID    int
	Query string
}

type ClearInput struct {
	Query string
}

// --- UseCase Outputs ---

// BoardOutput is what a page render needs: the freshly loaded list, the
// search applied to it and its classification.
type BoardOutput struct {
	Today   time.Time
	Query   string
	Total   int // Orders in the store, before filtering
	Matched int // Orders left after filtering
	Buckets Buckets
}

type AddOutput struct {
	Order model.Order
	Board BoardOutput
}

type ToggleOutput struct {
	Order model.Order
	Board BoardOutput
}

type ClearOutput struct {
	Removed int
	Board   BoardOutput
}
