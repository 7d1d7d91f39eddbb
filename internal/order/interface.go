package order

import (
	"context"

	"household-orders/internal/model"
)

// UseCase is the order list synchronizer. Every mutation writes the whole
// list back to the store and returns a board rebuilt from a fresh read.
//
//go:generate mockery --name UseCase
type UseCase interface {
	// Load reads and normalizes the whole list from the store.
	Load(ctx context.Context) (model.OrderList, error)
	// Board loads the list, filters it by the query and classifies it.
	Board(ctx context.Context, input BoardInput) (BoardOutput, error)

	Add(ctx context.Context, input AddInput) (AddOutput, error)
	ToggleDone(ctx context.Context, input ToggleInput) (ToggleOutput, error)
	ClearCompleted(ctx context.Context, input ClearInput) (ClearOutput, error)
}
