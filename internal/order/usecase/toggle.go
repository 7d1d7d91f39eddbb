package usecase

import (
	"context"

	"household-orders/internal/order"
)

// ToggleDone flips the done flag of one Order and persists right away.
func (uc *implUseCase) ToggleDone(ctx context.Context, input order.ToggleInput) (order.ToggleOutput, error) {
	list, err := uc.Load(ctx)
	if err != nil {
		return order.ToggleOutput{}, err
	}

	idx := list.Index(input.ID)
	if idx < 0 {
		return order.ToggleOutput{}, order.ErrOrderNotFound
	}

	next := list.Clone()
	next[idx].Done = !next[idx].Done

	board, err := uc.commit(ctx, next, input.Query)
	if err != nil {
		return order.ToggleOutput{}, err
	}

	uc.l.Infof(ctx, "uc.ToggleDone: order %d done=%t", next[idx].ID, next[idx].Done)
	return order.ToggleOutput{Order: next[idx], Board: board}, nil
}
