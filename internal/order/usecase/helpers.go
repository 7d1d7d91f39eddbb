package usecase

import (
	"context"
	"fmt"
	"strings"

	"household-orders/internal/model"
	"household-orders/internal/order"
)

// view filters and classifies list against today's date.
func (uc *implUseCase) view(list model.OrderList, query string) order.BoardOutput {
	query = strings.TrimSpace(query)
	filtered := order.Filter(list, query)
	today := uc.dateMath.Today(uc.now())

	return order.BoardOutput{
		Today:   today,
		Query:   query,
		Total:   len(list),
		Matched: len(filtered),
		Buckets: order.Classify(filtered, today),
	}
}

// commit is the round-trip every mutation ends with: persist the whole
// list, then rebuild the view from a fresh read rather than from list, so
// what is shown is what the store holds.
func (uc *implUseCase) commit(ctx context.Context, list model.OrderList, query string) (order.BoardOutput, error) {
	if err := uc.repo.Overwrite(ctx, encode(list)); err != nil {
		uc.l.Errorf(ctx, "uc.commit Overwrite: %v", err)
		return order.BoardOutput{}, fmt.Errorf("%w: %w", order.ErrStoreUnavailable, err)
	}
	return uc.Board(ctx, order.BoardInput{Query: query})
}
