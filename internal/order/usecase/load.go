package usecase

import (
	"context"
	"fmt"

	"household-orders/internal/model"
	"household-orders/internal/order"
)

// Load reads the store and normalizes it. There is no cache: every call is
// a full read.
func (uc *implUseCase) Load(ctx context.Context) (model.OrderList, error) {
	tbl, err := uc.repo.Read(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Load Read: %v", err)
		return nil, fmt.Errorf("%w: %w", order.ErrStoreUnavailable, err)
	}

	list, err := uc.decode(ctx, tbl)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Load decode: %v", err)
		return nil, err
	}
	return list, nil
}

// Board loads the list and builds the filtered, classified view.
func (uc *implUseCase) Board(ctx context.Context, input order.BoardInput) (order.BoardOutput, error) {
	list, err := uc.Load(ctx)
	if err != nil {
		return order.BoardOutput{}, err
	}
	return uc.view(list, input.Query), nil
}
