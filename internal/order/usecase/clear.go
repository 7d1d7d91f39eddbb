package usecase

import (
	"context"

	"household-orders/internal/model"
	"household-orders/internal/order"
)

// ClearCompleted drops every done Order in one overwrite. With nothing done
// it reports zero removed and does not write.
func (uc *implUseCase) ClearCompleted(ctx context.Context, input order.ClearInput) (order.ClearOutput, error) {
	list, err := uc.Load(ctx)
	if err != nil {
		return order.ClearOutput{}, err
	}

	kept := make(model.OrderList, 0, len(list))
	for _, o := range list {
		if !o.Done {
			kept = append(kept, o)
		}
	}

	removed := len(list) - len(kept)
	if removed == 0 {
		return order.ClearOutput{Removed: 0, Board: uc.view(list, input.Query)}, nil
	}

	board, err := uc.commit(ctx, kept, input.Query)
	if err != nil {
		return order.ClearOutput{}, err
	}

	uc.l.Infof(ctx, "uc.ClearCompleted: removed %d orders", removed)
	return order.ClearOutput{Removed: removed, Board: board}, nil
}
