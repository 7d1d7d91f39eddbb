package usecase

import (
	"context"
	"strings"

	"household-orders/internal/model"
	"household-orders/internal/order"
	"household-orders/pkg/datemath"
)

// Add appends a new, not done Order with id max+1. Identical product and
// date pairs are allowed.
func (uc *implUseCase) Add(ctx context.Context, input order.AddInput) (order.AddOutput, error) {
	product := strings.TrimSpace(input.Product)
	if product == "" {
		return order.AddOutput{}, order.ErrEmptyProduct
	}
	if input.DueDate.IsZero() {
		return order.AddOutput{}, order.ErrInvalidDueDate
	}

	list, err := uc.Load(ctx)
	if err != nil {
		return order.AddOutput{}, err
	}

	o := model.Order{
		ID:      list.NextID(),
		Product: product,
		DueDate: datemath.CivilDate(input.DueDate),
	}
	next := append(list.Clone(), o)

	board, err := uc.commit(ctx, next, input.Query)
	if err != nil {
		return order.AddOutput{}, err
	}

	uc.l.Infof(ctx, "uc.Add: order %d %q due %s", o.ID, o.Product, datemath.Format(o.DueDate))
	return order.AddOutput{Order: o, Board: board}, nil
}
