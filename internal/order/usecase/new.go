package usecase

import (
	"time"

	"household-orders/internal/order"
	"household-orders/internal/order/repository"
	"household-orders/pkg/datemath"
	"household-orders/pkg/log"
)

// implUseCase is the private implementation of order.UseCase.
type implUseCase struct {
	l        log.Logger
	repo     repository.Repository
	dateMath *datemath.Parser
	now      func() time.Time
}

var _ order.UseCase = (*implUseCase)(nil)

// New creates a new order UseCase implementation. now may be nil, in which
// case the wall clock is used to decide what "today" is.
func New(l log.Logger, repo repository.Repository, dateMath *datemath.Parser, now func() time.Time) *implUseCase {
	if now == nil {
		now = time.Now
	}
	return &implUseCase{
		l:        l,
		repo:     repo,
		dateMath: dateMath,
		now:      now,
	}
}
