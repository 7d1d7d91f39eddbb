package usecase_test

import (
	"context"
	"time"

	"household-orders/internal/order"
	"household-orders/internal/order/repository"
	"household-orders/internal/order/usecase"
	"household-orders/pkg/datemath"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// memRepo is an in-memory whole-dataset store.
type memRepo struct {
	table    repository.Table
	readErr  error
	writeErr error

	reads  int
	writes int
}

func (m *memRepo) Read(ctx context.Context) (repository.Table, error) {
	m.reads++
	if m.readErr != nil {
		return repository.Table{}, m.readErr
	}
	return m.table, nil
}

func (m *memRepo) Overwrite(ctx context.Context, t repository.Table) error {
	m.writes++
	if m.writeErr != nil {
		return m.writeErr
	}
	m.table = t
	return nil
}

var header = []string{"ID", "Prodotto", "Data", "Consegnato"}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// newUseCase builds a use case whose "today" is 2024-01-05.
func newUseCase(repo repository.Repository) order.UseCase {
	dm, _ := datemath.NewParser("UTC")
	clock := func() time.Time { return time.Date(2024, 1, 5, 10, 0, 0, 0, time.UTC) }
	return usecase.New(&mockLogger{}, repo, dm, clock)
}
