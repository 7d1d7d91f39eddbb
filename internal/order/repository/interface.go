package repository

import "context"

// Repository is the external tabular store holding the order list.
// There is no row-level access: the dataset is always read and replaced as
// a whole, and the last overwrite wins.
type Repository interface {
	// Read returns every row currently persisted, never a cached snapshot.
	Read(ctx context.Context) (Table, error)
	// Overwrite replaces the persisted dataset with t in one write.
	Overwrite(ctx context.Context, t Table) error
}
