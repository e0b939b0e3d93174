package invoice

import "context"

// Repository defines persistence operations for invoices.
// Lookups that match no row return shared.ErrNotFound.
type Repository interface {
	FindAll(ctx context.Context) ([]Invoice, error)
	FindWithCompany(ctx context.Context, id int64) (*WithCompany, error)
	Create(ctx context.Context, draft *Draft) (*Invoice, error)
	Update(ctx context.Context, id int64, r *Replacement) (*Invoice, error)
	Delete(ctx context.Context, id int64) error
}
