package cases

import "context"

// CaseRepository is the record-store contract the registry consumes.
// Create fails with ErrDuplicateIdentification when the store's unique
// constraint on identification is violated. FindByIdentification returns
// (nil, nil) on absence: that lookup backs duplicate prevention and
// user-facing search, so a miss is an expected outcome, not an error.
type CaseRepository interface {
	Create(ctx context.Context, c *Case) error
	GetByID(ctx context.Context, id int64) (*Case, error)
	FindByIdentification(ctx context.Context, identification string) (*Case, error)
	Search(ctx context.Context, filter SearchFilter) ([]*Case, int, error)
	Update(ctx context.Context, id int64, fields UpdateFields) (*Case, error)
	Delete(ctx context.Context, id int64) error
}
