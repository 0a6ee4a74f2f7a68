package cases

import (
	"context"
	"strings"

	"github.com/aures1804-lang/moskito/internal/domain/scoring"
)

// Service implements the registry semantics over a CaseRepository.
// It is the sole mutator of case records; every operation is a fresh
// fetch-mutate-commit cycle against the store.
type Service struct {
	repo CaseRepository
}

func NewService(repo CaseRepository) *Service {
	return &Service{repo: repo}
}

// Create validates a submission, scores its symptoms, and persists the
// resulting case. Rules apply in order with the first failure winning:
// identification presence, then the registry uniqueness check, then the
// remaining field rules. A submission that is both a duplicate and
// field-invalid therefore reports the duplicate. The pre-check is a fast
// path for a friendlier error; two concurrent creates racing past it are
// resolved by the store's unique constraint, surfaced as
// ErrDuplicateIdentification.
func (s *Service) Create(ctx context.Context, sub *Submission) (*Case, error) {
	identification := strings.TrimSpace(sub.Identification)
	if identification == "" {
		return nil, invalid("identification", "is required")
	}

	existing, err := s.repo.FindByIdentification(ctx, identification)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateIdentification
	}

	c, verr := sub.Validate()
	if verr != nil {
		return nil, verr
	}

	c.Probabilities = scoring.Score(c.Symptoms)
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*Case, error) {
	return s.repo.GetByID(ctx, id)
}

// GetByIdentification returns (nil, nil) when no case carries the
// identification: absence is an expected outcome for this lookup.
func (s *Service) GetByIdentification(ctx context.Context, identification string) (*Case, error) {
	return s.repo.FindByIdentification(ctx, identification)
}

func (s *Service) Search(ctx context.Context, filter SearchFilter) ([]*Case, int, error) {
	return s.repo.Search(ctx, filter)
}

// Update mutates the partial field set; only status, care provider, phone
// and the permanent-residence flag are mutable post-creation.
func (s *Service) Update(ctx context.Context, id int64, fields UpdateFields) (*Case, error) {
	return s.repo.Update(ctx, id, fields)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
