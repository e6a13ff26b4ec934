package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/timeplan/internal/domain"
)

// ErrNotFound is returned when a lookup matches no stored plan.
var ErrNotFound = errors.New("plan not found")

// PlanRepo persists named plan snapshots.
type PlanRepo interface {
	Save(ctx context.Context, p *domain.Plan) error
	GetByName(ctx context.Context, name string) (*domain.Plan, error)
	List(ctx context.Context) ([]*domain.Plan, error)
	Delete(ctx context.Context, name string) error
}
