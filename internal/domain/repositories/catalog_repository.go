package repositories

import (
	"context"

	"hackathon-catalog.backend/internal/domain/entities"
)

// CatalogRepository is the single-call CRUD contract shared by the peer
// resources. GetByID returns errors.ErrNotFound when no row matches.
type CatalogRepository[T any] interface {
	Create(ctx context.Context, entity T) error
	GetByID(ctx context.Context, id int64) (T, error)
	Update(ctx context.Context, entity T) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]T, error)
}

type (
	StudentRepository               = CatalogRepository[*entities.Student]
	MentorRepository                = CatalogRepository[*entities.Mentor]
	ExperimentalChallengeRepository = CatalogRepository[*entities.ExperimentalChallenge]
	RealChallengeRepository         = CatalogRepository[*entities.RealChallenge]
)
