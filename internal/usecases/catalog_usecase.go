package usecases

import (
	"context"
	"errors"
	"fmt"

	"hackathon-catalog.backend/internal/domain/entities"
	domainerrors "hackathon-catalog.backend/internal/domain/errors"
	"hackathon-catalog.backend/internal/domain/repositories"
)

// CatalogEntity is what the single-call resources have in common.
type CatalogEntity interface {
	Validate() error
}

// Patch applies the fields present in a partial update to a loaded entity.
type Patch[T any] interface {
	Apply(entity T)
}

// CatalogUsecase is the CRUD service shared by students, mentors and both
// challenge kinds. Every operation is one procedure call, except Update which
// loads the stored entity first.
type CatalogUsecase[T CatalogEntity] struct {
	repo     repositories.CatalogRepository[T]
	resource string
}

func NewCatalogUsecase[T CatalogEntity](resource string, repo repositories.CatalogRepository[T]) *CatalogUsecase[T] {
	return &CatalogUsecase[T]{repo: repo, resource: resource}
}

type (
	StudentUsecase               = CatalogUsecase[*entities.Student]
	MentorUsecase                = CatalogUsecase[*entities.Mentor]
	ExperimentalChallengeUsecase = CatalogUsecase[*entities.ExperimentalChallenge]
	RealChallengeUsecase         = CatalogUsecase[*entities.RealChallenge]
)

func NewStudentUsecase(repo repositories.StudentRepository) *StudentUsecase {
	return NewCatalogUsecase[*entities.Student]("estudiante", repo)
}

func NewMentorUsecase(repo repositories.MentorRepository) *MentorUsecase {
	return NewCatalogUsecase[*entities.Mentor]("mentor", repo)
}

func NewExperimentalChallengeUsecase(repo repositories.ExperimentalChallengeRepository) *ExperimentalChallengeUsecase {
	return NewCatalogUsecase[*entities.ExperimentalChallenge]("reto experimental", repo)
}

func NewRealChallengeUsecase(repo repositories.RealChallengeRepository) *RealChallengeUsecase {
	return NewCatalogUsecase[*entities.RealChallenge]("reto real", repo)
}

// Create persists an unsaved entity.
func (u *CatalogUsecase[T]) Create(ctx context.Context, entity T) error {
	if err := entity.Validate(); err != nil {
		return domainerrors.Validation(err.Error())
	}
	if err := u.repo.Create(ctx, entity); err != nil {
		return persistenceError("create "+u.resource, err)
	}
	return nil
}

// GetByID returns ErrNotFound when no row matches. A non-positive id can
// never match, so it is reported the same way without a call.
func (u *CatalogUsecase[T]) GetByID(ctx context.Context, id int64) (T, error) {
	var zero T
	if id <= 0 {
		return zero, domainerrors.ErrNotFound
	}
	entity, err := u.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return zero, domainerrors.ErrNotFound
		}
		return zero, persistenceError("get "+u.resource, err)
	}
	return entity, nil
}

func (u *CatalogUsecase[T]) List(ctx context.Context) ([]T, error) {
	items, err := u.repo.List(ctx)
	if err != nil {
		return nil, persistenceError("list "+u.resource, err)
	}
	return items, nil
}

// Update loads the stored entity, applies the patch and writes the result.
func (u *CatalogUsecase[T]) Update(ctx context.Context, id int64, patch Patch[T]) (T, error) {
	var zero T
	if id <= 0 {
		return zero, domainerrors.Validation("id es obligatorio")
	}
	entity, err := u.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return zero, domainerrors.NotFound(fmt.Sprintf("%s %d no encontrado", u.resource, id))
		}
		return zero, persistenceError("load "+u.resource, err)
	}

	patch.Apply(entity)
	if err := entity.Validate(); err != nil {
		return zero, domainerrors.Validation(err.Error())
	}
	if err := u.repo.Update(ctx, entity); err != nil {
		return zero, persistenceError("update "+u.resource, err)
	}
	return entity, nil
}

func (u *CatalogUsecase[T]) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return domainerrors.Validation("id es obligatorio")
	}
	if err := u.repo.Delete(ctx, id); err != nil {
		return persistenceError("delete "+u.resource, err)
	}
	return nil
}
