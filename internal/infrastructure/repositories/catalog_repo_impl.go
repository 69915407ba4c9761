package repositories

import (
	"context"
	"fmt"

	domainerrors "hackathon-catalog.backend/internal/domain/errors"
	domainRepos "hackathon-catalog.backend/internal/domain/repositories"
	"hackathon-catalog.backend/internal/infrastructure/procedures"
)

// procedureSet names the five procedures behind one catalog resource.
type procedureSet struct {
	create, get, update, delete, list string
}

// catalogRepository maps one entity kind onto its procedures. params renders
// the full positional argument list (id first) used by both create and
// update; hydrate builds an entity from a result row.
type catalogRepository[T any] struct {
	gw      procedures.Gateway
	procs   procedureSet
	params  func(T) ([]procedures.Param, error)
	hydrate func(procedures.Row) (T, error)
}

var _ domainRepos.CatalogRepository[int] = (*catalogRepository[int])(nil)

func (r *catalogRepository[T]) Create(ctx context.Context, entity T) error {
	return r.write(ctx, r.procs.create, entity)
}

func (r *catalogRepository[T]) Update(ctx context.Context, entity T) error {
	return r.write(ctx, r.procs.update, entity)
}

func (r *catalogRepository[T]) write(ctx context.Context, procedure string, entity T) error {
	params, err := r.params(entity)
	if err != nil {
		return fmt.Errorf("%s: %w: %w", procedure, domainerrors.ErrPersistenceFailure, err)
	}
	_, err = r.gw.Call(ctx, procedure, params...)
	return err
}

func (r *catalogRepository[T]) GetByID(ctx context.Context, id int64) (T, error) {
	var zero T
	rows, err := r.gw.Call(ctx, r.procs.get, procedures.P("id", id))
	if err != nil {
		return zero, err
	}
	if len(rows) == 0 {
		return zero, domainerrors.ErrNotFound
	}
	return r.decode(rows[0])
}

func (r *catalogRepository[T]) Delete(ctx context.Context, id int64) error {
	_, err := r.gw.Call(ctx, r.procs.delete, procedures.P("id", id))
	return err
}

func (r *catalogRepository[T]) List(ctx context.Context) ([]T, error) {
	rows, err := r.gw.Call(ctx, r.procs.list)
	if err != nil {
		return nil, err
	}
	items := make([]T, 0, len(rows))
	for _, row := range rows {
		item, err := r.decode(row)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func (r *catalogRepository[T]) decode(row procedures.Row) (T, error) {
	item, err := r.hydrate(row)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("%s: decode row: %w: %w", r.procs.get, domainerrors.ErrPersistenceFailure, err)
	}
	return item, nil
}
