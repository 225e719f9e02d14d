package app

import (
	"context"
	"fmt"

	"github.com/arifmia1129/amiuddokta-server-sub002/internal/domain/crud"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/pkg/logger"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/pkg/pagination"
)

// crudHooks lets a resource add rules around the generic CRUD flow.
type crudHooks[T any] struct {
	// beforeSave runs after the input was applied and before the write.
	beforeSave func(ctx context.Context, entity *T, isNew bool) error
	// beforeDelete runs before a row is removed.
	beforeDelete func(ctx context.Context, id uint) error
}

// crudService implements crud.Service on top of a crud.Repository.
type crudService[T crud.Entity, I crud.Input[T]] struct {
	repo   crud.Repository[T]
	entity string
	hooks  crudHooks[T]
	logger logger.Logger
}

func newCRUDService[T crud.Entity, I crud.Input[T]](repo crud.Repository[T], entity string, hooks crudHooks[T], log logger.Logger) *crudService[T, I] {
	return &crudService[T, I]{repo: repo, entity: entity, hooks: hooks, logger: log}
}

func (s *crudService[T, I]) Create(ctx context.Context, input I) (*T, error) {
	entity := new(T)
	input.Apply(entity)

	if s.hooks.beforeSave != nil {
		if err := s.hooks.beforeSave(ctx, entity, true); err != nil {
			return nil, err
		}
	}
	if err := s.repo.Create(ctx, entity); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", s.entity, err)
	}
	return entity, nil
}

func (s *crudService[T, I]) GetByID(ctx context.Context, id uint) (*T, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *crudService[T, I]) List(ctx context.Context, query *crud.ListQuery) ([]*T, pagination.Meta, error) {
	if query == nil {
		query = crud.NewListQuery(pagination.Options{})
	}
	items, total, err := s.repo.List(ctx, query)
	if err != nil {
		return nil, pagination.Meta{}, err
	}
	return items, pagination.NewMeta(query.Options, total), nil
}

func (s *crudService[T, I]) Update(ctx context.Context, id uint, input I) (*T, error) {
	entity, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	input.Apply(entity)

	if s.hooks.beforeSave != nil {
		if err := s.hooks.beforeSave(ctx, entity, false); err != nil {
			return nil, err
		}
	}
	if err := s.repo.Update(ctx, entity); err != nil {
		return nil, fmt.Errorf("failed to update %s: %w", s.entity, err)
	}
	return entity, nil
}

func (s *crudService[T, I]) DeleteByID(ctx context.Context, id uint) error {
	if s.hooks.beforeDelete != nil {
		if err := s.hooks.beforeDelete(ctx, id); err != nil {
			return err
		}
	}
	return s.repo.DeleteByID(ctx, id)
}
