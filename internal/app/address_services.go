package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/arifmia1129/amiuddokta-server-sub002/internal/domain/addresses"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/domain/crud"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/pkg/apperr"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/pkg/logger"
)

// NewAddressService creates the address service. A parent must exist and sit
// exactly one level above the child. Addresses with children cannot be
// deleted or change their type.
func NewAddressService(repo addresses.Repository, log logger.Logger) (crud.Service[addresses.Address, addresses.Input], error) {
	hooks := crudHooks[addresses.Address]{
		beforeSave: func(ctx context.Context, a *addresses.Address, isNew bool) error {
			if err := a.Validate(); err != nil {
				return err
			}
			if !isNew {
				if err := checkRetype(ctx, repo, a); err != nil {
					return err
				}
			}
			if a.ParentID == nil {
				return nil
			}
			if *a.ParentID == a.ID {
				return apperr.Validationf("an address cannot be its own parent")
			}
			parent, err := repo.GetByID(ctx, *a.ParentID)
			if errors.Is(err, apperr.ErrNotFound) {
				return apperr.Validationf("parent address %d does not exist", *a.ParentID)
			}
			if err != nil {
				return err
			}
			if want, _ := a.Type.ParentType(); parent.Type != want {
				return apperr.Validationf("the parent of a %s must be a %s, got %s", a.Type, want, parent.Type)
			}
			return nil
		},
		beforeDelete: func(ctx context.Context, id uint) error {
			children, err := repo.CountChildren(ctx, id)
			if err != nil {
				return err
			}
			if children > 0 {
				return fmt.Errorf("address %d has %d child addresses: %w", id, children, apperr.ErrConflict)
			}
			return nil
		},
	}
	return newCRUDService[addresses.Address, addresses.Input](repo, "address", hooks, log), nil
}

// checkRetype rejects a type change of an address that has children, since
// they would no longer sit one level below it.
func checkRetype(ctx context.Context, repo addresses.Repository, a *addresses.Address) error {
	stored, err := repo.GetByID(ctx, a.ID)
	if err != nil {
		return err
	}
	if stored.Type == a.Type {
		return nil
	}
	children, err := repo.CountChildren(ctx, a.ID)
	if err != nil {
		return err
	}
	if children > 0 {
		return fmt.Errorf("address %d has %d child addresses and cannot become a %s: %w", a.ID, children, a.Type, apperr.ErrConflict)
	}
	return nil
}
