package app

import (
	"context"
	"fmt"

	"github.com/arifmia1129/amiuddokta-server-sub002/internal/domain/crud"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/domain/users"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/pkg/apperr"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/pkg/logger"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/pkg/pagination"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/pkg/validators"
)

// userService implements users.Service
type userService struct {
	repo   users.Repository
	hasher users.PasswordHasher
	logger logger.Logger
}

// NewUserService creates a new instance of users.Service
func NewUserService(repo users.Repository, hasher users.PasswordHasher, log logger.Logger) (users.Service, error) {
	return &userService{repo: repo, hasher: hasher, logger: log}, nil
}

// Create registers an active account with a zero balance. The role defaults
// to entrepreneur.
func (s *userService) Create(ctx context.Context, input *users.CreateInput) (*users.User, error) {
	if err := validators.Struct(input); err != nil {
		return nil, apperr.Validation(err)
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}
	role := input.Role
	if role == "" {
		role = users.RoleEntrepreneur
	}

	user := &users.User{
		Name:         input.Name,
		Phone:        input.Phone,
		Email:        input.Email,
		PasswordHash: hash,
		Role:         role,
		Status:       users.StatusActive,
		NID:          input.NID,
		Image:        input.Image,
		DivisionID:   input.DivisionID,
		DistrictID:   input.DistrictID,
		UpazilaID:    input.UpazilaID,
		UnionID:      input.UnionID,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("user created", "id", user.ID, "role", user.Role)
	return user, nil
}

// GetByID lets administrators read any account and others only their own.
func (s *userService) GetByID(ctx context.Context, actor users.Claims, id uint) (*users.User, error) {
	if !actor.CanAccess(id) {
		return nil, fmt.Errorf("user %d: %w", id, apperr.ErrForbidden)
	}
	return s.repo.GetByID(ctx, id)
}

func (s *userService) List(ctx context.Context, query *crud.ListQuery) ([]*users.User, pagination.Meta, error) {
	if query == nil {
		query = crud.NewListQuery(pagination.Options{})
	}
	items, total, err := s.repo.List(ctx, query)
	if err != nil {
		return nil, pagination.Meta{}, err
	}
	return items, pagination.NewMeta(query.Options, total), nil
}

func (s *userService) Update(ctx context.Context, id uint, input *users.UpdateInput) (*users.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	input.Apply(user)

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return user, nil
}

// DeleteByID removes an account other than the caller's own.
func (s *userService) DeleteByID(ctx context.Context, actor users.Claims, id uint) error {
	if actor.UserID == id {
		return apperr.Validationf("you cannot delete your own account")
	}
	return s.repo.DeleteByID(ctx, id)
}
