package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/arifmia1129/amiuddokta-server-sub002/internal/domain/applications"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/domain/crud"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/domain/publicservices"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/domain/users"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/pkg/apperr"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/pkg/logger"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/pkg/pagination"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/pkg/validators"

	"github.com/google/uuid"
)

// applicationService implements applications.Service
type applicationService struct {
	repo     applications.Repository
	services crud.Repository[publicservices.PublicService]
	schemas  publicservices.SchemaValidator
	logger   logger.Logger
	now      func() time.Time
}

// NewApplicationService creates a new instance of applications.Service
func NewApplicationService(
	repo applications.Repository,
	services crud.Repository[publicservices.PublicService],
	schemas publicservices.SchemaValidator,
	log logger.Logger,
) (applications.Service, error) {
	return &applicationService{repo: repo, services: services, schemas: schemas, logger: log, now: time.Now}, nil
}

// newTrackingNo returns the filing date followed by eight random hex digits,
// e.g. 20261016-3F9A0C2B.
func (s *applicationService) newTrackingNo() string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	return s.now().Format("20060102") + "-" + strings.ToUpper(id[:8])
}

// Create files an application for an active service and charges its price to
// the caller's balance.
func (s *applicationService) Create(ctx context.Context, actor users.Claims, input *applications.CreateInput) (*applications.Application, error) {
	if err := validators.Struct(input); err != nil {
		return nil, apperr.Validation(err)
	}

	service, err := s.services.GetByID(ctx, input.ServiceID)
	if errors.Is(err, apperr.ErrNotFound) {
		return nil, apperr.Validationf("service %d does not exist", input.ServiceID)
	}
	if err != nil {
		return nil, err
	}
	if !service.IsActive() {
		return nil, apperr.Validationf("service %s is not accepting applications", service.Title)
	}
	if service.FormSchema != nil {
		if err := s.schemas.Validate(ctx, *service.FormSchema, input.Data); err != nil {
			return nil, err
		}
	}

	app := &applications.Application{
		TrackingNo:     s.newTrackingNo(),
		UserID:         actor.UserID,
		ServiceID:      service.ID,
		ApplicantName:  input.ApplicantName,
		ApplicantPhone: input.ApplicantPhone,
		Data:           input.Data,
		Charge:         service.Price,
		Status:         applications.StatusPending,
	}
	if err := s.repo.CreateCharged(ctx, app); err != nil {
		return nil, fmt.Errorf("failed to file application: %w", err)
	}

	s.logger.Info("application filed", "id", app.ID, "tracking_no", app.TrackingNo, "user_id", actor.UserID)
	return app, nil
}

func (s *applicationService) GetByID(ctx context.Context, actor users.Claims, id uint) (*applications.Application, error) {
	app, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.CanAccess(app.UserID) {
		return nil, fmt.Errorf("application %d: %w", id, apperr.ErrForbidden)
	}
	return app, nil
}

// List restricts entrepreneurs to their own applications.
func (s *applicationService) List(ctx context.Context, actor users.Claims, query *crud.ListQuery) ([]*applications.Application, pagination.Meta, error) {
	if query == nil {
		query = crud.NewListQuery(pagination.Options{})
	}
	if !actor.IsAdmin() {
		query.Filter("user_id", actor.UserID)
	}
	items, total, err := s.repo.List(ctx, query)
	if err != nil {
		return nil, pagination.Meta{}, err
	}
	return items, pagination.NewMeta(query.Options, total), nil
}

// UpdateStatus moves an application along its workflow. Rejection refunds
// the charge.
func (s *applicationService) UpdateStatus(ctx context.Context, id uint, input *applications.StatusInput) (*applications.Application, error) {
	if err := validators.Struct(input); err != nil {
		return nil, apperr.Validation(err)
	}

	app, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !applications.CanTransition(app.Status, input.Status) {
		return nil, fmt.Errorf("%s to %s: %w", app.Status, input.Status, apperr.ErrInvalidStatusTransition)
	}
	if err := s.repo.UpdateStatus(ctx, id, app.Status, input.Status, input.Note); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *applicationService) DeleteByID(ctx context.Context, id uint) error {
	return s.repo.DeleteByID(ctx, id)
}
