package app

import (
	"context"

	"github.com/arifmia1129/amiuddokta-server-sub002/internal/domain/crud"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/domain/publicservices"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/pkg/logger"
)

// NewPublicServiceService creates the public service catalogue service. The
// form schema, when set, must compile.
func NewPublicServiceService(repo crud.Repository[publicservices.PublicService], schemas publicservices.SchemaValidator, log logger.Logger) (crud.Service[publicservices.PublicService, publicservices.Input], error) {
	hooks := crudHooks[publicservices.PublicService]{
		beforeSave: func(_ context.Context, s *publicservices.PublicService, _ bool) error {
			if s.FormSchema == nil {
				return nil
			}
			return schemas.CheckSchema(*s.FormSchema)
		},
	}
	return newCRUDService[publicservices.PublicService, publicservices.Input](repo, "public service", hooks, log), nil
}
