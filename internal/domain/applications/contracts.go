package applications

import (
	"context"

	"github.com/arifmia1129/amiuddokta-server-sub002/internal/domain/crud"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/domain/users"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/pkg/pagination"
)

// Repository defines persistence for applications. Balance movements happen
// in the same transaction as the application write.
type Repository interface {
	// CreateCharged debits app.Charge from the owner's balance and inserts
	// app atomically. It returns apperr.ErrInsufficientBalance if the owner
	// cannot afford the charge.
	CreateCharged(ctx context.Context, app *Application) error
	GetByID(ctx context.Context, id uint) (*Application, error)
	List(ctx context.Context, query *crud.ListQuery) ([]*Application, int64, error)
	// UpdateStatus moves the application from one status to another and
	// refunds the charge when to is StatusRejected. It returns
	// apperr.ErrInvalidStatusTransition if the stored status is not from.
	UpdateStatus(ctx context.Context, id uint, from, to Status, note *string) error
	DeleteByID(ctx context.Context, id uint) error
	CountByStatus(ctx context.Context) (map[Status]int64, error)
}

// Service files and processes applications.
type Service interface {
	Create(ctx context.Context, actor users.Claims, input *CreateInput) (*Application, error)
	GetByID(ctx context.Context, actor users.Claims, id uint) (*Application, error)
	List(ctx context.Context, actor users.Claims, query *crud.ListQuery) ([]*Application, pagination.Meta, error)
	UpdateStatus(ctx context.Context, id uint, input *StatusInput) (*Application, error)
	DeleteByID(ctx context.Context, id uint) error
}
