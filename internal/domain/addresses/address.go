// Package addresses models the administrative geography used on agent and
// center profiles: division > district > upazila > union.
package addresses

import (
	"context"
	"time"

	"github.com/arifmia1129/amiuddokta-server-sub002/internal/domain/crud"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/pkg/apperr"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/pkg/validators"
)

// Type is the administrative level of an address.
type Type string

// Levels, from the top of the hierarchy down.
const (
	TypeDivision Type = "division"
	TypeDistrict Type = "district"
	TypeUpazila  Type = "upazila"
	TypeUnion    Type = "union"
)

// ParentType returns the level directly above t, and false for divisions
// and unknown types.
func (t Type) ParentType() (Type, bool) {
	switch t {
	case TypeDistrict:
		return TypeDivision, true
	case TypeUpazila:
		return TypeDistrict, true
	case TypeUnion:
		return TypeUpazila, true
	default:
		return "", false
	}
}

// Address is one node of the administrative hierarchy.
type Address struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name" validate:"required,max=100"`
	BnName    *string   `json:"bn_name,omitempty" validate:"omitempty,max=100"`
	Type      Type      `json:"type" validate:"required,oneof=division district upazila union"`
	ParentID  *uint     `json:"parent_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Validate checks fields and that only divisions are parentless.
func (a Address) Validate() error {
	if err := validators.Struct(a); err != nil {
		return apperr.Validation(err)
	}
	_, needsParent := a.Type.ParentType()
	switch {
	case needsParent && a.ParentID == nil:
		return apperr.Validationf("a %s requires parent_id", a.Type)
	case !needsParent && a.ParentID != nil:
		return apperr.Validationf("a %s cannot have a parent", a.Type)
	}
	return nil
}

// Input creates or partially updates an address.
type Input struct {
	Name     *string `json:"name"`
	BnName   *string `json:"bn_name"`
	Type     *Type   `json:"type"`
	ParentID *uint   `json:"parent_id"`
}

// Apply copies the set fields onto a.
func (in Input) Apply(a *Address) {
	if in.Name != nil {
		a.Name = *in.Name
	}
	if in.BnName != nil {
		a.BnName = in.BnName
	}
	if in.Type != nil {
		a.Type = *in.Type
	}
	if in.ParentID != nil {
		a.ParentID = in.ParentID
	}
}

// Repository defines persistence for addresses.
type Repository interface {
	crud.Repository[Address]
	// CountChildren returns how many addresses reference id as parent.
	CountChildren(ctx context.Context, id uint) (int64, error)
}
