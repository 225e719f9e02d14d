package v1

import (
	"fmt"
	"strconv"

	"github.com/arifmia1129/amiuddokta-server-sub002/internal/api/rest/v1/middleware"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/domain/crud"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/domain/users"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/pkg/apperr"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/pkg/pagination"

	"github.com/gin-gonic/gin"
)

// filter maps a query parameter onto an exact-match column. Numeric filters
// are parsed so that they compare correctly against integer columns.
type filter struct {
	param   string
	numeric bool
}

func textFilter(param string) filter { return filter{param: param} }

func idFilter(param string) filter { return filter{param: param, numeric: true} }

// sortDefault overrides the default ordering when sortBy is absent.
type sortDefault struct {
	column string
	order  string
}

// listQuery builds a list query from page, limit, sortBy, sortOrder,
// searchTerm and the allowed filters.
func listQuery(ctx *gin.Context, filters []filter, def *sortDefault) (*crud.ListQuery, error) {
	opts := pagination.FromQuery(ctx.Request.URL.Query())
	if def != nil && ctx.Query("sortBy") == "" {
		opts.SortBy = def.column
		if ctx.Query("sortOrder") == "" {
			opts.SortOrder = def.order
		}
	}

	query := crud.NewListQuery(opts)
	for _, f := range filters {
		raw, ok := ctx.GetQuery(f.param)
		if !ok || raw == "" {
			continue
		}
		if !f.numeric {
			query.Filter(f.param, raw)
			continue
		}
		n, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return nil, apperr.Validationf("%s must be a positive integer", f.param)
		}
		query.Filter(f.param, uint(n))
	}
	return query, nil
}

// pathID parses the :id path parameter.
func pathID(ctx *gin.Context) (uint, error) {
	raw := ctx.Param("id")
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || n == 0 {
		return 0, apperr.Validationf("invalid id %q", raw)
	}
	return uint(n), nil
}

// bindJSON decodes the request body into dst.
func bindJSON(ctx *gin.Context, dst any) error {
	if err := ctx.ShouldBindJSON(dst); err != nil {
		return apperr.Validation(fmt.Errorf("invalid request body: %w", err))
	}
	return nil
}

// mustClaims returns the caller's claims. Routes using it sit behind
// middleware.Auth, so a missing value is a wiring error.
func mustClaims(ctx *gin.Context) users.Claims {
	claims, ok := middleware.ClaimsFrom(ctx)
	if !ok {
		panic("v1: handler requires middleware.Auth")
	}
	return claims
}

// isAdmin reports whether an optionally authenticated caller is an admin.
func isAdmin(ctx *gin.Context) bool {
	claims, ok := middleware.ClaimsFrom(ctx)
	return ok && claims.IsAdmin()
}
