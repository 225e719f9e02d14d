package persistence

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/arifmia1129/amiuddokta-server-sub002/internal/domain/crud"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/pkg/apperr"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/pkg/logger"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/pkg/pagination"

	"gorm.io/gorm"
)

// model is the pointer side of a GORM model M mapping to the domain entity T.
type model[T any, M any] interface {
	*M
	ToDomain() *T
	FromDomain(*T)
	PrimaryKey() uint
}

// listSpec allowlists the columns a list query may search, sort and filter on.
// readOnly columns are never written by Update; dedicated repository methods
// own them.
type listSpec struct {
	searchable []string
	sortable   []string
	filterable []string
	readOnly   []string
}

// gormRepository implements crud.Repository for one entity type.
type gormRepository[T crud.Entity, M any, PM model[T, M]] struct {
	db     *gorm.DB
	logger logger.Logger
	entity string
	spec   listSpec
}

func newGormRepository[T crud.Entity, M any, PM model[T, M]](db *gorm.DB, log logger.Logger, entity string, spec listSpec) *gormRepository[T, M, PM] {
	if !slices.Contains(spec.sortable, "id") {
		spec.sortable = append(spec.sortable, "id")
	}
	if !slices.Contains(spec.sortable, pagination.DefaultSortBy) {
		spec.sortable = append(spec.sortable, pagination.DefaultSortBy)
	}
	return &gormRepository[T, M, PM]{db: db, logger: log, entity: entity, spec: spec}
}

func (r *gormRepository[T, M, PM]) Create(ctx context.Context, entity *T) error {
	if err := (*entity).Validate(); err != nil {
		return err
	}

	m := PM(new(M))
	m.FromDomain(entity)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return r.translate("create", err)
	}
	*entity = *m.ToDomain()

	r.logger.Info("created "+r.entity, "id", m.PrimaryKey())
	return nil
}

func (r *gormRepository[T, M, PM]) GetByID(ctx context.Context, id uint) (*T, error) {
	m := PM(new(M))
	if err := r.db.WithContext(ctx).First(m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound(r.entity, id)
		}
		return nil, fmt.Errorf("failed to fetch %s: %w", r.entity, err)
	}
	return m.ToDomain(), nil
}

func (r *gormRepository[T, M, PM]) List(ctx context.Context, query *crud.ListQuery) ([]*T, int64, error) {
	return r.list(r.db.WithContext(ctx), query)
}

// list runs query on top of base, which may already carry extra conditions.
func (r *gormRepository[T, M, PM]) list(base *gorm.DB, query *crud.ListQuery) ([]*T, int64, error) {
	if query == nil {
		query = crud.NewListQuery(pagination.Options{})
	}
	stmt := r.scope(base.Model(PM(new(M))), query).Session(&gorm.Session{})

	var total int64
	if err := stmt.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count %s: %w", r.entity, err)
	}

	var rows []M
	err := stmt.Order(r.order(query)).
		Limit(query.Limit).
		Offset(query.Offset()).
		Find(&rows).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch %s list: %w", r.entity, err)
	}

	items := make([]*T, len(rows))
	for i := range rows {
		items[i] = PM(&rows[i]).ToDomain()
	}
	return items, total, nil
}

// likeEscaper makes LIKE wildcards in a search term match literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// scope applies allowlisted equality filters and the search term.
func (r *gormRepository[T, M, PM]) scope(tx *gorm.DB, query *crud.ListQuery) *gorm.DB {
	for _, column := range r.spec.filterable {
		value, ok := query.Filters[column]
		if !ok || value == nil {
			continue
		}
		tx = tx.Where(column+" = ?", value)
	}

	term := strings.ToLower(strings.TrimSpace(query.SearchTerm))
	if term == "" || len(r.spec.searchable) == 0 {
		return tx
	}
	pattern := "%" + likeEscaper.Replace(term) + "%"
	conds := make([]string, len(r.spec.searchable))
	args := make([]any, len(r.spec.searchable))
	for i, column := range r.spec.searchable {
		conds[i] = "LOWER(" + column + ") LIKE ? ESCAPE '\\'"
		args[i] = pattern
	}
	return tx.Where("("+strings.Join(conds, " OR ")+")", args...)
}

func (r *gormRepository[T, M, PM]) order(query *crud.ListQuery) string {
	column := pagination.DefaultSortBy
	if slices.Contains(r.spec.sortable, query.SortBy) {
		column = query.SortBy
	}
	direction := pagination.SortDesc
	if query.SortOrder == pagination.SortAsc {
		direction = pagination.SortAsc
	}
	if column == "id" {
		return "id " + direction
	}
	return column + " " + direction + ", id " + direction
}

func (r *gormRepository[T, M, PM]) Update(ctx context.Context, entity *T) error {
	if err := (*entity).Validate(); err != nil {
		return err
	}

	m := PM(new(M))
	m.FromDomain(entity)
	if m.PrimaryKey() == 0 {
		return apperr.Validationf("%s id is required for update", r.entity)
	}
	tx := r.db.WithContext(ctx)
	if len(r.spec.readOnly) > 0 {
		tx = tx.Omit(r.spec.readOnly...)
	}
	if err := tx.Save(m).Error; err != nil {
		return r.translate("update", err)
	}
	if len(r.spec.readOnly) > 0 {
		// reload so the caller sees the stored values of the omitted columns
		if err := r.db.WithContext(ctx).First(m, m.PrimaryKey()).Error; err != nil {
			return r.translate("reload", err)
		}
	}
	*entity = *m.ToDomain()

	r.logger.Info("updated "+r.entity, "id", m.PrimaryKey())
	return nil
}

func (r *gormRepository[T, M, PM]) DeleteByID(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(PM(new(M)), id)
	if res.Error != nil {
		return r.translate("delete", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound(r.entity, id)
	}

	r.logger.Info("deleted "+r.entity, "id", id)
	return nil
}

// exists reports whether a row matches the condition.
func (r *gormRepository[T, M, PM]) exists(ctx context.Context, query string, args ...any) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(PM(new(M))).Where(query, args...).Limit(1).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to query %s: %w", r.entity, err)
	}
	return count > 0, nil
}

// translate maps driver errors to apperr sentinels.
func (r *gormRepository[T, M, PM]) translate(op string, err error) error {
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%s %w", r.entity, apperr.ErrConflict)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return apperr.Validationf("%s references a missing record", r.entity)
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%s %w", r.entity, apperr.ErrNotFound)
	default:
		return fmt.Errorf("failed to %s %s: %w", op, r.entity, err)
	}
}

// countBy groups the table by column and counts the rows of every value.
func countBy(ctx context.Context, db *gorm.DB, table any, column string) (map[string]int64, error) {
	var rows []struct {
		Value string
		Count int64
	}
	err := db.WithContext(ctx).Model(table).
		Select(column + " AS value, COUNT(*) AS count").
		Group(column).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count by %s: %w", column, err)
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Value] = row.Count
	}
	return counts, nil
}
