// Package adapters provides the repository implementations for the mtc
// feature.
package adapters

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	courseusecase "mtc_backend/internal/feature/course/usecase"
	"mtc_backend/internal/feature/mtc/domain"
	"mtc_backend/internal/feature/mtc/domain/entity"
	"mtc_backend/internal/feature/mtc/usecase"
	seederusecase "mtc_backend/internal/feature/seeder/usecase"
)

// mtcPostgres is the gorm implementation of the mtc repository contracts.
type mtcPostgres struct {
	db *gorm.DB
}

var (
	_ usecase.MtcRepository    = (*mtcPostgres)(nil)
	_ courseusecase.MtcCatalog = (*mtcPostgres)(nil)
	_ seederusecase.MtcStore   = (*mtcPostgres)(nil)
)

// NewMtcPostgres creates an mtc repository on the given gorm connection.
func NewMtcPostgres(db *gorm.DB) *mtcPostgres {
	return &mtcPostgres{db: db}
}

// Sortable column whitelist; request sortBy values outside it fall back to
// the name column.
var mtcSortColumns = map[string]string{
	"name":          "name",
	"averageRating": "average_rating",
	"averageCost":   "average_cost",
}

func (r *mtcPostgres) Create(ctx context.Context, mtc *entity.Mtc) error {
	return r.db.WithContext(ctx).Create(mtc).Error
}

// Update saves the full row so fields cleared to nil are persisted too.
func (r *mtcPostgres) Update(ctx context.Context, mtc *entity.Mtc) error {
	return r.db.WithContext(ctx).Save(mtc).Error
}

func (r *mtcPostgres) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&entity.Mtc{}, "id = ?", id).Error
}

func (r *mtcPostgres) FindByID(ctx context.Context, id string) (*entity.Mtc, error) {
	var mtc entity.Mtc
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&mtc).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMtcNotFound
		}
		return nil, err
	}
	return &mtc, nil
}

func (r *mtcPostgres) FindByName(ctx context.Context, name string) (*entity.Mtc, error) {
	var mtc entity.Mtc
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&mtc).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMtcNotFound
		}
		return nil, err
	}
	return &mtc, nil
}

func (r *mtcPostgres) Count(ctx context.Context, q usecase.ListQuery) (int64, error) {
	var total int64
	err := r.listQuery(ctx, q).Model(&entity.Mtc{}).Count(&total).Error
	return total, err
}

func (r *mtcPostgres) List(ctx context.Context, q usecase.ListQuery) ([]entity.Mtc, error) {
	tx := r.listQuery(ctx, q).Order(sortClause(mtcSortColumns, q.SortBy, q.SortOrder, "name"))
	if q.Skip != nil && q.Take != nil {
		tx = tx.Offset(*q.Skip).Limit(*q.Take)
	}

	var mtcs []entity.Mtc
	if err := tx.Find(&mtcs).Error; err != nil {
		return nil, err
	}
	return mtcs, nil
}

func (r *mtcPostgres) FindWithinBox(ctx context.Context, box usecase.BoundingBox) ([]entity.Mtc, error) {
	var mtcs []entity.Mtc
	err := r.db.WithContext(ctx).
		Where("location_longitude BETWEEN ? AND ?", box.MinLongitude, box.MaxLongitude).
		Where("location_latitude BETWEEN ? AND ?", box.MinLatitude, box.MaxLatitude).
		Find(&mtcs).Error
	if err != nil {
		return nil, err
	}
	return mtcs, nil
}

func (r *mtcPostgres) UpdatePhoto(ctx context.Context, id, filename string) error {
	return r.db.WithContext(ctx).Model(&entity.Mtc{}).
		Where("id = ?", id).
		Update("photo", filename).Error
}

// UpdateAverageCost persists the derived average; nil clears the column.
func (r *mtcPostgres) UpdateAverageCost(ctx context.Context, id string, average *float64) error {
	return r.db.WithContext(ctx).Model(&entity.Mtc{}).
		Where("id = ?", id).
		Update("average_cost", average).Error
}

func (r *mtcPostgres) CreateBatch(ctx context.Context, mtcs []entity.Mtc) error {
	if len(mtcs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&mtcs).Error
}

func (r *mtcPostgres) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Where("1 = 1").Delete(&entity.Mtc{}).Error
}

func (r *mtcPostgres) listQuery(ctx context.Context, q usecase.ListQuery) *gorm.DB {
	tx := r.db.WithContext(ctx)
	if q.Search != "" {
		tx = tx.Where("name LIKE ? ESCAPE '\\'", escapeLikePrefix(q.Search)+"%")
	}
	return tx
}

// sortClause maps a request sortBy value onto a whitelisted column and
// normalizes the order, keeping user input out of the ORDER BY clause.
func sortClause(columns map[string]string, sortBy, sortOrder, fallback string) string {
	column, ok := columns[sortBy]
	if !ok {
		column = fallback
	}
	order := "ASC"
	if strings.EqualFold(sortOrder, "desc") {
		order = "DESC"
	}
	return column + " " + order
}

// escapeLikePrefix escapes LIKE metacharacters so search input is matched
// literally as a prefix.
func escapeLikePrefix(s string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return replacer.Replace(s)
}
