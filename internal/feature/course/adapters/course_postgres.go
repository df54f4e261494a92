// Package adapters provides the repository implementations for the course
// feature.
package adapters

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"mtc_backend/internal/feature/course/domain"
	"mtc_backend/internal/feature/course/domain/entity"
	"mtc_backend/internal/feature/course/usecase"
	mtcusecase "mtc_backend/internal/feature/mtc/usecase"
	seederusecase "mtc_backend/internal/feature/seeder/usecase"
)

// coursePostgres is the gorm implementation of the course repository
// contracts.
type coursePostgres struct {
	db *gorm.DB
}

var (
	_ usecase.CourseRepository  = (*coursePostgres)(nil)
	_ mtcusecase.CourseRemover  = (*coursePostgres)(nil)
	_ seederusecase.CourseStore = (*coursePostgres)(nil)
)

// NewCoursePostgres creates a course repository on the given gorm
// connection.
func NewCoursePostgres(db *gorm.DB) *coursePostgres {
	return &coursePostgres{db: db}
}

// Sortable column whitelist; request sortBy values outside it fall back to
// the title column.
var courseSortColumns = map[string]string{
	"title":         "title",
	"weeksDuration": "weeks_duration",
	"tuitionCost":   "tuition_cost",
	"minimumSkill":  "minimum_skill",
}

func (r *coursePostgres) Create(ctx context.Context, course *entity.Course) error {
	return r.db.WithContext(ctx).Create(course).Error
}

// Update saves the full row so zeroed fields are persisted too.
func (r *coursePostgres) Update(ctx context.Context, course *entity.Course) error {
	return r.db.WithContext(ctx).Save(course).Error
}

func (r *coursePostgres) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&entity.Course{}, "id = ?", id).Error
}

func (r *coursePostgres) FindByID(ctx context.Context, id string) (*entity.Course, error) {
	var course entity.Course
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCourseNotFound
		}
		return nil, err
	}
	return &course, nil
}

func (r *coursePostgres) Count(ctx context.Context, q usecase.ListQuery) (int64, error) {
	var total int64
	err := r.listQuery(ctx, q).Model(&entity.Course{}).Count(&total).Error
	return total, err
}

func (r *coursePostgres) List(ctx context.Context, q usecase.ListQuery) ([]entity.Course, error) {
	tx := r.listQuery(ctx, q).Order(courseSortClause(q.SortBy, q.SortOrder))
	if q.Skip != nil && q.Take != nil {
		tx = tx.Offset(*q.Skip).Limit(*q.Take)
	}

	var courses []entity.Course
	if err := tx.Find(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}

func (r *coursePostgres) DeleteByMtcID(ctx context.Context, mtcID string) error {
	return r.db.WithContext(ctx).Where("mtc_id = ?", mtcID).Delete(&entity.Course{}).Error
}

// AverageTuitionByMtc returns the mean tuition cost over the mtc's
// courses, or nil when it has none.
func (r *coursePostgres) AverageTuitionByMtc(ctx context.Context, mtcID string) (*float64, error) {
	var average *float64
	err := r.db.WithContext(ctx).Model(&entity.Course{}).
		Where("mtc_id = ?", mtcID).
		Select("AVG(tuition_cost)").
		Scan(&average).Error
	if err != nil {
		return nil, err
	}
	return average, nil
}

func (r *coursePostgres) CreateBatch(ctx context.Context, courses []entity.Course) error {
	if len(courses) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&courses).Error
}

func (r *coursePostgres) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Where("1 = 1").Delete(&entity.Course{}).Error
}

func (r *coursePostgres) listQuery(ctx context.Context, q usecase.ListQuery) *gorm.DB {
	tx := r.db.WithContext(ctx)
	if q.Search != "" {
		tx = tx.Where("title LIKE ? ESCAPE '\\'", escapeLikePrefix(q.Search)+"%")
	}
	if q.MtcID != "" {
		tx = tx.Where("mtc_id = ?", q.MtcID)
	}
	return tx
}

func courseSortClause(sortBy, sortOrder string) string {
	column, ok := courseSortColumns[sortBy]
	if !ok {
		column = "title"
	}
	order := "ASC"
	if strings.EqualFold(sortOrder, "desc") {
		order = "DESC"
	}
	return column + " " + order
}

func escapeLikePrefix(s string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return replacer.Replace(s)
}
