// Package usecase contains the application logic for courses, including
// the average-cost recomputation every mutation triggers on the owning
// training center.
package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"mtc_backend/internal/apperror"
	coursedomain "mtc_backend/internal/feature/course/domain"
	"mtc_backend/internal/feature/course/domain/entity"
	dto "mtc_backend/internal/feature/course/transport/http/dto"
	mtcdomain "mtc_backend/internal/feature/mtc/domain"
	mtcentity "mtc_backend/internal/feature/mtc/domain/entity"
	"mtc_backend/internal/validation"
)

// Client-facing detail messages.
const (
	CourseNotFoundMessage = "course not found"
	MtcNotFoundMessage    = "mtc not found"
)

// ListQuery narrows and orders a course listing. MtcID restricts the list
// to one training center's courses.
type ListQuery struct {
	Skip      *int
	Take      *int
	Search    string
	SortBy    string
	SortOrder string
	MtcID     string
}

// CourseRepository is the persistence contract required by this usecase.
type CourseRepository interface {
	Create(ctx context.Context, course *entity.Course) error
	Update(ctx context.Context, course *entity.Course) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*entity.Course, error)
	Count(ctx context.Context, q ListQuery) (int64, error)
	List(ctx context.Context, q ListQuery) ([]entity.Course, error)
	DeleteByMtcID(ctx context.Context, mtcID string) error
	AverageTuitionByMtc(ctx context.Context, mtcID string) (*float64, error)
}

// MtcCatalog is the slice of the mtc storage this usecase depends on:
// existence checks for course creation and the derived average cost.
type MtcCatalog interface {
	FindByID(ctx context.Context, id string) (*mtcentity.Mtc, error)
	UpdateAverageCost(ctx context.Context, id string, average *float64) error
}

// CourseUsecase implements the course operations.
type CourseUsecase struct {
	courses CourseRepository
	mtcs    MtcCatalog
}

// NewCourseUsecase creates a course usecase.
func NewCourseUsecase(courses CourseRepository, mtcs MtcCatalog) *CourseUsecase {
	return &CourseUsecase{courses: courses, mtcs: mtcs}
}

// List returns the total match count and one page of courses. The total is
// computed without paging; a zero total skips the page query entirely.
func (u *CourseUsecase) List(ctx context.Context, q ListQuery) (int64, []entity.Course, error) {
	total, err := u.courses.Count(ctx, q)
	if err != nil {
		return 0, nil, err
	}
	if total == 0 {
		return 0, []entity.Course{}, nil
	}

	courses, err := u.courses.List(ctx, q)
	if err != nil {
		return 0, nil, err
	}
	return total, courses, nil
}

// Get returns one course by id.
func (u *CourseUsecase) Get(ctx context.Context, id string) (*entity.Course, error) {
	course, err := u.courses.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, coursedomain.ErrCourseNotFound) {
			return nil, apperror.NewNotFound(apperror.CodeRecordNotFound, CourseNotFoundMessage)
		}
		return nil, err
	}
	return course, nil
}

// Create validates the payload, checks the owning mtc exists, persists the
// course and recomputes the mtc's average cost.
func (u *CourseUsecase) Create(ctx context.Context, rm dto.CourseRequest) (*entity.Course, error) {
	if errs := validation.ValidateCourseRequest(rm); len(errs) > 0 {
		return nil, apperror.NewForbidden(apperror.CodeInvalidInputParams, validation.Details(errs)...)
	}
	model := rm.Model()

	if err := u.ensureMtcExists(ctx, model.MtcID); err != nil {
		return nil, err
	}

	course := &entity.Course{
		ID:            uuid.NewString(),
		Title:         model.Title,
		Description:   model.Description,
		WeeksDuration: model.WeeksDuration,
		TuitionCost:   model.TuitionCost,
		MinimumSkill:  model.MinimumSkill,
		MtcID:         model.MtcID,
	}
	if model.IsScholarshipAvailable != nil {
		course.IsScholarshipAvailable = *model.IsScholarshipAvailable
	}

	if err := u.courses.Create(ctx, course); err != nil {
		return nil, err
	}
	if err := u.recalcAverageCost(ctx, course.MtcID); err != nil {
		return nil, err
	}
	return course, nil
}

// Update validates the payload and replaces the stored fields of an
// existing course. Moving a course between mtcs recomputes both averages.
func (u *CourseUsecase) Update(ctx context.Context, id string, rm dto.CourseRequest) (*entity.Course, error) {
	course, err := u.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if rm.MtcID == "" {
		rm.MtcID = course.MtcID
	}
	if errs := validation.ValidateCourseRequest(rm); len(errs) > 0 {
		return nil, apperror.NewForbidden(apperror.CodeInvalidInputParams, validation.Details(errs)...)
	}
	model := rm.Model()

	previousMtcID := course.MtcID
	if model.MtcID != previousMtcID {
		if err := u.ensureMtcExists(ctx, model.MtcID); err != nil {
			return nil, err
		}
	}

	course.Title = model.Title
	course.Description = model.Description
	course.WeeksDuration = model.WeeksDuration
	course.TuitionCost = model.TuitionCost
	course.MinimumSkill = model.MinimumSkill
	course.MtcID = model.MtcID
	if model.IsScholarshipAvailable != nil {
		course.IsScholarshipAvailable = *model.IsScholarshipAvailable
	}

	if err := u.courses.Update(ctx, course); err != nil {
		return nil, err
	}
	if err := u.recalcAverageCost(ctx, course.MtcID); err != nil {
		return nil, err
	}
	if previousMtcID != course.MtcID {
		if err := u.recalcAverageCost(ctx, previousMtcID); err != nil {
			return nil, err
		}
	}
	return course, nil
}

// Delete removes a course and recomputes the owning mtc's average cost.
func (u *CourseUsecase) Delete(ctx context.Context, id string) error {
	course, err := u.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := u.courses.Delete(ctx, id); err != nil {
		return err
	}
	return u.recalcAverageCost(ctx, course.MtcID)
}

func (u *CourseUsecase) ensureMtcExists(ctx context.Context, mtcID string) error {
	if _, err := u.mtcs.FindByID(ctx, mtcID); err != nil {
		if errors.Is(err, mtcdomain.ErrMtcNotFound) {
			return apperror.NewNotFound(apperror.CodeRecordNotFound, MtcNotFoundMessage)
		}
		return err
	}
	return nil
}

// recalcAverageCost stores the mean tuition cost of the mtc's remaining
// courses, or nil when none remain.
func (u *CourseUsecase) recalcAverageCost(ctx context.Context, mtcID string) error {
	average, err := u.courses.AverageTuitionByMtc(ctx, mtcID)
	if err != nil {
		return err
	}
	return u.mtcs.UpdateAverageCost(ctx, mtcID, average)
}
