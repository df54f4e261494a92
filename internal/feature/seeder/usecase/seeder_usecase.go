// Package usecase implements the database seeder. It loads the fixture
// files under the configured data directory and bulk-inserts them, which
// is how demo environments get their initial catalog.
package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	courseentity "mtc_backend/internal/feature/course/domain/entity"
	mtcentity "mtc_backend/internal/feature/mtc/domain/entity"
)

// Fixture file names expected under the data directory.
const (
	mtcsFixtureFile    = "mtcs.json"
	coursesFixtureFile = "courses.json"
)

// MtcStore is the mtc persistence contract required by the seeder.
type MtcStore interface {
	CreateBatch(ctx context.Context, mtcs []mtcentity.Mtc) error
	DeleteAll(ctx context.Context) error
	UpdateAverageCost(ctx context.Context, id string, average *float64) error
}

// CourseStore is the course persistence contract required by the seeder.
type CourseStore interface {
	CreateBatch(ctx context.Context, courses []courseentity.Course) error
	DeleteAll(ctx context.Context) error
	AverageTuitionByMtc(ctx context.Context, mtcID string) (*float64, error)
}

// SeederUsecase implements the seeder operations.
type SeederUsecase struct {
	mtcs     MtcStore
	courses  CourseStore
	dataPath string
}

// NewSeederUsecase creates a seeder usecase reading fixtures from dataPath.
func NewSeederUsecase(mtcs MtcStore, courses CourseStore, dataPath string) *SeederUsecase {
	return &SeederUsecase{mtcs: mtcs, courses: courses, dataPath: dataPath}
}

// SeedAll imports mtcs first and courses second, so the per-mtc average
// cost can be derived from the courses that just landed.
func (u *SeederUsecase) SeedAll(ctx context.Context) error {
	if err := u.SeedMtcs(ctx); err != nil {
		return err
	}
	return u.SeedCourses(ctx)
}

// SeedMtcs bulk-inserts the mtc fixtures.
func (u *SeederUsecase) SeedMtcs(ctx context.Context) error {
	var mtcs []mtcentity.Mtc
	if err := u.loadFixture(mtcsFixtureFile, &mtcs); err != nil {
		return err
	}
	return u.mtcs.CreateBatch(ctx, mtcs)
}

// SeedCourses bulk-inserts the course fixtures and recomputes the average
// cost of every mtc the fixtures reference.
func (u *SeederUsecase) SeedCourses(ctx context.Context) error {
	var courses []courseentity.Course
	if err := u.loadFixture(coursesFixtureFile, &courses); err != nil {
		return err
	}
	if err := u.courses.CreateBatch(ctx, courses); err != nil {
		return err
	}

	seen := make(map[string]bool, len(courses))
	for _, course := range courses {
		if seen[course.MtcID] {
			continue
		}
		seen[course.MtcID] = true

		average, err := u.courses.AverageTuitionByMtc(ctx, course.MtcID)
		if err != nil {
			return err
		}
		if err := u.mtcs.UpdateAverageCost(ctx, course.MtcID, average); err != nil {
			return err
		}
	}
	return nil
}

// DeleteAll removes every mtc and course.
func (u *SeederUsecase) DeleteAll(ctx context.Context) error {
	if err := u.mtcs.DeleteAll(ctx); err != nil {
		return err
	}
	return u.courses.DeleteAll(ctx)
}

func (u *SeederUsecase) loadFixture(name string, out any) error {
	path := filepath.Join(u.dataPath, name)
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read fixture %s: %w", path, err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("parse fixture %s: %w", path, err)
	}
	return nil
}
