package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"mtc_backend/internal/feature/course/domain"
	"mtc_backend/internal/feature/course/domain/entity"
	"mtc_backend/internal/feature/course/usecase"
)

const (
	mtcOne = "11111111-1111-1111-1111-111111111111"
	mtcTwo = "22222222-2222-2222-2222-222222222222"
)

// setupTestDB prepares an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&entity.Course{})
	require.NoError(t, err, "failed to migrate table")

	return db
}

func testCourse(title, mtcID string, tuition float64) entity.Course {
	return entity.Course{
		ID:            "id-" + title,
		Title:         title,
		Description:   "description",
		WeeksDuration: 12,
		TuitionCost:   tuition,
		MinimumSkill:  entity.SkillBeginner,
		MtcID:         mtcID,
	}
}

func intPtr(v int) *int { return &v }

func TestCoursePostgres_CreateAndFind(t *testing.T) {
	t.Run("create and find by id", func(t *testing.T) {
		repo := NewCoursePostgres(setupTestDB(t))

		course := testCourse("Nursing Basics", mtcOne, 1000)
		err := repo.Create(context.Background(), &course)
		require.NoError(t, err, "failed to create course")

		found, err := repo.FindByID(context.Background(), course.ID)

		assert.NoError(t, err, "failed to find course")
		assert.Equal(t, course.Title, found.Title, "title does not match")
		assert.Equal(t, mtcOne, found.MtcID, "mtc reference does not match")
	})

	t.Run("unknown id returns ErrCourseNotFound", func(t *testing.T) {
		repo := NewCoursePostgres(setupTestDB(t))

		found, err := repo.FindByID(context.Background(), "missing")

		assert.Nil(t, found, "course should be nil")
		assert.ErrorIs(t, err, domain.ErrCourseNotFound, "should return ErrCourseNotFound")
	})
}

func TestCoursePostgres_Update(t *testing.T) {
	repo := NewCoursePostgres(setupTestDB(t))

	course := testCourse("Nursing Basics", mtcOne, 1000)
	require.NoError(t, repo.Create(context.Background(), &course))

	course.TuitionCost = 1250
	course.IsScholarshipAvailable = true
	require.NoError(t, repo.Update(context.Background(), &course))

	found, err := repo.FindByID(context.Background(), course.ID)
	require.NoError(t, err)
	assert.Equal(t, 1250.0, found.TuitionCost, "tuition does not match")
	assert.True(t, found.IsScholarshipAvailable, "scholarship flag does not match")
}

func TestCoursePostgres_Delete(t *testing.T) {
	repo := NewCoursePostgres(setupTestDB(t))

	course := testCourse("Nursing Basics", mtcOne, 1000)
	require.NoError(t, repo.Create(context.Background(), &course))

	err := repo.Delete(context.Background(), course.ID)

	assert.NoError(t, err, "failed to delete course")
	_, err = repo.FindByID(context.Background(), course.ID)
	assert.ErrorIs(t, err, domain.ErrCourseNotFound, "course should be gone")
}

func TestCoursePostgres_CountAndList(t *testing.T) {
	seed := func(t *testing.T, repo *coursePostgres) {
		t.Helper()
		courses := []entity.Course{
			testCourse("Advanced Nursing", mtcOne, 2000),
			testCourse("Nursing Basics", mtcOne, 1000),
			testCourse("Radiology Basics", mtcTwo, 4000),
		}
		for i := range courses {
			require.NoError(t, repo.Create(context.Background(), &courses[i]), "failed to seed %s", courses[i].Title)
		}
	}

	t.Run("filters by mtc", func(t *testing.T) {
		repo := NewCoursePostgres(setupTestDB(t))
		seed(t, repo)

		total, err := repo.Count(context.Background(), usecase.ListQuery{MtcID: mtcOne})
		require.NoError(t, err)
		assert.Equal(t, int64(2), total, "total does not match")

		courses, err := repo.List(context.Background(), usecase.ListQuery{MtcID: mtcOne})
		assert.NoError(t, err, "failed to list courses")
		require.Len(t, courses, 2, "unexpected result count")
		for _, course := range courses {
			assert.Equal(t, mtcOne, course.MtcID, "mtc reference does not match")
		}
	})

	t.Run("search matches title prefixes only", func(t *testing.T) {
		repo := NewCoursePostgres(setupTestDB(t))
		seed(t, repo)

		courses, err := repo.List(context.Background(), usecase.ListQuery{Search: "Nursing"})

		assert.NoError(t, err, "failed to list courses")
		require.Len(t, courses, 1, "unexpected result count")
		assert.Equal(t, "Nursing Basics", courses[0].Title, "title does not match")
	})

	t.Run("sorts by tuition and pages", func(t *testing.T) {
		repo := NewCoursePostgres(setupTestDB(t))
		seed(t, repo)

		courses, err := repo.List(context.Background(), usecase.ListQuery{
			SortBy:    "tuitionCost",
			SortOrder: "desc",
			Skip:      intPtr(0),
			Take:      intPtr(2),
		})

		assert.NoError(t, err, "failed to list courses")
		require.Len(t, courses, 2, "unexpected page size")
		assert.Equal(t, "Radiology Basics", courses[0].Title, "sort order does not match")
		assert.Equal(t, "Advanced Nursing", courses[1].Title, "sort order does not match")
	})
}

func TestCoursePostgres_DeleteByMtcID(t *testing.T) {
	repo := NewCoursePostgres(setupTestDB(t))

	courses := []entity.Course{
		testCourse("Nursing Basics", mtcOne, 1000),
		testCourse("Advanced Nursing", mtcOne, 2000),
		testCourse("Radiology Basics", mtcTwo, 4000),
	}
	for i := range courses {
		require.NoError(t, repo.Create(context.Background(), &courses[i]))
	}

	err := repo.DeleteByMtcID(context.Background(), mtcOne)

	assert.NoError(t, err, "failed to cascade delete")
	total, err := repo.Count(context.Background(), usecase.ListQuery{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total, "only the other mtc's course should remain")
}

func TestCoursePostgres_AverageTuitionByMtc(t *testing.T) {
	t.Run("mean over the mtc's courses", func(t *testing.T) {
		repo := NewCoursePostgres(setupTestDB(t))

		courses := []entity.Course{
			testCourse("Nursing Basics", mtcOne, 1000),
			testCourse("Advanced Nursing", mtcOne, 2000),
			testCourse("Radiology Basics", mtcTwo, 4000),
		}
		for i := range courses {
			require.NoError(t, repo.Create(context.Background(), &courses[i]))
		}

		average, err := repo.AverageTuitionByMtc(context.Background(), mtcOne)

		assert.NoError(t, err, "failed to compute average")
		require.NotNil(t, average, "average should be set")
		assert.Equal(t, 1500.0, *average, "average does not match")
	})

	t.Run("nil when the mtc has no courses", func(t *testing.T) {
		repo := NewCoursePostgres(setupTestDB(t))

		average, err := repo.AverageTuitionByMtc(context.Background(), mtcOne)

		assert.NoError(t, err, "failed to compute average")
		assert.Nil(t, average, "average should be nil")
	})
}

func TestCoursePostgres_BatchAndDeleteAll(t *testing.T) {
	repo := NewCoursePostgres(setupTestDB(t))

	batch := []entity.Course{
		testCourse("Nursing Basics", mtcOne, 1000),
		testCourse("Radiology Basics", mtcTwo, 4000),
	}
	require.NoError(t, repo.CreateBatch(context.Background(), batch), "failed to create batch")

	total, err := repo.Count(context.Background(), usecase.ListQuery{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total, "total does not match")

	err = repo.DeleteAll(context.Background())

	assert.NoError(t, err, "failed to delete all")
	total, err = repo.Count(context.Background(), usecase.ListQuery{})
	require.NoError(t, err)
	assert.Zero(t, total, "table should be empty")
}
