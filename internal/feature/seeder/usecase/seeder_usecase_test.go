package usecase

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	courseentity "mtc_backend/internal/feature/course/domain/entity"
	mtcentity "mtc_backend/internal/feature/mtc/domain/entity"
)

// mockMtcStore is a mock implementation of the MtcStore interface.
type mockMtcStore struct {
	CreateBatchFunc       func(ctx context.Context, mtcs []mtcentity.Mtc) error
	DeleteAllFunc         func(ctx context.Context) error
	UpdateAverageCostFunc func(ctx context.Context, id string, average *float64) error
}

func (m *mockMtcStore) CreateBatch(ctx context.Context, mtcs []mtcentity.Mtc) error {
	if m.CreateBatchFunc != nil {
		return m.CreateBatchFunc(ctx, mtcs)
	}
	return nil
}

func (m *mockMtcStore) DeleteAll(ctx context.Context) error {
	if m.DeleteAllFunc != nil {
		return m.DeleteAllFunc(ctx)
	}
	return nil
}

func (m *mockMtcStore) UpdateAverageCost(ctx context.Context, id string, average *float64) error {
	if m.UpdateAverageCostFunc != nil {
		return m.UpdateAverageCostFunc(ctx, id, average)
	}
	return nil
}

// mockCourseStore is a mock implementation of the CourseStore interface.
type mockCourseStore struct {
	CreateBatchFunc         func(ctx context.Context, courses []courseentity.Course) error
	DeleteAllFunc           func(ctx context.Context) error
	AverageTuitionByMtcFunc func(ctx context.Context, mtcID string) (*float64, error)
}

func (m *mockCourseStore) CreateBatch(ctx context.Context, courses []courseentity.Course) error {
	if m.CreateBatchFunc != nil {
		return m.CreateBatchFunc(ctx, courses)
	}
	return nil
}

func (m *mockCourseStore) DeleteAll(ctx context.Context) error {
	if m.DeleteAllFunc != nil {
		return m.DeleteAllFunc(ctx)
	}
	return nil
}

func (m *mockCourseStore) AverageTuitionByMtc(ctx context.Context, mtcID string) (*float64, error) {
	if m.AverageTuitionByMtcFunc != nil {
		return m.AverageTuitionByMtcFunc(ctx, mtcID)
	}
	return nil, nil
}

const mtcsFixture = `[
  {"id": "11111111-1111-1111-1111-111111111111", "name": "City Nursing School", "slug": "city-nursing-school"},
  {"id": "22222222-2222-2222-2222-222222222222", "name": "Regional Radiology Institute", "slug": "regional-radiology-institute"}
]`

const coursesFixture = `[
  {"id": "aaaaaaaa-0000-0000-0000-000000000001", "title": "Nursing Basics", "tuitionCost": 1000, "mtc": "11111111-1111-1111-1111-111111111111"},
  {"id": "aaaaaaaa-0000-0000-0000-000000000002", "title": "Advanced Nursing", "tuitionCost": 2000, "mtc": "11111111-1111-1111-1111-111111111111"},
  {"id": "aaaaaaaa-0000-0000-0000-000000000003", "title": "Radiology Basics", "tuitionCost": 4000, "mtc": "22222222-2222-2222-2222-222222222222"}
]`

func writeFixtures(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "mtcs.json"), []byte(mtcsFixture), 0o644); err != nil {
		t.Fatalf("write mtcs fixture: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "courses.json"), []byte(coursesFixture), 0o644); err != nil {
		t.Fatalf("write courses fixture: %v", err)
	}
	return dir
}

func TestSeederUsecase_SeedMtcs(t *testing.T) {
	t.Run("inserts every fixture mtc", func(t *testing.T) {
		var inserted []mtcentity.Mtc
		mtcs := &mockMtcStore{
			CreateBatchFunc: func(ctx context.Context, batch []mtcentity.Mtc) error {
				inserted = batch
				return nil
			},
		}

		err := NewSeederUsecase(mtcs, &mockCourseStore{}, writeFixtures(t)).
			SeedMtcs(context.Background())

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(inserted) != 2 {
			t.Fatalf("expected 2 mtcs, got %d", len(inserted))
		}
		if inserted[0].Name != "City Nursing School" || inserted[0].Slug != "city-nursing-school" {
			t.Errorf("unexpected first mtc: %+v", inserted[0])
		}
	})

	t.Run("missing fixture file fails", func(t *testing.T) {
		err := NewSeederUsecase(&mockMtcStore{}, &mockCourseStore{}, t.TempDir()).
			SeedMtcs(context.Background())

		if err == nil {
			t.Fatal("expected an error for a missing fixture file")
		}
	})
}

func TestSeederUsecase_SeedCourses(t *testing.T) {
	t.Run("inserts courses and recomputes each referenced mtc once", func(t *testing.T) {
		var inserted []courseentity.Course
		averages := map[string]float64{
			"11111111-1111-1111-1111-111111111111": 1500,
			"22222222-2222-2222-2222-222222222222": 4000,
		}
		courses := &mockCourseStore{
			CreateBatchFunc: func(ctx context.Context, batch []courseentity.Course) error {
				inserted = batch
				return nil
			},
			AverageTuitionByMtcFunc: func(ctx context.Context, mtcID string) (*float64, error) {
				avg, ok := averages[mtcID]
				if !ok {
					t.Errorf("unexpected mtc id: %q", mtcID)
				}
				return &avg, nil
			},
		}
		updated := map[string]float64{}
		mtcs := &mockMtcStore{
			UpdateAverageCostFunc: func(ctx context.Context, id string, average *float64) error {
				if average == nil {
					t.Errorf("expected an average for mtc %q", id)
					return nil
				}
				if _, dup := updated[id]; dup {
					t.Errorf("mtc %q recomputed twice", id)
				}
				updated[id] = *average
				return nil
			},
		}

		err := NewSeederUsecase(mtcs, courses, writeFixtures(t)).
			SeedCourses(context.Background())

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(inserted) != 3 {
			t.Fatalf("expected 3 courses, got %d", len(inserted))
		}
		if inserted[0].MtcID != "11111111-1111-1111-1111-111111111111" {
			t.Errorf("unexpected mtc reference: %q", inserted[0].MtcID)
		}
		if len(updated) != 2 {
			t.Fatalf("expected 2 recomputed mtcs, got %d", len(updated))
		}
		if updated["11111111-1111-1111-1111-111111111111"] != 1500 {
			t.Errorf("unexpected average: %v", updated)
		}
	})

	t.Run("malformed fixture fails", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, "courses.json"), []byte("{not json"), 0o644); err != nil {
			t.Fatalf("write fixture: %v", err)
		}

		err := NewSeederUsecase(&mockMtcStore{}, &mockCourseStore{}, dir).
			SeedCourses(context.Background())

		if err == nil {
			t.Fatal("expected an error for a malformed fixture file")
		}
	})
}

func TestSeederUsecase_SeedAll(t *testing.T) {
	t.Run("seeds mtcs before courses", func(t *testing.T) {
		var order []string
		mtcs := &mockMtcStore{
			CreateBatchFunc: func(ctx context.Context, batch []mtcentity.Mtc) error {
				order = append(order, "mtcs")
				return nil
			},
		}
		courses := &mockCourseStore{
			CreateBatchFunc: func(ctx context.Context, batch []courseentity.Course) error {
				order = append(order, "courses")
				return nil
			},
		}

		err := NewSeederUsecase(mtcs, courses, writeFixtures(t)).
			SeedAll(context.Background())

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(order) != 2 || order[0] != "mtcs" || order[1] != "courses" {
			t.Errorf("unexpected seeding order: %v", order)
		}
	})

	t.Run("mtc failure stops the run", func(t *testing.T) {
		insertErr := errors.New("duplicate key")
		mtcs := &mockMtcStore{
			CreateBatchFunc: func(ctx context.Context, batch []mtcentity.Mtc) error {
				return insertErr
			},
		}
		coursesSeeded := false
		courses := &mockCourseStore{
			CreateBatchFunc: func(ctx context.Context, batch []courseentity.Course) error {
				coursesSeeded = true
				return nil
			},
		}

		err := NewSeederUsecase(mtcs, courses, writeFixtures(t)).
			SeedAll(context.Background())

		if !errors.Is(err, insertErr) {
			t.Errorf("expected %v, got %v", insertErr, err)
		}
		if coursesSeeded {
			t.Error("courses must not be seeded after an mtc failure")
		}
	})
}

func TestSeederUsecase_DeleteAll(t *testing.T) {
	mtcsDeleted, coursesDeleted := false, false
	mtcs := &mockMtcStore{
		DeleteAllFunc: func(ctx context.Context) error {
			mtcsDeleted = true
			return nil
		},
	}
	courses := &mockCourseStore{
		DeleteAllFunc: func(ctx context.Context) error {
			coursesDeleted = true
			return nil
		},
	}

	err := NewSeederUsecase(mtcs, courses, t.TempDir()).
		DeleteAll(context.Background())

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !mtcsDeleted || !coursesDeleted {
		t.Error("expected both stores to be emptied")
	}
}
