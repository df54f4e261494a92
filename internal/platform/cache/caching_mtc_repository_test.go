package cache

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"

	"mtc_backend/internal/feature/mtc/domain/entity"
	"mtc_backend/internal/feature/mtc/usecase"
)

// mockMtcStore is a mock implementation of the MtcStore interface.
type mockMtcStore struct {
	countFn             func(ctx context.Context, q usecase.ListQuery) (int64, error)
	listFn              func(ctx context.Context, q usecase.ListQuery) ([]entity.Mtc, error)
	createFn            func(ctx context.Context, mtc *entity.Mtc) error
	findByIDFn          func(ctx context.Context, id string) (*entity.Mtc, error)
	updateAverageCostFn func(ctx context.Context, id string, average *float64) error
}

func (m *mockMtcStore) Count(ctx context.Context, q usecase.ListQuery) (int64, error) {
	if m.countFn != nil {
		return m.countFn(ctx, q)
	}
	return 0, nil
}

func (m *mockMtcStore) List(ctx context.Context, q usecase.ListQuery) ([]entity.Mtc, error) {
	if m.listFn != nil {
		return m.listFn(ctx, q)
	}
	return nil, nil
}

func (m *mockMtcStore) Create(ctx context.Context, mtc *entity.Mtc) error {
	if m.createFn != nil {
		return m.createFn(ctx, mtc)
	}
	return nil
}

func (m *mockMtcStore) Update(ctx context.Context, mtc *entity.Mtc) error { return nil }

func (m *mockMtcStore) Delete(ctx context.Context, id string) error { return nil }

func (m *mockMtcStore) FindByID(ctx context.Context, id string) (*entity.Mtc, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockMtcStore) FindByName(ctx context.Context, name string) (*entity.Mtc, error) {
	return nil, nil
}

func (m *mockMtcStore) FindWithinBox(ctx context.Context, box usecase.BoundingBox) ([]entity.Mtc, error) {
	return nil, nil
}

func (m *mockMtcStore) UpdatePhoto(ctx context.Context, id, filename string) error { return nil }

func (m *mockMtcStore) UpdateAverageCost(ctx context.Context, id string, average *float64) error {
	if m.updateAverageCostFn != nil {
		return m.updateAverageCostFn(ctx, id, average)
	}
	return nil
}

func (m *mockMtcStore) CreateBatch(ctx context.Context, mtcs []entity.Mtc) error { return nil }

func (m *mockMtcStore) DeleteAll(ctx context.Context) error { return nil }

func TestNewCachingMtcRepository_Defaults(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name              string
		ttl               time.Duration
		namespace         string
		expectedTTL       time.Duration
		expectedNamespace string
	}{
		{
			name:              "default values when zero/empty",
			ttl:               0,
			namespace:         "",
			expectedTTL:       5 * time.Minute,
			expectedNamespace: "mtcs",
		},
		{
			name:              "negative ttl uses default",
			ttl:               -1 * time.Minute,
			namespace:         "",
			expectedTTL:       5 * time.Minute,
			expectedNamespace: "mtcs",
		},
		{
			name:              "custom values preserved",
			ttl:               10 * time.Minute,
			namespace:         "custom",
			expectedTTL:       10 * time.Minute,
			expectedNamespace: "custom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo := NewCachingMtcRepository(nil, tt.ttl, &mockMtcStore{}, tt.namespace)

			if repo.ttl != tt.expectedTTL {
				t.Errorf("expected TTL %v, got %v", tt.expectedTTL, repo.ttl)
			}
			if repo.namespace != tt.expectedNamespace {
				t.Errorf("expected namespace %q, got %q", tt.expectedNamespace, repo.namespace)
			}
		})
	}
}

func TestCachingMtcRepository_List_NilRedis(t *testing.T) {
	t.Parallel()

	expected := []entity.Mtc{{ID: "mtc-1", Name: "City Nursing School"}}
	inner := &mockMtcStore{
		listFn: func(ctx context.Context, q usecase.ListQuery) ([]entity.Mtc, error) {
			return expected, nil
		},
	}

	repo := NewCachingMtcRepository(nil, 5*time.Minute, inner, "mtcs")

	mtcs, err := repo.List(context.Background(), usecase.ListQuery{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(mtcs) != 1 || mtcs[0].ID != "mtc-1" {
		t.Errorf("unexpected result: %+v", mtcs)
	}
}

func TestCachingMtcRepository_List_CacheHit(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	cached := []entity.Mtc{{ID: "mtc-1", Name: "City Nursing School"}}
	cachedJSON, _ := json.Marshal(cached)

	mock.ExpectGet("mtcs:list:Alpha:name:asc:0:25").SetVal(string(cachedJSON))

	innerCalled := false
	inner := &mockMtcStore{
		listFn: func(ctx context.Context, q usecase.ListQuery) ([]entity.Mtc, error) {
			innerCalled = true
			return nil, nil
		},
	}

	skip, take := 0, 25
	repo := NewCachingMtcRepository(rdb, 5*time.Minute, inner, "mtcs")
	mtcs, err := repo.List(context.Background(), usecase.ListQuery{
		Search:    "Alpha",
		SortBy:    "name",
		SortOrder: "asc",
		Skip:      &skip,
		Take:      &take,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if innerCalled {
		t.Error("inner repository should not be called on cache hit")
	}
	if len(mtcs) != 1 {
		t.Errorf("expected 1 mtc, got %d", len(mtcs))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled mock expectations: %v", err)
	}
}

func TestCachingMtcRepository_List_CacheMiss(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	expected := []entity.Mtc{{ID: "mtc-1", Name: "City Nursing School"}}
	expectedJSON, _ := json.Marshal(expected)

	mock.ExpectGet("mtcs:list::::-:-").RedisNil()
	mock.ExpectSet("mtcs:list::::-:-", expectedJSON, 5*time.Minute).SetVal("OK")

	inner := &mockMtcStore{
		listFn: func(ctx context.Context, q usecase.ListQuery) ([]entity.Mtc, error) {
			return expected, nil
		},
	}

	repo := NewCachingMtcRepository(rdb, 5*time.Minute, inner, "mtcs")
	mtcs, err := repo.List(context.Background(), usecase.ListQuery{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(mtcs) != 1 {
		t.Errorf("expected 1 mtc, got %d", len(mtcs))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled mock expectations: %v", err)
	}
}

func TestCachingMtcRepository_List_CorruptedCache(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	expected := []entity.Mtc{{ID: "mtc-1", Name: "City Nursing School"}}
	expectedJSON, _ := json.Marshal(expected)

	mock.ExpectGet("mtcs:list::::-:-").SetVal("invalid json")
	mock.ExpectDel("mtcs:list::::-:-").SetVal(1)
	mock.ExpectSet("mtcs:list::::-:-", expectedJSON, 5*time.Minute).SetVal("OK")

	inner := &mockMtcStore{
		listFn: func(ctx context.Context, q usecase.ListQuery) ([]entity.Mtc, error) {
			return expected, nil
		},
	}

	repo := NewCachingMtcRepository(rdb, 5*time.Minute, inner, "mtcs")
	mtcs, err := repo.List(context.Background(), usecase.ListQuery{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(mtcs) != 1 {
		t.Errorf("expected 1 mtc, got %d", len(mtcs))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled mock expectations: %v", err)
	}
}

func TestCachingMtcRepository_Count_CacheHitAndMiss(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	// Hit: cached as a decimal string.
	mock.ExpectGet("mtcs:count:Alpha:::-:-").SetVal("7")
	// Miss: fetched from the database, then stored.
	mock.ExpectGet("mtcs:count:Beta:::-:-").RedisNil()
	mock.ExpectSet("mtcs:count:Beta:::-:-", "3", 5*time.Minute).SetVal("OK")

	inner := &mockMtcStore{
		countFn: func(ctx context.Context, q usecase.ListQuery) (int64, error) {
			if q.Search != "Beta" {
				t.Errorf("inner count should only see the cache miss, got %q", q.Search)
			}
			return 3, nil
		},
	}

	repo := NewCachingMtcRepository(rdb, 5*time.Minute, inner, "mtcs")

	total, err := repo.Count(context.Background(), usecase.ListQuery{Search: "Alpha"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 7 {
		t.Errorf("expected 7, got %d", total)
	}

	total, err = repo.Count(context.Background(), usecase.ListQuery{Search: "Beta"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 3 {
		t.Errorf("expected 3, got %d", total)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled mock expectations: %v", err)
	}
}

func TestCachingMtcRepository_List_InnerError(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	expectedErr := errors.New("database error")

	mock.ExpectGet("mtcs:list::::-:-").RedisNil()

	inner := &mockMtcStore{
		listFn: func(ctx context.Context, q usecase.ListQuery) ([]entity.Mtc, error) {
			return nil, expectedErr
		},
	}

	repo := NewCachingMtcRepository(rdb, 5*time.Minute, inner, "mtcs")
	_, err := repo.List(context.Background(), usecase.ListQuery{})

	if !errors.Is(err, expectedErr) {
		t.Errorf("expected error %v, got %v", expectedErr, err)
	}
}

func TestCachingMtcRepository_Create_InvalidatesNamespace(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	innerCalled := false
	inner := &mockMtcStore{
		createFn: func(ctx context.Context, mtc *entity.Mtc) error {
			innerCalled = true
			return nil
		},
	}

	mock.ExpectScan(0, "mtcs:*", 200).SetVal([]string{"mtcs:list::::-:-", "mtcs:count::::-:-"}, 0)
	mock.ExpectDel("mtcs:list::::-:-", "mtcs:count::::-:-").SetVal(2)

	repo := NewCachingMtcRepository(rdb, 5*time.Minute, inner, "mtcs")
	err := repo.Create(context.Background(), &entity.Mtc{ID: "mtc-1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !innerCalled {
		t.Error("expected inner repository to be called")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled mock expectations: %v", err)
	}
}

func TestCachingMtcRepository_Create_InnerErrorSkipsInvalidation(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	expectedErr := errors.New("duplicate name")
	inner := &mockMtcStore{
		createFn: func(ctx context.Context, mtc *entity.Mtc) error {
			return expectedErr
		},
	}

	repo := NewCachingMtcRepository(rdb, 5*time.Minute, inner, "mtcs")
	err := repo.Create(context.Background(), &entity.Mtc{ID: "mtc-1"})

	if !errors.Is(err, expectedErr) {
		t.Errorf("expected error %v, got %v", expectedErr, err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled mock expectations: %v", err)
	}
}

func TestCachingMtcRepository_UpdateAverageCost_InvalidatesNamespace(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	inner := &mockMtcStore{
		updateAverageCostFn: func(ctx context.Context, id string, average *float64) error {
			return nil
		},
	}

	mock.ExpectScan(0, "mtcs:*", 200).SetVal([]string{}, 0)

	average := 1500.0
	repo := NewCachingMtcRepository(rdb, 5*time.Minute, inner, "mtcs")
	err := repo.UpdateAverageCost(context.Background(), "mtc-1", &average)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled mock expectations: %v", err)
	}
}

func TestCachingMtcRepository_FindByID_BypassesCache(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	inner := &mockMtcStore{
		findByIDFn: func(ctx context.Context, id string) (*entity.Mtc, error) {
			return &entity.Mtc{ID: id}, nil
		},
	}

	repo := NewCachingMtcRepository(rdb, 5*time.Minute, inner, "mtcs")
	mtc, err := repo.FindByID(context.Background(), "mtc-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mtc.ID != "mtc-1" {
		t.Errorf("unexpected mtc: %+v", mtc)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled mock expectations: %v", err)
	}
}
