package db

import (
	"errors"
	"testing"
	"time"

	"gorm.io/gorm"
)

func TestConnectWithRetry_SuccessOnFirstTry(t *testing.T) {
	t.Parallel()

	mockDB := &gorm.DB{}
	open := func() (*gorm.DB, error) {
		return mockDB, nil
	}

	conn, err := ConnectWithRetry(open, 5*time.Second, 10*time.Millisecond)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if conn != mockDB {
		t.Error("expected mock DB to be returned")
	}
}

func TestConnectWithRetry_RetriesOnFailure(t *testing.T) {
	t.Parallel()

	mockDB := &gorm.DB{}
	attemptCount := 0

	open := func() (*gorm.DB, error) {
		attemptCount++
		if attemptCount < 3 {
			return nil, errors.New("connection refused")
		}
		return mockDB, nil
	}

	conn, err := ConnectWithRetry(open, 5*time.Second, 10*time.Millisecond)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if conn != mockDB {
		t.Error("expected mock DB to be returned")
	}
	if attemptCount != 3 {
		t.Errorf("expected 3 attempts, got %d", attemptCount)
	}
}

func TestConnectWithRetry_TimeoutAfterRetries(t *testing.T) {
	t.Parallel()

	attemptCount := 0
	open := func() (*gorm.DB, error) {
		attemptCount++
		return nil, errors.New("connection refused")
	}

	_, err := ConnectWithRetry(open, 50*time.Millisecond, 10*time.Millisecond)

	if err == nil {
		t.Fatal("expected error after timeout, got nil")
	}
	if attemptCount == 0 {
		t.Error("expected at least one connection attempt")
	}
}
