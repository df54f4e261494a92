package db

import (
	"fmt"
	"log/slog"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	courseentity "mtc_backend/internal/feature/course/domain/entity"
	mtcentity "mtc_backend/internal/feature/mtc/domain/entity"
	userentity "mtc_backend/internal/feature/user/domain/entity"
)

// ConnectWithRetry calls open until it succeeds or the timeout elapses.
// The database may still be starting alongside the service, so transient
// connection failures are retried at the given interval.
func ConnectWithRetry(open func() (*gorm.DB, error), timeout, interval time.Duration) (*gorm.DB, error) {
	deadline := time.Now().Add(timeout)
	for {
		conn, err := open()
		if err == nil {
			return conn, nil
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("connect to database: %w", err)
		}
		slog.Warn("database connect failed, retrying", "error", err)
		time.Sleep(interval)
	}
}

// Open connects to Postgres and runs schema migration.
func Open(databaseURL string) (*gorm.DB, error) {
	conn, err := ConnectWithRetry(func() (*gorm.DB, error) {
		return gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
	}, 60*time.Second, 3*time.Second)
	if err != nil {
		return nil, err
	}

	if err := Migrate(conn); err != nil {
		return nil, err
	}
	return conn, nil
}

// Migrate creates or updates the schema for every persisted entity.
func Migrate(conn *gorm.DB) error {
	if err := conn.AutoMigrate(
		&mtcentity.Mtc{},
		&courseentity.Course{},
		&userentity.User{},
	); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	return nil
}
