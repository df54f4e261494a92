// Command seed imports the JSON fixtures into the database, or wipes the
// seeded data, without going through the HTTP seeder endpoints.
//
//	go run ./cmd/seed -i   # import mtcs and courses
//	go run ./cmd/seed -d   # delete all mtcs and courses
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	courseadapters "mtc_backend/internal/feature/course/adapters"
	mtcadapters "mtc_backend/internal/feature/mtc/adapters"
	seederusecase "mtc_backend/internal/feature/seeder/usecase"
	"mtc_backend/internal/platform/config"
	"mtc_backend/internal/platform/db"
	"mtc_backend/internal/platform/logger"
)

func main() {
	importData := flag.Bool("i", false, "import fixture data")
	deleteData := flag.Bool("d", false, "delete all seeded data")
	flag.Parse()

	if *importData == *deleteData {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat}))

	conn, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}

	uc := seederusecase.NewSeederUsecase(
		mtcadapters.NewMtcPostgres(conn),
		courseadapters.NewCoursePostgres(conn),
		cfg.SeedDataPath,
	)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if *importData {
		if err := uc.SeedAll(ctx); err != nil {
			slog.Error("seed failed", "error", err)
			os.Exit(1)
		}
		slog.Info("fixture data imported")
		return
	}

	if err := uc.DeleteAll(ctx); err != nil {
		slog.Error("delete failed", "error", err)
		os.Exit(1)
	}
	slog.Info("all seeded data removed")
}
