package cli

import (
	"context"
	"errors"
	"io/fs"
	"time"

	"github.com/golang/glog"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/mj-jones15/pastProjects/internal/app"
	"github.com/mj-jones15/pastProjects/internal/config"
	"github.com/mj-jones15/pastProjects/internal/generator"
	"github.com/mj-jones15/pastProjects/internal/infra/memory"
	pgloader "github.com/mj-jones15/pastProjects/internal/infra/postgres"
	redisinfra "github.com/mj-jones15/pastProjects/internal/infra/redis"
	"github.com/redis/go-redis/v9"
)

// loadConfig reads the config file; a missing file means built-in defaults.
func loadConfig(path string) (config.Config, error) {
	cfg, err := config.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		glog.V(1).Infof("config %s not found, using defaults", path)
		return config.Config{}, nil
	}
	return cfg, err
}

// buildService wires stores for cfg. The returned cleanup closes every
// connection that was opened.
func buildService(ctx context.Context, cfg config.Config, opts app.Options) (*app.DrillService, func(), error) {
	var closers []func()
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		closers = append(closers, func() { _ = redisClient.Close() })
	}

	var loader memory.WorksheetLoader = memory.NewStaticWorksheetLoader(cfg.Worksheets)
	if cfg.Postgres.URL != "" {
		pool, err := pgxpool.Connect(ctx, cfg.Postgres.URL)
		if err != nil {
			cleanup()
			return nil, nil, err
		}
		closers = append(closers, pool.Close)
		loader = pgloader.NewWorksheetLoader(pool)
	}

	worksheetTTL := config.Duration(cfg.Worksheet.TTL, 10*time.Minute)
	seatTTL := config.Duration(cfg.Seat.TTL, 30*time.Minute)

	var worksheets app.WorksheetRepository
	var seats app.SeatStore
	if redisClient != nil {
		worksheets = redisinfra.NewWorksheetRepository(redisClient, loader, worksheetTTL)
		seats = redisinfra.NewSeatStore(redisClient, seatTTL)
	} else {
		worksheets = memory.NewWorksheetRepository(loader, worksheetTTL)
		seats = memory.NewSeatStore()
	}

	return app.NewDrillService(seats, worksheets, generator.New(), opts), cleanup, nil
}
