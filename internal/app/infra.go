package app

import (
	"context"
	"database/sql"

	"github.com/9oormthon-univ/2025-SEASONTHON-TEAM-29-BE/internal/config"
	"github.com/9oormthon-univ/2025-SEASONTHON-TEAM-29-BE/internal/db"
	"github.com/9oormthon-univ/2025-SEASONTHON-TEAM-29-BE/internal/logger"
	"github.com/9oormthon-univ/2025-SEASONTHON-TEAM-29-BE/internal/redis"

	_ "github.com/lib/pq"
)

type Infra struct {
	DB    *db.DB
	Redis *redis.Client
}

func setupInfra(ctx context.Context, cfg config.Config) (*Infra, error) {
	sqlDB, err := sql.Open("postgres", cfg.DatabaseDSN)
	if err != nil {
		return nil, err
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, err
	}

	if err := db.RunMemberMigration(ctx, sqlDB); err != nil {
		return nil, err
	}

	logger.Info("database ready", nil)

	redisClient, err := redis.New(cfg.RedisAddr, cfg.RedisPassword)
	if err != nil {
		return nil, err
	}

	logger.Info("redis ready", nil)

	return &Infra{
		DB:    &db.DB{DB: sqlDB},
		Redis: redisClient,
	}, nil
}
