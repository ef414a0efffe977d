package main

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/everydukan/deals-cms/internal/config"
	"github.com/everydukan/deals-cms/internal/handler"
	"github.com/everydukan/deals-cms/internal/repository"
	"github.com/everydukan/deals-cms/internal/repository/mongodb"
	"github.com/everydukan/deals-cms/internal/service"
	"github.com/everydukan/deals-cms/pkg/database"
)

// store is the process-wide data layer selected by STORE_DRIVER. It is
// opened once at startup and shared by every service.
type store struct {
	banners    service.BannerRepositoryInterface
	shops      service.ShopRepositoryInterface
	categories service.CategoryRepositoryInterface
	coupons    service.CouponRepositoryInterface
	deals      service.DealRepositoryInterface
	components service.ComponentRepositoryInterface
	users      service.UserRepositoryInterface
	pinger     handler.Pinger
	close      func()
}

func openStore(ctx context.Context, cfg *config.Config) (*store, error) {
	switch cfg.Store.Driver {
	case config.DriverMongo:
		return openMongo(ctx, cfg)
	default:
		return openPostgres(ctx, cfg)
	}
}

func openPostgres(ctx context.Context, cfg *config.Config) (*store, error) {
	pool, err := database.NewPool(ctx, cfg.DB.DSN(), cfg.DB.MaxRetries, database.PoolConfig{
		MaxConns: int32(cfg.DB.MaxConns),
		MinConns: int32(cfg.DB.MinConns),
	})
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	if cfg.DB.AutoMigrate {
		if err := database.EnsureSchema(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
	}

	return &store{
		banners:    repository.NewBannerRepository(pool),
		shops:      repository.NewShopRepository(pool),
		categories: repository.NewCategoryRepository(pool),
		coupons:    repository.NewCouponRepository(pool),
		deals:      repository.NewDealRepository(pool),
		components: repository.NewComponentRepository(pool),
		users:      repository.NewUserRepository(pool),
		pinger:     pool,
		close: func() {
			log.Info().Msg("closing database connections...")
			pool.Close()
			log.Info().Msg("database connections closed")
		},
	}, nil
}

func openMongo(ctx context.Context, cfg *config.Config) (*store, error) {
	client, err := database.NewMongoClient(ctx, cfg.Mongo.URI, cfg.DB.MaxRetries)
	if err != nil {
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}

	db := client.Database(cfg.Mongo.Database)
	if err := database.EnsureMongoIndexes(ctx, db); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	return &store{
		banners:    mongodb.NewBannerRepository(db),
		shops:      mongodb.NewShopRepository(db),
		categories: mongodb.NewCategoryRepository(db),
		coupons:    mongodb.NewCouponRepository(db),
		deals:      mongodb.NewDealRepository(db),
		components: mongodb.NewComponentRepository(db),
		users:      mongodb.NewUserRepository(db),
		pinger:     database.MongoPinger{Client: client},
		close: func() {
			log.Info().Msg("disconnecting from mongodb...")
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := client.Disconnect(ctx); err != nil {
				log.Error().Err(err).Msg("error disconnecting from mongodb")
				return
			}
			log.Info().Msg("mongodb disconnected")
		},
	}, nil
}
