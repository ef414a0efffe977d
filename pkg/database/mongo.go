package database

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names of the document store.
const (
	CollectionBanners    = "Banners"
	CollectionShops      = "Shops"
	CollectionCategories = "Categories"
	CollectionCoupons    = "Coupons"
	CollectionDeals      = "Deals"
	CollectionComponents = "components"
	CollectionUsers      = "users"
	CollectionLocks      = "locks"
)

// NewMongoClient connects to MongoDB with the same backoff schedule as NewPool.
func NewMongoClient(ctx context.Context, uri string, maxRetries int) (*mongo.Client, error) {
	attempts := maxRetries
	if attempts < 1 {
		attempts = 1
	}

	var err error
	for attempt := 0; attempt < attempts; attempt++ {
		var client *mongo.Client
		client, err = mongo.Connect(ctx, options.Client().ApplyURI(uri))
		if err == nil {
			if pingErr := client.Ping(ctx, readpref.Primary()); pingErr == nil {
				log.Info().Msg("mongodb connection established")
				return client, nil
			} else {
				_ = client.Disconnect(context.Background())
				err = fmt.Errorf("ping failed: %w", pingErr)
			}
		}

		backoff := time.Duration(1<<attempt) * time.Second
		log.Warn().
			Err(err).
			Int("attempt", attempt+1).
			Int("max_retries", maxRetries).
			Dur("next_retry_in", backoff).
			Msg("mongodb connection failed, retrying")

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
	}

	return nil, fmt.Errorf("failed to connect after %d attempts: %w", attempts, err)
}

// EnsureMongoIndexes creates the indexes the listing queries rely on.
func EnsureMongoIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := map[string][]mongo.IndexModel{
		CollectionDeals: {
			{Keys: bson.D{{Key: "isActive", Value: 1}, {Key: "startDate", Value: 1}, {Key: "endDate", Value: 1}}},
			{Keys: bson.D{{Key: "title", Value: "text"}, {Key: "subtitle", Value: "text"}}},
		},
		CollectionComponents: {
			{Keys: bson.D{{Key: "order", Value: 1}}},
		},
		CollectionBanners: {
			{Keys: bson.D{{Key: "isActive", Value: 1}}},
		},
	}

	for coll, models := range indexes {
		if _, err := db.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("create indexes on %s: %w", coll, err)
		}
	}
	log.Info().Msg("mongodb indexes ensured")
	return nil
}

// MongoPinger adapts a client to the health check's Ping(ctx) contract.
type MongoPinger struct {
	Client *mongo.Client
}

func (p MongoPinger) Ping(ctx context.Context) error {
	return p.Client.Ping(ctx, readpref.Primary())
}
