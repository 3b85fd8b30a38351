package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"cinetick/internal/dal"
	"cinetick/internal/shared/config"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// DB holds the document store and cache connections.
type DB struct {
	client *mongo.Client
	Mongo  *mongo.Database
	Redis  *redis.Client
}

// InitDB initializes the database connections. Redis is optional: when it
// is unreachable the service starts without caching and rate limiting.
func InitDB(cfg *config.Config) (*DB, error) {
	client, db, err := initMongo(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize MongoDB: %w", err)
	}

	rdb, err := initRedis(cfg)
	if err != nil {
		log.Printf("redis unavailable, continuing without cache: %v", err)
		rdb = nil
	}

	return &DB{
		client: client,
		Mongo:  db,
		Redis:  rdb,
	}, nil
}

func initMongo(cfg *config.Config) (*mongo.Client, *mongo.Database, error) {
	opts := options.Client().
		ApplyURI(cfg.Mongo.URI).
		SetRegistry(dal.Registry()).
		SetConnectTimeout(cfg.Mongo.ConnectTimeout).
		SetMaxPoolSize(100).
		SetMinPoolSize(5)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Mongo.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	log.Println("✅ MongoDB connected successfully")
	return client, client.Database(cfg.Mongo.Database), nil
}

func initRedis(cfg *config.Config) (*redis.Client, error) {
	opts := &redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,

		PoolSize:     10,
		MinIdleConns: 5,

		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	}

	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	log.Println("✅ Redis connected successfully")
	return rdb, nil
}

// Close closes all database connections
func (db *DB) Close() error {
	var errs []error

	if db.client != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := db.client.Disconnect(ctx); err != nil {
			errs = append(errs, fmt.Errorf("failed to close MongoDB: %w", err))
		}
	}

	if db.Redis != nil {
		if err := db.Redis.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close Redis: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("errors closing databases: %v", errs)
	}

	log.Println("✅ All database connections closed")
	return nil
}

// HealthCheck pings every connected backend.
func (db *DB) HealthCheck(ctx context.Context) error {
	if db.client != nil {
		if err := db.client.Ping(ctx, readpref.Primary()); err != nil {
			return fmt.Errorf("mongodb ping failed: %w", err)
		}
	}

	if db.Redis != nil {
		if err := db.Redis.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("redis ping failed: %w", err)
		}
	}

	return nil
}

// Stores returns the document store gateway backing the unit of work.
func (db *DB) Stores() dal.Stores {
	return dal.NewMongoStores(db.Mongo)
}

// GetRedis returns the Redis client, or nil when Redis is disabled.
func (db *DB) GetRedis() *redis.Client {
	return db.Redis
}
