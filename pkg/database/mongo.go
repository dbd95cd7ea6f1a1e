package database

import (
	"context"
	"fmt"
	"time"

	"travel-booking/pkg/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DB wraps the mongo client and the application database handle.
type DB struct {
	client   *mongo.Client
	database *mongo.Database
}

// Collection returns the named collection handle.
func (db *DB) Collection(name string) *mongo.Collection {
	return db.database.Collection(name)
}

func (db *DB) Ping(ctx context.Context) error {
	return db.client.Ping(ctx, nil)
}

func (db *DB) Close(ctx context.Context) error {
	return db.client.Disconnect(ctx)
}

// InitDB connects to MongoDB and verifies the connection.
func InitDB(config utils.DatabaseConfig) (*DB, error) {
	timeout := time.Duration(config.Timeout) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	clientOpts := options.Client().
		ApplyURI(config.URI).
		SetConnectTimeout(timeout)

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	return &DB{
		client:   client,
		database: client.Database(config.Name),
	}, nil
}

// EnsureIndexes creates the uniqueness constraints the application relies on:
// one account per email, one deal per code, and one detail record per
// (package, day, position) so a second detail creation for the same package
// fails at the storage level instead of racing a pre-check.
func (db *DB) EnsureIndexes(ctx context.Context) error {
	unique := options.Index().SetUnique(true)

	indexes := map[string]mongo.IndexModel{
		"users": {
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: unique,
		},
		"deals": {
			Keys:    bson.D{{Key: "code", Value: 1}},
			Options: unique,
		},
		"package_details": {
			Keys: bson.D{
				{Key: "package_id", Value: 1},
				{Key: "day", Value: 1},
				{Key: "position", Value: 1},
			},
			Options: unique,
		},
	}

	for coll, model := range indexes {
		if _, err := db.Collection(coll).Indexes().CreateOne(ctx, model); err != nil {
			return fmt.Errorf("create index on %s: %w", coll, err)
		}
	}

	return nil
}
