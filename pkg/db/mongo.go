package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const connectTimeout = 10 * time.Second

func Connect(databaseURL, databaseName string) (*mongo.Database, *mongo.Client, error) {

	if databaseURL == "" {
		return nil, nil, fmt.Errorf("database URL cannot be empty")
	}
	if databaseName == "" {
		return nil, nil, fmt.Errorf("database name cannot be empty")
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(databaseURL))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	err = client.Ping(ctx, readpref.Primary())
	if err != nil {

		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("database ping failed: %w", err)
	}

	return client.Database(databaseName), client, nil
}
