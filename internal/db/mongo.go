package db

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"adboard/internal/config/configs"
)

// NewMongoDatabase connects to MongoDB with the provided configuration and
// returns a handle on the configured database. The function verifies that a
// connection can be established by pinging the deployment with a 5 second
// timeout; if pinging fails the client is disconnected and an error is
// returned, which the caller must treat as fatal since no page can be served
// without the database. The caller disconnects the underlying client via
// db.Client().Disconnect when done.
func NewMongoDatabase(ctx context.Context, cfg configs.Mongo) (*mongo.Database, error) {
	opts := options.Client().
		ApplyURI(cfg.URI).
		SetServerSelectionTimeout(5 * time.Second)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, err
	}

	// ping with timeout to ensure connectivity
	ctxPing, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err = client.Ping(ctxPing, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}
	return client.Database(cfg.Database), nil
}
