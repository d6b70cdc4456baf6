// Package database owns the MongoDB client lifecycle. Connect is called
// once at startup; the resulting handles are passed into repositories
// rather than referenced as ambient globals.
package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shashiranjanraj/bistro-boss-server/config"
)

// Mongo bundles the connected client and the application database handle.
type Mongo struct {
	Client *mongo.Client
	DB     *mongo.Database
}

// Connect opens the MongoDB connection, configures the pool and verifies it
// with a ping. Returns an error instead of exiting so the caller can shut
// down gracefully.
func Connect(ctx context.Context) (*Mongo, error) {
	clientOpts := options.Client().
		ApplyURI(config.MongoURI()).
		SetConnectTimeout(5 * time.Second).
		SetServerSelectionTimeout(5 * time.Second).
		SetMaxPoolSize(25)

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("database: connect: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("database: ping: %w", err)
	}

	return &Mongo{
		Client: client,
		DB:     client.Database(config.MongoDB()),
	}, nil
}

// Disconnect closes the client with a bounded timeout.
func (m *Mongo) Disconnect() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := m.Client.Disconnect(ctx); err != nil {
		return fmt.Errorf("database: disconnect: %w", err)
	}
	return nil
}

// Collection is shorthand for m.DB.Collection(name).
func (m *Mongo) Collection(name string) *mongo.Collection {
	return m.DB.Collection(name)
}
