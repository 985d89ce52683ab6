// Package mongo implements the document-store repositories on MongoDB.
package mongo

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/fx"

	"gameswap/config"
)

const connectTimeout = 10 * time.Second

// New connects to MongoDB and returns the application database handle.
// Disconnection is tied to the fx lifecycle.
func New(lc fx.Lifecycle, cfg *config.Config) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to mongo")
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, errors.Wrap(err, "failed to ping mongo")
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return errors.Wrap(client.Disconnect(ctx), "failed to disconnect mongo")
		},
	})

	return client.Database(cfg.Mongo.Database), nil
}
