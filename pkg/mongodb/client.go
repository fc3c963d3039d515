package mongodb

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// Options tune how the client connects
type Options struct {
	// ServerSelectionTimeout bounds every operation waiting for a server
	ServerSelectionTimeout time.Duration
	// PingRetries is how many extra startup pings are attempted
	PingRetries int
	Logger      *zap.Logger
}

// Client represents a MongoDB client. It is created once per process and
// shared by all repositories.
type Client struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewClient creates a new MongoDB client and verifies the deployment is
// reachable, retrying the initial ping with exponential backoff.
func NewClient(ctx context.Context, uri string, opts Options) (*Client, error) {
	if opts.ServerSelectionTimeout <= 0 {
		opts.ServerSelectionTimeout = 20 * time.Second
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	clientOptions := options.Client().
		ApplyURI(uri).
		SetServerSelectionTimeout(opts.ServerSelectionTimeout)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("connect to mongodb: %w", err)
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), uint64(max(opts.PingRetries, 0))),
		ctx,
	)
	notify := func(err error, wait time.Duration) {
		opts.Logger.Warn("MongoDB ping failed, retrying", zap.Error(err), zap.Duration("wait", wait))
	}
	ping := func() error {
		return client.Ping(ctx, readpref.Primary())
	}
	if err := backoff.RetryNotify(ping, policy, notify); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	return &Client{
		client: client,
	}, nil
}

// Database returns a database
func (c *Client) Database(name string) *mongo.Database {
	if c.db == nil || c.db.Name() != name {
		c.db = c.client.Database(name)
	}
	return c.db
}

// Ping checks the deployment is reachable; used by readiness probes
func (c *Client) Ping(ctx context.Context) error {
	return c.client.Ping(ctx, readpref.Primary())
}

// Disconnect disconnects from MongoDB
func (c *Client) Disconnect(ctx context.Context) error {
	return c.client.Disconnect(ctx)
}
