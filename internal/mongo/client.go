package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type Client struct {
	DB *mongo.Database
	c  *mongo.Client
}

// NewClient connects and pings so an unreachable server fails here rather
// than on the first write.
func NewClient(ctx context.Context, uri, db string, timeout time.Duration) (*Client, error) {
	cl, err := mongo.Connect(ctx, options.Client().ApplyURI(uri).SetConnectTimeout(timeout).SetServerSelectionTimeout(timeout))
	if err != nil {
		return nil, err
	}
	pctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := cl.Ping(pctx, readpref.Primary()); err != nil {
		_ = cl.Disconnect(ctx)
		return nil, err
	}
	return &Client{DB: cl.Database(db), c: cl}, nil

}
func (c *Client) Close(ctx context.Context) { _ = c.c.Disconnect(ctx) }
