package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const AreaCollection = "area"

func (c *Client) AreasCollection() *mongo.Collection {
	return c.DB.Collection(AreaCollection)
}

// InsertAreas writes pre-encoded area documents with a single InsertMany
// using the driver's default options (ordered). It reports how many
// documents the server acknowledged.
func (c *Client) InsertAreas(ctx context.Context, docs []bson.Raw) (int, error) {
	if len(docs) == 0 {
		return 0, nil
	}
	batch := make([]interface{}, 0, len(docs))
	for _, d := range docs {
		batch = append(batch, d)
	}
	res, err := c.AreasCollection().InsertMany(ctx, batch)
	if err != nil {
		return 0, err
	}
	return len(res.InsertedIDs), nil
}

// DatabaseName is the name of the database writes go to.
func (c *Client) DatabaseName() string { return c.DB.Name() }
