package ingest

import (
	"context"
	"fmt"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson"

	"mongoloid/internal/area"
)

// AreaStore is the write side of the document store.
type AreaStore interface {
	InsertAreas(ctx context.Context, docs []bson.Raw) (int, error)
}

type LoadResult struct {
	Encoded  int
	Skipped  int
	Inserted int
}

// Loader converts areas to BSON and writes them in one bulk insert.
type Loader struct {
	store  AreaStore
	log    *slog.Logger
	encode func(any) ([]byte, error)
}

func NewLoader(store AreaStore, log *slog.Logger) *Loader {
	return &Loader{store: store, log: log, encode: bson.Marshal}
}

// Load encodes every area and inserts the result with a single InsertAreas
// call. A record that fails to encode is logged and left out; a failed
// insert fails the whole load.
func (l *Loader) Load(ctx context.Context, areas []area.Area) (LoadResult, error) {
	var res LoadResult
	docs := make([]bson.Raw, 0, len(areas))
	for i := range areas {
		b, err := l.encode(areas[i])
		if err != nil {
			res.Skipped++
			l.log.Warn("encode_skipped",
				slog.Int("index", i),
				slog.String("name", areas[i].Name),
				slog.String("error", err.Error()),
			)
			continue
		}
		docs = append(docs, b)
	}
	res.Encoded = len(docs)
	if len(docs) == 0 {
		return res, ErrNothingToCreate
	}

	n, err := l.store.InsertAreas(ctx, docs)
	if err != nil {
		return res, fmt.Errorf("insert %d areas: %w", len(docs), err)
	}
	res.Inserted = n
	l.log.Info("insert_done", slog.Int("inserted", n), slog.Int("skipped", res.Skipped))
	return res, nil
}
