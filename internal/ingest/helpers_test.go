package ingest

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

// recordingStore captures every InsertAreas call.
type recordingStore struct {
	calls [][]bson.Raw
	err   error
}

func (s *recordingStore) InsertAreas(_ context.Context, docs []bson.Raw) (int, error) {
	s.calls = append(s.calls, docs)
	if s.err != nil {
		return 0, s.err
	}
	return len(docs), nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// writeTree creates files under root; keys are slash-separated relative
// paths, a trailing slash makes an empty directory.
func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, body := range files {
		p := filepath.Join(root, filepath.FromSlash(rel))
		if rel[len(rel)-1] == '/' {
			require.NoError(t, os.MkdirAll(p, 0o755))
			continue
		}
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	}
}
