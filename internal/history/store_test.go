package history

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/funvibe/calcx/internal/evaluator"
	"github.com/funvibe/calcx/internal/logger"
	"github.com/funvibe/calcx/internal/pipeline"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "db", "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecordAndRecent(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	require.NoError(t, s.BeginRun(ctx, "run-1", []string{"a.txt", "b.txt"}))
	require.NoError(t, s.Record(ctx, Record{RunID: "run-1", Input: "a.txt", Output: "out/a.txt", OK: true, Result: "14"}))
	require.NoError(t, s.Record(ctx, Record{RunID: "run-1", Input: "b.txt", Result: "ERROR:4", ErrorPos: 4}))

	n, err := s.RunCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	recs, err := s.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "b.txt", recs[0].Input)
	assert.False(t, recs[0].OK)
	assert.Equal(t, 4, recs[0].ErrorPos)
	assert.Equal(t, "a.txt", recs[1].Input)
	assert.True(t, recs[1].OK)
	assert.Equal(t, "14", recs[1].Result)

	recs, err = s.Recent(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, recs, 1)
}

func TestRecordUnknownRunFails(t *testing.T) {
	s := openTestStore(t)
	err := s.Record(context.Background(), Record{RunID: "missing", Input: "a.txt"})
	assert.Error(t, err)
}

func TestReopenKeepsData(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "history.db")

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.BeginRun(ctx, "r", nil))
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()
	n, err := s.RunCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestOpenExistingMissing(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "typo")
	path := filepath.Join(dir, "history.db")

	_, err := OpenExisting(path)
	require.ErrorIs(t, err, ErrNoDatabase)
	assert.Contains(t, err.Error(), path)

	_, statErr := os.Stat(dir)
	assert.True(t, os.IsNotExist(statErr), "directory must not be created")
}

func TestOpenExistingDirectory(t *testing.T) {
	_, err := OpenExisting(t.TempDir())
	require.ErrorIs(t, err, ErrNoDatabase)
}

func TestOpenExistingKeepsData(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "history.db")

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.BeginRun(ctx, "r", nil))
	require.NoError(t, s.Close())

	s, err = OpenExisting(path)
	require.NoError(t, err)
	defer s.Close()
	n, err := s.RunCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestRecorderProcessor(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	require.NoError(t, s.BeginRun(ctx, "run", nil))

	rp := &RecorderProcessor{Store: s}

	pctx := pipeline.NewContext("run", "in/x.txt", "out", logger.Discard())
	pctx.Outcome = evaluator.Evaluate([]byte("1 / 4"))
	pctx.Evaluated = true
	pctx.OutputPath = "out/x.txt"
	rp.Process(pctx)

	// Not evaluated: nothing recorded.
	rp.Process(pipeline.NewContext("run", "in/y.txt", "out", logger.Discard()))

	recs, err := s.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "0.25", recs[0].Result)
	assert.Equal(t, "out/x.txt", recs[0].Output)
	assert.True(t, recs[0].OK)
}
