package pymu

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hs_1.csv")
	require.NoError(t, os.WriteFile(path, []byte("ax,ay\n1,2\n3,4\n5,6\n7,8\n"), 0644))

	act, err := FromFile(path,
		WithLogger(quietLogger()),
		WithExercise("hs"),
		WithSubject(1),
		WithEager(),
		WithGroundCoordinates([]int{0, 1, 2, 3}),
		WithPrimitiveDeviations([]float64{0.5, 1}),
	)
	require.NoError(t, err)

	assert.Equal(t, "hs", act.ExerciseName())
	assert.Equal(t, 4, act.Table().RowCount())
	assert.Equal(t, []Pair{{Start: 0, End: 1}, {Start: 2, End: 3}}, act.GroundPairs())

	windows, err := act.Stream(2, 2)
	require.NoError(t, err)
	n := 0
	for range windows {
		n++
	}
	assert.Equal(t, 2, n)
}

func TestFromFile_Errors(t *testing.T) {
	_, err := FromFile(filepath.Join(t.TempDir(), "missing.csv"), WithLogger(quietLogger()))
	assert.True(t, IsNotFound(err))

	path := filepath.Join(t.TempDir(), "a.csv")
	require.NoError(t, os.WriteFile(path, []byte("x\n1\n"), 0644))
	_, err = FromFile(path, WithLogger(quietLogger()), WithGroundCoordinates([]int{1}))
	assert.True(t, IsValidation(err))

	act, err := NewActivity(path, WithLogger(quietLogger()))
	require.NoError(t, err)
	_, err = act.Stream(1, 1)
	assert.True(t, IsState(err))
}

func TestNewDataset(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "hs"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "hs", "hs_1.csv"), []byte("x\n1\n"), 0644))

	cfg := DefaultConfig()
	ds, err := NewDataset(root, WithDatasetConfig(cfg.Dataset), WithDatasetLogger(quietLogger()))
	require.NoError(t, err)
	require.NoError(t, ds.Synth(context.Background()))

	all, err := ds.AllActivities()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "hs", all[0].ExerciseName())
}

func TestVersion(t *testing.T) {
	assert.Contains(t, Version(), "pymudata v")
}

func TestInitializeTracing(t *testing.T) {
	previous := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(previous) })

	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "hs"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "hs", "hs_1.csv"), []byte("x\n1\n"), 0644))

	cfg := DefaultConfig()
	cfg.Tracing = TracingConfig{Exporter: "stdout", SampleRatio: 1}

	var buf bytes.Buffer
	shutdown, err := InitializeTracing(cfg.Tracing, &buf, quietLogger())
	require.NoError(t, err)

	ds, err := NewDataset(root, WithDatasetLogger(quietLogger()))
	require.NoError(t, err)
	require.NoError(t, ds.Synth(context.Background()))
	require.NoError(t, shutdown(context.Background()))

	assert.Contains(t, buf.String(), `"Name":"dataset.synth"`)
}

func TestInitializeLogger_CloseLogFile(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Output = "file"
	cfg.Logging.FilePath = filepath.Join(t.TempDir(), "pymu.log")

	logger, err := InitializeLogger(cfg.Logging)
	require.NoError(t, err)
	logger.Info("Data file already acquired", "file_path", "hs_1.csv")
	require.NoError(t, CloseLogFile())

	content, err := os.ReadFile(cfg.Logging.FilePath)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(content), "Data file already acquired"))

	// a second close is a no-op
	assert.NoError(t, CloseLogFile())
}
