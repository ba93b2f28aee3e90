package astar

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/katalvlaran/torus/torusgraph"
)

// recordingTracer returns a tracer whose ended spans land in the recorder.
func recordingTracer(t *testing.T) (*tracetest.SpanRecorder, *sdktrace.TracerProvider) {
	t.Helper()
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	return sr, tp
}

func spanAttr(attrs []attribute.KeyValue, key string) (attribute.Value, bool) {
	for _, kv := range attrs {
		if string(kv.Key) == key {
			return kv.Value, true
		}
	}

	return attribute.Value{}, false
}

func TestRun_SpanOnSuccess(t *testing.T) {
	sr, tp := recordingTracer(t)
	g, err := torusgraph.New(3, 3)
	require.NoError(t, err)

	s, err := NewSearch(g, torusgraph.ID{}, torusgraph.ID{X: 1, Y: 1}, WithTracer(tp.Tracer("test")))
	require.NoError(t, err)
	_, err = s.Run()
	require.NoError(t, err)

	spans := sr.Ended()
	require.Len(t, spans, 1)
	span := spans[0]
	assert.Equal(t, "astar.Search", span.Name())
	assert.Equal(t, codes.Ok, span.Status().Code)

	v, ok := spanAttr(span.Attributes(), "astar.result")
	require.True(t, ok)
	assert.Equal(t, "succeeded", v.AsString())
	v, ok = spanAttr(span.Attributes(), "astar.start")
	require.True(t, ok)
	assert.Equal(t, "(0,0)", v.AsString())
	v, ok = spanAttr(span.Attributes(), "astar.path_length")
	require.True(t, ok)
	assert.Equal(t, int64(3), v.AsInt64())

	// A finished search does not emit a second span.
	_, err = s.Run()
	require.NoError(t, err)
	assert.Len(t, sr.Ended(), 1)
}

func TestRun_SpanOnAbort(t *testing.T) {
	sr, tp := recordingTracer(t)
	g, err := torusgraph.New(3, 3)
	require.NoError(t, err)

	_, err = FindPath(failingGraph{g}, torusgraph.ID{}, torusgraph.ID{X: 2, Y: 2}, WithTracer(tp.Tracer("test")))
	require.ErrorIs(t, err, torusgraph.ErrNodeNotFound)

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	require.NotEmpty(t, spans[0].Events(), "error must be recorded on the span")
	assert.Equal(t, "exception", spans[0].Events()[0].Name)
}

func TestRun_SpanParent(t *testing.T) {
	sr, tp := recordingTracer(t)
	tracer := tp.Tracer("test")
	g, err := torusgraph.New(2, 2)
	require.NoError(t, err)

	ctx, parent := tracer.Start(context.Background(), "caller")
	_, err = FindPath(g, torusgraph.ID{}, torusgraph.ID{X: 1, Y: 1}, WithTracer(tracer), WithParentContext(ctx))
	require.NoError(t, err)
	parent.End()

	spans := sr.Ended()
	require.Len(t, spans, 2)
	assert.Equal(t, "astar.Search", spans[0].Name())
	assert.Equal(t, parent.SpanContext().SpanID(), spans[0].Parent().SpanID())
}

func TestRun_Logging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	g, err := torusgraph.New(3, 3)
	require.NoError(t, err)

	res, err := FindPath(g, torusgraph.ID{}, torusgraph.ID{X: 1, Y: 1}, WithLogger(logger))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, res.Expanded+1)

	var last map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[len(lines)-1]), &last))
	assert.Equal(t, "astar: search finished", last["msg"])
	assert.Equal(t, "INFO", last["level"])
	assert.Equal(t, "succeeded", last["result"])
	assert.Equal(t, "(1,1)", last["goal"])
	assert.EqualValues(t, 3, last["path_length"])
	assert.EqualValues(t, 2, last["cost"])

	var first map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, "astar: expand", first["msg"])
	assert.Equal(t, "(0,0)", first["node"])
}

func TestRun_Metrics(t *testing.T) {
	g, err := torusgraph.New(3, 3)
	require.NoError(t, err)

	succeeded := testutil.ToFloat64(searchTotal.WithLabelValues("succeeded"))
	aborted := testutil.ToFloat64(searchTotal.WithLabelValues("aborted"))

	_, err = FindPath(g, torusgraph.ID{}, torusgraph.ID{X: 1, Y: 1})
	require.NoError(t, err)
	_, err = FindPath(failingGraph{g}, torusgraph.ID{}, torusgraph.ID{X: 1, Y: 1})
	require.Error(t, err)

	assert.Equal(t, succeeded+1, testutil.ToFloat64(searchTotal.WithLabelValues("succeeded")))
	assert.Equal(t, aborted+1, testutil.ToFloat64(searchTotal.WithLabelValues("aborted")))
}

// failingGraph resolves start and goal but no neighbors.
type failingGraph struct {
	*torusgraph.Graph
}

func (failingGraph) Neighbors(id torusgraph.ID) ([]torusgraph.ID, error) {
	return nil, torusgraph.ErrNodeNotFound
}
