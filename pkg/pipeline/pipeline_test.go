package pipeline

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/tsets/pkg/cache"
	"github.com/matzehuels/tsets/pkg/errors"
	"github.com/matzehuels/tsets/pkg/graph"
	"github.com/matzehuels/tsets/pkg/observability"
)

func TestOptionsDefaults(t *testing.T) {
	opts := Options{Graph: graph.Cycle(4)}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults: %v", err)
	}
	if opts.Workers != DefaultWorkers {
		t.Errorf("Workers = %d, want %d", opts.Workers, DefaultWorkers)
	}
	if opts.MaxVertices != DefaultMaxVertices {
		t.Errorf("MaxVertices = %d, want %d", opts.MaxVertices, DefaultMaxVertices)
	}
	if opts.MaxEdges != DefaultMaxEdges {
		t.Errorf("MaxEdges = %d, want %d", opts.MaxEdges, DefaultMaxEdges)
	}
	if opts.Logger == nil {
		t.Error("Logger should be set")
	}
}

func TestOptionsValidation(t *testing.T) {
	tests := []struct {
		name     string
		opts     Options
		wantCode errors.Code
	}{
		{"missing graph", Options{}, errors.ErrCodeInvalidInput},
		{"negative workers", Options{Graph: graph.Cycle(3), Workers: -1}, errors.ErrCodeInvalidInput},
		{"valid", Options{Graph: graph.Cycle(3), Workers: 4}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateAndSetDefaults()
			if got := errors.GetCode(err); got != tt.wantCode {
				t.Errorf("code = %q, want %q (err %v)", got, tt.wantCode, err)
			}
		})
	}
}

func TestOptionsValidateAndSetDefaultsIdempotent(t *testing.T) {
	opts := Options{Graph: graph.Cycle(3), MaxVertices: -1}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatal(err)
	}
	first := opts
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatal(err)
	}
	if opts.MaxVertices != -1 || opts.Workers != first.Workers {
		t.Errorf("second call changed options: %+v", opts)
	}
}

func TestCheckSize(t *testing.T) {
	tests := []struct {
		name         string
		g            *graph.Graph
		maxV, maxE   int
		wantTooLarge bool
	}{
		{"within limits", graph.Cycle(6), 20, 24, false},
		{"at vertex limit", graph.Cycle(20), 20, 24, false},
		{"too many vertices", graph.Cycle(21), 20, 24, true},
		{"too many edges", graph.Complete(8), 20, 24, true},
		{"vertex guard disabled", graph.Cycle(30), -1, -1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckSize(tt.g, tt.maxV, tt.maxE)
			if got := errors.Is(err, errors.ErrCodeTooLarge); got != tt.wantTooLarge {
				t.Errorf("CheckSize() = %v, wantTooLarge %v", err, tt.wantTooLarge)
			}
		})
	}
}

func TestRun(t *testing.T) {
	result, err := Run(context.Background(), graph.Cycle(6), 1)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := len(result.IndependentSets); got != 17 {
		t.Errorf("independent sets = %d, want 17", got)
	}
	if got := len(result.Matchings); got != 17 {
		t.Errorf("matchings = %d, want 17", got)
	}
	if got := len(result.TSets); got != 12 {
		t.Errorf("tsets = %d, want 12", got)
	}
	if got := len(result.Filtered); got != 12 {
		t.Errorf("filtered = %d, want 12", got)
	}
	if result.Stats.VertexCount != 6 || result.Stats.EdgeCount != 6 {
		t.Errorf("stats = %+v", result.Stats)
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Run(ctx, graph.Cycle(6), 2); err != context.Canceled {
		t.Errorf("Run() = %v, want context.Canceled", err)
	}
}

func TestRunEmitsStageHooks(t *testing.T) {
	rec := &recordingHooks{}
	observability.SetPipelineHooks(rec)
	defer observability.Reset()

	if _, err := Run(context.Background(), graph.Cycle(4), 1); err != nil {
		t.Fatal(err)
	}

	want := []string{
		observability.StageIndependentSets,
		observability.StageMatchings,
		observability.StageCompose,
		observability.StageFilter,
	}
	if strings.Join(rec.completed, ",") != strings.Join(want, ",") {
		t.Errorf("completed stages = %v, want %v", rec.completed, want)
	}
}

func TestRunnerExecuteTooLarge(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	_, err := r.Execute(context.Background(), Options{Graph: graph.Cycle(25)})
	if !errors.Is(err, errors.ErrCodeTooLarge) {
		t.Errorf("Execute() = %v, want TOO_LARGE", err)
	}
}

func TestRunnerExecuteCache(t *testing.T) {
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	var logs bytes.Buffer
	logger := log.NewWithOptions(&logs, log.Options{Level: log.DebugLevel})
	r := NewRunner(c, nil, logger)
	defer r.Close()
	ctx := context.Background()

	first, err := r.Execute(ctx, Options{Graph: graph.Cycle(8)})
	if err != nil {
		t.Fatalf("first Execute: %v", err)
	}
	if first.CacheHit {
		t.Error("first run should miss the cache")
	}
	if first.RunID == "" || first.GraphHash == "" {
		t.Errorf("run id %q, graph hash %q should be set", first.RunID, first.GraphHash)
	}

	second, err := r.Execute(ctx, Options{Graph: graph.Cycle(8), Workers: 3})
	if err != nil {
		t.Fatalf("second Execute: %v", err)
	}
	if !second.CacheHit {
		t.Error("second run should hit the cache")
	}
	if second.RunID == first.RunID {
		t.Error("each run should get its own id")
	}
	assertSameEnumeration(t, first, second)

	refreshed, err := r.Execute(ctx, Options{Graph: graph.Cycle(8), Refresh: true})
	if err != nil {
		t.Fatalf("refresh Execute: %v", err)
	}
	if refreshed.CacheHit {
		t.Error("refresh should bypass the cache")
	}
	if !strings.Contains(logs.String(), "enumerated") {
		t.Errorf("expected an 'enumerated' log line, got:\n%s", logs.String())
	}
}

func TestHashGraph(t *testing.T) {
	c4, err := hashGraph(graph.Cycle(4))
	if err != nil {
		t.Fatal(err)
	}
	doc, _ := graph.MarshalGraph(graph.Cycle(4))
	sum := sha256.Sum256(doc)
	if want := hex.EncodeToString(sum[:]); c4 != want {
		t.Errorf("hashGraph(C4) = %s, want sha256 of the graph JSON %s", c4, want)
	}

	p4, _ := hashGraph(graph.Path(4))
	if p4 == c4 {
		t.Error("C4 and P4 should hash differently")
	}

	// Same edges as C4, listed in ring order: E_i numbering differs, so the key must too.
	ring := graph.Empty(4)
	for _, e := range [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}} {
		if err := ring.AddEdge(e[0], e[1]); err != nil {
			t.Fatal(err)
		}
	}
	if h, _ := hashGraph(ring); h == c4 {
		t.Error("edge order should be part of the graph hash")
	}
}

func TestRunnerIgnoresCorruptCache(t *testing.T) {
	c, _ := cache.NewFileCache(t.TempDir())
	r := NewRunner(c, nil, nil)
	ctx := context.Background()
	g := graph.Cycle(5)

	hash, err := hashGraph(g)
	if err != nil {
		t.Fatal(err)
	}
	key := r.Keyer.ResultKey(hash)
	if err := c.Set(ctx, key, []byte(`{"tsets":[{"v_index":9,"e_index":0}]}`), time.Hour); err != nil {
		t.Fatal(err)
	}

	result, err := r.Execute(ctx, Options{Graph: g})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if result.CacheHit {
		t.Error("corrupt entry should be treated as a miss")
	}
	if len(result.TSets) != 5 {
		t.Errorf("tsets = %d, want 5", len(result.TSets))
	}
}

func TestCodecRoundTrip(t *testing.T) {
	result, err := Run(context.Background(), graph.Cycle(7), 1)
	if err != nil {
		t.Fatal(err)
	}
	data, err := encodeResult(result)
	if err != nil {
		t.Fatal(err)
	}
	decoded, err := decodeResult(data)
	if err != nil {
		t.Fatal(err)
	}
	assertSameEnumeration(t, result, decoded)
}

func TestRender(t *testing.T) {
	result, err := Run(context.Background(), graph.Cycle(6), 1)
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()

	dot, err := Render(ctx, result, RenderOptions{Format: "dot", Highlight: 0})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(string(dot), "T_0: V_0 ∪ E_3") {
		t.Errorf("highlight title missing:\n%s", dot)
	}

	plain, err := Render(ctx, result, RenderOptions{Format: "dot", Highlight: NoHighlight})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if strings.Contains(string(plain), "fillcolor=\"#") {
		t.Error("plain render should not highlight vertices")
	}

	if _, err := Render(ctx, result, RenderOptions{Format: "dot", Highlight: 12}); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("out-of-range highlight = %v, want INVALID_INPUT", err)
	}
	if _, err := Render(ctx, result, RenderOptions{Format: "gif", Highlight: NoHighlight}); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("bad format = %v, want INVALID_FORMAT", err)
	}
}

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"svg", false},
		{"png", false},
		{"dot", false},
		{"pdf", true},
		{"SVG", true},
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
	}
}

func assertSameEnumeration(t *testing.T, a, b *Result) {
	t.Helper()
	if !reflect.DeepEqual(a.IndependentSets, b.IndependentSets) {
		t.Error("independent sets differ")
	}
	if !reflect.DeepEqual(a.Matchings, b.Matchings) {
		t.Error("matchings differ")
	}
	if !reflect.DeepEqual(a.TSets, b.TSets) {
		t.Error("tsets differ")
	}
	if !reflect.DeepEqual(a.Filtered, b.Filtered) {
		t.Error("filtered tsets differ")
	}
}

type recordingHooks struct {
	observability.NoopPipelineHooks
	completed []string
}

func (h *recordingHooks) OnStageComplete(_ context.Context, stage string, _ int, _ time.Duration, _ error) {
	h.completed = append(h.completed, stage)
}
