package pipeline

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/tsets/pkg/cache"
	"github.com/matzehuels/tsets/pkg/graph"
	"github.com/matzehuels/tsets/pkg/observability"
)

// cacheKeyType labels result entries in cache hooks.
const cacheKeyType = "result"

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger

	// TTL is the lifetime of stored results. Zero means cache.TTLResult.
	TTL time.Duration
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute validates opts, applies the size guard, and returns the cached
// result for the graph or runs the pipeline and caches the result. Cache
// failures are logged and never fail the run.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	g := opts.Graph
	if err := CheckSize(g, opts.MaxVertices, opts.MaxEdges); err != nil {
		return nil, err
	}

	runID := uuid.NewString()
	logger := opts.Logger.With("run", runID[:8])

	graphHash, err := hashGraph(g)
	if err != nil {
		return nil, err
	}
	key := r.Keyer.ResultKey(graphHash)

	if !opts.Refresh {
		if result, ok := r.lookup(ctx, logger, key); ok {
			result.RunID = runID
			result.Graph = g
			result.GraphHash = graphHash
			result.Stats.VertexCount = g.VertexCount()
			result.Stats.EdgeCount = g.EdgeCount()
			logger.Info("loaded from cache",
				"tsets", len(result.TSets),
				"filtered", len(result.Filtered))
			return result, nil
		}
	}

	logger.Debug("enumerating",
		"vertices", g.VertexCount(),
		"edges", g.EdgeCount(),
		"workers", opts.Workers)

	result, err := Run(ctx, g, opts.Workers)
	if err != nil {
		return nil, err
	}
	result.RunID = runID
	result.GraphHash = graphHash

	logger.Info("enumerated",
		"independent_sets", len(result.IndependentSets),
		"matchings", len(result.Matchings),
		"tsets", len(result.TSets),
		"filtered", len(result.Filtered),
		"duration", result.Stats.Total())

	r.store(ctx, logger, key, result)
	return result, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

func (r *Runner) lookup(ctx context.Context, logger *log.Logger, key string) (*Result, bool) {
	hooks := observability.Cache()
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		hooks.OnCacheError(ctx, cacheKeyType, err)
		logger.Debug("cache read failed", "error", err)
		return nil, false
	}
	if !hit {
		hooks.OnCacheMiss(ctx, cacheKeyType)
		return nil, false
	}
	result, err := decodeResult(data)
	if err != nil {
		hooks.OnCacheError(ctx, cacheKeyType, err)
		logger.Debug("discarding corrupt cache entry", "error", err)
		_ = r.Cache.Delete(ctx, key)
		return nil, false
	}
	hooks.OnCacheHit(ctx, cacheKeyType)
	result.CacheHit = true
	return result, true
}

func (r *Runner) store(ctx context.Context, logger *log.Logger, key string, result *Result) {
	hooks := observability.Cache()
	data, err := encodeResult(result)
	if err != nil {
		logger.Debug("cache encode failed", "error", err)
		return
	}
	ttl := r.TTL
	if ttl <= 0 {
		ttl = cache.TTLResult
	}
	if err := r.Cache.Set(ctx, key, data, ttl); err != nil {
		hooks.OnCacheError(ctx, cacheKeyType, err)
		logger.Debug("cache write failed", "error", err)
		return
	}
	hooks.OnCacheSet(ctx, cacheKeyType, len(data))
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

// hashGraph returns the hex SHA-256 of the graph's node-link JSON. Vertex and
// edge order are part of the document, so graphs that list the same edges in
// a different order hash differently; their E_i numbering differs too.
func hashGraph(g *graph.Graph) (string, error) {
	doc, err := graph.MarshalGraph(g)
	if err != nil {
		return "", fmt.Errorf("hash graph: %w", err)
	}
	sum := sha256.Sum256(doc)
	return hex.EncodeToString(sum[:]), nil
}
