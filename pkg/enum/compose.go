package enum

import (
	"context"
	"sync"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/devchat-ai/gopool"
)

// chunksPerWorker oversplits the outer loop so uneven rows balance out.
const chunksPerWorker = 4

// Compose pairs every independent set with every matching and keeps the pairs
// (V_i, E_j) with |V_i| == |E_j| > 0 that are [Disjoint] and [NonIncident].
// Independent sets form the outer loop and matchings the inner loop.
func Compose(g Graph, sets []VertexSet, matchings []EdgeSet) []TSet {
	c := newComposer(g, sets, matchings)
	out := []TSet{}
	for i := range sets {
		out = c.row(i, out)
	}
	return out
}

// ComposeParallel returns the same T-sets as [Compose], in the same order,
// computing contiguous ranges of independent sets on a pool of workers.
// workers <= 1 runs sequentially. Cancellation is checked between rows; on
// cancellation the context error is returned with no partial result.
func ComposeParallel(ctx context.Context, g Graph, sets []VertexSet, matchings []EdgeSet, workers int) ([]TSet, error) {
	c := newComposer(g, sets, matchings)

	if workers <= 1 || len(sets) < 2 {
		out := []TSet{}
		for i := range sets {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			out = c.row(i, out)
		}
		return out, nil
	}

	ranges := split(len(sets), workers*chunksPerWorker)
	results := make([][]TSet, len(ranges))

	pool := gopool.NewGoPool(workers)
	defer pool.Release()

	var wg sync.WaitGroup
	wg.Add(len(ranges))
	for k, r := range ranges {
		pool.AddTask(func() (interface{}, error) {
			defer wg.Done()
			var part []TSet
			for i := r.lo; i < r.hi; i++ {
				if err := ctx.Err(); err != nil {
					return nil, err
				}
				part = c.row(i, part)
			}
			results[k] = part
			return nil, nil
		})
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	total := 0
	for _, part := range results {
		total += len(part)
	}
	out := make([]TSet, 0, total)
	for _, part := range results {
		out = append(out, part...)
	}
	return out, nil
}

// composer holds per-input precomputation shared read-only by all rows.
type composer struct {
	g         Graph
	sets      []VertexSet
	matchings []EdgeSet
	vsets     []mapset.Set[int]
	endpoints []mapset.Set[int]
	bySize    map[int][]int // matching size -> matching indices, ascending
}

func newComposer(g Graph, sets []VertexSet, matchings []EdgeSet) *composer {
	c := &composer{
		g:         g,
		sets:      sets,
		matchings: matchings,
		vsets:     make([]mapset.Set[int], len(sets)),
		endpoints: make([]mapset.Set[int], len(matchings)),
		bySize:    make(map[int][]int),
	}
	for i, vs := range sets {
		c.vsets[i] = vertexSet(vs)
	}
	for j, es := range matchings {
		c.endpoints[j] = endpointSet(es)
		c.bySize[len(es)] = append(c.bySize[len(es)], j)
	}
	return c
}

// row appends the T-sets built from independent set i, in matching order.
func (c *composer) row(i int, out []TSet) []TSet {
	vs := c.sets[i]
	if len(vs) == 0 {
		return out
	}
	for _, j := range c.bySize[len(vs)] {
		es := c.matchings[j]
		if !disjoint(c.vsets[i], c.endpoints[j]) || !NonIncident(c.g, vs, es) {
			continue
		}
		out = append(out, TSet{
			IndependentIndex: i,
			MatchingIndex:    j,
			Vertices:         append(VertexSet(nil), vs...),
			Edges:            append(EdgeSet(nil), es...),
		})
	}
	return out
}

type span struct{ lo, hi int }

// split divides 0..n into at most parts contiguous non-empty spans.
func split(n, parts int) []span {
	if parts > n {
		parts = n
	}
	if parts < 1 {
		return nil
	}
	out := make([]span, 0, parts)
	size, rem := n/parts, n%parts
	lo := 0
	for p := range parts {
		hi := lo + size
		if p < rem {
			hi++
		}
		out = append(out, span{lo, hi})
		lo = hi
	}
	return out
}
