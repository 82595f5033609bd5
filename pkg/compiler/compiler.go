// Package compiler is C9: the façade that runs a Pedigree through every
// pipeline stage — build, attach, scale, prune, simplify, finalize,
// eliminate — and exposes the two public operations the domain contracts
// as Construct and PrintGraph.
package compiler

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/mutk-project/relgraph/pkg/cache"
	"github.com/mutk-project/relgraph/pkg/elimination"
	"github.com/mutk-project/relgraph/pkg/graph"
	"github.com/mutk-project/relgraph/pkg/observability"
	"github.com/mutk-project/relgraph/pkg/pedigree"
	"github.com/mutk-project/relgraph/pkg/pedigree/newick"
	"github.com/mutk-project/relgraph/pkg/transform"
)

// Options configures one Construct call.
type Options struct {
	Model                 transform.Model
	MuGerm, MuSoma        float64
	NormalizeSomaticTrees bool
	KnownSamples          map[string]bool

	// Oracle attaches somatic Newick subtrees. Defaults to newick.Parser{}
	// when nil.
	Oracle newick.Oracle
}

// Compiler holds the finalized graph and elimination plan produced by the
// most recent successful Construct call, plus the cache and hooks that
// call is run through. The zero value is ready to use.
type Compiler struct {
	Cache cache.Cache

	graph  *graph.Graph
	plan   elimination.Plan
	cached bool
}

// New returns a Compiler backed by a no-op cache.
func New() *Compiler {
	return &Compiler{Cache: cache.NewNullCache()}
}

type stage struct {
	name observability.Stage
	run  func() error
}

// Construct is C9's primary operation: it runs p through every stage of
// the pipeline and, on success, leaves the finalized graph and elimination
// plan available via Graph and Plan. Per the concurrency model it is
// synchronous, single-threaded, and mutates no shared state beyond this
// Compiler value.
func (c *Compiler) Construct(ctx context.Context, p pedigree.Pedigree, opts Options) error {
	if c.Cache == nil {
		c.Cache = cache.NewNullCache()
	}
	runID := uuid.New()

	key := planKey(p, opts)
	if cached, ok := c.loadCached(ctx, key); ok {
		observability.Cache().OnCacheHit(ctx, "plan")
		c.graph = cached.toGraph()
		c.plan = cached.toPlan()
		c.cached = true
		return nil
	}
	observability.Cache().OnCacheMiss(ctx, "plan")
	c.cached = false

	oracle := opts.Oracle
	if oracle == nil {
		oracle = newick.Parser{}
	}

	stages := []stage{
		{observability.StageBuild, func() error {
			g, err := pedigree.Build(p)
			if err != nil {
				return err
			}
			c.graph = g
			return nil
		}},
		{observability.StageAttach, func() error {
			return pedigree.AttachSomaticTrees(c.graph, p, opts.KnownSamples, oracle, opts.NormalizeSomaticTrees)
		}},
		{observability.StageScale, func() error {
			transform.ScaleEdgeLengths(c.graph, opts.MuGerm, opts.MuSoma)
			return nil
		}},
		{observability.StagePrune, func() error {
			return transform.Prune(c.graph, opts.Model)
		}},
		{observability.StageSimplify, func() error {
			return transform.Simplify(c.graph)
		}},
		{observability.StageFinalize, func() error {
			out, err := transform.Finalize(c.graph)
			if err != nil {
				return err
			}
			c.graph = out
			return nil
		}},
		{observability.StageEliminate, func() error {
			c.plan = elimination.Build(c.graph)
			return nil
		}},
	}

	for _, s := range stages {
		observability.Get().OnStageStart(ctx, runID, s.name)
		start := time.Now()
		err := s.run()
		observability.Get().OnStageComplete(ctx, runID, s.name, time.Since(start), err)
		if err != nil {
			return err
		}
	}

	c.store(ctx, key)
	return nil
}

// Graph returns the finalized graph from the most recent Construct call.
func (c *Compiler) Graph() *graph.Graph { return c.graph }

// Plan returns the elimination plan from the most recent Construct call.
func (c *Compiler) Plan() elimination.Plan { return c.plan }

// Cached reports whether the most recent Construct call was served from the
// plan cache rather than recomputed.
func (c *Compiler) Cached() bool { return c.cached }

func (c *Compiler) loadCached(ctx context.Context, key string) (planEnvelope, bool) {
	data, hit, err := c.Cache.Get(ctx, key)
	if err != nil || !hit {
		return planEnvelope{}, false
	}
	var env planEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return planEnvelope{}, false
	}
	return env, true
}

func (c *Compiler) store(ctx context.Context, key string) {
	env := envelopeFrom(c.graph, c.plan)
	data, err := json.Marshal(env)
	if err != nil {
		return
	}
	if err := c.Cache.Set(ctx, key, data, 24*time.Hour); err == nil {
		observability.Cache().OnCacheSet(ctx, "plan", len(data))
	}
}

func planKey(p pedigree.Pedigree, opts Options) string {
	payload, _ := json.Marshal(struct {
		Members               []pedigree.Member
		Model                 transform.Model
		MuGerm, MuSoma        float64
		NormalizeSomaticTrees bool
		KnownSamples          map[string]bool
	}{p.Members, opts.Model, opts.MuGerm, opts.MuSoma, opts.NormalizeSomaticTrees, opts.KnownSamples})
	return "plan:" + cache.Hash(payload)
}
