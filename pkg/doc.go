// Package pkg provides the core libraries for the relgraph relationship-graph
// compiler.
//
// # Overview
//
// relgraph turns a pedigree — parents, sex, ploidy tags, per-individual
// somatic-cell lineages, and sequenced samples — into two artifacts consumed
// by downstream probabilistic inference: a finalized directed acyclic graph
// of inheritance, and a variable-elimination plan (an order plus a junction
// tree of cliques) for peeling latent genotypes efficiently.
//
// # Architecture
//
//	Pedigree + samples
//	         ↓
//	  [pedigree] builder (vertices from members, edges from parentage rules)
//	         ↓
//	  [pedigree/newick] attacher (grafts somatic lineages onto germline vertices)
//	         ↓
//	  [transform] scaler, pruner, simplifier, finalizer
//	         ↓
//	  finalized [graph.Graph]
//	         ↓
//	  [elimination] planner (min-fill-in order + junction tree)
//	         ↓
//	  [compiler] façade: Construct / PrintGraph
//
// # Main Packages
//
// [graph] - The vertex/edge DAG shared by every pipeline stage: attribute
// maps, bulk edge removal, vertex clearing, topological sort.
//
// [pedigree] - Builds the initial graph from a Pedigree: ploidy-from-tags
// precedence, parentage-edge rules, InvalidPedigreeError.
//
// [pedigree/newick] - The Newick-parser oracle contract plus a reference
// implementation that grafts somatic-lineage subtrees onto the graph.
//
// [pedigree/tomlfixture] - A minimal TOML fixture format for the CLI demo
// commands; not a general pedigree file format.
//
// [transform] - Edge-length scaling, the seven inheritance-model pruning
// strategies, topological simplification, and finalization/relabeling.
//
// [elimination] - Dependency-set/potential-scope computation, moralization,
// min-fill-in elimination ordering, and junction-tree assembly.
//
// [compiler] - The Construct/PrintGraph façade: orchestrates the pipeline,
// wires an optional cache and observability hooks, assigns run IDs.
//
// [observability] - Optional stage hooks so the core stays free of any
// specific metrics/tracing backend.
//
// [cache] - Content-addressed memoization of elimination plans.
//
// [render] - Debug/demo DOT and SVG rendering of the finalized graph.
//
// [errors] - Structured, code-tagged errors used by the CLI to map failures
// onto exit codes; the core library itself only ever returns
// pedigree.InvalidPedigreeError.
//
// [buildinfo] - ldflags-injected version metadata for the CLI.
package pkg
