package dfs

import "errors"

// Visitation states used by TopologicalSort.
const (
	White = iota // not visited yet
	Gray         // on the recursion stack
	Black        // finished, with all descendants
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to DFS,
	// TopologicalSort, Reachable, or StronglyConnected.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the start vertex ID does not
	// exist in the graph.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")

	// ErrCycleDetected indicates that TopologicalSort met a cycle.
	ErrCycleDetected = errors.New("dfs: cycle detected")

	// ErrNeighborFetch indicates a failure to retrieve neighbors from the graph.
	ErrNeighborFetch = errors.New("dfs: failed to fetch neighbors")
)

// Option configures a DFS run.
type Option func(*DFSOptions)

// DFSOptions holds the parameters of a DFS run.
type DFSOptions struct {
	// OnExit, if non-nil, is called once a vertex and all its descendants
	// are finished, just before it is appended to Order. On a DAG every
	// neighbor of id has already been passed to OnExit. An error aborts the
	// traversal and leaves Order empty.
	OnExit func(id string) error

	// FullTraversal restarts from every unvisited vertex, in lexicographic
	// order, so every vertex is covered. The start ID is ignored.
	FullTraversal bool

	// Reverse follows edges against their direction (predecessors).
	Reverse bool
}

// DefaultOptions returns single-source, forward options without a hook.
func DefaultOptions() DFSOptions {
	return DFSOptions{}
}

// WithOnExit installs fn as a post-order hook.
func WithOnExit(fn func(id string) error) Option {
	return func(o *DFSOptions) {
		o.OnExit = fn
	}
}

// WithFullTraversal makes DFS cover every vertex of the graph.
func WithFullTraversal() Option {
	return func(o *DFSOptions) {
		o.FullTraversal = true
	}
}

// WithReverse walks edges backwards (to predecessors).
func WithReverse() Option {
	return func(o *DFSOptions) {
		o.Reverse = true
	}
}

// DFSResult captures the outcome of a depth-first traversal.
type DFSResult struct {
	// Order records vertices in the sequence they finished (post-order).
	Order []string

	// Depth maps each vertex ID to its tree depth from the root it was
	// discovered from.
	Depth map[string]int

	// Parent maps each vertex ID to the vertex it was discovered from.
	// Roots of the DFS forest have no entry.
	Parent map[string]string

	// Visited flags which vertices were reached.
	Visited map[string]bool
}
