package browse

import (
	"context"
	"sync"

	"github.com/collinalitics/go-collinalitics/collinalitics"
)

// Phase is the fetch state of a list page.
type Phase int

const (
	// Idle means no fetch has been requested yet.
	Idle Phase = iota
	// Loading means a fetch for the current state is outstanding.
	Loading
	// Ready means the last fetch for the current state succeeded. An
	// empty item list is still Ready; emptiness is a presentation
	// branch, not a fetch state.
	Ready
	// Failed means the last fetch for the current state errored.
	// There is no retry loop; a new Load is the only way out.
	Failed
)

// Snapshot is the renderable view of a list page at one moment.
type Snapshot[T any] struct {
	Phase  Phase
	State  FilterState
	Result *collinalitics.ListResult[T]
	Err    error
}

// Empty reports whether the page is Ready with nothing to show.
func (s Snapshot[T]) Empty() bool {
	return s.Phase == Ready && (s.Result == nil || len(s.Result.Items) == 0)
}

// FetchFunc fetches one page of items for a filter state.
type FetchFunc[T any] func(ctx context.Context, state FilterState) (*collinalitics.ListResult[T], error)

// Controller drives the Loading -> {Ready, Failed} cycle of a list
// page. Responses are not guaranteed to resolve in request order, so
// every fetch is keyed to the FilterState that triggered it: a
// resolution whose state no longer matches the most recently requested
// state is discarded. No network-level cancellation is attempted.
type Controller[T any] struct {
	fetch FetchFunc[T]

	mu      sync.Mutex
	current FilterState
	started bool
	snap    Snapshot[T]
}

// NewController returns a Controller using the given fetch function.
func NewController[T any](fetch FetchFunc[T]) *Controller[T] {
	return &Controller[T]{fetch: fetch}
}

// Load fetches the page for the given state and returns the snapshot
// the fetch produced. Entering Load always re-enters Loading for the
// new state; if another Load for a different state starts while this
// one is in flight, the late result is discarded and the snapshot of
// the newer request is returned instead.
func (c *Controller[T]) Load(ctx context.Context, state FilterState) Snapshot[T] {
	c.mu.Lock()
	c.current = state
	c.started = true
	c.snap = Snapshot[T]{Phase: Loading, State: state}
	c.mu.Unlock()

	result, err := c.fetch(ctx, state)

	c.mu.Lock()
	defer c.mu.Unlock()

	if state != c.current {
		// Stale resolution; a newer request owns the page now.
		return c.snap
	}

	if err != nil {
		c.snap = Snapshot[T]{Phase: Failed, State: state, Err: err}
	} else {
		c.snap = Snapshot[T]{Phase: Ready, State: state, Result: result}
	}
	return c.snap
}

// Snapshot returns the current view of the page.
func (c *Controller[T]) Snapshot() Snapshot[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.started {
		return Snapshot[T]{Phase: Idle}
	}
	return c.snap
}
