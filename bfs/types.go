package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for a walk.
var (
	// ErrStartNotFound is returned when the start ID is absent.
	ErrStartNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrUnreached is returned by PathTo for a vertex the walk never saw.
	ErrUnreached = errors.New("bfs: vertex not reached")
)

// Option configures a walk. An invalid Option is recorded and surfaced as
// ErrOptionViolation when Walk is invoked.
type Option func(*Options)

// Options holds walk parameters.
type Options struct {
	// Ctx allows cancellation.
	Ctx context.Context

	// MaxHops, if > 0, stops exploring beyond this many links.
	MaxHops int

	// Filter skips the link from→to when it returns false.
	Filter func(from, to string, cost int64) bool

	err error
}

// DefaultOptions returns a background context, no hop limit and no filter.
func DefaultOptions() Options {
	return Options{
		Ctx:    context.Background(),
		Filter: func(string, string, int64) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxHops limits the walk to d links from the start; 0 means no limit.
func WithMaxHops(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxHops cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxHops = d
	}
}

// WithFilter skips links for which fn returns false.
func WithFilter(fn func(from, to string, cost int64) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.Filter = fn
		}
	}
}

// Result holds the outcome of a walk:
//   - Order: vertices in visit sequence, start first.
//   - Hops: number of links between the start and each reached vertex.
//   - Parent: predecessor of each reached vertex except the start.
type Result struct {
	Start  string
	Order  []string
	Hops   map[string]int
	Parent map[string]string
}

// Reached reports whether id was visited.
func (r *Result) Reached(id string) bool {
	_, ok := r.Hops[id]
	return ok
}

// PathTo reconstructs the fewest-hop path from the start to dest.
func (r *Result) PathTo(dest string) ([]string, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("%w: %q", ErrUnreached, dest)
	}
	path := make([]string, 0, r.Hops[dest]+1)
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
