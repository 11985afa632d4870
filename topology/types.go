package topology

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"
)

// Sentinel errors describing why a line was skipped.
var (
	// ErrFieldCount indicates a line without exactly three fields.
	ErrFieldCount = errors.New("topology: expected 3 fields")

	// ErrBadCost indicates a cost that is not a base-10 integer.
	ErrBadCost = errors.New("topology: cost is not an integer")

	// ErrNegativeCost indicates a cost below zero.
	ErrNegativeCost = errors.New("topology: cost is negative")

	// ErrCostOutOfRange indicates a cost above core.MaxCost.
	ErrCostOutOfRange = errors.New("topology: cost out of range")

	// ErrSelfLink indicates both endpoints name the same router.
	ErrSelfLink = errors.New("topology: link endpoints are identical")
)

// Link is one line of the topology file.
type Link struct {
	A    string `json:"a" yaml:"a" toml:"a"`
	B    string `json:"b" yaml:"b" toml:"b"`
	Cost int64  `json:"cost" yaml:"cost" toml:"cost"`
}

// String renders l in file format, without the newline.
func (l Link) String() string {
	return fmt.Sprintf("%s %s %d", l.A, l.B, l.Cost)
}

// LineError records a skipped line.
type LineError struct {
	Line int
	Text string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }

// Result is the outcome of Parse.
type Result struct {
	Links   []Link
	Skipped []*LineError
}

// Err folds every skipped line into one error, or nil when none were skipped.
func (r *Result) Err() error {
	var err error
	for _, le := range r.Skipped {
		err = multierr.Append(err, le)
	}

	return err
}

// Routers returns the distinct router ids in order of first appearance.
func (r *Result) Routers() []string {
	seen := make(map[string]struct{})
	var ids []string
	for _, l := range r.Links {
		for _, id := range [2]string{l.A, l.B} {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}

	return ids
}
