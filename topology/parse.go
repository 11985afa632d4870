package topology

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/netroute/core"
)

// Parse reads links from r. Malformed lines land in Result.Skipped; the
// returned error is reserved for read failures.
func Parse(r io.Reader) (*Result, error) {
	res := &Result{}
	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		n++
		text := sc.Text()
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}
		link, err := parseFields(fields)
		if err != nil {
			res.Skipped = append(res.Skipped, &LineError{Line: n, Text: text, Err: err})
			continue
		}
		res.Links = append(res.Links, link)
	}
	if err := sc.Err(); err != nil {
		return res, fmt.Errorf("topology: read line %d: %w", n+1, err)
	}

	return res, nil
}

func parseFields(fields []string) (Link, error) {
	if len(fields) != 3 {
		return Link{}, fmt.Errorf("%w, got %d", ErrFieldCount, len(fields))
	}
	cost, err := strconv.ParseInt(fields[2], 10, 64)
	if err != nil {
		return Link{}, fmt.Errorf("%w: %q", ErrBadCost, fields[2])
	}
	if cost < 0 {
		return Link{}, ErrNegativeCost
	}
	if cost > core.MaxCost {
		return Link{}, ErrCostOutOfRange
	}
	if fields[0] == fields[1] {
		return Link{}, ErrSelfLink
	}

	return Link{A: fields[0], B: fields[1], Cost: cost}, nil
}

// Write emits links in file format, one per line.
func Write(w io.Writer, links []Link) error {
	bw := bufio.NewWriter(w)
	for _, l := range links {
		if _, err := fmt.Fprintln(bw, l.String()); err != nil {
			return err
		}
	}

	return bw.Flush()
}
