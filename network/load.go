package network

import (
	"errors"
	"io"

	"github.com/katalvlaran/netroute/topology"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// LoadTopology reads link lines from r, ensures both routers of every link
// exist, installs the links, and runs one recomputation pass at the end.
// Malformed lines are skipped and listed in the report; only read failures
// are returned as errors.
func (n *Network) LoadTopology(r io.Reader) (*LoadReport, error) {
	res, err := topology.Parse(r)
	if err != nil {
		return nil, err
	}

	return n.apply(res)
}

// LoadTopologyFile opens path on fsys and loads it like LoadTopology.
func (n *Network) LoadTopologyFile(fsys afero.Fs, path string) (*LoadReport, error) {
	res, err := topology.ReadFile(fsys, path)
	if err != nil {
		return nil, err
	}
	n.logger.Info("loading topology", zap.String("file", path), zap.Int("links", len(res.Links)))

	return n.apply(res)
}

func (n *Network) apply(res *topology.Result) (*LoadReport, error) {
	for _, le := range res.Skipped {
		n.logger.Warn("skipping malformed topology line",
			zap.Int("line", le.Line), zap.String("text", le.Text), zap.Error(le.Err))
	}

	tx, err := n.update(func(tx *Tx) error {
		for _, l := range res.Links {
			for _, id := range [2]string{l.A, l.B} {
				if err := tx.AddRouter(id); err != nil && !errors.Is(err, ErrRouterExists) {
					return err
				}
			}
			if err := tx.AddLink(l.A, l.B, l.Cost); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &LoadReport{Links: len(res.Links), RoutersAdded: tx.added, Skipped: res.Skipped}, nil
}
