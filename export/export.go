// Package export encodes a network.Snapshot for humans and tools.
package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/BurntSushi/toml"
	"github.com/katalvlaran/netroute/network"
	"gopkg.in/yaml.v3"
)

// Format names an output encoding.
type Format string

// Supported formats.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// ErrUnknownFormat is returned by ParseFormat and Encode for unsupported names.
var ErrUnknownFormat = errors.New("export: unknown format")

// Formats lists every supported format in display order.
func Formats() []Format {
	return []Format{FormatText, FormatJSON, FormatYAML, FormatTOML}
}

// ParseFormat accepts a format name case-insensitively; "yml" is an alias of yaml.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON, FormatYAML, FormatTOML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Encode writes s to w in format f.
func Encode(w io.Writer, s network.Snapshot, f Format) error {
	switch f {
	case FormatText:
		return encodeText(w, s)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(s)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(s); err != nil {
			return err
		}
		return enc.Close()
	case FormatTOML:
		return toml.NewEncoder(w).Encode(s)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
	}
}

// encodeText prints one aligned block per router.
func encodeText(w io.Writer, s network.Snapshot) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "generation %d\n", s.Generation)
	for _, rt := range s.Routers {
		fmt.Fprintf(tw, "\nrouter %s\n", rt.Router)
		fmt.Fprintln(tw, "DESTINATION\tCOST\tNEXT HOP")
		for _, e := range rt.Routes {
			fmt.Fprintf(tw, "%s\t%d\t%s\n", e.Destination, e.Cost, e.NextHop)
		}
	}

	return tw.Flush()
}
