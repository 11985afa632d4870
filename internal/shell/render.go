package shell

import (
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/netroute/router"
	"github.com/pterm/pterm"
)

// RenderTable writes id's routing table as a boxed table.
func RenderTable(w io.Writer, id string, routes []router.Route) error {
	if len(routes) == 0 {
		_, err := fmt.Fprintf(w, "Router %s has no routes yet.\n", id)
		return err
	}

	data := pterm.TableData{{"Destination", "Cost", "Next hop"}}
	for _, r := range routes {
		data = append(data, []string{r.Destination, strconv.FormatInt(r.Cost, 10), r.NextHop})
	}
	out, err := pterm.DefaultTable.WithHasHeader().WithBoxed().WithData(data).Srender()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "Routing table of %s\n%s\n", id, out)

	return err
}
