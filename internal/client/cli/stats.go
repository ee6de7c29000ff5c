package cli

import (
	"context"
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/dmitrijs2005/yogastudio/internal/client/api"
)

// Stats prints how many API calls this process made, per resource, method
// and status.
func (a *App) Stats(ctx context.Context) error {
	counts, err := api.RequestCounts(a.metrics)
	if err != nil {
		return err
	}
	if len(counts) == 0 {
		fmt.Fprintln(a.out, "No API calls yet")
		return nil
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "RESOURCE\tMETHOD\tSTATUS\tCOUNT")
	for _, c := range counts {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", c.Resource, c.Method, c.Code, strconv.FormatFloat(c.Count, 'f', -1, 64))
	}
	return tw.Flush()
}
