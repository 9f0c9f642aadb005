package history

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"voxscribe/cmd/voxscribe/cmd/cli"
	"voxscribe/internal/app/history"
)

var (
	query    string
	page     int
	pageSize int
)

func init() {
	Cmd.Flags().StringVarP(&query, "query", "q", "", "case-insensitive search over file names and text")
	Cmd.Flags().IntVarP(&page, "page", "p", 1, "page number, clamped to the last page")
	Cmd.Flags().IntVar(&pageSize, "page-size", 0, "entries per page (default from settings)")
}

// Cmd represents the history command
var Cmd = &cobra.Command{
	Use:   "history",
	Short: "List past transcriptions",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, cleanup, err := cli.LoadApp(cmd.Context())
		if err != nil {
			return err
		}
		defer cleanup()

		size := pageSize
		if size <= 0 {
			size = a.Settings.History.PageSize
		}
		browser := history.NewBrowser(a.Store, size)
		browser.SetQuery(query)
		current := browser.GoTo(page)

		out := cmd.OutOrStdout()
		if current.Empty() {
			fmt.Fprintln(out, current.Summary())
			return nil
		}

		w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tFILE\tDATE\tDURATION\tCONFIDENCE\tSTATUS\tPREVIEW")
		for _, e := range current.Items {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d%%\t%s\t%s\n",
				e.ID, e.SourceName, history.FormatDate(e.CreatedAt), history.FormatDuration(e.Duration),
				history.ConfidencePercent(e.Confidence), e.Status, history.Preview(e.Text))
		}
		if err := w.Flush(); err != nil {
			return err
		}
		fmt.Fprintf(out, "\n%s (page %d of %d)\n", current.Summary(), current.Number, current.TotalPages)
		return nil
	},
}
