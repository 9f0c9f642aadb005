package export

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"voxscribe/cmd/voxscribe/cmd/cli"
	"voxscribe/internal/app/export"
)

var (
	entryID  string
	format   string
	outDir   string
	xlsxPath string
	query    string
)

func init() {
	Cmd.Flags().StringVar(&entryID, "id", "", "history entry to export")
	Cmd.Flags().StringVarP(&format, "format", "f", "txt", "export format: txt, srt or vtt")
	Cmd.Flags().StringVarP(&outDir, "out", "o", ".", "directory to save the transcript into")
	Cmd.Flags().StringVar(&xlsxPath, "xlsx", "", "write matching history to this Excel file instead")
	Cmd.Flags().StringVarP(&query, "query", "q", "", "search filter for --xlsx")
}

// Cmd represents the export command
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export a history entry as text, or the history list to Excel",
	Long: `Export a history entry as text, or the history list to Excel

- --id saves one transcript as txt, srt or vtt (plain text, no timings)
- --xlsx writes every entry matching --query to a workbook`,
	RunE: func(cmd *cobra.Command, args []string) error {
		switch {
		case entryID == "" && xlsxPath == "":
			return errors.New("one of --id or --xlsx is required")
		case entryID != "" && xlsxPath != "":
			return errors.New("--id and --xlsx cannot be used together")
		}

		a, cleanup, err := cli.LoadApp(cmd.Context())
		if err != nil {
			return err
		}
		defer cleanup()

		out := cmd.OutOrStdout()
		if xlsxPath != "" {
			entries := a.Store.Search(query)
			if err := export.SaveExcel(entries, xlsxPath); err != nil {
				return err
			}
			fmt.Fprintf(out, "export finished, %d entries written to %s\n", len(entries), xlsxPath)
			return nil
		}

		f, err := export.ParseFormat(format)
		if err != nil {
			return err
		}
		entry, err := a.Store.Get(entryID)
		if err != nil {
			return err
		}

		payload := export.ForEntry(entry, f)
		dest := export.DirDeliverer{Dir: outDir}
		if err := export.Deliver(cmd.Context(), dest, payload, a.Metrics); err != nil {
			return err
		}
		fmt.Fprintf(out, "export finished, exported file path: %s\n", dest.Path(payload))
		return nil
	},
}
