package submit

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"voxscribe/cmd/voxscribe/cmd/cli"
	"voxscribe/internal/app/clipboard"
	"voxscribe/internal/app/export"
	"voxscribe/internal/app/history"
	"voxscribe/internal/app/intake"
	"voxscribe/internal/app/progress"
)

var (
	copyText      bool
	outDir        string
	format        string
	forceProgress bool
)

func init() {
	Cmd.Flags().BoolVar(&copyText, "copy", false, "copy the transcript to the clipboard")
	Cmd.Flags().StringVarP(&outDir, "out", "o", "", "save the transcript into this directory")
	Cmd.Flags().StringVarP(&format, "format", "f", "txt", "export format: txt, srt or vtt")
	Cmd.Flags().BoolVar(&forceProgress, "progress", false, "show the progress bar even when not attached to a terminal")
}

// Cmd represents the submit command
var Cmd = &cobra.Command{
	Use:   "submit <file>",
	Short: "Transcribe one local audio file",
	Long: `Transcribe one local audio file

- Accepts mp3, wav, m4a, ogg and flac files up to 100 MiB
- Prints the transcript, confidence and duration
- Optionally copies the transcript or saves it as txt, srt or vtt`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := export.ParseFormat(format)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		a, cleanup, err := cli.LoadApp(ctx)
		if err != nil {
			return err
		}
		defer cleanup()

		file, err := intake.OpenFile(args[0])
		if err != nil {
			return err
		}

		bars := progress.NewManager(progress.Config{
			Enabled: progress.ShouldShowProgress(forceProgress),
			Writer:  os.Stderr,
		})
		detach := bars.Track(a.Pipeline, file.Name)

		sub, err := a.Pipeline.Submit(ctx, file)
		if err != nil {
			detach()
			bars.Shutdown()
			return err
		}
		result, err := sub.Wait(ctx)
		detach()
		bars.Wait()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s\n\n", result.Text)
		fmt.Fprintf(out, "source: %s  confidence: %d%%  duration: %s\n",
			result.SourceName, history.ConfidencePercent(result.Confidence), history.FormatDuration(result.Duration))

		if copyText {
			if err := clipboard.NewExecCopier().Copy(ctx, result.Text); err != nil {
				return err
			}
			fmt.Fprintln(out, "Copied to clipboard")
		}

		if outDir != "" {
			payload := export.ForResult(result, f)
			dest := export.DirDeliverer{Dir: outDir}
			if err := export.Deliver(ctx, dest, payload, a.Metrics); err != nil {
				return err
			}
			fmt.Fprintf(out, "Saved %s\n", dest.Path(payload))
		}
		return nil
	},
}
