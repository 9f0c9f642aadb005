package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"voxscribe/cmd/voxscribe/cmd/cli"
	"voxscribe/cmd/voxscribe/cmd/export"
	"voxscribe/cmd/voxscribe/cmd/history"
	"voxscribe/cmd/voxscribe/cmd/serve"
	"voxscribe/cmd/voxscribe/cmd/submit"
	"voxscribe/cmd/voxscribe/cmd/version"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "voxscribe",
	Short: "Audio transcription dashboard: upload, history and export",
	Long: `voxscribe accepts audio files, runs them through the transcription
pipeline and keeps a searchable history of past transcriptions.

- serve exposes the HTTP API
- submit processes one local file with a progress bar
- history and export work on the history list`,
	SilenceUsage:     true,
	TraverseChildren: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serve.Cmd)
	rootCmd.AddCommand(submit.Cmd)
	rootCmd.AddCommand(history.Cmd)
	rootCmd.AddCommand(export.Cmd)
	rootCmd.AddCommand(version.Cmd)

	rootCmd.PersistentFlags().StringVarP(&cli.ConfigPath, "config", "c", "",
		"settings file (default is ./voxscribe.yaml or $VOXSCRIBE_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&cli.Verbose, "verbose", "V", false, "verbose output")
}
