// Package cmd implements the collin CLI, a terminal front-end for
// browsing the site's projects, services and blog posts.
package cmd

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/collinalitics/go-collinalitics/collinalitics"
	"github.com/collinalitics/go-collinalitics/config"
)

var (
	flagAddress string
	flagOutput  string
	flagVerbose bool

	rootCmd = &cobra.Command{
		Use:   "collin",
		Short: "Browse Collin Analytics projects, services and blog posts",
		Long: `collin is a command line client for the Collin Analytics site API.

It lists and looks up portfolio projects, service offerings and blog
posts, and can submit contact inquiries.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelWarn
			if flagVerbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
				Level:      level,
				TimeFormat: time.Kitchen,
			})))
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&flagAddress, "address", "", "base address of the API (default from config)")
	rootCmd.PersistentFlags().StringVarP(&flagOutput, "output", "o", "", "output format, text or json (default from config)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(newProjectsCommand())
	rootCmd.AddCommand(newServicesCommand())
	rootCmd.AddCommand(newPostsCommand())
	rootCmd.AddCommand(newContactCommand())
	rootCmd.AddCommand(newVersionCommand())
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func newClient() (*collinalitics.Client, error) {
	address := flagAddress
	if address == "" {
		address = config.APIAddress()
	}
	slog.Debug("creating client", "address", address)
	return collinalitics.NewClient(nil, address)
}

func outputFormat() (string, error) {
	format := flagOutput
	if format == "" {
		format = config.OutputFormat()
	}
	if format != "text" && format != "json" {
		return "", fmt.Errorf("invalid output format %q: must be text or json", format)
	}
	return format, nil
}

func printJSON(cmd *cobra.Command, val any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(val)
}
