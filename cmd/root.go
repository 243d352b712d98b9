// Package cmd implements the command-line interface for goselector. It
// provides the root command and subcommands for generating unique CSS
// selectors from HTML documents.
package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonesrussell/goselector/cmd/common"
	cmdfetch "github.com/jonesrussell/goselector/cmd/fetch"
	cmdgenerate "github.com/jonesrussell/goselector/cmd/generate"
	cmdhttpd "github.com/jonesrussell/goselector/cmd/httpd"
	cmdinspect "github.com/jonesrussell/goselector/cmd/inspect"
)

// Version is set at build time.
var Version = "dev"

var (
	// cfgFile holds the path to the configuration file.
	cfgFile string

	// debug enables debug mode for all commands.
	debug bool

	// rootCmd represents the root command for the goselector CLI.
	rootCmd = &cobra.Command{
		Use:   "goselector",
		Short: "Generate minimal, unique CSS selectors for HTML elements",
		Long: `goselector generates the smallest CSS selector that still uniquely
identifies one or more elements of an HTML document.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return common.Init(cfgFile, debug)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
)

// Execute runs the root command.
func Execute() error {
	return rootCmd.ExecuteContext(context.Background())
}

// init initializes the root command and its subcommands.
func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"",
		"config file (default is ./config.yaml or ./config/config.yaml)",
	)
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug mode")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("goselector version %s\n", Version)
		},
	})

	rootCmd.AddCommand(cmdgenerate.Command())
	rootCmd.AddCommand(cmdinspect.Command())
	rootCmd.AddCommand(cmdfetch.Command())
	rootCmd.AddCommand(cmdhttpd.Command())
}
