// Package generate implements the generate command: it reads an HTML
// document, locates the target element(s), and prints the generated
// selector.
package generate

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonesrussell/goselector/cmd/common"
	"github.com/jonesrussell/goselector/internal/selector"
)

// Command returns the generate command.
func Command() *cobra.Command {
	var (
		file  string
		query string
		all   bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a unique selector for an element",
		Long: `Generate reads an HTML document from a file or stdin, locates the
target element(s) with a standard CSS query, and prints the minimal unique
selector for them.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := common.ReadInput(file)
			if err != nil {
				return err
			}
			targets, err := common.ResolveTargets(content, query, all)
			if err != nil {
				return err
			}

			gen, err := selector.New(
				targets.Document,
				common.Config().Selector.Options(),
				common.Logger(),
			)
			if err != nil {
				return err
			}
			sel, err := gen.Selector(targets.Nodes...)
			if err != nil {
				return fmt.Errorf("generation failed: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), sel)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "HTML file to read (default: stdin)")
	cmd.Flags().StringVarP(&query, "query", "q", "", "CSS query locating the target element(s)")
	cmd.Flags().BoolVar(&all, "all", false, "target every element the query matches")

	return cmd
}
