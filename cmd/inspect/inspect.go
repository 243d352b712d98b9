// Package inspect implements the inspect command: it renders the full
// descriptor candidate table behind a generation run, for debugging.
package inspect

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/jonesrussell/goselector/cmd/common"
	"github.com/jonesrussell/goselector/internal/selector"
)

// Command returns the inspect command.
func Command() *cobra.Command {
	var (
		file  string
		query string
		all   bool
	)

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Show every candidate descriptor behind a generated selector",
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
			explanation, err := gen.Explain(targets.Nodes...)
			if err != nil {
				return fmt.Errorf("generation failed: %w", err)
			}

			renderTable(explanation)
			fmt.Fprintln(cmd.OutOrStdout())
			fmt.Fprintln(cmd.OutOrStdout(), "selector:", explanation.Selector)
			if explanation.Degenerate {
				fmt.Fprintln(cmd.OutOrStdout(), "warning: selector is best-effort and may not be unique")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "HTML file to read (default: stdin)")
	cmd.Flags().StringVarP(&query, "query", "q", "", "CSS query locating the target element(s)")
	cmd.Flags().BoolVar(&all, "all", false, "target every element the query matches")

	return cmd
}

// renderTable formats the candidate descriptors in a table, marking the
// ones the optimizer kept.
func renderTable(explanation *selector.Explanation) {
	kept := make(map[selector.Descriptor]bool, len(explanation.Selected))
	for _, d := range explanation.Selected {
		kept[d] = true
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Type", "Level", "Cost", "Fragment", "Kept"})

	for _, d := range explanation.Candidates {
		mark := ""
		if kept[d] {
			mark = "x"
		}
		t.AppendRow(table.Row{d.Type, d.Level, d.Cost, d.Selector, mark})
	}

	t.Render()
}
