// Package fetch implements the fetch command: it retrieves a live page and
// generates a selector against it.
package fetch

import (
	"errors"
	"fmt"

	"github.com/gocolly/colly/v2"
	"github.com/spf13/cobra"

	"github.com/jonesrussell/goselector/cmd/common"
	"github.com/jonesrussell/goselector/internal/selector"
)

// ErrEmptyResponse is returned when the fetched page has no body.
var ErrEmptyResponse = errors.New("fetched page has an empty body")

// Command returns the fetch command.
func Command() *cobra.Command {
	var (
		query     string
		all       bool
		userAgent string
	)

	cmd := &cobra.Command{
		Use:   "fetch URL",
		Short: "Fetch a live page and generate a selector against it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := fetchPage(args[0], userAgent)
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

	cmd.Flags().StringVarP(&query, "query", "q", "", "CSS query locating the target element(s)")
	cmd.Flags().BoolVar(&all, "all", false, "target every element the query matches")
	cmd.Flags().StringVar(&userAgent, "user-agent", "goselector", "User-Agent header for the fetch")

	return cmd
}

// fetchPage downloads one page body.
func fetchPage(url, userAgent string) ([]byte, error) {
	collector := colly.NewCollector(colly.UserAgent(userAgent))

	var body []byte
	collector.OnResponse(func(r *colly.Response) {
		body = r.Body
	})

	if err := collector.Visit(url); err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	collector.Wait()

	if len(body) == 0 {
		return nil, ErrEmptyResponse
	}
	return body, nil
}
