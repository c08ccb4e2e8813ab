package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var searchIndexPathFlag string

var searchCmd = &cobra.Command{
	Use:   "search [keyword]",
	Short: "Search indexed poems by keyword",
	Long: `Runs the keyword as a free-text query against every field of the
indexed poems (title, author, dynasty, content) and prints the matches
in relevance order. The index must have been built first.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVar(&searchIndexPathFlag, "index-path", defaultIndexPath, "directory the index is stored in")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	path := resolveIndexPath(cmd, searchIndexPathFlag)

	poems, err := searchService.Search(context.Background(), path, args[0])
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if len(poems) == 0 {
		cmd.Println("No poem matched.")
		return nil
	}

	for _, p := range poems {
		cmd.Println(renderPoem(p))
	}
	return nil
}
