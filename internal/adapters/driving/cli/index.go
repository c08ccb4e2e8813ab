package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var indexPathFlag string

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Build a fresh index from the poem corpus",
	Long: `Indexes every poem in the corpus into the index directory.
Anything already at the index path is deleted first: re-indexing is
always a full rebuild, never an incremental update.`,
	Args: cobra.NoArgs,
	RunE: runIndex,
}

func init() {
	indexCmd.Flags().StringVar(&indexPathFlag, "index-path", defaultIndexPath, "directory the index is stored in")
	rootCmd.AddCommand(indexCmd)
}

func runIndex(cmd *cobra.Command, _ []string) error {
	path := resolveIndexPath(cmd, indexPathFlag)

	n, err := indexService.Rebuild(context.Background(), path)
	if err != nil {
		return fmt.Errorf("index failed: %w", err)
	}

	cmd.Printf("Indexed %d poems at %s\n", n, path)
	return nil
}
