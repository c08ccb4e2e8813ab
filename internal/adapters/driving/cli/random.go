package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var randomCountFlag int

var randomCmd = &cobra.Command{
	Use:   "random",
	Short: "Print random poems without repeats",
	Long: `Samples poems uniformly from the corpus without replacement.
Asking for more poems than the corpus holds returns the whole corpus
in random order.`,
	Args: cobra.NoArgs,
	RunE: runRandom,
}

func init() {
	randomCmd.Flags().IntVar(&randomCountFlag, "count", 1, "number of poems to sample")
	rootCmd.AddCommand(randomCmd)
}

func runRandom(cmd *cobra.Command, _ []string) error {
	poems, err := corpusService.Random(context.Background(), randomCountFlag)
	if err != nil {
		return fmt.Errorf("random failed: %w", err)
	}

	// A positive count with no result means the corpus itself is empty.
	if len(poems) == 0 && randomCountFlag > 0 {
		cmd.Println("no poem in repo")
		return nil
	}

	for _, p := range poems {
		cmd.Println(renderPoem(p))
	}
	return nil
}
