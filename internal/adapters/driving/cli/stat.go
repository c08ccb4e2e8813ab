package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var statSortFlag bool

var statCmd = &cobra.Command{
	Use:   "stat",
	Short: "Show corpus statistics",
	Long:  `Prints the corpus total and how many poems each dynasty and author has.`,
	Args:  cobra.NoArgs,
	RunE:  runStat,
}

func init() {
	statCmd.Flags().BoolVar(&statSortFlag, "sort", false, "sort by count descending")
	rootCmd.AddCommand(statCmd)
}

func runStat(cmd *cobra.Command, _ []string) error {
	stat, err := corpusService.Stat(context.Background(), statSortFlag)
	if err != nil {
		return fmt.Errorf("stat failed: %w", err)
	}

	cmd.Print(renderStat(stat))
	return nil
}
