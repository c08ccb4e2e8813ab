package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var listLimitFlag int

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List poems in corpus order",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().IntVar(&listLimitFlag, "limit", 0, "maximum number of poems to print (0 means all)")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	poems, err := corpusService.List(context.Background(), listLimitFlag)
	if err != nil {
		return fmt.Errorf("list failed: %w", err)
	}

	for _, p := range poems {
		cmd.Println(renderPoem(p))
	}
	return nil
}
