package commands

import (
	"surfmap/lib/spots"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(spotsCmd)
}

var spotsCmd = &cobra.Command{
	Use:   "spots",
	Short: "Lists the spots a run scrapes, in order.",
	Run: func(cmd *cobra.Command, args []string) {
		renderSpots(cmd.OutOrStdout(), spots.NewEngland())
	},
}
