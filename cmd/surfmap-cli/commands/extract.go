package commands

import (
	"fmt"
	"os"
	"surfmap/lib/scrapers/msw"

	"github.com/PuerkitoBio/goquery"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(extractCmd)
}

var extractCmd = &cobra.Command{
	Use:   "extract <page.html>",
	Short: "Runs the rating extractor on a saved report page.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		doc, err := goquery.NewDocumentFromReader(f)
		if err != nil {
			return err
		}

		rating, err := msw.WidgetExtractor{}.Extract(cmd.Context(), msw.Page{
			URL:      args[0],
			Document: doc,
		})
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if !rating.Found {
			fmt.Fprintln(out, "no rating widget found")
			return nil
		}
		fmt.Fprintf(
			out, "height: %s\ndark: %d\nlight: %d\nempty: %d\n",
			rating.HeightLabel,
			rating.Stars.Dark,
			rating.Stars.Light,
			rating.Stars.Empty,
		)
		return nil
	},
}
