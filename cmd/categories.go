package cmd

import (
	"github.com/spf13/cobra"

	"acexspf/internal/category"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories [url]",
	Short: "List the categories found among the channels",
	Args:  cobra.MaximumNArgs(1),
	RunE:  categoriesRun,
}

func init() {
	categoriesCmd.Flags().StringVarP(&flagFile, "file", "f", "", "Read a saved page or .xspf playlist instead of fetching")
	categoriesCmd.Flags().BoolVarP(&flagJSON, "json", "j", false, "Output as JSON")
}

func categoriesRun(cmd *cobra.Command, args []string) error {
	links, err := loadLinks(cmd.Context(), args)
	if err != nil {
		return err
	}

	cls, err := newClassifier()
	if err != nil {
		return err
	}
	counts := category.Counts(links, cls)

	out := cmd.OutOrStdout()
	if flagJSON {
		if counts == nil {
			counts = []category.Count{}
		}
		return writeJSON(out, counts)
	}
	return writeCounts(out, counts, isTerminal(out))
}
