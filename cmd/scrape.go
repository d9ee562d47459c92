package cmd

import (
	"github.com/spf13/cobra"

	"acexspf/internal/acestream"
	"acexspf/internal/category"
)

var flagJSON bool

var scrapeCmd = &cobra.Command{
	Use:   "scrape [url]",
	Short: "Extract and print the channels published at a page",
	Args:  cobra.MaximumNArgs(1),
	RunE:  scrapeRun,
}

func init() {
	scrapeCmd.Flags().StringVarP(&flagFile, "file", "f", "", "Read a saved page or .xspf playlist instead of fetching")
	scrapeCmd.Flags().BoolVarP(&flagJSON, "json", "j", false, "Output links and categories as JSON")
}

func scrapeRun(cmd *cobra.Command, args []string) error {
	links, err := loadLinks(cmd.Context(), args)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if flagJSON {
		cls, err := newClassifier()
		if err != nil {
			return err
		}
		categories := category.Categories(links, cls)
		if categories == nil {
			categories = []string{}
		}
		return writeJSON(out, struct {
			Links      []acestream.Link `json:"links"`
			Categories []string         `json:"categories"`
		}{links, categories})
	}

	return writeLinks(out, links, isTerminal(out))
}
