package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"acexspf/internal/acestream"
	"acexspf/internal/category"
	"acexspf/internal/config"
	"acexspf/internal/extract"
	"acexspf/internal/httputil"
	"acexspf/internal/logging"
	"acexspf/internal/playlist"
	"acexspf/internal/ui"
)

// Flags shared by the commands that read a channel list.
var (
	flagFile       string
	flagCategories []string
	flagPick       bool
)

func newExtractor() extract.Extractor {
	return extract.New(httputil.NewClient(cfg.Timeout.Duration), extractOptions())
}

func extractOptions() extract.Options {
	return extract.Options{Variable: cfg.Variable}
}

// sourceURL is the positional URL argument, or the configured source.
func sourceURL(args []string) string {
	if len(args) > 0 && args[0] != "" {
		return args[0]
	}
	return cfg.SourceURL
}

// loadLinks reads the channel list from --file when given, otherwise
// fetches the source page.
func loadLinks(ctx context.Context, args []string) ([]acestream.Link, error) {
	if flagFile != "" {
		return loadLinksFile(flagFile)
	}

	url := sourceURL(args)
	logging.Debug("fetching %s", url)
	links, err := newExtractor().Extract(ctx, url)
	if err != nil {
		return nil, err
	}
	logging.Info("extracted %d channels from %s", len(links), url)
	return links, nil
}

// loadLinksFile reads a saved page, or an XSPF playlist written earlier.
func loadLinksFile(path string) ([]acestream.Link, error) {
	path, err := config.ExpandPath(path)
	if err != nil {
		return nil, err
	}

	if strings.EqualFold(filepath.Ext(path), ".xspf") {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening playlist: %w", err)
		}
		defer f.Close()
		return playlist.Parse(f)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading page: %w", err)
	}
	return extract.NewLinksData(nil, extractOptions()).ExtractHTML(data)
}

// newClassifier builds the classifier from categories_file or the token list.
func newClassifier() (category.Classifier, error) {
	if cfg.CategoriesFile != "" {
		path, err := config.ExpandPath(cfg.CategoriesFile)
		if err != nil {
			return nil, err
		}
		return category.LoadGroups(path)
	}
	return category.NewTokenClassifier(cfg.Categories), nil
}

func playlistOptions(cls category.Classifier) playlist.Options {
	return playlist.Options{
		Title:          cfg.PlaylistTitle,
		VLCExtension:   cfg.VLCExtension,
		NetworkCaching: cfg.NetworkCaching,
		Classifier:     cls,
	}
}

// selectCategories returns the labels to filter by: the --category flags,
// or an fzf multi-selection over the derived categories with --pick.
func selectCategories(links []acestream.Link, cls category.Classifier) ([]string, error) {
	if !flagPick {
		return flagCategories, nil
	}

	counts := category.Counts(links, cls)
	if len(counts) == 0 {
		return nil, fmt.Errorf("no categories found among %d channels", len(links))
	}

	items := make([]string, len(counts))
	for i, c := range counts {
		items[i] = fmt.Sprintf("%s (%d)", c.Label, c.Count)
	}

	picked, err := ui.SelectMany("Categories", items)
	if err != nil {
		return nil, err
	}

	labels := make([]string, len(picked))
	for i, idx := range picked {
		labels[i] = counts[idx].Label
	}
	logging.Debug("selected categories: %s", strings.Join(labels, ", "))
	return labels, nil
}
