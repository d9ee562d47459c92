package cmd

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"acexspf/internal/category"
	"acexspf/internal/config"
	"acexspf/internal/logging"
	"acexspf/internal/playlist"
)

var (
	flagOutput string
	flagFormat string
	flagVLC    bool
)

var generateCmd = &cobra.Command{
	Use:   "generate [url]",
	Short: "Write the channels as a playlist file",
	Long: `Fetch the source page, optionally keep only some categories, and write
the result as an XSPF playlist. Use --output - to print to stdout.`,
	Args: cobra.MaximumNArgs(1),
	RunE: generateRun,
}

func init() {
	f := generateCmd.Flags()
	f.StringVarP(&flagFile, "file", "f", "", "Read a saved page or .xspf playlist instead of fetching")
	f.StringSliceVarP(&flagCategories, "category", "c", nil, "Keep channels whose name contains this label (repeatable)")
	f.BoolVarP(&flagPick, "pick", "p", false, "Choose categories interactively with fzf")
	f.StringVarP(&flagOutput, "output", "o", "", "Output path, - for stdout (default: acestream_channels.xspf)")
	f.StringVar(&flagFormat, "format", playlist.FormatXSPF, "Playlist format: xspf | m3u")
	f.BoolVar(&flagVLC, "vlc", false, "Add VLC extension elements to XSPF output")
}

func generateRun(cmd *cobra.Command, args []string) error {
	links, err := loadLinks(cmd.Context(), args)
	if err != nil {
		return err
	}

	cls, err := newClassifier()
	if err != nil {
		return err
	}

	selected, err := selectCategories(links, cls)
	if err != nil {
		return err
	}
	filtered := category.Filter(links, selected)
	if len(selected) > 0 {
		logging.Info("%d of %d channels match %s", len(filtered), len(links), strings.Join(selected, ", "))
	}

	opts := playlistOptions(cls)
	if flagVLC {
		opts.VLCExtension = true
	}

	doc, err := playlist.Render(flagFormat, filtered, opts)
	if err != nil {
		return err
	}

	output := outputPath(flagOutput, cfg.Output, flagFormat)
	if output == "-" {
		_, err := io.WriteString(cmd.OutOrStdout(), doc)
		return err
	}

	path, err := config.ExpandPath(output)
	if err != nil {
		return err
	}
	if err := playlist.WriteFile(path, doc); err != nil {
		return err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %d channels to %s\n", len(filtered), path)
	return nil
}

// outputPath picks the destination: the flag, then the configured path.
// A configured .xspf name is given the right extension for other formats.
func outputPath(flag, configured, format string) string {
	if flag != "" {
		return flag
	}
	if strings.EqualFold(format, playlist.FormatXSPF) || format == "" {
		return configured
	}
	if strings.EqualFold(filepath.Ext(configured), ".xspf") {
		return strings.TrimSuffix(configured, filepath.Ext(configured)) + ".m3u"
	}
	return configured
}
