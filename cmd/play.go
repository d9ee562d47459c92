package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"acexspf/internal/acestream"
	"acexspf/internal/category"
	"acexspf/internal/logging"
	"acexspf/internal/player"
	"acexspf/internal/playlist"
	"acexspf/internal/ui"
)

var (
	flagPlayer string
	flagOne    bool
)

var playCmd = &cobra.Command{
	Use:   "play [url]",
	Short: "Open the channels in a media player",
	Long: `Generate a playlist into a temporary file and open it with the configured
player. VLC receives XSPF and mpv receives M3U. An AceStream engine must be
installed for the player to resolve acestream:// locations.`,
	Args: cobra.MaximumNArgs(1),
	RunE: playRun,
}

func init() {
	f := playCmd.Flags()
	f.StringVarP(&flagFile, "file", "f", "", "Read a saved page or .xspf playlist instead of fetching")
	f.StringSliceVarP(&flagCategories, "category", "c", nil, "Keep channels whose name contains this label (repeatable)")
	f.BoolVarP(&flagPick, "pick", "p", false, "Choose channels interactively with fzf")
	f.BoolVarP(&flagOne, "one", "1", false, "With --pick, choose a single channel")
	f.StringVar(&flagPlayer, "player", "", "Media player: vlc | mpv")
}

func playRun(cmd *cobra.Command, args []string) error {
	name := cfg.Player
	if flagPlayer != "" {
		name = flagPlayer
	}
	p, err := player.New(name)
	if err != nil {
		return err
	}
	if !p.Available() {
		return fmt.Errorf("%s not found in PATH", p.Name())
	}

	links, err := loadLinks(cmd.Context(), args)
	if err != nil {
		return err
	}
	links = category.Filter(links, flagCategories)

	if flagPick {
		if links, err = pickChannels(links, !flagOne); err != nil {
			return err
		}
	}
	if len(links) == 0 {
		return fmt.Errorf("no channels to play")
	}

	cls, err := newClassifier()
	if err != nil {
		return err
	}
	doc, err := playlist.Render(p.Format(), links, playlistOptions(cls))
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp("", "acexspf-*."+p.Format())
	if err != nil {
		return fmt.Errorf("creating temp playlist: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(doc); err != nil {
		tmp.Close()
		return fmt.Errorf("writing temp playlist: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp playlist: %w", err)
	}

	logging.Debug("opening %d channels in %s", len(links), p.Name())
	return p.Open(tmp.Name())
}

// pickChannels lets the user choose channels with fzf, several at once
// when multi is set.
func pickChannels(links []acestream.Link, multi bool) ([]acestream.Link, error) {
	return pickWith(links, multi, ui.Select, ui.SelectMany)
}

func pickWith(links []acestream.Link, multi bool,
	one func(string, []string) (int, error),
	many func(string, []string) ([]int, error),
) ([]acestream.Link, error) {
	items := make([]string, len(links))
	for i, l := range links {
		items[i] = l.Name
		if items[i] == "" {
			items[i] = acestream.URI(l.ID)
		}
	}

	var picked []int
	if multi {
		var err error
		if picked, err = many("Channels", items); err != nil {
			return nil, err
		}
	} else {
		idx, err := one("Channel", items)
		if err != nil {
			return nil, err
		}
		picked = []int{idx}
	}

	out := make([]acestream.Link, len(picked))
	for i, idx := range picked {
		out[i] = links[idx]
	}
	return out, nil
}
