// Package player launches a media player on a generated playlist file.
// All player invocations use exec.Command with explicit argument slices;
// nothing passes through a shell.
package player

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"acexspf/internal/playlist"
)

// Player is the interface for media player implementations.
type Player interface {
	// Open plays the playlist at path and blocks until the player exits.
	Open(path string) error

	// Format is the playlist format the player reads.
	Format() string

	// Name returns the player name.
	Name() string

	// Available checks if the player binary exists in PATH.
	Available() bool
}

// New creates a player by name.
func New(name string) (Player, error) {
	switch strings.ToLower(name) {
	case "", "vlc":
		return &VLC{bin: "vlc"}, nil
	case "mpv":
		return &MPV{bin: "mpv"}, nil
	default:
		return nil, fmt.Errorf("unsupported player %q (valid: vlc, mpv)", name)
	}
}

// VLC opens XSPF playlists natively, including the VLC extension block.
type VLC struct {
	bin string
}

func (v *VLC) Name() string   { return "vlc" }
func (v *VLC) Format() string { return playlist.FormatXSPF }

func (v *VLC) Available() bool {
	_, err := exec.LookPath(v.bin)
	return err == nil
}

func (v *VLC) Open(path string) error {
	return run(v.bin, v.args(path))
}

func (v *VLC) args(path string) []string {
	return []string{path}
}

// MPV reads the M3U export; XSPF is not an mpv playlist format.
type MPV struct {
	bin string
}

func (m *MPV) Name() string   { return "mpv" }
func (m *MPV) Format() string { return playlist.FormatM3U }

func (m *MPV) Available() bool {
	_, err := exec.LookPath(m.bin)
	return err == nil
}

func (m *MPV) Open(path string) error {
	return run(m.bin, m.args(path))
}

func (m *MPV) args(path string) []string {
	return []string{"--playlist=" + path, "--force-window=yes"}
}

func run(bin string, args []string) error {
	cmd := exec.Command(bin, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin

	if err := cmd.Run(); err != nil {
		// Players exit non-zero when the user closes them.
		if _, ok := err.(*exec.ExitError); ok {
			return nil
		}
		return fmt.Errorf("running %s: %w", bin, err)
	}
	return nil
}
