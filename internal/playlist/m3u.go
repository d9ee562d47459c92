package playlist

import (
	"fmt"
	"io"

	"github.com/jamesnetherton/m3u"

	"acexspf/internal/acestream"
)

// GenerateM3U renders links as an extended M3U playlist. When opts has a
// Classifier, each recognised channel gets a group-title tag.
func GenerateM3U(links []acestream.Link, opts Options) (string, error) {
	pl := m3u.Playlist{Tracks: make([]m3u.Track, 0, len(links))}

	for _, l := range links {
		track := m3u.Track{Name: l.Name, Length: -1, URI: acestream.URI(l.ID)}
		if l.Name != "" {
			track.Tags = append(track.Tags, m3u.Tag{Name: "tvg-name", Value: l.Name})
		}
		if opts.Classifier != nil {
			if group, ok := opts.Classifier.Classify(l.Name); ok {
				track.Tags = append(track.Tags, m3u.Tag{Name: "group-title", Value: group})
			}
		}
		pl.Tracks = append(pl.Tracks, track)
	}

	r, err := m3u.Marshall(pl)
	if err != nil {
		return "", fmt.Errorf("encoding m3u: %w", err)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("encoding m3u: %w", err)
	}
	return string(data), nil
}
