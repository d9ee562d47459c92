package playlist

import (
	"fmt"
	"strings"

	"acexspf/internal/acestream"
	"acexspf/internal/metrics"
)

// Supported output formats.
const (
	FormatXSPF = "xspf"
	FormatM3U  = "m3u"
)

// Render produces a document in the named format and records it in the
// playlist metrics.
func Render(format string, links []acestream.Link, opts Options) (string, error) {
	var (
		doc string
		err error
	)

	switch strings.ToLower(format) {
	case "", FormatXSPF:
		format = FormatXSPF
		doc = Generate(links, opts)
	case FormatM3U, "m3u8":
		format = FormatM3U
		doc, err = GenerateM3U(links, opts)
	default:
		return "", fmt.Errorf("unsupported playlist format %q (valid: xspf, m3u)", format)
	}
	if err != nil {
		return "", err
	}

	metrics.PlaylistsGenerated.WithLabelValues(format).Inc()
	metrics.PlaylistTracks.Observe(float64(len(links)))
	return doc, nil
}

// ContentTypeFor returns the MIME type for a format.
func ContentTypeFor(format string) string {
	if strings.EqualFold(format, FormatM3U) || strings.EqualFold(format, "m3u8") {
		return "audio/x-mpegurl"
	}
	return ContentType
}
