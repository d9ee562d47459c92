// Package playlist renders channel links as XSPF or M3U documents and
// reads XSPF documents back.
package playlist

import (
	"strconv"
	"strings"

	"acexspf/internal/acestream"
	"acexspf/internal/category"
)

const (
	// Filename is the suggested name for a downloaded playlist.
	Filename = "acestream_channels.xspf"
	// ContentType is the MIME type playlists are served with.
	ContentType = "application/xml"
	// DefaultTitle is the playlist title used when none is configured.
	DefaultTitle = "AceStream Channels"
	// DefaultNetworkCaching is the VLC network-caching option in milliseconds.
	DefaultNetworkCaching = 1000

	xspfNamespace = "http://xspf.org/ns/0/"
	vlcNamespace  = "http://www.videolan.org/vlc/playlist/ns/0/"
	vlcApp        = "http://www.videolan.org/vlc/playlist/0"
)

// Options controls document rendering.
type Options struct {
	Title string
	// VLCExtension adds VLC track ids and per-track network caching.
	VLCExtension   bool
	NetworkCaching int
	// Classifier supplies M3U group titles. XSPF ignores it.
	Classifier category.Classifier
}

func (o Options) title() string {
	if o.Title == "" {
		return DefaultTitle
	}
	return o.Title
}

func (o Options) networkCaching() int {
	if o.NetworkCaching <= 0 {
		return DefaultNetworkCaching
	}
	return o.NetworkCaching
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// Escape replaces the five XML special characters with entity references.
func Escape(s string) string {
	return xmlEscaper.Replace(s)
}

// Generate renders links as an XSPF document, one track per link in order.
func Generate(links []acestream.Link, opts Options) string {
	var b strings.Builder

	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	b.WriteString(`<playlist xmlns="` + xspfNamespace + `"`)
	if opts.VLCExtension {
		b.WriteString(` xmlns:vlc="` + vlcNamespace + `"`)
	}
	b.WriteString(` version="1">` + "\n")
	b.WriteString("  <title>" + Escape(opts.title()) + "</title>\n")
	b.WriteString("  <trackList>\n")

	caching := strconv.Itoa(opts.networkCaching())
	for i, l := range links {
		b.WriteString("    <track>\n")
		b.WriteString("      <title>" + Escape(l.Name) + "</title>\n")
		b.WriteString("      <location>" + Escape(acestream.URI(l.ID)) + "</location>\n")
		if opts.VLCExtension {
			b.WriteString(`      <extension application="` + vlcApp + `">` + "\n")
			b.WriteString("        <vlc:id>" + strconv.Itoa(i) + "</vlc:id>\n")
			b.WriteString("        <vlc:option>network-caching=" + caching + "</vlc:option>\n")
			b.WriteString("      </extension>\n")
		}
		b.WriteString("    </track>\n")
	}

	b.WriteString("  </trackList>\n")
	if opts.VLCExtension {
		b.WriteString(`  <extension application="` + vlcApp + `">` + "\n")
		for i := range links {
			b.WriteString(`    <vlc:item tid="` + strconv.Itoa(i) + `"/>` + "\n")
		}
		b.WriteString("  </extension>\n")
	}
	b.WriteString("</playlist>\n")

	return b.String()
}
