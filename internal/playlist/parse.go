package playlist

import (
	"encoding/xml"
	"fmt"
	"io"

	"acexspf/internal/acestream"
)

// XSPF is the subset of an XSPF document read back by Parse.
type XSPF struct {
	XMLName xml.Name    `xml:"playlist"`
	Title   string      `xml:"title"`
	Tracks  []XSPFTrack `xml:"trackList>track"`
}

type XSPFTrack struct {
	Title    string `xml:"title"`
	Location string `xml:"location"`
}

// Parse reads an XSPF document and returns the AceStream tracks it lists.
// Tracks whose location is not an acestream:// URI are skipped.
func Parse(r io.Reader) ([]acestream.Link, error) {
	var doc XSPF
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("parsing playlist: %w", err)
	}

	links := make([]acestream.Link, 0, len(doc.Tracks))
	for _, t := range doc.Tracks {
		id, ok := acestream.ParseID(t.Location)
		if !ok {
			continue
		}
		links = append(links, acestream.Link{Name: t.Title, ID: id})
	}
	return links, nil
}
