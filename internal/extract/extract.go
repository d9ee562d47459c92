// Package extract fetches a source page and pulls the AceStream channel
// listing out of the JavaScript object literal embedded in it.
package extract

import (
	"context"
	"net/http"

	"acexspf/internal/acestream"
	"acexspf/internal/httputil"
)

// DefaultVariable is the name the source page binds its listing to.
const DefaultVariable = "linksData"

// Extractor resolves a source page into channel links.
type Extractor interface {
	Extract(ctx context.Context, sourceURL string) ([]acestream.Link, error)
}

// Options tunes how the page is fetched and scanned.
type Options struct {
	// Variable is the name bound to the literal, e.g. "linksData".
	Variable string
	// Referer is sent with the page request. Empty means httputil.DefaultReferer.
	Referer string
}

// New returns an Extractor for pages that embed a linksData-style literal.
// A nil client gets a hardened client with the default timeout.
func New(client *http.Client, opts Options) Extractor {
	if client == nil {
		client = httputil.NewClient(httputil.DefaultTimeout)
	}
	return NewLinksData(client, opts)
}
