package extract

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"acexspf/internal/acestream"
	"acexspf/internal/httputil"
	"acexspf/internal/logging"
	"acexspf/internal/metrics"
)

// LinksData extracts channels from pages that assign an object literal of
// the form {links: [{name, url}, ...]} to a script variable.
type LinksData struct {
	client   *http.Client
	referer  string
	variable string
	locator  *locator
}

// NewLinksData creates a LinksData extractor.
func NewLinksData(client *http.Client, opts Options) *LinksData {
	if client == nil {
		client = httputil.NewClient(httputil.DefaultTimeout)
	}
	if opts.Variable == "" {
		opts.Variable = DefaultVariable
	}
	if opts.Referer == "" {
		opts.Referer = httputil.DefaultReferer
	}
	return &LinksData{
		client:   client,
		referer:  opts.Referer,
		variable: opts.Variable,
		locator:  newLocator(opts.Variable),
	}
}

// rawEntry is one element of the links array as found in the page.
type rawEntry struct {
	Name string
	URL  string
}

// Extract fetches sourceURL and returns its channel links in page order.
func (l *LinksData) Extract(ctx context.Context, sourceURL string) ([]acestream.Link, error) {
	start := time.Now()

	links, err := l.extract(ctx, sourceURL)

	metrics.ScrapeDuration.Observe(time.Since(start).Seconds())
	metrics.ScrapesTotal.WithLabelValues(Outcome(err)).Inc()
	if err != nil {
		logging.Debug("extract %s failed after %s: %v", sourceURL, time.Since(start).Round(time.Millisecond), err)
		return nil, err
	}

	logging.Debug("extract %s: %d links in %s", sourceURL, len(links), time.Since(start).Round(time.Millisecond))
	return links, nil
}

func (l *LinksData) extract(ctx context.Context, sourceURL string) ([]acestream.Link, error) {
	body, err := l.fetch(ctx, sourceURL)
	if err != nil {
		return nil, err
	}
	return l.ExtractHTML(body)
}

// ExtractHTML runs the parsing half of Extract over page content that was
// already retrieved, such as a page saved to disk.
func (l *LinksData) ExtractHTML(body []byte) ([]acestream.Link, error) {
	literal, err := l.locator.find(body)
	if err != nil {
		return nil, err
	}
	if literal == "" {
		return nil, &NotFoundError{Variable: l.variable}
	}

	value, err := decodeLiteral(literal)
	if err != nil {
		return nil, &ParseError{Reason: fmt.Sprintf("failed to parse %s from the page source", l.variable), Err: err}
	}

	entries, err := rawEntries(value)
	if err != nil {
		return nil, err
	}

	links := make([]acestream.Link, 0, len(entries))
	for _, e := range entries {
		id, ok := acestream.ParseID(e.URL)
		if !ok {
			metrics.EntriesSkipped.Inc()
			logging.Debug("skipping %q: no acestream ID in %q", e.Name, e.URL)
			continue
		}
		links = append(links, acestream.Link{Name: e.Name, ID: id})
	}

	metrics.LinksExtracted.Add(float64(len(links)))
	return links, nil
}

// fetch retrieves the page body. Any failure becomes a FetchError.
func (l *LinksData) fetch(ctx context.Context, sourceURL string) ([]byte, error) {
	resp, err := httputil.Get(ctx, l.client, sourceURL, l.referer)
	if err != nil {
		return nil, &FetchError{URL: sourceURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FetchError{
			URL:        sourceURL,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("unexpected status %d", resp.StatusCode),
		}
	}

	body, err := httputil.ReadBody(resp)
	if err != nil {
		return nil, &FetchError{URL: sourceURL, Err: err}
	}

	return body, nil
}

// decodeLiteral tries strict JSON first, after swapping single quotes for
// double quotes, and falls back to the relaxed literal parser on the
// untouched text. The fallback keeps apostrophes inside names intact.
func decodeLiteral(literal string) (any, error) {
	var value any
	strictErr := json.Unmarshal([]byte(strings.ReplaceAll(literal, "'", `"`)), &value)
	if strictErr == nil {
		return value, nil
	}
	logging.Debug("strict parse failed (%v), trying relaxed literal parser", strictErr)

	value, err := parseRelaxed(literal)
	if err != nil {
		return nil, err
	}
	return value, nil
}

// rawEntries validates the parsed value's shape and collects its entries.
// Elements that are not objects or lack a string url are kept with an empty
// URL so they are dropped by the ID match like any other unusable entry.
func rawEntries(value any) ([]rawEntry, error) {
	obj, ok := value.(map[string]any)
	if !ok {
		return nil, &ParseError{Reason: "invalid linksData format, expected an object with a links array"}
	}
	items, ok := obj["links"].([]any)
	if !ok {
		return nil, &ParseError{Reason: "invalid linksData format, expected an object with a links array"}
	}

	entries := make([]rawEntry, 0, len(items))
	for _, item := range items {
		fields, ok := item.(map[string]any)
		if !ok {
			entries = append(entries, rawEntry{})
			continue
		}
		u, _ := fields["url"].(string)
		entries = append(entries, rawEntry{Name: displayName(fields["name"]), URL: u})
	}
	return entries, nil
}

// displayName renders a name field. Numbers and booleans are formatted,
// missing names are empty.
func displayName(v any) string {
	switch n := v.(type) {
	case nil:
		return ""
	case string:
		return n
	case float64:
		return strconv.FormatFloat(n, 'f', -1, 64)
	default:
		return fmt.Sprint(n)
	}
}
