// Package acestream defines the channel link type shared across acexspf
// and the helpers that move identifiers in and out of acestream:// URIs.
package acestream

import (
	"regexp"
	"strings"
)

// Scheme is the URI scheme AceStream engines register for content IDs.
const Scheme = "acestream://"

// idPattern matches a content ID behind the scheme. The scheme is matched
// case-insensitively, as source pages are not consistent about it.
var idPattern = regexp.MustCompile(`(?i)acestream://([a-f0-9]+)`)

// Link is a named AceStream channel.
type Link struct {
	Name string `json:"name"`
	ID   string `json:"id" binding:"required"`
}

// ParseID extracts the hexadecimal content ID from a URL such as
// "acestream://a1b2c3". It reports false when the URL does not carry one.
func ParseID(rawURL string) (string, bool) {
	m := idPattern.FindStringSubmatch(rawURL)
	if m == nil || m[1] == "" {
		return "", false
	}
	return m[1], true
}

// URI builds the playable acestream:// location for an ID.
func URI(id string) string {
	return Scheme + id
}

// Contains reports whether name contains label, ignoring case.
func Contains(name, label string) bool {
	return strings.Contains(strings.ToUpper(name), strings.ToUpper(label))
}
