// Package category derives filter labels from channel names and selects
// subsets of a channel list by those labels.
package category

import (
	"strings"

	"acexspf/internal/acestream"
)

// DefaultTokens are the broadcaster brands recognised out of the box.
// Order matters: the first token found in a name wins, so more specific
// tokens must come before the shorter ones they contain.
var DefaultTokens = []string{
	"DAZN",
	"ESPN",
	"MOVISTAR",
	"M+",
	"LALIGA",
	"EUROSPORT",
	"SKY",
	"BEIN",
	"TNT",
	"FOX",
	"NBA",
	"NFL",
	"F1",
	"ARENA",
	"SPORT TV",
	"ELEVEN",
	"CANAL+",
	"RMC",
	"BT SPORT",
	"PREMIER",
}

// Classifier maps a channel name to a category label.
type Classifier interface {
	Classify(name string) (string, bool)
}

// TokenClassifier labels a name with the first token it contains,
// compared case-insensitively.
type TokenClassifier struct {
	tokens []string
}

// NewTokenClassifier returns a classifier over tokens. Blank tokens are
// ignored. A nil or empty list falls back to DefaultTokens.
func NewTokenClassifier(tokens []string) *TokenClassifier {
	var cleaned []string
	for _, tok := range tokens {
		if tok = strings.TrimSpace(tok); tok != "" {
			cleaned = append(cleaned, tok)
		}
	}
	if len(cleaned) == 0 {
		cleaned = DefaultTokens
	}
	return &TokenClassifier{tokens: cleaned}
}

// Classify returns the first token contained in name.
func (c *TokenClassifier) Classify(name string) (string, bool) {
	for _, tok := range c.tokens {
		if acestream.Contains(name, tok) {
			return tok, true
		}
	}
	return "", false
}

// Categories returns the distinct labels of links in first-seen order.
// Links the classifier does not recognise contribute nothing.
func Categories(links []acestream.Link, cls Classifier) []string {
	seen := make(map[string]bool)
	var out []string
	for _, l := range links {
		label, ok := cls.Classify(l.Name)
		if !ok || seen[label] {
			continue
		}
		seen[label] = true
		out = append(out, label)
	}
	return out
}

// Count pairs a label with how many links carry it.
type Count struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// Counts is Categories with the number of links per label.
func Counts(links []acestream.Link, cls Classifier) []Count {
	index := make(map[string]int)
	var out []Count
	for _, l := range links {
		label, ok := cls.Classify(l.Name)
		if !ok {
			continue
		}
		i, seen := index[label]
		if !seen {
			i = len(out)
			index[label] = i
			out = append(out, Count{Label: label})
		}
		out[i].Count++
	}
	return out
}

// Filter keeps the links whose name contains at least one selected label,
// ignoring case. With nothing selected every link passes. Order is kept.
func Filter(links []acestream.Link, selected []string) []acestream.Link {
	var labels []string
	for _, s := range selected {
		if s = strings.TrimSpace(s); s != "" {
			labels = append(labels, s)
		}
	}
	if len(labels) == 0 {
		return links
	}

	out := make([]acestream.Link, 0, len(links))
	for _, l := range links {
		for _, label := range labels {
			if acestream.Contains(l.Name, label) {
				out = append(out, l)
				break
			}
		}
	}
	return out
}
