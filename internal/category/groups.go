package category

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"acexspf/internal/acestream"
)

// Group is one entry of a categories file:
//
//	- group: Football
//	  keywords: laliga,premier,bundesliga
type Group struct {
	Group    string `yaml:"group"`
	Keywords string `yaml:"keywords"`
}

// GroupClassifier labels a name with the first group that has a keyword
// contained in it.
type GroupClassifier struct {
	groups []Group
}

// NewGroupClassifier returns a classifier over groups.
func NewGroupClassifier(groups []Group) *GroupClassifier {
	return &GroupClassifier{groups: groups}
}

// LoadGroups reads a YAML categories file.
func LoadGroups(path string) (*GroupClassifier, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading categories file: %w", err)
	}
	return ParseGroups(data)
}

// ParseGroups decodes YAML category groups.
func ParseGroups(data []byte) (*GroupClassifier, error) {
	var groups []Group
	if err := yaml.Unmarshal(data, &groups); err != nil {
		return nil, fmt.Errorf("parsing categories file: %w", err)
	}
	for i, g := range groups {
		if strings.TrimSpace(g.Group) == "" {
			return nil, fmt.Errorf("categories entry %d has no group name", i+1)
		}
		if len(keywords(g)) == 0 {
			return nil, fmt.Errorf("category %q has no keywords", g.Group)
		}
	}
	return NewGroupClassifier(groups), nil
}

// Classify returns the name of the first group matching name.
func (c *GroupClassifier) Classify(name string) (string, bool) {
	for _, g := range c.groups {
		for _, kw := range keywords(g) {
			if acestream.Contains(name, kw) {
				return g.Group, true
			}
		}
	}
	return "", false
}

func keywords(g Group) []string {
	var out []string
	for _, kw := range strings.Split(g.Keywords, ",") {
		if kw = strings.TrimSpace(kw); kw != "" {
			out = append(out, kw)
		}
	}
	return out
}
