package playlist

import (
	"strings"
	"testing"

	"acexspf/internal/acestream"
	"acexspf/internal/category"
)

func TestGenerateM3U(t *testing.T) {
	links := []acestream.Link{
		{Name: "DAZN 1", ID: "01"},
		{Name: "Local News", ID: "02"},
	}

	got, err := GenerateM3U(links, Options{Classifier: category.NewTokenClassifier(nil)})
	if err != nil {
		t.Fatalf("GenerateM3U() error: %v", err)
	}

	if !strings.HasPrefix(got, "#EXTM3U") {
		t.Errorf("missing #EXTM3U header:\n%s", got)
	}
	for _, want := range []string{
		`group-title="DAZN"`,
		`tvg-name="DAZN 1"`,
		"acestream://01",
		"acestream://02",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
	if n := strings.Count(got, "group-title"); n != 1 {
		t.Errorf("got %d group-title tags, want 1", n)
	}
	if strings.Index(got, "acestream://01") > strings.Index(got, "acestream://02") {
		t.Error("tracks out of order")
	}
}

func TestGenerateM3UWithoutClassifier(t *testing.T) {
	got, err := GenerateM3U([]acestream.Link{{Name: "DAZN 1", ID: "01"}}, Options{})
	if err != nil {
		t.Fatalf("GenerateM3U() error: %v", err)
	}
	if strings.Contains(got, "group-title") {
		t.Errorf("no classifier should mean no groups:\n%s", got)
	}
}
