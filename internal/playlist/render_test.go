package playlist

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"acexspf/internal/acestream"
	"acexspf/internal/metrics"
)

func TestRender(t *testing.T) {
	links := []acestream.Link{{Name: "A", ID: "01"}}

	tests := []struct {
		format     string
		wantPrefix string
		wantErr    bool
	}{
		{"", "<?xml", false},
		{"xspf", "<?xml", false},
		{"XSPF", "<?xml", false},
		{"m3u", "#EXTM3U", false},
		{"m3u8", "#EXTM3U", false},
		{"pls", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			doc, err := Render(tt.format, links, Options{})
			if (err != nil) != tt.wantErr {
				t.Fatalf("Render() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !strings.HasPrefix(doc, tt.wantPrefix) {
				t.Errorf("Render() = %q, want prefix %q", doc, tt.wantPrefix)
			}
		})
	}
}

func TestRenderRecordsMetrics(t *testing.T) {
	before := testutil.ToFloat64(metrics.PlaylistsGenerated.WithLabelValues("xspf"))
	if _, err := Render("xspf", nil, Options{}); err != nil {
		t.Fatal(err)
	}
	after := testutil.ToFloat64(metrics.PlaylistsGenerated.WithLabelValues("xspf"))
	if after != before+1 {
		t.Errorf("xspf counter = %v, want %v", after, before+1)
	}
}

func TestContentTypeFor(t *testing.T) {
	if got := ContentTypeFor("xspf"); got != "application/xml" {
		t.Errorf("ContentTypeFor(xspf) = %q", got)
	}
	if got := ContentTypeFor("m3u"); got != "audio/x-mpegurl" {
		t.Errorf("ContentTypeFor(m3u) = %q", got)
	}
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", Filename)

	if err := WriteFile(path, "first"); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}
	if err := WriteFile(path, "second"); err != nil {
		t.Fatalf("WriteFile() overwrite error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "second" {
		t.Errorf("content = %q, want second", data)
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("temp files left behind: %v", entries)
	}
}
