package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"acexspf/internal/acestream"
	"acexspf/internal/category"
	"acexspf/internal/config"
	"acexspf/internal/playlist"
)

const savedPage = `<html><script>
const linksData = {links: [
  {name: "DAZN 1", url: "acestream://01"},
  {name: "ESPN", url: "acestream://02"},
]};
</script></html>`

func TestWriteLinksPlain(t *testing.T) {
	var buf bytes.Buffer
	links := []acestream.Link{{Name: "DAZN 1", ID: "01"}, {Name: "ESPN", ID: "02"}}

	if err := writeLinks(&buf, links, false); err != nil {
		t.Fatal(err)
	}
	want := "DAZN 1\tacestream://01\nESPN\tacestream://02\n"
	if buf.String() != want {
		t.Errorf("writeLinks() = %q, want %q", buf.String(), want)
	}
}

func TestWriteLinksStyled(t *testing.T) {
	var buf bytes.Buffer
	if err := writeLinks(&buf, []acestream.Link{{Name: "DAZN 1", ID: "01"}}, true); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"Name", "DAZN 1", "acestream://01"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("table missing %q:\n%s", want, buf.String())
		}
	}
}

func TestWriteCountsPlain(t *testing.T) {
	var buf bytes.Buffer
	if err := writeCounts(&buf, []category.Count{{Label: "DAZN", Count: 2}}, false); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "DAZN\t2\n" {
		t.Errorf("writeCounts() = %q", buf.String())
	}
}

func TestIsTerminal(t *testing.T) {
	if isTerminal(&bytes.Buffer{}) {
		t.Error("a buffer is not a terminal")
	}
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		flag, configured, format string
		want                     string
	}{
		{"", "acestream_channels.xspf", "xspf", "acestream_channels.xspf"},
		{"", "acestream_channels.xspf", "m3u", "acestream_channels.m3u"},
		{"", "out.txt", "m3u", "out.txt"},
		{"-", "acestream_channels.xspf", "xspf", "-"},
		{"mine.m3u", "acestream_channels.xspf", "m3u", "mine.m3u"},
	}

	for _, tt := range tests {
		if got := outputPath(tt.flag, tt.configured, tt.format); got != tt.want {
			t.Errorf("outputPath(%q, %q, %q) = %q, want %q", tt.flag, tt.configured, tt.format, got, tt.want)
		}
	}
}

func TestLoadLinksFile(t *testing.T) {
	cfg = config.Default()
	dir := t.TempDir()

	page := filepath.Join(dir, "page.html")
	if err := os.WriteFile(page, []byte(savedPage), 0644); err != nil {
		t.Fatal(err)
	}

	links, err := loadLinksFile(page)
	if err != nil {
		t.Fatalf("loadLinksFile(page) error: %v", err)
	}
	want := []acestream.Link{{Name: "DAZN 1", ID: "01"}, {Name: "ESPN", ID: "02"}}
	if len(links) != 2 || links[0] != want[0] || links[1] != want[1] {
		t.Fatalf("links = %v, want %v", links, want)
	}

	list := filepath.Join(dir, "list.xspf")
	if err := playlist.WriteFile(list, playlist.Generate(links, playlist.Options{})); err != nil {
		t.Fatal(err)
	}
	back, err := loadLinksFile(list)
	if err != nil {
		t.Fatalf("loadLinksFile(xspf) error: %v", err)
	}
	if len(back) != 2 || back[1] != want[1] {
		t.Errorf("playlist links = %v, want %v", back, want)
	}

	if _, err := loadLinksFile(filepath.Join(dir, "missing.html")); err == nil {
		t.Error("missing file should fail")
	}
}

func TestNewClassifier(t *testing.T) {
	cfg = config.Default()
	cls, err := newClassifier()
	if err != nil {
		t.Fatal(err)
	}
	if got, _ := cls.Classify("dazn 1"); got != "DAZN" {
		t.Errorf("default classifier: got %q", got)
	}

	path := filepath.Join(t.TempDir(), "groups.yaml")
	if err := os.WriteFile(path, []byte("- group: Football\n  keywords: laliga\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg.CategoriesFile = path
	cls, err = newClassifier()
	if err != nil {
		t.Fatal(err)
	}
	if got, _ := cls.Classify("M+ LaLiga"); got != "Football" {
		t.Errorf("groups classifier: got %q", got)
	}
}

func TestGenerateToStdout(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	page := filepath.Join(dir, "page.html")
	if err := os.WriteFile(page, []byte(savedPage), 0644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"generate", "--file", page, "--category", "dazn", "--output", "-"})
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		flagFile, flagOutput, flagCategories = "", "", nil
	})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("generate error: %v", err)
	}
	want := playlist.Generate([]acestream.Link{{Name: "DAZN 1", ID: "01"}}, playlist.Options{})
	if out.String() != want {
		t.Errorf("output =\n%s\nwant\n%s", out.String(), want)
	}
}

func TestScrapeJSON(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	page := filepath.Join(dir, "page.html")
	if err := os.WriteFile(page, []byte(savedPage), 0644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"scrape", "--file", page, "--json"})
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		flagFile, flagJSON = "", false
	})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("scrape error: %v", err)
	}

	var got struct {
		Links      []acestream.Link `json:"links"`
		Categories []string         `json:"categories"`
	}
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("decoding output: %v\n%s", err, out.String())
	}
	if len(got.Links) != 2 || strings.Join(got.Categories, ",") != "DAZN,ESPN" {
		t.Errorf("got %+v", got)
	}
}

func TestNewExtractorUsesConfig(t *testing.T) {
	cfg = config.Default()
	cfg.Variable = "channelData"

	ext := newExtractor()
	if ext == nil {
		t.Fatal("newExtractor() returned nil")
	}
	page := []byte(`<script>const channelData = {links: [{name: "A", url: "acestream://0f"}]};</script>`)
	links, err := ext.(interface {
		ExtractHTML([]byte) ([]acestream.Link, error)
	}).ExtractHTML(page)
	if err != nil {
		t.Fatalf("ExtractHTML() error: %v", err)
	}
	if len(links) != 1 || links[0].ID != "0f" {
		t.Errorf("links = %v", links)
	}
}

func TestPickWith(t *testing.T) {
	links := []acestream.Link{{Name: "DAZN 1", ID: "01"}, {Name: "", ID: "02"}, {Name: "ESPN", ID: "03"}}

	var shown []string
	one := func(prompt string, items []string) (int, error) {
		shown = items
		return 1, nil
	}
	many := func(prompt string, items []string) ([]int, error) {
		return []int{0, 2}, nil
	}

	got, err := pickWith(links, false, one, many)
	if err != nil {
		t.Fatalf("pickWith(single) error: %v", err)
	}
	if len(got) != 1 || got[0].ID != "02" {
		t.Errorf("single pick = %v, want channel 02", got)
	}
	if shown[1] != "acestream://02" {
		t.Errorf("unnamed channel shown as %q, want its location", shown[1])
	}

	got, err = pickWith(links, true, one, many)
	if err != nil {
		t.Fatalf("pickWith(multi) error: %v", err)
	}
	if len(got) != 2 || got[0].ID != "01" || got[1].ID != "03" {
		t.Errorf("multi pick = %v", got)
	}
}
