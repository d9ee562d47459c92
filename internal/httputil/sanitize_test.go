package httputil

import (
	"testing"
)

func TestValidateURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{"valid HTTPS", "https://example.com/path", false},
		{"valid HTTP", "http://example.com/path", false},
		{"IPNS gateway", "https://ipfs.io/ipns/k51qzi5uqu5di/", false},
		{"javascript scheme rejected", "javascript:alert(1)", true},
		{"data scheme rejected", "data:text/html,<h1>Hi</h1>", true},
		{"FTP rejected", "ftp://example.com/file", true},
		{"acestream rejected", "acestream://abcdef", true},
		{"empty string", "", true},
		{"no host", "https://", true},
		{"relative", "/links.html", true},
		{"valid with port", "https://example.com:8080/path", false},
		{"valid with query", "https://example.com/path?q=test&a=b", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateURL(tt.url)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateURL(%q) error = %v, wantErr %v", tt.url, err, tt.wantErr)
			}
		})
	}
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"normal filename", "acestream_channels.xspf", "acestream_channels.xspf"},
		{"path traversal", "../../etc/passwd", "passwd"},
		{"directory components", "/home/user/list.xspf", "list.xspf"},
		{"null bytes", "list\x00.xspf", "list.xspf"},
		{"header injection", "list.xspf\r\nX-Evil: 1", "list.xspfX-Evil_ 1"},
		{"Windows special chars", "list<>:\"|?*.xspf", "list_______.xspf"},
		{"double dots", "list..xspf", "list_xspf"},
		{"empty string", "", "untitled"},
		{"just dots", "..", "_"},
		{"just dot", ".", "untitled"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SanitizeFilename(tt.input)
			if got != tt.expected {
				t.Errorf("SanitizeFilename(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
