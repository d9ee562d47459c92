package httputil

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestGetSendsBrowserHeaders(t *testing.T) {
	var got http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	resp, err := Get(context.Background(), NewClient(time.Second), srv.URL, DefaultReferer)
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	resp.Body.Close()

	if !strings.HasPrefix(got.Get("User-Agent"), "Mozilla/5.0") {
		t.Errorf("User-Agent = %q", got.Get("User-Agent"))
	}
	if !strings.Contains(got.Get("Accept"), "text/html") {
		t.Errorf("Accept = %q", got.Get("Accept"))
	}
	if got.Get("Referer") != DefaultReferer {
		t.Errorf("Referer = %q, want %q", got.Get("Referer"), DefaultReferer)
	}
	if got.Get("Accept-Language") == "" {
		t.Error("Accept-Language not set")
	}
}

func TestGetRejectsInvalidURL(t *testing.T) {
	if _, err := Get(context.Background(), NewClient(time.Second), "file:///etc/passwd", ""); err == nil {
		t.Error("Get() should reject non-HTTP URLs")
	}
}

func TestGetHonoursCancellation(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := Get(ctx, NewClient(5*time.Second), srv.URL, ""); err == nil {
		t.Error("Get() with cancelled context should fail")
	}
}

func TestReadBodyLimit(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		wantErr bool
	}{
		{"at limit", MaxBodySize, false},
		{"over limit", MaxBodySize + 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(strings.Repeat("a", tt.size)))
			}))
			defer srv.Close()

			resp, err := Get(context.Background(), NewClient(5*time.Second), srv.URL, "")
			if err != nil {
				t.Fatalf("Get() error: %v", err)
			}
			defer resp.Body.Close()

			body, err := ReadBody(resp)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ReadBody() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrBodyTooLarge) {
					t.Errorf("error = %v, want ErrBodyTooLarge", err)
				}
				return
			}
			if len(body) != tt.size {
				t.Errorf("read %d bytes, want %d", len(body), tt.size)
			}
		})
	}
}

func TestNewClientDefaultTimeout(t *testing.T) {
	if c := NewClient(0); c.Timeout != DefaultTimeout {
		t.Errorf("Timeout = %s, want %s", c.Timeout, DefaultTimeout)
	}
}
