package server

import (
	"errors"
	"fmt"
	"net/http"
	"path"
	"strings"

	"github.com/gin-gonic/gin"

	"acexspf/internal/acestream"
	"acexspf/internal/category"
	"acexspf/internal/extract"
	"acexspf/internal/httputil"
	"acexspf/internal/logging"
	"acexspf/internal/playlist"
)

// ScrapeRequest is the body of POST /api/scrape.
type ScrapeRequest struct {
	URL string `json:"url" binding:"required,url"`
}

// ScrapeResponse lists the extracted links and their categories.
type ScrapeResponse struct {
	Links      []acestream.Link `json:"links"`
	Categories []string         `json:"categories"`
}

// GenerateRequest is the body of POST /api/generate and /api/download.
type GenerateRequest struct {
	Links      []acestream.Link `json:"links" binding:"required,dive"`
	Categories []string         `json:"categories"`
	Format     string           `json:"format" binding:"omitempty,oneof=xspf m3u"`
	// Filename overrides the attachment name on /api/download.
	Filename string `json:"filename"`
}

// Scrape extracts the links published at the requested URL.
func (s *Server) Scrape(c *gin.Context) {
	var req ScrapeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}

	links, err := s.extractor.Extract(c.Request.Context(), req.URL)
	if err != nil {
		logging.Warn("scrape %s: %v", req.URL, err)
		writeExtractError(c, err)
		return
	}

	categories := category.Categories(links, s.classifier)
	if categories == nil {
		categories = []string{}
	}
	c.JSON(http.StatusOK, ScrapeResponse{Links: links, Categories: categories})
}

// Generate renders the posted links, filtered by category, as a document
// wrapped in JSON.
func (s *Server) Generate(c *gin.Context) {
	req, doc, ok := s.render(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"document": doc, "format": formatOf(req)})
}

// Download renders the posted links as a playlist file attachment.
func (s *Server) Download(c *gin.Context) {
	req, doc, ok := s.render(c)
	if !ok {
		return
	}

	format := formatOf(req)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, downloadName(req.Filename, format)))
	c.Data(http.StatusOK, playlist.ContentTypeFor(format), []byte(doc))
}

// downloadName sanitizes a requested attachment name and gives it the
// extension of the format.
func downloadName(requested, format string) string {
	name := playlist.Filename
	if strings.TrimSpace(requested) != "" {
		name = httputil.SanitizeFilename(requested)
	}
	ext := "." + format
	if !strings.EqualFold(path.Ext(name), ext) {
		name = strings.TrimSuffix(name, path.Ext(name)) + ext
	}
	return name
}

func (s *Server) render(c *gin.Context) (GenerateRequest, string, bool) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body", err)
		return req, "", false
	}

	links := category.Filter(req.Links, req.Categories)
	doc, err := playlist.Render(formatOf(req), links, s.opts)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to generate playlist", err)
		return req, "", false
	}
	return req, doc, true
}

func formatOf(req GenerateRequest) string {
	if req.Format == "" {
		return playlist.FormatXSPF
	}
	return req.Format
}

// writeExtractError maps extractor failures to HTTP statuses.
func writeExtractError(c *gin.Context, err error) {
	var (
		fetchErr    *extract.FetchError
		notFoundErr *extract.NotFoundError
		parseErr    *extract.ParseError
	)

	switch {
	case errors.As(err, &notFoundErr):
		respondError(c, http.StatusNotFound, notFoundErr.Error(), nil)
	case errors.As(err, &fetchErr):
		respondError(c, http.StatusBadGateway, "failed to fetch source page", fetchErr)
	case errors.As(err, &parseErr):
		respondError(c, http.StatusInternalServerError, parseErr.Reason, parseErr.Err)
	default:
		respondError(c, http.StatusInternalServerError, "extraction failed", err)
	}
}

// respondError aborts the request with a uniform error body.
func respondError(c *gin.Context, status int, msg string, cause error) {
	body := gin.H{"error": msg}
	if cause != nil {
		body["cause"] = cause.Error()
	}
	c.AbortWithStatusJSON(status, body)
}
