// Package source loads plan text from local files or web pages.
package source

import (
	"context"
	"fmt"
	"html"
	"io"
	"mime"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/go-shiori/go-readability"
	"github.com/microcosm-cc/bluemonday"
)

// maxBodySize bounds how much of a remote plan is read.
const maxBodySize = 5 * 1024 * 1024

// Loader fetches plans from a path or an http(s) URL.
type Loader struct {
	UserAgent string
	Client    *http.Client
}

func NewLoader() *Loader {
	return &Loader{
		UserAgent: "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36",
		Client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Load returns the plan text found at ref. HTML pages are reduced to their
// readable text so that plan lines published on a web page can be parsed.
func (l *Loader) Load(ctx context.Context, ref string) (string, error) {
	if isURL(ref) {
		return l.fetch(ctx, ref)
	}
	data, err := os.ReadFile(ref)
	if err != nil {
		return "", fmt.Errorf("failed to read plan: %w", err)
	}
	return string(data), nil
}

func isURL(ref string) bool {
	return strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://")
}

func (l *Loader) fetch(ctx context.Context, rawURL string) (string, error) {
	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("failed to parse URL: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %v", err)
	}
	req.Header.Set("User-Agent", l.UserAgent)

	resp, err := l.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch URL: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("failed to fetch URL: status code %d", resp.StatusCode)
	}

	body := io.LimitReader(resp.Body, maxBodySize)
	if !isHTML(resp.Header.Get("Content-Type")) {
		data, err := io.ReadAll(body)
		if err != nil {
			return "", fmt.Errorf("failed to read body: %v", err)
		}
		return string(data), nil
	}

	article, err := readability.FromReader(body, parsedURL)
	if err != nil {
		return "", fmt.Errorf("failed to parse page: %v", err)
	}

	// Sanitize output (remove any remaining HTML tags or scripts), then turn
	// entities back into plain text so plan inputs keep their quotes.
	p := bluemonday.StrictPolicy()
	return html.UnescapeString(p.Sanitize(article.TextContent)), nil
}

func isHTML(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == "text/html" || mediaType == "application/xhtml+xml"
}
