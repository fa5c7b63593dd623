package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/glabrego/lokalavd/internal/chapter"
)

// ErrFetchFailure marks a source that could not be retrieved.
var ErrFetchFailure = fmt.Errorf("%w: fetch failed", chapter.ErrDataUnavailable)

// ErrMalformed marks a source that was retrieved but could not be read as a grid.
var ErrMalformed = fmt.Errorf("%w: malformed source", chapter.ErrDataUnavailable)

// maxSourceBytes caps a remote body. Larger bodies are rejected as malformed.
var maxSourceBytes int64 = 32 << 20

// Fetcher retrieves the raw bytes of a source from a local path or an
// http(s) URL.
type Fetcher struct {
	http *http.Client
}

func NewFetcher(httpClient *http.Client) *Fetcher {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Fetcher{http: httpClient}
}

func (f *Fetcher) Fetch(ctx context.Context, location string) ([]byte, error) {
	if IsRemote(location) {
		return f.fetchRemote(ctx, location)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailure, err)
	}
	data, err := os.ReadFile(location)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrFetchFailure, location, err)
	}
	return data, nil
}

func (f *Fetcher) fetchRemote(ctx context.Context, location string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", ErrFetchFailure, err)
	}

	resp, err := f.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: request %s: %v", ErrFetchFailure, location, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("%w: status %d: %s", ErrFetchFailure, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxSourceBytes+1))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", ErrFetchFailure, err)
	}
	if int64(len(data)) > maxSourceBytes {
		return nil, fmt.Errorf("%w: body exceeds %d bytes", ErrMalformed, maxSourceBytes)
	}
	return data, nil
}

// IsRemote reports whether location is an http(s) URL.
func IsRemote(location string) bool {
	u, err := url.Parse(strings.TrimSpace(location))
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
