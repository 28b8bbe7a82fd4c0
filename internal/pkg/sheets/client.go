// Package sheets fetches published spreadsheet CSV exports. The backing
// sheets mutate frequently, so every fetch defeats intermediate caches.
package sheets

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/tagana-serang/fieldops-backend-go/internal/pkg/csvutil"
)

// ErrUnavailable marks a source that could not be reached or answered with
// a non-success status. Callers must keep it distinct from an empty sheet.
var ErrUnavailable = errors.New("sheet source unavailable")

type Client struct {
	httpClient *http.Client
	now        func() time.Time
}

func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		now:        time.Now,
	}
}

// Fetch downloads the CSV at rawURL and returns its parsed data rows. The
// header line is discarded; blank lines are skipped. Column meaning is the
// caller's contract.
func (c *Client) Fetch(ctx context.Context, rawURL string) ([][]string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid sheet URL: %w", err)
	}

	// Cache-defeating parameter, the sheet content changes under the same URL.
	q := u.Query()
	q.Set("t", strconv.FormatInt(c.now().UnixMilli(), 10))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build sheet request: %w", err)
	}
	req.Header.Set("Cache-Control", "no-cache")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	lines := csvutil.Rows(string(body))
	rows := make([][]string, 0, len(lines))
	for _, line := range lines {
		rows = append(rows, csvutil.ParseRow(line))
	}
	return rows, nil
}
