// sheets/client.go
package sheets

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/fadhlanhapp/tripdash-backend/config"
	"github.com/fadhlanhapp/tripdash-backend/models"
	"github.com/fadhlanhapp/tripdash-backend/utils"
)

// ErrTableUnavailable is returned when a sheet could not be fetched
// within the retry budget. The caller must treat the whole table as
// missing rather than proceeding with partial data.
var ErrTableUnavailable = errors.New("sheet unavailable")

// Client fetches logical tables from the Google Sheets gviz endpoint.
// Each FetchTable call has an independent retry budget; there is no
// circuit breaking across tables.
type Client struct {
	httpClient *http.Client
	baseURL    string
	sheetID    string
	backoff    time.Duration
}

// NewClient creates a sheets client from explicit configuration
func NewClient(cfg *config.Config) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		baseURL:    cfg.GvizBaseURL,
		sheetID:    cfg.SheetID,
		backoff:    time.Second,
	}
}

// FetchTable retrieves one named sheet and decodes it into a table.
// Network errors and non-200 statuses are retried up to 3 attempts with
// exponential backoff (1s, 2s). A malformed response body is not
// retried; it fails immediately.
func (c *Client) FetchTable(ctx context.Context, sheet string) (*models.SheetTable, error) {
	endpoint := fmt.Sprintf("%s/spreadsheets/d/%s/gviz/tq?tqx=out:json&sheet=%s",
		c.baseURL, c.sheetID, url.QueryEscape(sheet))

	var body []byte
	var lastErr error
	delay := c.backoff

	for attempt := 1; attempt <= utils.FetchMaxAttempts; attempt++ {
		body, lastErr = c.fetchOnce(ctx, endpoint)
		if lastErr == nil {
			break
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		log.Printf("Fetch attempt %d/%d for sheet %q failed: %v", attempt, utils.FetchMaxAttempts, sheet, lastErr)

		if attempt == utils.FetchMaxAttempts {
			return nil, fmt.Errorf("fetch sheet %q: %w", sheet, ErrTableUnavailable)
		}

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
		delay *= 2
	}

	table, err := DecodeResponse(body)
	if err != nil {
		return nil, fmt.Errorf("decode sheet %q: %w", sheet, err)
	}

	return table, nil
}

func (c *Client) fetchOnce(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}
