package roster

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/xingou/family-health-mcp/internal/common"
	"github.com/xingou/family-health-mcp/internal/logging"
)

// DirectoryClient fetches the family roster from the directory service.
// It performs exactly one request per call and never caches the result;
// the roster is rebuilt for every resolution attempt.
type DirectoryClient struct {
	url    string
	client *http.Client
	logger logging.Logger
}

// NewDirectoryClient builds a client for the directory endpoint. The
// URL-escaped family name is appended to baseURL, matching the directory's
// group-scoped listing route.
func NewDirectoryClient(baseURL, familyName string, timeout time.Duration, logger logging.Logger) *DirectoryClient {
	return &DirectoryClient{
		url:    baseURL + url.QueryEscape(familyName),
		client: &http.Client{Timeout: timeout},
		logger: logger,
	}
}

// FetchRoster performs one directory request and returns the raw roster
// rows in discovery order. Connection failures, timeouts, and non-2xx
// statuses match common.ErrNetwork; an undecodable body matches
// common.ErrMalformedResponse. A body whose top level is neither an object
// nor an array yields an empty roster, not an error.
func (c *DirectoryClient) FetchRoster(ctx context.Context) ([]Entry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrNetwork, err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: directory returned %s", common.ErrNetwork, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrNetwork, err)
	}

	return c.decodeEntries(ctx, body)
}

// decodeEntries accepts the two roster payload shapes: a JSON object whose
// values are rows (keys ignored, order preserved) and a bare array of rows.
// Rows that fail validation are skipped with a warning.
func (c *DirectoryClient) decodeEntries(ctx context.Context, body []byte) ([]Entry, error) {
	dec := json.NewDecoder(bytes.NewReader(body))

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrMalformedResponse, err)
	}

	delim, ok := tok.(json.Delim)
	if !ok || (delim != '{' && delim != '[') {
		c.logger.Error(ctx, "directory response top level is neither object nor array")
		return nil, nil
	}

	var entries []Entry
	for dec.More() {
		if delim == '{' {
			if _, err := dec.Token(); err != nil {
				return nil, fmt.Errorf("%w: %v", common.ErrMalformedResponse, err)
			}
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("%w: %v", common.ErrMalformedResponse, err)
		}

		entry, err := parseRow(raw)
		if err != nil {
			c.logger.Warn(ctx, "skipping roster row", "reason", err)
			continue
		}
		entries = append(entries, entry)
	}

	return entries, nil
}
