package health

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/xingou/family-health-mcp/internal/common"
)

// Client queries the health-metrics endpoint for one member's
// recent-window records. Exactly one attempt per call, no retries.
type Client struct {
	urlTemplate string
	client      *http.Client
}

// NewClient builds a metrics client. urlTemplate carries {uid} and {days}
// placeholders which are substituted per request.
func NewClient(urlTemplate string, timeout time.Duration) *Client {
	return &Client{
		urlTemplate: urlTemplate,
		client:      &http.Client{Timeout: timeout},
	}
}

// FetchRecords performs one metrics request for uid over the last days
// days. Transport failures match common.ErrNetwork and undecodable bodies
// match common.ErrMalformedResponse; a payload whose code/msg pair is not
// the success sentinel is returned as *BusinessError.
func (c *Client) FetchRecords(ctx context.Context, uid string, days int) (*Records, error) {
	endpoint := strings.NewReplacer(
		"{uid}", url.QueryEscape(uid),
		"{days}", strconv.Itoa(days),
	).Replace(c.urlTemplate)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrNetwork, err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: metrics endpoint returned %s", common.ErrNetwork, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrNetwork, err)
	}

	var rec Records
	if err := json.Unmarshal(body, &rec); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrMalformedResponse, err)
	}

	if rec.Code == nil || *rec.Code != 0 || rec.Msg != "success" {
		return nil, &BusinessError{Code: rec.Code, Msg: rec.Msg}
	}
	return &rec, nil
}
