// Package retrieval queries the free-text health-data retrieval service
// for a resolved family member.
package retrieval

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/xingou/family-health-mcp/internal/common"
)

// Response is the retrieval service payload, passed through unmodified.
type Response struct {
	Query          string  `json:"query"`
	ProcessingTime float64 `json:"processing_time"`
	TopResults     []Hit   `json:"top_results"`
}

// Hit is one retrieved match.
type Hit struct {
	Department   string      `json:"department"`
	Score        float64     `json:"score"`
	OriginalText string      `json:"original_text"`
	Summary      SummaryList `json:"summary"`
}

// SummaryList accepts the summary field as either a single string or a
// list of strings, normalizing both to a list.
type SummaryList []string

func (s *SummaryList) UnmarshalJSON(b []byte) error {
	var one string
	if err := json.Unmarshal(b, &one); err == nil {
		*s = SummaryList{one}
		return nil
	}

	var many []string
	if err := json.Unmarshal(b, &many); err != nil {
		return err
	}
	*s = SummaryList(many)
	return nil
}

// StatusError reports a non-200 response from the retrieval service.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("健康数据检索失败，HTTP状态码：%d", e.StatusCode)
}

// Client posts queries to the retrieval endpoint. One attempt per call.
type Client struct {
	url    string
	client *http.Client
}

func NewClient(url string, timeout time.Duration) *Client {
	return &Client{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

// Query sends {id, query} and returns the decoded response. Any status
// other than 200 is returned as *StatusError; transport failures match
// common.ErrNetwork.
func (c *Client) Query(ctx context.Context, id, queryText string) (*Response, error) {
	payload, err := json.Marshal(map[string]string{"id": id, "query": queryText})
	if err != nil {
		return nil, fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrNetwork, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrNetwork, err)
	}

	var r Response
	if err := json.Unmarshal(body, &r); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrMalformedResponse, err)
	}
	return &r, nil
}
