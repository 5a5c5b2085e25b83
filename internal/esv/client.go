package esv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jorge-barreto/plancal/internal/plan"
)

// ErrNoPassage is returned when the API answers without any passage text.
var ErrNoPassage = errors.New("esv: response contained no passage")

// Fetcher retrieves the text for a memory-verse request. Tests can substitute a mock.
type Fetcher interface {
	Fetch(ctx context.Context, req *plan.ESVRequest) (string, error)
}

// Client fetches passage text from the ESV API.
type Client struct {
	HTTP    *http.Client
	Timeout time.Duration // per request; zero means no extra timeout
}

type passageResponse struct {
	Canonical string   `json:"canonical"`
	Passages  []string `json:"passages"`
	Detail    string   `json:"detail"`
}

// Fetch performs the request and returns the trimmed passage text.
func (c *Client) Fetch(ctx context.Context, req *plan.ESVRequest) (string, error) {
	if req == nil {
		return "", fmt.Errorf("esv: nil request")
	}
	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, req.URL, nil)
	if err != nil {
		return "", fmt.Errorf("esv: building request: %w", err)
	}
	name, value := req.HeaderKV()
	httpReq.Header.Set(name, value)
	httpReq.Header.Set("Accept", "application/json")

	hc := c.HTTP
	if hc == nil {
		hc = http.DefaultClient
	}
	resp, err := hc.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("esv: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("esv: reading response: %w", err)
	}

	var pr passageResponse
	jsonErr := json.Unmarshal(body, &pr)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if jsonErr == nil && pr.Detail != "" {
			return "", fmt.Errorf("esv: %s: %s", resp.Status, pr.Detail)
		}
		return "", fmt.Errorf("esv: %s", resp.Status)
	}
	if jsonErr != nil {
		return "", fmt.Errorf("esv: decoding response: %w", jsonErr)
	}

	var parts []string
	for _, p := range pr.Passages {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		return "", ErrNoPassage
	}
	return strings.Join(parts, "\n\n"), nil
}
