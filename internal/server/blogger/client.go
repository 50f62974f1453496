// Package blogger implements the blog-publishing endpoint client.
package blogger

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/autoblog/internal/common"
	"github.com/dmitrijs2005/autoblog/internal/logging"
)

// Client calls the publishing endpoint. Credentials are supplied per call;
// the client never caches them.
//
// The endpoint authenticates with both a query-string key and a bearer token.
// The upstream API keeps these as the same credential value; whether they
// should ever differ is an open product question, so the single-value shape
// is kept here.
type Client struct {
	baseURL string
	http    *http.Client
	logger  logging.Logger
}

// NewClient constructs a Client for the given endpoint base URL.
func NewClient(baseURL string, timeout time.Duration, logger logging.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		logger:  logger.With("module", "blogger_client"),
	}
}

type publishRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// PublishResponse is the endpoint's view of the created post.
type PublishResponse struct {
	ID        string `json:"id"`
	URL       string `json:"url"`
	Published string `json:"published"`
}

// Publish creates one post on the target blog. Any endpoint or transport
// failure is reported as common.ErrPublishFailed. There is no retry and no
// idempotency key: repeated calls create duplicate remote posts.
func (c *Client) Publish(ctx context.Context, apiKey, blogID, title, content string) (*PublishResponse, error) {
	body, err := json.Marshal(publishRequest{Title: title, Content: content})
	if err != nil {
		return nil, fmt.Errorf("%w: marshaling request: %s", common.ErrPublishFailed, err)
	}

	endpoint := fmt.Sprintf("%s/blogger/v3/blogs/%s/posts?key=%s",
		c.baseURL, url.PathEscape(blogID), url.QueryEscape(apiKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: building request: %s", common.ErrPublishFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", common.ErrPublishFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: unexpected status %d", common.ErrPublishFailed, resp.StatusCode)
	}

	var parsed PublishResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("%w: decoding response: %s", common.ErrPublishFailed, err)
	}
	return &parsed, nil
}
