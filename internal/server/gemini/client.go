// Package gemini implements the content-generation endpoint client. It speaks
// the generativelanguage wire format: prompts are wrapped in
// contents/parts/text, responses carry candidates/content/parts/text.
package gemini

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

const (
	// DefaultPrompt is used when no topic is supplied.
	DefaultPrompt = "Create an engaging blog post about current technology trends, including practical insights and actionable advice for readers."

	// DefaultTitle is substituted when title extraction yields nothing.
	DefaultTitle = "Generated Blog Post"

	// validationPrompt is the trivial prompt used by Validate.
	validationPrompt = "Test message"

	generatePath = "/v1beta/models/gemini-pro:generateContent"
)

// Generated is a (title, content) pair extracted from the endpoint response.
type Generated struct {
	Title   string
	Content string
}

// Client calls the generation endpoint. Authentication is a query-string key
// supplied per call; the client never stores credentials.
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
		logger:  logger.With("module", "gemini_client"),
	}
}

type generateRequest struct {
	Contents []requestContent `json:"contents"`
}

type requestContent struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Generate sends one prompt to the endpoint and extracts a (title, content)
// pair from the response. An empty topic falls back to DefaultPrompt. Any
// endpoint, transport, or response-shape failure is reported as
// common.ErrGenerationFailed; no retries are attempted.
func (c *Client) Generate(ctx context.Context, apiKey string, topic string) (*Generated, error) {
	prompt := strings.TrimSpace(topic)
	if prompt == "" {
		prompt = DefaultPrompt
	}

	var parsed generateResponse
	if err := c.post(ctx, apiKey, prompt, &parsed); err != nil {
		return nil, err
	}

	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("%w: response contains no candidates", common.ErrGenerationFailed)
	}

	text := parsed.Candidates[0].Content.Parts[0].Text
	return &Generated{Title: ExtractTitle(text), Content: text}, nil
}

// Validate probes the endpoint with a trivial prompt and reports whether the
// key was accepted. It fails closed: transport errors and non-success
// statuses both yield false, and no error is ever returned to the caller.
func (c *Client) Validate(ctx context.Context, apiKey string) bool {
	err := c.post(ctx, apiKey, validationPrompt, nil)
	if err != nil {
		c.logger.Warn(ctx, "generation key validation failed", "error", err.Error())
		return false
	}
	return true
}

func (c *Client) post(ctx context.Context, apiKey string, prompt string, out any) error {
	payload := generateRequest{
		Contents: []requestContent{{Parts: []part{{Text: prompt}}}},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%w: marshaling request: %s", common.ErrGenerationFailed, err)
	}

	endpoint := c.baseURL + generatePath + "?key=" + url.QueryEscape(apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: building request: %s", common.ErrGenerationFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s", common.ErrGenerationFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: unexpected status %d", common.ErrGenerationFailed, resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decoding response: %s", common.ErrGenerationFailed, err)
	}
	return nil
}

// ExtractTitle derives a post title from generated text: the first non-blank
// line with a leading run of '#' heading markers stripped. If no line
// qualifies, DefaultTitle is returned. The input is never modified.
func ExtractTitle(content string) string {
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		title := strings.TrimSpace(strings.TrimLeft(trimmed, "#"))
		if title == "" {
			return DefaultTitle
		}
		return title
	}
	return DefaultTitle
}
