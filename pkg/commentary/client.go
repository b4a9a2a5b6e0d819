package commentary

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client is a dealer-commentary relay client.
type Client struct {
	config     *ClientConfig
	httpClient *http.Client
}

// NewClient creates a new relay client.
func NewClient(config *ClientConfig) *Client {
	if config.Timeout == 0 {
		config.Timeout = 10 * time.Second
	}

	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
	}
}

// NewClientWithHTTPClient creates a new relay client with a custom HTTP
// client. The config timeout still applies to Notify, so it is defaulted
// here as well.
func NewClientWithHTTPClient(config *ClientConfig, httpClient *http.Client) *Client {
	if config.Timeout == 0 {
		config.Timeout = 10 * time.Second
	}

	return &Client{
		config:     config,
		httpClient: httpClient,
	}
}

// doRequest posts the request body to the endpoint and decodes the reply.
func (c *Client) doRequest(ctx context.Context, endpoint string, reqBody interface{}, result interface{}) error {
	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	url := c.config.BaseURL + endpoint

	retryCount := c.config.RetryCount
	if retryCount == 0 {
		retryCount = 1
	}

	var resp *http.Response
	var lastErr error
	for i := 0; i < retryCount; i++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(bodyBytes))
		if err != nil {
			return fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err = c.httpClient.Do(req)
		if err != nil {
			lastErr = err
			continue
		}
		break
	}

	if resp == nil {
		return fmt.Errorf("request failed after %d retries: %w", retryCount, lastErr)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("relay returned status %d: %s", resp.StatusCode, respBody)
	}

	if err := json.Unmarshal(respBody, result); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}

	return nil
}

// Generate requests commentary for the given session. Both relay response
// formats are accepted; the returned Message is normalized.
func (c *Client) Generate(ctx context.Context, sessionID string, req *Request) (*Message, error) {
	endpoint := fmt.Sprintf("/api/sessions/%s/response/", sessionID)

	var resp wireResponse
	if err := c.doRequest(ctx, endpoint, req, &resp); err != nil {
		return nil, err
	}

	msg := resp.normalize()
	if msg.Text == "" {
		return nil, fmt.Errorf("relay returned empty commentary")
	}

	return msg, nil
}

// Notify sends a round summary without waiting for the commentary text.
// Relay failures are swallowed; the settlement already happened and the
// commentary is decorative.
func (c *Client) Notify(sessionID, prompt, gameState string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), c.config.Timeout)
		defer cancel()
		_, _ = c.Generate(ctx, sessionID, &Request{Prompt: prompt, GameState: gameState})
	}()
}
