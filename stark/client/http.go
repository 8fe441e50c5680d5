package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/starkbot/gostark/stark/types"
)

// httpClient is a thin wrapper over net/http. The private path deliberately
// avoids higher-level HTTP libraries: the signature is computed over the
// exact body bytes transmitted, so the client must own body serialization.
type httpClient struct {
	client *http.Client
	host   string
}

func newHTTPClient(host string) *httpClient {
	transport := &http.Transport{
		MaxIdleConns:        100,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	}
	return &httpClient{
		client: &http.Client{
			Transport: transport,
			Timeout:   30 * time.Second,
		},
		host: host,
	}
}

// do dispatches one request. body is the exact string to transmit; empty
// means no request body at all.
func (h *httpClient) do(ctx context.Context, method types.Method, requestPath string, headers map[string]string, body string) (*http.Response, error) {
	var reader io.Reader
	if body != "" {
		reader = bytes.NewReader([]byte(body))
	}
	req, err := http.NewRequestWithContext(ctx, string(method), h.host+requestPath, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "gostark-client")
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	return h.client.Do(req)
}

// requestPath joins an endpoint with its encoded query string. The same
// string is used for signing and for the wire so they cannot diverge.
func requestPath(endpoint string, params url.Values) string {
	if len(params) == 0 {
		return endpoint
	}
	return endpoint + "?" + params.Encode()
}

// private executes one authenticated request. The body is serialized once,
// the timestamp is captured once, and both feed the signature and the wire
// unchanged.
func (c *Client) private(ctx context.Context, method types.Method, endpoint string, params url.Values, payload, out any) error {
	if err := c.CanAuth(); err != nil {
		return err
	}

	body := ""
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("serialize request body: %w", err)
		}
		body = string(b)
	}

	path := requestPath(endpoint, params)
	isoTimestamp := c.clock.NowISO()
	headers, err := c.auth.Headers(path, method, isoTimestamp, body)
	if err != nil {
		return err
	}

	c.log.WithFields(logrus.Fields{
		"method": method,
		"path":   path,
	}).Debug("private request")

	resp, err := c.http.do(ctx, method, path, headers, body)
	if err != nil {
		return err
	}
	return parseResponse(resp, out)
}

// public executes one unauthenticated GET.
func (c *Client) public(ctx context.Context, endpoint string, params url.Values, out any) error {
	resp, err := c.http.do(ctx, types.MethodGet, requestPath(endpoint, params), nil, "")
	if err != nil {
		return err
	}
	return parseResponse(resp, out)
}

func parseResponse(resp *http.Response, out any) error {
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response body: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{StatusCode: resp.StatusCode, Body: string(data)}
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
