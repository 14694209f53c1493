// Package walletproviderclient is the holder-side HTTP client for the
// wallet provider's registration and instruction-protocol endpoints
// (spec §4.1, §4.2), grounded on pkg/datastoreclient's
// Client{httpClient,url}/newRequest/do/call shape.
package walletproviderclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/edi-wallet/core/pkg/helpers"
)

// ErrInvalidRequest is returned for any non-2xx response the wallet
// provider sends back.
var ErrInvalidRequest = errors.New("walletproviderclient: invalid request")

// Config is the client configuration.
type Config struct {
	URL string `validate:"required"`
}

// Client is the wallet provider HTTP client.
type Client struct {
	httpClient *http.Client
	url        string
}

// New creates a new wallet provider client.
func New(config *Config) (*Client, error) {
	if err := helpers.CheckSimple(config); err != nil {
		return nil, err
	}
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		url:        config.URL,
	}, nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, body any) (*http.Request, error) {
	rel, err := url.Parse(path)
	if err != nil {
		return nil, err
	}
	base, err := url.Parse(c.url)
	if err != nil {
		return nil, err
	}
	target := base.ResolveReference(rel)

	var buf io.ReadWriter
	if body != nil {
		buf = new(bytes.Buffer)
		if err := json.NewEncoder(buf).Encode(body); err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, target.String(), buf)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	return req, nil
}

func (c *Client) do(ctx context.Context, req *http.Request, reply any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return ErrInvalidRequest
	}
	if reply == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(reply)
}

func (c *Client) call(ctx context.Context, method, path string, body, reply any) error {
	req, err := c.newRequest(ctx, method, path, body)
	if err != nil {
		return err
	}
	return c.do(ctx, req, reply)
}
