// Package fetch streams remote package payloads to disk.
package fetch

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-retryablehttp"
)

// TransferError wraps a failed download with the URL it was for.
type TransferError struct {
	URL    string
	Status int
	Err    error
}

func (e *TransferError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("downloading %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("downloading %s: HTTP %d", e.URL, e.Status)
}

func (e *TransferError) Unwrap() error { return e.Err }

// Client downloads URLs to local files with bounded retries.
type Client struct {
	hc *retryablehttp.Client
}

func NewClient() *Client {
	client := retryablehttp.NewClient()
	client.Logger = nil
	return &Client{hc: client}
}

// Fetch streams the body of url into dest, creating or truncating it.
func (c *Client) Fetch(ctx context.Context, url, dest string) error {
	req, err := retryablehttp.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return &TransferError{URL: url, Err: err}
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return &TransferError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		return &TransferError{URL: url, Status: resp.StatusCode}
	}

	f, err := os.Create(dest)
	if err != nil {
		return &TransferError{URL: url, Err: err}
	}
	defer f.Close()

	if _, err := io.Copy(f, resp.Body); err != nil {
		return &TransferError{URL: url, Err: err}
	}
	return nil
}
