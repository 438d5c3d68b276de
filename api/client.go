package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Bibek1604/epsalae-storefront/utils"
)

// TokenSource supplies the bearer token attached to every request. The auth
// store implements it; an empty token sends the request unauthenticated.
type TokenSource interface {
	Token() string
}

// Client is the single point of HTTP egress to the backend API. It attaches
// the bearer token, normalizes response envelopes, and maps status codes to
// the AppError taxonomy. No retries, no backoff: a failed request is terminal
// for that user action.
type Client struct {
	baseURL        string
	httpClient     *http.Client
	tokens         TokenSource
	onUnauthorized func()
}

// NewClient creates a client for the given versioned base URL
func NewClient(baseURL string, tokens TokenSource) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
		tokens:     tokens,
	}
}

// OnUnauthorized registers the hook invoked whenever the backend answers 401.
// The auth store uses it to clear stored credentials so the next view render
// redirects to login.
func (c *Client) OnUnauthorized(fn func()) {
	c.onUnauthorized = fn
}

// Get issues a GET request and decodes the normalized data payload into out
func (c *Client) Get(ctx context.Context, path string, query url.Values, out interface{}) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	_, err := c.do(ctx, http.MethodGet, u, "", nil, out)
	return err
}

// GetEnvelope is Get for callers that also need the pagination block
func (c *Client) GetEnvelope(ctx context.Context, path string, query url.Values) (*Envelope, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return c.do(ctx, http.MethodGet, u, "", nil, nil)
}

// Post issues a JSON POST request
func (c *Client) Post(ctx context.Context, path string, body, out interface{}) error {
	return c.sendJSON(ctx, http.MethodPost, path, body, out)
}

// Put issues a JSON PUT request
func (c *Client) Put(ctx context.Context, path string, body, out interface{}) error {
	return c.sendJSON(ctx, http.MethodPut, path, body, out)
}

// Delete issues a DELETE request
func (c *Client) Delete(ctx context.Context, path string) error {
	_, err := c.do(ctx, http.MethodDelete, c.baseURL+path, "", nil, nil)
	return err
}

func (c *Client) sendJSON(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return utils.WrapError(err, "failed to encode request body")
		}
		reader = bytes.NewReader(payload)
	}
	_, err := c.do(ctx, method, c.baseURL+path, "application/json", reader, out)
	return err
}

// SendMultipart issues a file-bearing create/update call. Binary image data
// goes under the "image" field; a passthrough URL stays in the text fields as
// "imageUrl". Raw base64 never reaches the wire.
func (c *Client) SendMultipart(ctx context.Context, method, path string, fields map[string]string, image *utils.ImageUpload, out interface{}) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for key, value := range fields {
		if err := w.WriteField(key, value); err != nil {
			return utils.WrapError(err, "failed to write form field")
		}
	}

	if image != nil {
		part, err := w.CreateFormFile("image", image.Filename)
		if err != nil {
			return utils.WrapError(err, "failed to create image part")
		}
		if _, err := part.Write(image.Data); err != nil {
			return utils.WrapError(err, "failed to write image part")
		}
	}

	if err := w.Close(); err != nil {
		return utils.WrapError(err, "failed to finalize multipart body")
	}

	_, err := c.do(ctx, method, c.baseURL+path, w.FormDataContentType(), &buf, out)
	return err
}

func (c *Client) do(ctx context.Context, method, fullURL, contentType string, body io.Reader, out interface{}) (*Envelope, error) {
	req, err := http.NewRequestWithContext(ctx, method, fullURL, body)
	if err != nil {
		return nil, utils.WrapError(err, "failed to build request")
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		utils.LogError("Upstream request failed: %s %s: %v", method, fullURL, err)
		return nil, utils.UpstreamError(utils.ErrUpstreamFailure, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, utils.UpstreamError(utils.ErrUpstreamFailure, err)
	}
	utils.LogUpstream(method, req.URL.Path, resp.StatusCode, time.Since(start))

	if resp.StatusCode == http.StatusUnauthorized {
		utils.LogError("Upstream returned 401 for %s %s, clearing credentials", method, req.URL.Path)
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return nil, utils.UnauthorizedError(utils.ErrSessionExpired, nil)
	}
	if resp.StatusCode == http.StatusNotFound {
		return nil, utils.NotFoundError(serverMessage(raw, "Not found"), nil)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := serverMessage(raw, fmt.Sprintf("Request failed with status %d", resp.StatusCode))
		return nil, utils.NewAppError(resp.StatusCode, msg, nil)
	}

	env, err := Normalize(raw)
	if err != nil {
		return nil, utils.UpstreamError("Unexpected response from server", err)
	}
	if out != nil {
		if err := env.Decode(out); err != nil {
			return nil, utils.UpstreamError("Unexpected response from server", err)
		}
	}
	return env, nil
}

// serverMessage pulls a human-readable message out of an error body when the
// backend sent one.
func serverMessage(raw []byte, fallback string) string {
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(raw, &body); err == nil {
		if body.Message != "" {
			return body.Message
		}
		if body.Error != "" {
			return body.Error
		}
	}
	return fallback
}
