// Package apiclient adalah klien REST untuk backend klinik. Setiap method
// mengirim tepat satu request dan mengembalikan body yang sudah diparse.
package apiclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const (
	headerAuthorization = "Authorization"
	headerContentType   = "Content-Type"
	headerAccept        = "Accept"

	mimeJSON = "application/json"
	mimeForm = "application/x-www-form-urlencoded"
)

// TokenSource memberi bearer token untuk request berikutnya. String kosong
// berarti request dikirim tanpa header Authorization.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// StaticToken token tetap, dipakai CLI dan test.
type StaticToken string

func (s StaticToken) Token(context.Context) (string, error) {
	return string(s), nil
}

type Client struct {
	BaseURL string
	HTTP    *http.Client
	Tokens  TokenSource
	Log     *zap.Logger
}

func New(baseURL string, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{},
		Log:     logger,
	}
}

// WithTokens salinan client yang terikat ke sesi satu pemanggil.
func (c *Client) WithTokens(ts TokenSource) *Client {
	cp := *c
	cp.Tokens = ts
	return &cp
}

// newRequest membangun request dan memasang bearer token bila ada.
func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string) (*http.Request, error) {
	target := c.BaseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, fmt.Errorf("create request %s %s: %w", method, path, err)
	}
	if contentType == "" {
		contentType = mimeJSON
	}
	req.Header.Set(headerContentType, contentType)
	req.Header.Set(headerAccept, mimeJSON)

	if c.Tokens != nil {
		token, err := c.Tokens.Token(ctx)
		if err != nil {
			return nil, fmt.Errorf("read access token: %w", err)
		}
		if token != "" {
			req.Header.Set(headerAuthorization, "Bearer "+token)
		}
	}
	return req, nil
}

// do mengirim request lalu mendecode body 2xx ke out (boleh nil).
func (c *Client) do(req *http.Request, out interface{}) error {
	log := c.Log.With(zap.String("method", req.Method), zap.String("path", req.URL.Path))

	resp, err := c.HTTP.Do(req)
	if err != nil {
		log.Error("apiclient request failed", zap.Error(err))
		return fmt.Errorf("send %s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error("apiclient read body failed", zap.Int("status", resp.StatusCode), zap.Error(err))
		return fmt.Errorf("read %s %s: %w", req.Method, req.URL.Path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := newAPIError(resp.StatusCode, raw)
		log.Warn("apiclient non-2xx response",
			zap.Int("status", resp.StatusCode),
			zap.String("detail", apiErr.Detail),
		)
		return apiErr
	}

	log.Debug("apiclient ok", zap.Int("status", resp.StatusCode))
	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		log.Error("apiclient decode failed", zap.Error(err))
		return fmt.Errorf("decode %s %s: %w", req.Method, req.URL.Path, err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	req, err := c.newRequest(ctx, http.MethodGet, path, nil, nil, "")
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) send(ctx context.Context, method, path string, query url.Values, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		body = bytes.NewReader(payload)
	}
	req, err := c.newRequest(ctx, method, path, query, body, "")
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) post(ctx context.Context, path string, in, out interface{}) error {
	return c.send(ctx, http.MethodPost, path, nil, in, out)
}

func (c *Client) put(ctx context.Context, path string, in, out interface{}) error {
	return c.send(ctx, http.MethodPut, path, nil, in, out)
}
