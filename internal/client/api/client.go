package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/genfit/internal/client/models"
	"github.com/dmitrijs2005/genfit/internal/common"
	"github.com/dmitrijs2005/genfit/internal/logging"
	"github.com/google/uuid"
)

// TokenSource yields the current bearer token; ok is false when signed out.
type TokenSource interface {
	Token(ctx context.Context) (token string, ok bool, err error)
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
	log        logging.Logger
}

// NewClient returns a client for baseURL (e.g. "https://api.genfit.id/api").
// A zero timeout leaves requests bounded only by their context.
func NewClient(baseURL string, timeout time.Duration, tokens TokenSource, log logging.Logger) *Client {
	if log == nil {
		log = logging.Nop()
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		tokens:     tokens,
		log:        log.With("component", "api"),
	}
}

// Get issues an authenticated GET and decodes the body into out (when non-nil).
func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, true, out)
}

// Post issues an authenticated POST with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, true, out)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any, auth bool, out any) error {
	op := method + " " + path

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return &common.NetworkError{Op: op, Err: fmt.Errorf("encode body: %w", err)}
		}
		reader = bytes.NewReader(b)
	}

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return &common.NetworkError{Op: op, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	reqID := uuid.NewString()
	req.Header.Set(common.RequestIDHeaderName, reqID)

	if auth && c.tokens != nil {
		token, ok, err := c.tokens.Token(ctx)
		if err != nil {
			return err
		}
		if ok {
			req.Header.Set(common.AuthorizationHeaderName, "Bearer "+token)
		}
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn(ctx, "request failed", "op", op, "request_id", reqID, "error", err)
		return &common.NetworkError{Op: op, Err: fmt.Errorf("%w: %w", common.ErrUnavailable, err)}
	}
	defer resp.Body.Close()

	c.log.Debug(ctx, "request done", "op", op, "request_id", reqID,
		"status", resp.StatusCode, "elapsed", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return statusError(op, resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &common.NetworkError{Op: op, StatusCode: resp.StatusCode, Err: fmt.Errorf("decode body: %w", err)}
	}
	return nil
}

func statusError(op string, resp *http.Response) error {
	ne := &common.NetworkError{Op: op, StatusCode: resp.StatusCode}

	b, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	var env models.ErrorEnvelope
	if err := json.Unmarshal(b, &env); err == nil {
		ne.Message = env.Error.Message
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		ne.Err = common.ErrUnauthorized
	default:
		ne.Err = errors.New(http.StatusText(resp.StatusCode))
	}
	return ne
}
