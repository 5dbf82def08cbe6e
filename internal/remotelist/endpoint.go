// Package remotelist keeps an in-memory mirror of a remote collection and
// applies the user's own create, update and delete calls to it once the
// server has confirmed them.
package remotelist

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"healthyou/internal/failure"
	"healthyou/internal/logging"
	"healthyou/internal/records"
)

// APITimeout is the timeout for a single remote call.
const APITimeout = 10 * time.Second

// maxBody caps how much of a response body is read.
const maxBody = 4 << 20

// Endpoint is a remote CRUD collection of records of type T.
type Endpoint[T records.Record] interface {
	// List returns every record in server order.
	List(ctx context.Context) ([]T, error)

	// Create sends rec and returns the stored record with its new id.
	Create(ctx context.Context, rec T) (T, error)

	// Update replaces the record with the given id.
	Update(ctx context.Context, id string, rec T) (T, error)

	// Delete removes the record with the given id.
	Delete(ctx context.Context, id string) error
}

// HTTPEndpoint implements Endpoint against a JSON REST collection:
// GET /c, POST /c, PUT /c/{id}, DELETE /c/{id}.
type HTTPEndpoint[T records.Record] struct {
	base   string
	client *http.Client
	log    *zap.Logger
}

// NewHTTPEndpoint creates an endpoint for the collection at baseURL.
// A nil client uses http.DefaultClient.
func NewHTTPEndpoint[T records.Record](baseURL string, client *http.Client, log *zap.Logger) (*HTTPEndpoint[T], error) {
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid collection url: %q", baseURL)
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPEndpoint[T]{
		base:   strings.TrimRight(baseURL, "/"),
		client: client,
		log:    logging.OrNop(log),
	}, nil
}

// URL returns the collection URL.
func (e *HTTPEndpoint[T]) URL() string { return e.base }

func (e *HTTPEndpoint[T]) itemURL(id string) string {
	return e.base + "/" + url.PathEscape(id)
}

func (e *HTTPEndpoint[T]) List(ctx context.Context) ([]T, error) {
	var out []T
	if err := e.do(ctx, http.MethodGet, e.base, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (e *HTTPEndpoint[T]) Create(ctx context.Context, rec T) (T, error) {
	var out T
	if err := e.do(ctx, http.MethodPost, e.base, rec, &out); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

func (e *HTTPEndpoint[T]) Update(ctx context.Context, id string, rec T) (T, error) {
	var out T
	if err := e.do(ctx, http.MethodPut, e.itemURL(id), rec, &out); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

func (e *HTTPEndpoint[T]) Delete(ctx context.Context, id string) error {
	return e.do(ctx, http.MethodDelete, e.itemURL(id), nil, nil)
}

// do performs one round trip. Any transport error, non-2xx status or
// undecodable body is reported as a *failure.NetworkError.
func (e *HTTPEndpoint[T]) do(ctx context.Context, method, target string, in, out any) error {
	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	netErr := func(status int, err error) error {
		return &failure.NetworkError{Op: method, URL: target, Status: status, Err: err}
	}

	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return netErr(0, err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := e.client.Do(req)
	if err != nil {
		e.log.Debug("request failed", zap.String("method", method), zap.String("url", target), zap.Error(err))
		return netErr(0, err)
	}
	defer resp.Body.Close()

	e.log.Debug("request",
		zap.String("method", method),
		zap.String("url", target),
		zap.Int("status", resp.StatusCode),
		zap.Duration("took", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBody))
		return netErr(resp.StatusCode, nil)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBody)).Decode(out); err != nil {
		return netErr(resp.StatusCode, fmt.Errorf("decode response: %w", err))
	}
	return nil
}
