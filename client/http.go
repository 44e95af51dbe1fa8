package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// DefaultTimeout bounds a single collection request.
const DefaultTimeout = 15 * time.Second

type Client struct {
	BaseURL    string
	Token      string
	HTTPClient *http.Client
	Log        *zap.Logger
}

func New(baseURL string) *Client {
	return &Client{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		Log: zap.NewNop(),
	}
}

func (c *Client) SetToken(token string) {
	c.Token = token
}

// SetTimeout replaces the per-request timeout. Zero keeps the current one.
func (c *Client) SetTimeout(d time.Duration) {
	if d > 0 {
		c.HTTPClient.Timeout = d
	}
}

func (c *Client) Publications(ctx context.Context) ([]Publication, error) {
	return fetchList[Publication](ctx, c, "/api/publications", "publications")
}

func (c *Client) Awards(ctx context.Context) ([]Award, error) {
	return fetchList[Award](ctx, c, "/api/awards", "awards")
}

func (c *Client) Conferences(ctx context.Context) ([]Conference, error) {
	return fetchList[Conference](ctx, c, "/api/conferences", "conferences")
}

func (c *Client) Media(ctx context.Context) ([]Media, error) {
	return fetchList[Media](ctx, c, "/api/media", "media")
}

func (c *Client) CV(ctx context.Context) (*CV, error) {
	resp, err := c.get(ctx, "/api/cv")
	if err != nil {
		return nil, fmt.Errorf("cv: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, c.parseError(resp)
	}
	var cv CV
	if err := json.NewDecoder(resp.Body).Decode(&cv); err != nil {
		return nil, fmt.Errorf("decode cv: %w", err)
	}
	return &cv, nil
}

// Collections is everything FetchAll managed to load. A collection that
// failed is left empty and its error is kept in Errs under its name.
type Collections struct {
	Publications []Publication
	Awards       []Award
	Conferences  []Conference
	Media        []Media
	CV           *CV

	Errs map[string]error
}

// FetchAll loads every collection concurrently. One failing collection does
// not cancel the others; the returned error joins all failures and is nil
// only when everything loaded.
func (c *Client) FetchAll(ctx context.Context) (*Collections, error) {
	out := &Collections{Errs: make(map[string]error)}
	var mu sync.Mutex
	addError := func(name string, err error) {
		mu.Lock()
		out.Errs[name] = err
		mu.Unlock()
	}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		v, err := c.Publications(egCtx)
		if err != nil {
			addError("publications", err)
			return nil
		}
		out.Publications = v
		return nil
	})
	eg.Go(func() error {
		v, err := c.Awards(egCtx)
		if err != nil {
			addError("awards", err)
			return nil
		}
		out.Awards = v
		return nil
	})
	eg.Go(func() error {
		v, err := c.Conferences(egCtx)
		if err != nil {
			addError("conferences", err)
			return nil
		}
		out.Conferences = v
		return nil
	})
	eg.Go(func() error {
		v, err := c.Media(egCtx)
		if err != nil {
			addError("media", err)
			return nil
		}
		out.Media = v
		return nil
	})
	eg.Go(func() error {
		v, err := c.CV(egCtx)
		if err != nil {
			addError("cv", err)
			return nil
		}
		out.CV = v
		return nil
	})
	_ = eg.Wait()

	if len(out.Errs) == 0 {
		return out, nil
	}
	errs := make([]error, 0, len(out.Errs))
	for _, name := range []string{"publications", "awards", "conferences", "media", "cv"} {
		if err, ok := out.Errs[name]; ok {
			errs = append(errs, err)
		}
	}
	return out, errors.Join(errs...)
}

// fetchList GETs a collection that is served either as a bare JSON array or
// wrapped as {"items": [...]}.
func fetchList[T any](ctx context.Context, c *Client, path, what string) ([]T, error) {
	resp, err := c.get(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", what, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("list %s: %w", what, c.parseError(resp))
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", what, err)
	}
	items, err := decodeList[T](body)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", what, err)
	}
	return items, nil
}

func decodeList[T any](body []byte) ([]T, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var items []T
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, err
		}
		return items, nil
	}
	var wrapper struct {
		Items []T `json:"items"`
	}
	if err := json.Unmarshal(trimmed, &wrapper); err != nil {
		return nil, err
	}
	return wrapper.Items, nil
}

// -- helpers --

func (c *Client) get(ctx context.Context, path string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return nil, err
	}
	c.setHeaders(req)

	start := time.Now()
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Log.Debug("request failed",
			zap.String("path", path),
			zap.String("request_id", req.Header.Get("X-Request-ID")),
			zap.Error(err))
		return nil, err
	}
	c.Log.Debug("request",
		zap.String("path", path),
		zap.String("request_id", req.Header.Get("X-Request-ID")),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)))
	return resp, nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}
}

func (c *Client) parseError(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)
	var apiErr ErrorResponse
	if json.Unmarshal(body, &apiErr) == nil && apiErr.Error != "" {
		if apiErr.Details != "" {
			return fmt.Errorf("API %d: %s: %s", resp.StatusCode, apiErr.Error, apiErr.Details)
		}
		return fmt.Errorf("API %d: %s", resp.StatusCode, apiErr.Error)
	}
	return fmt.Errorf("API %d: %s", resp.StatusCode, string(bytes.TrimSpace(body)))
}
