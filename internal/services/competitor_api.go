package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/SirClappington/competitor-watch/internal/errors"
	"github.com/SirClappington/competitor-watch/internal/models"
	"github.com/SirClappington/competitor-watch/internal/sse"
)

const backendServiceName = "competitor-api"

// CompetitorAPI is the part of the backend the competitor manager talks to.
type CompetitorAPI interface {
	ListCompetitors(ctx context.Context) ([]models.Competitor, error)
	AddCompetitor(ctx context.Context, competitorURL string) error
	DeleteCompetitor(ctx context.Context, id models.CompetitorID) error
	SuggestCompetitors(ctx context.Context, userURL string) (*models.SuggestResponse, error)
}

// ScanStreamer opens scan event streams.
type ScanStreamer interface {
	StreamScan(ctx context.Context, id models.CompetitorID) (EventStream, error)
}

// EventStream yields server-sent events until the stream ends.
type EventStream interface {
	Next() (sse.Event, error)
	Close() error
}

// CompetitorAPIClient manages interactions with the competitor backend API.
type CompetitorAPIClient struct {
	BaseURL string
	// Timeout bounds each JSON call. Zero means no limit. Streams are never bounded.
	Timeout time.Duration

	client *http.Client
	logger *log.Logger
}

// NewCompetitorAPIClient creates a new instance of CompetitorAPIClient.
func NewCompetitorAPIClient(baseURL string, timeout time.Duration, logger *log.Logger) *CompetitorAPIClient {
	return &CompetitorAPIClient{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Timeout: timeout,
		client:  &http.Client{},
		logger:  logger,
	}
}

func (c *CompetitorAPIClient) endpoint(path string) string {
	return c.BaseURL + path
}

func (c *CompetitorAPIClient) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.Timeout > 0 {
		return context.WithTimeout(ctx, c.Timeout)
	}
	return context.WithCancel(ctx)
}

// ListCompetitors fetches the full competitor collection, bypassing caches.
func (c *CompetitorAPIClient) ListCompetitors(ctx context.Context) ([]models.Competitor, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint("/api/competitors"), nil)
	if err != nil {
		return nil, errors.NewInternalError(fmt.Errorf("failed to create request: %w", err))
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cache-Control", "no-store")
	req.Header.Set("Pragma", "no-cache")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, errors.NewExternalError(backendServiceName, fmt.Errorf("failed to send request: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.NewExternalError(backendServiceName, fmt.Errorf("list competitors: unexpected status %d", resp.StatusCode))
	}

	var competitors []models.Competitor
	if err := json.NewDecoder(resp.Body).Decode(&competitors); err != nil {
		return nil, errors.NewExternalError(backendServiceName, fmt.Errorf("failed to parse response: %w", err))
	}

	return competitors, nil
}

// AddCompetitor asks the backend to start tracking competitorURL. The response
// body is not used.
func (c *CompetitorAPIClient) AddCompetitor(ctx context.Context, competitorURL string) error {
	resp, err := c.postJSON(ctx, "/api/competitors", models.CompetitorRequest{URL: competitorURL})
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= http.StatusBadRequest {
		return errors.NewExternalError(backendServiceName, fmt.Errorf("add competitor: unexpected status %d", resp.StatusCode))
	}
	return nil
}

// DeleteCompetitor removes the competitor with the given id.
func (c *CompetitorAPIClient) DeleteCompetitor(ctx context.Context, id models.CompetitorID) error {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.endpoint("/api/competitors/"+url.PathEscape(id.String())), nil)
	if err != nil {
		return errors.NewInternalError(fmt.Errorf("failed to create request: %w", err))
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return errors.NewExternalError(backendServiceName, fmt.Errorf("failed to send request: %w", err))
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= http.StatusBadRequest {
		return errors.NewExternalError(backendServiceName, fmt.Errorf("delete competitor %s: unexpected status %d", id, resp.StatusCode))
	}
	return nil
}

// SuggestCompetitors asks the backend for competitors of userURL. The body is
// decoded whatever the status code, since the backend reports failures as
// {"error": "..."} alongside a 4xx/5xx status.
func (c *CompetitorAPIClient) SuggestCompetitors(ctx context.Context, userURL string) (*models.SuggestResponse, error) {
	resp, err := c.postJSON(ctx, "/api/suggest-competitors", models.CompetitorRequest{URL: userURL})
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var result models.SuggestResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, errors.NewExternalError(backendServiceName, fmt.Errorf("failed to parse response: %w", err))
	}

	return &result, nil
}

// postJSON sends body as JSON. The timeout context is released when the
// returned body is closed.
func (c *CompetitorAPIClient) postJSON(ctx context.Context, path string, body any) (*http.Response, error) {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return nil, errors.NewInternalError(fmt.Errorf("failed to marshal request body: %w", err))
	}

	ctx, cancel := c.withTimeout(ctx)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(path), bytes.NewBuffer(jsonBody))
	if err != nil {
		cancel()
		return nil, errors.NewInternalError(fmt.Errorf("failed to create request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		cancel()
		return nil, errors.NewExternalError(backendServiceName, fmt.Errorf("failed to send request: %w", err))
	}
	resp.Body = &cancelOnClose{ReadCloser: resp.Body, cancel: cancel}
	return resp, nil
}

type cancelOnClose struct {
	io.ReadCloser
	cancel context.CancelFunc
}

func (r *cancelOnClose) Close() error {
	err := r.ReadCloser.Close()
	r.cancel()
	return err
}

// StreamScan opens the scan event stream for a competitor. The stream has no
// timeout; it ends when the backend closes it, the caller closes it, or ctx
// is cancelled.
func (c *CompetitorAPIClient) StreamScan(ctx context.Context, id models.CompetitorID) (EventStream, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint("/api/stream-scan/"+url.PathEscape(id.String())), nil)
	if err != nil {
		return nil, errors.NewInternalError(fmt.Errorf("failed to create request: %w", err))
	}
	req.Header.Set("Accept", "text/event-stream")
	req.Header.Set("Cache-Control", "no-cache")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, errors.NewExternalError(backendServiceName, fmt.Errorf("failed to open scan stream: %w", err))
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, errors.NewExternalError(backendServiceName, fmt.Errorf("scan stream %s: unexpected status %d", id, resp.StatusCode))
	}

	c.logger.Printf("Scan stream opened for competitor %s", id)
	return &scanStream{body: resp.Body, reader: sse.NewReader(resp.Body)}, nil
}

type scanStream struct {
	body   io.ReadCloser
	reader *sse.Reader
}

func (s *scanStream) Next() (sse.Event, error) {
	return s.reader.Next()
}

func (s *scanStream) Close() error {
	return s.body.Close()
}
