// Package client fetches the record envelope from the data service and
// turns it into canonical records for the page controllers.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"meigu/internal/logger"
	"meigu/internal/models"
	"meigu/internal/normalizer"
)

// ErrUnexpectedStatusCode indicates an HTTP response with unexpected status.
var ErrUnexpectedStatusCode = errors.New("unexpected status code")

// ErrServiceRejected indicates an envelope with success=false.
var ErrServiceRejected = errors.New("service rejected request")

// dataPath is the envelope endpoint relative to the base URL.
const dataPath = "/api/data"

// maxBodyBytes caps the envelope size read from the wire.
const maxBodyBytes = 16 << 20

// DataClient performs a single-attempt fetch of the record envelope.
// There is no retry: a failed fetch surfaces as an error and the caller
// falls back to the empty state.
type DataClient struct {
	client  *http.Client
	baseURL string
}

// NewDataClient creates a data client for the given base URL.
func NewDataClient(baseURL string, timeoutSec int) *DataClient {
	return &DataClient{
		client: &http.Client{
			Timeout: time.Duration(timeoutSec) * time.Second,
		},
		baseURL: baseURL,
	}
}

// FetchAll fetches the full record envelope.
func (c *DataClient) FetchAll(ctx context.Context) (models.EnvelopePayload, error) {
	var payload models.EnvelopePayload

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+dataPath, http.NoBody)
	if err != nil {
		return payload, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return payload, fmt.Errorf("request failed: %w", err)
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return payload, fmt.Errorf("%w: %d", ErrUnexpectedStatusCode, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return payload, fmt.Errorf("failed to read response body: %w", err)
	}

	var envelope models.Envelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return payload, fmt.Errorf("failed to decode envelope: %w", err)
	}

	if !envelope.Success {
		return payload, fmt.Errorf("%w: %s", ErrServiceRejected, envelope.Message)
	}

	return envelope.Data, nil
}

// Loader fetches the envelope and normalizes it into canonical records.
// Any failure degrades to the empty state: both slices come back empty
// and the cause is logged, never propagated.
type Loader struct {
	client     *DataClient
	normalizer *normalizer.Normalizer
	logger     *logger.Logger
}

// NewLoader creates a loader over the given client and audience variant.
func NewLoader(client *DataClient, variant normalizer.Variant, log *logger.Logger) *Loader {
	return &Loader{
		client:     client,
		normalizer: normalizer.New(variant),
		logger:     log,
	}
}

// Load returns the normalized activities and articles for one render.
func (l *Loader) Load(ctx context.Context) ([]models.Activity, []models.Article) {
	payload, err := l.client.FetchAll(ctx)
	if err != nil {
		l.logger.Error("failed to load records, using empty state", "error", err)

		return []models.Activity{}, []models.Article{}
	}

	activities := l.normalizer.Activities(payload.News)
	articles := l.normalizer.Articles(payload.Articles)

	l.logger.Info("records loaded",
		"activities", len(activities),
		"articles", len(articles))

	return activities, articles
}
