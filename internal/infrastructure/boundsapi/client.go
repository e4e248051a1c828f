// Package boundsapi talks to the external aggregate bounds endpoint that the
// ingestion tooling maintains. It is only the first, cheapest strategy of the
// bounds resolver; on any malformed or non-OK response callers fall back to
// scanning the store directly.
package boundsapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/rs/zerolog"

	"resultados/internal/domain/entities"
	"resultados/internal/domain/normalize"
	"resultados/internal/infrastructure/logging"
	"resultados/internal/usecase/interfaces"
)

var (
	ErrNotConfigured   = errors.New("bounds api url not configured")
	ErrMalformedBounds = errors.New("bounds api returned a malformed payload")
)

type Client struct {
	baseURL string
	http    *http.Client
	log     zerolog.Logger
}

var _ interfaces.IBoundsClient = (*Client)(nil)

// payload mirrors the endpoint contract:
// GET /bounds?partition=<key> -> { ok, minDate, maxDate, minDocId?, maxDocId?, source }
type payload struct {
	OK       bool   `json:"ok"`
	MinDate  string `json:"minDate"`
	MaxDate  string `json:"maxDate"`
	MinDocID string `json:"minDocId"`
	MaxDocID string `json:"maxDocId"`
	Source   string `json:"source"`
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 5 * time.Second},
		log:     logging.For("boundsapi"),
	}
}

// NewClientFromEnv reads BOUNDS_API_URL. An empty URL yields a client whose
// calls fail with ErrNotConfigured, which the resolver treats as "skip".
func NewClientFromEnv() *Client {
	return NewClient(os.Getenv("BOUNDS_API_URL"))
}

// FetchBounds asks the endpoint for the partition's {minDate, maxDate}. Any
// transport error, non-2xx status, ok=false flag or date that does not
// normalize is reported as an error so the caller can fall back to scans; a
// partial payload is never trusted.
func (c *Client) FetchBounds(ctx context.Context, partition string) (entities.PartitionBounds, error) {
	if c.baseURL == "" {
		return entities.PartitionBounds{}, ErrNotConfigured
	}

	endpoint := fmt.Sprintf("%s/bounds?partition=%s", c.baseURL, url.QueryEscape(partition))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return entities.PartitionBounds{}, fmt.Errorf("build bounds request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return entities.PartitionBounds{}, fmt.Errorf("fetch bounds: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return entities.PartitionBounds{}, fmt.Errorf("bounds api status %d", resp.StatusCode)
	}

	var p payload
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		return entities.PartitionBounds{}, fmt.Errorf("%w: %v", ErrMalformedBounds, err)
	}
	if !p.OK {
		return entities.PartitionBounds{}, fmt.Errorf("%w: not ok", ErrMalformedBounds)
	}

	min := normalize.Date(p.MinDate)
	max := normalize.Date(p.MaxDate)
	if min == "" || max == "" {
		return entities.PartitionBounds{}, fmt.Errorf("%w: minDate=%q maxDate=%q", ErrMalformedBounds, p.MinDate, p.MaxDate)
	}

	c.log.Debug().Str("partition", partition).Str("source", p.Source).Msg("bounds fetched from aggregate endpoint")
	return entities.PartitionBounds{Partition: partition, MinDate: min, MaxDate: max}, nil
}
