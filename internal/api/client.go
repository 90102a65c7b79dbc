// Copyright (C) 2025 Ariel Frischer
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/plantview/plantview-cli/internal/errors"
	"github.com/plantview/plantview-cli/internal/logging"
	"github.com/plantview/plantview-cli/internal/models"
	"github.com/plantview/plantview-cli/pkg/version"
)

const (
	DefaultAPIURL  = "http://localhost:3001"
	DefaultTimeout = 30 * time.Second
)

// Client talks to the plant catalog API. It never retries: a failed
// request is reported once and the caller decides what to show.
type Client struct {
	httpClient *http.Client
	baseURL    string
	debug      bool
	logger     zerolog.Logger
}

func NewClient(baseURL string, timeout time.Duration, debug bool) *Client {
	if baseURL == "" {
		baseURL = DefaultAPIURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: strings.TrimRight(baseURL, "/"),
		debug:   debug,
		logger:  logging.NewLogger("api"),
	}
}

// GetAPIEndpoint returns the base URL requests are sent to
func (c *Client) GetAPIEndpoint() string {
	return c.baseURL
}

func (c *Client) doRequest(ctx context.Context, method, path, endpoint string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", fmt.Sprintf("plantview-cli/%s", version.GetVersion()))
	req.Header.Set("X-Request-ID", requestID)

	if c.debug {
		c.logger.Debug().
			Str("method", method).
			Str("url", req.URL.String()).
			Str("request_id", requestID).
			Msg("API request")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	apiRequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	if err != nil {
		apiRequestsTotal.WithLabelValues(endpoint, "error").Inc()
		// Wrap network errors
		return nil, &errors.NetworkError{
			Err:       err,
			Operation: fmt.Sprintf("%s %s", method, endpoint),
			URL:       c.baseURL + path,
		}
	}

	apiRequestsTotal.WithLabelValues(endpoint, strconv.Itoa(resp.StatusCode)).Inc()

	if c.debug {
		c.logger.Debug().
			Str("status", resp.Status).
			Str("request_id", requestID).
			Dur("duration", time.Since(start)).
			Msg("API response")
	}

	return resp, nil
}

// ListPlants fetches one page of plant records. family may be empty for
// the unfiltered listing.
func (c *Client) ListPlants(ctx context.Context, page int, family string) (*models.PageResponse, error) {
	if page < 1 {
		return nil, &errors.ValidationError{Field: "page", Value: page, Message: "page must be 1 or greater"}
	}

	resp, err := c.doRequest(ctx, http.MethodGet, CropsListURL(page, family), EndpointCrops)
	if err != nil {
		c.recordError(err, page, family)
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if err := ValidateResponseOK(resp); err != nil {
		c.recordError(err, page, family)
		return nil, err
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		err = &errors.NetworkError{Err: err, Operation: "read list plants response"}
		c.recordError(err, page, family)
		return nil, err
	}

	if c.debug {
		c.logger.Debug().Int("bytes", len(body)).Msg("ListPlants response")
	}

	var pageResp models.PageResponse
	if err := json.Unmarshal(body, &pageResp); err != nil {
		decErr := &errors.DecodeError{Err: err, Operation: "list plants"}
		c.recordError(decErr, page, family)
		return nil, decErr
	}

	return &pageResp, nil
}

func (c *Client) recordError(err error, page int, family string) {
	class := errors.Class(err)
	apiErrorsTotal.WithLabelValues(class).Inc()
	c.logger.Warn().
		Err(err).
		Str("error_class", class).
		Int("page", page).
		Str("family", family).
		Msg("list plants failed")
}
