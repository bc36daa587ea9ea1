// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/octo-exporter/internal/config"
	"github.com/MKhiriev/octo-exporter/internal/logger"
	"github.com/MKhiriev/octo-exporter/internal/utils"
	"github.com/MKhiriev/octo-exporter/models"
	"github.com/google/go-querystring/query"
)

const (
	defaultRequestTimeout  = 30 * time.Second
	defaultDownloadTimeout = 10 * time.Minute
)

type httpServerAdapter struct {
	client  *utils.HTTPClient
	baseURL string

	requestTimeout  time.Duration
	downloadTimeout time.Duration

	// progress receives one line per outgoing request.
	progress io.Writer
	logger   *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from cfg.URL, configures the
// underlying HTTP client with the API key header, and applies the per-request
// timeouts (API calls and artifact downloads are bounded separately).
//
// Each request is announced on progress as "<METHOD> <URL>"; a nil progress
// discards those lines.
//
// Returns an error if cfg.URL is empty or cannot be parsed as a valid URL.
func NewHTTPServerAdapter(cfg config.ExporterServer, progress io.Writer, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid server url: %w", err)
	}
	if progress == nil {
		progress = io.Discard
	}

	requestTimeout := cfg.RequestTimeout
	if requestTimeout <= 0 {
		requestTimeout = defaultRequestTimeout
	}
	downloadTimeout := cfg.DownloadTimeout
	if downloadTimeout <= 0 {
		downloadTimeout = defaultDownloadTimeout
	}

	return &httpServerAdapter{
		client:          utils.NewHTTPClient(baseURL, cfg.APIKey),
		baseURL:         baseURL,
		requestTimeout:  requestTimeout,
		downloadTimeout: downloadTimeout,
		progress:        progress,
		logger:          logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// ListSpaces implements [ServerAdapter].
func (h *httpServerAdapter) ListSpaces(ctx context.Context, partialName string) ([]models.Resource, error) {
	q, err := query.Values(models.ListQuery{PartialName: partialName, Take: models.DefaultTake})
	if err != nil {
		return nil, fmt.Errorf("encode spaces query: %w", err)
	}

	return h.listResources(ctx, "/api/spaces", nil, q)
}

// ListResources implements [ServerAdapter].
func (h *httpServerAdapter) ListResources(ctx context.Context, spaceID, resourceType, partialName string) ([]models.Resource, error) {
	q, err := query.Values(models.ListQuery{PartialName: partialName, Take: models.DefaultTake})
	if err != nil {
		return nil, fmt.Errorf("encode %s query: %w", resourceType, err)
	}

	return h.listResources(ctx, "/api/{spaceId}/{resourceType}", map[string]string{
		"spaceId":      spaceID,
		"resourceType": resourceType,
	}, q)
}

// ListProjects implements [ServerAdapter].
func (h *httpServerAdapter) ListProjects(ctx context.Context, spaceID string) ([]models.Resource, error) {
	q, err := query.Values(models.ListQuery{Take: models.DefaultTake})
	if err != nil {
		return nil, fmt.Errorf("encode projects query: %w", err)
	}

	return h.listResources(ctx, "/api/{spaceId}/projects", map[string]string{"spaceId": spaceID}, q)
}

func (h *httpServerAdapter) listResources(ctx context.Context, path string, pathParams map[string]string, q url.Values) ([]models.Resource, error) {
	ctx, cancel := context.WithTimeout(ctx, h.requestTimeout)
	defer cancel()

	h.announce(http.MethodGet, path, pathParams, q)
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParams(pathParams).
		SetQueryParamsFromValues(q).
		Get(path)
	if err != nil {
		return nil, fmt.Errorf("list request %s: %w", path, err)
	}
	if err = mapHTTPError(resp.StatusCode(), resp.Body()); err != nil {
		return nil, err
	}

	var coll models.ResourceCollection
	if err = json.Unmarshal(resp.Body(), &coll); err != nil {
		return nil, fmt.Errorf("%w: decode listing: %v", ErrMalformedResponse, err)
	}

	return coll.Items, nil
}

// GetResource implements [ServerAdapter].
func (h *httpServerAdapter) GetResource(ctx context.Context, spaceID, resourceType, resourceID string) (json.RawMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, h.requestTimeout)
	defer cancel()

	const path = "/api/{spaceId}/{resourceType}/{resourceId}"
	params := map[string]string{
		"spaceId":      spaceID,
		"resourceType": resourceType,
		"resourceId":   resourceID,
	}

	h.announce(http.MethodGet, path, params, nil)
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParams(params).
		Get(path)
	if err != nil {
		return nil, fmt.Errorf("get resource request: %w", err)
	}
	if err = mapHTTPError(resp.StatusCode(), resp.Body()); err != nil {
		return nil, err
	}

	body := resp.Body()
	if !json.Valid(body) {
		return nil, fmt.Errorf("%w: resource %s is not valid JSON", ErrMalformedResponse, resourceID)
	}

	return json.RawMessage(body), nil
}

// CreateExport implements [ServerAdapter].
func (h *httpServerAdapter) CreateExport(ctx context.Context, spaceID string, req models.ExportRequest) (models.ExportResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, h.requestTimeout)
	defer cancel()

	const path = "/api/{spaceId}/projects/import-export/export"
	params := map[string]string{"spaceId": spaceID}

	h.announce(http.MethodPost, path, params, nil)
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParams(params).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post(path)
	if err != nil {
		return models.ExportResponse{}, fmt.Errorf("create export request: %w", err)
	}

	raw := resp.String()
	if err = mapHTTPError(resp.StatusCode(), resp.Body()); err != nil {
		return models.ExportResponse{Raw: raw}, err
	}

	var out models.ExportResponse
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return models.ExportResponse{Raw: raw}, fmt.Errorf("%w: decode export response: %v", ErrMalformedResponse, err)
	}
	out.Raw = raw
	if strings.TrimSpace(out.TaskID) == "" {
		return out, fmt.Errorf("%w: export response has no TaskId", ErrMalformedResponse)
	}

	return out, nil
}

// ListArtifacts implements [ServerAdapter].
func (h *httpServerAdapter) ListArtifacts(ctx context.Context, spaceID, taskID string) ([]models.Artifact, error) {
	ctx, cancel := context.WithTimeout(ctx, h.requestTimeout)
	defer cancel()

	q, err := query.Values(models.ArtifactQuery{Regarding: taskID})
	if err != nil {
		return nil, fmt.Errorf("encode artifacts query: %w", err)
	}

	const path = "/api/{spaceId}/artifacts"
	params := map[string]string{"spaceId": spaceID}

	h.announce(http.MethodGet, path, params, q)
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParams(params).
		SetQueryParamsFromValues(q).
		Get(path)
	if err != nil {
		return nil, fmt.Errorf("list artifacts request: %w", err)
	}
	if err = mapHTTPError(resp.StatusCode(), resp.Body()); err != nil {
		return nil, err
	}

	var coll models.ArtifactCollection
	if err = json.Unmarshal(resp.Body(), &coll); err != nil {
		return nil, fmt.Errorf("%w: decode artifacts: %v", ErrMalformedResponse, err)
	}

	return coll.Items, nil
}

// OpenArtifactContent implements [ServerAdapter]. The response body is not
// buffered: the returned reader streams it, and closing the reader releases
// the connection and the download timeout.
func (h *httpServerAdapter) OpenArtifactContent(ctx context.Context, spaceID, artifactID string) (io.ReadCloser, error) {
	ctx, cancel := context.WithTimeout(ctx, h.downloadTimeout)

	const path = "/api/{spaceId}/artifacts/{artifactId}/content"
	params := map[string]string{"spaceId": spaceID, "artifactId": artifactID}

	h.announce(http.MethodGet, path, params, nil)
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParams(params).
		SetHeader("Accept", "*/*").
		SetDoNotParseResponse(true).
		Get(path)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("artifact content request: %w", err)
	}

	body := resp.RawBody()
	if resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusMultipleChoices {
		defer cancel()
		var errBody []byte
		if body != nil {
			errBody, _ = io.ReadAll(io.LimitReader(body, maxErrorBody))
			_ = body.Close()
		}
		return nil, fmt.Errorf("artifact %s content: %w", artifactID, mapHTTPError(resp.StatusCode(), errBody))
	}
	if body == nil {
		cancel()
		return nil, fmt.Errorf("%w: artifact %s has no content body", ErrMalformedResponse, artifactID)
	}

	return &cancelOnClose{ReadCloser: body, cancel: cancel}, nil
}

// announce prints the fully expanded request URL to the progress writer.
func (h *httpServerAdapter) announce(method, path string, pathParams map[string]string, q url.Values) {
	for name, value := range pathParams {
		path = strings.ReplaceAll(path, "{"+name+"}", url.PathEscape(value))
	}
	target := h.baseURL + path
	if len(q) > 0 {
		target += "?" + q.Encode()
	}

	fmt.Fprintln(h.progress, method, target)
	h.logger.Debug().Str("method", method).Str("url", target).Msg("outgoing request")
}

type cancelOnClose struct {
	io.ReadCloser
	cancel context.CancelFunc
}

func (c *cancelOnClose) Close() error {
	defer c.cancel()
	return c.ReadCloser.Close()
}

// compile-time interface check
var _ ServerAdapter = (*httpServerAdapter)(nil)
