// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helpers used across the exporter:
// HTTP client initialisation and run identifier generation.
package utils

import (
	"github.com/go-resty/resty/v2"
)

// APIKeyHeader is the header carrying the static API key on every request.
const APIKeyHeader = "X-Octopus-ApiKey"

// maxRedirects bounds the redirect chain followed when fetching artifact content.
const maxRedirects = 10

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient("https://octopus.example.com", apiKey)
//	resp, err := client.R().Get("/api/spaces")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an HTTPClient bound to baseURL that sends apiKey in
// the [APIKeyHeader] header of every request and follows up to ten redirects.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient(baseURL, apiKey string) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader(APIKeyHeader, apiKey).
		SetHeader("Accept", "application/json").
		SetRedirectPolicy(resty.FlexibleRedirectPolicy(maxRedirects))

	return &HTTPClient{Client: client}
}
