// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/MKhiriev/octo-exporter/internal/adapter"
	"github.com/MKhiriev/octo-exporter/internal/logger"
	"github.com/MKhiriev/octo-exporter/internal/mock"
	"github.com/MKhiriev/octo-exporter/internal/retry"
	"github.com/MKhiriev/octo-exporter/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// fastPolicy keeps the retry semantics but not the two-second pauses.
func fastPolicy() retry.Policy {
	return retry.NewPolicy(retry.DefaultMaxAttempts, time.Millisecond)
}

func newTestResolver(t *testing.T) (ResolverService, *mock.MockServerAdapter) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	return NewResolverService(mockAdapter, fastPolicy(), logger.Nop()), mockAdapter
}

// ── ResolveSpace ─────────────────────────────────────────────────────────────

func TestResolverService_ResolveSpace_ExactMatch(t *testing.T) {
	svc, mockAdapter := newTestResolver(t)

	mockAdapter.EXPECT().
		ListSpaces(gomock.Any(), "Prod").
		Return([]models.Resource{
			{ID: "Spaces-11", Name: "Production"},
			{ID: "Spaces-12", Name: "Prod"},
		}, nil)

	got, err := svc.ResolveSpace(context.Background(), "Prod")

	require.NoError(t, err)
	assert.Equal(t, models.Found("Spaces-12"), got)
}

func TestResolverService_ResolveSpace_TrimsName(t *testing.T) {
	svc, mockAdapter := newTestResolver(t)

	mockAdapter.EXPECT().
		ListSpaces(gomock.Any(), "Prod").
		Return([]models.Resource{{ID: "Spaces-12", Name: "Prod"}}, nil)

	got, err := svc.ResolveSpace(context.Background(), "  Prod \t")

	require.NoError(t, err)
	assert.Equal(t, models.Found("Spaces-12"), got)
}

func TestResolverService_ResolveSpace_FirstOfDuplicatesWins(t *testing.T) {
	svc, mockAdapter := newTestResolver(t)

	mockAdapter.EXPECT().
		ListSpaces(gomock.Any(), "Prod").
		Return([]models.Resource{
			{ID: "Spaces-3", Name: "Prod"},
			{ID: "Spaces-4", Name: "Prod"},
		}, nil)

	got, err := svc.ResolveSpace(context.Background(), "Prod")

	require.NoError(t, err)
	assert.Equal(t, "Spaces-3", got.ID)
}

// сервер фильтрует по подстроке, поэтому частичные совпадения не считаются
func TestResolverService_ResolveSpace_PartialMatchIsNotFound(t *testing.T) {
	svc, mockAdapter := newTestResolver(t)

	mockAdapter.EXPECT().
		ListSpaces(gomock.Any(), "Prod").
		Return([]models.Resource{
			{ID: "Spaces-11", Name: "Production"},
			{ID: "Spaces-13", Name: "prod"},
		}, nil)

	got, err := svc.ResolveSpace(context.Background(), "Prod")

	require.NoError(t, err)
	assert.False(t, got.Found)
}

func TestResolverService_ResolveSpace_EmptyListing(t *testing.T) {
	svc, mockAdapter := newTestResolver(t)

	mockAdapter.EXPECT().ListSpaces(gomock.Any(), "Missing").Return(nil, nil)

	got, err := svc.ResolveSpace(context.Background(), "Missing")

	require.NoError(t, err)
	assert.Equal(t, models.NotFound(), got)
}

func TestResolverService_ResolveSpace_EmptyNameSkipsRequest(t *testing.T) {
	svc, _ := newTestResolver(t)

	got, err := svc.ResolveSpace(context.Background(), "   ")

	require.NoError(t, err)
	assert.False(t, got.Found)
}

func TestResolverService_ResolveSpace_RetriesTransientFailure(t *testing.T) {
	svc, mockAdapter := newTestResolver(t)

	gomock.InOrder(
		mockAdapter.EXPECT().ListSpaces(gomock.Any(), "Prod").Return(nil, adapter.ErrServiceUnavailable),
		mockAdapter.EXPECT().ListSpaces(gomock.Any(), "Prod").Return(nil, errors.New("connection reset")),
		mockAdapter.EXPECT().ListSpaces(gomock.Any(), "Prod").
			Return([]models.Resource{{ID: "Spaces-12", Name: "Prod"}}, nil),
	)

	got, err := svc.ResolveSpace(context.Background(), "Prod")

	require.NoError(t, err)
	assert.Equal(t, models.Found("Spaces-12"), got)
}

func TestResolverService_ResolveSpace_GivesUpAfterThreeAttempts(t *testing.T) {
	svc, mockAdapter := newTestResolver(t)

	mockAdapter.EXPECT().
		ListSpaces(gomock.Any(), "Prod").
		Return(nil, adapter.ErrInternalServerError).
		Times(3)

	got, err := svc.ResolveSpace(context.Background(), "Prod")

	require.Error(t, err)
	assert.ErrorIs(t, err, adapter.ErrInternalServerError)
	assert.False(t, got.Found)
}

func TestResolverService_ResolveSpace_MalformedIsNotRetried(t *testing.T) {
	svc, mockAdapter := newTestResolver(t)

	mockAdapter.EXPECT().
		ListSpaces(gomock.Any(), "Prod").
		Return(nil, fmt.Errorf("%w: decode spaces", adapter.ErrMalformedResponse)).
		Times(1)

	_, err := svc.ResolveSpace(context.Background(), "Prod")

	assert.ErrorIs(t, err, adapter.ErrMalformedResponse)
}

// ── ResolveResource ──────────────────────────────────────────────────────────

func TestResolverService_ResolveResource_ExactMatch(t *testing.T) {
	svc, mockAdapter := newTestResolver(t)

	mockAdapter.EXPECT().
		ListResources(gomock.Any(), "Spaces-12", models.ResourceTypeEnvironments, "Staging").
		Return([]models.Resource{
			{ID: "Environments-1", Name: "Staging-EU"},
			{ID: "Environments-2", Name: "Staging"},
		}, nil)

	got, err := svc.ResolveResource(context.Background(), models.Found("Spaces-12"), models.ResourceTypeEnvironments, "Staging")

	require.NoError(t, err)
	assert.Equal(t, models.Found("Environments-2"), got)
}

func TestResolverService_ResolveResource_AbsentSpaceSkipsRequest(t *testing.T) {
	svc, _ := newTestResolver(t)

	got, err := svc.ResolveResource(context.Background(), models.NotFound(), models.ResourceTypeEnvironments, "Staging")

	require.NoError(t, err)
	assert.False(t, got.Found)
}

func TestResolverService_ResolveResource_NotFound(t *testing.T) {
	var logs bytes.Buffer
	mockAdapter := mock.NewMockServerAdapter(gomock.NewController(t))
	svc := NewResolverService(mockAdapter, fastPolicy(), logger.NewLogger("test", &logs))

	mockAdapter.EXPECT().
		ListResources(gomock.Any(), "Spaces-12", models.ResourceTypeTenants, "Acme").
		Return([]models.Resource{}, nil)

	got, err := svc.ResolveResource(context.Background(), models.Found("Spaces-12"), models.ResourceTypeTenants, "Acme")

	require.NoError(t, err)
	assert.False(t, got.Found)
	assert.Contains(t, logs.String(), "The resource called Acme could not be found in space Spaces-12.")
	assert.Contains(t, logs.String(), `"type":"`+models.ResourceTypeTenants+`"`)
}

func TestResolverService_ResolveResource_Error(t *testing.T) {
	svc, mockAdapter := newTestResolver(t)

	mockAdapter.EXPECT().
		ListResources(gomock.Any(), "Spaces-12", models.ResourceTypeTenants, "Acme").
		Return(nil, adapter.ErrUnauthorized).
		Times(3)

	_, err := svc.ResolveResource(context.Background(), models.Found("Spaces-12"), models.ResourceTypeTenants, "Acme")

	assert.ErrorIs(t, err, adapter.ErrUnauthorized)
}

// ── GetResource ──────────────────────────────────────────────────────────────

func TestResolverService_GetResource_Success(t *testing.T) {
	svc, mockAdapter := newTestResolver(t)
	doc := json.RawMessage(`{"Id":"Projects-1","Name":"Web"}`)

	mockAdapter.EXPECT().
		GetResource(gomock.Any(), "Spaces-12", models.ResourceTypeProjects, "Projects-1").
		Return(doc, nil)

	got, err := svc.GetResource(context.Background(), models.Found("Spaces-12"), models.ResourceTypeProjects, "Projects-1")

	require.NoError(t, err)
	assert.JSONEq(t, string(doc), string(got))
}

func TestResolverService_GetResource_AbsentSpace(t *testing.T) {
	svc, _ := newTestResolver(t)

	got, err := svc.GetResource(context.Background(), models.NotFound(), models.ResourceTypeProjects, "Projects-1")

	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestResolverService_GetResource_NotFoundIsRetriedThenReturned(t *testing.T) {
	svc, mockAdapter := newTestResolver(t)

	mockAdapter.EXPECT().
		GetResource(gomock.Any(), "Spaces-12", models.ResourceTypeProjects, "Projects-9").
		Return(nil, adapter.ErrNotFound).
		Times(3)

	_, err := svc.GetResource(context.Background(), models.Found("Spaces-12"), models.ResourceTypeProjects, "Projects-9")

	assert.ErrorIs(t, err, adapter.ErrNotFound)
}

func TestResolverService_ResolveSpace_MatchWithoutID(t *testing.T) {
	svc, mockAdapter := newTestResolver(t)

	mockAdapter.EXPECT().
		ListSpaces(gomock.Any(), "Prod").
		Return([]models.Resource{{ID: "", Name: "Prod"}}, nil)

	got, err := svc.ResolveSpace(context.Background(), "Prod")

	assert.ErrorIs(t, err, adapter.ErrMalformedResponse)
	assert.False(t, got.Found)
}
