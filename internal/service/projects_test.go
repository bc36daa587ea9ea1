// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/octo-exporter/internal/adapter"
	"github.com/MKhiriev/octo-exporter/internal/logger"
	"github.com/MKhiriev/octo-exporter/internal/mock"
	"github.com/MKhiriev/octo-exporter/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestProjects(t *testing.T) (ProjectService, *mock.MockServerAdapter) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	return NewProjectService(mockAdapter, fastPolicy(), logger.Nop()), mockAdapter
}

func TestProjectService_ListProjects_PreservesOrder(t *testing.T) {
	svc, mockAdapter := newTestProjects(t)
	projects := []models.Resource{
		{ID: "Projects-3", Name: "Worker"},
		{ID: "Projects-1", Name: "Web"},
		{ID: "Projects-2", Name: "Legacy"},
	}

	mockAdapter.EXPECT().ListProjects(gomock.Any(), "Spaces-12").Return(projects, nil)

	got, err := svc.ListProjects(context.Background(), models.Found("Spaces-12"))

	require.NoError(t, err)
	assert.Equal(t, projects, got)
}

func TestProjectService_ListProjects_AbsentSpace(t *testing.T) {
	svc, _ := newTestProjects(t)

	got, err := svc.ListProjects(context.Background(), models.NotFound())

	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestProjectService_ListProjects_EmptySpace(t *testing.T) {
	svc, mockAdapter := newTestProjects(t)

	mockAdapter.EXPECT().ListProjects(gomock.Any(), "Spaces-12").Return([]models.Resource{}, nil)

	got, err := svc.ListProjects(context.Background(), models.Found("Spaces-12"))

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestProjectService_ListProjects_Error(t *testing.T) {
	svc, mockAdapter := newTestProjects(t)

	mockAdapter.EXPECT().
		ListProjects(gomock.Any(), "Spaces-12").
		Return(nil, adapter.ErrForbidden).
		Times(3)

	got, err := svc.ListProjects(context.Background(), models.Found("Spaces-12"))

	assert.ErrorIs(t, err, adapter.ErrForbidden)
	assert.Nil(t, got)
}

func TestProjectService_ListProjects_ProjectWithoutID(t *testing.T) {
	svc, mockAdapter := newTestProjects(t)

	mockAdapter.EXPECT().
		ListProjects(gomock.Any(), "Spaces-12").
		Return([]models.Resource{{ID: "Projects-1", Name: "Web"}, {Name: "Ghost"}}, nil)

	_, err := svc.ListProjects(context.Background(), models.Found("Spaces-12"))

	assert.ErrorIs(t, err, adapter.ErrMalformedResponse)
	assert.Contains(t, err.Error(), "index 1")
}
