// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJSON_AllFields(t *testing.T) {
	path := writeTempFile(t, `{
		"server": {"url": "https://octopus", "api_key": "K", "request_timeout": "20s", "download_timeout": "3m"},
		"export": {"space": "Prod", "password": "p", "excluded_projects": "Projects-9", "output_dir": "dl"},
		"poll": {"attempts": 12, "interval": "5s"},
		"retry": {"attempts": 5, "delay": "1s"},
		"log": {"format": "json", "level": "error"}
	}`)

	cfg, err := parseJSON(path)

	require.NoError(t, err)
	assert.Equal(t, Server{URL: "https://octopus", APIKey: "K", RequestTimeout: 20 * time.Second, DownloadTimeout: 3 * time.Minute}, cfg.Server)
	assert.Equal(t, Export{Space: "Prod", Password: "p", ExcludedProjects: "Projects-9", OutputDir: "dl"}, cfg.Export)
	assert.Equal(t, Poll{Attempts: 12, Interval: 5 * time.Second}, cfg.Poll)
	assert.Equal(t, Retry{Attempts: 5, Delay: time.Second}, cfg.Retry)
	assert.Equal(t, Log{Format: "json", Level: "error"}, cfg.Log)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_Malformed(t *testing.T) {
	_, err := parseJSON(writeTempFile(t, `{"server": `))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{name: "string", input: `"1m30s"`, want: 90 * time.Second},
		{name: "nanoseconds", input: `1000000`, want: time.Millisecond},
		{name: "bad string", input: `"later"`, wantErr: true},
		{name: "bool", input: `true`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(Duration(10 * time.Second))
	require.NoError(t, err)
	assert.Equal(t, `"10s"`, string(b))
}
