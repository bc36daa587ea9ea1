// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the JSON file layout.
type StructuredJSONConfig struct {
	Server struct {
		URL             string   `json:"url"`
		APIKey          string   `json:"api_key"`
		RequestTimeout  Duration `json:"request_timeout"`
		DownloadTimeout Duration `json:"download_timeout"`
	} `json:"server,omitempty"`

	Export struct {
		Space            string `json:"space"`
		Password         string `json:"password"`
		ExcludedProjects string `json:"excluded_projects"`
		OutputDir        string `json:"output_dir"`
	} `json:"export,omitempty"`

	Poll struct {
		Attempts int      `json:"attempts"`
		Interval Duration `json:"interval"`
	} `json:"poll,omitempty"`

	Retry struct {
		Attempts int      `json:"attempts"`
		Delay    Duration `json:"delay"`
	} `json:"retry,omitempty"`

	Log struct {
		Format string `json:"format"`
		Level  string `json:"level"`
	} `json:"log,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Server: Server{
			URL:             jsonCfg.Server.URL,
			APIKey:          jsonCfg.Server.APIKey,
			RequestTimeout:  time.Duration(jsonCfg.Server.RequestTimeout),
			DownloadTimeout: time.Duration(jsonCfg.Server.DownloadTimeout),
		},
		Export: Export{
			Space:            jsonCfg.Export.Space,
			Password:         jsonCfg.Export.Password,
			ExcludedProjects: jsonCfg.Export.ExcludedProjects,
			OutputDir:        jsonCfg.Export.OutputDir,
		},
		Poll: Poll{
			Attempts: jsonCfg.Poll.Attempts,
			Interval: time.Duration(jsonCfg.Poll.Interval),
		},
		Retry: Retry{
			Attempts: jsonCfg.Retry.Attempts,
			Delay:    time.Duration(jsonCfg.Retry.Delay),
		},
		Log: Log{
			Format: jsonCfg.Log.Format,
			Level:  jsonCfg.Log.Level,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
