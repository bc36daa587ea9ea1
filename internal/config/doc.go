// Package config provides configuration loading, merging, and validation
// facilities for the exporter.
//
// Configuration is assembled from multiple sources. Later sources override
// earlier non-zero fields:
//  1. Built-in defaults
//  2. JSON config file (path taken from CONFIG or -c / -config)
//  3. Environment variables
//  4. Command-line flags
//
// The main entry point is [GetExporterConfig], which returns the validated
// view consumed by the exporter.
package config
