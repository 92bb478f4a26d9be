// Package config provides configuration loading, merging, and validation
// facilities for the fin360 server and tools.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. .env files (.env.<APP_ENV>.local, .env.<APP_ENV>, .env.local, .env)
//  2. Environment variables
//  3. Command-line flags
//  4. JSON config file
//
// The main entry point is [GetStructuredConfig]. Invalid configurations are
// reported as [*ConfigurationError] so the server can refuse to start.
package config
