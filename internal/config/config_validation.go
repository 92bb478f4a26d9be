// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net/url"
	"time"
)

// Deployment environments.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTest        = "test"

	defaultEnv = EnvDevelopment
)

// Storage drivers accepted by Storage.Driver.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverMongo    = "mongo"
)

const (
	defaultMongoDatabase  = "Fin360DB"
	defaultAdapterTimeout = 30 * time.Second
	defaultGeminiModel    = "gemini-2.0-flash"

	// testCryptoSecret is substituted for an empty secret in the test
	// environment only. Data written with it must never reach production.
	testCryptoSecret = "fin360-insecure-test-only-secret"
)

// applyDefaults fills fields that have a sensible fallback.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.Env == "" {
		cfg.App.Env = defaultEnv
	}
	if cfg.Storage.Driver == "" {
		cfg.Storage.Driver = DriverPostgres
	}
	if cfg.Storage.Mongo.Database == "" {
		cfg.Storage.Mongo.Database = defaultMongoDatabase
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = defaultAdapterTimeout
	}
	if cfg.Adapter.GeminiModel == "" {
		cfg.Adapter.GeminiModel = defaultGeminiModel
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// startup invariants. The first violation is returned as a
// [*ConfigurationError].
//
// An empty encryption secret is fatal except in the test environment, where
// a fixed test-only secret is used and a warning is recorded.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.CryptoSecret == "" {
		if cfg.App.Env != EnvTest {
			return &ConfigurationError{
				Field:  "App.CryptoSecret",
				Reason: "encryption secret is required (set APP_CRYPTO_SECRET)",
			}
		}
		cfg.App.CryptoSecret = testCryptoSecret
		cfg.warnings = append(cfg.warnings,
			"APP_CRYPTO_SECRET is empty; using the built-in test secret")
	}

	switch cfg.Storage.Driver {
	case DriverPostgres, DriverSQLite:
		if cfg.Storage.DB.DSN == "" {
			return &ConfigurationError{
				Field:  "Storage.DB.DSN",
				Reason: "database DSN is required for driver " + cfg.Storage.Driver,
			}
		}
	case DriverMongo:
		if cfg.Storage.Mongo.URI == "" {
			return &ConfigurationError{
				Field:  "Storage.Mongo.URI",
				Reason: "connection string is required for driver mongo",
			}
		}
	default:
		return &ConfigurationError{
			Field:  "Storage.Driver",
			Reason: "unknown storage driver " + cfg.Storage.Driver,
		}
	}

	if cfg.Server.HTTPAddress == "" && cfg.Server.GRPCAddress == "" {
		return &ConfigurationError{
			Field:  "Server",
			Reason: "at least one of HTTP or gRPC address must be set",
		}
	}

	if cfg.Adapter.AIAddress != "" {
		if u, err := url.Parse(cfg.Adapter.AIAddress); err != nil || u.Scheme == "" || u.Host == "" {
			return &ConfigurationError{
				Field:  "Adapter.AIAddress",
				Reason: "must be an absolute URL",
			}
		}
	}

	if cfg.App.TokenSignKey == "" {
		cfg.warnings = append(cfg.warnings,
			"APP_TOKEN_SIGN_KEY is empty; authenticated routes will reject every request")
	}

	return nil
}
