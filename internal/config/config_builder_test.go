package config

import (
	"encoding/json"
	"errors"
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// validConfig returns the smallest config that passes validation.
func validConfig() *StructuredConfig {
	return &StructuredConfig{
		App:     App{CryptoSecret: "passphrase"},
		Storage: Storage{Driver: DriverPostgres, DB: DB{DSN: "postgres://localhost/fin360"}},
		Server:  Server{HTTPAddress: "localhost:8080"},
	}
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilderFailsValidation(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	assert.Nil(t, cfg)

	var cfgErr *ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "App.CryptoSecret", cfgErr.Field)
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterSourceWins verifies that a non-zero value from a later
// source overrides the same field from an earlier one, while zero values
// never erase what is already set.
func TestBuild_LaterSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		validConfig(),
		&StructuredConfig{App: App{Version: "1.0.0", TokenIssuer: "env-issuer"}},
		&StructuredConfig{App: App{TokenIssuer: "json-issuer"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "json-issuer", cfg.App.TokenIssuer)
	assert.Equal(t, "passphrase", cfg.App.CryptoSecret)
}

func TestBuild_AppliesDefaults(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, validConfig())

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, EnvDevelopment, cfg.App.Env)
	assert.Equal(t, "Fin360DB", cfg.Storage.Mongo.Database)
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "gemini-2.0-flash", cfg.Adapter.GeminiModel)
}

// ── withEnv / withFlagSet / withJSON ─────────────────────────────────────────

func TestWithEnv_AppendsConfig(t *testing.T) {
	setEnvVars(t, map[string]string{"APP_VERSION": "3.0.0"})

	b := newConfigBuilder().withEnv()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "3.0.0", b.configs[0].App.Version)
}

func TestWithEnv_InvalidValueSetsError(t *testing.T) {
	setEnvVars(t, map[string]string{"SERVER_REQUEST_TIMEOUT": "bad"})

	b := newConfigBuilder().withEnv()
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

func TestWithFlagSet_InvalidFlagSetsError(t *testing.T) {
	fs := flag.NewFlagSet("fin360", flag.ContinueOnError)
	fs.SetOutput(discard{})

	b := newConfigBuilder().withFlagSet(fs, []string{"-a", "nope"})
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

func TestWithJSON_UsesLastSpecifiedPath(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app": map[string]any{"version": "from-json"},
	})

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: "/does/not/exist.json"},
		&StructuredConfig{JSONFilePath: path},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "from-json", b.configs[2].App.Version)
}

func TestWithJSON_NoPathIsNoop(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	require.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_MissingFileSetsError(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: filepath.Join(t.TempDir(), "nope.json")})
	b.withJSON()

	assert.Error(t, b.err)
}

// TestBuilder_FullChain runs every source in order: .env, env, flags, JSON.
func TestBuilder_FullChain(t *testing.T) {
	clearEnvVars(t)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"),
		[]byte("APP_CRYPTO_SECRET=dotenv-secret\nSTORAGE_DB_DATABASE_URI=postgres://dotenv/db\n"), 0o600))

	jsonPath := writeTempJSONConfig(t, map[string]any{
		"server": map[string]any{"grpc_address": "localhost:9090"},
	})

	fs := flag.NewFlagSet("fin360", flag.ContinueOnError)
	cfg, err := newConfigBuilder().
		withDotEnv(dir).
		withEnv().
		withFlagSet(fs, []string{"-a", "localhost:8080", "-c", jsonPath}).
		withJSON().
		build()

	require.NoError(t, err)
	assert.Equal(t, "dotenv-secret", cfg.App.CryptoSecret)
	assert.Equal(t, "postgres://dotenv/db", cfg.Storage.DB.DSN)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, "localhost:9090", cfg.Server.GRPCAddress)
	assert.Len(t, cfg.Warnings(), 1, "only the missing sign key is reported")
}

// ── validate ──────────────────────────────────────────────────────────────────

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(cfg *StructuredConfig)
		wantField string
	}{
		{name: "valid", mutate: func(*StructuredConfig) {}},
		{
			name:      "missing secret in production",
			mutate:    func(cfg *StructuredConfig) { cfg.App.CryptoSecret = ""; cfg.App.Env = EnvProduction },
			wantField: "App.CryptoSecret",
		},
		{
			name:      "missing secret in development",
			mutate:    func(cfg *StructuredConfig) { cfg.App.CryptoSecret = ""; cfg.App.Env = EnvDevelopment },
			wantField: "App.CryptoSecret",
		},
		{
			name:      "unknown driver",
			mutate:    func(cfg *StructuredConfig) { cfg.Storage.Driver = "redis" },
			wantField: "Storage.Driver",
		},
		{
			name:      "sqlite without dsn",
			mutate:    func(cfg *StructuredConfig) { cfg.Storage.Driver = DriverSQLite; cfg.Storage.DB.DSN = "" },
			wantField: "Storage.DB.DSN",
		},
		{
			name:      "mongo without uri",
			mutate:    func(cfg *StructuredConfig) { cfg.Storage.Driver = DriverMongo },
			wantField: "Storage.Mongo.URI",
		},
		{
			name: "mongo with uri",
			mutate: func(cfg *StructuredConfig) {
				cfg.Storage.Driver = DriverMongo
				cfg.Storage.DB.DSN = ""
				cfg.Storage.Mongo.URI = "mongodb://localhost:27017"
			},
		},
		{
			name:      "no listeners",
			mutate:    func(cfg *StructuredConfig) { cfg.Server.HTTPAddress = "" },
			wantField: "Server",
		},
		{
			name:   "grpc only",
			mutate: func(cfg *StructuredConfig) { cfg.Server.HTTPAddress = ""; cfg.Server.GRPCAddress = ":9090" },
		},
		{
			name:      "relative ai address",
			mutate:    func(cfg *StructuredConfig) { cfg.Adapter.AIAddress = "localhost:5000" },
			wantField: "Adapter.AIAddress",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantField == "" {
				require.NoError(t, err)
				return
			}

			var cfgErr *ConfigurationError
			require.True(t, errors.As(err, &cfgErr), "got %v", err)
			assert.Equal(t, tt.wantField, cfgErr.Field)
			assert.NotEmpty(t, cfgErr.Reason)
		})
	}
}

func TestValidate_TestEnvUsesTestSecret(t *testing.T) {
	cfg := validConfig()
	cfg.App.Env = EnvTest
	cfg.App.CryptoSecret = ""
	cfg.App.TokenSignKey = "sign"

	require.NoError(t, cfg.validate())
	assert.Equal(t, testCryptoSecret, cfg.App.CryptoSecret)
	require.Len(t, cfg.Warnings(), 1)
	assert.Contains(t, cfg.Warnings()[0], "APP_CRYPTO_SECRET")
}

func TestValidate_WarnsOnMissingSignKey(t *testing.T) {
	cfg := validConfig()

	require.NoError(t, cfg.validate())
	require.Len(t, cfg.Warnings(), 1)
	assert.Contains(t, cfg.Warnings()[0], "APP_TOKEN_SIGN_KEY")
}

func TestConfigurationError_Error(t *testing.T) {
	err := &ConfigurationError{Field: "App.CryptoSecret", Reason: "required"}
	assert.Equal(t, "invalid configuration: App.CryptoSecret: required", err.Error())
}
