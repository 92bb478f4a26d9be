// Package ctl implements the fin360ctl subcommands: operator tools that
// encrypt and decrypt stored fields, mint development tokens and sign
// webhook deliveries for local testing.
package ctl

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"

	"github.com/MKhiriev/fin360/internal/crypto"
	"github.com/MKhiriev/fin360/internal/logger"
)

const defaultSecretEnv = "APP_CRYPTO_SECRET"

// Env is the process surface the commands run against.
type Env struct {
	Stdin  io.Reader
	Stdout io.Writer
	Getenv func(string) string
	Logger *logger.Logger
}

// OSEnv returns an Env bound to the running process.
func OSEnv() Env {
	return Env{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Getenv: os.Getenv,
		Logger: logger.NewConsoleLogger("fin360ctl", os.Stderr),
	}
}

// Commands returns every fin360ctl subcommand.
func Commands(env Env) []subcommands.Command {
	return []subcommands.Command{
		&encryptCmd{env: env},
		&decryptCmd{env: env},
		&tokenCmd{env: env},
		&webhookCmd{env: env},
		&versionCmd{env: env},
	}
}

// cipherFrom builds the field cipher from the passphrase held in the
// environment variable secretEnv.
func (e Env) cipherFrom(secretEnv string) (*crypto.FieldCipher, error) {
	c, err := crypto.NewFieldCipher(e.Getenv(secretEnv))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", secretEnv, err)
	}
	return c, nil
}

// readValue decodes one JSON document from stdin.
func (e Env) readValue() (crypto.Value, error) {
	raw, err := io.ReadAll(e.Stdin)
	if err != nil {
		return crypto.Value{}, fmt.Errorf("reading stdin: %w", err)
	}

	var v crypto.Value
	if err = json.Unmarshal(raw, &v); err != nil {
		return crypto.Value{}, fmt.Errorf("decoding stdin: %w", err)
	}
	return v, nil
}

func (e Env) writeJSON(v any) error {
	enc := json.NewEncoder(e.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// fail logs err and maps it to the exit status of a failed command.
func (e Env) fail(cmd string, err error) subcommands.ExitStatus {
	e.Logger.Error().Str("cmd", cmd).Err(err).Send()
	return subcommands.ExitFailure
}
