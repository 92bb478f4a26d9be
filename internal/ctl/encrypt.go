package ctl

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/MKhiriev/fin360/internal/crypto"
)

type encryptCmd struct {
	env Env

	value     string
	secretEnv string
}

func (*encryptCmd) Name() string     { return "encrypt" }
func (*encryptCmd) Synopsis() string { return "encrypt a value or a JSON record for storage" }
func (*encryptCmd) Usage() string {
	return `fin360ctl encrypt [-value <text>] [-secret-env <name>] < record.json

  With -value, prints the stored form "<iv>:<ciphertext>" of the text.
  Otherwise reads one JSON document from stdin and prints it with every
  leaf encrypted, keeping its shape.
`
}

func (c *encryptCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.value, "value", "", "Single text value to encrypt instead of reading stdin.")
	f.StringVar(&c.secretEnv, "secret-env", defaultSecretEnv, "Environment variable holding the encryption passphrase.")
}

func (c *encryptCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cipher, err := c.env.cipherFrom(c.secretEnv)
	if err != nil {
		return c.env.fail(c.Name(), err)
	}

	if c.value != "" {
		encrypted, err := cipher.EncryptValue(crypto.String(c.value))
		if err != nil {
			return c.env.fail(c.Name(), err)
		}
		fmt.Fprintln(c.env.Stdout, encrypted)
		return subcommands.ExitSuccess
	}

	record, err := c.env.readValue()
	if err != nil {
		return c.env.fail(c.Name(), err)
	}

	encrypted, err := cipher.EncryptObject(record)
	if err != nil {
		return c.env.fail(c.Name(), err)
	}

	if err = c.env.writeJSON(encrypted); err != nil {
		return c.env.fail(c.Name(), err)
	}
	return subcommands.ExitSuccess
}
