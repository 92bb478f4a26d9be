package ctl

import (
	"context"
	"flag"

	"github.com/PaesslerAG/jsonpath"
	"github.com/google/subcommands"

	"github.com/MKhiriev/fin360/internal/crypto"
)

type decryptCmd struct {
	env Env

	value     string
	path      string
	secretEnv string
}

func (*decryptCmd) Name() string     { return "decrypt" }
func (*decryptCmd) Synopsis() string { return "decrypt a stored value or record" }
func (*decryptCmd) Usage() string {
	return `fin360ctl decrypt [-value <iv:ct>] [-path <jsonpath>] [-secret-env <name>] < record.json

  With -value, decrypts one stored field. Otherwise reads a stored record
  from stdin and prints it decrypted. -path selects part of the result,
  e.g. "$.address.city" or "$[*].ticker".
`
}

func (c *decryptCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.value, "value", "", "Single stored value to decrypt instead of reading stdin.")
	f.StringVar(&c.path, "path", "", "JSONPath applied to the decrypted result.")
	f.StringVar(&c.secretEnv, "secret-env", defaultSecretEnv, "Environment variable holding the encryption passphrase.")
}

func (c *decryptCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cipher, err := c.env.cipherFrom(c.secretEnv)
	if err != nil {
		return c.env.fail(c.Name(), err)
	}

	var decrypted crypto.Value
	if c.value != "" {
		decrypted, err = cipher.DecryptValue(c.value)
	} else {
		var record crypto.Value
		if record, err = c.env.readValue(); err == nil {
			decrypted, err = cipher.DecryptObject(record)
		}
	}
	if err != nil {
		return c.env.fail(c.Name(), err)
	}

	out := decrypted.Any()
	if c.path != "" {
		if out, err = jsonpath.Get(c.path, out); err != nil {
			return c.env.fail(c.Name(), err)
		}
	}

	if err = c.env.writeJSON(out); err != nil {
		return c.env.fail(c.Name(), err)
	}
	return subcommands.ExitSuccess
}
