package ctl

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/google/subcommands"

	"github.com/MKhiriev/fin360/internal/utils"
)

const defaultIssuer = "fin360"

type tokenCmd struct {
	env Env

	user string
	ttl  time.Duration
}

func (*tokenCmd) Name() string     { return "token" }
func (*tokenCmd) Synopsis() string { return "mint a bearer token for local development" }
func (*tokenCmd) Usage() string {
	return `fin360ctl token -user <id> [-ttl <duration>]

  Signs an HS256 token for the internal user id with APP_TOKEN_SIGN_KEY.
  The issuer is APP_TOKEN_ISSUER, or "fin360" when unset.
`
}

func (c *tokenCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.user, "user", "", "Internal user id placed in the subject claim.")
	f.DurationVar(&c.ttl, "ttl", time.Hour, "Token lifetime.")
}

func (c *tokenCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.user == "" {
		return c.env.fail(c.Name(), errors.New("-user is required"))
	}

	signKey := c.env.Getenv("APP_TOKEN_SIGN_KEY")
	if signKey == "" {
		return c.env.fail(c.Name(), errors.New("APP_TOKEN_SIGN_KEY is not set"))
	}
	issuer := c.env.Getenv("APP_TOKEN_ISSUER")
	if issuer == "" {
		issuer = defaultIssuer
	}

	token, err := utils.GenerateJWTToken(issuer, c.user, c.ttl, signKey)
	if err != nil {
		return c.env.fail(c.Name(), err)
	}

	fmt.Fprintln(c.env.Stdout, token.SignedString)
	return subcommands.ExitSuccess
}
