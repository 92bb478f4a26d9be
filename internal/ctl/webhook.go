package ctl

import (
	"context"
	"flag"
	"io"
	"strconv"
	"time"

	"github.com/google/subcommands"

	"github.com/MKhiriev/fin360/internal/utils"
)

type webhookCmd struct {
	env Env

	id  string
	now func() time.Time
}

func (*webhookCmd) Name() string     { return "sign-webhook" }
func (*webhookCmd) Synopsis() string { return "sign a user-sync delivery read from stdin" }
func (*webhookCmd) Usage() string {
	return `fin360ctl sign-webhook [-id <message id>] < event.json

  Prints the svix-id, svix-timestamp and svix-signature headers that make
  POST /api/users accept the body, signed with APP_WEBHOOK_SECRET.
`
}

func (c *webhookCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "msg_local", "Message id sent as svix-id.")
}

func (c *webhookCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	key, err := utils.WebhookKey(c.env.Getenv("APP_WEBHOOK_SECRET"))
	if err != nil {
		return c.env.fail(c.Name(), err)
	}

	body, err := io.ReadAll(c.env.Stdin)
	if err != nil {
		return c.env.fail(c.Name(), err)
	}

	now := time.Now
	if c.now != nil {
		now = c.now
	}
	ts := strconv.FormatInt(now().Unix(), 10)

	headers := map[string]string{
		"svix-id":        c.id,
		"svix-timestamp": ts,
		"svix-signature": "v1," + utils.SignWebhook(key, c.id, ts, body),
	}
	if err = c.env.writeJSON(headers); err != nil {
		return c.env.fail(c.Name(), err)
	}
	return subcommands.ExitSuccess
}
