package cli

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/SscSPs/crypto_portfolio_tracker/internal/utils"
	"github.com/google/subcommands"
)

// tokenCmd mints a bearer token for the HTTP API.
type tokenCmd struct {
	app     *App
	subject   string
	expiry    time.Duration
	newSecret bool
}

// secretBytes is the entropy of a generated signing secret.
const secretBytes = 32

func (*tokenCmd) Name() string     { return "token" }
func (*tokenCmd) Synopsis() string { return "mint a bearer token for the HTTP API" }
func (*tokenCmd) Usage() string {
	return `portfolio_cli token [-subject <name>] [-expiry <duration>]
portfolio_cli token -new-secret

  Signs a token with JWT_SECRET for use when AUTH_ENABLED is set on the server.
  With -new-secret, prints a random value suitable for JWT_SECRET instead.
`
}

func (c *tokenCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.subject, "subject", utils.DefaultTokenSubject, "token subject")
	f.DurationVar(&c.expiry, "expiry", 0, "token lifetime (default: JWT_EXPIRY_DURATION)")
	f.BoolVar(&c.newSecret, "new-secret", false, "generate a signing secret")
}

func (c *tokenCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.newSecret {
		secret, err := utils.GenerateSecureRandomString(secretBytes)
		if err != nil {
			return c.app.failf("generating secret: %v", err)
		}
		fmt.Fprintf(c.app.Out, "JWT_SECRET=%s\n", secret)
		return subcommands.ExitSuccess
	}

	expiry := c.expiry
	if expiry <= 0 {
		expiry = c.app.Config.JWTExpiryDuration
	}
	token, err := utils.GenerateJWT(c.subject, c.app.Config.JWTSecret, expiry, c.app.Config.JWTIssuer)
	if err != nil {
		return c.app.failf("generating token: %v", err)
	}
	fmt.Fprintln(c.app.Out, token)
	return subcommands.ExitSuccess
}
