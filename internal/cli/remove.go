package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type removeCmd struct {
	app *App
	id  string
}

func (*removeCmd) Name() string     { return "remove" }
func (*removeCmd) Synopsis() string { return "remove a holding by id" }
func (*removeCmd) Usage() string {
	return `portfolio_cli remove -id <holding id>

  Deletes a holding. Ids are shown by the show command.
`
}

func (c *removeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "holding id")
}

func (c *removeCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" && f.NArg() == 1 {
		c.id = f.Arg(0)
	}
	if c.id == "" {
		fmt.Fprintln(c.app.Err, "Error: -id is required")
		return subcommands.ExitUsageError
	}

	before := len(c.app.Services.Holdings.ListHoldings(ctx))
	if err := c.app.Services.Holdings.RemoveHolding(ctx, c.id); err != nil {
		return c.app.failf("removing holding: %v", err)
	}
	if len(c.app.Services.Holdings.ListHoldings(ctx)) == before {
		fmt.Fprintf(c.app.Out, "No holding with id %s\n", c.id)
		return subcommands.ExitSuccess
	}
	fmt.Fprintf(c.app.Out, "Removed holding %s\n", c.id)
	return subcommands.ExitSuccess
}
