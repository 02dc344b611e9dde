package cli

import (
	"flag"

	"github.com/SscSPs/crypto_portfolio_tracker/internal/core/domain"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion describes the command tree for shell completion. Flags are read
// from each command's SetFlags so the two cannot drift apart.
func Completion(cmds []subcommands.Command) *complete.Command {
	codes := make(predict.Set, len(domain.SupportedCurrencies))
	for i, sc := range domain.SupportedCurrencies {
		codes[i] = sc.Code
	}

	root := &complete.Command{Sub: make(map[string]*complete.Command, len(cmds)+1)}
	names := make(predict.Set, 0, len(cmds))
	for _, cmd := range cmds {
		fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
		cmd.SetFlags(fs)

		sub := &complete.Command{Flags: map[string]complete.Predictor{}}
		fs.VisitAll(func(f *flag.Flag) {
			if bf, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && bf.IsBoolFlag() {
				sub.Flags[f.Name] = predict.Nothing
				return
			}
			if f.Name == "currency" {
				sub.Flags[f.Name] = codes
				return
			}
			sub.Flags[f.Name] = predict.Something
		})
		if cmd.Name() == "currency" {
			sub.Args = codes
		}
		root.Sub[cmd.Name()] = sub
		names = append(names, cmd.Name())
	}
	root.Sub["help"] = &complete.Command{Args: names}
	return root
}
