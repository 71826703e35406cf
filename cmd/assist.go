package cmd

import (
	"context"
	"flag"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/rvaz/carteira/agent"
	"google.golang.org/genai"
)

type assistCmd struct{}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "start an interactive session with the AI assistant" }
func (*assistCmd) Usage() string {
	return `carteira assist [initial question]

  Starts an interactive session with the AI assistant. The assistant can
  read the portfolio (positions, income, evolution) and search the web for
  market news. Requires Gemini credentials in the environment.

`
}

func (*assistCmd) SetFlags(_ *flag.FlagSet) {}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	initialPrompt := ""
	if f.NArg() > 0 {
		initialPrompt = strings.Join(f.Args(), " ")
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return fail(err)
	}

	watcher := agent.NewMarketWatcher()
	analyst := agent.NewAnalyst(LoadPortfolio)
	a := agent.New(os.Stdout, os.Stdin, watcher, analyst)

	if err := a.Run(ctx, client, initialPrompt); err != nil {
		return fail(err)
	}
	return subcommands.ExitSuccess
}
