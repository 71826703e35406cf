package agent

import (
	"context"
	"fmt"

	"github.com/rvaz/carteira"
	"github.com/rvaz/carteira/date"
	"github.com/rvaz/carteira/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// Loader gives the experts access to the current portfolio state. Each call
// reloads from disk, so the experts always see the latest transactions.
type Loader func() (*carteira.Portfolio, error)

// creates the facilitator
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skills from the Tools and ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user is a Brazilian dividend investor holding FIIs (real estate funds)
			and REITs traded on B3. He is here primarily for figures about his own
			portfolio: positions, dividend income, what his holdings pay and when.
			Amounts are in BRL.

			Devise a plan of questions to ask each expert and come up with the best
			response to the user's request. The user will assume that you know his
			tickers, check the portfolio first to understand what they are.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewMarketWatcher creates the expert that grounds answers in recent market
// news via Google Search.
func NewMarketWatcher() *Expert {
	return &Expert{
		Name: "MarketWatcher",
		Description: `This is an expert on the Brazilian exchange (B3),
		well aware of the real estate funds (FIIs), their managers and segments,
		and of the latest market news. Ask the MarketWatcher whenever you need
		recent or grounding information about a fund or the market.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert on the Brazilian stock exchange and its listed real
			estate funds. You can search and find anything related to funds,
			managers, segments and markets. You leverage Google Search to ground
			your assertions and you know how to relate the latest news to the
			user's request.
				`}}},
		},
	}
}

// NewAnalyst creates the expert in charge of reading the user's portfolio.
func NewAnalyst(load Loader) *Expert {
	lib := []Function{
		positionsFunc(load),
		incomeFunc(load),
		evolutionFunc(load),
		transactionsFunc(load),
	}

	return &Expert{
		Name: "Analyst",
		Description: `This is the Analyst. He is in charge of reading the user's
		transaction ledger and market data. He can compute the relevant figures
		about the user's holdings: positions, dividend income, portfolio
		evolution and the raw transaction log.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are an analyst in charge of the user's portfolio.
				You know how to use the Tools to extract relevant information about
				the user's holdings and income. You are part of a team of experts;
				yours is everything about the user's own portfolio. Pardon their
				approximative language and figure out what they meant.

				Use the available tools to get information about the user's portfolio:
				  - positions held and their cost basis
				  - dividend income, past and forecast
				  - evolution of invested versus market value
				  - the raw transaction log
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// dateSchema documents the optional date argument shared by the report
// functions.
var dateSchema = &genai.Schema{
	Type:        genai.TypeString,
	Description: "The date on which to compute the report, in YYYY-MM-DD format. Today is the default.",
}

func positionsFunc(load Loader) Function {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Positions",
			Description: `Positions lists every asset held on the given day with quantity,
			average price, latest price, invested amount, market value, gain and
			allocation. Fundamentals (DY, P/VP) show as "-" when unknown.`,
			Parameters: &genai.Schema{
				Type:       genai.TypeObject,
				Properties: map[string]*genai.Schema{"date": dateSchema},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted table of the holdings.",
			},
		},
		Func: report(load, "Positions", func(p *carteira.Portfolio, on date.Date) string {
			return renderer.PositionsMarkdown(p.NewPositionReport(on))
		}),
	}
}

func incomeFunc(load Loader) Function {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Income",
			Description: `Income reports the dividend income: total received, income by
			month and by payer, the trailing monthly average, the annual forecast
			and the yield on cost, as seen on the given day.`,
			Parameters: &genai.Schema{
				Type:       genai.TypeObject,
				Properties: map[string]*genai.Schema{"date": dateSchema},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted dividend income report.",
			},
		},
		Func: report(load, "Income", func(p *carteira.Portfolio, on date.Date) string {
			return renderer.IncomeMarkdown(p.NewIncomeReport(on))
		}),
	}
}

func evolutionFunc(load Loader) Function {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Evolution",
			Description: `Evolution reports the history of invested amount versus market
			value, one row per day with known data.`,
			Parameters: &genai.Schema{Type: genai.TypeObject},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted evolution table.",
			},
		},
		Func: report(load, "Evolution", func(p *carteira.Portfolio, _ date.Date) string {
			return renderer.EvolutionMarkdown(p.NewEvolutionReport())
		}),
	}
}

func transactionsFunc(load Loader) Function {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Transactions",
			Description: `Transactions lists the raw transaction log, oldest first,
			optionally restricted to one ticker.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"ticker": {
						Type:        genai.TypeString,
						Description: "Restrict the log to this B3 ticker (e.g. HGLG11). All tickers by default.",
					},
				},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted table of transactions.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			p, err := load()
			if err != nil {
				return errorResponse(id, "Transactions", err)
			}
			ticker, _ := args["ticker"].(string)
			return &genai.FunctionResponse{
				ID:   id,
				Name: "Transactions",
				Response: map[string]any{
					"output": renderer.TransactionsMarkdown(p.NewTransactionReport(ticker)),
				},
			}
		},
	}
}

// report wraps a renderer into the Func signature, handling the loader and
// the optional date argument.
func report(load Loader, name string, render func(*carteira.Portfolio, date.Date) string) func(context.Context, string, map[string]any) *genai.FunctionResponse {
	return func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
		on, err := parseDateArg(args)
		if err != nil {
			return errorResponse(id, name, err)
		}
		p, err := load()
		if err != nil {
			return errorResponse(id, name, err)
		}
		return &genai.FunctionResponse{
			ID:       id,
			Name:     name,
			Response: map[string]any{"output": render(p, on)},
		}
	}
}

func errorResponse(id, name string, err error) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:       id,
		Name:     name,
		Response: map[string]any{"error": err.Error()},
	}
}

func parseDateArg(args map[string]any) (date.Date, error) {
	idate, hasDate := args["date"]
	if !hasDate {
		return date.Today(), nil
	}
	sdate, ok := idate.(string)
	if !ok {
		return date.Today(), fmt.Errorf("argument 'date' is not a string as expected but %T", idate)
	}
	d, err := date.Parse(sdate)
	if err != nil {
		return date.Today(), fmt.Errorf("argument 'date' must be a YYYY-MM-DD date, got %q", sdate)
	}
	return d, nil
}
