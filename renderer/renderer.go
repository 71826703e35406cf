// Package renderer turns the portfolio reports into markdown strings.
//
// The layouts live in embedded .md templates next to this file, so tweaking a
// report is a template edit, not a code change.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/rvaz/carteira"
)

//go:embed *.md
var templates embed.FS

// funcs are the formatting helpers available inside every template.
var funcs = template.FuncMap{
	"brl": carteira.BRL,
	"pct": carteira.Percent,
	"qty": formatQuantity,
	"optPct": func(v *float64) string {
		if v == nil {
			return "-"
		}
		return carteira.Percent(*v)
	},
	"optRatio": func(v *float64) string {
		if v == nil {
			return "-"
		}
		return fmt.Sprintf("%.2f", *v)
	},
	"gainOf": func(p carteira.EvolutionPoint) float64 {
		return p.MarketValue - p.Invested
	},
	"nextPayment": func(ev *carteira.DividendEvent) string {
		if ev == nil {
			return "-"
		}
		s := fmt.Sprintf("%s %s", ev.PaymentDate, carteira.BRL(ev.Value))
		if ev.Provisioned {
			s += " (provisioned)"
		}
		return s
	},
	"signed": func(v float64) string {
		if v >= 0 {
			return "+" + carteira.BRL(v)
		}
		return "-" + carteira.BRL(-v)
	},
}

// formatQuantity prints a share count without a trailing ".00" when whole.
func formatQuantity(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

// renderTemplate is a generic utility to render one embedded template file.
func renderTemplate(templateName, file string, data any) string {
	content, err := fs.ReadFile(templates, file)
	if err != nil {
		return fmt.Sprintf("error reading template %q: %v", file, err)
	}
	tmpl, err := template.New(templateName).Funcs(funcs).Parse(string(content))
	if err != nil {
		return fmt.Sprintf("error parsing template %q: %v", file, err)
	}
	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}

// PositionsMarkdown renders the holdings report.
func PositionsMarkdown(r *carteira.PositionReport) string {
	return renderTemplate("positions", "positions.md", r)
}

// EvolutionMarkdown renders the invested-versus-market series.
func EvolutionMarkdown(r *carteira.EvolutionReport) string {
	return renderTemplate("evolution", "evolution.md", r)
}

// IncomeMarkdown renders the dividend income report.
func IncomeMarkdown(r *carteira.IncomeReport) string {
	return renderTemplate("income", "income.md", r)
}

// TransactionsMarkdown renders the transaction log.
func TransactionsMarkdown(r *carteira.TransactionReport) string {
	return renderTemplate("transactions", "transactions.md", r)
}
