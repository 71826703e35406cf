// Package carteira provides the accounting engine of a personal
// dividend-focused portfolio tracker (REITs and dividend stocks on B3).
//
// The engine is built on a single principle: the transaction log is the only
// source of truth. Every derived figure is recomputed in full from it:
//   - Positions: per-ticker quantity and cost basis using the
//     weighted-average-cost method.
//   - Evolution: a day-by-day time series of invested capital versus market
//     value, replayed over the union of all known price and transaction dates.
//   - Dividend statistics: income attributed to the shares owned on each
//     dividend's ex-date, aggregated by month and by payer, plus
//     forward-looking projections from current yields.
//
// All computations are pure, synchronous functions of the ledger and a market
// data snapshot; they perform no I/O and hold no hidden caches, so editing or
// deleting a transaction can never leave stale derived state behind.
//
// Persistence (JSONL files), the quotes vendor client (package brapi), the AI
// assistant (package agent) and rendering (package renderer) are collaborators
// at the edges; the engine never reaches out to them.
package carteira
