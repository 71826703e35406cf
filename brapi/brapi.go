// Package brapi fetches B3 quotes, price history and dividend calendars from
// the brapi.dev API and applies them to the market data snapshots.
//
// brapi is the primary vendor: one quote request per ticker returns the
// latest price, the fundamentals and the cash dividend calendar in a single
// payload. Requests are cached on disk for a day, so repeated report runs do
// not hammer the API.
package brapi

import (
	"fmt"
	"os"
)

const baseURL = "https://brapi.dev/api"

// TokenEnvVar is the environment variable holding the brapi.dev API token
// when none is given on the command line.
const TokenEnvVar = "BRAPI_TOKEN"

// Token resolves the API token: the explicit value wins, else the
// environment.
func Token(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if tok := os.Getenv(TokenEnvVar); tok != "" {
		return tok, nil
	}
	return "", fmt.Errorf("no brapi.dev token: pass one or set %s", TokenEnvVar)
}
