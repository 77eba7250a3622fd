package exchangerate

import (
	"context"
	"fmt"
	"strings"

	"trip_planner/internal/adapters/httpc"
	"trip_planner/internal/domain"
)

const defaultBase = "https://v6.exchangerate-api.com/v6"

// fallbackRates keeps conversions working when the provider is
// unreachable or unconfigured. Refreshed by hand now and then.
var fallbackRates = map[string]map[string]float64{
	"USD": {"INR": 83.15, "EUR": 0.92, "GBP": 0.79, "JPY": 149.85, "AUD": 1.52, "CAD": 1.35, "CHF": 0.88, "CNY": 7.23},
	"INR": {"USD": 0.012, "EUR": 0.011, "GBP": 0.0095, "JPY": 1.80, "AUD": 0.018, "CAD": 0.016, "CHF": 0.011, "CNY": 0.087},
	"EUR": {"USD": 1.09, "INR": 90.38, "GBP": 0.86, "JPY": 162.88, "AUD": 1.65, "CAD": 1.47, "CHF": 0.96, "CNY": 7.86},
}

type Client struct {
	c    *httpc.Client
	base string
	key  string
}

// New builds the client. An empty key is allowed; every lookup then
// serves the static fallback table.
func New(base, key string, rps int) *Client {
	if base == "" {
		base = defaultBase
	}
	return &Client{c: httpc.New("exchangerate", rps), base: base, key: key}
}

type latestResp struct {
	Result          string             `json:"result"`
	BaseCode        string             `json:"base_code"`
	TimeLastUpdate  string             `json:"time_last_update_utc"`
	ConversionRates map[string]float64 `json:"conversion_rates"`
}

// Rates returns live rates for the base currency, degrading to the
// static table on any provider failure.
func (c *Client) Rates(ctx context.Context, base string) (domain.RateTable, error) {
	base = strings.ToUpper(strings.TrimSpace(base))
	if base == "" {
		base = "INR"
	}
	if c.key == "" {
		return Fallback(base), nil
	}

	u := fmt.Sprintf("%s/%s/latest/%s", c.base, c.key, base)
	var out latestResp
	if err := c.c.GetJSON(ctx, "latest", u, nil, &out); err != nil {
		return Fallback(base), nil
	}
	if out.Result != "success" || len(out.ConversionRates) == 0 {
		return Fallback(base), nil
	}
	return domain.RateTable{Base: out.BaseCode, Rates: out.ConversionRates, UpdatedAt: out.TimeLastUpdate}, nil
}

// Fallback returns the static table for base, defaulting to USD rows
// for currencies the table does not carry.
func Fallback(base string) domain.RateTable {
	rates, ok := fallbackRates[base]
	if !ok {
		rates = fallbackRates["USD"]
	}
	cp := make(map[string]float64, len(rates))
	for k, v := range rates {
		cp[k] = v
	}
	return domain.RateTable{Base: base, Rates: cp, UpdatedAt: "fallback"}
}

