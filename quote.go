package uniswap_v3_math

import (
	"errors"
	"io"
	"math/big"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

type QuoteSide string

const (
	// QuoteSideBuy sells an exact input amount.
	QuoteSideBuy QuoteSide = "buy"
	// QuoteSideSell buys an exact output amount.
	QuoteSideSell QuoteSide = "sell"
)

// QuoteCase describes one swap step to evaluate. Integers are strings, decimal or 0x-prefixed
// hex, since most of them do not fit in 64 bits.
type QuoteCase struct {
	Name             string    `yaml:"name"`
	Side             QuoteSide `yaml:"side"`
	SqrtPriceCurrent string    `yaml:"sqrt_price_current"`
	SqrtPriceTarget  string    `yaml:"sqrt_price_target,omitempty"`
	TickTarget       *int      `yaml:"tick_target,omitempty"`
	Liquidity        string    `yaml:"liquidity"`
	Amount           string    `yaml:"amount"`
	Fee              FeeAmount `yaml:"fee"`
}

type QuoteResult struct {
	Case QuoteCase
	Step *SwapStep
	Err  error
}

type quoteFile struct {
	Cases []QuoteCase `yaml:"cases"`
}

// LoadQuoteCases reads a YAML document with a top-level "cases" list.
func LoadQuoteCases(r io.Reader) ([]QuoteCase, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var f quoteFile
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, newError("failed decode quote cases: %s", err)
	}
	return f.Cases, nil
}

func parseInteger(field, value string) (*big.Int, error) {
	if value == "" {
		return nil, newError("%s is required", field)
	}
	n, ok := new(big.Int).SetString(value, 0)
	if !ok {
		return nil, newError("%s is not an integer: %q", field, value)
	}
	return n, nil
}

func (c QuoteCase) target() (*big.Int, error) {
	switch {
	case c.TickTarget != nil && c.SqrtPriceTarget != "":
		return nil, newError("case %q sets both sqrt_price_target and tick_target", c.Name)
	case c.TickTarget != nil:
		return GetSqrtPriceAtTick(*c.TickTarget)
	default:
		return parseInteger("sqrt_price_target", c.SqrtPriceTarget)
	}
}

// Quote runs the swap step the case describes.
func (c QuoteCase) Quote() (*SwapStep, error) {
	current, err := parseInteger("sqrt_price_current", c.SqrtPriceCurrent)
	if err != nil {
		return nil, err
	}
	target, err := c.target()
	if err != nil {
		return nil, err
	}
	liquidity, err := parseInteger("liquidity", c.Liquidity)
	if err != nil {
		return nil, err
	}
	amount, err := parseInteger("amount", c.Amount)
	if err != nil {
		return nil, err
	}
	switch c.Side {
	case QuoteSideBuy:
		return ComputeSwapStepBuy(current, target, liquidity, amount, c.Fee)
	case QuoteSideSell:
		return ComputeSwapStepSell(current, target, liquidity, amount, c.Fee)
	default:
		return nil, newError("case %q has unknown side %q", c.Name, c.Side)
	}
}

// RunQuotes evaluates every case, logging each outcome, and returns the results together
// with the number of failed cases. A failing case does not stop the run.
func RunQuotes(cases []QuoteCase, log logrus.FieldLogger) ([]QuoteResult, int) {
	results := make([]QuoteResult, 0, len(cases))
	failed := 0
	for _, c := range cases {
		step, err := c.Quote()
		results = append(results, QuoteResult{Case: c, Step: step, Err: err})
		entry := log.WithFields(logrus.Fields{"case": c.Name, "side": c.Side, "fee": c.Fee})
		if err != nil {
			failed++
			var engineErr *Error
			if errors.As(err, &engineErr) {
				entry = entry.WithField("code", engineErr.Code())
			}
			entry.Warnf("quote failed: %s", err)
			continue
		}
		entry.WithFields(logrus.Fields{
			"sqrt_price":    step.SqrtPrice.String(),
			"quantity_sell": step.QuantitySell.String(),
			"quantity_buy":  step.QuantityBuy.String(),
			"quantity_fee":  step.QuantityFee.String(),
		}).Info("quote")
	}
	return results, failed
}
