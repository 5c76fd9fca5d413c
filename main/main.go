package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	uniswap_v3_math "github.com/CoinSummer/uniswap-v3-math"
	"github.com/sirupsen/logrus"
)

func feeFromFlag(fee uint) (uniswap_v3_math.FeeAmount, error) {
	if fee > math.MaxUint32 {
		return 0, fmt.Errorf("fee %d does not fit in uint32", fee)
	}
	return uniswap_v3_math.FeeAmount(fee), nil
}

func main() {
	casesFile := flag.String("cases", "", "yaml file with a top-level cases list")
	side := flag.String("side", "buy", "buy (exact input) or sell (exact output)")
	current := flag.String("current", "", "current sqrt price, Q64.96")
	target := flag.String("target", "", "target sqrt price, Q64.96")
	liquidity := flag.String("liquidity", "", "active liquidity")
	amount := flag.String("amount", "", "remaining amount to sell or buy")
	fee := flag.Uint("fee", uint(uniswap_v3_math.FeeAmountMedium), "fee in hundredths of a bip")
	level := flag.String("log-level", "info", "logrus level")
	flag.Parse()

	lvl, err := logrus.ParseLevel(*level)
	if err != nil {
		logrus.Fatal(err)
	}
	logrus.SetLevel(lvl)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	feeAmount, err := feeFromFlag(*fee)
	if err != nil {
		logrus.Fatal(err)
	}

	var cases []uniswap_v3_math.QuoteCase
	if *casesFile != "" {
		f, err := os.Open(*casesFile)
		if err != nil {
			logrus.Fatal(err)
		}
		cases, err = uniswap_v3_math.LoadQuoteCases(f)
		f.Close()
		if err != nil {
			logrus.Fatal(err)
		}
	} else {
		cases = []uniswap_v3_math.QuoteCase{{
			Name:             "cli",
			Side:             uniswap_v3_math.QuoteSide(*side),
			SqrtPriceCurrent: *current,
			SqrtPriceTarget:  *target,
			Liquidity:        *liquidity,
			Amount:           *amount,
			Fee:              feeAmount,
		}}
	}

	_, failed := uniswap_v3_math.RunQuotes(cases, logrus.StandardLogger())
	if failed > 0 {
		logrus.Errorf("%d of %d quotes failed", failed, len(cases))
		os.Exit(1)
	}
}
