// Copyright (c) 2026 VideoVenta. All rights reserved.
// Author: studio@videoventa.mx

package pricing

import (
	"math"
	"sort"

	"github.com/videoventa-mx/videoventa/internal/platform/apperr"
)

// # Selections

// NarratedSelection is a buyer's choice set for a narrated video quote.
//
// All fields are configuration keys; unknown keys are rejected, never
// defaulted, so a stale frontend cannot silently quote the wrong price.
type NarratedSelection struct {
	Duration string            `json:"duration"`
	Speed    string            `json:"speed"`
	Quantity string            `json:"quantity"`
	Options  map[string]string `json:"options,omitempty"`
}

// # Quotes

// NarratedQuote is the result of pricing one narrated selection. Base prices
// and every applied factor are echoed back so the calculator can display the
// full breakdown without re-deriving it.
type NarratedQuote struct {
	BaseMXNCents       int64                   `json:"basePriceMxnCents"`
	BaseUSDCents       int64                   `json:"basePriceUsdCents"`
	SpeedMultiplier    float64                 `json:"speedMultiplier"`
	QuantityMultiplier float64                 `json:"quantityMultiplier"`
	OptionMultipliers  map[string]OptionFactor `json:"optionMultipliers,omitempty"`
	TotalMXNCents      int64                   `json:"totalMxnCents"`
	TotalUSDCents      int64                   `json:"totalUsdCents"`
	Delivery           DeliveryDays            `json:"delivery"`
}

// OptionFactor is one applied option modifier in a quote breakdown.
type OptionFactor struct {
	Label    string  `json:"label"`
	Modifier float64 `json:"modifier"`
}

// SingingQuote is the result of resolving one singing package.
type SingingQuote struct {
	Package    string       `json:"package"`
	Label      string       `json:"label"`
	MXNCents   int64        `json:"mxnCents"`
	USDCents   int64        `json:"usdCents"`
	VideoCount int          `json:"videoCount"`
	Delivery   DeliveryDays `json:"delivery"`
}

// # Engine

// QuoteNarrated prices a narrated video selection against the configuration.
//
// Formula: base(duration) x speed x quantity x option1 x option2 x ...
// Both currencies are scaled by the same factor chain and rounded half-up
// exactly once, on the final totals, to the nearest whole currency unit.
func QuoteNarrated(cfg *Config, sel NarratedSelection) (*NarratedQuote, error) {
	base, ok := cfg.NarratedVideos.Durations[sel.Duration]
	if !ok {
		return nil, apperr.InvalidSelection("duration", sel.Duration)
	}
	speed, ok := cfg.NarratedVideos.Speeds[sel.Speed]
	if !ok {
		return nil, apperr.InvalidSelection("speed", sel.Speed)
	}
	quantity, ok := cfg.NarratedVideos.Quantities[sel.Quantity]
	if !ok {
		return nil, apperr.InvalidSelection("quantity", sel.Quantity)
	}

	factor := speed.Multiplier * quantity.Multiplier

	var optionFactors map[string]OptionFactor
	// Option axes are applied in sorted key order so float accumulation is
	// reproducible across requests.
	for _, optionID := range sortedKeys(sel.Options) {
		choiceKey := sel.Options[optionID]

		option, ok := cfg.NarratedVideos.VideoOptions[optionID]
		if !ok {
			return nil, apperr.InvalidSelection("option", optionID)
		}
		choice, ok := option.Options[choiceKey]
		if !ok || !choice.Available {
			return nil, apperr.InvalidSelection(optionID, choiceKey)
		}

		factor *= choice.PriceModifier
		if optionFactors == nil {
			optionFactors = make(map[string]OptionFactor, len(sel.Options))
		}
		optionFactors[optionID] = OptionFactor{Label: choice.Label, Modifier: choice.PriceModifier}
	}

	quote := &NarratedQuote{
		BaseMXNCents:       base.MXNCents,
		BaseUSDCents:       base.USDCents,
		SpeedMultiplier:    speed.Multiplier,
		QuantityMultiplier: quantity.Multiplier,
		OptionMultipliers:  optionFactors,
		TotalMXNCents:      roundWholeUnits(float64(base.MXNCents) * factor),
		TotalUSDCents:      roundWholeUnits(float64(base.USDCents) * factor),
		Delivery:           EstimateDelivery(videoCountForQuantity(sel.Quantity), sel.Speed),
	}
	return quote, nil
}

// QuoteSinging resolves a singing package by key. Flat lookup, no multipliers.
func QuoteSinging(cfg *Config, packageKey string) (*SingingQuote, error) {
	pkg, ok := cfg.SingingPackages[packageKey]
	if !ok {
		return nil, apperr.InvalidSelection("package", packageKey)
	}

	return &SingingQuote{
		Package:    packageKey,
		Label:      pkg.Label,
		MXNCents:   pkg.MXNCents,
		USDCents:   pkg.USDCents,
		VideoCount: pkg.VideoCount,
		Delivery:   EstimateDelivery(pkg.VideoCount, SpeedNormal),
	}, nil
}

// roundWholeUnits rounds a cent amount half-up to the nearest whole currency
// unit. Quoted totals are always whole pesos and dollars, the granularity the
// calculator and the order messages display. This is the only rounding point
// in the engine.
func roundWholeUnits(cents float64) int64 {
	return int64(math.Floor(cents/100+0.5)) * 100
}

// videoCountForQuantity derives the numeric video count behind a quantity key
// for the delivery estimate. Quantity keys are numeric by convention
// ("15", "30", ...); a non-numeric key yields zero and the smallest bracket.
func videoCountForQuantity(key string) int {
	count := 0
	for _, r := range key {
		if r < '0' || r > '9' {
			return 0
		}
		count = count*10 + int(r-'0')
	}
	return count
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
