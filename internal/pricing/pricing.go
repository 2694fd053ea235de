// Copyright (c) 2026 VideoVenta. All rights reserved.
// Author: studio@videoventa.mx

/*
Package pricing implements the quotation engine for the video catalogue.

It is the single canonical implementation of the price formula: every surface
(landing-page calculator, admin preview, order messages) quotes through this
package rather than carrying its own copy of the multiplier math.

Architecture:

  - Config: the pricing table, stored as one JSON document inside the site
    configuration and owned by the Configuration Store.
  - Engine operations: pure functions from (Config, selection) to a quote.
    No I/O, no state, safe under any concurrency.
  - Money: integer minor units (cents) end to end; rounding happens exactly
    once, on the final totals.
*/
package pricing

import (
	"fmt"
)

// # Configuration Model

// Config is the root pricing configuration for quoting.
//
// JSON field names follow the document stored in site.config.pricing, which
// is also the contract consumed by the landing-page calculator.
type Config struct {
	NarratedVideos  NarratedConfig            `json:"narratedVideos"`
	SingingPackages map[string]SingingPackage `json:"singingPackages"`
}

// NarratedConfig drives quotes for narrated videos.
type NarratedConfig struct {
	// Durations maps fixed duration buckets (e.g. "5-10" minutes) to base prices.
	Durations map[string]DurationPrice `json:"durations"`

	// Speeds maps delivery speed keys to surcharge multipliers (>= 1.0).
	Speeds map[string]Multiplier `json:"speeds"`

	// Quantities maps volume keys to scaling factors. The factor encodes the
	// bulk discount directly: 30 videos carries x1.8, not x2.
	Quantities map[string]Multiplier `json:"quantities"`

	// VideoFeatures is the descriptive bullet list shown on the landing page.
	// Purely informational, never computed with.
	VideoFeatures []string `json:"videoFeatures"`

	// VideoOptions are optional extra selection axes (quality, style, ...).
	// Each selected option multiplies into the final price independently.
	VideoOptions map[string]VideoOption `json:"videoOptions"`
}

// DurationPrice is the base price of one duration bucket, per currency.
type DurationPrice struct {
	MXNCents int64  `json:"mxnCents"`
	USDCents int64  `json:"usdCents"`
	Label    string `json:"label"`
}

// Multiplier is a dimensionless scaling factor; 1.0 means "no change".
type Multiplier struct {
	Multiplier float64 `json:"multiplier"`
	Label      string  `json:"label"`
}

// VideoOption is one optional selection axis with its available choices.
type VideoOption struct {
	Label       string                  `json:"label"`
	Description string                  `json:"description"`
	Options     map[string]OptionChoice `json:"options"`
}

// OptionChoice is one selectable value of a [VideoOption].
type OptionChoice struct {
	Label         string  `json:"label"`
	PriceModifier float64 `json:"priceModifier"`
	Available     bool    `json:"available"`
}

// SingingPackage is a flat-priced bundle. Packages are looked up verbatim,
// never multiplied.
type SingingPackage struct {
	MXNCents   int64  `json:"mxnCents"`
	USDCents   int64  `json:"usdCents"`
	VideoCount int    `json:"videoCount"`
	Label      string `json:"label"`
}

// # Configuration Invariants

// Validate checks the structural invariants of a pricing configuration.
//
// It is called by the Configuration Store before persisting an admin update,
// so a broken table never reaches the quoting engine.
func (c *Config) Validate() error {
	if len(c.NarratedVideos.Durations) == 0 {
		return fmt.Errorf("pricing: narrated durations must not be empty")
	}
	for key, price := range c.NarratedVideos.Durations {
		if price.MXNCents < 0 || price.USDCents < 0 {
			return fmt.Errorf("pricing: duration %q has a negative base price", key)
		}
	}
	for key, speed := range c.NarratedVideos.Speeds {
		if speed.Multiplier < 1.0 {
			return fmt.Errorf("pricing: speed %q multiplier must be >= 1.0", key)
		}
	}
	for key, quantity := range c.NarratedVideos.Quantities {
		if quantity.Multiplier < 0 {
			return fmt.Errorf("pricing: quantity %q multiplier must not be negative", key)
		}
	}
	for optionID, option := range c.NarratedVideos.VideoOptions {
		for key, choice := range option.Options {
			if choice.PriceModifier < 0 {
				return fmt.Errorf("pricing: option %s/%s modifier must not be negative", optionID, key)
			}
		}
	}
	for key, pkg := range c.SingingPackages {
		if pkg.MXNCents < 0 || pkg.USDCents < 0 {
			return fmt.Errorf("pricing: package %q has a negative price", key)
		}
		if pkg.VideoCount <= 0 {
			return fmt.Errorf("pricing: package %q video count must be positive", key)
		}
	}
	return nil
}
