// Copyright (c) 2026 VideoVenta. All rights reserved.
// Author: studio@videoventa.mx

package pricing_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/videoventa-mx/videoventa/internal/platform/apperr"
	"github.com/videoventa-mx/videoventa/internal/pricing"
)

// testConfig mirrors the production default pricing table.
func testConfig() *pricing.Config {
	return &pricing.Config{
		NarratedVideos: pricing.NarratedConfig{
			Durations: map[string]pricing.DurationPrice{
				"5-10":  {MXNCents: 160000, USDCents: 8900, Label: "5-10 minutos"},
				"10-20": {MXNCents: 260000, USDCents: 14400, Label: "10-20 minutos"},
				"20-30": {MXNCents: 350000, USDCents: 19400, Label: "20-30 minutos"},
			},
			Speeds: map[string]pricing.Multiplier{
				"normal":  {Multiplier: 1.0, Label: "Normal"},
				"fast":    {Multiplier: 1.2, Label: "Rápida"},
				"express": {Multiplier: 1.5, Label: "Express"},
			},
			Quantities: map[string]pricing.Multiplier{
				"15":  {Multiplier: 1.0, Label: "15 videos"},
				"30":  {Multiplier: 1.8, Label: "30 videos"},
				"60":  {Multiplier: 3.2, Label: "60 videos"},
				"120": {Multiplier: 5.8, Label: "120 videos"},
			},
			VideoOptions: map[string]pricing.VideoOption{
				"quality": {
					Label: "Calidad",
					Options: map[string]pricing.OptionChoice{
						"hd": {Label: "HD", PriceModifier: 1.0, Available: true},
						"4k": {Label: "4K", PriceModifier: 1.25, Available: true},
						"8k": {Label: "8K", PriceModifier: 1.5, Available: false},
					},
				},
			},
		},
		SingingPackages: map[string]pricing.SingingPackage{
			"basic":    {MXNCents: 160000, USDCents: 8900, VideoCount: 15, Label: "Básico"},
			"standard": {MXNCents: 300000, USDCents: 16700, VideoCount: 30, Label: "Estándar"},
			"premium":  {MXNCents: 550000, USDCents: 30600, VideoCount: 60, Label: "Premium"},
			"business": {MXNCents: 990000, USDCents: 55000, VideoCount: 120, Label: "Empresarial"},
		},
	}
}

/*
TestQuoteNarrated covers the multiplier chain against the default table.
*/
func TestQuoteNarrated(t *testing.T) {
	cfg := testConfig()

	tests := []struct {
		name        string
		sel         pricing.NarratedSelection
		expectedMXN int64
		expectedUSD int64
	}{
		{
			name:        "identity_multipliers_return_base",
			sel:         pricing.NarratedSelection{Duration: "5-10", Speed: "normal", Quantity: "15"},
			expectedMXN: 160000,
			expectedUSD: 8900,
		},
		{
			// 8900 * 1.8 = 16020 cents; totals round to whole dollars.
			name:        "bulk_discount_thirty_videos",
			sel:         pricing.NarratedSelection{Duration: "5-10", Speed: "normal", Quantity: "30"},
			expectedMXN: 288000,
			expectedUSD: 16000,
		},
		{
			// 19400 * 8.7 = 168780 cents -> $1687.80 -> $1688.
			name:        "express_large_order",
			sel:         pricing.NarratedSelection{Duration: "20-30", Speed: "express", Quantity: "120"},
			expectedMXN: 3045000,
			expectedUSD: 168800,
		},
		{
			// 8900 * 1.25 = 11125 cents -> $111.25 -> $111.
			name: "option_modifier_applies",
			sel: pricing.NarratedSelection{
				Duration: "5-10", Speed: "normal", Quantity: "15",
				Options: map[string]string{"quality": "4k"},
			},
			expectedMXN: 200000,
			expectedUSD: 11100,
		},
		{
			// 14400 * 1.2 = 17280 cents -> $172.80 -> $173.
			name:        "fast_speed_surcharge",
			sel:         pricing.NarratedSelection{Duration: "10-20", Speed: "fast", Quantity: "15"},
			expectedMXN: 312000,
			expectedUSD: 17300,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quote, err := pricing.QuoteNarrated(cfg, tt.sel)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedMXN, quote.TotalMXNCents)
			assert.Equal(t, tt.expectedUSD, quote.TotalUSDCents)
		})
	}
}

/*
TestQuoteNarrated_UnknownKeys confirms unknown selection keys are rejected,
never silently defaulted.
*/
func TestQuoteNarrated_UnknownKeys(t *testing.T) {
	cfg := testConfig()

	tests := []struct {
		name string
		sel  pricing.NarratedSelection
	}{
		{"unknown_duration", pricing.NarratedSelection{Duration: "90-120", Speed: "normal", Quantity: "15"}},
		{"unknown_speed", pricing.NarratedSelection{Duration: "5-10", Speed: "warp", Quantity: "15"}},
		{"unknown_quantity", pricing.NarratedSelection{Duration: "5-10", Speed: "normal", Quantity: "7"}},
		{"unknown_option_axis", pricing.NarratedSelection{
			Duration: "5-10", Speed: "normal", Quantity: "15",
			Options: map[string]string{"subtitles": "spanish"},
		}},
		{"unknown_option_choice", pricing.NarratedSelection{
			Duration: "5-10", Speed: "normal", Quantity: "15",
			Options: map[string]string{"quality": "16k"},
		}},
		{"unavailable_option_choice", pricing.NarratedSelection{
			Duration: "5-10", Speed: "normal", Quantity: "15",
			Options: map[string]string{"quality": "8k"},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quote, err := pricing.QuoteNarrated(cfg, tt.sel)
			require.Error(t, err)
			assert.Nil(t, quote)

			appErr := apperr.As(err)
			require.NotNil(t, appErr)
			assert.Equal(t, "INVALID_SELECTION", appErr.Code)
			assert.Equal(t, 400, appErr.HTTPStatus)
		})
	}
}

/*
TestQuoteNarrated_Breakdown verifies the quote echoes the base prices and
every applied factor for display.
*/
func TestQuoteNarrated_Breakdown(t *testing.T) {
	cfg := testConfig()

	quote, err := pricing.QuoteNarrated(cfg, pricing.NarratedSelection{
		Duration: "5-10", Speed: "fast", Quantity: "30",
		Options: map[string]string{"quality": "4k"},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(160000), quote.BaseMXNCents)
	assert.Equal(t, int64(8900), quote.BaseUSDCents)
	assert.Equal(t, 1.2, quote.SpeedMultiplier)
	assert.Equal(t, 1.8, quote.QuantityMultiplier)
	require.Contains(t, quote.OptionMultipliers, "quality")
	assert.Equal(t, pricing.OptionFactor{Label: "4K", Modifier: 1.25}, quote.OptionMultipliers["quality"])

	// 160000 * 1.2 * 1.8 * 1.25 = 432000 exactly.
	assert.Equal(t, int64(432000), quote.TotalMXNCents)
}

/*
TestQuoteNarrated_DeliveryIncluded checks the quote carries the delivery
estimate for its quantity and speed.
*/
func TestQuoteNarrated_DeliveryIncluded(t *testing.T) {
	cfg := testConfig()

	quote, err := pricing.QuoteNarrated(cfg, pricing.NarratedSelection{
		Duration: "5-10", Speed: "fast", Quantity: "30",
	})
	require.NoError(t, err)
	assert.Equal(t, pricing.DeliveryDays{MinDays: 2, MaxDays: 7}, quote.Delivery)
}

/*
TestQuoteSinging covers flat package lookup.
*/
func TestQuoteSinging(t *testing.T) {
	cfg := testConfig()

	t.Run("known_package", func(t *testing.T) {
		quote, err := pricing.QuoteSinging(cfg, "premium")
		require.NoError(t, err)
		assert.Equal(t, int64(550000), quote.MXNCents)
		assert.Equal(t, int64(30600), quote.USDCents)
		assert.Equal(t, 60, quote.VideoCount)
		assert.Equal(t, pricing.DeliveryDays{MinDays: 8, MaxDays: 15}, quote.Delivery)
	})

	t.Run("unknown_package", func(t *testing.T) {
		quote, err := pricing.QuoteSinging(cfg, "deluxe")
		require.Error(t, err)
		assert.Nil(t, quote)

		appErr := apperr.As(err)
		require.NotNil(t, appErr)
		assert.Equal(t, "INVALID_SELECTION", appErr.Code)
	})
}

/*
TestConfig_Validate covers the structural invariants of the pricing table.
*/
func TestConfig_Validate(t *testing.T) {
	t.Run("default_table_is_valid", func(t *testing.T) {
		assert.NoError(t, testConfig().Validate())
	})

	t.Run("empty_durations_rejected", func(t *testing.T) {
		cfg := testConfig()
		cfg.NarratedVideos.Durations = nil
		assert.Error(t, cfg.Validate())
	})

	t.Run("speed_below_one_rejected", func(t *testing.T) {
		cfg := testConfig()
		cfg.NarratedVideos.Speeds["discount"] = pricing.Multiplier{Multiplier: 0.8}
		assert.Error(t, cfg.Validate())
	})

	t.Run("negative_base_price_rejected", func(t *testing.T) {
		cfg := testConfig()
		cfg.NarratedVideos.Durations["5-10"] = pricing.DurationPrice{MXNCents: -1}
		assert.Error(t, cfg.Validate())
	})

	t.Run("zero_video_count_rejected", func(t *testing.T) {
		cfg := testConfig()
		cfg.SingingPackages["broken"] = pricing.SingingPackage{MXNCents: 100, USDCents: 100}
		assert.Error(t, cfg.Validate())
	})
}

/*
TestConfig_JSONContract guards the camelCase field names consumed by the
landing-page calculator.
*/
func TestConfig_JSONContract(t *testing.T) {
	raw, err := json.Marshal(testConfig())
	require.NoError(t, err)

	body := string(raw)
	assert.Contains(t, body, `"narratedVideos"`)
	assert.Contains(t, body, `"singingPackages"`)
	assert.Contains(t, body, `"mxnCents"`)
	assert.Contains(t, body, `"usdCents"`)
	assert.Contains(t, body, `"videoCount"`)
	assert.NotContains(t, body, `"mxn_cents"`)
}
