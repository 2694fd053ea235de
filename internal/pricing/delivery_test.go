// Copyright (c) 2026 VideoVenta. All rights reserved.
// Author: studio@videoventa.mx

package pricing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/videoventa-mx/videoventa/internal/pricing"
)

/*
TestEstimateDelivery covers the volume brackets and speed compression.
*/
func TestEstimateDelivery(t *testing.T) {
	tests := []struct {
		name       string
		videoCount int
		speed      string
		expected   pricing.DeliveryDays
	}{
		{"smallest_bracket_normal", 15, "normal", pricing.DeliveryDays{MinDays: 2, MaxDays: 5}},
		{"bracket_boundary_sixteen", 16, "normal", pricing.DeliveryDays{MinDays: 4, MaxDays: 10}},
		{"second_bracket_upper", 30, "normal", pricing.DeliveryDays{MinDays: 4, MaxDays: 10}},
		{"third_bracket", 60, "normal", pricing.DeliveryDays{MinDays: 8, MaxDays: 15}},
		{"largest_bracket", 120, "normal", pricing.DeliveryDays{MinDays: 15, MaxDays: 30}},
		{"beyond_largest", 500, "normal", pricing.DeliveryDays{MinDays: 15, MaxDays: 30}},

		{"fast_compresses_to_seventy_percent", 30, "fast", pricing.DeliveryDays{MinDays: 2, MaxDays: 7}},
		{"fast_smallest_bracket", 15, "fast", pricing.DeliveryDays{MinDays: 1, MaxDays: 3}},
		{"express_compresses_to_half", 120, "express", pricing.DeliveryDays{MinDays: 7, MaxDays: 15}},
		{"express_minimum_floor_one_day", 15, "express", pricing.DeliveryDays{MinDays: 1, MaxDays: 2}},

		{"zero_count_smallest_bracket", 0, "normal", pricing.DeliveryDays{MinDays: 2, MaxDays: 5}},
		{"unknown_speed_uses_base", 30, "turbo", pricing.DeliveryDays{MinDays: 4, MaxDays: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, pricing.EstimateDelivery(tt.videoCount, tt.speed))
		})
	}
}

/*
TestEstimateDelivery_WindowsAreOrdered confirms min never exceeds max for
every bracket and speed combination.
*/
func TestEstimateDelivery_WindowsAreOrdered(t *testing.T) {
	counts := []int{0, 1, 15, 16, 30, 31, 60, 61, 120, 1000}
	speeds := []string{"normal", "fast", "express"}

	for _, count := range counts {
		for _, speed := range speeds {
			window := pricing.EstimateDelivery(count, speed)
			assert.GreaterOrEqual(t, window.MaxDays, window.MinDays)
			assert.GreaterOrEqual(t, window.MinDays, 1)
		}
	}
}
