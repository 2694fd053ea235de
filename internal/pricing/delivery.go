// Copyright (c) 2026 VideoVenta. All rights reserved.
// Author: studio@videoventa.mx

package pricing

// # Delivery Estimation

// Recognized delivery speed keys. Unknown keys quote at the normal timeline;
// the price engine has already rejected them before estimation matters.
const (
	SpeedNormal  = "normal"
	SpeedFast    = "fast"
	SpeedExpress = "express"
)

// DeliveryDays is an inclusive business-day range for order completion.
type DeliveryDays struct {
	MinDays int `json:"minDays"`
	MaxDays int `json:"maxDays"`
}

// EstimateDelivery returns the estimated completion window for an order of
// videoCount videos at the given speed.
//
// The base window is bracketed by volume, then compressed for paid rush
// speeds. Fast runs at 70% of the base window, express at 50%, with the
// minimum never dropping below one day. A non-positive count falls into the
// smallest bracket.
func EstimateDelivery(videoCount int, speed string) DeliveryDays {
	var base DeliveryDays
	switch {
	case videoCount <= 15:
		base = DeliveryDays{MinDays: 2, MaxDays: 5}
	case videoCount <= 30:
		base = DeliveryDays{MinDays: 4, MaxDays: 10}
	case videoCount <= 60:
		base = DeliveryDays{MinDays: 8, MaxDays: 15}
	default:
		base = DeliveryDays{MinDays: 15, MaxDays: 30}
	}

	switch speed {
	case SpeedFast:
		return compress(base, 0.7)
	case SpeedExpress:
		return compress(base, 0.5)
	default:
		return base
	}
}

// compress scales a delivery window down by factor, truncating toward zero
// and keeping the minimum at one day or more.
func compress(d DeliveryDays, factor float64) DeliveryDays {
	minDays := int(float64(d.MinDays) * factor)
	if minDays < 1 {
		minDays = 1
	}
	return DeliveryDays{
		MinDays: minDays,
		MaxDays: int(float64(d.MaxDays) * factor),
	}
}
