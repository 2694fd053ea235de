// Copyright (c) 2026 VideoVenta. All rights reserved.
// Author: studio@videoventa.mx

package pricing

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/videoventa-mx/videoventa/internal/messaging"
	requestutil "github.com/videoventa-mx/videoventa/internal/platform/request"
	"github.com/videoventa-mx/videoventa/internal/platform/respond"
	"github.com/videoventa-mx/videoventa/internal/platform/validate"
)

// # HTTP Transport

// ConfigProvider supplies the current pricing table and the business contact
// number. The site configuration service is the production implementation.
type ConfigProvider interface {
	PricingConfig(ctx context.Context) (*Config, error)
	WhatsAppNumber(ctx context.Context) (string, error)
}

// Handler exposes the quotation engine over HTTP.
type Handler struct {
	configs ConfigProvider
}

// NewHandler creates a pricing HTTP handler.
func NewHandler(configs ConfigProvider) *Handler {
	return &Handler{configs: configs}
}

// RegisterRoutes mounts the price calculation endpoint on the API router.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Post("/calculate-price", handler.calculatePrice)
}

// CalculateRequest is the calculate-price request body.
//
// Type discriminates the two quote kinds and defaults to "narrated", which
// uses the selection fields; "singing" resolves a flat package by key.
type CalculateRequest struct {
	Type     string            `json:"type,omitempty"`
	Duration string            `json:"duration,omitempty"`
	Speed    string            `json:"speed,omitempty"`
	Quantity string            `json:"quantity,omitempty"`
	Options  map[string]string `json:"options,omitempty"`
	Package  string            `json:"package,omitempty"`
}

// narratedQuoteResponse is the quote plus the prefilled order deep link the
// calculator's order button opens.
type narratedQuoteResponse struct {
	*NarratedQuote
	OrderMessage string `json:"orderMessage,omitempty"`
	OrderLink    string `json:"orderLink,omitempty"`
}

type singingQuoteResponse struct {
	*SingingQuote
	OrderMessage string `json:"orderMessage,omitempty"`
	OrderLink    string `json:"orderLink,omitempty"`
}

// calculatePrice handles POST /api/calculate-price.
func (handler *Handler) calculatePrice(writer http.ResponseWriter, request *http.Request) {
	var req CalculateRequest
	if err := requestutil.DecodeJSON(request, &req); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if req.Type == "" {
		req.Type = "narrated"
	}

	v := &validate.Validator{}
	v.OneOf("type", req.Type, "narrated", "singing")
	if req.Type == "singing" {
		v.Required("package", req.Package)
	} else {
		v.Required("duration", req.Duration)
		v.Required("speed", req.Speed)
		v.Required("quantity", req.Quantity)
	}
	if err := v.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	cfg, err := handler.configs.PricingConfig(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if req.Type == "singing" {
		quote, err := QuoteSinging(cfg, req.Package)
		if err != nil {
			respond.Error(writer, request, err)
			return
		}

		response := singingQuoteResponse{SingingQuote: quote}
		if number := handler.contactNumber(request.Context()); number != "" {
			response.OrderMessage = messaging.SingingOrderMessage(messaging.SingingOrder{
				Label:      quote.Label,
				MXNCents:   quote.MXNCents,
				VideoCount: quote.VideoCount,
				MinDays:    quote.Delivery.MinDays,
				MaxDays:    quote.Delivery.MaxDays,
			})
			response.OrderLink = messaging.BuildWhatsAppLink(number, response.OrderMessage)
		}
		respond.OK(writer, response)
		return
	}

	quote, err := QuoteNarrated(cfg, NarratedSelection{
		Duration: req.Duration,
		Speed:    req.Speed,
		Quantity: req.Quantity,
		Options:  req.Options,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	response := narratedQuoteResponse{NarratedQuote: quote}
	if number := handler.contactNumber(request.Context()); number != "" {
		response.OrderMessage = messaging.NarratedOrderMessage(messaging.NarratedOrder{
			DurationLabel: cfg.NarratedVideos.Durations[req.Duration].Label,
			QuantityLabel: cfg.NarratedVideos.Quantities[req.Quantity].Label,
			TotalMXNCents: quote.TotalMXNCents,
			MinDays:       quote.Delivery.MinDays,
			MaxDays:       quote.Delivery.MaxDays,
		})
		response.OrderLink = messaging.BuildWhatsAppLink(number, response.OrderMessage)
	}
	respond.OK(writer, response)
}

// contactNumber fetches the configured WhatsApp number. A missing number or
// a lookup failure degrades to an omitted order link, never an error; the
// quote itself is the endpoint's contract.
func (handler *Handler) contactNumber(ctx context.Context) string {
	number, err := handler.configs.WhatsAppNumber(ctx)
	if err != nil {
		return ""
	}
	return number
}
