// Copyright (c) 2026 VideoVenta. All rights reserved.
// Author: studio@videoventa.mx

package siteconfig

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/videoventa-mx/videoventa/internal/platform/apperr"
	"github.com/videoventa-mx/videoventa/internal/platform/dberr"
	"github.com/videoventa-mx/videoventa/internal/platform/validate"
	"github.com/videoventa-mx/videoventa/internal/pricing"
)

// Service owns the read, seed, and update flows of the configuration
// document. It sits between the HTTP handlers and the Postgres/Redis stores.
type Service struct {
	repo   Repository
	cache  *Cache
	logger *slog.Logger
}

// NewService creates the configuration service. cache may be nil in tests.
func NewService(repo Repository, cache *Cache, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

// Get returns the configuration document, seeding the factory defaults on a
// fresh deployment. Every caller always observes a complete document.
func (service *Service) Get(context context.Context) (*SiteConfig, error) {
	if service.cache != nil {
		if cached := service.cache.Get(context); cached != nil {
			return cached, nil
		}
	}

	config, err := service.repo.Get(context)
	if errors.Is(err, dberr.ErrNotFound) {
		config, err = service.seed(context)
	}
	if err != nil {
		return nil, err
	}

	if service.cache != nil {
		service.cache.Set(context, config)
	}
	return config, nil
}

// Update applies a shallow-merge patch and returns the resulting document.
//
// Top-level keys present in the patch are replaced wholesale; absent keys are
// untouched. The merge is a single atomic UPDATE, so concurrent patches to
// different keys both survive.
func (service *Service) Update(context context.Context, input UpdateInput) (*SiteConfig, error) {
	if input.Empty() {
		return nil, apperr.ValidationError("Update requires at least one field")
	}
	if err := validateUpdate(input); err != nil {
		return nil, err
	}

	// A fresh deployment has no row to update yet.
	if _, err := service.Get(context); err != nil {
		return nil, err
	}

	config, err := service.repo.Update(context, input)
	if err != nil {
		return nil, err
	}

	if service.cache != nil {
		service.cache.Invalidate(context)
	}

	service.logger.Info("site_config_updated",
		slog.Bool("pricing_changed", input.Pricing != nil),
		slog.Bool("content_changed", input.SiteContent != nil),
	)
	return config, nil
}

// PricingConfig returns the current pricing table for the quoting engine.
func (service *Service) PricingConfig(context context.Context) (*pricing.Config, error) {
	config, err := service.Get(context)
	if err != nil {
		return nil, err
	}
	return &config.Pricing, nil
}

// WhatsAppNumber returns the business contact number for order deep links.
func (service *Service) WhatsAppNumber(context context.Context) (string, error) {
	config, err := service.Get(context)
	if err != nil {
		return "", err
	}
	return config.WhatsAppNumber, nil
}

// seed inserts the factory defaults. Two instances may race here on first
// boot; the loser re-reads the winner's row.
func (service *Service) seed(context context.Context) (*SiteConfig, error) {
	config := DefaultConfig()

	err := service.repo.Insert(context, config)
	if err == nil {
		service.logger.Info("site_config_seeded", slog.String("business", config.BusinessName))
		return config, nil
	}

	if appErr := apperr.As(err); appErr != nil && appErr.Code == "CONFLICT" {
		return service.repo.Get(context)
	}
	return nil, err
}

func validateUpdate(input UpdateInput) error {
	validator := &validate.Validator{}

	if input.WhatsAppNumber != nil {
		number := strings.TrimSpace(*input.WhatsAppNumber)
		validator.Required("whatsappNumber", number)
		validator.Custom("whatsappNumber", number != "" && !strings.HasPrefix(number, "+"),
			"Must include the international prefix (e.g. +52)")
	}
	if input.BusinessName != nil {
		validator.Required("businessName", *input.BusinessName).
			MaxLen("businessName", *input.BusinessName, 120)
	}
	if input.SiteContent != nil && input.SiteContent.ContactEmail != "" {
		validator.Email("contactEmail", input.SiteContent.ContactEmail)
	}
	if input.SampleVideos != nil {
		for _, video := range *input.SampleVideos {
			validator.Required("sampleVideos.title", video.Title)
			if video.VideoURL != "" {
				validator.URL("sampleVideos.videoUrl", video.VideoURL)
			}
			if video.Thumbnail != "" {
				validator.URL("sampleVideos.thumbnail", video.Thumbnail)
			}
		}
	}
	if err := validator.Err(); err != nil {
		return err
	}

	// The pricing table has its own structural invariants.
	if input.Pricing != nil {
		if err := input.Pricing.Validate(); err != nil {
			return apperr.ValidationError(err.Error())
		}
	}
	return nil
}
