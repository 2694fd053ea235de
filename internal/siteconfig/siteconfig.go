// Copyright (c) 2026 VideoVenta. All rights reserved.
// Author: studio@videoventa.mx

/*
Package siteconfig manages the singleton site configuration document.

One row per deployment carries everything an admin can edit without a deploy:
the pricing table, landing-page copy, sample video gallery, and messaging
contact details. The package owns seeding (first read creates the default
document), shallow-merge updates, and the Redis read cache in front of
PostgreSQL.
*/
package siteconfig

import (
	"time"

	"github.com/videoventa-mx/videoventa/internal/pricing"
)

// # Entity

// SiteConfig is the singleton configuration document.
//
// JSON field names are the public API contract of GET /api/config and are
// consumed verbatim by the landing page and the admin panel.
type SiteConfig struct {
	ID             string          `json:"id"`
	WhatsAppNumber string          `json:"whatsappNumber"`
	BusinessName   string          `json:"businessName"`
	Pricing        pricing.Config  `json:"pricing"`
	SampleVideos   []SampleVideo   `json:"sampleVideos"`
	SiteContent    SiteContent     `json:"siteContent"`
	Messaging      MessagingConfig `json:"messagingConfig"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// SampleVideo is one entry in the landing-page portfolio gallery.
type SampleVideo struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Thumbnail   string `json:"thumbnail"`
	VideoURL    string `json:"videoUrl"`
}

// SiteContent holds the editable landing-page copy and branding assets.
type SiteContent struct {
	HeroTitle             string `json:"heroTitle"`
	HeroDescription       string `json:"heroDescription"`
	ContactEmail          string `json:"contactEmail"`
	CompanyDescription    string `json:"companyDescription"`
	LogoURL               string `json:"logoUrl,omitempty"`
	CalculatorTitle       string `json:"calculatorTitle,omitempty"`
	CalculatorDescription string `json:"calculatorDescription,omitempty"`
	BackgroundImageURL    string `json:"backgroundImageUrl,omitempty"`
	CustomCSS             string `json:"customCSS,omitempty"`
}

// MessagingConfig holds optional messaging platform integrations. All fields
// are off by default; the plain WhatsApp deep link works without any of them.
type MessagingConfig struct {
	WhatsAppAPIEnabled    bool   `json:"whatsappApiEnabled,omitempty"`
	WhatsAppAPIToken      string `json:"whatsappApiToken,omitempty"`
	WhatsAppBusinessID    string `json:"whatsappBusinessId,omitempty"`
	MessengerEnabled      bool   `json:"messengerEnabled,omitempty"`
	MessengerPageID       string `json:"messengerPageId,omitempty"`
	MessengerAccessToken  string `json:"messengerAccessToken,omitempty"`
}

// # Update Input

// UpdateInput is a shallow-merge patch for the configuration document.
//
// A nil field leaves the corresponding top-level key untouched; a non-nil
// field replaces that key wholesale. There is no deep merge: sending a
// pricing table replaces the entire table.
type UpdateInput struct {
	WhatsAppNumber *string          `json:"whatsappNumber"`
	BusinessName   *string          `json:"businessName"`
	Pricing        *pricing.Config  `json:"pricing"`
	SampleVideos   *[]SampleVideo   `json:"sampleVideos"`
	SiteContent    *SiteContent     `json:"siteContent"`
	Messaging      *MessagingConfig `json:"messagingConfig"`
}

// Empty reports whether the patch would change nothing.
func (in *UpdateInput) Empty() bool {
	return in.WhatsAppNumber == nil &&
		in.BusinessName == nil &&
		in.Pricing == nil &&
		in.SampleVideos == nil &&
		in.SiteContent == nil &&
		in.Messaging == nil
}
