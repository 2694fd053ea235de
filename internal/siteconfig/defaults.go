// Copyright (c) 2026 VideoVenta. All rights reserved.
// Author: studio@videoventa.mx

package siteconfig

import (
	"github.com/videoventa-mx/videoventa/internal/platform/database/schema"
	"github.com/videoventa-mx/videoventa/internal/pricing"
)

// # Factory Defaults

// DefaultConfig returns the document seeded on the first read of a fresh
// deployment. Prices are in integer cents (1600.00 MXN = 160000).
func DefaultConfig() *SiteConfig {
	return &SiteConfig{
		ID:             schema.SiteConfigSingletonID,
		WhatsAppNumber: "+52 55 1234 5678",
		BusinessName:   "VideoVenta",
		Pricing:        defaultPricing(),
		SampleVideos:   defaultSampleVideos(),
		SiteContent:    defaultSiteContent(),
		Messaging:      MessagingConfig{},
	}
}

func defaultPricing() pricing.Config {
	return pricing.Config{
		NarratedVideos: pricing.NarratedConfig{
			Durations: map[string]pricing.DurationPrice{
				"5-10":  {MXNCents: 160000, USDCents: 8900, Label: "5-10 minutos"},
				"10-20": {MXNCents: 260000, USDCents: 14400, Label: "10-20 minutos"},
				"20-30": {MXNCents: 350000, USDCents: 19400, Label: "20-30 minutos"},
			},
			Speeds: map[string]pricing.Multiplier{
				pricing.SpeedNormal:  {Multiplier: 1.0, Label: "Normal (2-5 días)"},
				pricing.SpeedFast:    {Multiplier: 1.2, Label: "Rápido (2-3 días)"},
				pricing.SpeedExpress: {Multiplier: 1.5, Label: "Express (1-2 días)"},
			},
			Quantities: map[string]pricing.Multiplier{
				"15":  {Multiplier: 1.0, Label: "15 videos"},
				"30":  {Multiplier: 1.8, Label: "30 videos"},
				"60":  {Multiplier: 3.2, Label: "60 videos"},
				"120": {Multiplier: 5.8, Label: "120 videos"},
			},
			VideoFeatures: []string{
				"HD Horizontal (1920x1080)",
				"1 Edición profesional incluida",
				"Prompt personalizado",
				"Calidad de imagen profesional",
				"Estilo de imágenes 2.5D",
				"Variedad de temas: Guerra, Peleas, Ángeles, Fantasía, Futurista, Histórico",
			},
			VideoOptions: map[string]pricing.VideoOption{},
		},
		SingingPackages: map[string]pricing.SingingPackage{
			"basic":    {MXNCents: 160000, USDCents: 8900, VideoCount: 15, Label: "Básico"},
			"standard": {MXNCents: 300000, USDCents: 16700, VideoCount: 30, Label: "Estándar"},
			"premium":  {MXNCents: 550000, USDCents: 30600, VideoCount: 60, Label: "Premium"},
			"business": {MXNCents: 990000, USDCents: 55000, VideoCount: 120, Label: "Empresarial"},
		},
	}
}

func defaultSampleVideos() []SampleVideo {
	return []SampleVideo{
		{
			ID:          "1",
			Title:       "Video Corporativo",
			Description: "Presentaciones empresariales profesionales",
			Thumbnail:   "https://images.unsplash.com/photo-1492691527719-9d1e07e534b4?ixlib=rb-4.0.3&w=300&h=200&fit=crop",
		},
		{
			ID:          "2",
			Title:       "Video Promocional",
			Description: "Campañas publicitarias impactantes",
			Thumbnail:   "https://images.unsplash.com/photo-1626814026160-2237a95fc5a0?ixlib=rb-4.0.3&w=300&h=200&fit=crop",
		},
		{
			ID:          "3",
			Title:       "Video Explicativo",
			Description: "Tutoriales y contenido educativo",
			Thumbnail:   "https://images.unsplash.com/photo-1598300042247-d088f8ab3a91?ixlib=rb-4.0.3&w=300&h=200&fit=crop",
		},
	}
}

func defaultSiteContent() SiteContent {
	return SiteContent{
		HeroTitle:             "Producción de Videos Profesionales",
		HeroDescription:       "Creamos contenido audiovisual de alta calidad que impulsa tu marca. Desde videos corporativos hasta campañas promocionales completas.",
		ContactEmail:          "info@videoventa.com",
		CompanyDescription:    "Creamos contenido audiovisual profesional que impulsa tu marca y conecta con tu audiencia.",
		CalculatorTitle:       "Calculadora de Precios",
		CalculatorDescription: "Obtén una cotización instantánea personalizada para tu proyecto",
	}
}
