// Copyright (c) 2026 VideoVenta. All rights reserved.
// Author: studio@videoventa.mx

package siteconfig_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/videoventa-mx/videoventa/internal/platform/apperr"
	"github.com/videoventa-mx/videoventa/internal/platform/dberr"
	"github.com/videoventa-mx/videoventa/internal/pricing"
	"github.com/videoventa-mx/videoventa/internal/siteconfig"
	"github.com/videoventa-mx/videoventa/pkg/pointer"
)

// fakeRepository is an in-memory Repository for service tests.
type fakeRepository struct {
	config  *siteconfig.SiteConfig
	inserts int
	updates int
}

func (f *fakeRepository) Get(_ context.Context) (*siteconfig.SiteConfig, error) {
	if f.config == nil {
		return nil, dberr.ErrNotFound
	}
	copied := *f.config
	return &copied, nil
}

func (f *fakeRepository) Insert(_ context.Context, config *siteconfig.SiteConfig) error {
	f.inserts++
	if f.config != nil {
		return apperr.Conflict("A record with the same unique value already exists")
	}
	copied := *config
	copied.UpdatedAt = time.Now()
	f.config = &copied
	return nil
}

func (f *fakeRepository) Update(_ context.Context, input siteconfig.UpdateInput) (*siteconfig.SiteConfig, error) {
	f.updates++
	if f.config == nil {
		return nil, dberr.ErrNotFound
	}
	if input.WhatsAppNumber != nil {
		f.config.WhatsAppNumber = *input.WhatsAppNumber
	}
	if input.BusinessName != nil {
		f.config.BusinessName = *input.BusinessName
	}
	if input.Pricing != nil {
		f.config.Pricing = *input.Pricing
	}
	if input.SampleVideos != nil {
		f.config.SampleVideos = *input.SampleVideos
	}
	if input.SiteContent != nil {
		f.config.SiteContent = *input.SiteContent
	}
	if input.Messaging != nil {
		f.config.Messaging = *input.Messaging
	}
	f.config.UpdatedAt = time.Now()
	copied := *f.config
	return &copied, nil
}

func newTestService(repo *fakeRepository) *siteconfig.Service {
	return siteconfig.NewService(repo, nil, slog.New(slog.DiscardHandler))
}

/*
TestService_Get_SeedsDefaults confirms a fresh deployment is seeded with the
factory document on first read.
*/
func TestService_Get_SeedsDefaults(t *testing.T) {
	repo := &fakeRepository{}
	service := newTestService(repo)

	config, err := service.Get(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, repo.inserts)
	assert.Equal(t, "default", config.ID)
	assert.Equal(t, "VideoVenta", config.BusinessName)
	assert.Equal(t, "+52 55 1234 5678", config.WhatsAppNumber)
	assert.Len(t, config.SampleVideos, 3)
	assert.NoError(t, config.Pricing.Validate())

	// Second read must not seed again.
	_, err = service.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, repo.inserts)
}

/*
TestService_Update_ShallowMerge confirms absent top-level keys survive a
partial patch untouched.
*/
func TestService_Update_ShallowMerge(t *testing.T) {
	repo := &fakeRepository{}
	service := newTestService(repo)

	_, err := service.Get(context.Background())
	require.NoError(t, err)

	updated, err := service.Update(context.Background(), siteconfig.UpdateInput{
		BusinessName: pointer.To("Reelstudio.pro"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Reelstudio.pro", updated.BusinessName)
	// Untouched keys keep their seeded values.
	assert.Equal(t, "+52 55 1234 5678", updated.WhatsAppNumber)
	assert.Len(t, updated.SampleVideos, 3)
	assert.NoError(t, updated.Pricing.Validate())
}

/*
TestService_Update_Validation covers patch rejection paths.
*/
func TestService_Update_Validation(t *testing.T) {
	t.Run("empty_patch_rejected", func(t *testing.T) {
		service := newTestService(&fakeRepository{})

		_, err := service.Update(context.Background(), siteconfig.UpdateInput{})
		require.Error(t, err)
		assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
	})

	t.Run("whatsapp_without_prefix_rejected", func(t *testing.T) {
		service := newTestService(&fakeRepository{})

		_, err := service.Update(context.Background(), siteconfig.UpdateInput{
			WhatsAppNumber: pointer.To("55 1234 5678"),
		})
		require.Error(t, err)
		assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
	})

	t.Run("broken_pricing_table_rejected", func(t *testing.T) {
		repo := &fakeRepository{}
		service := newTestService(repo)

		broken := siteconfig.DefaultConfig().Pricing
		broken.NarratedVideos.Speeds["discount"] = pricing.Multiplier{Multiplier: 0.5}

		_, err := service.Update(context.Background(), siteconfig.UpdateInput{Pricing: &broken})
		require.Error(t, err)
		assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
		assert.Equal(t, 0, repo.updates)
	})

	t.Run("invalid_sample_video_url_rejected", func(t *testing.T) {
		service := newTestService(&fakeRepository{})

		_, err := service.Update(context.Background(), siteconfig.UpdateInput{
			SampleVideos: pointer.To([]siteconfig.SampleVideo{
				{ID: "1", Title: "Demo", VideoURL: "ftp://example.com/v.mp4"},
			}),
		})
		require.Error(t, err)
		assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
	})
}

/*
TestService_Update_SeedsBeforePatch confirms patching a fresh deployment
first seeds the defaults so the merge has a base document.
*/
func TestService_Update_SeedsBeforePatch(t *testing.T) {
	repo := &fakeRepository{}
	service := newTestService(repo)

	updated, err := service.Update(context.Background(), siteconfig.UpdateInput{
		WhatsAppNumber: pointer.To("+52 81 9999 0000"),
	})
	require.NoError(t, err)

	assert.Equal(t, 1, repo.inserts)
	assert.Equal(t, "+52 81 9999 0000", updated.WhatsAppNumber)
	assert.Equal(t, "VideoVenta", updated.BusinessName)
}

/*
TestDefaultConfig_FactoryCopy pins the customer-facing copy of the factory
document. These strings appear verbatim on the public site, so wording drift
here is a regression, not a refactor.
*/
func TestDefaultConfig_FactoryCopy(t *testing.T) {
	config := siteconfig.DefaultConfig()
	narrated := config.Pricing.NarratedVideos

	assert.Equal(t, "Normal (2-5 días)", narrated.Speeds[pricing.SpeedNormal].Label)
	assert.Equal(t, "Rápido (2-3 días)", narrated.Speeds[pricing.SpeedFast].Label)
	assert.Equal(t, "Express (1-2 días)", narrated.Speeds[pricing.SpeedExpress].Label)

	assert.Equal(t, []string{
		"HD Horizontal (1920x1080)",
		"1 Edición profesional incluida",
		"Prompt personalizado",
		"Calidad de imagen profesional",
		"Estilo de imágenes 2.5D",
		"Variedad de temas: Guerra, Peleas, Ángeles, Fantasía, Futurista, Histórico",
	}, narrated.VideoFeatures)
}

/*
TestService_WhatsAppNumber confirms order links read the seeded contact number.
*/
func TestService_WhatsAppNumber(t *testing.T) {
	service := newTestService(&fakeRepository{})

	number, err := service.WhatsAppNumber(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "+52 55 1234 5678", number)
}

/*
TestService_PricingConfig confirms the quoting engine reads the live table.
*/
func TestService_PricingConfig(t *testing.T) {
	service := newTestService(&fakeRepository{})

	cfg, err := service.PricingConfig(context.Background())
	require.NoError(t, err)

	quote, err := pricing.QuoteNarrated(cfg, pricing.NarratedSelection{
		Duration: "5-10", Speed: "normal", Quantity: "30",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(288000), quote.TotalMXNCents)
	assert.Equal(t, int64(16000), quote.TotalUSDCents)
}
