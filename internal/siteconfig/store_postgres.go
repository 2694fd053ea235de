// Copyright (c) 2026 VideoVenta. All rights reserved.
// Author: studio@videoventa.mx

package siteconfig

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/videoventa-mx/videoventa/internal/platform/database/schema"
	"github.com/videoventa-mx/videoventa/internal/platform/dberr"
)

// PostgresRepository is the pgx-backed implementation of [Repository].
type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) Get(context context.Context) (*SiteConfig, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		schema.SiteConfig.ID, schema.SiteConfig.WhatsAppNumber, schema.SiteConfig.BusinessName,
		schema.SiteConfig.Pricing, schema.SiteConfig.SampleVideos, schema.SiteConfig.SiteContent,
		schema.SiteConfig.Messaging, schema.SiteConfig.UpdatedAt,
		schema.SiteConfig.Table, schema.SiteConfig.ID,
	)

	config := &SiteConfig{}
	var pricingRaw, videosRaw, contentRaw, messagingRaw []byte

	err := repository.db.QueryRow(context, query, schema.SiteConfigSingletonID).Scan(
		&config.ID, &config.WhatsAppNumber, &config.BusinessName,
		&pricingRaw, &videosRaw, &contentRaw, &messagingRaw, &config.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_site_config")
	}

	if err := unmarshalDocuments(config, pricingRaw, videosRaw, contentRaw, messagingRaw); err != nil {
		return nil, err
	}
	return config, nil
}

func (repository *PostgresRepository) Insert(context context.Context, config *SiteConfig) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING %s
	`,
		schema.SiteConfig.Table,
		schema.SiteConfig.ID, schema.SiteConfig.WhatsAppNumber, schema.SiteConfig.BusinessName,
		schema.SiteConfig.Pricing, schema.SiteConfig.SampleVideos, schema.SiteConfig.SiteContent,
		schema.SiteConfig.Messaging, schema.SiteConfig.UpdatedAt,
		schema.SiteConfig.UpdatedAt,
	)

	pricingRaw, err := json.Marshal(config.Pricing)
	if err != nil {
		return dberr.Wrap(err, "encode_site_config")
	}
	videosRaw, err := json.Marshal(config.SampleVideos)
	if err != nil {
		return dberr.Wrap(err, "encode_site_config")
	}
	contentRaw, err := json.Marshal(config.SiteContent)
	if err != nil {
		return dberr.Wrap(err, "encode_site_config")
	}
	messagingRaw, err := json.Marshal(config.Messaging)
	if err != nil {
		return dberr.Wrap(err, "encode_site_config")
	}

	err = repository.db.QueryRow(context, query,
		config.ID, config.WhatsAppNumber, config.BusinessName,
		pricingRaw, videosRaw, contentRaw, messagingRaw,
	).Scan(&config.UpdatedAt)
	return dberr.Wrap(err, "insert_site_config")
}

// Update applies the patch in one statement. COALESCE keeps the stored value
// for every column whose argument arrives as NULL, which makes the shallow
// merge atomic without a read-modify-write cycle.
func (repository *PostgresRepository) Update(context context.Context, input UpdateInput) (*SiteConfig, error) {
	query := fmt.Sprintf(`
		UPDATE %s SET
			%s = COALESCE($2, %s),
			%s = COALESCE($3, %s),
			%s = COALESCE($4::jsonb, %s),
			%s = COALESCE($5::jsonb, %s),
			%s = COALESCE($6::jsonb, %s),
			%s = COALESCE($7::jsonb, %s),
			%s = NOW()
		WHERE %s = $1
		RETURNING %s, %s, %s, %s, %s, %s, %s, %s
	`,
		schema.SiteConfig.Table,
		schema.SiteConfig.WhatsAppNumber, schema.SiteConfig.WhatsAppNumber,
		schema.SiteConfig.BusinessName, schema.SiteConfig.BusinessName,
		schema.SiteConfig.Pricing, schema.SiteConfig.Pricing,
		schema.SiteConfig.SampleVideos, schema.SiteConfig.SampleVideos,
		schema.SiteConfig.SiteContent, schema.SiteConfig.SiteContent,
		schema.SiteConfig.Messaging, schema.SiteConfig.Messaging,
		schema.SiteConfig.UpdatedAt,
		schema.SiteConfig.ID,
		schema.SiteConfig.ID, schema.SiteConfig.WhatsAppNumber, schema.SiteConfig.BusinessName,
		schema.SiteConfig.Pricing, schema.SiteConfig.SampleVideos, schema.SiteConfig.SiteContent,
		schema.SiteConfig.Messaging, schema.SiteConfig.UpdatedAt,
	)

	pricingRaw, err := marshalOptional(input.Pricing)
	if err != nil {
		return nil, err
	}
	videosRaw, err := marshalOptional(input.SampleVideos)
	if err != nil {
		return nil, err
	}
	contentRaw, err := marshalOptional(input.SiteContent)
	if err != nil {
		return nil, err
	}
	messagingRaw, err := marshalOptional(input.Messaging)
	if err != nil {
		return nil, err
	}

	config := &SiteConfig{}
	var outPricing, outVideos, outContent, outMessaging []byte

	err = repository.db.QueryRow(context, query,
		schema.SiteConfigSingletonID,
		input.WhatsAppNumber, input.BusinessName,
		pricingRaw, videosRaw, contentRaw, messagingRaw,
	).Scan(
		&config.ID, &config.WhatsAppNumber, &config.BusinessName,
		&outPricing, &outVideos, &outContent, &outMessaging, &config.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "update_site_config")
	}

	if err := unmarshalDocuments(config, outPricing, outVideos, outContent, outMessaging); err != nil {
		return nil, err
	}
	return config, nil
}

// marshalOptional encodes a patch field, returning nil bytes (SQL NULL) for
// an absent field so COALESCE keeps the stored value.
func marshalOptional[T any](field *T) ([]byte, error) {
	if field == nil {
		return nil, nil
	}
	raw, err := json.Marshal(field)
	if err != nil {
		return nil, dberr.Wrap(err, "encode_site_config")
	}
	return raw, nil
}

func unmarshalDocuments(config *SiteConfig, pricingRaw, videosRaw, contentRaw, messagingRaw []byte) error {
	if err := json.Unmarshal(pricingRaw, &config.Pricing); err != nil {
		return dberr.Wrap(err, "decode_site_config")
	}
	if err := json.Unmarshal(videosRaw, &config.SampleVideos); err != nil {
		return dberr.Wrap(err, "decode_site_config")
	}
	if err := json.Unmarshal(contentRaw, &config.SiteContent); err != nil {
		return dberr.Wrap(err, "decode_site_config")
	}
	if err := json.Unmarshal(messagingRaw, &config.Messaging); err != nil {
		return dberr.Wrap(err, "decode_site_config")
	}
	return nil
}
