// Copyright (c) 2026 VideoVenta. All rights reserved.
// Author: studio@videoventa.mx

package siteconfig

import "context"

// # Storage Contract

// Repository defines persistent storage for the configuration singleton.
type Repository interface {
	// Get returns the configuration row, or [dberr.ErrNotFound] on a fresh
	// deployment that has never been seeded.
	Get(ctx context.Context) (*SiteConfig, error)

	// Insert writes the initial configuration row. It fails with a conflict
	// if a row already exists.
	Insert(ctx context.Context, config *SiteConfig) error

	// Update applies a shallow-merge patch in a single atomic statement and
	// returns the resulting document.
	Update(ctx context.Context, input UpdateInput) (*SiteConfig, error)
}
