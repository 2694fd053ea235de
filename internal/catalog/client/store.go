// Copyright (c) 2026 VideoVenta. All rights reserved.
// Author: studio@videoventa.mx

package client

import "context"

// Repository defines persistent storage for clients.
type Repository interface {
	ListClients(ctx context.Context, limit, offset int) ([]*Client, int, error)
	GetClient(ctx context.Context, id string) (*Client, error)
	GetClientByUsername(ctx context.Context, username string) (*Client, error)
	CreateClient(ctx context.Context, client *Client) error
	UpdateClient(ctx context.Context, client *Client) error
	DeleteClient(ctx context.Context, id string) error
}
