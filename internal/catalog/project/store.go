// Copyright (c) 2026 VideoVenta. All rights reserved.
// Author: studio@videoventa.mx

package project

import "context"

// Repository defines persistent storage for projects.
type Repository interface {
	ListProjects(ctx context.Context, limit, offset int) ([]*Project, int, error)
	ListProjectsByClient(ctx context.Context, clientID string) ([]*Project, error)
	GetProject(ctx context.Context, id string) (*Project, error)
	CreateProject(ctx context.Context, project *Project) error
	UpdateProject(ctx context.Context, project *Project) error
	DeleteProject(ctx context.Context, id string) error

	// CountByClient backs the client deletion guard.
	CountByClient(ctx context.Context, clientID string) (int, error)
}
