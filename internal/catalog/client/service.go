// Copyright (c) 2026 VideoVenta. All rights reserved.
// Author: studio@videoventa.mx

package client

import (
	"context"
	"log/slog"
	"strings"

	"github.com/videoventa-mx/videoventa/internal/platform/apperr"
	"github.com/videoventa-mx/videoventa/internal/platform/validate"
	"github.com/videoventa-mx/videoventa/pkg/slug"
	"github.com/videoventa-mx/videoventa/pkg/uuid"
)

// ProjectCounter reports how many projects reference a client. The project
// repository implements it; the indirection keeps this package free of a
// dependency on the project package.
type ProjectCounter interface {
	CountByClient(ctx context.Context, clientID string) (int, error)
}

// Service owns the client lifecycle and the username rules.
type Service struct {
	repo     Repository
	projects ProjectCounter
	logger   *slog.Logger
}

func NewService(repo Repository, projects ProjectCounter, logger *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		projects: projects,
		logger:   logger,
	}
}

func (service *Service) ListClients(context context.Context, limit, offset int) ([]*Client, int, error) {
	return service.repo.ListClients(context, limit, offset)
}

func (service *Service) GetClient(context context.Context, id string) (*Client, error) {
	if !uuid.IsValid(id) {
		return nil, apperr.NotFound("Client")
	}
	return service.repo.GetClient(context, id)
}

// GetClientByUsername resolves a portal slug. This is the public entry point
// of the client portal, so it leaks nothing beyond the stored record.
func (service *Service) GetClientByUsername(context context.Context, username string) (*Client, error) {
	return service.repo.GetClientByUsername(context, strings.ToLower(strings.TrimSpace(username)))
}

// CreateClient registers a client.
//
// An empty username is derived from the name. A username already in use is
// rejected with a conflict; it is never auto-suffixed, because issued portal
// links must stay stable.
func (service *Service) CreateClient(context context.Context, input CreateInput) (*Client, error) {
	username := strings.ToLower(strings.TrimSpace(input.Username))
	if username == "" {
		username = slug.From(input.Name)
	}

	validator := &validate.Validator{}
	validator.Required(FieldName, input.Name).MaxLen(FieldName, input.Name, 200)
	validator.Required(FieldUsername, username).Slug(FieldUsername, username)
	if input.Email != nil && *input.Email != "" {
		validator.Email(FieldEmail, *input.Email)
	}
	if err := validator.Err(); err != nil {
		return nil, err
	}

	client := &Client{
		ID:       uuid.New(),
		Name:     strings.TrimSpace(input.Name),
		Email:    input.Email,
		Phone:    input.Phone,
		Username: username,
	}

	// The unique index is the real guard; the storage layer maps its
	// violation to a conflict.
	if err := service.repo.CreateClient(context, client); err != nil {
		if appErr := apperr.As(err); appErr != nil && appErr.Code == "CONFLICT" {
			return nil, apperr.Conflict("Username is already taken")
		}
		return nil, err
	}

	service.logger.Info("client_created",
		slog.String("client_id", client.ID),
		slog.String("username", client.Username),
	)
	return client, nil
}

// UpdateClient applies a partial update. Changing the username moves the
// portal URL, so the same collision rule applies as at creation.
func (service *Service) UpdateClient(context context.Context, id string, input UpdateInput) (*Client, error) {
	client, err := service.GetClient(context, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		client.Name = strings.TrimSpace(*input.Name)
	}
	if input.Email != nil {
		client.Email = input.Email
	}
	if input.Phone != nil {
		client.Phone = input.Phone
	}
	if input.Username != nil {
		client.Username = strings.ToLower(strings.TrimSpace(*input.Username))
	}

	validator := &validate.Validator{}
	validator.Required(FieldName, client.Name).MaxLen(FieldName, client.Name, 200)
	validator.Required(FieldUsername, client.Username).Slug(FieldUsername, client.Username)
	if client.Email != nil && *client.Email != "" {
		validator.Email(FieldEmail, *client.Email)
	}
	if err := validator.Err(); err != nil {
		return nil, err
	}

	if err := service.repo.UpdateClient(context, client); err != nil {
		if appErr := apperr.As(err); appErr != nil && appErr.Code == "CONFLICT" {
			return nil, apperr.Conflict("Username is already taken")
		}
		return nil, err
	}

	service.logger.Info("client_updated", slog.String("client_id", client.ID))
	return client, nil
}

// DeleteClient removes a client without projects.
//
// A client with projects is rejected so delivered work never becomes
// orphaned; the admin must delete or reassign the projects first. The
// foreign key backstops the same rule in the database.
func (service *Service) DeleteClient(context context.Context, id string) error {
	if !uuid.IsValid(id) {
		return apperr.NotFound("Client")
	}

	count, err := service.projects.CountByClient(context, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return apperr.Conflict("Client still has projects; delete them first")
	}

	if err := service.repo.DeleteClient(context, id); err != nil {
		return err
	}

	service.logger.Warn("client_deleted", slog.String("client_id", id))
	return nil
}
