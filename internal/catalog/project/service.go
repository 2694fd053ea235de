// Copyright (c) 2026 VideoVenta. All rights reserved.
// Author: studio@videoventa.mx

package project

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/videoventa-mx/videoventa/internal/platform/apperr"
	"github.com/videoventa-mx/videoventa/internal/platform/validate"
	"github.com/videoventa-mx/videoventa/pkg/uuid"
)

// Service owns the project lifecycle, the status pipeline, and the portal
// visibility rule for download links.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (service *Service) ListProjects(context context.Context, limit, offset int) ([]*Project, int, error) {
	return service.repo.ListProjects(context, limit, offset)
}

func (service *Service) GetProject(context context.Context, id string) (*Project, error) {
	if !uuid.IsValid(id) {
		return nil, apperr.NotFound("Project")
	}
	return service.repo.GetProject(context, id)
}

// ListClientProjects returns a client's projects as seen from the public
// portal: download links of unfinished projects are withheld.
func (service *Service) ListClientProjects(context context.Context, clientID string) ([]*Project, error) {
	if !uuid.IsValid(clientID) {
		return nil, apperr.NotFound("Client")
	}

	projects, err := service.repo.ListProjectsByClient(context, clientID)
	if err != nil {
		return nil, err
	}

	visible := make([]*Project, 0, len(projects))
	for _, p := range projects {
		visible = append(visible, p.PublicView())
	}
	return visible, nil
}

// CreateProject opens a new project in the pending stage.
func (service *Service) CreateProject(context context.Context, input CreateInput) (*Project, error) {
	validator := &validate.Validator{}
	validator.Required(FieldName, input.Name).MaxLen(FieldName, input.Name, 200)
	validator.Required(FieldClientID, input.ClientID).UUID(FieldClientID, input.ClientID)
	validator.OneOf(FieldType, string(input.Type), string(TypeNarrated), string(TypeSung), string(TypeMixed))
	if input.Quantity != nil {
		validator.Min(FieldQuantity, *input.Quantity, 1)
	}
	if err := validator.Err(); err != nil {
		return nil, err
	}

	project := &Project{
		ID:            uuid.New(),
		ClientID:      strings.ToLower(input.ClientID),
		Name:          strings.TrimSpace(input.Name),
		Type:          input.Type,
		Duration:      input.Duration,
		Quantity:      input.Quantity,
		Status:        StatusPending,
		DownloadLinks: []DownloadLink{},
	}

	if err := service.repo.CreateProject(context, project); err != nil {
		// The only constraint on insert is the client foreign key, so a
		// conflict here means the client does not exist.
		if appErr := apperr.As(err); appErr != nil && appErr.Code == "CONFLICT" {
			return nil, apperr.NotFound("Client")
		}
		return nil, err
	}

	service.logger.Info("project_created",
		slog.String("project_id", project.ID),
		slog.String("client_id", project.ClientID),
		slog.String("type", string(project.Type)),
	)
	return project, nil
}

// UpdateProject applies a partial update, validating any replacement
// download links and the requested status.
func (service *Service) UpdateProject(context context.Context, id string, input UpdateInput) (*Project, error) {
	project, err := service.GetProject(context, id)
	if err != nil {
		return nil, err
	}

	previousStatus := project.Status

	if input.Name != nil {
		project.Name = strings.TrimSpace(*input.Name)
	}
	if input.Type != nil {
		project.Type = *input.Type
	}
	if input.Duration != nil {
		project.Duration = input.Duration
	}
	if input.Quantity != nil {
		project.Quantity = input.Quantity
	}
	if input.DownloadLinks != nil {
		project.DownloadLinks = *input.DownloadLinks
	}
	if input.DeliveryDate != nil {
		project.DeliveryDate = input.DeliveryDate
	}

	validator := &validate.Validator{}
	validator.Required(FieldName, project.Name).MaxLen(FieldName, project.Name, 200)
	validator.OneOf(FieldType, string(project.Type), string(TypeNarrated), string(TypeSung), string(TypeMixed))
	if input.Quantity != nil {
		validator.Min(FieldQuantity, *input.Quantity, 1)
	}
	for _, link := range project.DownloadLinks {
		validator.Required(FieldLinks, link.Title)
		validator.URL(FieldLinks, link.URL)
	}
	if input.Status != nil {
		validator.Custom(FieldStatus, !input.Status.Valid(),
			fmt.Sprintf("Unknown status %q", *input.Status))
	}
	if err := validator.Err(); err != nil {
		return nil, err
	}

	if input.Status != nil {
		project.Status = *input.Status
	}

	if err := service.repo.UpdateProject(context, project); err != nil {
		return nil, err
	}

	if project.Status != previousStatus {
		service.logger.Info("project_status_changed",
			slog.String("project_id", project.ID),
			slog.String("from", string(previousStatus)),
			slog.String("to", string(project.Status)),
		)
	}
	return project, nil
}

func (service *Service) DeleteProject(context context.Context, id string) error {
	if !uuid.IsValid(id) {
		return apperr.NotFound("Project")
	}

	if err := service.repo.DeleteProject(context, id); err != nil {
		return err
	}

	service.logger.Warn("project_deleted", slog.String("project_id", id))
	return nil
}
