// Copyright (c) 2026 VideoVenta. All rights reserved.
// Author: studio@videoventa.mx

/*
Package portal renders the intellectual-property ownership certificate for
the client delivery portal.

The certificate is a self-contained printable HTML page listing a client's
completed deliverables. It exists only for clients with at least one
completed project; everyone else gets a 404, identical to an unknown
username.
*/
package portal

import (
	"context"
	"html/template"
	"log/slog"
	"time"

	"github.com/videoventa-mx/videoventa/internal/catalog/client"
	"github.com/videoventa-mx/videoventa/internal/catalog/project"
	"github.com/videoventa-mx/videoventa/internal/messaging"
	"github.com/videoventa-mx/videoventa/internal/platform/apperr"
	"github.com/videoventa-mx/videoventa/internal/siteconfig"
)

// # Data Sources

// ClientSource resolves portal usernames. Implemented by the client service.
type ClientSource interface {
	GetClientByUsername(ctx context.Context, username string) (*client.Client, error)
}

// ProjectSource lists a client's portal-visible projects. Implemented by the
// project service; download links of unfinished work are already withheld.
type ProjectSource interface {
	ListClientProjects(ctx context.Context, clientID string) ([]*project.Project, error)
}

// ConfigSource supplies the business identity for the letterhead.
// Implemented by the site configuration service.
type ConfigSource interface {
	Get(ctx context.Context) (*siteconfig.SiteConfig, error)
}

// storageMonths is how long deliverables stay downloadable after issuance.
const storageMonths = 12

// Service assembles certificate data and renders the document.
type Service struct {
	clients  ClientSource
	projects ProjectSource
	configs  ConfigSource
	logger   *slog.Logger
}

func NewService(clients ClientSource, projects ProjectSource, configs ConfigSource, logger *slog.Logger) *Service {
	return &Service{
		clients:  clients,
		projects: projects,
		configs:  configs,
		logger:   logger,
	}
}

// Certificate renders the ownership certificate for a username.
//
// Only completed projects appear on the document; a client without any
// completed work has nothing to certify and gets a 404.
func (service *Service) Certificate(context context.Context, username string) ([]byte, error) {
	portalClient, err := service.clients.GetClientByUsername(context, username)
	if err != nil {
		return nil, err
	}

	projects, err := service.projects.ListClientProjects(context, portalClient.ID)
	if err != nil {
		return nil, err
	}

	var completed []*project.Project
	for _, p := range projects {
		if p.Status == project.StatusCompleted {
			completed = append(completed, p)
		}
	}
	if len(completed) == 0 {
		return nil, apperr.NotFound("Certificate")
	}

	config, err := service.configs.Get(context)
	if err != nil {
		return nil, err
	}

	// The support button opens a WhatsApp chat prefilled with the client's
	// name. No configured number means no button, never an error.
	var supportLink template.URL
	if config.WhatsAppNumber != "" {
		supportLink = template.URL(messaging.BuildWhatsAppLink(
			config.WhatsAppNumber, messaging.SupportMessage(portalClient.Name)))
	}

	issuedAt := time.Now()
	document, err := renderCertificate(certificateData{
		BusinessName: config.BusinessName,
		Client:       portalClient,
		Projects:     completed,
		PortalURL:    "https://videoventa.com/client/" + portalClient.Username,
		SupportLink:  supportLink,
		IssuedAt:     issuedAt,
		ExpiresAt:    issuedAt.AddDate(0, storageMonths, 0),
	})
	if err != nil {
		return nil, apperr.Internal(err)
	}

	service.logger.Info("certificate_issued",
		slog.String("client_id", portalClient.ID),
		slog.Int("projects", len(completed)),
	)
	return document, nil
}
