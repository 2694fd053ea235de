// Copyright (c) 2026 VideoVenta. All rights reserved.
// Author: studio@videoventa.mx

package portal_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/videoventa-mx/videoventa/internal/catalog/client"
	"github.com/videoventa-mx/videoventa/internal/catalog/project"
	"github.com/videoventa-mx/videoventa/internal/platform/apperr"
	"github.com/videoventa-mx/videoventa/internal/platform/dberr"
	"github.com/videoventa-mx/videoventa/internal/portal"
	"github.com/videoventa-mx/videoventa/internal/siteconfig"
	"github.com/videoventa-mx/videoventa/pkg/pointer"
	"github.com/videoventa-mx/videoventa/pkg/uuid"
)

type fakeClientSource struct {
	client *client.Client
}

func (f *fakeClientSource) GetClientByUsername(_ context.Context, username string) (*client.Client, error) {
	if f.client == nil || f.client.Username != username {
		return nil, dberr.ErrNotFound
	}
	return f.client, nil
}

type fakeProjectSource struct {
	projects []*project.Project
}

func (f *fakeProjectSource) ListClientProjects(_ context.Context, _ string) ([]*project.Project, error) {
	return f.projects, nil
}

type fakeConfigSource struct{}

func (f *fakeConfigSource) Get(_ context.Context) (*siteconfig.SiteConfig, error) {
	return siteconfig.DefaultConfig(), nil
}

func newTestService(clients *fakeClientSource, projects *fakeProjectSource) *portal.Service {
	return portal.NewService(clients, projects, &fakeConfigSource{}, slog.New(slog.DiscardHandler))
}

func testClient() *client.Client {
	return &client.Client{
		ID:       uuid.New(),
		Name:     "Casa Blanca",
		Email:    pointer.To("casa@blanca.mx"),
		Username: "casa-blanca",
	}
}

/*
TestService_Certificate covers rendering and the completed-work requirement.
*/
func TestService_Certificate(t *testing.T) {
	t.Run("renders_completed_projects", func(t *testing.T) {
		c := testClient()
		service := newTestService(
			&fakeClientSource{client: c},
			&fakeProjectSource{projects: []*project.Project{
				{
					ID: uuid.New(), ClientID: c.ID, Name: "Campaña Otoño",
					Type: project.TypeNarrated, Status: project.StatusCompleted,
					DownloadLinks: []project.DownloadLink{
						{ID: "1", Title: "Master 4K", URL: "https://cdn.videoventa.mx/master.mp4"},
					},
				},
				{
					ID: uuid.New(), ClientID: c.ID, Name: "Campaña Invierno",
					Type: project.TypeSung, Status: project.StatusInProgress,
				},
			}},
		)

		document, err := service.Certificate(context.Background(), "casa-blanca")
		require.NoError(t, err)

		html := string(document)
		assert.Contains(t, html, "CERTIFICADO DE PROPIEDAD INTELECTUAL")
		assert.Contains(t, html, "Casa Blanca")
		assert.Contains(t, html, "casa@blanca.mx")
		assert.Contains(t, html, "Campaña Otoño")
		assert.Contains(t, html, "NARRATED")
		assert.Contains(t, html, "Master 4K")
		assert.Contains(t, html, "VideoVenta")
		assert.Contains(t, html, "https://videoventa.com/client/casa-blanca")
		// The footer links a prefilled WhatsApp support chat.
		assert.Contains(t, html, "Soporte por WhatsApp")
		assert.Contains(t, html, "https://api.whatsapp.com/send?phone=+525512345678&amp;text=")
		// Unfinished work never appears on the certificate.
		assert.NotContains(t, html, "Campaña Invierno")
	})

	t.Run("no_completed_projects_not_found", func(t *testing.T) {
		c := testClient()
		service := newTestService(
			&fakeClientSource{client: c},
			&fakeProjectSource{projects: []*project.Project{
				{ID: uuid.New(), ClientID: c.ID, Name: "Pendiente", Type: project.TypeMixed, Status: project.StatusPending},
			}},
		)

		_, err := service.Certificate(context.Background(), "casa-blanca")
		require.Error(t, err)
		assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
	})

	t.Run("unknown_username_not_found", func(t *testing.T) {
		service := newTestService(&fakeClientSource{}, &fakeProjectSource{})

		_, err := service.Certificate(context.Background(), "nadie")
		require.Error(t, err)
		assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
	})

	t.Run("client_name_is_escaped", func(t *testing.T) {
		c := testClient()
		c.Name = `<script>alert("x")</script>`
		service := newTestService(
			&fakeClientSource{client: c},
			&fakeProjectSource{projects: []*project.Project{
				{ID: uuid.New(), ClientID: c.ID, Name: "Entrega", Type: project.TypeNarrated, Status: project.StatusCompleted},
			}},
		)

		document, err := service.Certificate(context.Background(), "casa-blanca")
		require.NoError(t, err)
		assert.NotContains(t, string(document), "<script>")
	})
}
