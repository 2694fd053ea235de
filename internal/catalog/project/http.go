// Copyright (c) 2026 VideoVenta. All rights reserved.
// Author: studio@videoventa.mx

package project

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/videoventa-mx/videoventa/internal/platform/middleware"
	requestutil "github.com/videoventa-mx/videoventa/internal/platform/request"
	"github.com/videoventa-mx/videoventa/internal/platform/respond"
	"github.com/videoventa-mx/videoventa/pkg/pagination"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	// Public: the portal lists a client's projects with links filtered.
	router.Get("/client/{clientId}", handler.listClientProjects)

	// Admin only
	router.Group(func(adminRoute chi.Router) {
		adminRoute.Use(middleware.RequireAdmin)

		adminRoute.Get("/", handler.listProjects)
		adminRoute.Post("/", handler.createProject)
		adminRoute.Get("/{id}", handler.getProject)
		adminRoute.Patch("/{id}", handler.updateProject)
		adminRoute.Delete("/{id}", handler.deleteProject)
	})
}

func (handler *Handler) listProjects(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	projects, total, err := handler.service.ListProjects(request.Context(), paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, projects, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) listClientProjects(writer http.ResponseWriter, request *http.Request) {
	projects, err := handler.service.ListClientProjects(request.Context(), requestutil.Param(request, "clientId"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, projects)
}

func (handler *Handler) getProject(writer http.ResponseWriter, request *http.Request) {
	project, err := handler.service.GetProject(request.Context(), requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, project)
}

func (handler *Handler) createProject(writer http.ResponseWriter, request *http.Request) {
	var input CreateInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	project, err := handler.service.CreateProject(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, project)
}

func (handler *Handler) updateProject(writer http.ResponseWriter, request *http.Request) {
	var input UpdateInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	project, err := handler.service.UpdateProject(request.Context(), requestutil.Param(request, "id"), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, project)
}

func (handler *Handler) deleteProject(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.DeleteProject(request.Context(), requestutil.Param(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
