// Copyright (c) 2026 VideoVenta. All rights reserved.
// Author: studio@videoventa.mx

package client

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
	// Public: the portal resolves its slug here.
	router.Get("/username/{username}", handler.getClientByUsername)

	// Admin only
	router.Group(func(adminRoute chi.Router) {
		adminRoute.Use(middleware.RequireAdmin)

		adminRoute.Get("/", handler.listClients)
		adminRoute.Post("/", handler.createClient)
		adminRoute.Get("/{id}", handler.getClient)
		adminRoute.Patch("/{id}", handler.updateClient)
		adminRoute.Delete("/{id}", handler.deleteClient)
	})
}

func (handler *Handler) listClients(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	clients, total, err := handler.service.ListClients(request.Context(), paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, clients, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getClient(writer http.ResponseWriter, request *http.Request) {
	client, err := handler.service.GetClient(request.Context(), requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, client)
}

func (handler *Handler) getClientByUsername(writer http.ResponseWriter, request *http.Request) {
	client, err := handler.service.GetClientByUsername(request.Context(), requestutil.Param(request, "username"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, client)
}

func (handler *Handler) createClient(writer http.ResponseWriter, request *http.Request) {
	var input CreateInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	client, err := handler.service.CreateClient(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, client)
}

func (handler *Handler) updateClient(writer http.ResponseWriter, request *http.Request) {
	var input UpdateInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	client, err := handler.service.UpdateClient(request.Context(), requestutil.Param(request, "id"), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, client)
}

func (handler *Handler) deleteClient(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.DeleteClient(request.Context(), requestutil.Param(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
