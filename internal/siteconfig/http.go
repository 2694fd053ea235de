// Copyright (c) 2026 VideoVenta. All rights reserved.
// Author: studio@videoventa.mx

package siteconfig

import (
	"net/http"

	requestutil "github.com/videoventa-mx/videoventa/internal/platform/request"
	"github.com/videoventa-mx/videoventa/internal/platform/respond"
)

// Handler exposes the configuration document over HTTP.
//
// Routing is split by the composition root: GET is public (the landing page
// boots from it), PUT sits behind the admin session gate.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// GetConfig handles GET /api/config.
func (handler *Handler) GetConfig(writer http.ResponseWriter, request *http.Request) {
	config, err := handler.service.Get(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, config)
}

// UpdateConfig handles PUT /api/config. Admin only.
//
// The body is a shallow-merge patch: only the top-level keys present are
// replaced. The full resulting document is returned.
func (handler *Handler) UpdateConfig(writer http.ResponseWriter, request *http.Request) {
	var input UpdateInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	config, err := handler.service.Update(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, config)
}
