// Copyright (c) 2026 VideoVenta. All rights reserved.
// Author: studio@videoventa.mx

package portal

import (
	"net/http"

	requestutil "github.com/videoventa-mx/videoventa/internal/platform/request"
	"github.com/videoventa-mx/videoventa/internal/platform/respond"
)

// Handler serves the certificate document. The route is registered by the
// composition root under the public clients router.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Certificate handles GET /api/clients/username/{username}/certificate.
// The response is a printable HTML document, not a JSON envelope.
func (handler *Handler) Certificate(writer http.ResponseWriter, request *http.Request) {
	document, err := handler.service.Certificate(request.Context(), requestutil.Param(request, "username"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.HTML(writer, http.StatusOK, document)
}
