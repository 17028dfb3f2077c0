package handler

import (
	"encoding/json"
	"net/http"

	"github.com/LeQuyetTien/vidly/internal/genres/service"
	"github.com/LeQuyetTien/vidly/pkg/auth"
	httputil "github.com/LeQuyetTien/vidly/pkg/http"
	"github.com/LeQuyetTien/vidly/pkg/logger"
	"github.com/LeQuyetTien/vidly/pkg/middleware"
	"github.com/LeQuyetTien/vidly/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type GenreHandler struct {
	service  service.GenreService
	verifier *auth.Verifier
	log      *logger.Logger
}

func NewGenreHandler(service service.GenreService, verifier *auth.Verifier, log *logger.Logger) *GenreHandler {
	return &GenreHandler{
		service:  service,
		verifier: verifier,
		log:      log,
	}
}

func (h *GenreHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input model.GenreInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		if writeErr := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "Create", "error", writeErr)
		}
		return
	}

	genre, err := h.service.Create(r.Context(), &input)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Create", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, genre); err != nil {
		h.log.Error("failed to write success response", "handler", "Create", "error", err)
	}
}

func (h *GenreHandler) GetByID(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	genre, err := h.service.GetByID(r.Context(), ps.ByName("id"))
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetByID", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, genre); err != nil {
		h.log.Error("failed to write success response", "handler", "GetByID", "error", err)
	}
}

func (h *GenreHandler) GetAll(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	genres, err := h.service.GetAll(r.Context())
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetAll", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, genres); err != nil {
		h.log.Error("failed to write success response", "handler", "GetAll", "error", err)
	}
}

func (h *GenreHandler) Update(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var input model.GenreInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		if writeErr := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "Update", "error", writeErr)
		}
		return
	}

	genre, err := h.service.Update(r.Context(), ps.ByName("id"), &input)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Update", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, genre); err != nil {
		h.log.Error("failed to write success response", "handler", "Update", "error", err)
	}
}

func (h *GenreHandler) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	genre, err := h.service.Delete(r.Context(), ps.ByName("id"))
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Delete", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, genre); err != nil {
		h.log.Error("failed to write success response", "handler", "Delete", "error", err)
	}
}

func (h *GenreHandler) RegisterRoutes(router *httprouter.Router) {
	requireAuth := middleware.RequireAuth(h.verifier, h.log)
	requireAdmin := middleware.RequireAdmin(h.verifier, h.log)

	router.GET("/genres", h.GetAll)
	router.GET("/genres/:id", h.GetByID)
	router.POST("/genres", requireAuth(h.Create))
	router.PUT("/genres/:id", requireAuth(h.Update))
	router.DELETE("/genres/:id", requireAdmin(h.Delete))
}
