package handler

import (
	"encoding/json"
	"net/http"

	"github.com/LeQuyetTien/vidly/internal/movies/service"
	"github.com/LeQuyetTien/vidly/pkg/auth"
	httputil "github.com/LeQuyetTien/vidly/pkg/http"
	"github.com/LeQuyetTien/vidly/pkg/logger"
	"github.com/LeQuyetTien/vidly/pkg/middleware"
	"github.com/LeQuyetTien/vidly/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type MovieHandler struct {
	service  service.MovieService
	verifier *auth.Verifier
	log      *logger.Logger
}

func NewMovieHandler(service service.MovieService, verifier *auth.Verifier, log *logger.Logger) *MovieHandler {
	return &MovieHandler{
		service:  service,
		verifier: verifier,
		log:      log,
	}
}

func (h *MovieHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input model.MovieInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		if writeErr := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "Create", "error", writeErr)
		}
		return
	}

	movie, err := h.service.Create(r.Context(), &input)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Create", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, movie); err != nil {
		h.log.Error("failed to write success response", "handler", "Create", "error", err)
	}
}

func (h *MovieHandler) GetByID(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	movie, err := h.service.GetByID(r.Context(), ps.ByName("id"))
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetByID", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, movie); err != nil {
		h.log.Error("failed to write success response", "handler", "GetByID", "error", err)
	}
}

func (h *MovieHandler) GetAll(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	movies, err := h.service.GetAll(r.Context())
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetAll", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, movies); err != nil {
		h.log.Error("failed to write success response", "handler", "GetAll", "error", err)
	}
}

func (h *MovieHandler) Update(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var input model.MovieInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		if writeErr := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "Update", "error", writeErr)
		}
		return
	}

	movie, err := h.service.Update(r.Context(), ps.ByName("id"), &input)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Update", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, movie); err != nil {
		h.log.Error("failed to write success response", "handler", "Update", "error", err)
	}
}

func (h *MovieHandler) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	movie, err := h.service.Delete(r.Context(), ps.ByName("id"))
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Delete", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, movie); err != nil {
		h.log.Error("failed to write success response", "handler", "Delete", "error", err)
	}
}

func (h *MovieHandler) RegisterRoutes(router *httprouter.Router) {
	requireAuth := middleware.RequireAuth(h.verifier, h.log)
	requireAdmin := middleware.RequireAdmin(h.verifier, h.log)

	router.GET("/movies", h.GetAll)
	router.GET("/movies/:id", h.GetByID)
	router.POST("/movies", requireAuth(h.Create))
	router.PUT("/movies/:id", requireAuth(h.Update))
	router.DELETE("/movies/:id", requireAdmin(h.Delete))
}
