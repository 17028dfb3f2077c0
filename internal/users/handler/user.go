package handler

import (
	"encoding/json"
	"net/http"

	"github.com/LeQuyetTien/vidly/internal/users/service"
	"github.com/LeQuyetTien/vidly/pkg/auth"
	apperrors "github.com/LeQuyetTien/vidly/pkg/errors"
	httputil "github.com/LeQuyetTien/vidly/pkg/http"
	"github.com/LeQuyetTien/vidly/pkg/logger"
	"github.com/LeQuyetTien/vidly/pkg/middleware"
	"github.com/LeQuyetTien/vidly/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type UserHandler struct {
	service  service.UserService
	verifier *auth.Verifier
	log      *logger.Logger
}

func NewUserHandler(service service.UserService, verifier *auth.Verifier, log *logger.Logger) *UserHandler {
	return &UserHandler{
		service:  service,
		verifier: verifier,
		log:      log,
	}
}

func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input model.UserInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		if writeErr := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "Create", "error", writeErr)
		}
		return
	}

	user, err := h.service.Create(r.Context(), &input)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Create", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, user); err != nil {
		h.log.Error("failed to write success response", "handler", "Create", "error", err)
	}
}

// Me resolves the authenticated caller from the verified token identity.
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	identity := middleware.IdentityFromContext(r.Context())
	if identity == nil {
		if writeErr := httputil.WriteError(w, apperrors.Unauthorized("Access denied. No token provided.")); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Me", "error", writeErr)
		}
		return
	}

	user, err := h.service.GetByID(r.Context(), identity.UserID)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Me", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, user); err != nil {
		h.log.Error("failed to write success response", "handler", "Me", "error", err)
	}
}

func (h *UserHandler) GetAll(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	users, err := h.service.GetAll(r.Context())
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetAll", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, users); err != nil {
		h.log.Error("failed to write success response", "handler", "GetAll", "error", err)
	}
}

func (h *UserHandler) RegisterRoutes(router *httprouter.Router) {
	requireAuth := middleware.RequireAuth(h.verifier, h.log)
	requireAdmin := middleware.RequireAdmin(h.verifier, h.log)

	router.POST("/users", h.Create)
	router.GET("/users/me", requireAuth(h.Me))
	router.GET("/users", requireAdmin(h.GetAll))
}
