package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/pkg/errors"

	"github.com/Vovarama1992/jannu-assistant/internal/httpx"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

type credentials struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentials
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid json")
		return
	}

	sess, err := h.svc.Register(r.Context(), req.Name, req.Email, req.Password)
	switch {
	case errors.Is(err, ErrMissingFields), errors.Is(err, ErrEmailTaken):
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	case err != nil:
		httpx.Error(w, http.StatusInternalServerError, "server error")
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, sess)
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentials
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid json")
		return
	}

	sess, err := h.svc.Login(r.Context(), req.Email, req.Password)
	switch {
	case errors.Is(err, ErrInvalidCredentials):
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	case err != nil:
		httpx.Error(w, http.StatusInternalServerError, "server error")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, sess)
}

func (h *Handler) Users(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.Users(r.Context())
	if err != nil {
		httpx.Error(w, http.StatusInternalServerError, "server error")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, users)
}

// RegisterRoutes mounts /auth. The user listing sits behind protect and admin.
func RegisterRoutes(r chi.Router, h *Handler, protect, admin func(http.Handler) http.Handler) {
	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", h.Register)
		r.Post("/login", h.Login)
		r.With(protect, admin).Get("/users", h.Users)
	})
}
