package orders

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/pkg/errors"

	"github.com/Vovarama1992/jannu-assistant/internal/auth"
	"github.com/Vovarama1992/jannu-assistant/internal/httpx"
)

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req CheckoutRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid json")
		return
	}

	if u, ok := auth.UserFrom(r.Context()); ok {
		req.UserID = u.ID
	}

	o, err := h.svc.Checkout(r.Context(), req)
	if err != nil {
		writeErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, o)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	o, err := h.svc.Get(r.Context(), chi.URLParam(r, "orderNumber"))
	if err != nil {
		writeErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, o)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.List(r.Context())
	if err != nil {
		writeErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, list)
}

// Mine lists the orders placed by the logged-in user.
func (h *Handler) Mine(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.UserFrom(r.Context())
	if !ok {
		httpx.Error(w, http.StatusUnauthorized, "not authenticated")
		return
	}
	list, err := h.svc.ListByUser(r.Context(), u.ID)
	if err != nil {
		writeErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, list)
}

func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var upd StatusUpdate
	if err := httpx.DecodeJSON(r, &upd); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid json")
		return
	}

	o, err := h.svc.UpdateStatus(r.Context(), chi.URLParam(r, "orderNumber"), upd)
	if err != nil {
		writeErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, o)
}

func writeErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		httpx.Error(w, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrInvalidOrder), errors.Is(err, ErrInvalidStatus):
		httpx.Error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrPaymentFailed):
		httpx.Error(w, http.StatusPaymentRequired, err.Error())
	default:
		httpx.Error(w, http.StatusInternalServerError, "internal error")
	}
}
