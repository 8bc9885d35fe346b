package customer

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/rifasve/rifas/internal/customer"
)

type Handler struct {
	customers *customer.Service
}

func NewHandler(customers *customer.Service) *Handler {
	return &Handler{customers: customers}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Get("/search", h.search)
	r.Get("/{id}", h.get)
	r.Patch("/{id}", h.update)
}

type customerResponse struct {
	ID         uuid.UUID `json:"id"`
	Code       string    `json:"code"`
	FullName   string    `json:"full_name"`
	NationalID string    `json:"national_id,omitempty"`
	Phone      string    `json:"phone"`
	Address    string    `json:"address,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func toResponse(c *customer.Customer) customerResponse {
	return customerResponse{
		ID:         c.ID,
		Code:       c.Code,
		FullName:   c.FullName,
		NationalID: c.NationalID,
		Phone:      c.Phone,
		Address:    c.Address,
		CreatedAt:  c.CreatedAt,
	}
}

type createCustomerRequest struct {
	FullName   string `json:"full_name"`
	NationalID string `json:"national_id"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	c, err := h.customers.Create(r.Context(), customer.CreateParams{
		FullName:   req.FullName,
		NationalID: req.NationalID,
		Phone:      req.Phone,
		Address:    req.Address,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(c)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	customers, err := h.customers.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeCustomers(w, customers)
}

func (h *Handler) search(w http.ResponseWriter, r *http.Request) {
	customers, err := h.customers.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeCustomers(w, customers)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	c, err := h.customers.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(c)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type updateCustomerRequest struct {
	FullName   *string `json:"full_name"`
	NationalID *string `json:"national_id"`
	Phone      *string `json:"phone"`
	Address    *string `json:"address"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	c, err := h.customers.Update(r.Context(), id, customer.UpdateParams{
		FullName:   req.FullName,
		NationalID: req.NationalID,
		Phone:      req.Phone,
		Address:    req.Address,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(c)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func writeCustomers(w http.ResponseWriter, customers []*customer.Customer) {
	resp := make([]customerResponse, len(customers))
	for i, c := range customers {
		resp[i] = toResponse(c)
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, err error) {
	var verr *customer.ValidationError

	switch {
	case errors.As(err, &verr):
		http.Error(w, verr.Error(), http.StatusBadRequest)
	case errors.Is(err, customer.ErrNotFound):
		http.Error(w, "cliente no encontrado", http.StatusNotFound)
	default:
		slog.Error("customer handler error", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
