package ticket

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rifasve/rifas/internal/auth"
	"github.com/rifasve/rifas/internal/customer"
	"github.com/rifasve/rifas/internal/notify"
	"github.com/rifasve/rifas/internal/raffle"
	"github.com/rifasve/rifas/internal/render/receipt"
	"github.com/rifasve/rifas/internal/ticket"
)

type Handler struct {
	tickets   *ticket.Service
	customers *customer.Service
	raffles   *raffle.Service
	receipts  *receipt.Builder

	countryCode string
}

func NewHandler(
	tickets *ticket.Service,
	customers *customer.Service,
	raffles *raffle.Service,
	receipts *receipt.Builder,
	countryCode string,
) *Handler {
	return &Handler{
		tickets:     tickets,
		customers:   customers,
		raffles:     raffles,
		receipts:    receipts,
		countryCode: countryCode,
	}
}

// Routes are the by-id ticket operations mounted under /tickets.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/{id}", h.get)
	r.Post("/{id}/payments", h.addPayment)
	r.Post("/{id}/mark-paid", h.markPaid)
	r.Post("/{id}/revert", h.revert)
	r.Delete("/{id}", h.release)
	r.Get("/{id}/receipt", h.downloadReceipt)
	r.Get("/{id}/whatsapp-link", h.whatsappLink)
}

// RaffleRoutes are the per-raffle ticket operations mounted under
// /raffles/{id}/tickets.
func (h *Handler) RaffleRoutes(r chi.Router) {
	r.Get("/", h.list)
	r.Get("/{number}", h.getByNumber)
	r.Post("/{number}/assign", h.assign)
}

type assignRequest struct {
	CustomerID     uuid.UUID       `json:"customer_id"`
	InitialPayment decimal.Decimal `json:"initial_payment"`
}

func (h *Handler) assign(w http.ResponseWriter, r *http.Request) {
	raffleID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid raffle id", http.StatusBadRequest)
		return
	}

	number, err := strconv.Atoi(chi.URLParam(r, "number"))
	if err != nil {
		http.Error(w, "invalid ticket number", http.StatusBadRequest)
		return
	}

	var req assignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	t, err := h.tickets.Assign(r.Context(), ticket.AssignParams{
		RaffleID:       raffleID,
		Number:         number,
		CustomerID:     req.CustomerID,
		InitialPayment: req.InitialPayment,
		Actor:          auth.ActorFromContext(r.Context()),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	rf, err := h.raffles.Get(r.Context(), raffleID)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(t, rf.Capacity)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	raffleID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid raffle id", http.StatusBadRequest)
		return
	}

	filter := ticket.ListFilter{RaffleID: raffleID}

	if s := r.URL.Query().Get("status"); s != "" {
		filter.Status = new(ticket.Status(s))
	}

	if s := r.URL.Query().Get("customer_id"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			http.Error(w, "invalid customer id", http.StatusBadRequest)
			return
		}

		filter.CustomerID = &id
	}

	rf, err := h.raffles.Get(r.Context(), raffleID)
	if err != nil {
		writeError(w, err)
		return
	}

	tickets, err := h.tickets.List(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(tickets, rf.Capacity)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) getByNumber(w http.ResponseWriter, r *http.Request) {
	raffleID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid raffle id", http.StatusBadRequest)
		return
	}

	number, err := strconv.Atoi(chi.URLParam(r, "number"))
	if err != nil {
		http.Error(w, "invalid ticket number", http.StatusBadRequest)
		return
	}

	t, err := h.tickets.GetByNumber(r.Context(), raffleID, number)
	if err != nil {
		writeError(w, err)
		return
	}

	h.writeTicket(w, r, t)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	t, ok := h.ticketFromPath(w, r)
	if !ok {
		return
	}

	h.writeTicket(w, r, t)
}

type paymentRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

func (h *Handler) addPayment(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req paymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	t, err := h.tickets.AddPayment(r.Context(), id, req.Amount, auth.ActorFromContext(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}

	h.writeTicket(w, r, t)
}

func (h *Handler) markPaid(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	t, err := h.tickets.MarkPaid(r.Context(), id, auth.ActorFromContext(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}

	h.writeTicket(w, r, t)
}

func (h *Handler) revert(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	t, err := h.tickets.RevertToReserved(r.Context(), id, auth.ActorFromContext(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}

	h.writeTicket(w, r, t)
}

func (h *Handler) release(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.tickets.Release(r.Context(), id, auth.ActorFromContext(r.Context())); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) downloadReceipt(w http.ResponseWriter, r *http.Request) {
	t, c, rf, ok := h.ticketContext(w, r)
	if !ok {
		return
	}

	co, err := h.raffles.Company(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	pdf, err := h.receipts.Build(t, c, rf, co)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=\"recibo_%s.pdf\"", raffle.FormatNumber(t.Number, rf.Capacity)))

	if _, err := w.Write(pdf); err != nil {
		slog.Error("failed to write receipt", "error", err)
	}
}

type whatsappLinkResponse struct {
	URL     string `json:"url"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

func (h *Handler) whatsappLink(w http.ResponseWriter, r *http.Request) {
	t, c, rf, ok := h.ticketContext(w, r)
	if !ok {
		return
	}

	msg := notify.TicketMessage(t, c, rf)
	resp := whatsappLinkResponse{
		URL:     notify.BuildChatLink(c.Phone, h.countryCode, msg),
		Phone:   notify.NormalizePhone(c.Phone, h.countryCode),
		Message: msg,
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) ticketFromPath(w http.ResponseWriter, r *http.Request) (*ticket.Ticket, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return nil, false
	}

	t, err := h.tickets.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return nil, false
	}

	return t, true
}

// ticketContext loads the ticket plus the customer and raffle it hangs
// off, shared by the receipt and chat-link endpoints.
func (h *Handler) ticketContext(w http.ResponseWriter, r *http.Request) (*ticket.Ticket, *customer.Customer, *raffle.Raffle, bool) {
	t, ok := h.ticketFromPath(w, r)
	if !ok {
		return nil, nil, nil, false
	}

	c, err := h.customers.Get(r.Context(), t.CustomerID)
	if err != nil {
		writeError(w, err)
		return nil, nil, nil, false
	}

	rf, err := h.raffles.Get(r.Context(), t.RaffleID)
	if err != nil {
		writeError(w, err)
		return nil, nil, nil, false
	}

	return t, c, rf, true
}

func (h *Handler) writeTicket(w http.ResponseWriter, r *http.Request, t *ticket.Ticket) {
	rf, err := h.raffles.Get(r.Context(), t.RaffleID)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(t, rf.Capacity)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// writeError maps domain errors to HTTP statuses; raw database errors
// never reach the client.
func writeError(w http.ResponseWriter, err error) {
	var tverr *ticket.ValidationError

	var rverr *raffle.ValidationError

	switch {
	case errors.As(err, &tverr):
		http.Error(w, tverr.Error(), http.StatusBadRequest)
	case errors.As(err, &rverr):
		http.Error(w, rverr.Error(), http.StatusBadRequest)
	case errors.Is(err, raffle.ErrUnsupportedCapacity):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ticket.ErrConflict):
		http.Error(w, "numero ya asignado", http.StatusConflict)
	case errors.Is(err, ticket.ErrNotFound):
		http.Error(w, "boleto no encontrado", http.StatusNotFound)
	case errors.Is(err, customer.ErrNotFound):
		http.Error(w, "cliente no encontrado", http.StatusNotFound)
	case errors.Is(err, raffle.ErrNotFound):
		http.Error(w, "sorteo no encontrado", http.StatusNotFound)
	default:
		slog.Error("ticket handler error", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
