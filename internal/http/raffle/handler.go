package raffle

import (
	"encoding/json"
	"errors"
	"fmt"
	"image/jpeg"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rifasve/rifas/internal/export"
	"github.com/rifasve/rifas/internal/raffle"
	"github.com/rifasve/rifas/internal/render/grid"
	"github.com/rifasve/rifas/internal/ticket"
)

const gridJPEGQuality = 90

type Handler struct {
	raffles *raffle.Service
	tickets *ticket.Service
	grid    *grid.Renderer
	exports *export.Service
}

func NewHandler(raffles *raffle.Service, tickets *ticket.Service, gridRenderer *grid.Renderer, exports *export.Service) *Handler {
	return &Handler{raffles: raffles, tickets: tickets, grid: gridRenderer, exports: exports}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Get("/{id}", h.get)
	r.Get("/{id}/grid", h.downloadGrid)
	r.Get("/{id}/export", h.downloadExport)
}

type raffleResponse struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	TicketPrice decimal.Decimal `json:"ticket_price"`
	DrawDate    string          `json:"draw_date"`
	DrawTime    string          `json:"draw_time"`
	Capacity    int             `json:"capacity"`
	Prizes      []string        `json:"prizes"`
	CreatedAt   time.Time       `json:"created_at"`
}

func toResponse(r *raffle.Raffle) raffleResponse {
	return raffleResponse{
		ID:          r.ID,
		Name:        r.Name,
		TicketPrice: r.TicketPrice,
		DrawDate:    r.DrawDate.Format(time.DateOnly),
		DrawTime:    r.DrawTime,
		Capacity:    r.Capacity,
		Prizes:      r.PrizeLines(),
		CreatedAt:   r.CreatedAt,
	}
}

type createRaffleRequest struct {
	Name        string          `json:"name"`
	TicketPrice decimal.Decimal `json:"ticket_price"`
	DrawDate    string          `json:"draw_date"`
	DrawTime    string          `json:"draw_time"`
	Capacity    int             `json:"capacity"`
	Prizes      []string        `json:"prizes"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createRaffleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	drawDate, err := time.Parse(time.DateOnly, req.DrawDate)
	if err != nil {
		http.Error(w, "invalid draw_date, expected YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	if len(req.Prizes) > raffle.MaxPrizes {
		http.Error(w, fmt.Sprintf("at most %d prizes", raffle.MaxPrizes), http.StatusBadRequest)
		return
	}

	params := raffle.CreateParams{
		Name:        req.Name,
		TicketPrice: req.TicketPrice,
		DrawDate:    drawDate,
		DrawTime:    req.DrawTime,
		Capacity:    req.Capacity,
	}
	copy(params.Prizes[:], req.Prizes)

	rf, err := h.raffles.Create(r.Context(), params)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(rf)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	raffles, err := h.raffles.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	resp := make([]raffleResponse, len(raffles))
	for i, rf := range raffles {
		resp[i] = toResponse(rf)
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	rf, ok := h.raffleFromPath(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(rf)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// downloadGrid renders the shareable board image. Occupancy is read
// fresh on every request.
func (h *Handler) downloadGrid(w http.ResponseWriter, r *http.Request) {
	rf, ok := h.raffleFromPath(w, r)
	if !ok {
		return
	}

	mode, err := grid.ParseMode(r.URL.Query().Get("mode"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	occupancy, err := h.tickets.Occupancy(r.Context(), rf.ID)
	if err != nil {
		writeError(w, err)
		return
	}

	img, err := h.grid.Render(rf, occupancy, mode)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/jpeg")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=\"tablero_%s.jpg\"", time.Now().Format("20060102")))

	if err := jpeg.Encode(w, img, &jpeg.Options{Quality: gridJPEGQuality}); err != nil {
		slog.Error("failed to encode grid image", "error", err)
	}
}

func (h *Handler) downloadExport(w http.ResponseWriter, r *http.Request) {
	rf, ok := h.raffleFromPath(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=\"sorteo_%s.xlsx\"", time.Now().Format("20060102")))

	if err := h.exports.Write(r.Context(), rf.ID, w); err != nil {
		slog.Error("failed to write export", "error", err)
	}
}

func (h *Handler) raffleFromPath(w http.ResponseWriter, r *http.Request) (*raffle.Raffle, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return nil, false
	}

	rf, err := h.raffles.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return nil, false
	}

	return rf, true
}

func writeError(w http.ResponseWriter, err error) {
	var verr *raffle.ValidationError

	switch {
	case errors.As(err, &verr):
		http.Error(w, verr.Error(), http.StatusBadRequest)
	case errors.Is(err, raffle.ErrUnsupportedCapacity):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, raffle.ErrNotFound):
		http.Error(w, "sorteo no encontrado", http.StatusNotFound)
	default:
		slog.Error("raffle handler error", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
