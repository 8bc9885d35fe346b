package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/rifasve/rifas/internal/auth"
	"github.com/rifasve/rifas/internal/config"
	"github.com/rifasve/rifas/internal/customer"
	customerStore "github.com/rifasve/rifas/internal/customer/store"
	"github.com/rifasve/rifas/internal/database"
	"github.com/rifasve/rifas/internal/export"
	"github.com/rifasve/rifas/internal/history"
	historyStore "github.com/rifasve/rifas/internal/history/store"
	rifasHttp "github.com/rifasve/rifas/internal/http"
	authHandler "github.com/rifasve/rifas/internal/http/auth"
	customerHandler "github.com/rifasve/rifas/internal/http/customer"
	raffleHandler "github.com/rifasve/rifas/internal/http/raffle"
	ticketHandler "github.com/rifasve/rifas/internal/http/ticket"
	"github.com/rifasve/rifas/internal/raffle"
	raffleStore "github.com/rifasve/rifas/internal/raffle/store"
	"github.com/rifasve/rifas/internal/render/grid"
	"github.com/rifasve/rifas/internal/render/receipt"
	"github.com/rifasve/rifas/internal/ticket"
	ticketStore "github.com/rifasve/rifas/internal/ticket/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString(), cfg.DB.ConnectTimeout)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	var (
		raffleService   = raffle.NewService(raffleStore.New(db))
		ticketService   = ticket.NewService(ticketStore.New(db), raffleService)
		customerService = customer.NewService(customerStore.New(db))
		historyService  = history.NewService(historyStore.New(db))
		exportService   = export.NewService(ticketService, historyService, raffleService)
		sessionService  = auth.NewService(cfg.Auth.OperatorPassword, cfg.Auth.JWTSecret, cfg.Auth.IdleTimeout)

		gridRenderer   = grid.NewRenderer(cfg.Assets.Dir)
		receiptBuilder = receipt.NewBuilder(cfg.Assets.Dir)
	)

	var (
		authH     = authHandler.NewHandler(sessionService)
		raffleH   = raffleHandler.NewHandler(raffleService, ticketService, gridRenderer, exportService)
		ticketH   = ticketHandler.NewHandler(ticketService, customerService, raffleService, receiptBuilder, cfg.WhatsApp.CountryCode)
		customerH = customerHandler.NewHandler(customerService)
	)

	router := rifasHttp.New(sessionService, cfg.CORS.AllowedOrigins, authH, raffleH, ticketH, customerH)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
