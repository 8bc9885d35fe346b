package main

import (
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/rifasve/rifas/cmd/tui/internal/view"
	"github.com/rifasve/rifas/internal/config"
	"github.com/rifasve/rifas/internal/customer"
	customerStore "github.com/rifasve/rifas/internal/customer/store"
	"github.com/rifasve/rifas/internal/database"
	"github.com/rifasve/rifas/internal/export"
	"github.com/rifasve/rifas/internal/history"
	historyStore "github.com/rifasve/rifas/internal/history/store"
	"github.com/rifasve/rifas/internal/raffle"
	raffleStore "github.com/rifasve/rifas/internal/raffle/store"
	"github.com/rifasve/rifas/internal/render/grid"
	"github.com/rifasve/rifas/internal/ticket"
	ticketStore "github.com/rifasve/rifas/internal/ticket/store"
)

type model struct {
	ticketService   *ticket.Service
	customerService *customer.Service
	raffleService   *raffle.Service
	exportService   *export.Service
	gridRenderer    *grid.Renderer

	currentView View

	ticketsView   view.TicketsModel
	customersView view.CustomersModel
	exportView    view.ExportModel
}

type View int

const (
	ViewMenu      View = 0
	ViewTickets   View = 1
	ViewCustomers View = 2
	ViewExport    View = 3
)

func initialModel() model {
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

	raffleSvc := raffle.NewService(raffleStore.New(db))
	ticketSvc := ticket.NewService(ticketStore.New(db), raffleSvc)
	customerSvc := customer.NewService(customerStore.New(db))
	historySvc := history.NewService(historyStore.New(db))
	exportSvc := export.NewService(ticketSvc, historySvc, raffleSvc)
	renderer := grid.NewRenderer(cfg.Assets.Dir)

	return model{
		ticketService:   ticketSvc,
		customerService: customerSvc,
		raffleService:   raffleSvc,
		exportService:   exportSvc,
		gridRenderer:    renderer,
		currentView:     ViewMenu,
		ticketsView:     view.NewTicketsModel(ticketSvc, customerSvc, raffleSvc),
		customersView:   view.NewCustomersModel(customerSvc),
		exportView:      view.NewExportModel(exportSvc, ticketSvc, raffleSvc, renderer),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewTickets
				m.ticketsView = view.NewTicketsModel(m.ticketService, m.customerService, m.raffleService)

				return m, m.ticketsView.Init()
			case "2":
				m.currentView = ViewCustomers
				m.customersView = view.NewCustomersModel(m.customerService)

				return m, m.customersView.Init()
			case "3":
				m.currentView = ViewExport
				m.exportView = view.NewExportModel(m.exportService, m.ticketService, m.raffleService, m.gridRenderer)

				return m, m.exportView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewTickets:
		var newModel tea.Model
		newModel, cmd = m.ticketsView.Update(msg)
		m.ticketsView = newModel.(view.TicketsModel)
	case ViewCustomers:
		var newModel tea.Model
		newModel, cmd = m.customersView.Update(msg)
		m.customersView = newModel.(view.CustomersModel)
	case ViewExport:
		var newModel tea.Model
		newModel, cmd = m.exportView.Update(msg)
		m.exportView = newModel.(view.ExportModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"Rifas TUI\n\n" +
				"1. Boletos\n" +
				"2. Clientes\n" +
				"3. Exportar\n\n" +
				"q. Salir",
		)
	case ViewTickets:
		return m.ticketsView.View()
	case ViewCustomers:
		return m.customersView.View()
	case ViewExport:
		return m.exportView.View()
	}

	return "Unknown View"
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
