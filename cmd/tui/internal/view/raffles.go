package view

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rifasve/rifas/internal/money"
	"github.com/rifasve/rifas/internal/raffle"
)

// RaffleSelectedMsg is emitted when the user has picked a raffle.
type RaffleSelectedMsg struct {
	Raffle *raffle.Raffle
}

// RafflePicker is a reusable component for choosing which raffle to work on.
type RafflePicker struct {
	raffleService *raffle.Service

	raffles []*raffle.Raffle
	cursor  int
	loading bool
	err     error
}

func NewRafflePicker(svc *raffle.Service) RafflePicker {
	return RafflePicker{raffleService: svc, loading: true}
}

func (p RafflePicker) Init() tea.Cmd {
	return p.loadRafflesCmd()
}

func (p RafflePicker) Update(msg tea.Msg) (RafflePicker, tea.Cmd) {
	switch msg := msg.(type) {
	case loadRafflesMsg:
		p.loading = false
		p.raffles = msg.raffles
		p.err = msg.err
		p.cursor = 0
		return p, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if p.cursor > 0 {
				p.cursor--
			}
		case "down", "j":
			if p.cursor < len(p.raffles)-1 {
				p.cursor++
			}
		case "enter":
			if p.cursor >= 0 && p.cursor < len(p.raffles) {
				selected := p.raffles[p.cursor]
				return p, func() tea.Msg {
					return RaffleSelectedMsg{Raffle: selected}
				}
			}
		}
	}

	return p, nil
}

func (p RafflePicker) View() string {
	if p.loading {
		return "Cargando sorteos..."
	}

	if p.err != nil {
		return lipgloss.NewStyle().Foreground(lipgloss.Color("196")).
			Render(fmt.Sprintf("Error: %v", p.err))
	}

	if len(p.raffles) == 0 {
		return "No hay sorteos registrados."
	}

	out := lipgloss.NewStyle().Bold(true).Render("Seleccione un sorteo") + "\n\n"

	for i, r := range p.raffles {
		line := fmt.Sprintf("%s  (%d numeros, %s, sorteo %s)",
			r.Name, r.Capacity, money.Format(r.TicketPrice), FormatDate(r.DrawDate))

		if i == p.cursor {
			line = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Render("> " + line)
		} else {
			line = "  " + line
		}

		out += line + "\n"
	}

	return out
}

type loadRafflesMsg struct {
	raffles []*raffle.Raffle
	err     error
}

func (p RafflePicker) loadRafflesCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		raffles, err := p.raffleService.List(ctx)
		return loadRafflesMsg{raffles: raffles, err: err}
	}
}
