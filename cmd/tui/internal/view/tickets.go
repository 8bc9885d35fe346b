package view

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/rifasve/rifas/internal/auth"
	"github.com/rifasve/rifas/internal/customer"
	"github.com/rifasve/rifas/internal/money"
	"github.com/rifasve/rifas/internal/raffle"
	"github.com/rifasve/rifas/internal/ticket"
)

type ticketsState int

const (
	ticketsStatePick ticketsState = iota
	ticketsStateBrowse
	ticketsStateAssign
	ticketsStatePayment
	ticketsStateRelease
)

type TicketsModel struct {
	CommonModel
	ticketService   *ticket.Service
	customerService *customer.Service
	raffleService   *raffle.Service

	state  ticketsState
	picker RafflePicker
	raffle *raffle.Raffle

	table   table.Model
	tickets []*ticket.Ticket
	form    *huh.Form

	statusFilterIdx int
	filter          ticket.ListFilter

	loading bool
	err     error
	status  string

	// Form bindings
	formNumber  string
	formCode    string
	formAmount  string
	formConfirm bool
}

func NewTicketsModel(ticketSvc *ticket.Service, customerSvc *customer.Service, raffleSvc *raffle.Service) TicketsModel {
	columns := []table.Column{
		{Title: "Numero", Width: 8},
		{Title: "Estado", Width: 10},
		{Title: "Cliente", Width: 30},
		{Title: "Precio", Width: 12},
		{Title: "Abonado", Width: 12},
		{Title: "Saldo", Width: 12},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return TicketsModel{
		ticketService:   ticketSvc,
		customerService: customerSvc,
		raffleService:   raffleSvc,
		state:           ticketsStatePick,
		picker:          NewRafflePicker(raffleSvc),
		table:           t,
	}
}

func (m TicketsModel) Title() string { return "Boletos" }

func (m TicketsModel) ShortHelp() string {
	switch m.state {
	case ticketsStatePick:
		return "Esc: volver | Enter: seleccionar"
	case ticketsStateBrowse:
		return "Esc: volver | a: asignar | p: abono | t: pago total | v: revertir | x: liberar | s: filtro estado | r: refrescar"
	}
	return "Navegar formulario | Esc: cancelar"
}

func (m TicketsModel) Init() tea.Cmd {
	m.state = ticketsStatePick
	return m.picker.Init()
}

func (m TicketsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case RaffleSelectedMsg:
		m.raffle = msg.Raffle
		m.state = ticketsStateBrowse
		m.filter = ticket.ListFilter{RaffleID: msg.Raffle.ID}
		m.statusFilterIdx = 0
		m.loading = true
		return m, m.loadTicketsCmd()

	case loadTicketsMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.tickets = msg.tickets
		m.err = nil
		m.refreshTable()
		return m, nil

	case ticketActionMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
		} else {
			m.status = msg.status
		}
		m.state = ticketsStateBrowse
		m.form = nil
		m.table.Focus()
		return m, m.loadTicketsCmd()

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	switch m.state {
	case ticketsStatePick:
		return m.updatePick(msg)
	case ticketsStateBrowse:
		return m.updateBrowse(msg)
	case ticketsStateAssign, ticketsStatePayment, ticketsStateRelease:
		return m.updateForm(msg)
	}

	return m, nil
}

func (m TicketsModel) updatePick(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			return m, Back
		}
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	return m, cmd
}

func (m TicketsModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.state = ticketsStatePick
			m.picker = NewRafflePicker(m.raffleService)
			return m, m.picker.Init()
		case "r":
			m.loading = true
			return m, m.loadTicketsCmd()
		case "s":
			m.statusFilterIdx = (m.statusFilterIdx + 1) % 4
			m.applyFilter()
			return m, m.loadTicketsCmd()
		case "a":
			return m.enterAssignMode()
		case "p":
			return m.enterPaymentMode()
		case "t":
			return m.runOnSelected(func(t *ticket.Ticket) tea.Cmd { return m.markPaidCmd(t) })
		case "v":
			return m.runOnSelected(func(t *ticket.Ticket) tea.Cmd { return m.revertCmd(t) })
		case "x":
			return m.enterReleaseMode()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m TicketsModel) runOnSelected(action func(*ticket.Ticket) tea.Cmd) (tea.Model, tea.Cmd) {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.tickets) {
		return m, nil
	}

	return m, action(m.tickets[idx])
}

func (m TicketsModel) enterAssignMode() (tea.Model, tea.Cmd) {
	m.formNumber = ""
	m.formCode = ""
	m.formAmount = "0"

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("number").
				Title("Numero").
				Placeholder("0").
				Value(&m.formNumber).
				Validate(func(s string) error {
					n, err := strconv.Atoi(strings.TrimSpace(s))
					if err != nil {
						return fmt.Errorf("numero invalido")
					}
					if n < 0 || n >= m.raffle.Capacity {
						return fmt.Errorf("debe estar entre 0 y %d", m.raffle.Capacity-1)
					}
					return nil
				}),

			huh.NewInput().
				Key("code").
				Title("Codigo de cliente").
				Placeholder("CL-XXXXXXXX").
				Value(&m.formCode).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("el codigo es obligatorio")
					}
					return nil
				}),

			huh.NewInput().
				Key("amount").
				Title("Abono inicial").
				Placeholder("0.00").
				Value(&m.formAmount).
				Validate(validateAmount),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = ticketsStateAssign
	m.table.Blur()
	return m, m.form.Init()
}

func (m TicketsModel) enterPaymentMode() (tea.Model, tea.Cmd) {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.tickets) {
		return m, nil
	}

	m.formAmount = ""

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("amount").
				Title(fmt.Sprintf("Abono (saldo %s)", money.Format(m.tickets[idx].Balance()))).
				Placeholder("0.00").
				Value(&m.formAmount).
				Validate(validateAmount),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = ticketsStatePayment
	m.table.Blur()
	return m, m.form.Init()
}

func (m TicketsModel) enterReleaseMode() (tea.Model, tea.Cmd) {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.tickets) {
		return m, nil
	}

	m.formConfirm = false

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Key("confirm").
				Title(fmt.Sprintf("¿Liberar el boleto %s?", raffle.FormatNumber(m.tickets[idx].Number, m.raffle.Capacity))).
				Affirmative("Si").
				Negative("No").
				Value(&m.formConfirm),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = ticketsStateRelease
	m.table.Blur()
	return m, m.form.Init()
}

func (m TicketsModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = ticketsStateBrowse
			m.form = nil
			m.table.Focus()
			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	switch m.state {
	case ticketsStateAssign:
		return m, m.assignCmd()
	case ticketsStatePayment:
		return m.runOnSelected(func(t *ticket.Ticket) tea.Cmd { return m.paymentCmd(t) })
	case ticketsStateRelease:
		if !m.formConfirm {
			m.state = ticketsStateBrowse
			m.form = nil
			m.table.Focus()
			return m, nil
		}
		return m.runOnSelected(func(t *ticket.Ticket) tea.Cmd { return m.releaseCmd(t) })
	}

	return m, nil
}

func (m TicketsModel) View() string {
	if m.state == ticketsStatePick {
		return lipgloss.NewStyle().Padding(1).Render(m.picker.View())
	}

	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Cargando boletos...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	statusLabels := []string{"Todos", "Apartados", "Abonados", "Pagados"}

	header := fmt.Sprintf(
		"%s | Filtro: [s] Estado: %s",
		lipgloss.NewStyle().Bold(true).Render(m.raffle.Name),
		activeStyle(statusLabels[m.statusFilterIdx]),
	)

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		tableView,
	)

	if m.form != nil {
		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(48).
			Render(m.form.View())

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	}

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func activeStyle(s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Render(s)
}

func validateAmount(s string) error {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("monto invalido")
	}
	if d.IsNegative() {
		return fmt.Errorf("el monto no puede ser negativo")
	}
	return nil
}

func (m *TicketsModel) applyFilter() {
	switch m.statusFilterIdx {
	case 1:
		m.filter.Status = new(ticket.StatusReserved)
	case 2:
		m.filter.Status = new(ticket.StatusPartiallyPaid)
	case 3:
		m.filter.Status = new(ticket.StatusPaid)
	default:
		m.filter.Status = nil
	}
}

func (m *TicketsModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.tickets))
	for _, t := range m.tickets {
		owner := ""
		if t.Owner != nil {
			owner = t.Owner.FullName
		}
		rows = append(rows, table.Row{
			raffle.FormatNumber(t.Number, m.raffle.Capacity),
			string(t.Status),
			owner,
			money.Format(t.Price),
			money.Format(t.AmountPaid),
			money.Format(t.Balance()),
		})
	}
	m.table.SetRows(rows)
}

// Messages

type loadTicketsMsg struct {
	tickets []*ticket.Ticket
	err     error
}

func (m TicketsModel) loadTicketsCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		tickets, err := m.ticketService.List(ctx, m.filter)
		return loadTicketsMsg{tickets: tickets, err: err}
	}
}

type ticketActionMsg struct {
	status string
	err    error
}

func (m TicketsModel) assignCmd() tea.Cmd {
	number, _ := strconv.Atoi(strings.TrimSpace(m.formNumber))
	code := m.formCode
	amount, _ := decimal.NewFromString(strings.TrimSpace(m.formAmount))
	raffleID := m.raffle.ID

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		c, err := m.customerService.GetByCode(ctx, code)
		if err != nil {
			return ticketActionMsg{err: err}
		}

		t, err := m.ticketService.Assign(ctx, ticket.AssignParams{
			RaffleID:       raffleID,
			Number:         number,
			CustomerID:     c.ID,
			InitialPayment: amount,
			Actor:          auth.Subject,
		})
		if err != nil {
			return ticketActionMsg{err: err}
		}

		return ticketActionMsg{status: fmt.Sprintf("Boleto %s asignado a %s",
			raffle.FormatNumber(t.Number, m.raffle.Capacity), c.FullName)}
	}
}

func (m TicketsModel) paymentCmd(t *ticket.Ticket) tea.Cmd {
	amount, _ := decimal.NewFromString(strings.TrimSpace(m.formAmount))

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		updated, err := m.ticketService.AddPayment(ctx, t.ID, amount, auth.Subject)
		if err != nil {
			return ticketActionMsg{err: err}
		}

		return ticketActionMsg{status: fmt.Sprintf("Abono registrado, saldo %s", money.Format(updated.Balance()))}
	}
}

func (m TicketsModel) markPaidCmd(t *ticket.Ticket) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		if _, err := m.ticketService.MarkPaid(ctx, t.ID, auth.Subject); err != nil {
			return ticketActionMsg{err: err}
		}

		return ticketActionMsg{status: "Boleto marcado como pagado"}
	}
}

func (m TicketsModel) revertCmd(t *ticket.Ticket) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		if _, err := m.ticketService.RevertToReserved(ctx, t.ID, auth.Subject); err != nil {
			return ticketActionMsg{err: err}
		}

		return ticketActionMsg{status: "Boleto revertido a apartado"}
	}
}

func (m TicketsModel) releaseCmd(t *ticket.Ticket) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		if err := m.ticketService.Release(ctx, t.ID, auth.Subject); err != nil {
			return ticketActionMsg{err: err}
		}

		return ticketActionMsg{status: "Boleto liberado"}
	}
}
