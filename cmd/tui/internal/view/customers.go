package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/rifasve/rifas/internal/customer"
)

type customersState int

const (
	customersStateBrowse customersState = iota
	customersStateRegister
	customersStateEdit
)

type CustomersModel struct {
	CommonModel
	customerService *customer.Service

	state     customersState
	table     table.Model
	customers []*customer.Customer
	form      *huh.Form

	loading bool
	err     error
	status  string

	// Form bindings
	formName    string
	formDoc     string
	formPhone   string
	formAddress string
}

func NewCustomersModel(customerSvc *customer.Service) CustomersModel {
	columns := []table.Column{
		{Title: "Codigo", Width: 12},
		{Title: "Nombre", Width: 32},
		{Title: "Cedula", Width: 14},
		{Title: "Telefono", Width: 14},
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

	return CustomersModel{
		customerService: customerSvc,
		table:           t,
	}
}

func (m CustomersModel) Title() string { return "Clientes" }

func (m CustomersModel) ShortHelp() string {
	if m.state != customersStateBrowse {
		return "Navegar formulario | Esc: cancelar"
	}
	return "Esc: volver | n: nuevo | e: editar | r: refrescar"
}

func (m CustomersModel) Init() tea.Cmd {
	return m.loadCustomersCmd()
}

func (m CustomersModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadCustomersMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.customers = msg.customers
		m.err = nil
		m.refreshTable()
		return m, nil

	case customerSaveMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
		} else {
			m.status = msg.status
		}
		m.state = customersStateBrowse
		m.form = nil
		m.table.Focus()
		return m, m.loadCustomersCmd()

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	switch m.state {
	case customersStateBrowse:
		return m.updateBrowse(msg)
	case customersStateRegister, customersStateEdit:
		return m.updateForm(msg)
	}

	return m, nil
}

func (m CustomersModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCustomersCmd()
		case "n":
			return m.enterRegisterMode()
		case "e":
			return m.enterEditMode()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m CustomersModel) enterRegisterMode() (tea.Model, tea.Cmd) {
	m.formName = ""
	m.formDoc = ""
	m.formPhone = ""
	m.formAddress = ""

	m.form = m.buildForm("Registrar cliente")
	m.state = customersStateRegister
	m.table.Blur()
	return m, m.form.Init()
}

func (m CustomersModel) enterEditMode() (tea.Model, tea.Cmd) {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.customers) {
		return m, nil
	}

	c := m.customers[idx]
	m.formName = c.FullName
	m.formDoc = c.NationalID
	m.formPhone = c.Phone
	m.formAddress = c.Address

	m.form = m.buildForm("Editar cliente")
	m.state = customersStateEdit
	m.table.Blur()
	return m, m.form.Init()
}

func (m *CustomersModel) buildForm(title string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("name").
				Title("Nombre completo").
				Value(&m.formName).
				Validate(func(s string) error {
					if len(strings.TrimSpace(s)) < 3 {
						return fmt.Errorf("el nombre es obligatorio")
					}
					return nil
				}),

			huh.NewInput().
				Key("national_id").
				Title("Cedula").
				Placeholder("V-12345678").
				Value(&m.formDoc),

			huh.NewInput().
				Key("phone").
				Title("Telefono").
				Placeholder("04141234567").
				Value(&m.formPhone).
				Validate(func(s string) error {
					if len(strings.TrimSpace(s)) < 7 {
						return fmt.Errorf("el telefono es obligatorio")
					}
					return nil
				}),

			huh.NewInput().
				Key("address").
				Title("Direccion").
				Value(&m.formAddress),
		).Title(title),
	).WithWidth(45).WithShowHelp(false)
}

func (m CustomersModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = customersStateBrowse
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

	if m.state == customersStateRegister {
		return m, m.registerCmd()
	}

	return m, m.editCmd()
}

func (m CustomersModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Cargando clientes...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := tableView

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

func (m *CustomersModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.customers))
	for _, c := range m.customers {
		rows = append(rows, table.Row{
			c.Code,
			c.FullName,
			c.NationalID,
			c.Phone,
		})
	}
	m.table.SetRows(rows)
}

// Messages

type loadCustomersMsg struct {
	customers []*customer.Customer
	err       error
}

func (m CustomersModel) loadCustomersCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		customers, err := m.customerService.List(ctx)
		return loadCustomersMsg{customers: customers, err: err}
	}
}

type customerSaveMsg struct {
	status string
	err    error
}

func (m CustomersModel) registerCmd() tea.Cmd {
	params := customer.CreateParams{
		FullName:   m.formName,
		NationalID: m.formDoc,
		Phone:      m.formPhone,
		Address:    m.formAddress,
	}

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		c, err := m.customerService.Create(ctx, params)
		if err != nil {
			return customerSaveMsg{err: err}
		}

		return customerSaveMsg{status: fmt.Sprintf("Cliente registrado con codigo %s", c.Code)}
	}
}

func (m CustomersModel) editCmd() tea.Cmd {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.customers) {
		return nil
	}

	id := m.customers[idx].ID
	params := customer.UpdateParams{
		FullName:   &m.formName,
		NationalID: &m.formDoc,
		Phone:      &m.formPhone,
		Address:    &m.formAddress,
	}

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		if _, err := m.customerService.Update(ctx, id, params); err != nil {
			return customerSaveMsg{err: err}
		}

		return customerSaveMsg{status: "Cliente actualizado"}
	}
}
