package view

import (
	"context"
	"fmt"
	"image/jpeg"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/rifasve/rifas/internal/export"
	"github.com/rifasve/rifas/internal/raffle"
	"github.com/rifasve/rifas/internal/render/grid"
	"github.com/rifasve/rifas/internal/ticket"
)

type exportState int

const (
	exportStatePick exportState = iota
	exportStateOptions
	exportStateExporting
	exportStateResult
)

type ExportModel struct {
	CommonModel
	exportService *export.Service
	ticketService *ticket.Service
	gridRenderer  *grid.Renderer

	state  exportState
	picker RafflePicker
	raffle *raffle.Raffle

	form    *huh.Form
	path    string
	mode    string
	spinner spinner.Model
	summary string
	err     error
}

func NewExportModel(expSvc *export.Service, ticketSvc *ticket.Service, raffleSvc *raffle.Service, renderer *grid.Renderer) ExportModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return ExportModel{
		exportService: expSvc,
		ticketService: ticketSvc,
		gridRenderer:  renderer,
		state:         exportStatePick,
		picker:        NewRafflePicker(raffleSvc),
		path:          "./exports",
		mode:          string(grid.ModeAll),
		spinner:       s,
	}
}

func (m ExportModel) Title() string { return "Exportar" }

func (m ExportModel) ShortHelp() string {
	switch m.state {
	case exportStateResult:
		return "Esc: volver al menu"
	case exportStateExporting:
		return "Exportando..."
	}
	return "Esc: volver | Enter: confirmar"
}

func (m ExportModel) Init() tea.Cmd {
	return m.picker.Init()
}

func (m ExportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if rfMsg, ok := msg.(RaffleSelectedMsg); ok {
		m.raffle = rfMsg.Raffle
		m.form = m.buildOptionsForm()
		m.state = exportStateOptions
		return m, m.form.Init()
	}

	switch m.state {
	case exportStatePick:
		return m.updatePick(msg)
	case exportStateOptions:
		return m.updateOptions(msg)
	case exportStateExporting:
		return m.updateExporting(msg)
	case exportStateResult:
		return m.updateResult(msg)
	}

	return m, nil
}

func (m ExportModel) updatePick(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			return m, Back
		}
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	return m, cmd
}

func (m ExportModel) updateOptions(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = exportStatePick
			m.picker = NewRafflePicker(m.picker.raffleService)
			return m, m.picker.Init()
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	m.state = exportStateExporting
	m.err = nil
	return m, tea.Batch(m.spinner.Tick, m.runExportCmd(m.raffle, m.path, grid.Mode(m.mode)))
}

func (m ExportModel) updateExporting(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(exportResultMsg); ok {
		m.state = exportStateResult
		if result.err != nil {
			m.err = result.err
		}
		m.summary = result.body
		return m, nil
	}

	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return m, cmd
}

func (m ExportModel) updateResult(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			return m, Back
		}
	}
	return m, nil
}

func (m ExportModel) buildOptionsForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("path").
				Title("Carpeta de salida").
				Description("Se crea si no existe").
				Placeholder("./exports").
				Value(&m.path),

			huh.NewSelect[string]().
				Key("mode").
				Title("Tablero").
				Options(
					huh.NewOption("Completo", string(grid.ModeAll)),
					huh.NewOption("Solo disponibles", string(grid.ModeAvailable)),
					huh.NewOption("Compacto", string(grid.ModeCompact)),
				).
				Value(&m.mode),
		),
	).WithWidth(50).WithShowHelp(false)
}

func (m ExportModel) View() string {
	switch m.state {
	case exportStatePick:
		return lipgloss.NewStyle().Padding(1).Render(m.picker.View())

	case exportStateOptions:
		return lipgloss.NewStyle().Padding(1).Render(m.form.View())

	case exportStateExporting:
		return lipgloss.NewStyle().Padding(1).Render(
			fmt.Sprintf("%s Generando tablero y planilla...", m.spinner.View()),
		)

	case exportStateResult:
		return m.viewResult()
	}

	return ""
}

func (m ExportModel) viewResult() string {
	if m.err != nil {
		return lipgloss.NewStyle().Padding(1).Render(
			lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render(fmt.Sprintf("Error: %v", m.err)),
		)
	}

	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("46")).
		Render("Exportacion completa")

	return lipgloss.NewStyle().Padding(1).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			header,
			"",
			m.summary,
		),
	)
}

type exportResultMsg struct {
	body string
	err  error
}

const exportTimeout = 2 * time.Minute

func (m ExportModel) runExportCmd(rf *raffle.Raffle, path string, mode grid.Mode) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), exportTimeout)
		defer cancel()

		if err := os.MkdirAll(path, 0o755); err != nil {
			return exportResultMsg{err: err}
		}

		boardPath, err := m.writeBoard(ctx, rf, path, mode)
		if err != nil {
			return exportResultMsg{err: err}
		}

		sheetPath, err := m.writeSheet(ctx, rf.ID, path)
		if err != nil {
			return exportResultMsg{err: err}
		}

		return exportResultMsg{body: fmt.Sprintf("Tablero: %s\nPlanilla: %s", boardPath, sheetPath)}
	}
}

func (m ExportModel) writeBoard(ctx context.Context, rf *raffle.Raffle, path string, mode grid.Mode) (string, error) {
	occupancy, err := m.ticketService.Occupancy(ctx, rf.ID)
	if err != nil {
		return "", err
	}

	img, err := m.gridRenderer.Render(rf, occupancy, mode)
	if err != nil {
		return "", err
	}

	name := filepath.Join(path, fmt.Sprintf("tablero_%s.jpg", time.Now().Format("20060102")))

	f, err := os.Create(name)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := jpeg.Encode(f, img, &jpeg.Options{Quality: 90}); err != nil {
		return "", err
	}

	return name, nil
}

func (m ExportModel) writeSheet(ctx context.Context, raffleID uuid.UUID, path string) (string, error) {
	name := filepath.Join(path, fmt.Sprintf("sorteo_%s.xlsx", time.Now().Format("20060102")))

	f, err := os.Create(name)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := m.exportService.Write(ctx, raffleID, f); err != nil {
		return "", err
	}

	return name, nil
}
