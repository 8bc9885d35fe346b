// Package export builds the on-demand XLSX workbook: one sheet with the
// current ticket state, one with the audit history.
package export

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/rifasve/rifas/internal/history"
	"github.com/rifasve/rifas/internal/money"
	"github.com/rifasve/rifas/internal/raffle"
	"github.com/rifasve/rifas/internal/ticket"
)

const (
	sheetTickets = "Boletos"
	sheetHistory = "Historial"
)

type Service struct {
	tickets *ticket.Service
	history *history.Service
	raffles *raffle.Service
}

func NewService(tickets *ticket.Service, hist *history.Service, raffles *raffle.Service) *Service {
	return &Service{tickets: tickets, history: hist, raffles: raffles}
}

// Build assembles the workbook for one raffle.
func (s *Service) Build(ctx context.Context, raffleID uuid.UUID) (*excelize.File, error) {
	rf, err := s.raffles.Get(ctx, raffleID)
	if err != nil {
		return nil, fmt.Errorf("loading raffle: %w", err)
	}

	tickets, err := s.tickets.List(ctx, ticket.ListFilter{RaffleID: raffleID})
	if err != nil {
		return nil, fmt.Errorf("listing tickets: %w", err)
	}

	entries, err := s.history.List(ctx, raffleID)
	if err != nil {
		return nil, fmt.Errorf("listing history: %w", err)
	}

	f := excelize.NewFile()

	if err := f.SetSheetName(f.GetSheetName(0), sheetTickets); err != nil {
		return nil, fmt.Errorf("renaming sheet: %w", err)
	}

	if _, err := f.NewSheet(sheetHistory); err != nil {
		return nil, fmt.Errorf("adding history sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("creating header style: %w", err)
	}

	if err := s.fillTickets(f, headerStyle, rf, tickets); err != nil {
		return nil, err
	}

	if err := s.fillHistory(f, headerStyle, entries); err != nil {
		return nil, err
	}

	return f, nil
}

// Write streams the workbook for a raffle to w.
func (s *Service) Write(ctx context.Context, raffleID uuid.UUID, w io.Writer) error {
	f, err := s.Build(ctx, raffleID)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}

	return nil
}

func (s *Service) fillTickets(f *excelize.File, headerStyle int, rf *raffle.Raffle, tickets []*ticket.Ticket) error {
	headers := []string{"Número", "Estado", "Cliente", "Código", "Teléfono", "Precio", "Abonado", "Saldo", "Asignado"}
	if err := writeRow(f, sheetTickets, 1, &headers); err != nil {
		return err
	}

	if err := f.SetRowStyle(sheetTickets, 1, 1, headerStyle); err != nil {
		return fmt.Errorf("styling header: %w", err)
	}

	for i, t := range tickets {
		ownerName, ownerCode, ownerPhone := "", "", ""
		if t.Owner != nil {
			ownerName, ownerCode, ownerPhone = t.Owner.FullName, t.Owner.Code, t.Owner.Phone
		}

		row := []any{
			raffle.FormatNumber(t.Number, rf.Capacity),
			string(t.Status),
			ownerName,
			ownerCode,
			ownerPhone,
			money.Format(t.Price),
			money.Format(t.AmountPaid),
			money.Format(t.Balance()),
			t.AssignedAt.Format("02/01/2006 3:04 pm"),
		}
		if err := writeRow(f, sheetTickets, i+2, &row); err != nil {
			return err
		}
	}

	if err := f.SetColWidth(sheetTickets, "C", "C", 30); err != nil {
		return fmt.Errorf("sizing columns: %w", err)
	}

	return nil
}

func (s *Service) fillHistory(f *excelize.File, headerStyle int, entries []*history.Entry) error {
	headers := []string{"Fecha", "Actor", "Acción", "Detalle", "Monto"}
	if err := writeRow(f, sheetHistory, 1, &headers); err != nil {
		return err
	}

	if err := f.SetRowStyle(sheetHistory, 1, 1, headerStyle); err != nil {
		return fmt.Errorf("styling header: %w", err)
	}

	for i, e := range entries {
		row := []any{
			e.CreatedAt.Format("02/01/2006 3:04 pm"),
			e.Actor,
			e.Action,
			e.Detail,
			money.Format(e.Amount),
		}
		if err := writeRow(f, sheetHistory, i+2, &row); err != nil {
			return err
		}
	}

	if err := f.SetColWidth(sheetHistory, "D", "D", 40); err != nil {
		return fmt.Errorf("sizing columns: %w", err)
	}

	return nil
}

// writeRow writes values into row (1-based), starting at column A.
// values must be a pointer to a slice, per excelize.SetSheetRow.
func writeRow(f *excelize.File, sheet string, row int, values any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("computing cell name: %w", err)
	}

	if err := f.SetSheetRow(sheet, cell, values); err != nil {
		return fmt.Errorf("writing row %d: %w", row, err)
	}

	return nil
}
