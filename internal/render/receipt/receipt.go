// Package receipt produces the PDF payment receipt for one ticket. The
// layout is a fixed top-to-bottom cursor walk; there is no text flow or
// wrapping, only hard truncation of long fields.
package receipt

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"

	"github.com/rifasve/rifas/internal/customer"
	"github.com/rifasve/rifas/internal/money"
	"github.com/rifasve/rifas/internal/raffle"
	"github.com/rifasve/rifas/internal/ticket"
)

const (
	pageWidth  = 396.0
	baseHeight = 560.0
	// The base layout reserves room for three prize lines; extra prizes
	// stretch the page.
	prizeLineHeight = 16.0
	basePrizeLines  = 3

	margin = 28.0

	maxRaffleNameLen = 35
	maxPrizeLen      = 30
)

var paidEpsilon = decimal.New(1, -2)

// PageHeight returns the page height in points for a receipt carrying
// prizeCount prize lines.
func PageHeight(prizeCount int) float64 {
	extra := prizeCount - basePrizeLines
	if extra < 0 {
		extra = 0
	}

	return baseHeight + float64(extra)*prizeLineHeight
}

// Builder renders receipts. assetDir is searched for an optional logo;
// its absence is tolerated silently.
type Builder struct {
	assetDir string
}

func NewBuilder(assetDir string) *Builder {
	return &Builder{assetDir: assetDir}
}

// Build renders the receipt PDF. Output is byte-stable for identical
// inputs: the embedded creation date is pinned and nothing else varies.
func (b *Builder) Build(t *ticket.Ticket, c *customer.Customer, rf *raffle.Raffle, co *raffle.Company) ([]byte, error) {
	prizes := rf.PrizeLines()
	pageH := PageHeight(len(prizes))

	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: pageWidth, Ht: pageH},
	})
	pdf.SetCreationDate(time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC))
	pdf.SetModificationDate(time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC))
	pdf.SetCatalogSort(true)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	tr := pdf.UnicodeTranslatorFromDescriptor("")

	y := margin + 8

	b.drawLogo(pdf, y)

	// Company header.
	pdf.SetTextColor(32, 33, 36)
	pdf.SetFont("Helvetica", "B", 13)
	centerText(pdf, tr(co.Name), y)
	y += 15

	pdf.SetFont("Helvetica", "", 9)

	if co.TaxID != "" {
		centerText(pdf, tr("RIF: "+co.TaxID), y)
		y += 11
	}

	if co.Phone != "" {
		centerText(pdf, tr("Tel: "+co.Phone), y)
		y += 11
	}

	y += 10

	// Ticket number badge.
	badgeW, badgeH := 130.0, 46.0
	pdf.SetFillColor(211, 47, 47)
	pdf.RoundedRect((pageWidth-badgeW)/2, y, badgeW, badgeH, 8, "1234", "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 26)
	centerText(pdf, raffle.FormatNumber(t.Number, rf.Capacity), y+badgeH/2+9)
	y += badgeH + 18

	// Title and rule.
	pdf.SetTextColor(32, 33, 36)
	pdf.SetFont("Helvetica", "B", 14)
	centerText(pdf, "RECIBO DE PAGO", y)
	y += 8
	rule(pdf, y)
	y += 16

	// Raffle line.
	pdf.SetFont("Helvetica", "", 10)
	pdf.Text(margin, y, tr(fmt.Sprintf("Sorteo: %s", truncate(rf.Name, maxRaffleNameLen))))
	y += 13
	pdf.Text(margin, y, tr(fmt.Sprintf("Fecha del sorteo: %s %s", rf.DrawDate.Format("02/01/2006"), rf.DrawTime)))
	y += 16

	// Prize list, right-aligned column.
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(95, 99, 104)

	for i, p := range prizes {
		pdf.Text(pageWidth/2, y, tr(fmt.Sprintf("Premio %d: %s", i+1, truncate(p, maxPrizeLen))))
		y += prizeLineHeight
	}

	y += 6
	rule(pdf, y)
	y += 16

	// Customer block.
	pdf.SetTextColor(32, 33, 36)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.Text(margin, y, tr("Cliente"))
	y += 13

	pdf.SetFont("Helvetica", "", 10)
	pdf.Text(margin, y, tr(fmt.Sprintf("%s (%s)", c.FullName, c.Code)))
	y += 13

	if c.NationalID != "" {
		pdf.Text(margin, y, tr("C.I.: "+c.NationalID))
		y += 13
	}

	pdf.Text(margin, y, tr("Tel: "+c.Phone))
	y += 13

	if c.Address != "" {
		pdf.Text(margin, y, tr("Dir: "+truncate(c.Address, 48)))
		y += 13
	}

	y += 4
	rule(pdf, y)
	y += 18

	// Payment block.
	balance := t.Balance()

	pdf.SetFont("Helvetica", "", 11)
	pdf.Text(margin, y, tr("Precio del boleto:"))
	rightText(pdf, money.Format(t.Price), y)
	y += 16

	pdf.Text(margin, y, tr("Total abonado:"))
	rightText(pdf, money.Format(t.AmountPaid), y)
	y += 16

	pdf.SetFont("Helvetica", "B", 11)

	if balance.LessThanOrEqual(paidEpsilon) {
		pdf.SetTextColor(46, 125, 50)
		pdf.Text(margin, y, tr("SALDO: PAGADO"))
	} else {
		pdf.SetTextColor(198, 40, 40)
		pdf.Text(margin, y, tr("SALDO PENDIENTE:"))
		rightText(pdf, money.Format(balance), y)
	}

	y += 22

	// Status badge.
	label, fr, fg, fb := statusBadge(t.Status)
	badgeW = pdf.GetStringWidth(label) + 40
	pdf.SetFillColor(fr, fg, fb)
	pdf.RoundedRect((pageWidth-badgeW)/2, y, badgeW, 26, 6, "1234", "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 12)
	centerText(pdf, label, y+17)

	// Footer, pinned to the page bottom.
	pdf.SetTextColor(128, 134, 139)
	pdf.SetFont("Helvetica", "", 7)
	centerText(pdf, tr(fmt.Sprintf("Emitido: %s %s", t.AssignedAt.Format("02/01/2006"), formatClock(t.AssignedAt))), pageH-margin-10)
	centerText(pdf, tr("Este recibo es comprobante de participación. No negociable."), pageH-margin)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("rendering receipt: %w", err)
	}

	return buf.Bytes(), nil
}

// drawLogo places the company logo if any of the candidate files exist.
// A missing logo is not an error.
func (b *Builder) drawLogo(pdf *fpdf.Fpdf, y float64) {
	for _, name := range []string{"logo.png", "logo.jpg", "logo.jpeg"} {
		path := filepath.Join(b.assetDir, name)
		if _, err := os.Stat(path); err != nil {
			continue
		}

		pdf.ImageOptions(path, margin, y-6, 52, 0, false,
			fpdf.ImageOptions{ReadDpi: true}, 0, "")

		return
	}
}

func statusBadge(s ticket.Status) (label string, r, g, b int) {
	switch s {
	case ticket.StatusPaid:
		return "PAGADO", 158, 158, 158
	case ticket.StatusPartiallyPaid:
		return "ABONADO", 26, 115, 232
	default:
		return "APARTADO", 255, 152, 0
	}
}

func centerText(pdf *fpdf.Fpdf, s string, y float64) {
	pdf.Text((pageWidth-pdf.GetStringWidth(s))/2, y, s)
}

func rightText(pdf *fpdf.Fpdf, s string, y float64) {
	pdf.Text(pageWidth-margin-pdf.GetStringWidth(s), y, s)
}

func rule(pdf *fpdf.Fpdf, y float64) {
	pdf.SetDrawColor(218, 220, 224)
	pdf.SetLineWidth(0.8)
	pdf.Line(margin, y, pageWidth-margin, y)
}

// truncate hard-cuts s to n runes, no ellipsis.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}

	return string(runes[:n])
}

// formatClock renders the user-visible 12-hour clock, e.g. "5:07 pm".
func formatClock(t time.Time) string {
	return t.Format("3:04 pm")
}
