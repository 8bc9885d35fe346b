// Package grid renders a raffle's ticket board as a raster image for
// sharing. Geometry is fixed per capacity tier; occupancy only changes
// cell colors, except in compact mode where the canvas shrinks to the
// available numbers.
package grid

import (
	"fmt"
	"image"
	"path/filepath"
	"sort"
	"time"

	"github.com/fogleman/gg"

	"github.com/rifasve/rifas/internal/money"
	"github.com/rifasve/rifas/internal/raffle"
	"github.com/rifasve/rifas/internal/ticket"
)

// Mode selects what the board shows.
type Mode string

const (
	// ModeAll paints every number, occupied ones in their status color.
	ModeAll Mode = "all"
	// ModeAvailable paints every cell but blanks the taken numbers.
	ModeAvailable Mode = "available"
	// ModeCompact re-flows only the free numbers into a shorter board.
	ModeCompact Mode = "compact"
)

func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeAll, ModeAvailable, ModeCompact:
		return Mode(s), nil
	case "":
		return ModeAll, nil
	}

	return "", fmt.Errorf("unknown grid mode %q", s)
}

// tier is the discrete canvas configuration for one capacity. There is
// no formula and no fallback: an unknown capacity is an error.
type tier struct {
	cols, rows       int
	canvasW, canvasH int
	margin, padding  float64
	headerH          float64
	titlePts         float64
	linePts          float64
	labelPts         float64
}

var tiers = map[int]tier{
	100:  {cols: 10, rows: 10, canvasW: 1500, canvasH: 1800, margin: 40, padding: 10, headerH: 400, titlePts: 72, linePts: 40, labelPts: 54},
	1000: {cols: 40, rows: 25, canvasW: 4000, canvasH: 3000, margin: 60, padding: 8, headerH: 520, titlePts: 110, linePts: 52, labelPts: 40},
}

const (
	colorCanvas    = "#ffffff"
	colorFree      = "#f1f3f4"
	colorInk       = "#202124"
	colorReserved  = "#ff9800"
	colorPartial   = "#1a73e8"
	colorPaid      = "#9e9e9e"
	colorCellLabel = "#ffffff"
)

func statusColor(s ticket.Status) string {
	switch s {
	case ticket.StatusReserved:
		return colorReserved
	case ticket.StatusPartiallyPaid:
		return colorPartial
	case ticket.StatusPaid:
		return colorPaid
	}

	return colorPaid
}

// Renderer draws ticket boards. fontDir points at the directory holding
// the TTF assets; a missing font silently degrades to the built-in
// bitmap face.
type Renderer struct {
	fontDir string
}

func NewRenderer(fontDir string) *Renderer {
	return &Renderer{fontDir: fontDir}
}

func (t tier) cellSize() (w, h float64) {
	w = (float64(t.canvasW)-2*t.margin)/float64(t.cols) - t.padding
	h = (float64(t.canvasH)-2*t.margin-t.headerH)/float64(t.rows) - t.padding

	return w, h
}

// cellOrigin returns the top-left pixel of the cell holding linear
// index i. Row and column partition the grid exactly once: row = i/cols,
// col = i%cols.
func (t tier) cellOrigin(i int) (x, y float64) {
	cellW, cellH := t.cellSize()
	row, col := i/t.cols, i%t.cols

	x = t.margin + float64(col)*(cellW+t.padding)
	y = t.margin + t.headerH + float64(row)*(cellH+t.padding)

	return x, y
}

// compactHeight is the shrunken canvas height when only n free numbers
// are drawn.
func (t tier) compactHeight(n int) int {
	_, cellH := t.cellSize()
	rows := (n + t.cols - 1) / t.cols

	return int(2*t.margin + t.headerH + float64(rows)*(cellH+t.padding))
}

// Render draws the board for a raffle. Occupancy is read fresh by the
// caller on every render; nothing is cached here.
func (r *Renderer) Render(rf *raffle.Raffle, occupancy map[int]ticket.Status, mode Mode) (image.Image, error) {
	t, ok := tiers[rf.Capacity]
	if !ok {
		return nil, raffle.ErrUnsupportedCapacity
	}

	var freeNumbers []int

	if mode == ModeCompact {
		for n := 0; n < rf.Capacity; n++ {
			if _, taken := occupancy[n]; !taken {
				freeNumbers = append(freeNumbers, n)
			}
		}

		sort.Ints(freeNumbers)
	}

	height := t.canvasH
	if mode == ModeCompact {
		height = t.compactHeight(len(freeNumbers))
	}

	dc := gg.NewContext(t.canvasW, height)
	dc.SetHexColor(colorCanvas)
	dc.Clear()

	r.drawHeader(dc, t, rf)

	cellW, cellH := t.cellSize()

	r.loadFace(dc, t.labelPts)

	if mode == ModeCompact {
		for i, n := range freeNumbers {
			x, y := t.cellOrigin(i)
			r.drawCell(dc, rf, x, y, cellW, cellH, n, colorFree, colorInk, true)
		}

		return dc.Image(), nil
	}

	for n := 0; n < rf.Capacity; n++ {
		x, y := t.cellOrigin(n)

		status, taken := occupancy[n]

		switch {
		case taken && mode == ModeAll:
			r.drawCell(dc, rf, x, y, cellW, cellH, n, statusColor(status), colorCellLabel, true)
		case taken && mode == ModeAvailable:
			// Taken numbers stay blank so the board reads as "pick
			// from what you see".
			r.drawCell(dc, rf, x, y, cellW, cellH, n, colorFree, colorInk, false)
		default:
			r.drawCell(dc, rf, x, y, cellW, cellH, n, colorFree, colorInk, true)
		}
	}

	return dc.Image(), nil
}

func (r *Renderer) drawCell(dc *gg.Context, rf *raffle.Raffle, x, y, w, h float64, n int, fill, ink string, label bool) {
	dc.SetHexColor(fill)
	dc.DrawRoundedRectangle(x, y, w, h, 8)
	dc.Fill()

	if !label {
		return
	}

	text := raffle.FormatNumber(n, rf.Capacity)

	// Center on the measured bounding box, not the nominal font size.
	tw, th := dc.MeasureString(text)

	dc.SetHexColor(ink)
	dc.DrawString(text, x+(w-tw)/2, y+(h-th)/2+th)
}

func (r *Renderer) drawHeader(dc *gg.Context, t tier, rf *raffle.Raffle) {
	w := float64(t.canvasW)
	y := t.margin + t.titlePts

	r.loadFace(dc, t.titlePts)
	dc.SetHexColor(colorInk)
	dc.DrawStringAnchored(rf.Name, w/2, y, 0.5, 0)

	y += t.titlePts * 0.6

	r.loadFace(dc, t.linePts)

	lines := []string{
		fmt.Sprintf("Generado: %s", time.Now().Format("02/01/2006")),
		fmt.Sprintf("Sorteo: %s %s", rf.DrawDate.Format("02/01/2006"), rf.DrawTime),
		fmt.Sprintf("Precio del boleto: %s", money.Format(rf.TicketPrice)),
	}
	lines = append(lines, rf.PrizeLines()...)

	for _, line := range lines {
		y += t.linePts * 1.4
		dc.DrawStringAnchored(line, w/2, y, 0.5, 0)
	}
}

// loadFace swaps the context to the TTF at the requested size. Missing
// font files leave gg's default bitmap face in place.
func (r *Renderer) loadFace(dc *gg.Context, points float64) {
	for _, name := range []string{"Roboto-Bold.ttf", "DejaVuSans-Bold.ttf"} {
		if err := dc.LoadFontFace(filepath.Join(r.fontDir, name), points); err == nil {
			return
		}
	}
}
