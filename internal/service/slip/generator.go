package slip

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/m04kA/SpaBookingService/internal/domain"
)

// Header реквизиты салона в шапке квитанции
type Header struct {
	Name    string
	Phone   string
	Address string
	Social  string
}

// Generator формирует PDF квитанцию бронирования с QR кодом номера
type Generator struct {
	header Header
}

// NewGenerator создает генератор квитанций
func NewGenerator(header Header) *Generator {
	return &Generator{header: header}
}

// FileName имя файла квитанции для вложения / скачивания
func FileName(b *domain.Booking) string {
	return fmt.Sprintf("booking-%s.pdf", b.Reference)
}

// Render формирует одностраничную квитанцию A5
func (g *Generator) Render(b *domain.Booking) ([]byte, error) {
	qr, err := qrcode.Encode(b.Reference, qrcode.Medium, 256)
	if err != nil {
		return nil, fmt.Errorf("%w: encode qr: %v", ErrRender, err)
	}

	pdf := gofpdf.New("P", "mm", "A5", "")
	pdf.SetMargins(12, 12, 12)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	// Core-шрифты работают в cp1252
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	// --- Header ---
	pdf.SetFillColor(212, 175, 55)
	pdf.Rect(0, 0, 148, 28, "F")
	pdf.SetXY(12, 8)
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetTextColor(26, 26, 26)
	pdf.CellFormat(0, 8, tr(g.header.Name), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, "Booking Slip", "", 1, "C", false, 0, "")

	// --- Details + QR ---
	yStart := 38.0
	pdf.SetFillColor(249, 249, 249)
	pdf.Rect(12, yStart, 80, 62, "F")

	pdf.SetXY(16, yStart+4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, tr(b.Reference))
	pdf.Ln(9)

	rows := [][2]string{
		{"Name", b.Name},
		{"Service", b.Service},
		{"Date", b.Date.Format("Mon, 2 Jan 2006")},
		{"Time", b.Time},
		{"Phone", b.Phone},
		{"Status", string(b.Status)},
	}
	for _, row := range rows {
		pdf.SetX(16)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.Cell(20, 7, row[0]+":")
		pdf.SetFont("Helvetica", "", 10)
		pdf.Cell(0, 7, tr(row[1]))
		pdf.Ln(7)
	}

	pdf.RegisterImageOptionsReader("qr", gofpdf.ImageOptions{ImageType: "png"}, bytes.NewReader(qr))
	pdf.ImageOptions("qr", 98, yStart, 38, 0, false, gofpdf.ImageOptions{ImageType: "png"}, 0, "")

	pdf.SetXY(96, yStart+40)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.MultiCell(42, 4, "Show this code or quote your reference at the front desk.", "", "C", false)

	// --- Notes ---
	if b.Notes != nil && *b.Notes != "" {
		pdf.SetXY(12, yStart+68)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.Cell(0, 6, "Notes")
		pdf.Ln(6)
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 5, tr(*b.Notes), "", "", false)
	}

	// --- Footer ---
	pdf.SetDrawColor(200, 200, 200)
	pdf.Line(12, 190, 136, 190)
	pdf.SetXY(12, 192)
	pdf.SetFont("Helvetica", "I", 8)
	footer := fmt.Sprintf("%s | %s | %s", g.header.Address, g.header.Phone, g.header.Social)
	pdf.CellFormat(0, 6, tr(footer), "", 0, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRender, err)
	}
	return buf.Bytes(), nil
}
