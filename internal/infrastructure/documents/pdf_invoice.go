package documents

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"

	"github.com/you/shopsvc/domain"
)

// PDFInvoiceRenderer implements domain.InvoiceRenderer
type PDFInvoiceRenderer struct{}

// NewPDFInvoiceRenderer creates a new PDF invoice renderer
func NewPDFInvoiceRenderer() domain.InvoiceRenderer {
	return &PDFInvoiceRenderer{}
}

// Render implements domain.InvoiceRenderer. The grand total is recomputed
// from the order snapshot; no stored total is trusted.
func (r *PDFInvoiceRenderer) Render(order *domain.Order, w io.Writer) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 24)
	pdf.Cell(0, 12, "Invoice")
	pdf.Ln(14)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Order: %s", order.ID.Hex()))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Customer: %s", order.User.Email))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", order.CreatedAt.Format("2006-01-02")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 6, "-----------------------------------------")
	pdf.Ln(8)

	for _, item := range order.Items {
		line := fmt.Sprintf("%s - %d x $%.2f", item.Product.Title, item.Quantity, item.Product.Price)
		pdf.Cell(140, 7, line)
		pdf.CellFormat(0, 7, fmt.Sprintf("$%.2f", float64(item.Quantity)*item.Product.Price), "", 0, "R", false, 0, "")
		pdf.Ln(7)
	}

	pdf.Cell(0, 6, "-----------------------------------------")
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 8, fmt.Sprintf("Total: $%.2f", order.Total()))

	return pdf.Output(w)
}
