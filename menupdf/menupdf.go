// Package menupdf renders a restaurant's categorized menu as a printable PDF.
package menupdf

import (
	"io"

	"restaurant-menu/models"
	"restaurant-menu/services"

	"github.com/jung-kurt/gofpdf"
)

// Render writes an A4 page set with one section per non-empty course.
func Render(w io.Writer, rest models.Restaurant, menu services.Menu) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(rest.Name, true)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.CellFormat(0, 12, tr(rest.Name), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	sections := menu.Sections()
	if len(sections) == 0 {
		pdf.SetFont("Arial", "I", 12)
		pdf.CellFormat(0, 10, "No menu items yet.", "", 1, "C", false, 0, "")
	}

	for _, s := range sections {
		pdf.SetFont("Arial", "B", 14)
		pdf.CellFormat(0, 10, s.Title, "B", 1, "L", false, 0, "")
		pdf.Ln(2)
		for _, it := range s.Items {
			pdf.SetFont("Arial", "B", 12)
			pdf.CellFormat(150, 7, tr(it.Name), "", 0, "L", false, 0, "")
			pdf.CellFormat(0, 7, tr(it.Price), "", 1, "R", false, 0, "")
			if it.Description != "" {
				pdf.SetFont("Arial", "", 10)
				pdf.MultiCell(0, 5, tr(it.Description), "", "L", false)
			}
			pdf.Ln(2)
		}
		pdf.Ln(4)
	}

	return pdf.Output(w)
}
