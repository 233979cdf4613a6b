package certificate

import (
	"io"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
)

type pdfRenderer struct{}

func NewPDFRenderer() Renderer { return pdfRenderer{} }

func (pdfRenderer) Format() string      { return FormatPDF }
func (pdfRenderer) ContentType() string { return "application/pdf" }

func (pdfRenderer) Render(w io.Writer, cert Certificate) error {
	// Size is the final page size: the "L" orientation would swap it.
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: pageWidth, Ht: pageHeight},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetTitle("Certificate of Completion - "+cert.StudentName, true)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	// background & border
	pdf.SetFillColor(248, 250, 252)
	pdf.Rect(0, 0, pageWidth, pageHeight, "F")
	pdf.SetDrawColor(30, 64, 175)
	pdf.SetLineWidth(4)
	pdf.Rect(margin, margin, pageWidth-2*margin, pageHeight-2*margin, "D")

	for _, ln := range cert.lines() {
		style := ""
		pdf.SetTextColor(51, 65, 85)
		if ln.bold {
			style = "B"
			pdf.SetTextColor(30, 58, 138)
		}
		pdf.SetFont("Times", style, ln.size)
		// CellFormat positions text from the top of the cell
		pdf.SetXY(0, ln.y-ln.size)
		pdf.CellFormat(pageWidth, ln.size, tr(ln.text), "", 0, "CB", false, 0, "")
	}

	// signature & seal
	pdf.SetDrawColor(148, 163, 184)
	pdf.SetLineWidth(1.5)
	pdf.Line(90, footerY, 270, footerY)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetTextColor(51, 65, 85)
	pdf.SetXY(90, footerY+6)
	pdf.CellFormat(180, 14, "School Principal", "", 0, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(pageWidth-270, footerY+6)
	pdf.CellFormat(180, 14, "School Seal", "", 0, "C", false, 0, "")

	if err := pdf.Output(w); err != nil {
		return errors.Wrap(err, "writing pdf")
	}
	return nil
}
