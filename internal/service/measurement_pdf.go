package service

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf/v2"
	"github.com/pkg/errors"
)

type MeasurementSlip struct {
	Name    string
	Code    string
	Phone   string
	Address string
	Note    string
	// Values keeps the measurement fields in display order.
	Values []MeasurementValue
}

type MeasurementValue struct {
	Label string
	Value string
}

// MeasurementSlipPDF renders a one-page slip a tailor can pin to an order.
func MeasurementSlipPDF(slip MeasurementSlip) (*bytes.Buffer, error) {
	pdf := gofpdf.New("P", "mm", "A5", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, fmt.Sprintf("Measurement Slip %s", slip.Code))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Customer: %s", slip.Name))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Phone: %s", slip.Phone))
	pdf.Ln(7)
	if slip.Address != "" {
		pdf.Cell(0, 7, fmt.Sprintf("Address: %s", slip.Address))
		pdf.Ln(7)
	}
	pdf.Ln(3)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(60, 8, "Measurement", "1", 0, "L", false, 0, "")
	pdf.CellFormat(40, 8, "Value", "1", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	for _, v := range slip.Values {
		if v.Value == "" {
			continue
		}
		pdf.CellFormat(60, 8, v.Label, "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 8, v.Value, "1", 1, "L", false, 0, "")
	}

	if slip.Note != "" {
		pdf.Ln(5)
		pdf.SetFont("Helvetica", "I", 10)
		pdf.MultiCell(0, 6, "Note: "+slip.Note, "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, errors.Wrap(err, "rendering slip pdf")
	}

	return &buf, nil
}
