package service

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"github.com/jung-kurt/gofpdf/v2"
	"github.com/pkg/errors"
	qrcode "github.com/skip2/go-qrcode"
	"golang.org/x/image/draw"
)

// CodeQRPNG encodes a customer code as a PNG QR image scaled to size pixels.
func CodeQRPNG(code string, size int) ([]byte, error) {
	if size <= 0 {
		size = 256
	}

	qr, err := qrcode.New(code, qrcode.Medium)
	if err != nil {
		return nil, errors.Wrap(err, "encoding qr")
	}

	src := qr.Image(256)
	if size == 256 {
		var buf bytes.Buffer
		if err := png.Encode(&buf, src); err != nil {
			return nil, errors.Wrap(err, "encoding png")
		}
		return buf.Bytes(), nil
	}

	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return nil, errors.Wrap(err, "encoding png")
	}
	return buf.Bytes(), nil
}

type LabelItem struct {
	Name string
	Code string
}

// LabelSheetPDF lays customer QR labels out on an A4 grid, three per row,
// so a batch can be printed and cut.
func LabelSheetPDF(items []LabelItem) (*bytes.Buffer, error) {
	const (
		cols     = 3
		cellW    = 60.0
		cellH    = 45.0
		qrSide   = 30.0
		marginX  = 15.0
		marginY  = 15.0
		pageRows = 5
	)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "", 9)

	for i, item := range items {
		col := i % cols
		row := (i / cols) % pageRows
		if i > 0 && col == 0 && row == 0 {
			pdf.AddPage()
		}

		x := marginX + float64(col)*cellW
		y := marginY + float64(row)*cellH

		pngData, err := CodeQRPNG(item.Code, 256)
		if err != nil {
			return nil, err
		}

		name := fmt.Sprintf("qr-%d", i)
		pdf.RegisterImageOptionsReader(name, gofpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(pngData))
		pdf.ImageOptions(name, x+(cellW-qrSide)/2, y, qrSide, qrSide, false, gofpdf.ImageOptions{ImageType: "PNG"}, 0, "")

		pdf.SetXY(x, y+qrSide+1)
		pdf.CellFormat(cellW, 4, item.Code, "", 2, "C", false, 0, "")
		pdf.CellFormat(cellW, 4, item.Name, "", 0, "C", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, errors.Wrap(err, "rendering label sheet")
	}

	return &buf, nil
}
