// Package export writes the current scene to a PDF document.
package export

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"

	"github.com/jung-kurt/gofpdf"

	"chosenoffset.com/thickline/internal/core/geometry"
	"chosenoffset.com/thickline/internal/core/polyline"
)

// ErrEmptyPage is returned for a page with zero area.
var ErrEmptyPage = errors.New("export page has zero area")

// Page describes the exported page: one PDF point per surface pixel.
type Page struct {
	Width      int
	Height     int
	Background color.Color
	Foreground color.Color
}

// WritePDF renders the segments as filled quads onto a single page and
// writes the document to w. Degenerate segments are skipped, as on screen.
func WritePDF(w io.Writer, segments []polyline.Segment, page Page) error {
	if page.Width <= 0 || page.Height <= 0 {
		return ErrEmptyPage
	}

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: float64(page.Width), Ht: float64(page.Height)},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetTitle("Polyline", true)
	pdf.SetCreator("thickline", true)
	pdf.AddPage()

	r, g, b := rgb(page.Background)
	pdf.SetFillColor(r, g, b)
	pdf.Rect(0, 0, float64(page.Width), float64(page.Height), "F")

	r, g, b = rgb(page.Foreground)
	pdf.SetFillColor(r, g, b)
	for _, seg := range segments {
		quad, err := geometry.ThickLineQuad(seg.Start, seg.End, seg.Width)
		if err != nil {
			continue
		}
		pts := make([]gofpdf.PointType, len(quad))
		for i, p := range quad {
			pts[i] = gofpdf.PointType{X: p.X, Y: p.Y}
		}
		pdf.Polygon(pts, "F")
	}

	return pdf.Output(w)
}

// FileName returns the export file name for a session.
func FileName(sessionID string, seq int) string {
	return fmt.Sprintf("polyline-%s-%03d.pdf", sessionID, seq)
}

// WriteFile writes the PDF into dir and returns the path written.
func WriteFile(dir, name string, segments []polyline.Segment, page Page) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create export dir: %w", err)
	}

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create export file: %w", err)
	}

	if err := WritePDF(f, segments, page); err != nil {
		f.Close()
		os.Remove(path)
		return "", fmt.Errorf("failed to write PDF: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to close export file: %w", err)
	}
	return path, nil
}

func rgb(c color.Color) (r, g, b int) {
	if c == nil {
		return 0, 0, 0
	}
	cr, cg, cb, _ := c.RGBA()
	return int(cr >> 8), int(cg >> 8), int(cb >> 8)
}
