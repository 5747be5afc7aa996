package pdf

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/jung-kurt/gofpdf"
)

// fpdfCanvas implements Canvas on top of gofpdf with a fixed Letter page.
type fpdfCanvas struct {
	pdf *gofpdf.Fpdf
}

// NewFpdfCanvas creates a gofpdf-backed canvas in point units on Letter pages.
// Automatic page breaks are disabled: pagination is the layout engine's decision.
func NewFpdfCanvas() Canvas {
	p := gofpdf.New("P", "pt", "Letter", "")
	p.SetAutoPageBreak(false, 0)
	p.SetMargins(0, 0, 0)
	return &fpdfCanvas{pdf: p}
}

func (c *fpdfCanvas) AddPage() { c.pdf.AddPage() }

func (c *fpdfCanvas) SetFont(family, style string, size float64) {
	c.pdf.SetFont(family, style, size)
}

func (c *fpdfCanvas) SetTextColor(r, g, b int) { c.pdf.SetTextColor(r, g, b) }
func (c *fpdfCanvas) SetFillColor(r, g, b int) { c.pdf.SetFillColor(r, g, b) }
func (c *fpdfCanvas) SetDrawColor(r, g, b int) { c.pdf.SetDrawColor(r, g, b) }

func (c *fpdfCanvas) Text(x, y float64, s string) { c.pdf.Text(x, y, s) }

func (c *fpdfCanvas) TextRight(x, y float64, s string) {
	c.pdf.Text(x-c.pdf.GetStringWidth(s), y, s)
}

func (c *fpdfCanvas) TextCenter(x, y float64, s string) {
	c.pdf.Text(x-c.pdf.GetStringWidth(s)/2, y, s)
}

func (c *fpdfCanvas) Line(x1, y1, x2, y2 float64) { c.pdf.Line(x1, y1, x2, y2) }

func (c *fpdfCanvas) FillRect(x, y, w, h float64) { c.pdf.Rect(x, y, w, h, "F") }

func (c *fpdfCanvas) Image(path string, x, y, w, h float64) error {
	opts := gofpdf.ImageOptions{ReadDpi: true}
	c.pdf.ImageOptions(path, x, y, w, h, false, opts, 0, "")
	if c.pdf.Err() {
		return fmt.Errorf("placing image %s: %v", path, c.pdf.Error())
	}
	return nil
}

// ImageSize decodes only the image header with the stdlib decoders. Validating
// here keeps a corrupt logo from wedging gofpdf's sticky error state.
func (c *fpdfCanvas) ImageSize(path string) (float64, float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer func() { _ = f.Close() }()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, fmt.Errorf("decoding image %s: %w", path, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return 0, 0, fmt.Errorf("image %s has no dimensions", path)
	}
	return float64(cfg.Width), float64(cfg.Height), nil
}

func (c *fpdfCanvas) TextWidth(s string) float64 { return c.pdf.GetStringWidth(s) }

func (c *fpdfCanvas) Output() ([]byte, error) {
	var buf bytes.Buffer
	if err := c.pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
