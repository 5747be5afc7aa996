// Package pdf turns an InvoiceRecord plus computed totals into a paginated
// document. The layout engine drives a narrow Canvas collaborator so the drawing
// backend stays swappable and the layout logic stays testable.
package pdf

// Canvas is the drawing surface the layout engine renders onto. Coordinates are
// points with the origin at the top-left of the page; text calls position the
// baseline. Implementations accumulate pages and produce the final document bytes.
type Canvas interface {
	AddPage()

	SetFont(family, style string, size float64)
	SetTextColor(r, g, b int)
	SetFillColor(r, g, b int)
	SetDrawColor(r, g, b int)

	// Text draws left-aligned at x; TextRight ends at x; TextCenter centers on x.
	Text(x, y float64, s string)
	TextRight(x, y float64, s string)
	TextCenter(x, y float64, s string)

	Line(x1, y1, x2, y2 float64)
	FillRect(x, y, w, h float64)

	// Image places a raster image; ImageSize reports its intrinsic dimensions
	// without touching the document, so a corrupt file can be skipped cleanly.
	Image(path string, x, y, w, h float64) error
	ImageSize(path string) (w, h float64, err error)

	// TextWidth measures s in the currently selected font.
	TextWidth(s string) float64

	// Output finalizes the document and returns its bytes.
	Output() ([]byte, error)
}
