package pdf

import (
	"fmt"
	"log"
	"strconv"

	"github.com/shopspring/decimal"

	"voxbill/internal/domain"
	"voxbill/internal/money"
)

// Fixed Letter geometry, in points.
const (
	pageWidth  = 612.0
	pageHeight = 792.0

	marginLeft  = 50.0
	marginRight = 50.0
	rightEdge   = pageWidth - marginRight

	// headerTop is where the logo band and banner sit on the first page;
	// continuationTop is where table rows resume on overflow pages.
	headerTop       = 50.0
	continuationTop = 60.0

	// bottomSafety is the cutoff below which no table row is started; the end
	// note is pinned below it.
	bottomSafety = 70.0
	cutoffY      = pageHeight - bottomSafety
	endNoteY     = pageHeight - 40.0

	lineHeight    = 16.0
	sectionGap    = 10.0
	logoBoxWidth  = 120.0
	logoBoxHeight = 60.0
)

// Line-item table columns: index, description, unit price, quantity, total.
// Index, prices and quantity are centered on their column axis; the description
// is left-aligned and truncated to its column width.
const (
	colIndexCenter = marginLeft + 15.0
	colDescLeft    = marginLeft + 40.0
	colDescWidth   = 220.0
	colUnitCenter  = 370.0
	colQtyCenter   = 440.0
	colTotalCenter = 515.0
)

// Engine lays an invoice out onto one or more fixed-size pages by driving a
// Canvas. It holds no state between renders.
type Engine struct {
	canvas Canvas
}

// NewEngine creates a layout engine over the given canvas.
func NewEngine(c Canvas) *Engine {
	return &Engine{canvas: c}
}

// Render draws the full document and returns its bytes. A missing or corrupt
// logo is logged and skipped; any other failure during construction surfaces as
// domain.ErrRenderFailed with no partial document.
func (e *Engine) Render(rec *domain.InvoiceRecord, totals money.Totals) (out []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("pdf.Engine: render panicked: %v", r)
			out, err = nil, fmt.Errorf("%w: %v", domain.ErrRenderFailed, r)
		}
	}()

	e.canvas.AddPage()

	y := e.drawHeader(rec)
	y = e.drawMetadata(rec, y)
	y = e.drawParty("From", rec.Issuer, y)
	y = e.drawParty("Bill To", rec.Client, y)
	y = e.drawItemsTable(rec, y)
	y = e.drawSummary(rec, totals, y)
	e.drawFooter(rec, y)

	bytes, oerr := e.canvas.Output()
	if oerr != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrRenderFailed, oerr)
	}
	return bytes, nil
}

// drawHeader renders the logo band, the payment-status banner and the title,
// returning the y cursor for the first content section.
func (e *Engine) drawHeader(rec *domain.InvoiceRecord) float64 {
	if rec.LogoImage != "" {
		e.drawLogo(rec.LogoImage)
	}

	e.drawStatusBanner(rec.Status())

	e.canvas.SetFont("Helvetica", "B", 24)
	e.canvas.SetTextColor(0, 0, 0)
	e.canvas.TextRight(rightEdge, headerTop+22, "INVOICE")

	return headerTop + logoBoxHeight + 20
}

// drawLogo scales the image into the header bounding box preserving aspect
// ratio. An unreadable file only costs the logo, never the document.
func (e *Engine) drawLogo(path string) {
	w, h, err := e.canvas.ImageSize(path)
	if err != nil {
		log.Printf("pdf.Engine: skipping logo %s: %v", path, err)
		return
	}

	scale := logoBoxWidth / w
	if s := logoBoxHeight / h; s < scale {
		scale = s
	}
	if scale > 1 {
		scale = 1
	}

	if err := e.canvas.Image(path, marginLeft, headerTop, w*scale, h*scale); err != nil {
		log.Printf("pdf.Engine: skipping logo %s: %v", path, err)
	}
}

func (e *Engine) drawStatusBanner(status domain.PaymentStatus) {
	const bannerW, bannerH = 160.0, 24.0
	x := (pageWidth - bannerW) / 2

	if status == domain.PaymentStatusPaid {
		e.canvas.SetFillColor(76, 175, 80)
	} else {
		e.canvas.SetFillColor(211, 47, 47)
	}
	e.canvas.FillRect(x, headerTop, bannerW, bannerH)

	e.canvas.SetFont("Helvetica", "B", 12)
	e.canvas.SetTextColor(255, 255, 255)
	e.canvas.TextCenter(pageWidth/2, headerTop+bannerH-8, string(status))
	e.canvas.SetTextColor(0, 0, 0)
}

// drawMetadata renders invoice number and dates right-aligned, one line per
// present field.
func (e *Engine) drawMetadata(rec *domain.InvoiceRecord, y float64) float64 {
	lines := []struct{ label, value string }{
		{"Invoice #: ", rec.InvoiceNumber},
		{"Issue Date: ", rec.IssueDate},
		{"Due Date: ", rec.DueDate},
	}

	e.canvas.SetFont("Helvetica", "", 11)
	drawn := false
	for _, l := range lines {
		if l.value == "" {
			continue
		}
		e.canvas.TextRight(rightEdge, y, l.label+l.value)
		y += lineHeight
		drawn = true
	}
	if drawn {
		y += sectionGap
	}
	return y
}

// drawParty renders a titled block ("From" / "Bill To") with one line per
// non-empty field. Blocks with no content are omitted entirely.
func (e *Engine) drawParty(title string, p domain.Party, y float64) float64 {
	if !p.HasContent() {
		return y
	}

	e.canvas.SetFont("Helvetica", "B", 12)
	e.canvas.Text(marginLeft, y, title+":")
	y += lineHeight + 2

	e.canvas.SetFont("Helvetica", "", 11)
	for _, field := range []string{p.Name, p.Contact, p.Address, p.Email} {
		if field == "" {
			continue
		}
		e.canvas.Text(marginLeft, y, field)
		y += lineHeight
	}
	return y + sectionGap
}

// drawItemsTable renders the five-column line-item table, starting a fresh page
// whenever the next row would cross the bottom safety margin. Continuation pages
// carry only table rows.
func (e *Engine) drawItemsTable(rec *domain.InvoiceRecord, y float64) float64 {
	e.canvas.SetFont("Helvetica", "B", 11)
	e.canvas.TextCenter(colIndexCenter, y, "#")
	e.canvas.Text(colDescLeft, y, "Description")
	e.canvas.TextCenter(colUnitCenter, y, "Unit Price")
	e.canvas.TextCenter(colQtyCenter, y, "Qty")
	e.canvas.TextCenter(colTotalCenter, y, "Total")

	e.canvas.SetDrawColor(0, 0, 0)
	e.canvas.Line(marginLeft, y+5, rightEdge, y+5)
	y += lineHeight + 5

	e.canvas.SetFont("Helvetica", "", 11)
	for i, item := range rec.LineItems {
		if y > cutoffY {
			e.canvas.AddPage()
			e.canvas.SetFont("Helvetica", "", 11)
			y = continuationTop
		}

		unit, _ := money.ParseAmount(item.UnitPrice.String(), rec.CurrencySymbol)
		total, _ := money.ParseAmount(item.TotalPrice.String(), rec.CurrencySymbol)
		qty := money.ParseQuantity(item.Quantity.String())

		e.canvas.TextCenter(colIndexCenter, y, strconv.Itoa(i+1))
		e.canvas.Text(colDescLeft, y, e.fitText(item.Description, colDescWidth))
		e.canvas.TextCenter(colUnitCenter, y, e.amount(rec, unit))
		e.canvas.TextCenter(colQtyCenter, y, strconv.FormatInt(qty, 10))
		e.canvas.TextCenter(colTotalCenter, y, e.amount(rec, total))
		y += lineHeight
	}

	return y + sectionGap
}

// drawSummary renders the right-aligned label/value stack. Each line is a single
// right-aligned string, not two separately aligned columns.
func (e *Engine) drawSummary(rec *domain.InvoiceRecord, totals money.Totals, y float64) float64 {
	if y+5*lineHeight > cutoffY {
		e.canvas.AddPage()
		y = continuationTop
	}

	e.canvas.SetFont("Helvetica", "", 11)
	e.canvas.TextRight(rightEdge, y, "Subtotal: "+e.amount(rec, totals.Subtotal))
	y += lineHeight

	if totals.HasVAT {
		e.canvas.TextRight(rightEdge, y, totals.VATLabel+": "+e.amount(rec, totals.VAT))
		y += lineHeight
	}
	if totals.HasTax {
		e.canvas.TextRight(rightEdge, y, totals.TaxLabel+": "+e.amount(rec, totals.Tax))
		y += lineHeight
	}
	if totals.HasShipping {
		e.canvas.TextRight(rightEdge, y, "Shipping: "+e.amount(rec, totals.Shipping))
		y += lineHeight
	}

	e.canvas.SetFont("Helvetica", "B", 12)
	e.canvas.TextRight(rightEdge, y, "Total Amount: "+e.amount(rec, totals.GrandTotal))
	return y + lineHeight + sectionGap
}

// drawFooter renders the optional payment method at the cursor and pins the end
// note near the bottom margin regardless of how far the summary reached.
func (e *Engine) drawFooter(rec *domain.InvoiceRecord, y float64) {
	if rec.PaymentMethod != "" {
		if y > cutoffY {
			e.canvas.AddPage()
			y = continuationTop
		}
		e.canvas.SetFont("Helvetica", "", 11)
		e.canvas.Text(marginLeft, y, "Payment Method: "+rec.PaymentMethod)
	}

	if rec.EndNote != "" {
		e.canvas.SetFont("Helvetica", "I", 10)
		e.canvas.Text(marginLeft, endNoteY, rec.EndNote)
	}
}

// amount formats a monetary value with the record's currency symbol prefixed.
func (e *Engine) amount(rec *domain.InvoiceRecord, d decimal.Decimal) string {
	return rec.CurrencySymbol + money.Format(d)
}

// fitText truncates s with an ellipsis so it fits within maxWidth in the
// currently selected font.
func (e *Engine) fitText(s string, maxWidth float64) string {
	if e.canvas.TextWidth(s) <= maxWidth {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 {
		runes = runes[:len(runes)-1]
		candidate := string(runes) + "..."
		if e.canvas.TextWidth(candidate) <= maxWidth {
			return candidate
		}
	}
	return "..."
}
