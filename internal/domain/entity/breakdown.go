package entity

import (
	"github.com/shopspring/decimal"

	"github.com/WillieIlus/printy/internal/domain/valueobject"
)

// Warning is a non-fatal issue surfaced during pricing. Configuration
// gaps and degraded matches never abort a calculation; they accumulate as
// warnings on the breakdown so a reviewer can see every best-effort path
// that was taken.
type Warning string

// LayoutResult is the output of fitting items onto one production sheet.
// Invariant: Count = Columns * Rows, and Count >= 0.
type LayoutResult struct {
	// Count is the number of items that fit on one sheet side.
	Count int `json:"count"`

	// Columns across the usable sheet width.
	Columns int `json:"columns"`

	// Rows down the usable sheet height.
	Rows int `json:"rows"`

	// Rotated reports whether the 90-degree orientation was used.
	Rotated bool `json:"rotated"`

	// EffectiveItem is the bleed-inclusive item footprint that was
	// placed, in the orientation actually used.
	EffectiveItem valueobject.Dimension2D `json:"effective_item"`

	// Available is the usable sheet area after margins.
	Available valueobject.Dimension2D `json:"available"`
}

// Fits reports whether at least one item fits on the sheet.
//
// Returns:
//   - bool: true when Count > 0
func (l LayoutResult) Fits() bool {
	return l.Count > 0
}

// BookletLayout is the sheet-count result of booklet imposition.
type BookletLayout struct {
	// PagesOriginal is the requested page count.
	PagesOriginal int `json:"pages_original"`

	// PagesRounded is the page count rounded up to the signature
	// multiple.
	PagesRounded int `json:"pages_rounded"`

	// InnerPages is the page count printed in the inner run.
	InnerPages int `json:"inner_pages"`

	// CoverPages is the page count reserved for the cover run.
	CoverPages int `json:"cover_pages"`

	// PagesPerSheet is how many final pages one physical inner sheet
	// provides (items per side times printed sides).
	PagesPerSheet int `json:"pages_per_sheet"`

	// CoverPagesPerSheet is the same for the cover run's sheet.
	CoverPagesPerSheet int `json:"cover_pages_per_sheet,omitempty"`

	// InnerSheets is the physical sheets for the inner run across all
	// requested copies.
	InnerSheets int `json:"inner_sheets"`

	// CoverSheets is the physical sheets for the cover run across all
	// requested copies.
	CoverSheets int `json:"cover_sheets"`

	// Warnings raised during imposition (rounding, does-not-fit).
	Warnings []Warning `json:"warnings,omitempty"`
}

// TotalSheets returns inner plus cover sheets.
//
// Returns:
//   - int: total physical sheets
func (b BookletLayout) TotalSheets() int {
	return b.InnerSheets + b.CoverSheets
}

// RunCostBreakdown is the monetary cost of one print run (inner or
// cover). All amounts are quantized to 2 decimal places, round-half-up.
type RunCostBreakdown struct {
	// SheetCount is the number of good sheets in the run.
	SheetCount int `json:"sheet_count"`

	// PricePerSheet is the resolved per-sheet price.
	PricePerSheet valueobject.Money `json:"price_per_sheet"`

	// WasteSheets is the extra sheets allowed for press waste.
	WasteSheets int `json:"waste_sheets"`

	// WasteCost prices the waste sheets.
	WasteCost valueobject.Money `json:"waste_cost"`

	// RunningCost is sheets times price per sheet.
	RunningCost valueobject.Money `json:"running_cost"`

	// SetupCost is the flat setup charge for the run.
	SetupCost valueobject.Money `json:"setup_cost"`

	// MakereadyCost is the flat make-ready charge for the run.
	MakereadyCost valueobject.Money `json:"makeready_cost"`

	// FinishingCost is the in-line per-sheet finishing charge.
	FinishingCost valueobject.Money `json:"finishing_cost"`

	// ExtrasCost sums the run's extra charges.
	ExtrasCost valueobject.Money `json:"extras_cost"`

	// Total is the run total before section minimum-charge enforcement.
	Total valueobject.Money `json:"total"`

	// Warnings raised while costing the run.
	Warnings []Warning `json:"warnings,omitempty"`
}

// FinishingLine is one priced finishing service on a deliverable.
type FinishingLine struct {
	// Name of the service.
	Name string `json:"name"`

	// Method used to derive the effective quantity.
	Method CalculationMethod `json:"method"`

	// Quantity is the effective quantity the service was priced at.
	Quantity decimal.Decimal `json:"quantity"`

	// UnitPrice is the resolved unit price (tier or simple).
	UnitPrice valueobject.Money `json:"unit_price"`

	// Total is the line total after minimum-charge enforcement.
	Total valueobject.Money `json:"total"`

	// Warnings raised while pricing the service.
	Warnings []Warning `json:"warnings,omitempty"`
}

// CostBreakdown is the full pricing result for one deliverable. It is a
// plain serializable structure with decimal amounts so it can cross a
// process boundary unchanged.
type CostBreakdown struct {
	// Name of the deliverable, copied from the job spec.
	Name string `json:"name"`

	// Quantity requested.
	Quantity int `json:"quantity"`

	// Layout is the flat-item imposition result; zero value for
	// booklets.
	Layout LayoutResult `json:"layout,omitempty"`

	// Booklet is the booklet imposition result; zero value for flat
	// items.
	Booklet BookletLayout `json:"booklet,omitempty"`

	// InnerSheets and CoverSheets are the physical sheet counts priced.
	InnerSheets int `json:"inner_sheets"`
	CoverSheets int `json:"cover_sheets"`

	// InnerRun and CoverRun are the per-section run costs. CoverRun is
	// nil when there is no separate cover run.
	InnerRun RunCostBreakdown  `json:"inner_run"`
	CoverRun *RunCostBreakdown `json:"cover_run,omitempty"`

	// FinishingLines are the priced post-press services.
	FinishingLines []FinishingLine `json:"finishing_lines,omitempty"`

	// Total is the deliverable grand total after minimum charges.
	Total valueobject.Money `json:"total"`

	// TotalFormatted is the human-visible total (e.g., "KES 1,234.50").
	TotalFormatted string `json:"total_formatted"`

	// Priced is false when no price rule could be resolved at all; the
	// total is then zero and Warnings explains why.
	Priced bool `json:"priced"`

	// Warnings accumulated across every stage of the pipeline.
	Warnings []Warning `json:"warnings,omitempty"`
}

// OrderCostBreakdown sums deliverable breakdowns into one order total.
// It never re-derives pricing; it only aggregates.
type OrderCostBreakdown struct {
	// Deliverables are the per-job breakdowns in request order.
	Deliverables []CostBreakdown `json:"deliverables"`

	// Total is the order grand total.
	Total valueobject.Money `json:"total"`

	// TotalFormatted is the human-visible order total.
	TotalFormatted string `json:"total_formatted"`

	// Warnings raised at the order level (e.g., mixed currencies).
	Warnings []Warning `json:"warnings,omitempty"`
}
