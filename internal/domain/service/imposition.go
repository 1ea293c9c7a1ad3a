// Package service contains the pricing engine's domain services. Every
// function here is pure and stateless: inputs are immutable snapshots,
// outputs are freshly allocated, and concurrent calls never interact.
package service

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/WillieIlus/printy/internal/domain/entity"
	"github.com/WillieIlus/printy/internal/domain/valueobject"
)

// DefaultSignatureMultiple is the page multiple for saddle-stitched
// booklets: one folded sheet side yields 4 pages.
const DefaultSignatureMultiple = 4

// coverPageCount is the number of pages a separate cover run reserves
// (front/back outside and inside).
const coverPageCount = 4

var two = decimal.NewFromInt(2)

// FitLayout computes how many copies of an item fit on one side of a
// production sheet in an axis-aligned grid.
//
// The item's effective footprint adds bleed to both sides of each
// dimension. The sheet's usable area subtracts the margin/gripper from
// both edges of each axis before any gutter math. For each orientation:
//
//	columns = floor((availableWidth + gutter) / (effectiveWidth + gutter))
//
// and likewise for rows; the unrotated and 90-degree-rotated orientations
// are both evaluated when allowRotation is set and the higher count wins.
// Ties keep the unrotated result.
//
// Degenerate inputs (non-positive usable area or item size) yield a
// zero-count result; this function never panics and never divides by zero.
//
// Parameters:
//   - sheet: the production sheet
//   - item: the finished item with bleed/gutter/margin
//   - allowRotation: whether to evaluate the rotated orientation
//
// Returns:
//   - entity.LayoutResult: the winning grid layout (Count may be 0)
func FitLayout(sheet entity.SheetSpec, item entity.ItemSpec, allowRotation bool) entity.LayoutResult {
	eff := item.EffectiveSize()

	available := valueobject.NewDimension2D(
		sheet.Size.Width.Sub(item.Margin.Mul(two)),
		sheet.Size.Height.Sub(item.Margin.Mul(two)),
	)

	result := entity.LayoutResult{
		EffectiveItem: eff,
		Available:     available,
	}

	if !available.IsPositive() {
		return result
	}

	count, cols, rows := gridCount(available, eff, item.Gutter)
	result.Count = count
	result.Columns = cols
	result.Rows = rows

	if allowRotation {
		rotated := eff.Swapped()
		rCount, rCols, rRows := gridCount(available, rotated, item.Gutter)
		// Strictly greater: ties keep the unrotated orientation.
		if rCount > count {
			result.Count = rCount
			result.Columns = rCols
			result.Rows = rRows
			result.Rotated = true
			result.EffectiveItem = rotated
		}
	}

	return result
}

// gridCount solves N*itemW + (N-1)*gutter <= availW for the largest N,
// i.e. N = floor((availW+gutter)/(itemW+gutter)), per axis.
func gridCount(avail, item valueobject.Dimension2D, gutter decimal.Decimal) (count, cols, rows int) {
	if !item.IsPositive() {
		return 0, 0, 0
	}

	cols = int(avail.Width.Add(gutter).Div(item.Width.Add(gutter)).IntPart())
	rows = int(avail.Height.Add(gutter).Div(item.Height.Add(gutter)).IntPart())
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	return cols * rows, cols, rows
}

// SheetsNeeded returns the number of production sheets required to print
// quantity items at itemsPerSheet per sheet, by ceiling division.
//
// When itemsPerSheet <= 0 (item does not fit, or invalid layout) every
// item is charged a full sheet instead of dividing by zero. This is a
// deliberate safe fallback; the caller layer must attach a warning when
// it is taken.
//
// Parameters:
//   - quantity: number of items requested (<= 0 yields 0)
//   - itemsPerSheet: items that fit on one sheet
//
// Returns:
//   - int: sheets required
func SheetsNeeded(quantity, itemsPerSheet int) int {
	if quantity <= 0 {
		return 0
	}
	if itemsPerSheet <= 0 {
		return quantity
	}
	return (quantity + itemsPerSheet - 1) / itemsPerSheet
}

// roundUpToMultiple rounds value up to the next multiple of base.
func roundUpToMultiple(value, base int) int {
	if base <= 0 {
		return value
	}
	return ((value + base - 1) / base) * base
}

// BookletSheets computes the physical sheets needed for a saddle-stitched
// booklet run.
//
// The page count is rounded up to the signature multiple (default 4).
// When the rounded count is at most the cover's four pages, the cover is
// the whole book and there is no inner run. Otherwise the inner run
// prints rounded-minus-cover pages at itemsPerSide*(printed sides) pages
// per physical sheet.
//
// Sheet counts are per copy and multiplied by the number of copies:
// every copy needs its own signatures, only plates and setup are shared,
// and those are priced elsewhere.
//
// A separate cover run uses its own sheet/bleed/gutter/margin parameters
// when supplied on the booklet spec, defaulting to the inner run's.
//
// Parameters:
//   - copies: number of finished booklets requested
//   - job: the full job spec (page item, inner sheet, booklet fields)
//
// Returns:
//   - entity.BookletLayout: sheet counts and imposition metadata
func BookletSheets(copies int, job entity.JobSpec) entity.BookletLayout {
	layout := entity.BookletLayout{
		PagesOriginal: job.Booklet.TotalPages,
	}

	signature := job.Booklet.SignatureMultiple
	if signature <= 0 {
		signature = DefaultSignatureMultiple
	}

	layout.PagesRounded = roundUpToMultiple(job.Booklet.TotalPages, signature)
	if layout.PagesRounded != layout.PagesOriginal {
		layout.Warnings = append(layout.Warnings, entity.Warning(fmt.Sprintf(
			"rounded pages %d to %d to meet %d-page signature",
			layout.PagesOriginal, layout.PagesRounded, signature)))
	}

	if layout.PagesRounded <= 0 || copies <= 0 {
		return layout
	}

	sides := job.ResolvedSidedness().Sides()

	inner := FitLayout(job.Sheet, job.Item, job.AllowRotation)
	layout.PagesPerSheet = inner.Count * sides

	if layout.PagesPerSheet <= 0 {
		layout.Warnings = append(layout.Warnings, entity.Warning(fmt.Sprintf(
			"page %s does not fit on inner sheet %s with the given bleed/gutter/margin",
			job.Item.Size, job.Sheet.Size)))
		return layout
	}

	coverSeparate := job.Booklet.CoverSeparate
	if layout.PagesRounded <= coverPageCount {
		// The cover is the whole book; no inner run exists.
		coverSeparate = false
	}

	if coverSeparate {
		layout.CoverPages = coverPageCount
	}
	layout.InnerPages = layout.PagesRounded - layout.CoverPages
	if layout.InnerPages < 0 {
		layout.InnerPages = 0
	}

	perCopyInner := SheetsNeeded(layout.InnerPages, layout.PagesPerSheet)
	layout.InnerSheets = perCopyInner * copies

	if coverSeparate && layout.CoverPages > 0 {
		coverSheet := job.Sheet
		if job.Booklet.CoverSheet != nil {
			coverSheet = *job.Booklet.CoverSheet
		}
		coverItem := job.Item
		if job.Booklet.CoverItem != nil {
			coverItem = *job.Booklet.CoverItem
		}

		coverFit := FitLayout(coverSheet, coverItem, job.AllowRotation)
		layout.CoverPagesPerSheet = coverFit.Count * sides

		if layout.CoverPagesPerSheet <= 0 {
			layout.Warnings = append(layout.Warnings, entity.Warning(fmt.Sprintf(
				"cover page %s does not fit on cover sheet %s",
				coverItem.Size, coverSheet.Size)))
		} else {
			perCopyCover := SheetsNeeded(layout.CoverPages, layout.CoverPagesPerSheet)
			layout.CoverSheets = perCopyCover * copies
		}
	}

	return layout
}
