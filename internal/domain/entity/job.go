// Package entity contains the core business entities of the domain layer.
// All entities here are immutable value inputs to the pricing engine; the
// engine never mutates them and does not own their lifecycle. Catalog data
// (machines, papers, prices) belongs to the external catalog store.
package entity

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/WillieIlus/printy/internal/domain/valueobject"
)

// Job errors define domain-specific error conditions for job specs.
var (
	ErrInvalidQuantity  = errors.New("job quantity must be non-negative")
	ErrInvalidItemSize  = errors.New("item dimensions must be positive")
	ErrInvalidSheetSize = errors.New("sheet dimensions must be positive")
)

// Sidedness represents whether a sheet is printed on one or both sides.
type Sidedness string

const (
	SidednessSingle Sidedness = "single" // Printed on one side only
	SidednessDouble Sidedness = "double" // Printed on both sides (duplex)
)

// Sides returns the number of printed sides per sheet.
//
// Returns:
//   - int: 2 for double-sided, 1 otherwise
func (s Sidedness) Sides() int {
	if s == SidednessDouble {
		return 2
	}
	return 1
}

// SheetSpec describes a production sheet as supplied by the material or
// machine catalog (e.g., SRA3 450x320).
type SheetSpec struct {
	// ID is the catalog identity of the sheet size.
	ID uuid.UUID `json:"id"`

	// Name is the catalog name (e.g., "SRA3").
	Name string `json:"name"`

	// Size is the sheet dimensions in millimeters.
	Size valueobject.Dimension2D `json:"size"`
}

// ItemSpec describes one finished item to be imposed on a production sheet.
// Bleed, gutter and margin are all in millimeters.
type ItemSpec struct {
	// Size is the client-facing finished size.
	Size valueobject.Dimension2D `json:"size"`

	// Bleed is added symmetrically to both sides of each dimension.
	Bleed decimal.Decimal `json:"bleed_mm"`

	// Gutter is the cutting space between neighboring items.
	Gutter decimal.Decimal `json:"gutter_mm"`

	// Margin is the gripper/border reserve subtracted from both edges of
	// each sheet axis; it is unusable for print.
	Margin decimal.Decimal `json:"margin_mm"`
}

// EffectiveSize returns the item footprint including bleed on both sides
// of each dimension.
//
// Returns:
//   - valueobject.Dimension2D: bleed-inclusive footprint
func (i ItemSpec) EffectiveSize() valueobject.Dimension2D {
	two := decimal.NewFromInt(2)
	return valueobject.NewDimension2D(
		i.Size.Width.Add(i.Bleed.Mul(two)),
		i.Size.Height.Add(i.Bleed.Mul(two)),
	)
}

// BookletSpec carries the booklet-specific fields of a job.
// A zero TotalPages means the job is a flat item, not a booklet.
type BookletSpec struct {
	// TotalPages is the number of final pages in the book (e.g., 32).
	TotalPages int `json:"total_pages"`

	// SignatureMultiple is the page multiple pages are rounded up to.
	// Saddle stitch uses 4. Zero means the engine default (4).
	SignatureMultiple int `json:"signature_multiple,omitempty"`

	// CoverSeparate indicates the cover prints as its own run on its own
	// stock instead of being part of the inner signatures.
	CoverSeparate bool `json:"cover_separate"`

	// CoverSheet optionally overrides the production sheet for the cover
	// run. Nil means the inner run's sheet is used.
	CoverSheet *SheetSpec `json:"cover_sheet,omitempty"`

	// CoverItem optionally overrides bleed/gutter/margin for the cover
	// run. Nil means the inner run's parameters are used.
	CoverItem *ItemSpec `json:"cover_item,omitempty"`
}

// IsBooklet reports whether the spec describes a booklet.
//
// Returns:
//   - bool: true when a page count is set
func (b BookletSpec) IsBooklet() bool {
	return b.TotalPages > 0
}

// JobSpec is the full specification of one deliverable to be priced: what
// to print, on what, how many, and how it is bound.
type JobSpec struct {
	// Name labels the deliverable on the quote (e.g., "Business Cards").
	Name string `json:"name"`

	// Quantity is the number of finished copies requested.
	Quantity int `json:"quantity"`

	// Item is the finished item with its imposition parameters.
	Item ItemSpec `json:"item"`

	// Sheet is the production sheet for the (inner) run.
	Sheet SheetSpec `json:"sheet"`

	// Sidedness selects single or double sided printing. Empty defaults
	// to single, except booklets which default to double.
	Sidedness Sidedness `json:"sidedness,omitempty"`

	// MachineID identifies the press in the price catalog.
	MachineID uuid.UUID `json:"machine_id"`

	// MaterialID identifies the paper stock in the price catalog.
	MaterialID uuid.UUID `json:"material_id"`

	// AllowRotation permits the 90-degree rotated orientation during
	// imposition when it yields more items per sheet.
	AllowRotation bool `json:"allow_rotation"`

	// Booklet holds booklet fields; zero value for flat items.
	Booklet BookletSpec `json:"booklet,omitempty"`

	// Finishing lists the post-press services requested for this job.
	Finishing []uuid.UUID `json:"finishing,omitempty"`

	// Sets is the number of collated sets, for per-set finishing such as
	// NCR books. Zero is treated as one set.
	Sets int `json:"sets,omitempty"`
}

// ResolvedSidedness returns the sidedness to price with, applying the
// booklet default: booklets are imposed duplex unless explicitly single.
//
// Returns:
//   - Sidedness: the effective sidedness
func (j JobSpec) ResolvedSidedness() Sidedness {
	if j.Sidedness != "" {
		return j.Sidedness
	}
	if j.Booklet.IsBooklet() {
		return SidednessDouble
	}
	return SidednessSingle
}

// Validate checks the boundary invariants of the job spec.
// The engine itself degrades gracefully on bad values, but callers at the
// API boundary should reject them up front.
//
// Returns:
//   - error: the first violated invariant, or nil
func (j JobSpec) Validate() error {
	if j.Quantity < 0 {
		return ErrInvalidQuantity
	}
	if !j.Item.Size.IsPositive() {
		return ErrInvalidItemSize
	}
	if !j.Sheet.Size.IsPositive() {
		return ErrInvalidSheetSize
	}
	return nil
}
