package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/WillieIlus/printy/internal/domain/entity"
	"github.com/WillieIlus/printy/internal/domain/valueobject"
)

// SheetRequest describes a production sheet in an incoming quote request.
type SheetRequest struct {
	// ID is the catalog identity of the sheet size.
	ID uuid.UUID `json:"id"`

	// Name is the catalog name (e.g., "SRA3").
	Name string `json:"name,omitempty"`

	// WidthMM and HeightMM are the sheet dimensions in millimeters.
	WidthMM  decimal.Decimal `json:"width_mm"`
	HeightMM decimal.Decimal `json:"height_mm"`
}

// ItemRequest describes the finished item and its imposition parameters.
type ItemRequest struct {
	// WidthMM and HeightMM are the finished size in millimeters.
	WidthMM  decimal.Decimal `json:"width_mm"`
	HeightMM decimal.Decimal `json:"height_mm"`

	// BleedMM is added symmetrically to both sides of each dimension.
	BleedMM decimal.Decimal `json:"bleed_mm"`

	// GutterMM is the cutting space between neighboring items.
	GutterMM decimal.Decimal `json:"gutter_mm"`

	// MarginMM is the gripper/border reserve per sheet edge.
	MarginMM decimal.Decimal `json:"margin_mm"`
}

// BookletRequest carries the optional booklet fields of a deliverable.
type BookletRequest struct {
	// TotalPages is the number of final pages (0 = not a booklet).
	TotalPages int `json:"total_pages"`

	// SignatureMultiple overrides the default signature of 4.
	SignatureMultiple int `json:"signature_multiple,omitempty"`

	// CoverSeparate prints the cover as its own run.
	CoverSeparate bool `json:"cover_separate"`

	// CoverSheet optionally overrides the cover's production sheet.
	CoverSheet *SheetRequest `json:"cover_sheet,omitempty"`

	// CoverItem optionally overrides the cover's bleed/gutter/margin.
	CoverItem *ItemRequest `json:"cover_item,omitempty"`
}

// DeliverableRequest is one print job in a quote request.
type DeliverableRequest struct {
	// Name labels the deliverable on the quote.
	Name string `json:"name"`

	// Quantity is the number of finished copies.
	Quantity int `json:"quantity"`

	// Item is the finished item specification.
	Item ItemRequest `json:"item"`

	// Sheet is the production sheet for the inner run.
	Sheet SheetRequest `json:"sheet"`

	// Sidedness is "single" or "double"; empty applies engine defaults.
	Sidedness string `json:"sidedness,omitempty"`

	// MachineID and MaterialID locate the price rule in the catalog.
	MachineID  uuid.UUID `json:"machine_id"`
	MaterialID uuid.UUID `json:"material_id"`

	// AllowRotation permits the rotated orientation during imposition.
	AllowRotation bool `json:"allow_rotation"`

	// Booklet holds booklet fields; omit for flat items.
	Booklet *BookletRequest `json:"booklet,omitempty"`

	// Finishing lists requested post-press service IDs.
	Finishing []uuid.UUID `json:"finishing,omitempty"`

	// Sets is the number of collated sets for per-set finishing.
	Sets int `json:"sets,omitempty"`
}

// OrderQuoteRequest prices a whole order of deliverables.
type OrderQuoteRequest struct {
	// Deliverables are the order's print jobs.
	Deliverables []DeliverableRequest `json:"deliverables"`
}

// ToJobSpec converts the request to the domain job spec.
//
// Returns:
//   - entity.JobSpec: the domain representation
func (r DeliverableRequest) ToJobSpec() entity.JobSpec {
	job := entity.JobSpec{
		Name:     r.Name,
		Quantity: r.Quantity,
		Item: entity.ItemSpec{
			Size:   valueobject.NewDimension2D(r.Item.WidthMM, r.Item.HeightMM),
			Bleed:  r.Item.BleedMM,
			Gutter: r.Item.GutterMM,
			Margin: r.Item.MarginMM,
		},
		Sheet:         r.Sheet.toSpec(),
		Sidedness:     entity.Sidedness(r.Sidedness),
		MachineID:     r.MachineID,
		MaterialID:    r.MaterialID,
		AllowRotation: r.AllowRotation,
		Finishing:     r.Finishing,
		Sets:          r.Sets,
	}

	if r.Booklet != nil {
		job.Booklet = entity.BookletSpec{
			TotalPages:        r.Booklet.TotalPages,
			SignatureMultiple: r.Booklet.SignatureMultiple,
			CoverSeparate:     r.Booklet.CoverSeparate,
		}
		if r.Booklet.CoverSheet != nil {
			sheet := r.Booklet.CoverSheet.toSpec()
			job.Booklet.CoverSheet = &sheet
		}
		if r.Booklet.CoverItem != nil {
			item := entity.ItemSpec{
				Size:   valueobject.NewDimension2D(r.Booklet.CoverItem.WidthMM, r.Booklet.CoverItem.HeightMM),
				Bleed:  r.Booklet.CoverItem.BleedMM,
				Gutter: r.Booklet.CoverItem.GutterMM,
				Margin: r.Booklet.CoverItem.MarginMM,
			}
			job.Booklet.CoverItem = &item
		}
	}

	return job
}

func (r SheetRequest) toSpec() entity.SheetSpec {
	return entity.SheetSpec{
		ID:   r.ID,
		Name: r.Name,
		Size: valueobject.NewDimension2D(r.WidthMM, r.HeightMM),
	}
}

// Validate checks the boundary invariants of the request.
//
// Returns:
//   - []ValidationError: all violated invariants (empty when valid)
func (r DeliverableRequest) Validate() []ValidationError {
	var errs []ValidationError

	if r.Quantity < 0 {
		errs = append(errs, ValidationError{
			Field:   "quantity",
			Message: "must be zero or positive",
			Value:   r.Quantity,
		})
	}
	if !r.Item.WidthMM.IsPositive() || !r.Item.HeightMM.IsPositive() {
		errs = append(errs, ValidationError{
			Field:   "item",
			Message: "item dimensions must be positive",
		})
	}
	if !r.Sheet.WidthMM.IsPositive() || !r.Sheet.HeightMM.IsPositive() {
		errs = append(errs, ValidationError{
			Field:   "sheet",
			Message: "sheet dimensions must be positive",
		})
	}
	if s := r.Sidedness; s != "" && s != string(entity.SidednessSingle) && s != string(entity.SidednessDouble) {
		errs = append(errs, ValidationError{
			Field:   "sidedness",
			Message: `must be "single" or "double"`,
			Value:   s,
		})
	}

	return errs
}
