package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/WillieIlus/printy/internal/domain/valueobject"
)

// PriceRule holds per-sheet print prices for a paper stock on a specific
// press. Conceptually keyed by (machine, material) or (machine, sheet size);
// the catalog owns the actual keying, the engine only reads resolved rules.
//
// All optional monetary fields are explicit: a zero value means "not
// configured" and the resolver falls back in a fixed, compile-time-checked
// order rather than probing attributes at runtime.
type PriceRule struct {
	// ID is the catalog identity of the rule.
	ID uuid.UUID `json:"id"`

	// MachineID is the press this price applies to.
	MachineID uuid.UUID `json:"machine_id"`

	// MaterialID is the paper stock this price applies to.
	MaterialID uuid.UUID `json:"material_id"`

	// SingleSidePrice is the price per sheet, single-sided.
	SingleSidePrice valueobject.Money `json:"single_side_price"`

	// DoubleSidePrice is the price per sheet, double-sided.
	DoubleSidePrice valueobject.Money `json:"double_side_price"`

	// RatePer1000 optionally prices the run per thousand sheets; used to
	// derive a per-sheet price when the sided prices are unset.
	RatePer1000 valueobject.Money `json:"rate_per_1000,omitempty"`

	// UnitPrice optionally prices per finished item; converted to a
	// per-sheet price once items-per-sheet is known.
	UnitPrice valueobject.Money `json:"unit_price,omitempty"`

	// SetupCost is a flat cost added once per run.
	SetupCost valueobject.Money `json:"setup_cost,omitempty"`

	// MakereadyCost is a flat make-ready cost added once per run.
	MakereadyCost valueobject.Money `json:"makeready_cost,omitempty"`

	// WastePercent is the press waste allowance as a percentage of the
	// run's sheets (e.g., 2 means 2%).
	WastePercent decimal.Decimal `json:"waste_percent,omitempty"`

	// FinishingPerSheet is an in-line finishing cost applied per sheet.
	FinishingPerSheet valueobject.Money `json:"finishing_per_sheet,omitempty"`

	// MinimumCharge is the price floor for a section priced by this rule.
	MinimumCharge valueobject.Money `json:"minimum_charge,omitempty"`

	// Extras are named additional charges for the run. Keys ending in
	// "_per_sheet" scale with the sheet count; all other keys are flat.
	Extras map[string]valueobject.Money `json:"extras,omitempty"`

	// Sheet optionally binds the rule to a specific production sheet size
	// (e.g., the SRA3 price row). Nil means any size.
	Sheet *SheetSpec `json:"sheet,omitempty"`

	// Currency of all monetary fields on this rule.
	Currency valueobject.Currency `json:"currency"`
}

// PriceForSidedness selects the per-sheet price for the requested
// sidedness. When the selected field is unset it falls back to the other
// side's price rather than returning zero.
//
// Parameters:
//   - sidedness: the requested sidedness
//
// Returns:
//   - valueobject.Money: the selected per-sheet price (may be zero when
//     neither side is configured)
//   - bool: true when the fallback to the other side was taken
func (p PriceRule) PriceForSidedness(sidedness Sidedness) (valueobject.Money, bool) {
	preferred, other := p.SingleSidePrice, p.DoubleSidePrice
	if sidedness == SidednessDouble {
		preferred, other = p.DoubleSidePrice, p.SingleSidePrice
	}
	if preferred.IsPositive() {
		return preferred, false
	}
	if other.IsPositive() {
		return other, true
	}
	return valueobject.Zero(p.Currency), false
}
