package entity

import (
	"github.com/google/uuid"

	"github.com/WillieIlus/printy/internal/domain/valueobject"
)

// CalculationMethod determines how a finishing service's effective
// quantity is derived from the job.
type CalculationMethod string

const (
	MethodFlatPerJob      CalculationMethod = "flat_per_job"       // One charge per job
	MethodPerSet          CalculationMethod = "per_set"            // Charged per collated set
	MethodPerCopy         CalculationMethod = "per_copy"           // Charged per finished copy
	MethodPerSheet        CalculationMethod = "per_sheet"          // Charged per production sheet
	MethodPerSheetPerSide CalculationMethod = "per_sheet_per_side" // Charged per printed side
	MethodPerItem         CalculationMethod = "per_item"           // Charged per finished item
	MethodPerArea         CalculationMethod = "per_area"           // Charged per square meter of items
)

// FinishingTier is one quantity band of a tiered finishing price.
// Tiers are non-overlapping and sorted ascending by MinQuantity.
type FinishingTier struct {
	// MinQuantity is the quantity from which this tier applies.
	MinQuantity int `json:"min_quantity"`

	// MaxQuantity is the quantity up to which this tier applies
	// (inclusive).
	MaxQuantity int `json:"max_quantity"`

	// UnitPrice is the price per unit within this tier.
	UnitPrice valueobject.Money `json:"unit_price"`

	// SetupFee is an optional handling fee added once when this tier is
	// selected.
	SetupFee valueobject.Money `json:"setup_fee,omitempty"`
}

// AppliesTo reports whether this tier covers the given quantity.
//
// Parameters:
//   - quantity: the effective quantity
//
// Returns:
//   - bool: true if MinQuantity <= quantity <= MaxQuantity
func (t FinishingTier) AppliesTo(quantity int) bool {
	return t.MinQuantity <= quantity && quantity <= t.MaxQuantity
}

// FinishingRule describes one post-press service (lamination, folding,
// binding, ...) and how it is priced: either a single unit price or a
// sorted list of quantity tiers.
type FinishingRule struct {
	// ID is the catalog identity of the service.
	ID uuid.UUID `json:"id"`

	// Name of the service (e.g., "Matte Lamination").
	Name string `json:"name"`

	// Method selects how the effective quantity is derived.
	Method CalculationMethod `json:"method"`

	// UnitPrice is the simple (non-tiered) unit price. Ignored when
	// Tiers is non-empty.
	UnitPrice valueobject.Money `json:"unit_price,omitempty"`

	// Tiers holds quantity-banded prices, sorted ascending by
	// MinQuantity. Empty means simple pricing via UnitPrice.
	Tiers []FinishingTier `json:"tiers,omitempty"`

	// MinimumCharge is the price floor for this service.
	MinimumCharge valueobject.Money `json:"minimum_charge,omitempty"`

	// Currency of all monetary fields on this rule.
	Currency valueobject.Currency `json:"currency"`
}

// IsTiered reports whether the rule uses quantity-banded pricing.
//
// Returns:
//   - bool: true when tiers are configured
func (f FinishingRule) IsTiered() bool {
	return len(f.Tiers) > 0
}

// TierFor returns the tier covering the given quantity.
//
// Parameters:
//   - quantity: the effective quantity
//
// Returns:
//   - *FinishingTier: the matching tier, or nil when none covers quantity
func (f FinishingRule) TierFor(quantity int) *FinishingTier {
	for i := range f.Tiers {
		if f.Tiers[i].AppliesTo(quantity) {
			return &f.Tiers[i]
		}
	}
	return nil
}
