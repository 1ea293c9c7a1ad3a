package service

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/WillieIlus/printy/internal/domain/entity"
	"github.com/WillieIlus/printy/internal/domain/valueobject"
)

// FinishingContext carries the job-level figures a finishing rule may be
// priced against. The calculation method on the rule selects which one
// becomes the effective quantity.
type FinishingContext struct {
	// UnitsPerJob is the number of finished copies/items.
	UnitsPerJob int

	// SetsPerJob is the number of collated sets (0 is treated as 1).
	SetsPerJob int

	// SheetCount is the total physical sheets of the job.
	SheetCount int

	// SidesPerSheet is 1 or 2 depending on sidedness.
	SidesPerSheet int

	// AreaPerItem is one item's area in square meters, for per-area
	// pricing.
	AreaPerItem decimal.Decimal
}

// effectiveQuantity derives the quantity a rule is priced at.
func effectiveQuantity(method entity.CalculationMethod, ctx FinishingContext) decimal.Decimal {
	switch method {
	case entity.MethodFlatPerJob:
		return decimal.NewFromInt(1)
	case entity.MethodPerSet:
		sets := ctx.SetsPerJob
		if sets <= 0 {
			sets = 1
		}
		return decimal.NewFromInt(int64(sets))
	case entity.MethodPerCopy, entity.MethodPerItem:
		return decimal.NewFromInt(int64(ctx.UnitsPerJob))
	case entity.MethodPerSheet:
		return decimal.NewFromInt(int64(ctx.SheetCount))
	case entity.MethodPerSheetPerSide:
		sides := ctx.SidesPerSheet
		if sides <= 0 {
			sides = 1
		}
		return decimal.NewFromInt(int64(ctx.SheetCount * sides))
	case entity.MethodPerArea:
		return decimal.NewFromInt(int64(ctx.UnitsPerJob)).Mul(ctx.AreaPerItem)
	default:
		return decimal.Zero
	}
}

// ComputeFinishingCost prices one post-press service for a job.
//
// The rule's calculation method picks the effective quantity (flat, per
// set, per copy, per sheet, per sheet-side, per item, or per area in m²).
// Tiered rules select the tier whose [min,max] range contains the
// quantity; a quantity outside every tier costs zero and raises a
// warning, never an error. Simple rules use the single configured price.
//
// The line total is max(quantity * unitPrice + tierSetupFee,
// minimumCharge), quantized half-up to 2 decimal places.
//
// Parameters:
//   - rule: the finishing rule to price
//   - ctx: the job figures to price against
//
// Returns:
//   - entity.FinishingLine: the priced line item
func ComputeFinishingCost(rule entity.FinishingRule, ctx FinishingContext) entity.FinishingLine {
	line := entity.FinishingLine{
		Name:   rule.Name,
		Method: rule.Method,
	}

	qty := effectiveQuantity(rule.Method, ctx)
	line.Quantity = qty

	unitPrice := rule.UnitPrice
	setupFee := valueobject.Zero(rule.Currency)

	if rule.IsTiered() {
		// Tier ranges are whole quantities; fractional per-area
		// quantities match the tier covering their ceiling.
		tier := rule.TierFor(int(qty.Ceil().IntPart()))
		if tier == nil {
			line.UnitPrice = valueobject.Zero(rule.Currency)
			line.Total = valueobject.Zero(rule.Currency)
			line.Warnings = append(line.Warnings, entity.Warning(fmt.Sprintf(
				"no %s tier covers quantity %s", rule.Name, qty)))
			return line
		}
		unitPrice = tier.UnitPrice
		setupFee = tier.SetupFee
	}

	line.UnitPrice = unitPrice

	total := unitPrice.Multiply(qty).Add(setupFee).Quantize()
	if rule.MinimumCharge.IsPositive() && total.LessThan(rule.MinimumCharge) {
		line.Warnings = append(line.Warnings, entity.Warning(fmt.Sprintf(
			"%s below minimum charge; charging %s", rule.Name, rule.MinimumCharge)))
		total = rule.MinimumCharge.Quantize()
	}
	line.Total = total

	return line
}
