package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/WillieIlus/printy/internal/domain/entity"
	"github.com/WillieIlus/printy/internal/domain/repository"
	"github.com/WillieIlus/printy/internal/domain/valueobject"
)

// ResolvePrice locates the best-matching price rule for a job using a
// prioritized fallback chain, each step consulted only when the previous
// one yields no match:
//
//  1. Exact match on (machine, production sheet size).
//  2. Match on (machine, material/paper stock) ignoring sheet size.
//  3. Any rule for the machine alone — a degraded match, flagged with a
//     fallback warning.
//
// A missing price is a configuration gap, not an error: the function
// returns nil plus a warning and the caller prices the deliverable at
// zero, so one unpriced deliverable never blocks the rest of an order.
//
// Parameters:
//   - ctx: context for cancellation and deadlines
//   - job: the job being priced
//   - catalog: the read-only price catalog
//
// Returns:
//   - *entity.PriceRule: the resolved rule, or nil when none matched
//   - []entity.Warning: warnings for degraded or failed resolution
func ResolvePrice(ctx context.Context, job entity.JobSpec, catalog repository.PriceCatalogReader) (*entity.PriceRule, []entity.Warning) {
	var warnings []entity.Warning

	if rule, err := catalog.BySheetSize(ctx, job.MachineID, job.Sheet.ID); err == nil && rule != nil {
		return rule, warnings
	}

	if rule, err := catalog.ByMaterial(ctx, job.MachineID, job.MaterialID); err == nil && rule != nil {
		return rule, warnings
	}

	if rule, err := catalog.AnyForMachine(ctx, job.MachineID); err == nil && rule != nil {
		warnings = append(warnings, entity.Warning(fmt.Sprintf(
			"fallback to machine-only pricing for machine %s: no rule matched sheet size or material", job.MachineID)))
		return rule, warnings
	}

	warnings = append(warnings, entity.Warning(fmt.Sprintf(
		"no pricing found for machine %s, material %s", job.MachineID, job.MaterialID)))
	return nil, warnings
}

// SheetPrice derives the per-sheet price to cost a run with, from a
// resolved rule and the requested sidedness.
//
// Resolution order:
//  1. The sided price matching the request; when it is unset the other
//     side's price is used instead of zero, with a warning.
//  2. RatePer1000 divided by 1000.
//  3. UnitPrice times items-per-sheet, when the layout is known.
//
// A rule with none of these configured yields a zero price and a warning.
//
// Parameters:
//   - rule: the resolved price rule
//   - sidedness: the effective sidedness of the run
//   - itemsPerSheet: items per sheet from imposition (0 when unknown)
//
// Returns:
//   - valueobject.Money: the per-sheet price (possibly zero)
//   - []entity.Warning: warnings for fallbacks taken
func SheetPrice(rule *entity.PriceRule, sidedness entity.Sidedness, itemsPerSheet int) (valueobject.Money, []entity.Warning) {
	var warnings []entity.Warning

	if rule == nil {
		return valueobject.Money{}, warnings
	}

	price, crossed := rule.PriceForSidedness(sidedness)
	if crossed {
		warnings = append(warnings, entity.Warning(fmt.Sprintf(
			"no %s-sided price configured; using the other side's price", sidedness)))
	}
	if price.IsPositive() {
		return price, warnings
	}

	if rule.RatePer1000.IsPositive() {
		return rule.RatePer1000.Multiply(decimal.New(1, -3)), warnings
	}

	if rule.UnitPrice.IsPositive() && itemsPerSheet > 0 {
		return rule.UnitPrice.MultiplyInt(itemsPerSheet).Quantize(), warnings
	}

	warnings = append(warnings, entity.Warning("price rule has no usable per-sheet price"))
	return valueobject.Zero(rule.Currency), warnings
}
