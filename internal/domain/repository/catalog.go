// Package repository contains the repository interfaces (ports) for
// catalog access. The pricing engine consumes read-only snapshots of the
// price and finishing catalogs; persistence and querying of the catalogs
// themselves belongs to the implementing adapter.
package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/WillieIlus/printy/internal/domain/entity"
)

// PriceCatalogReader defines the read-only lookups the price resolver
// needs. Each method corresponds to one step of the fallback chain, from
// strongest to weakest match.
//
// Example usage:
//
//	catalog := memory.NewCatalog()
//	rule, err := catalog.BySheetSize(ctx, machineID, sheetSizeID)
type PriceCatalogReader interface {
	// BySheetSize retrieves the price rule bound to a specific
	// production sheet size on a machine (strongest match).
	//
	// Parameters:
	//   - ctx: context for cancellation and deadlines
	//   - machineID: the press UUID
	//   - sheetSizeID: the production sheet size UUID
	//
	// Returns:
	//   - *entity.PriceRule: the matching rule, or nil if not found
	//   - error: ErrPriceRuleNotFound if no rule matches
	BySheetSize(ctx context.Context, machineID, sheetSizeID uuid.UUID) (*entity.PriceRule, error)

	// ByMaterial retrieves the price rule for a paper stock on a
	// machine, ignoring sheet size.
	//
	// Parameters:
	//   - ctx: context for cancellation and deadlines
	//   - machineID: the press UUID
	//   - materialID: the paper stock UUID
	//
	// Returns:
	//   - *entity.PriceRule: the matching rule, or nil if not found
	//   - error: ErrPriceRuleNotFound if no rule matches
	ByMaterial(ctx context.Context, machineID, materialID uuid.UUID) (*entity.PriceRule, error)

	// AnyForMachine retrieves any price rule configured for the machine.
	// Last-resort lookup; callers must flag its use as a degraded match.
	//
	// Parameters:
	//   - ctx: context for cancellation and deadlines
	//   - machineID: the press UUID
	//
	// Returns:
	//   - *entity.PriceRule: the first rule for the machine, or nil
	//   - error: ErrPriceRuleNotFound if the machine has no rules
	AnyForMachine(ctx context.Context, machineID uuid.UUID) (*entity.PriceRule, error)
}

// FinishingCatalogReader defines the read-only lookup for post-press
// service pricing.
type FinishingCatalogReader interface {
	// FinishingRule retrieves the pricing rule (simple or tiered) for a
	// finishing service.
	//
	// Parameters:
	//   - ctx: context for cancellation and deadlines
	//   - serviceID: the finishing service UUID
	//
	// Returns:
	//   - *entity.FinishingRule: the rule, or nil if not found
	//   - error: ErrFinishingRuleNotFound if the service is unknown
	FinishingRule(ctx context.Context, serviceID uuid.UUID) (*entity.FinishingRule, error)
}
