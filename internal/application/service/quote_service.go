// Package service contains the application services that orchestrate the
// domain layer. The QuoteService is the single entry point callers use to
// price deliverables and orders; it wires imposition, price resolution,
// run costing, finishing and aggregation into one pipeline.
package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/WillieIlus/printy/internal/application/port"
	"github.com/WillieIlus/printy/internal/domain/entity"
	"github.com/WillieIlus/printy/internal/domain/repository"
	pricing "github.com/WillieIlus/printy/internal/domain/service"
	"github.com/WillieIlus/printy/internal/domain/valueobject"
)

// QuoteService prices print jobs against the injected catalogs.
// It is stateless and safe for concurrent use: every call reads immutable
// snapshots and allocates a fresh breakdown.
type QuoteService struct {
	prices          repository.PriceCatalogReader
	finishing       repository.FinishingCatalogReader
	logger          port.Logger
	defaultCurrency valueobject.Currency
}

// NewQuoteService creates a QuoteService.
//
// Parameters:
//   - prices: the read-only price catalog
//   - finishing: the read-only finishing catalog
//   - logger: structured logger (nil gets a no-op logger)
//   - defaultCurrency: currency used for zero totals when no rule resolves
//
// Returns:
//   - *QuoteService: the configured service
func NewQuoteService(
	prices repository.PriceCatalogReader,
	finishing repository.FinishingCatalogReader,
	logger port.Logger,
	defaultCurrency valueobject.Currency,
) *QuoteService {
	if logger == nil {
		logger = port.NopLogger{}
	}
	return &QuoteService{
		prices:          prices,
		finishing:       finishing,
		logger:          logger,
		defaultCurrency: defaultCurrency,
	}
}

// PriceDeliverable prices one deliverable end to end: imposition, price
// resolution, run costing, finishing and aggregation.
//
// Configuration gaps (no price rule, item does not fit, missing finishing
// tier) degrade to zero-cost components with warnings; the breakdown is
// always produced. Invalid quantities are clamped to zero with a warning
// rather than rejected, so a batch pricing pass never aborts.
//
// Parameters:
//   - ctx: context for cancellation and deadlines
//   - job: the deliverable specification
//
// Returns:
//   - entity.CostBreakdown: the full pricing result
func (s *QuoteService) PriceDeliverable(ctx context.Context, job entity.JobSpec) entity.CostBreakdown {
	breakdown := entity.CostBreakdown{
		Name:     job.Name,
		Quantity: job.Quantity,
	}

	if job.Quantity < 0 {
		breakdown.Warnings = append(breakdown.Warnings,
			entity.Warning("negative quantity treated as zero"))
		job.Quantity = 0
	}

	rule, warnings := s.resolveRule(ctx, job)
	breakdown.Warnings = append(breakdown.Warnings, warnings...)
	breakdown.Priced = rule != nil

	sidedness := job.ResolvedSidedness()

	var itemsPerSheet int
	var coverRule *entity.PriceRule

	if job.Booklet.IsBooklet() {
		booklet := pricing.BookletSheets(job.Quantity, job)
		breakdown.Booklet = booklet
		breakdown.Warnings = append(breakdown.Warnings, booklet.Warnings...)
		breakdown.InnerSheets = booklet.InnerSheets
		breakdown.CoverSheets = booklet.CoverSheets
		itemsPerSheet = booklet.PagesPerSheet

		if booklet.CoverSheets > 0 {
			coverRule = s.resolveCoverRule(ctx, job, rule)
		}
	} else {
		layout := pricing.FitLayout(job.Sheet, job.Item, job.AllowRotation)
		breakdown.Layout = layout
		itemsPerSheet = layout.Count

		if !layout.Fits() && job.Quantity > 0 {
			breakdown.Warnings = append(breakdown.Warnings, entity.Warning(fmt.Sprintf(
				"item %s does not fit on sheet %s; charging one sheet per item",
				job.Item.Size, job.Sheet.Size)))
		}
		breakdown.InnerSheets = pricing.SheetsNeeded(job.Quantity, layout.Count)
	}

	innerRun, innerMin := s.costRun(rule, sidedness, itemsPerSheet, breakdown.InnerSheets)
	breakdown.InnerRun = innerRun
	breakdown.Warnings = append(breakdown.Warnings, innerRun.Warnings...)

	sections := []pricing.Section{{Name: "inner", Run: innerRun, MinimumCharge: innerMin}}

	// A blended minimum applies once to the combined run subtotal when
	// both runs are priced from the same rule; sections keep independent
	// floors only when the cover resolves its own rule. Finishing is
	// never part of the floored amount.
	blendedMinimum := innerMin

	if breakdown.CoverSheets > 0 {
		runRule := rule
		if coverRule != nil {
			runRule = coverRule
			blendedMinimum = valueobject.Money{}
		}
		coverRun, coverMin := s.costRun(runRule, sidedness, breakdown.Booklet.CoverPagesPerSheet, breakdown.CoverSheets)
		breakdown.CoverRun = &coverRun
		breakdown.Warnings = append(breakdown.Warnings, coverRun.Warnings...)
		sections = append(sections, pricing.Section{Name: "cover", Run: coverRun, MinimumCharge: coverMin})
	}

	breakdown.FinishingLines = s.priceFinishing(ctx, job, sidedness, breakdown.InnerSheets+breakdown.CoverSheets)
	for _, line := range breakdown.FinishingLines {
		breakdown.Warnings = append(breakdown.Warnings, line.Warnings...)
	}

	total, aggWarnings := pricing.AggregateSections(sections, breakdown.FinishingLines, blendedMinimum)
	breakdown.Warnings = append(breakdown.Warnings, aggWarnings...)

	if total.Currency == "" {
		total.Currency = s.defaultCurrency
	}
	breakdown.Total = total
	breakdown.TotalFormatted = total.Format()

	s.logger.WithContext(ctx).Debug("deliverable priced",
		"job", job.Name,
		"quantity", job.Quantity,
		"inner_sheets", breakdown.InnerSheets,
		"cover_sheets", breakdown.CoverSheets,
		"total", breakdown.TotalFormatted,
		"warnings", len(breakdown.Warnings),
	)

	return breakdown
}

// PriceOrder prices every deliverable of an order and sums the results.
//
// Deliverables are independent, so they are priced in parallel — one
// goroutine each, no shared state, results collected by index so the
// output order matches the input order. One unpriced deliverable never
// blocks the rest: its breakdown carries the warnings and a zero total.
//
// Parameters:
//   - ctx: context for cancellation and deadlines
//   - jobs: the order's deliverable specifications
//
// Returns:
//   - entity.OrderCostBreakdown: per-deliverable breakdowns plus the
//     order total
func (s *QuoteService) PriceOrder(ctx context.Context, jobs []entity.JobSpec) entity.OrderCostBreakdown {
	breakdowns := make([]entity.CostBreakdown, len(jobs))

	var wg sync.WaitGroup
	for i, job := range jobs {
		wg.Add(1)
		go func(i int, job entity.JobSpec) {
			defer wg.Done()
			breakdowns[i] = s.PriceDeliverable(ctx, job)
		}(i, job)
	}
	wg.Wait()

	order := pricing.AggregateOrder(breakdowns)
	if order.Total.Currency == "" {
		order.Total.Currency = s.defaultCurrency
		order.TotalFormatted = order.Total.Format()
	}

	s.logger.WithContext(ctx).Info("order priced",
		"deliverables", len(jobs),
		"total", order.TotalFormatted,
		"warnings", len(order.Warnings),
	)

	return order
}

// resolveRule runs the fallback chain when a catalog is configured.
func (s *QuoteService) resolveRule(ctx context.Context, job entity.JobSpec) (*entity.PriceRule, []entity.Warning) {
	if s.prices == nil {
		return nil, []entity.Warning{"no price catalog configured"}
	}
	return pricing.ResolvePrice(ctx, job, s.prices)
}

// resolveCoverRule finds the price rule for a separate cover run. A cover
// printed on its own stock may have its own price row; otherwise the
// inner rule covers it.
func (s *QuoteService) resolveCoverRule(ctx context.Context, job entity.JobSpec, inner *entity.PriceRule) *entity.PriceRule {
	if s.prices == nil || job.Booklet.CoverSheet == nil {
		return nil
	}
	rule, err := s.prices.BySheetSize(ctx, job.MachineID, job.Booklet.CoverSheet.ID)
	if err != nil || rule == nil || (inner != nil && rule.ID == inner.ID) {
		return nil
	}
	return rule
}

// costRun derives the per-sheet price from the rule and costs the run.
// Returns the run breakdown and the rule's minimum charge for the
// aggregator.
func (s *QuoteService) costRun(rule *entity.PriceRule, sidedness entity.Sidedness, itemsPerSheet, sheets int) (entity.RunCostBreakdown, valueobject.Money) {
	if rule == nil {
		run := pricing.ComputeRunCost(sheets, pricing.RunCostInput{
			PricePerSheet: valueobject.Zero(s.defaultCurrency),
		})
		return run, valueobject.Money{}
	}

	price, priceWarnings := pricing.SheetPrice(rule, sidedness, itemsPerSheet)
	run := pricing.ComputeRunCost(sheets, pricing.RunCostInput{
		PricePerSheet:     price,
		WastePercent:      rule.WastePercent,
		SetupCost:         rule.SetupCost,
		MakereadyCost:     rule.MakereadyCost,
		FinishingPerSheet: rule.FinishingPerSheet,
		Extras:            rule.Extras,
	})
	run.Warnings = append(run.Warnings, priceWarnings...)
	return run, rule.MinimumCharge
}

// priceFinishing prices every requested finishing service. Unknown
// services degrade to a zero line with a warning.
func (s *QuoteService) priceFinishing(ctx context.Context, job entity.JobSpec, sidedness entity.Sidedness, totalSheets int) []entity.FinishingLine {
	if len(job.Finishing) == 0 {
		return nil
	}

	fctx := pricing.FinishingContext{
		UnitsPerJob:   job.Quantity,
		SetsPerJob:    job.Sets,
		SheetCount:    totalSheets,
		SidesPerSheet: sidedness.Sides(),
		AreaPerItem:   job.Item.Size.AreaSquareMeters(),
	}

	lines := make([]entity.FinishingLine, 0, len(job.Finishing))
	for _, id := range job.Finishing {
		if s.finishing == nil {
			lines = append(lines, entity.FinishingLine{
				Name:     id.String(),
				Total:    valueobject.Zero(s.defaultCurrency),
				Warnings: []entity.Warning{"no finishing catalog configured"},
			})
			continue
		}

		rule, err := s.finishing.FinishingRule(ctx, id)
		if err != nil || rule == nil {
			lines = append(lines, entity.FinishingLine{
				Name:  id.String(),
				Total: valueobject.Zero(s.defaultCurrency),
				Warnings: []entity.Warning{entity.Warning(fmt.Sprintf(
					"no pricing found for finishing service %s", id))},
			})
			continue
		}

		lines = append(lines, pricing.ComputeFinishingCost(*rule, fctx))
	}
	return lines
}
