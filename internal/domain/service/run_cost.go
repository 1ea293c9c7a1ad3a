package service

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/WillieIlus/printy/internal/domain/entity"
	"github.com/WillieIlus/printy/internal/domain/valueobject"
)

// perSheetExtraSuffix marks extras that scale with the sheet count;
// everything else is charged flat, once per run.
const perSheetExtraSuffix = "_per_sheet"

// RunCostInput carries the pricing parameters for one print run.
// Populate it from a resolved price rule; zero values are all valid and
// simply contribute nothing.
type RunCostInput struct {
	// PricePerSheet is the resolved per-sheet price.
	PricePerSheet valueobject.Money

	// WastePercent is the waste allowance (e.g., 2 means 2%).
	WastePercent decimal.Decimal

	// SetupCost is charged flat, once per run.
	SetupCost valueobject.Money

	// MakereadyCost is charged flat, once per run.
	MakereadyCost valueobject.Money

	// FinishingPerSheet is an in-line finishing charge per sheet.
	FinishingPerSheet valueobject.Money

	// Extras are named additional charges. Keys ending in "_per_sheet"
	// multiply by the sheet count; all other keys are flat.
	Extras map[string]valueobject.Money
}

// ComputeRunCost converts a sheet count and per-sheet pricing into the
// monetary cost of one run.
//
//	wasteSheets = round-half-up(sheetCount * wastePercent / 100)
//	total       = sheets*price + waste + setup + makeready
//	              + sheets*finishingPerSheet + extras
//
// Every monetary intermediate is quantized to 2 decimal places with
// round-half-up as it is finalized, so repeated calls can never drift.
//
// A sheet count of zero or less is not an error; it returns an all-zero
// breakdown with a warning so batch pricing keeps going.
//
// Minimum charges are NOT applied here: they are enforced per section by
// the aggregator, since the floor applies to a section's subtotal, not to
// a raw run.
//
// Parameters:
//   - sheetCount: good sheets in the run
//   - in: pricing parameters for the run
//
// Returns:
//   - entity.RunCostBreakdown: the itemized run cost
func ComputeRunCost(sheetCount int, in RunCostInput) entity.RunCostBreakdown {
	currency := in.PricePerSheet.Currency

	if sheetCount <= 0 {
		return entity.RunCostBreakdown{
			PricePerSheet: valueobject.Zero(currency),
			WasteCost:     valueobject.Zero(currency),
			RunningCost:   valueobject.Zero(currency),
			SetupCost:     valueobject.Zero(currency),
			MakereadyCost: valueobject.Zero(currency),
			FinishingCost: valueobject.Zero(currency),
			ExtrasCost:    valueobject.Zero(currency),
			Total:         valueobject.Zero(currency),
			Warnings:      []entity.Warning{"zero sheet count"},
		}
	}

	var warnings []entity.Warning
	if !in.PricePerSheet.IsPositive() {
		warnings = append(warnings, entity.Warning("price per sheet is zero"))
	}

	wasteSheets := 0
	if in.WastePercent.IsPositive() {
		wasteSheets = int(decimal.NewFromInt(int64(sheetCount)).
			Mul(in.WastePercent).
			Div(decimal.NewFromInt(100)).
			Round(0).IntPart())
		warnings = append(warnings, entity.Warning("waste allowance added"))
	}

	wasteCost := in.PricePerSheet.MultiplyInt(wasteSheets).Quantize()
	runningCost := in.PricePerSheet.MultiplyInt(sheetCount).Quantize()
	finishingCost := in.FinishingPerSheet.MultiplyInt(sheetCount).Quantize()
	setupCost := in.SetupCost.Quantize()
	makereadyCost := in.MakereadyCost.Quantize()

	extrasCost := valueobject.Zero(currency)
	for name, amount := range in.Extras {
		if strings.HasSuffix(name, perSheetExtraSuffix) {
			extrasCost = extrasCost.Add(amount.MultiplyInt(sheetCount))
		} else {
			extrasCost = extrasCost.Add(amount)
		}
	}
	extrasCost = extrasCost.Quantize()

	total := runningCost.
		Add(wasteCost).
		Add(setupCost).
		Add(makereadyCost).
		Add(finishingCost).
		Add(extrasCost).
		Quantize()

	return entity.RunCostBreakdown{
		SheetCount:    sheetCount,
		PricePerSheet: in.PricePerSheet.Quantize(),
		WasteSheets:   wasteSheets,
		WasteCost:     wasteCost,
		RunningCost:   runningCost,
		SetupCost:     setupCost,
		MakereadyCost: makereadyCost,
		FinishingCost: finishingCost,
		ExtrasCost:    extrasCost,
		Total:         total,
		Warnings:      warnings,
	}
}
