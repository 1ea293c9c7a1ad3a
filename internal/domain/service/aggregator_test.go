package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WillieIlus/printy/internal/domain/entity"
	"github.com/WillieIlus/printy/internal/domain/valueobject"
)

func usd(amount string) valueobject.Money {
	return valueobject.MustMoneyFromString(amount, valueobject.CurrencyUSD)
}

func runTotal(total valueobject.Money) entity.RunCostBreakdown {
	return entity.RunCostBreakdown{Total: total}
}

func TestAggregateSectionsSumsRunsAndFinishing(t *testing.T) {
	sections := []Section{
		{Name: "inner", Run: runTotal(kes("320.00"))},
		{Name: "cover", Run: runTotal(kes("80.00"))},
	}
	finishing := []entity.FinishingLine{
		{Name: "Lamination", Total: kes("50.00")},
	}

	total, warnings := AggregateSections(sections, finishing, valueobject.Money{})

	assert.Equal(t, "KES 450.00", total.String())
	assert.Empty(t, warnings)
}

func TestAggregateSectionsPerSectionMinimums(t *testing.T) {
	sections := []Section{
		{Name: "inner", Run: runTotal(kes("40.00")), MinimumCharge: kes("50.00")},
		{Name: "cover", Run: runTotal(kes("30.00"))},
	}

	total, warnings := AggregateSections(sections, nil, valueobject.Money{})

	// The inner run is lifted to its floor before summing.
	assert.Equal(t, "KES 80.00", total.String())
	require.Len(t, warnings, 1)
	assert.Contains(t, string(warnings[0]), "inner run below minimum charge")
}

func TestAggregateSectionsBlendedMinimum(t *testing.T) {
	sections := []Section{
		{Name: "inner", Run: runTotal(kes("40.00")), MinimumCharge: kes("60.00")},
		{Name: "cover", Run: runTotal(kes("30.00")), MinimumCharge: kes("60.00")},
	}

	total, warnings := AggregateSections(sections, nil, kes("100.00"))

	// Per-section floors are skipped; the blended floor applies once to
	// the grand total (40 + 30 = 70, lifted to 100).
	assert.Equal(t, "KES 100.00", total.String())
	require.Len(t, warnings, 1)
	assert.Contains(t, string(warnings[0]), "blended minimum")
}

func TestAggregateSectionsBlendedMinimumExcludesFinishing(t *testing.T) {
	sections := []Section{
		{Name: "inner", Run: runTotal(kes("50.00"))},
	}
	finishing := []entity.FinishingLine{
		{Name: "Lamination", Total: kes("600.00")},
	}

	total, warnings := AggregateSections(sections, finishing, kes("1000.00"))

	// The floor lifts the run to 1000; the 600 of finishing is charged
	// on top, never absorbed by the minimum.
	assert.Equal(t, "KES 1600.00", total.String())
	require.Len(t, warnings, 1)
	assert.Contains(t, string(warnings[0]), "blended minimum")
}

func TestAggregateSectionsSectionMinimumExcludesFinishing(t *testing.T) {
	sections := []Section{
		{Name: "inner", Run: runTotal(kes("40.00")), MinimumCharge: kes("50.00")},
	}
	finishing := []entity.FinishingLine{
		{Name: "Folding", Total: kes("20.00")},
	}

	total, warnings := AggregateSections(sections, finishing, valueobject.Money{})

	assert.Equal(t, "KES 70.00", total.String())
	require.Len(t, warnings, 1)
	assert.Contains(t, string(warnings[0]), "inner run below minimum charge")
}

func TestAggregateSectionsBlendedMinimumAlreadyMet(t *testing.T) {
	sections := []Section{
		{Name: "inner", Run: runTotal(kes("150.00"))},
	}

	total, warnings := AggregateSections(sections, nil, kes("100.00"))

	assert.Equal(t, "KES 150.00", total.String())
	assert.Empty(t, warnings)
}

func TestAggregateSectionsMixedCurrencies(t *testing.T) {
	sections := []Section{
		{Name: "inner", Run: runTotal(kes("50.00"))},
	}
	finishing := []entity.FinishingLine{
		{Name: "Foil", Total: usd("20.00")},
	}

	total, warnings := AggregateSections(sections, finishing, valueobject.Money{})

	// The numeric sum stays usable; the mismatch is surfaced, not fixed.
	assert.Equal(t, "KES 70.00", total.String())
	require.Len(t, warnings, 1)
	assert.Contains(t, string(warnings[0]), "mixed currencies")
}

func TestAggregateSectionsEmpty(t *testing.T) {
	total, warnings := AggregateSections(nil, nil, valueobject.Money{})

	assert.True(t, total.IsZero())
	assert.Empty(t, warnings)
}

func TestAggregateOrder(t *testing.T) {
	deliverables := []entity.CostBreakdown{
		{Name: "Cards", Total: kes("500.00")},
		{Name: "Flyers", Total: kes("1250.50")},
	}

	order := AggregateOrder(deliverables)

	assert.Equal(t, "KES 1750.50", order.Total.String())
	assert.Equal(t, "KES 1,750.50", order.TotalFormatted)
	assert.Empty(t, order.Warnings)
	require.Len(t, order.Deliverables, 2)
	assert.Equal(t, "Cards", order.Deliverables[0].Name)
	assert.Equal(t, "Flyers", order.Deliverables[1].Name)
}

func TestAggregateOrderMixedCurrencies(t *testing.T) {
	deliverables := []entity.CostBreakdown{
		{Name: "Cards", Total: kes("500.00")},
		{Name: "Stickers", Total: usd("100.00")},
	}

	order := AggregateOrder(deliverables)

	assert.Equal(t, "KES 600.00", order.Total.String())
	require.Len(t, order.Warnings, 1)
	assert.Contains(t, string(order.Warnings[0]), "mixed currencies")
}

func TestAggregateOrderEmpty(t *testing.T) {
	order := AggregateOrder(nil)

	assert.True(t, order.Total.IsZero())
	assert.Empty(t, order.Deliverables)
}
