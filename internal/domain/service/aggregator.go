package service

import (
	"fmt"

	"github.com/WillieIlus/printy/internal/domain/entity"
	"github.com/WillieIlus/printy/internal/domain/valueobject"
)

// Section is one independently priced run (inner or cover) together with
// the minimum charge of the rule that priced it.
type Section struct {
	// Name labels the section in warnings ("inner", "cover").
	Name string

	// Run is the computed run cost.
	Run entity.RunCostBreakdown

	// MinimumCharge is the price floor from the section's price rule.
	MinimumCharge valueobject.Money
}

// AggregateSections composes section run costs and finishing lines into
// one deliverable total.
//
// Minimum charges floor the print runs, never the finishing work. Each
// section's own minimum charge applies to that section's subtotal before
// summing — cover and inner priced from different rules keep independent
// floors. When a blended minimum is supplied the per-section floors are
// skipped and the blended floor applies once to the combined run
// subtotal instead. Finishing lines are added only after the floors, so
// a lifted run never absorbs finishing revenue.
//
// Currency comes from whichever sections/lines carry one; disagreeing
// currencies are summed numerically and flagged with a warning, since
// mixed-currency data is a catalog problem the engine surfaces but does
// not resolve.
//
// Parameters:
//   - sections: the priced runs with their minimum charges
//   - finishing: the priced finishing lines
//   - blendedMinimum: a single job-level minimum charge (zero to use
//     per-section minimums)
//
// Returns:
//   - valueobject.Money: the deliverable total, quantized half-up
//   - []entity.Warning: minimum-charge and currency warnings
func AggregateSections(sections []Section, finishing []entity.FinishingLine, blendedMinimum valueobject.Money) (valueobject.Money, []entity.Warning) {
	var warnings []entity.Warning

	total := valueobject.Money{}
	add := func(amount valueobject.Money, label string) {
		sum, err := total.AddSafe(amount)
		if err != nil {
			warnings = append(warnings, entity.Warning(fmt.Sprintf(
				"mixed currencies: %s is in %s, order so far in %s",
				label, amount.Currency, total.Currency)))
			// Surface the mismatch but keep the numeric sum usable.
			sum = valueobject.NewMoney(total.Amount.Add(amount.Amount), total.Currency)
		}
		total = sum
	}

	useSectionMinimums := !blendedMinimum.IsPositive()

	for _, s := range sections {
		subtotal := s.Run.Total
		if useSectionMinimums && s.MinimumCharge.IsPositive() && subtotal.LessThan(s.MinimumCharge) {
			warnings = append(warnings, entity.Warning(fmt.Sprintf(
				"%s run below minimum charge; charging %s", s.Name, s.MinimumCharge)))
			subtotal = s.MinimumCharge
		}
		add(subtotal, s.Name+" run")
	}

	if blendedMinimum.IsPositive() && total.LessThan(blendedMinimum) {
		warnings = append(warnings, entity.Warning(fmt.Sprintf(
			"print runs below blended minimum charge; charging %s", blendedMinimum)))
		total = blendedMinimum
	}

	for _, line := range finishing {
		add(line.Total, line.Name)
	}

	return total.Quantize(), warnings
}

// AggregateOrder sums deliverable breakdowns into an order total with the
// same quantization rule. It never re-derives pricing.
//
// Parameters:
//   - deliverables: the per-job breakdowns, in request order
//
// Returns:
//   - entity.OrderCostBreakdown: the order rollup
func AggregateOrder(deliverables []entity.CostBreakdown) entity.OrderCostBreakdown {
	order := entity.OrderCostBreakdown{
		Deliverables: deliverables,
	}

	total := valueobject.Money{}
	for _, d := range deliverables {
		sum, err := total.AddSafe(d.Total)
		if err != nil {
			order.Warnings = append(order.Warnings, entity.Warning(fmt.Sprintf(
				"mixed currencies across deliverables: %q is in %s, order so far in %s",
				d.Name, d.Total.Currency, total.Currency)))
			sum = valueobject.NewMoney(total.Amount.Add(d.Total.Amount), total.Currency)
		}
		total = sum
	}

	order.Total = total.Quantize()
	order.TotalFormatted = order.Total.Format()
	return order
}
