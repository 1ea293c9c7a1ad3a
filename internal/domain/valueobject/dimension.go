package valueobject

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Dimension2D represents a two-dimensional size in millimeters.
// Millimeters are decimal fixed-point so imposition math stays exact for
// metric paper sizes (SRA3 is 320x450, A4 is 210x297, and so on).
type Dimension2D struct {
	// Width in millimeters.
	Width decimal.Decimal `json:"width_mm"`

	// Height in millimeters.
	Height decimal.Decimal `json:"height_mm"`
}

// NewDimension2D creates a new Dimension2D value object.
//
// Parameters:
//   - width: Width in millimeters
//   - height: Height in millimeters
//
// Returns:
//   - Dimension2D: new Dimension2D value object
func NewDimension2D(width, height decimal.Decimal) Dimension2D {
	return Dimension2D{
		Width:  width,
		Height: height,
	}
}

// DimensionFromMM creates a Dimension2D from integer millimeters.
// Convenience constructor for the common catalog sizes.
//
// Parameters:
//   - width: Width in whole millimeters
//   - height: Height in whole millimeters
//
// Returns:
//   - Dimension2D: new Dimension2D value object
func DimensionFromMM(width, height int64) Dimension2D {
	return NewDimension2D(decimal.NewFromInt(width), decimal.NewFromInt(height))
}

// Swapped returns the dimension with width and height exchanged.
// Used when evaluating the 90-degree rotated orientation.
//
// Returns:
//   - Dimension2D: rotated dimension
func (d Dimension2D) Swapped() Dimension2D {
	return Dimension2D{Width: d.Height, Height: d.Width}
}

// IsPositive checks that both width and height are greater than zero.
// A valid layout requires a positive dimension.
//
// Returns:
//   - bool: true if both sides are positive
func (d Dimension2D) IsPositive() bool {
	return d.Width.IsPositive() && d.Height.IsPositive()
}

// IsZero checks if both dimensions are zero.
//
// Returns:
//   - bool: true if width and height are both zero
func (d Dimension2D) IsZero() bool {
	return d.Width.IsZero() && d.Height.IsZero()
}

// AreaSquareMeters returns the area in square meters.
// Used by per-area finishing pricing (large format is priced per m²).
//
// Returns:
//   - decimal.Decimal: area in m²
func (d Dimension2D) AreaSquareMeters() decimal.Decimal {
	// 1 m² = 1,000,000 mm²
	return d.Width.Mul(d.Height).Div(decimal.NewFromInt(1_000_000))
}

// String returns a formatted string representation.
//
// Returns:
//   - string: formatted dimension (e.g., "450x320 mm")
func (d Dimension2D) String() string {
	return fmt.Sprintf("%sx%s mm", d.Width.String(), d.Height.String())
}
