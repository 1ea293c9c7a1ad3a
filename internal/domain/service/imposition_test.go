package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WillieIlus/printy/internal/domain/entity"
	"github.com/WillieIlus/printy/internal/domain/valueobject"
)

func mm(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func sheetSpec(w, h int64) entity.SheetSpec {
	return entity.SheetSpec{Size: valueobject.DimensionFromMM(w, h)}
}

func itemSpec(w, h, bleed, gutter, margin int64) entity.ItemSpec {
	return entity.ItemSpec{
		Size:   valueobject.DimensionFromMM(w, h),
		Bleed:  mm(bleed),
		Gutter: mm(gutter),
		Margin: mm(margin),
	}
}

func TestFitLayoutBusinessCardsOnSRA3(t *testing.T) {
	// 90x50 card with 2mm bleed (effective 94x54) on a 450x320 sheet
	// with a 5mm margin (usable 440x310) and 2mm gutter.
	sheet := sheetSpec(450, 320)
	item := itemSpec(90, 50, 2, 2, 5)

	layout := FitLayout(sheet, item, false)

	assert.Equal(t, 4, layout.Columns)  // floor(442/96)
	assert.Equal(t, 5, layout.Rows)     // floor(312/56)
	assert.Equal(t, 20, layout.Count)
	assert.False(t, layout.Rotated)
	assert.True(t, layout.Fits())
}

func TestFitLayoutRotationWinsWhenBetter(t *testing.T) {
	sheet := sheetSpec(450, 320)
	item := itemSpec(90, 50, 2, 2, 5)

	layout := FitLayout(sheet, item, true)

	// Rotated 54x94: floor(442/56)=7 columns, floor(312/96)=3 rows.
	assert.Equal(t, 21, layout.Count)
	assert.Equal(t, 7, layout.Columns)
	assert.Equal(t, 3, layout.Rows)
	assert.True(t, layout.Rotated)
	assert.True(t, layout.EffectiveItem.Width.Equal(mm(54)))
	assert.True(t, layout.EffectiveItem.Height.Equal(mm(94)))
}

func TestFitLayoutTieKeepsUnrotated(t *testing.T) {
	// A square item fits identically in both orientations.
	sheet := sheetSpec(400, 400)
	item := itemSpec(90, 90, 0, 0, 0)

	layout := FitLayout(sheet, item, true)

	assert.Equal(t, 16, layout.Count)
	assert.False(t, layout.Rotated)
}

func TestFitLayoutRotationNeverWorse(t *testing.T) {
	cases := []struct {
		name  string
		sheet entity.SheetSpec
		item  entity.ItemSpec
	}{
		{"cards", sheetSpec(450, 320), itemSpec(90, 50, 2, 2, 5)},
		{"flyers", sheetSpec(450, 320), itemSpec(210, 148, 3, 3, 10)},
		{"posters", sheetSpec(640, 450), itemSpec(420, 297, 3, 5, 10)},
		{"tickets", sheetSpec(320, 450), itemSpec(150, 60, 0, 2, 5)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			without := FitLayout(tc.sheet, tc.item, false)
			with := FitLayout(tc.sheet, tc.item, true)
			assert.GreaterOrEqual(t, with.Count, without.Count)
		})
	}
}

func TestFitLayoutDegenerateInputs(t *testing.T) {
	t.Run("margin consumes the sheet", func(t *testing.T) {
		layout := FitLayout(sheetSpec(100, 100), itemSpec(50, 50, 0, 0, 60), false)
		assert.Zero(t, layout.Count)
		assert.False(t, layout.Fits())
	})

	t.Run("zero item size", func(t *testing.T) {
		layout := FitLayout(sheetSpec(450, 320), itemSpec(0, 0, 0, 2, 5), false)
		assert.Zero(t, layout.Count)
	})

	t.Run("item larger than sheet", func(t *testing.T) {
		layout := FitLayout(sheetSpec(450, 320), itemSpec(500, 500, 0, 0, 0), true)
		assert.Zero(t, layout.Count)
	})
}

func TestSheetsNeeded(t *testing.T) {
	tests := []struct {
		name          string
		quantity      int
		itemsPerSheet int
		want          int
	}{
		{name: "exact division", quantity: 100, itemsPerSheet: 25, want: 4},
		{name: "remainder rounds up", quantity: 101, itemsPerSheet: 25, want: 5},
		{name: "thousand flyers eight up", quantity: 1000, itemsPerSheet: 24, want: 42},
		{name: "one item", quantity: 1, itemsPerSheet: 20, want: 1},
		{name: "zero quantity", quantity: 0, itemsPerSheet: 20, want: 0},
		{name: "negative quantity", quantity: -5, itemsPerSheet: 20, want: 0},
		{name: "does not fit charges sheet per item", quantity: 10, itemsPerSheet: 0, want: 10},
		{name: "negative layout charges sheet per item", quantity: 7, itemsPerSheet: -3, want: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SheetsNeeded(tt.quantity, tt.itemsPerSheet))
		})
	}
}

// bookletJob builds a job whose page fits 4-up on the inner sheet, so a
// duplex sheet carries 8 final pages.
func bookletJob(pages, copies int) entity.JobSpec {
	return entity.JobSpec{
		Quantity: copies,
		Item:     itemSpec(200, 290, 0, 0, 0),
		Sheet:    sheetSpec(430, 600),
		Booklet:  entity.BookletSpec{TotalPages: pages},
	}
}

func TestBookletSheetsRoundsToSignature(t *testing.T) {
	job := bookletJob(30, 1)

	layout := BookletSheets(1, job)

	assert.Equal(t, 30, layout.PagesOriginal)
	assert.Equal(t, 32, layout.PagesRounded)
	require.Len(t, layout.Warnings, 1)
	assert.Contains(t, string(layout.Warnings[0]), "signature")
}

func TestBookletSheetsExactSignatureNoWarning(t *testing.T) {
	job := bookletJob(32, 1)

	layout := BookletSheets(1, job)

	assert.Equal(t, 32, layout.PagesRounded)
	assert.Empty(t, layout.Warnings)
}

func TestBookletSheetsCustomSignatureMultiple(t *testing.T) {
	job := bookletJob(30, 1)
	job.Booklet.SignatureMultiple = 8

	layout := BookletSheets(1, job)

	assert.Equal(t, 32, layout.PagesRounded)
}

func TestBookletSheetsSeparateCover(t *testing.T) {
	// 30 pages round to 32; the cover takes 4, leaving 28 inner pages.
	// 4-up duplex means 8 pages per sheet: 4 inner sheets per copy and
	// 1 cover sheet per copy.
	job := bookletJob(30, 10)
	job.Booklet.CoverSeparate = true

	layout := BookletSheets(10, job)

	assert.Equal(t, 4, layout.CoverPages)
	assert.Equal(t, 28, layout.InnerPages)
	assert.Equal(t, 8, layout.PagesPerSheet)
	assert.Equal(t, 40, layout.InnerSheets)
	assert.Equal(t, 10, layout.CoverSheets)
	assert.Equal(t, 50, layout.TotalSheets())
}

func TestBookletSheetsTinyBookletHasNoInnerRun(t *testing.T) {
	// 3 pages round to 4; the cover is the whole book.
	job := bookletJob(3, 5)
	job.Booklet.CoverSeparate = true

	layout := BookletSheets(5, job)

	assert.Equal(t, 4, layout.PagesRounded)
	assert.Zero(t, layout.CoverPages)
	assert.Zero(t, layout.CoverSheets)
	assert.Equal(t, 4, layout.InnerPages)
	assert.Equal(t, 5, layout.InnerSheets) // ceil(4/8)=1 per copy
}

func TestBookletSheetsCoverOverrides(t *testing.T) {
	// The cover prints on a bigger sheet that fits 8 pages per side.
	// Sheet counts stay per copy, so each copy still needs its own
	// cover sheet.
	job := bookletJob(32, 3)
	job.Booklet.CoverSeparate = true
	cover := sheetSpec(900, 600)
	job.Booklet.CoverSheet = &cover

	layout := BookletSheets(3, job)

	assert.Equal(t, 16, layout.CoverPagesPerSheet) // 8 per side, duplex
	assert.Equal(t, 3, layout.CoverSheets)         // 1 per copy
}

func TestBookletSheetsPageDoesNotFit(t *testing.T) {
	job := bookletJob(16, 2)
	job.Item = itemSpec(700, 700, 0, 0, 0)

	layout := BookletSheets(2, job)

	assert.Zero(t, layout.PagesPerSheet)
	assert.Zero(t, layout.InnerSheets)
	require.NotEmpty(t, layout.Warnings)
	assert.Contains(t, string(layout.Warnings[len(layout.Warnings)-1]), "does not fit")
}

func TestBookletSheetsZeroCopies(t *testing.T) {
	layout := BookletSheets(0, bookletJob(32, 0))

	assert.Zero(t, layout.InnerSheets)
	assert.Zero(t, layout.CoverSheets)
}

func TestBookletSheetsMoreCopiesNeverFewerSheets(t *testing.T) {
	prev := 0
	for copies := 1; copies <= 20; copies++ {
		layout := BookletSheets(copies, bookletJob(48, copies))
		assert.GreaterOrEqual(t, layout.TotalSheets(), prev)
		prev = layout.TotalSheets()
	}
}

func TestBookletSheetsMorePagesNeverFewerSheets(t *testing.T) {
	const copies = 5

	t.Run("inner only", func(t *testing.T) {
		prev := 0
		for pages := 1; pages <= 96; pages++ {
			layout := BookletSheets(copies, bookletJob(pages, copies))
			assert.GreaterOrEqual(t, layout.TotalSheets(), prev,
				"pages=%d must not need fewer sheets than pages=%d", pages, pages-1)
			prev = layout.TotalSheets()
		}
	})

	t.Run("separate cover", func(t *testing.T) {
		prev := 0
		for pages := 1; pages <= 96; pages++ {
			job := bookletJob(pages, copies)
			job.Booklet.CoverSeparate = true
			layout := BookletSheets(copies, job)
			assert.GreaterOrEqual(t, layout.TotalSheets(), prev,
				"pages=%d must not need fewer sheets than pages=%d", pages, pages-1)
			prev = layout.TotalSheets()
		}
	})
}
