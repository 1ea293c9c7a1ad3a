package catalog

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WillieIlus/printy/internal/domain/entity"
	"github.com/WillieIlus/printy/internal/domain/repository"
	"github.com/WillieIlus/printy/internal/domain/valueobject"
)

func TestMemoryPriceRuleLookups(t *testing.T) {
	machineID := uuid.New()
	materialID := uuid.New()
	sheetID := uuid.New()

	rule := entity.PriceRule{
		ID:         uuid.New(),
		MachineID:  machineID,
		MaterialID: materialID,
		Sheet:      &entity.SheetSpec{ID: sheetID, Name: "SRA3"},
		Currency:   valueobject.CurrencyKES,
	}

	m := NewMemory()
	m.AddPriceRule(rule)

	ctx := context.Background()

	t.Run("by sheet size", func(t *testing.T) {
		got, err := m.BySheetSize(ctx, machineID, sheetID)
		require.NoError(t, err)
		assert.Equal(t, rule.ID, got.ID)
	})

	t.Run("by material", func(t *testing.T) {
		got, err := m.ByMaterial(ctx, machineID, materialID)
		require.NoError(t, err)
		assert.Equal(t, rule.ID, got.ID)
	})

	t.Run("any for machine", func(t *testing.T) {
		got, err := m.AnyForMachine(ctx, machineID)
		require.NoError(t, err)
		assert.Equal(t, rule.ID, got.ID)
	})

	t.Run("unknown machine", func(t *testing.T) {
		_, err := m.BySheetSize(ctx, uuid.New(), sheetID)
		assert.ErrorIs(t, err, repository.ErrPriceRuleNotFound)

		_, err = m.AnyForMachine(ctx, uuid.New())
		assert.ErrorIs(t, err, repository.ErrPriceRuleNotFound)
	})
}

func TestMemoryAnyForMachineFirstConfiguredWins(t *testing.T) {
	machineID := uuid.New()
	first := entity.PriceRule{ID: uuid.New(), MachineID: machineID, MaterialID: uuid.New()}
	second := entity.PriceRule{ID: uuid.New(), MachineID: machineID, MaterialID: uuid.New()}

	m := NewMemory()
	m.AddPriceRule(first)
	m.AddPriceRule(second)

	got, err := m.AnyForMachine(context.Background(), machineID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, got.ID)
}

func TestMemoryRuleWithoutSheetHasNoSheetKey(t *testing.T) {
	machineID := uuid.New()
	rule := entity.PriceRule{ID: uuid.New(), MachineID: machineID, MaterialID: uuid.New()}

	m := NewMemory()
	m.AddPriceRule(rule)

	_, err := m.BySheetSize(context.Background(), machineID, uuid.New())
	assert.ErrorIs(t, err, repository.ErrPriceRuleNotFound)
}

func TestMemoryFinishingRule(t *testing.T) {
	rule := entity.FinishingRule{
		ID:     uuid.New(),
		Name:   "Lamination",
		Method: entity.MethodPerItem,
	}

	m := NewMemory()
	m.AddFinishingRule(rule)

	got, err := m.FinishingRule(context.Background(), rule.ID)
	require.NoError(t, err)
	assert.Equal(t, "Lamination", got.Name)

	_, err = m.FinishingRule(context.Background(), uuid.New())
	assert.ErrorIs(t, err, repository.ErrFinishingRuleNotFound)
}

func TestMemoryCopiesRulesOnAdd(t *testing.T) {
	machineID := uuid.New()
	rule := entity.PriceRule{ID: uuid.New(), MachineID: machineID, MaterialID: uuid.New()}

	m := NewMemory()
	m.AddPriceRule(rule)

	// Mutating the caller's copy must not reach the catalog.
	rule.Currency = valueobject.CurrencyUSD

	got, err := m.AnyForMachine(context.Background(), machineID)
	require.NoError(t, err)
	assert.Empty(t, got.Currency)
}
